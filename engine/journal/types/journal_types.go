package journaltypes

import (
	"fmt"
	"time"
)

// Entry is one performed action
type Entry struct {
	UUID      string        `msgpack:"uuid" bson:"_id"`
	IDRequest uint16        `msgpack:"id_request" bson:"id_request"`
	Request   string        `msgpack:"request" bson:"request"`
	Login     string        `msgpack:"login" bson:"login"`
	ExitCode  string        `msgpack:"exit_code" bson:"exit_code"`
	OK        bool          `msgpack:"ok" bson:"ok"`
	Duration  time.Duration `msgpack:"duration" bson:"duration"`
	Time      time.Time     `msgpack:"time" bson:"time"`
}

func (e *Entry) String() string {
	return fmt.Sprintf("Entry<%s %s by %q: %s>", e.UUID, e.Request, e.Login, e.ExitCode)
}

// JournalBackend defines the interface of a journal storage implementation
//
// Recent returns at most n entries, oldest first.
type JournalBackend interface {
	Write(entry *Entry) error
	Recent(n int) ([]Entry, error)
	Close()
	IsConnectionError(err error) bool
}
