package journalmongo

import (
	"io"

	"github.com/tusgame/tusworld/engine/journal/types"
	"github.com/tusgame/tusworld/engine/twlog"
	"gopkg.in/mgo.v2"
)

const (
	_DEFAULT_DB_NAME         = "tusworld"
	_DEFAULT_COLLECTION_NAME = "journal"
)

type mongoJournal struct {
	s *mgo.Session
	c *mgo.Collection
}

// OpenMongoJournal opens mongodb as journal backend
func OpenMongoJournal(url string, dbname string, collectionName string) (journaltypes.JournalBackend, error) {
	twlog.Debugf("Connecting MongoDB ...")
	session, err := mgo.Dial(url)
	if err != nil {
		return nil, err
	}

	session.SetMode(mgo.Monotonic, true)
	if dbname == "" {
		// if db is not specified, use default
		dbname = _DEFAULT_DB_NAME
	}
	if collectionName == "" {
		collectionName = _DEFAULT_COLLECTION_NAME
	}
	c := session.DB(dbname).C(collectionName)
	if err = c.EnsureIndexKey("time"); err != nil {
		session.Close()
		return nil, err
	}
	return &mongoJournal{
		s: session,
		c: c,
	}, nil
}

func (mj *mongoJournal) Write(entry *journaltypes.Entry) error {
	return mj.c.Insert(entry)
}

func (mj *mongoJournal) Recent(n int) ([]journaltypes.Entry, error) {
	var entries []journaltypes.Entry
	if err := mj.c.Find(nil).Sort("-time").Limit(n).All(&entries); err != nil {
		return nil, err
	}
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

func (mj *mongoJournal) Close() {
	mj.s.Close()
}

func (mj *mongoJournal) IsConnectionError(err error) bool {
	return err == io.EOF || err == io.ErrUnexpectedEOF
}
