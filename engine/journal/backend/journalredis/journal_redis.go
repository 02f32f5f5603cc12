package journalredis

import (
	"io"

	"github.com/garyburd/redigo/redis"
	"github.com/pkg/errors"
	"github.com/tusgame/tusworld/engine/journal/types"
	"github.com/tusgame/tusworld/engine/netutil"
)

const (
	_DEFAULT_LIST_KEY = "_JOURNAL_"
)

var (
	dataPacker = netutil.MessagePackMsgPacker{}
)

type redisJournal struct {
	c   redis.Conn
	key string
}

// OpenRedisJournal opens Redis for journal backend, entries are appended to a list
func OpenRedisJournal(url string, dbindex int, key string) (journaltypes.JournalBackend, error) {
	c, err := redis.DialURL(url)
	if err != nil {
		return nil, errors.Wrap(err, "redis dail failed")
	}

	if key == "" {
		key = _DEFAULT_LIST_KEY
	}
	db := &redisJournal{
		c:   c,
		key: key,
	}
	if _, err := c.Do("SELECT", dbindex); err != nil {
		c.Close()
		return nil, errors.Wrap(err, "redis journal initialize failed")
	}

	return db, nil
}

func (db *redisJournal) Write(entry *journaltypes.Entry) error {
	data, err := dataPacker.PackMsg(entry, nil)
	if err != nil {
		return err
	}
	_, err = db.c.Do("RPUSH", db.key, data)
	return err
}

func (db *redisJournal) Recent(n int) ([]journaltypes.Entry, error) {
	items, err := redis.ByteSlices(db.c.Do("LRANGE", db.key, -n, -1))
	if err != nil {
		return nil, err
	}

	entries := make([]journaltypes.Entry, len(items))
	for i, item := range items {
		if err := dataPacker.UnpackMsg(item, &entries[i]); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

func (db *redisJournal) Close() {
	db.c.Close()
}

func (db *redisJournal) IsConnectionError(err error) bool {
	return err == io.EOF || err == io.ErrUnexpectedEOF
}
