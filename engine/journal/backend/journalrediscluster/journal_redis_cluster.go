package journalrediscluster

import (
	"io"

	"time"

	rediscluster "github.com/chasex/redis-go-cluster"
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
	c   *rediscluster.Cluster
	key string
}

// OpenRedisJournal opens Redis cluster for journal backend
func OpenRedisJournal(startNodes []string, key string) (journaltypes.JournalBackend, error) {
	c, err := rediscluster.NewCluster(&rediscluster.Options{
		StartNodes:   startNodes,
		ConnTimeout:  10 * time.Second, // Connection timeout
		ReadTimeout:  60 * time.Second, // Read timeout
		WriteTimeout: 60 * time.Second, // Write timeout
		KeepAlive:    1,                // Maximum keep alive connecion in each node
		AliveTime:    10 * time.Minute, // Keep alive timeout
	})
	if err != nil {
		return nil, errors.Wrap(err, "connect redis cluster failed")
	}

	if key == "" {
		key = _DEFAULT_LIST_KEY
	}
	return &redisJournal{
		c:   c,
		key: key,
	}, nil
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
