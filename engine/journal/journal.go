// Package journal records performed actions asynchronously.
//
// Entries are pushed to a queue and written by a single routine, so a slow or
// unreachable backend never delays a reply.
package journal

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"

	"time"

	"github.com/pkg/errors"
	"github.com/tusgame/tusworld/engine/config"
	"github.com/tusgame/tusworld/engine/consts"
	"github.com/tusgame/tusworld/engine/journal/backend/journalmongo"
	"github.com/tusgame/tusworld/engine/journal/backend/journalredis"
	"github.com/tusgame/tusworld/engine/journal/backend/journalrediscluster"
	"github.com/tusgame/tusworld/engine/journal/backend/journalsql"
	"github.com/tusgame/tusworld/engine/journal/types"
	"github.com/tusgame/tusworld/engine/opmon"
	"github.com/tusgame/tusworld/engine/twlog"
	"github.com/xiaonanln/go-xnsyncutil/xnsyncutil"
)

// Entry is one performed action
type Entry = journaltypes.Entry

// Opener opens a journal backend; it is called again after connection errors
type Opener func() (journaltypes.JournalBackend, error)

var errClosed = errors.New("journal is closed")

// Journal writes entries to a backend in its own routine
type Journal struct {
	name       string
	open       Opener
	backend    journaltypes.JournalBackend
	queue      *xnsyncutil.SyncQueue
	terminated *xnsyncutil.OneTimeCond
	closed     int32

	warnLock             sync.Mutex
	recentWarnedQueueLen int
}

type recentReq struct {
	n      int
	result chan recentResult
}

type recentResult struct {
	entries []Entry
	err     error
}

// New starts a journal routine writing to backends returned by open
func New(name string, open Opener) *Journal {
	j := &Journal{
		name:       name,
		open:       open,
		queue:      xnsyncutil.NewSyncQueue(),
		terminated: xnsyncutil.NewOneTimeCond(),
	}
	go j.routine()
	return j
}

// Open starts a journal for the config, or returns nil if the journal is disabled
func Open(cfg *config.JournalConfig) (*Journal, error) {
	var open Opener
	switch cfg.Type {
	case "":
		return nil, nil
	case "sql":
		open = func() (journaltypes.JournalBackend, error) {
			return journalsql.OpenSQLJournal(cfg.Driver, cfg.Url)
		}
	case "mongodb":
		open = func() (journaltypes.JournalBackend, error) {
			return journalmongo.OpenMongoJournal(cfg.Url, cfg.DB, cfg.Collection)
		}
	case "redis":
		dbindex, err := strconv.Atoi(cfg.DB)
		if err != nil {
			return nil, errors.Wrap(err, "redis db must be integer")
		}
		open = func() (journaltypes.JournalBackend, error) {
			return journalredis.OpenRedisJournal(cfg.Url, dbindex, cfg.Collection)
		}
	case "redis_cluster":
		startNodes := cfg.StartNodes.ToList()
		open = func() (journaltypes.JournalBackend, error) {
			return journalrediscluster.OpenRedisJournal(startNodes, cfg.Collection)
		}
	default:
		return nil, errors.Errorf("journal type %s is not implemented", cfg.Type)
	}

	twlog.Infof("Journal initializing, config:\n%s", config.DumpPretty(cfg))
	return New(cfg.Type, open), nil
}

func (j *Journal) String() string {
	return "Journal<" + j.name + ">"
}

// Record queues the entry; entries recorded after Close are dropped
func (j *Journal) Record(entry Entry) {
	if atomic.LoadInt32(&j.closed) != 0 {
		twlog.Warnf("%s: closed, dropping %s", j, &entry)
		return
	}
	j.queue.Push(&entry)
	j.checkQueueLen()
}

// Recent returns at most n of the latest entries, oldest first
func (j *Journal) Recent(ctx context.Context, n int) ([]Entry, error) {
	if atomic.LoadInt32(&j.closed) != 0 {
		return nil, errClosed
	}
	req := &recentReq{n: n, result: make(chan recentResult, 1)}
	j.queue.Push(req)
	select {
	case res := <-req.result:
		return res.entries, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close stops accepting entries; queued entries are still written
func (j *Journal) Close() {
	if atomic.CompareAndSwapInt32(&j.closed, 0, 1) {
		j.queue.Close()
	}
}

// WaitTerminated blocks until the journal routine has written every queued entry
func (j *Journal) WaitTerminated() {
	j.terminated.Wait()
}

func (j *Journal) checkQueueLen() {
	qlen := j.queue.Len()
	if qlen < consts.JOURNAL_QUEUE_WARN_STEP || qlen%consts.JOURNAL_QUEUE_WARN_STEP != 0 {
		return
	}
	j.warnLock.Lock()
	if j.recentWarnedQueueLen != qlen {
		twlog.Warnf("%s: queue length = %d", j, qlen)
		j.recentWarnedQueueLen = qlen
	}
	j.warnLock.Unlock()
}

func (j *Journal) assureBackendReady() (err error) {
	if j.backend != nil { // connection is valid
		return
	}
	j.backend, err = j.open()
	return
}

func (j *Journal) dropBackend() {
	j.backend.Close()
	j.backend = nil
}

func (j *Journal) routine() {
	for {
		req := j.queue.Pop()
		if req == nil { // queue is closed, returning nil
			break
		}

		switch req := req.(type) {
		case *Entry:
			j.write(req)
		case *recentReq:
			j.recent(req)
		}
	}

	if j.backend != nil {
		j.backend.Close()
		j.backend = nil
	}
	j.terminated.Signal()
}

func (j *Journal) write(entry *Entry) {
	for {
		if err := j.assureBackendReady(); err != nil {
			if atomic.LoadInt32(&j.closed) != 0 {
				twlog.Errorf("%s: backend is not ready, dropping %s: %s", j, entry, err)
				return
			}
			twlog.Errorf("%s: backend is not ready: %s", j, err)
			time.Sleep(consts.JOURNAL_RECONNECT_INTERVAL)
			continue
		}

		op := opmon.StartOperation("journal.write")
		err := j.backend.Write(entry)
		if err != nil {
			op.Fail()
		}
		op.Finish(time.Millisecond * 100)
		if err == nil {
			return
		}

		twlog.Errorf("%s: write %s failed: %s", j, entry, err)
		if !j.backend.IsConnectionError(err) {
			return
		}
		j.dropBackend()
	}
}

func (j *Journal) recent(req *recentReq) {
	if err := j.assureBackendReady(); err != nil {
		req.result <- recentResult{err: err}
		return
	}

	op := opmon.StartOperation("journal.recent")
	entries, err := j.backend.Recent(req.n)
	if err != nil {
		op.Fail()
	}
	op.Finish(time.Millisecond * 100)

	req.result <- recentResult{entries, err}
	if err != nil && j.backend.IsConnectionError(err) {
		j.dropBackend()
	}
}
