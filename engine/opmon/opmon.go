package opmon

import (
	"sort"
	"sync"
	"time"

	"github.com/tusgame/tusworld/engine/consts"
	"github.com/tusgame/tusworld/engine/twlog"
)

var (
	operationAllocPool = sync.Pool{
		New: func() interface{} {
			return &Operation{}
		},
	}

	monitor = newMonitor()
)

func init() {
	if consts.OPMON_DUMP_INTERVAL > 0 {
		go func() {
			ticker := time.NewTicker(consts.OPMON_DUMP_INTERVAL)
			for range ticker.C {
				monitor.Dump()
			}
		}()
	}
}

// OpInfo is the accumulated statistics of one operation name
type OpInfo struct {
	Count         uint64
	Failures      uint64
	TotalDuration time.Duration
	MaxDuration   time.Duration
}

type _Monitor struct {
	sync.Mutex
	opInfos map[string]*OpInfo
}

func newMonitor() *_Monitor {
	return &_Monitor{
		opInfos: map[string]*OpInfo{},
	}
}

func (monitor *_Monitor) record(opname string, duration time.Duration, failed bool) {
	monitor.Lock()
	info := monitor.opInfos[opname]
	if info == nil {
		info = &OpInfo{}
		monitor.opInfos[opname] = info
	}
	info.Count += 1
	if failed {
		info.Failures += 1
	}
	info.TotalDuration += duration
	if duration > info.MaxDuration {
		info.MaxDuration = duration
	}
	monitor.Unlock()
}

func (monitor *_Monitor) snapshot(clear bool) map[string]OpInfo {
	monitor.Lock()
	res := make(map[string]OpInfo, len(monitor.opInfos))
	for name, info := range monitor.opInfos {
		res[name] = *info
	}
	if clear {
		monitor.opInfos = map[string]*OpInfo{}
	}
	monitor.Unlock()
	return res
}

// Dump logs all operation statistics and clears them
func (monitor *_Monitor) Dump() {
	opInfos := monitor.snapshot(true)
	names := make([]string, 0, len(opInfos))
	for name := range opInfos {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		info := opInfos[name]
		twlog.Infof("opmon: %-30s x%-10d FAIL %-6d AVG %-10s MAX %-10s", name, info.Count, info.Failures, info.TotalDuration/time.Duration(info.Count), info.MaxDuration)
	}
}

// Dump logs all operation statistics and clears them
func Dump() {
	monitor.Dump()
}

// Snapshot returns a copy of the current statistics
func Snapshot() map[string]OpInfo {
	return monitor.snapshot(false)
}

// Operation is the type of operation to be monitored
type Operation struct {
	name      string
	startTime time.Time
	failed    bool
}

// StartOperation creates a new operation
func StartOperation(operationName string) *Operation {
	op := operationAllocPool.Get().(*Operation)
	op.name = operationName
	op.startTime = time.Now()
	op.failed = false
	return op
}

// Fail marks the operation as failed
func (op *Operation) Fail() {
	op.failed = true
}

// Finish finishes the operation and records the duration of operation
func (op *Operation) Finish(warnThreshold time.Duration) {
	takeTime := time.Since(op.startTime)
	monitor.record(op.name, takeTime, op.failed)
	if takeTime >= warnThreshold {
		twlog.Warnf("opmon: operation %s takes %s > %s", op.name, takeTime, warnThreshold)
	}
	operationAllocPool.Put(op)
}
