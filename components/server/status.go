package server

import (
	"context"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/process"
	"github.com/tusgame/tusworld/engine/opmon"
	"github.com/tusgame/tusworld/engine/twlog"
	"github.com/tusgame/tusworld/engine/twutils"
)

// startStatusReport logs process statistics and the operation monitor every interval until ctx is done
func startStatusReport(ctx context.Context, interval time.Duration, ss *ServerService) {
	pid := os.Getpid()
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		twlog.Errorf("status: can not find server process: pid = %v: %v", pid, err)
		return
	}

	go twutils.RepeatUntilPanicless(func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			reportStatus(ctx, p, ss)
		}
	})
}

func reportStatus(ctx context.Context, p *process.Process, ss *ServerService) {
	cpu, err := p.CPUPercentWithContext(ctx)
	if err != nil {
		twlog.Warnf("status: get process cpu percent failed: %s", err)
	}
	var rss uint64
	if mem, err := p.MemoryInfoWithContext(ctx); err == nil {
		rss = mem.RSS
	} else {
		twlog.Warnf("status: get process memory failed: %s", err)
	}

	twlog.Infof("status: cpu %.3f%%, rss %dKB, %d goroutines, %d clients", cpu, rss/1024, runtime.NumGoroutine(), ss.numClients())
	opmon.Dump()
}
