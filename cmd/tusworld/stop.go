package main

import (
	"os"
	"time"

	"github.com/tusgame/tusworld/cmd/tusworld/process"
)

func stop() {
	ss := detectServerStatus()
	showServerStatus(ss)
	if !ss.IsRunning() {
		showMsgAndQuit("no server is running currently")
	}

	for _, proc := range ss.Procs {
		stopProc(proc)
	}
}

func stopProc(proc process.Process) {
	showMsg("stop process %s pid=%d", proc.Executable(), proc.Pid())
	osproc, err := os.FindProcess(int(proc.Pid()))
	checkErrorOrQuit(err, "stop process failed")

	checkErrorOrQuit(osproc.Signal(StopSignal), "stop process failed")
	for proc.IsRunning() {
		time.Sleep(time.Millisecond * 100)
	}
}
