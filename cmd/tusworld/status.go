package main

import (
	"os"
	"strings"

	"github.com/tusgame/tusworld/cmd/tusworld/process"
)

const (
	serverExecutable = "tusworld"
)

// ServerStatus represents the tusworld servers running on this host
type ServerStatus struct {
	Procs []process.Process
}

// IsRunning returns if a server is running
func (ss *ServerStatus) IsRunning() bool {
	return len(ss.Procs) > 0
}

func isServerProcess(executable string, cmdline []string) bool {
	if executable != serverExecutable+BinaryExtension {
		return false
	}
	// only the serve command runs a server
	cmd, _ := parseCommand(commandArgs(cmdline))
	return cmd == "serve"
}

// commandArgs drops the program name and the flags of a command line
func commandArgs(cmdline []string) []string {
	if len(cmdline) > 0 {
		cmdline = cmdline[1:]
	}
	for len(cmdline) > 0 && strings.HasPrefix(cmdline[0], "-") {
		flag := strings.TrimLeft(cmdline[0], "-")
		cmdline = cmdline[1:]
		if (flag == "configfile" || flag == "log") && len(cmdline) > 0 {
			cmdline = cmdline[1:]
		}
	}
	return cmdline
}

func detectServerStatus() *ServerStatus {
	ss := &ServerStatus{}
	procs, err := process.Processes()
	checkErrorOrQuit(err, "list processes failed")

	self := int32(os.Getpid())
	for _, proc := range procs {
		if proc.Pid() == self {
			continue
		}
		cmdline, err := proc.CmdlineSlice()
		if err != nil {
			continue
		}
		if isServerProcess(proc.Executable(), cmdline) {
			ss.Procs = append(ss.Procs, proc)
		}
	}
	return ss
}

func status() {
	ss := detectServerStatus()
	showServerStatus(ss)
}

func showServerStatus(ss *ServerStatus) {
	showMsg("%d server running", len(ss.Procs))
	for _, proc := range ss.Procs {
		cmdlineSlice, _ := proc.CmdlineSlice()
		showMsg("\t%-10d%-16s%s", proc.Pid(), proc.Executable(), strings.Join(cmdlineSlice, " "))
	}
}
