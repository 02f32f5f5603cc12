package main

import (
	"fmt"
	"os"
)

const (
	exitCodeFailure = 2
)

func showMsg(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, "> "+format+"\n", a...)
}

// showMsgAndQuit shows the message and exits with failure
func showMsgAndQuit(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, "! "+format+"\n", a...)
	os.Exit(exitCodeFailure)
}

func checkErrorOrQuit(err error, msg string) {
	if err == nil {
		return
	}
	showMsgAndQuit("%s: %v", msg, err)
}
