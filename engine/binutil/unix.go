//go:build !windows

package binutil

import (
	"os"

	"github.com/sevlyar/go-daemon"
	"github.com/tusgame/tusworld/engine/twlog"
)

// Daemonize runs the process again in background; the parent exits
func Daemonize() *daemon.Context {
	context := new(daemon.Context)
	child, err := context.Reborn()

	if err != nil {
		// daemonize failed
		twlog.Panicf("daemonize failed: %v", err)
	}

	if child != nil {
		twlog.Infof("run in daemon mode")
		os.Exit(0)
		return nil
	}
	return context
}
