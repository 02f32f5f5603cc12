//go:build windows

package binutil

import "github.com/tusgame/tusworld/engine/twlog"

type nopRelease int

func (_ nopRelease) Release() error {
	return nil
}

// Daemonize is not supported on windows
func Daemonize() nopRelease {
	// Windows can not daemonize
	twlog.Warnf("can not run in daemon mode in windows, -d ignored")
	return nopRelease(0)
}
