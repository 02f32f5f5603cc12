// Package twutils guards goroutines against panics.
package twutils

import "github.com/tusgame/tusworld/engine/twlog"

// RunPanicless calls f and reports whether it panicked; the panic is logged with its stack
func RunPanicless(f func()) (paniced bool) {
	defer func() {
		if err := recover(); err != nil {
			twlog.TraceError("%p panic: %v", f, err)
			paniced = true
		}
	}()

	f()
	return
}

// RepeatUntilPanicless calls f again after every panic, returning once f returns normally
func RepeatUntilPanicless(f func()) {
	for {
		if !RunPanicless(f) {
			return
		}
	}
}
