// Package operator implements the business operations of the game.
//
// Every operator runs inside the caller's transaction, evaluates its checks in
// a fixed order and mutates state only on its success branch. Operators never
// return errors: storage failures are logged and reported as the
// UNEXPECTED_ERROR exit code of the operator, and the caller must then discard
// the transaction.
package operator

import (
	"fmt"

	"github.com/tusgame/tusworld/engine/twlog"
)

// ExitCode is the outcome of one operator call
type ExitCode interface {
	// OK tells whether the operation succeeded
	OK() bool
	String() string
}

func exitCodeName(typ string, names []string, c uint8) string {
	if int(c) < len(names) {
		return names[c]
	}
	return fmt.Sprintf("%s(%d)", typ, c)
}

func unexpected(op string, err error) {
	twlog.Errorf("%s: unexpected error: %+v", op, err)
}
