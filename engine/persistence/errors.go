package persistence

import (
	"strings"

	"github.com/lib/pq"
	"github.com/pkg/errors"
)

const (
	_PQ_SERIALIZATION_FAILURE = "40001"
	_PQ_DEADLOCK_DETECTED     = "40P01"
	_PQ_UNIQUE_VIOLATION      = "23505"

	_SQLITE_BUSY       = 5
	_SQLITE_LOCKED     = 6
	_SQLITE_CONSTRAINT = 19
)

type codedError interface {
	Code() int
}

// IsRetryable tells whether the transaction failed because of a concurrent one
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	switch e := errors.Cause(err).(type) {
	case *pq.Error:
		return string(e.Code) == _PQ_SERIALIZATION_FAILURE || string(e.Code) == _PQ_DEADLOCK_DETECTED
	case codedError:
		code := e.Code() & 0xff
		return code == _SQLITE_BUSY || code == _SQLITE_LOCKED
	}
	return false
}

// IsUniqueViolation tells whether an insert collided with an existing row
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	switch e := errors.Cause(err).(type) {
	case *pq.Error:
		return string(e.Code) == _PQ_UNIQUE_VIOLATION
	case codedError:
		return e.Code()&0xff == _SQLITE_CONSTRAINT && strings.Contains(err.Error(), "UNIQUE")
	}
	return false
}
