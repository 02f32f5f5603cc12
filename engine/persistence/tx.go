package persistence

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// ErrTxDone is returned when a finished transaction is used
var ErrTxDone = errors.New("transaction has already been committed or rolled back")

// Tx is one unit of work.
//
// Tx remembers the first storage failure so callers that only see an exit
// code can still tell a conflict from a genuine error.
type Tx struct {
	tx   *sqlx.Tx
	err  error
	done bool
}

func (tx *Tx) record(err error) error {
	if err != nil && err != sql.ErrNoRows && tx.err == nil {
		tx.err = err
	}
	return err
}

// Err returns the first storage error seen by the transaction
func (tx *Tx) Err() error {
	return tx.err
}

// Fail records err as the failure of the transaction unless one is already known
func (tx *Tx) Fail(err error) error {
	return tx.record(err)
}

// Exec executes a statement written with ? placeholders
func (tx *Tx) Exec(query string, args ...interface{}) (sql.Result, error) {
	if tx.done {
		return nil, ErrTxDone
	}
	res, err := tx.tx.Exec(tx.tx.Rebind(query), args...)
	return res, tx.record(err)
}

// Get scans one row into dest; sql.ErrNoRows when there is none
func (tx *Tx) Get(dest interface{}, query string, args ...interface{}) error {
	if tx.done {
		return ErrTxDone
	}
	return tx.record(tx.tx.Get(dest, tx.tx.Rebind(query), args...))
}

// Select scans all rows into the dest slice
func (tx *Tx) Select(dest interface{}, query string, args ...interface{}) error {
	if tx.done {
		return ErrTxDone
	}
	return tx.record(tx.tx.Select(dest, tx.tx.Rebind(query), args...))
}

// Commit makes every change of the transaction visible
func (tx *Tx) Commit() error {
	if tx.done {
		return ErrTxDone
	}
	tx.done = true
	return tx.record(tx.tx.Commit())
}

// Rollback discards the transaction; it is a no-op after Commit
func (tx *Tx) Rollback() error {
	if tx.done {
		return nil
	}
	tx.done = true
	return tx.tx.Rollback()
}
