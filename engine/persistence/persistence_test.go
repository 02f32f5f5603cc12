package persistence

import (
	"context"
	"testing"

	"github.com/bmizerany/assert"
	"github.com/pkg/errors"
)

func openTestDB(t *testing.T) *DB {
	db, err := OpenMemory()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func countUsers(t *testing.T, db *DB) int {
	tx, err := db.Begin(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	defer tx.Rollback()
	var n int
	if err := tx.Get(&n, "SELECT COUNT(*) FROM users"); err != nil {
		t.Fatal(err)
	}
	return n
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open("oracle", "")
	assert.NotEqual(t, nil, err)
}

func TestCommitAndRollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	tx, err := db.Begin(ctx)
	assert.Equal(t, nil, err)
	_, err = tx.Exec("INSERT INTO users(login, password, moderator) VALUES(?, ?, ?)", "rolled", "x", false)
	assert.Equal(t, nil, err)
	assert.Equal(t, nil, tx.Rollback())
	assert.Equal(t, 0, countUsers(t, db))

	tx, err = db.Begin(ctx)
	assert.Equal(t, nil, err)
	_, err = tx.Exec("INSERT INTO users(login, password, moderator) VALUES(?, ?, ?)", "committed", "x", true)
	assert.Equal(t, nil, err)
	assert.Equal(t, nil, tx.Commit())
	assert.Equal(t, nil, tx.Rollback())
	assert.Equal(t, 1, countUsers(t, db))

	_, err = tx.Exec("DELETE FROM users")
	assert.Equal(t, ErrTxDone, err)
}

func TestUniqueViolationIsRecorded(t *testing.T) {
	db := openTestDB(t)
	tx, err := db.Begin(context.Background())
	assert.Equal(t, nil, err)
	defer tx.Rollback()

	_, err = tx.Exec("INSERT INTO worlds(name, configuration) VALUES(?, ?)", "Alpha", "classic")
	assert.Equal(t, nil, err)
	assert.Equal(t, nil, tx.Err())

	_, err = tx.Exec("INSERT INTO worlds(name, configuration) VALUES(?, ?)", "Alpha", "classic")
	assert.T(t, IsUniqueViolation(err), err)
	assert.T(t, IsUniqueViolation(errors.Wrap(err, "wrapped")), err)
	assert.Equal(t, err, tx.Err())
	assert.T(t, !IsRetryable(err), "unique violation is not retryable")
}

func TestNoRowsIsNotRecorded(t *testing.T) {
	db := openTestDB(t)
	tx, err := db.Begin(context.Background())
	assert.Equal(t, nil, err)
	defer tx.Rollback()

	var name string
	err = tx.Get(&name, "SELECT name FROM worlds WHERE id_world = ?", 42)
	assert.NotEqual(t, nil, err)
	assert.Equal(t, nil, tx.Err())
}

func TestIsRetryableNil(t *testing.T) {
	assert.T(t, !IsRetryable(nil), "nil is not retryable")
	assert.T(t, !IsUniqueViolation(nil), "nil is not a violation")
	assert.T(t, !IsRetryable(errors.New("plain")), "plain error is not retryable")
}
