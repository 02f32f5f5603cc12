package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/tusgame/tusworld/engine/twlog"
	_ "modernc.org/sqlite"
)

// Supported drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DB is the relational store every facade works upon
type DB struct {
	db        *sqlx.DB
	driver    string
	txOptions *sql.TxOptions
}

// Open connects to the store and creates missing tables
func Open(driver string, url string) (*DB, error) {
	driver = strings.ToLower(driver)
	var txOptions *sql.TxOptions
	switch driver {
	case DriverSQLite:
	case DriverPostgres:
		txOptions = &sql.TxOptions{Isolation: sql.LevelSerializable}
	default:
		return nil, errors.Errorf("unsupported storage driver: %s", driver)
	}

	sdb, err := sqlx.Open(driver, url)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", driver)
	}
	if driver == DriverSQLite {
		// sqlite allows a single writer: one connection serializes every transaction
		sdb.SetMaxOpenConns(1)
	}
	if err = sdb.Ping(); err != nil {
		sdb.Close()
		return nil, errors.Wrapf(err, "ping %s", driver)
	}

	db := &DB{db: sdb, driver: driver, txOptions: txOptions}
	if err = db.migrate(); err != nil {
		sdb.Close()
		return nil, err
	}
	twlog.Infof("persistence: %s opened", db)
	return db, nil
}

func (db *DB) String() string {
	return fmt.Sprintf("DB<%s>", db.driver)
}

// Driver returns the driver name
func (db *DB) Driver() string {
	return db.driver
}

// Close closes the store
func (db *DB) Close() error {
	return db.db.Close()
}

// Begin starts a transaction; the caller owns it until Commit or Rollback
func (db *DB) Begin(ctx context.Context) (*Tx, error) {
	tx, err := db.db.BeginTxx(ctx, db.txOptions)
	if err != nil {
		return nil, errors.Wrap(err, "begin transaction")
	}
	return &Tx{tx: tx}, nil
}

func (db *DB) migrate() error {
	for _, stmt := range schema(db.driver) {
		if _, err := db.db.Exec(stmt); err != nil {
			return errors.Wrapf(err, "migrate: %s", stmt)
		}
	}
	return nil
}

// OpenMemory opens a private in-memory sqlite store
func OpenMemory() (*DB, error) {
	return Open(DriverSQLite, ":memory:")
}
