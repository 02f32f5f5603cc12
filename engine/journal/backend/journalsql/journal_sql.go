package journalsql

import (
	"fmt"
	"io"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/tusgame/tusworld/engine/journal/types"
	"github.com/tusgame/tusworld/engine/twlog"
	_ "modernc.org/sqlite"
)

const createTable = `CREATE TABLE IF NOT EXISTS journal (
	uuid VARCHAR(36) NOT NULL PRIMARY KEY,
	id_request INTEGER NOT NULL,
	request VARCHAR(64) NOT NULL,
	login VARCHAR(255) NOT NULL,
	exit_code VARCHAR(128) NOT NULL,
	ok BOOLEAN NOT NULL,
	duration BIGINT NOT NULL,
	time_ns BIGINT NOT NULL
)`

type sqlJournal struct {
	driverName     string
	dataSourceName string
	db             *sqlx.DB
}

type journalRow struct {
	UUID      string `db:"uuid"`
	IDRequest uint16 `db:"id_request"`
	Request   string `db:"request"`
	Login     string `db:"login"`
	ExitCode  string `db:"exit_code"`
	OK        bool   `db:"ok"`
	Duration  int64  `db:"duration"`
	TimeNs    int64  `db:"time_ns"`
}

// OpenSQLJournal opens a SQL database as journal backend
func OpenSQLJournal(driverName string, dataSourceName string) (journaltypes.JournalBackend, error) {
	db, err := sqlx.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	if driverName == "sqlite" {
		db.SetMaxOpenConns(1)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	// try to create the journal table if not exists
	if _, err = db.Exec(createTable); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create journal table")
	}

	return &sqlJournal{
		driverName:     driverName,
		dataSourceName: dataSourceName,
		db:             db,
	}, nil
}

func (sj *sqlJournal) String() string {
	return fmt.Sprintf("%s<%s>", sj.driverName, sj.dataSourceName)
}

func (sj *sqlJournal) Write(entry *journaltypes.Entry) error {
	_, err := sj.db.NamedExec(`INSERT INTO journal(uuid, id_request, request, login, exit_code, ok, duration, time_ns)
		VALUES(:uuid, :id_request, :request, :login, :exit_code, :ok, :duration, :time_ns)`, journalRow{
		UUID:      entry.UUID,
		IDRequest: entry.IDRequest,
		Request:   entry.Request,
		Login:     entry.Login,
		ExitCode:  entry.ExitCode,
		OK:        entry.OK,
		Duration:  int64(entry.Duration),
		TimeNs:    entry.Time.UnixNano(),
	})
	return err
}

func (sj *sqlJournal) Recent(n int) ([]journaltypes.Entry, error) {
	var rows []journalRow
	err := sj.db.Select(&rows, sj.db.Rebind("SELECT * FROM journal ORDER BY time_ns DESC LIMIT ?"), n)
	if err != nil {
		return nil, err
	}

	entries := make([]journaltypes.Entry, len(rows))
	for i, row := range rows {
		entries[len(rows)-1-i] = journaltypes.Entry{
			UUID:      row.UUID,
			IDRequest: row.IDRequest,
			Request:   row.Request,
			Login:     row.Login,
			ExitCode:  row.ExitCode,
			OK:        row.OK,
			Duration:  time.Duration(row.Duration),
			Time:      time.Unix(0, row.TimeNs),
		}
	}
	return entries, nil
}

func (sj *sqlJournal) Close() {
	if err := sj.db.Close(); err != nil {
		twlog.Errorf("%s: close error: %s", sj.String(), err)
	}
}

func (sj *sqlJournal) IsConnectionError(err error) bool {
	return err == io.EOF || err == io.ErrUnexpectedEOF
}
