package ledger

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/persistence"
)

// Table describes how keys of one ledger kind map onto table columns
type Table[K comparable] struct {
	Name       string
	KeyColumns []string
	Columns    func(key K) []string
	Key        func(columns []string) K
}

type keyRow struct {
	K1     string `db:"k1"`
	K2     string `db:"k2"`
	K3     string `db:"k3"`
	Volume int64  `db:"volume"`
}

func (r keyRow) columns(n int) []string {
	return []string{r.K1, r.K2, r.K3}[:n]
}

// SQLAccessor implements Accessor over one table of the relational store
type SQLAccessor[K comparable] struct {
	table     Table[K]
	keyWhere  string
	keySelect string
}

// NewSQLAccessor creates the accessor of table
func NewSQLAccessor[K comparable](table Table[K]) *SQLAccessor[K] {
	if len(table.KeyColumns) == 0 || len(table.KeyColumns) > 3 {
		panic(fmt.Sprintf("ledger table %s: 1 to 3 key columns expected", table.Name))
	}
	where := make([]string, len(table.KeyColumns))
	sel := make([]string, len(table.KeyColumns))
	for i, col := range table.KeyColumns {
		where[i] = col + " = ?"
		sel[i] = fmt.Sprintf("%s AS k%d", col, i+1)
	}
	return &SQLAccessor[K]{
		table:     table,
		keyWhere:  "holder_class = ? AND id_holder = ? AND " + strings.Join(where, " AND "),
		keySelect: strings.Join(sel, ", "),
	}
}

func (a *SQLAccessor[K]) String() string {
	return "ledger<" + a.table.Name + ">"
}

func (a *SQLAccessor[K]) keyArgs(holder common.HolderID, key K, extra ...interface{}) []interface{} {
	cols := a.table.Columns(key)
	args := make([]interface{}, 0, len(extra)+2+len(cols))
	args = append(args, extra...)
	args = append(args, uint8(holder.Class()), holder.ID())
	for _, c := range cols {
		args = append(args, c)
	}
	return args
}

// Insert creates a new record, failing if one already exists
func (a *SQLAccessor[K]) Insert(tx *persistence.Tx, holder common.HolderID, key K, volume common.Volume) error {
	if volume == 0 {
		return ErrZeroVolume
	}
	if volume > common.MaxVolume {
		return errors.Wrapf(ErrVolumeOverflow, "%s: insert %s %v", a, holder, key)
	}
	placeholders := strings.Repeat("?, ", len(a.table.KeyColumns)+2) + "?"
	query := fmt.Sprintf("INSERT INTO %s(holder_class, id_holder, %s, volume) VALUES(%s)", a.table.Name, strings.Join(a.table.KeyColumns, ", "), placeholders)
	args := append(a.keyArgs(holder, key), uint64(volume))
	if _, err := tx.Exec(query, args...); err != nil {
		return errors.Wrapf(err, "%s: insert %s %v", a, holder, key)
	}
	return nil
}

// Delete removes a record if present
func (a *SQLAccessor[K]) Delete(tx *persistence.Tx, holder common.HolderID, key K) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s", a.table.Name, a.keyWhere)
	if _, err := tx.Exec(query, a.keyArgs(holder, key)...); err != nil {
		return errors.Wrapf(err, "%s: delete %s %v", a, holder, key)
	}
	return nil
}

// Get returns the record of key, found is false when absent
func (a *SQLAccessor[K]) Get(tx *persistence.Tx, holder common.HolderID, key K) (rec Record[K], found bool, err error) {
	var rows []keyRow
	query := fmt.Sprintf("SELECT %s, volume FROM %s WHERE %s", a.keySelect, a.table.Name, a.keyWhere)
	if err = tx.Select(&rows, query, a.keyArgs(holder, key)...); err != nil {
		return rec, false, errors.Wrapf(err, "%s: get %s %v", a, holder, key)
	}
	if len(rows) == 0 {
		return rec, false, nil
	}
	return Record[K]{Holder: holder, Key: key, Volume: common.Volume(rows[0].Volume)}, true, nil
}

// GetAll returns every record of holder
func (a *SQLAccessor[K]) GetAll(tx *persistence.Tx, holder common.HolderID) (Set[K], error) {
	var rows []keyRow
	query := fmt.Sprintf("SELECT %s, volume FROM %s WHERE holder_class = ? AND id_holder = ?", a.keySelect, a.table.Name)
	if err := tx.Select(&rows, query, uint8(holder.Class()), holder.ID()); err != nil {
		return nil, errors.Wrapf(err, "%s: get all %s", a, holder)
	}
	set := make(Set[K], len(rows))
	for _, row := range rows {
		key := a.table.Key(row.columns(len(a.table.KeyColumns)))
		set[key] = Record[K]{Holder: holder, Key: key, Volume: common.Volume(row.Volume)}
	}
	return set, nil
}

// IncreaseVolume adds delta to an existing record
func (a *SQLAccessor[K]) IncreaseVolume(tx *persistence.Tx, holder common.HolderID, key K, delta common.Volume) error {
	if delta == 0 {
		return ErrZeroVolume
	}
	if delta > common.MaxVolume {
		return errors.Wrapf(ErrVolumeOverflow, "%s: increase %s %v by %d", a, holder, key, delta)
	}
	query := fmt.Sprintf("UPDATE %s SET volume = volume + ? WHERE %s AND volume <= ?", a.table.Name, a.keyWhere)
	args := append(a.keyArgs(holder, key, uint64(delta)), uint64(common.MaxVolume-delta))
	res, err := tx.Exec(query, args...)
	if err != nil {
		return errors.Wrapf(err, "%s: increase %s %v", a, holder, key)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrapf(err, "%s: increase %s %v", a, holder, key)
	}
	if n == 0 {
		_, found, err := a.Get(tx, holder, key)
		if err != nil {
			return err
		}
		if !found {
			return errors.Wrapf(ErrRecordNotFound, "%s: increase %s %v", a, holder, key)
		}
		return errors.Wrapf(ErrVolumeOverflow, "%s: increase %s %v by %d", a, holder, key, delta)
	}
	return nil
}

// DecreaseVolume subtracts delta, deleting the record when nothing is left.
//
// A delta above the stored volume changes nothing and fails with ErrInsufficientVolume.
func (a *SQLAccessor[K]) DecreaseVolume(tx *persistence.Tx, holder common.HolderID, key K, delta common.Volume) error {
	if delta == 0 {
		return ErrZeroVolume
	}
	if delta > common.MaxVolume {
		return errors.Wrapf(ErrInsufficientVolume, "%s: decrease %s %v by %d", a, holder, key, delta)
	}
	query := fmt.Sprintf("UPDATE %s SET volume = volume - ? WHERE %s AND volume >= ?", a.table.Name, a.keyWhere)
	args := append(a.keyArgs(holder, key, uint64(delta)), uint64(delta))
	res, err := tx.Exec(query, args...)
	if err != nil {
		return errors.Wrapf(err, "%s: decrease %s %v", a, holder, key)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrapf(err, "%s: decrease %s %v", a, holder, key)
	}
	if n == 0 {
		_, found, err := a.Get(tx, holder, key)
		if err != nil {
			return err
		}
		if !found {
			return errors.Wrapf(ErrRecordNotFound, "%s: decrease %s %v", a, holder, key)
		}
		return errors.Wrapf(ErrInsufficientVolume, "%s: decrease %s %v by %d", a, holder, key, delta)
	}

	query = fmt.Sprintf("DELETE FROM %s WHERE %s AND volume = 0", a.table.Name, a.keyWhere)
	if _, err = tx.Exec(query, a.keyArgs(holder, key)...); err != nil {
		return errors.Wrapf(err, "%s: decrease %s %v", a, holder, key)
	}
	return nil
}
