package epoch

import (
	"database/sql"

	"github.com/pkg/errors"
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/persistence"
	"github.com/tusgame/tusworld/engine/twlog"
)

// Epoch is one phase of a world.
//
// A world has at most one unfinished epoch; the latest one is the current.
type Epoch struct {
	ID       common.IDEpoch `db:"id_epoch"`
	IDWorld  common.IDWorld `db:"id_world"`
	Active   bool           `db:"active"`
	Finished bool           `db:"finished"`
	Ticks    uint64         `db:"ticks"`
}

const _SELECT_EPOCH = "SELECT e.id_epoch, e.id_world, e.active, e.finished, e.ticks FROM epochs e"

// Facade persists epochs
type Facade struct{}

// NewFacade creates a Facade
func NewFacade() *Facade {
	return &Facade{}
}

// CreateEpoch inserts a new inactive epoch, returning false when it can not be inserted
func (f *Facade) CreateEpoch(tx *persistence.Tx, idWorld common.IDWorld) bool {
	_, err := tx.Exec("INSERT INTO epochs(id_world, active, finished, ticks) VALUES(?, ?, ?, ?)", idWorld, false, false, 0)
	if err != nil {
		twlog.Warnf("epoch: create in world %d failed: %v", idWorld, err)
		return false
	}
	return true
}

// DeleteEpoch removes the epoch record
func (f *Facade) DeleteEpoch(tx *persistence.Tx, id common.IDEpoch) error {
	_, err := tx.Exec("DELETE FROM epochs WHERE id_epoch = ?", id)
	return errors.Wrapf(err, "delete epoch %d", id)
}

// GetEpoch returns the current epoch of a world
func (f *Facade) GetEpoch(tx *persistence.Tx, idWorld common.IDWorld) (Epoch, bool, error) {
	return f.getOne(tx, _SELECT_EPOCH+" WHERE e.id_world = ? ORDER BY e.id_epoch DESC LIMIT 1", idWorld)
}

// GetEpochByIDLand returns the epoch a land belongs to
func (f *Facade) GetEpochByIDLand(tx *persistence.Tx, idLand common.IDLand) (Epoch, bool, error) {
	return f.getOne(tx, _SELECT_EPOCH+" JOIN lands l ON l.id_epoch = e.id_epoch WHERE l.id_land = ?", idLand)
}

// GetEpochByIDSettlement returns the epoch the land of a settlement belongs to
func (f *Facade) GetEpochByIDSettlement(tx *persistence.Tx, idSettlement common.IDSettlement) (Epoch, bool, error) {
	return f.getOne(tx, _SELECT_EPOCH+" JOIN lands l ON l.id_epoch = e.id_epoch JOIN settlements s ON s.id_land = l.id_land WHERE s.id_settlement = ?", idSettlement)
}

// ActivateEpoch sets the active flag
func (f *Facade) ActivateEpoch(tx *persistence.Tx, id common.IDEpoch) error {
	return f.update(tx, "UPDATE epochs SET active = ? WHERE id_epoch = ?", true, id)
}

// DeactivateEpoch clears the active flag
func (f *Facade) DeactivateEpoch(tx *persistence.Tx, id common.IDEpoch) error {
	return f.update(tx, "UPDATE epochs SET active = ? WHERE id_epoch = ?", false, id)
}

// FinishEpoch sets the finished flag
func (f *Facade) FinishEpoch(tx *persistence.Tx, id common.IDEpoch) error {
	return f.update(tx, "UPDATE epochs SET finished = ? WHERE id_epoch = ?", true, id)
}

// TickEpoch increments the tick counter
func (f *Facade) TickEpoch(tx *persistence.Tx, id common.IDEpoch) error {
	return f.update(tx, "UPDATE epochs SET ticks = ticks + 1 WHERE id_epoch = ?", id)
}

func (f *Facade) update(tx *persistence.Tx, query string, args ...interface{}) error {
	res, err := tx.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "update epoch")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "update epoch")
	}
	if n != 1 {
		return errors.Errorf("update epoch: %d rows affected", n)
	}
	return nil
}

func (f *Facade) getOne(tx *persistence.Tx, query string, args ...interface{}) (Epoch, bool, error) {
	var e Epoch
	err := tx.Get(&e, query, args...)
	if err == sql.ErrNoRows {
		return Epoch{}, false, nil
	}
	if err != nil {
		return Epoch{}, false, errors.Wrap(err, "get epoch")
	}
	return e, true, nil
}
