package settlement

import (
	"database/sql"

	"github.com/pkg/errors"
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/persistence"
	"github.com/tusgame/tusworld/engine/twlog"
)

// Settlement belongs to exactly one land and holds ledgers
type Settlement struct {
	ID     common.IDSettlement `db:"id_settlement"`
	IDLand common.IDLand       `db:"id_land"`
	Name   string              `db:"name"`
}

// Holder returns the ledger holder of the settlement
func (s Settlement) Holder() common.HolderID {
	return common.SettlementHolder(s.ID)
}

const _SELECT_SETTLEMENT = "SELECT id_settlement, id_land, name FROM settlements"

// Facade persists settlements
type Facade struct{}

// NewFacade creates a Facade
func NewFacade() *Facade {
	return &Facade{}
}

// CreateSettlement inserts a settlement, returning false when it can not be inserted
func (f *Facade) CreateSettlement(tx *persistence.Tx, idLand common.IDLand, name string) (common.IDSettlement, bool) {
	var id common.IDSettlement
	err := tx.Get(&id, "INSERT INTO settlements(id_land, name) VALUES(?, ?) RETURNING id_settlement", idLand, name)
	if err != nil {
		twlog.Warnf("settlement: create %s in land %d failed: %v", name, idLand, err)
		return 0, false
	}
	return id, true
}

// DeleteSettlement removes the settlement record
func (f *Facade) DeleteSettlement(tx *persistence.Tx, id common.IDSettlement) error {
	_, err := tx.Exec("DELETE FROM settlements WHERE id_settlement = ?", id)
	return errors.Wrapf(err, "delete settlement %d", id)
}

// GetSettlement returns the settlement of id
func (f *Facade) GetSettlement(tx *persistence.Tx, id common.IDSettlement) (Settlement, bool, error) {
	return f.getOne(tx, _SELECT_SETTLEMENT+" WHERE id_settlement = ?", id)
}

// GetSettlementByName returns the settlement called name in a land
func (f *Facade) GetSettlementByName(tx *persistence.Tx, idLand common.IDLand, name string) (Settlement, bool, error) {
	return f.getOne(tx, _SELECT_SETTLEMENT+" WHERE id_land = ? AND name = ?", idLand, name)
}

// GetSettlements returns every settlement of a land
func (f *Facade) GetSettlements(tx *persistence.Tx, idLand common.IDLand) ([]Settlement, error) {
	var settlements []Settlement
	if err := tx.Select(&settlements, _SELECT_SETTLEMENT+" WHERE id_land = ? ORDER BY id_settlement", idLand); err != nil {
		return nil, errors.Wrap(err, "get settlements")
	}
	return settlements, nil
}

func (f *Facade) getOne(tx *persistence.Tx, query string, args ...interface{}) (Settlement, bool, error) {
	var s Settlement
	err := tx.Get(&s, query, args...)
	if err == sql.ErrNoRows {
		return Settlement{}, false, nil
	}
	if err != nil {
		return Settlement{}, false, errors.Wrap(err, "get settlement")
	}
	return s, true, nil
}
