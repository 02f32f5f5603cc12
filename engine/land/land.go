package land

import (
	"database/sql"

	"github.com/pkg/errors"
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/persistence"
	"github.com/tusgame/tusworld/engine/twlog"
)

// Land is owned by a user within one epoch of a world
type Land struct {
	ID      common.IDLand  `db:"id_land"`
	IDUser  common.IDUser  `db:"id_user"`
	IDWorld common.IDWorld `db:"id_world"`
	IDEpoch common.IDEpoch `db:"id_epoch"`
	Name    string         `db:"name"`
	Granted bool           `db:"granted"`
}

const _SELECT_LAND = "SELECT id_land, id_user, id_world, id_epoch, name, granted FROM lands"

// Facade persists lands
type Facade struct{}

// NewFacade creates a Facade
func NewFacade() *Facade {
	return &Facade{}
}

// CreateLand inserts a land, returning false when it can not be inserted
// (e.g. the name is already taken in the world)
func (f *Facade) CreateLand(tx *persistence.Tx, idUser common.IDUser, idWorld common.IDWorld, idEpoch common.IDEpoch, name string) bool {
	_, err := tx.Exec("INSERT INTO lands(id_user, id_world, id_epoch, name, granted) VALUES(?, ?, ?, ?, ?)", idUser, idWorld, idEpoch, name, false)
	if err != nil {
		twlog.Warnf("land: create %s in world %d failed: %v", name, idWorld, err)
		return false
	}
	return true
}

// DeleteLand removes the land record
func (f *Facade) DeleteLand(tx *persistence.Tx, id common.IDLand) error {
	_, err := tx.Exec("DELETE FROM lands WHERE id_land = ?", id)
	return errors.Wrapf(err, "delete land %d", id)
}

// GetLand returns the land of id
func (f *Facade) GetLand(tx *persistence.Tx, id common.IDLand) (Land, bool, error) {
	return f.getOne(tx, _SELECT_LAND+" WHERE id_land = ?", id)
}

// GetLandByName returns the land called name in a world
func (f *Facade) GetLandByName(tx *persistence.Tx, idWorld common.IDWorld, name string) (Land, bool, error) {
	return f.getOne(tx, _SELECT_LAND+" WHERE id_world = ? AND name = ?", idWorld, name)
}

// GetLands returns the lands of a user in a world
func (f *Facade) GetLands(tx *persistence.Tx, idUser common.IDUser, idWorld common.IDWorld) ([]Land, error) {
	return f.getMany(tx, _SELECT_LAND+" WHERE id_user = ? AND id_world = ? ORDER BY id_land", idUser, idWorld)
}

// GetLandsByEpoch returns every land of an epoch
func (f *Facade) GetLandsByEpoch(tx *persistence.Tx, idEpoch common.IDEpoch) ([]Land, error) {
	return f.getMany(tx, _SELECT_LAND+" WHERE id_epoch = ? ORDER BY id_land", idEpoch)
}

// MarkGranted records that the land received its initial grant
func (f *Facade) MarkGranted(tx *persistence.Tx, id common.IDLand) error {
	_, err := tx.Exec("UPDATE lands SET granted = ? WHERE id_land = ?", true, id)
	return errors.Wrapf(err, "mark land %d granted", id)
}

func (f *Facade) getOne(tx *persistence.Tx, query string, args ...interface{}) (Land, bool, error) {
	var l Land
	err := tx.Get(&l, query, args...)
	if err == sql.ErrNoRows {
		return Land{}, false, nil
	}
	if err != nil {
		return Land{}, false, errors.Wrap(err, "get land")
	}
	return l, true, nil
}

func (f *Facade) getMany(tx *persistence.Tx, query string, args ...interface{}) ([]Land, error) {
	var lands []Land
	if err := tx.Select(&lands, query, args...); err != nil {
		return nil, errors.Wrap(err, "get lands")
	}
	return lands, nil
}
