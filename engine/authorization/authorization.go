package authorization

import (
	"database/sql"

	"github.com/pkg/errors"
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/persistence"
)

// Facade answers whether a user may act upon an entity
type Facade struct{}

// NewFacade creates a Facade
func NewFacade() *Facade {
	return &Facade{}
}

// AuthorizeUserToLand tells whether the user owns the land
func (f *Facade) AuthorizeUserToLand(tx *persistence.Tx, idUser common.IDUser, idLand common.IDLand) (bool, error) {
	return f.exists(tx, "SELECT 1 FROM lands WHERE id_land = ? AND id_user = ?", idLand, idUser)
}

// AuthorizeUserToSettlement tells whether the user owns the land of the settlement
func (f *Facade) AuthorizeUserToSettlement(tx *persistence.Tx, idUser common.IDUser, idSettlement common.IDSettlement) (bool, error) {
	return f.exists(tx, "SELECT 1 FROM settlements s JOIN lands l ON l.id_land = s.id_land WHERE s.id_settlement = ? AND l.id_user = ?", idSettlement, idUser)
}

// AuthorizeUserToHolder tells whether the user may act upon the ledgers of holder.
//
// Only settlements can be acted upon by users.
func (f *Facade) AuthorizeUserToHolder(tx *persistence.Tx, idUser common.IDUser, holder common.HolderID) (bool, error) {
	if holder.Class() != common.HolderClassSettlement {
		return false, nil
	}
	return f.AuthorizeUserToSettlement(tx, idUser, common.IDSettlement(holder.ID()))
}

func (f *Facade) exists(tx *persistence.Tx, query string, args ...interface{}) (bool, error) {
	var one int
	err := tx.Get(&one, query, args...)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "authorize")
	}
	return true, nil
}
