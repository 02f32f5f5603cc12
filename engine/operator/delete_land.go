package operator

import (
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/land"
	"github.com/tusgame/tusworld/engine/persistence"
)

// DeleteLandExitCode is the outcome of DeleteLandOperator
type DeleteLandExitCode uint8

// DeleteLandOperator exit codes
const (
	DELETE_LAND_UNEXPECTED_ERROR DeleteLandExitCode = iota
	DELETE_LAND_LAND_DOES_NOT_EXIST
	DELETE_LAND_LAND_HAS_BEEN_DELETED
)

var deleteLandExitCodeNames = []string{"UNEXPECTED_ERROR", "LAND_DOES_NOT_EXIST", "LAND_HAS_BEEN_DELETED"}

// OK tells whether the land has been deleted
func (c DeleteLandExitCode) OK() bool {
	return c == DELETE_LAND_LAND_HAS_BEEN_DELETED
}

func (c DeleteLandExitCode) String() string {
	return exitCodeName("DeleteLandExitCode", deleteLandExitCodeNames, uint8(c))
}

// DeleteLandOperator deletes a land with its settlements and their ledgers
type DeleteLandOperator struct {
	lands   *land.Facade
	cleaner *landCleaner
}

// NewDeleteLandOperator creates a DeleteLandOperator
func NewDeleteLandOperator(lands *land.Facade, cleaner *landCleaner) *DeleteLandOperator {
	return &DeleteLandOperator{lands: lands, cleaner: cleaner}
}

// DeleteLand deletes the land
func (op *DeleteLandOperator) DeleteLand(tx *persistence.Tx, idLand common.IDLand) DeleteLandExitCode {
	_, found, err := op.lands.GetLand(tx, idLand)
	if err != nil {
		unexpected("delete land", err)
		return DELETE_LAND_UNEXPECTED_ERROR
	}
	if !found {
		return DELETE_LAND_LAND_DOES_NOT_EXIST
	}
	if err = op.cleaner.deleteLand(tx, idLand); err != nil {
		unexpected("delete land", err)
		return DELETE_LAND_UNEXPECTED_ERROR
	}
	return DELETE_LAND_LAND_HAS_BEEN_DELETED
}
