package operator

import (
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/epoch"
	"github.com/tusgame/tusworld/engine/persistence"
	"github.com/tusgame/tusworld/engine/world"
)

// DeleteEpochExitCode is the outcome of DeleteEpochOperator
type DeleteEpochExitCode uint8

// DeleteEpochOperator exit codes
const (
	DELETE_EPOCH_UNEXPECTED_ERROR DeleteEpochExitCode = iota
	DELETE_EPOCH_WORLD_DOES_NOT_EXIST
	DELETE_EPOCH_EPOCH_DOES_NOT_EXIST
	DELETE_EPOCH_EPOCH_IS_ACTIVE
	DELETE_EPOCH_EPOCH_HAS_BEEN_DELETED
)

var deleteEpochExitCodeNames = []string{
	"UNEXPECTED_ERROR",
	"WORLD_DOES_NOT_EXIST",
	"EPOCH_DOES_NOT_EXIST",
	"EPOCH_IS_ACTIVE",
	"EPOCH_HAS_BEEN_DELETED",
}

// OK tells whether the epoch has been deleted
func (c DeleteEpochExitCode) OK() bool {
	return c == DELETE_EPOCH_EPOCH_HAS_BEEN_DELETED
}

func (c DeleteEpochExitCode) String() string {
	return exitCodeName("DeleteEpochExitCode", deleteEpochExitCodeNames, uint8(c))
}

// DeleteEpochOperator removes the current epoch of a world with every land played in it
type DeleteEpochOperator struct {
	epochLookup
	cleaner *landCleaner
}

// NewDeleteEpochOperator creates a DeleteEpochOperator
func NewDeleteEpochOperator(worlds *world.Facade, epochs *epoch.Facade, cleaner *landCleaner) *DeleteEpochOperator {
	return &DeleteEpochOperator{epochLookup: epochLookup{worlds: worlds, epochs: epochs}, cleaner: cleaner}
}

// DeleteEpoch deletes the current epoch unless it is active
func (op *DeleteEpochOperator) DeleteEpoch(tx *persistence.Tx, idWorld common.IDWorld) DeleteEpochExitCode {
	e, worldFound, epochFound, err := op.current(tx, idWorld)
	if err != nil {
		unexpected("delete epoch", err)
		return DELETE_EPOCH_UNEXPECTED_ERROR
	}
	switch {
	case !worldFound:
		return DELETE_EPOCH_WORLD_DOES_NOT_EXIST
	case !epochFound:
		return DELETE_EPOCH_EPOCH_DOES_NOT_EXIST
	case e.Active:
		return DELETE_EPOCH_EPOCH_IS_ACTIVE
	}

	lands, err := op.cleaner.lands.GetLandsByEpoch(tx, e.ID)
	if err == nil {
		for _, l := range lands {
			if err = op.cleaner.deleteLand(tx, l.ID); err != nil {
				break
			}
		}
	}
	if err == nil {
		err = op.epochs.DeleteEpoch(tx, e.ID)
	}
	if err != nil {
		unexpected("delete epoch", err)
		return DELETE_EPOCH_UNEXPECTED_ERROR
	}
	return DELETE_EPOCH_EPOCH_HAS_BEEN_DELETED
}
