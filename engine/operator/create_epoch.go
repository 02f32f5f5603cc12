package operator

import (
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/epoch"
	"github.com/tusgame/tusworld/engine/persistence"
	"github.com/tusgame/tusworld/engine/world"
)

// CreateEpochExitCode is the outcome of CreateEpochOperator
type CreateEpochExitCode uint8

// CreateEpochOperator exit codes
const (
	CREATE_EPOCH_UNEXPECTED_ERROR CreateEpochExitCode = iota
	CREATE_EPOCH_WORLD_DOES_NOT_EXIST
	CREATE_EPOCH_EPOCH_DOES_EXIST
	CREATE_EPOCH_EPOCH_HAS_BEEN_CREATED
	CREATE_EPOCH_EPOCH_HAS_NOT_BEEN_CREATED
)

var createEpochExitCodeNames = []string{
	"UNEXPECTED_ERROR",
	"WORLD_DOES_NOT_EXIST",
	"EPOCH_DOES_EXIST",
	"EPOCH_HAS_BEEN_CREATED",
	"EPOCH_HAS_NOT_BEEN_CREATED",
}

// OK tells whether the epoch has been created
func (c CreateEpochExitCode) OK() bool {
	return c == CREATE_EPOCH_EPOCH_HAS_BEEN_CREATED
}

func (c CreateEpochExitCode) String() string {
	return exitCodeName("CreateEpochExitCode", createEpochExitCodeNames, uint8(c))
}

// CreateEpochOperator opens a new epoch in a world
type CreateEpochOperator struct {
	epochLookup
}

// NewCreateEpochOperator creates a CreateEpochOperator
func NewCreateEpochOperator(worlds *world.Facade, epochs *epoch.Facade) *CreateEpochOperator {
	return &CreateEpochOperator{epochLookup{worlds: worlds, epochs: epochs}}
}

// CreateEpoch creates an inactive epoch unless an unfinished one exists
func (op *CreateEpochOperator) CreateEpoch(tx *persistence.Tx, idWorld common.IDWorld) CreateEpochExitCode {
	e, worldFound, epochFound, err := op.current(tx, idWorld)
	if err != nil {
		unexpected("create epoch", err)
		return CREATE_EPOCH_UNEXPECTED_ERROR
	}
	if !worldFound {
		return CREATE_EPOCH_WORLD_DOES_NOT_EXIST
	}
	if epochFound && !e.Finished {
		return CREATE_EPOCH_EPOCH_DOES_EXIST
	}
	if !op.epochs.CreateEpoch(tx, idWorld) {
		return CREATE_EPOCH_EPOCH_HAS_NOT_BEEN_CREATED
	}
	return CREATE_EPOCH_EPOCH_HAS_BEEN_CREATED
}
