package operator

import (
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/epoch"
	"github.com/tusgame/tusworld/engine/persistence"
	"github.com/tusgame/tusworld/engine/world"
)

// ActivateEpochExitCode is the outcome of ActivateEpochOperator
type ActivateEpochExitCode uint8

// ActivateEpochOperator exit codes
const (
	ACTIVATE_EPOCH_UNEXPECTED_ERROR ActivateEpochExitCode = iota
	ACTIVATE_EPOCH_WORLD_DOES_NOT_EXIST
	ACTIVATE_EPOCH_EPOCH_DOES_NOT_EXIST
	ACTIVATE_EPOCH_EPOCH_HAS_BEEN_FINISHED
	ACTIVATE_EPOCH_EPOCH_IS_ACTIVE
	ACTIVATE_EPOCH_EPOCH_HAS_BEEN_ACTIVATED
)

var activateEpochExitCodeNames = []string{
	"UNEXPECTED_ERROR",
	"WORLD_DOES_NOT_EXIST",
	"EPOCH_DOES_NOT_EXIST",
	"EPOCH_HAS_BEEN_FINISHED",
	"EPOCH_IS_ACTIVE",
	"EPOCH_HAS_BEEN_ACTIVATED",
}

// OK tells whether the epoch has been activated
func (c ActivateEpochExitCode) OK() bool {
	return c == ACTIVATE_EPOCH_EPOCH_HAS_BEEN_ACTIVATED
}

func (c ActivateEpochExitCode) String() string {
	return exitCodeName("ActivateEpochExitCode", activateEpochExitCodeNames, uint8(c))
}

// ActivateEpochOperator opens the current epoch of a world for play
type ActivateEpochOperator struct {
	epochLookup
}

// NewActivateEpochOperator creates an ActivateEpochOperator
func NewActivateEpochOperator(worlds *world.Facade, epochs *epoch.Facade) *ActivateEpochOperator {
	return &ActivateEpochOperator{epochLookup{worlds: worlds, epochs: epochs}}
}

// ActivateEpoch activates the current epoch
func (op *ActivateEpochOperator) ActivateEpoch(tx *persistence.Tx, idWorld common.IDWorld) ActivateEpochExitCode {
	e, worldFound, epochFound, err := op.current(tx, idWorld)
	if err != nil {
		unexpected("activate epoch", err)
		return ACTIVATE_EPOCH_UNEXPECTED_ERROR
	}
	switch {
	case !worldFound:
		return ACTIVATE_EPOCH_WORLD_DOES_NOT_EXIST
	case !epochFound:
		return ACTIVATE_EPOCH_EPOCH_DOES_NOT_EXIST
	case e.Finished:
		return ACTIVATE_EPOCH_EPOCH_HAS_BEEN_FINISHED
	case e.Active:
		return ACTIVATE_EPOCH_EPOCH_IS_ACTIVE
	}
	if err = op.epochs.ActivateEpoch(tx, e.ID); err != nil {
		unexpected("activate epoch", err)
		return ACTIVATE_EPOCH_UNEXPECTED_ERROR
	}
	return ACTIVATE_EPOCH_EPOCH_HAS_BEEN_ACTIVATED
}

// DeactivateEpochExitCode is the outcome of DeactivateEpochOperator
type DeactivateEpochExitCode uint8

// DeactivateEpochOperator exit codes
const (
	DEACTIVATE_EPOCH_UNEXPECTED_ERROR DeactivateEpochExitCode = iota
	DEACTIVATE_EPOCH_WORLD_DOES_NOT_EXIST
	DEACTIVATE_EPOCH_EPOCH_DOES_NOT_EXIST
	DEACTIVATE_EPOCH_EPOCH_HAS_BEEN_FINISHED
	DEACTIVATE_EPOCH_EPOCH_IS_NOT_ACTIVE
	DEACTIVATE_EPOCH_EPOCH_HAS_BEEN_DEACTIVATED
)

var deactivateEpochExitCodeNames = []string{
	"UNEXPECTED_ERROR",
	"WORLD_DOES_NOT_EXIST",
	"EPOCH_DOES_NOT_EXIST",
	"EPOCH_HAS_BEEN_FINISHED",
	"EPOCH_IS_NOT_ACTIVE",
	"EPOCH_HAS_BEEN_DEACTIVATED",
}

// OK tells whether the epoch has been deactivated
func (c DeactivateEpochExitCode) OK() bool {
	return c == DEACTIVATE_EPOCH_EPOCH_HAS_BEEN_DEACTIVATED
}

func (c DeactivateEpochExitCode) String() string {
	return exitCodeName("DeactivateEpochExitCode", deactivateEpochExitCodeNames, uint8(c))
}

// DeactivateEpochOperator suspends play in the current epoch of a world
type DeactivateEpochOperator struct {
	epochLookup
}

// NewDeactivateEpochOperator creates a DeactivateEpochOperator
func NewDeactivateEpochOperator(worlds *world.Facade, epochs *epoch.Facade) *DeactivateEpochOperator {
	return &DeactivateEpochOperator{epochLookup{worlds: worlds, epochs: epochs}}
}

// DeactivateEpoch deactivates the current epoch
func (op *DeactivateEpochOperator) DeactivateEpoch(tx *persistence.Tx, idWorld common.IDWorld) DeactivateEpochExitCode {
	e, worldFound, epochFound, err := op.current(tx, idWorld)
	if err != nil {
		unexpected("deactivate epoch", err)
		return DEACTIVATE_EPOCH_UNEXPECTED_ERROR
	}
	switch {
	case !worldFound:
		return DEACTIVATE_EPOCH_WORLD_DOES_NOT_EXIST
	case !epochFound:
		return DEACTIVATE_EPOCH_EPOCH_DOES_NOT_EXIST
	case e.Finished:
		return DEACTIVATE_EPOCH_EPOCH_HAS_BEEN_FINISHED
	case !e.Active:
		return DEACTIVATE_EPOCH_EPOCH_IS_NOT_ACTIVE
	}
	if err = op.epochs.DeactivateEpoch(tx, e.ID); err != nil {
		unexpected("deactivate epoch", err)
		return DEACTIVATE_EPOCH_UNEXPECTED_ERROR
	}
	return DEACTIVATE_EPOCH_EPOCH_HAS_BEEN_DEACTIVATED
}

// FinishEpochExitCode is the outcome of FinishEpochOperator
type FinishEpochExitCode uint8

// FinishEpochOperator exit codes
const (
	FINISH_EPOCH_UNEXPECTED_ERROR FinishEpochExitCode = iota
	FINISH_EPOCH_WORLD_DOES_NOT_EXIST
	FINISH_EPOCH_EPOCH_DOES_NOT_EXIST
	FINISH_EPOCH_EPOCH_HAS_BEEN_FINISHED
	FINISH_EPOCH_EPOCH_IS_ACTIVE
	FINISH_EPOCH_EPOCH_IS_FINISHED
)

var finishEpochExitCodeNames = []string{
	"UNEXPECTED_ERROR",
	"WORLD_DOES_NOT_EXIST",
	"EPOCH_DOES_NOT_EXIST",
	"EPOCH_HAS_BEEN_FINISHED",
	"EPOCH_IS_ACTIVE",
	"EPOCH_IS_FINISHED",
}

// OK tells whether the epoch is now finished
func (c FinishEpochExitCode) OK() bool {
	return c == FINISH_EPOCH_EPOCH_IS_FINISHED
}

func (c FinishEpochExitCode) String() string {
	return exitCodeName("FinishEpochExitCode", finishEpochExitCodeNames, uint8(c))
}

// FinishEpochOperator closes the current epoch of a world for good
type FinishEpochOperator struct {
	epochLookup
}

// NewFinishEpochOperator creates a FinishEpochOperator
func NewFinishEpochOperator(worlds *world.Facade, epochs *epoch.Facade) *FinishEpochOperator {
	return &FinishEpochOperator{epochLookup{worlds: worlds, epochs: epochs}}
}

// FinishEpoch finishes the current epoch; it must have been deactivated first
func (op *FinishEpochOperator) FinishEpoch(tx *persistence.Tx, idWorld common.IDWorld) FinishEpochExitCode {
	e, worldFound, epochFound, err := op.current(tx, idWorld)
	if err != nil {
		unexpected("finish epoch", err)
		return FINISH_EPOCH_UNEXPECTED_ERROR
	}
	switch {
	case !worldFound:
		return FINISH_EPOCH_WORLD_DOES_NOT_EXIST
	case !epochFound:
		return FINISH_EPOCH_EPOCH_DOES_NOT_EXIST
	case e.Finished:
		return FINISH_EPOCH_EPOCH_HAS_BEEN_FINISHED
	case e.Active:
		return FINISH_EPOCH_EPOCH_IS_ACTIVE
	}
	if err = op.epochs.FinishEpoch(tx, e.ID); err != nil {
		unexpected("finish epoch", err)
		return FINISH_EPOCH_UNEXPECTED_ERROR
	}
	return FINISH_EPOCH_EPOCH_IS_FINISHED
}
