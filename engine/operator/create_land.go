package operator

import (
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/epoch"
	"github.com/tusgame/tusworld/engine/land"
	"github.com/tusgame/tusworld/engine/persistence"
	"github.com/tusgame/tusworld/engine/world"
)

// CreateLandExitCode is the outcome of CreateLandOperator
type CreateLandExitCode uint8

// CreateLandOperator exit codes
const (
	CREATE_LAND_UNEXPECTED_ERROR CreateLandExitCode = iota
	CREATE_LAND_WORLD_DOES_NOT_EXIST
	CREATE_LAND_EPOCH_DOES_NOT_EXIST
	CREATE_LAND_LAND_HAS_BEEN_CREATED
	CREATE_LAND_LAND_HAS_NOT_BEEN_CREATED
)

var createLandExitCodeNames = []string{
	"UNEXPECTED_ERROR",
	"WORLD_DOES_NOT_EXIST",
	"EPOCH_DOES_NOT_EXIST",
	"LAND_HAS_BEEN_CREATED",
	"LAND_HAS_NOT_BEEN_CREATED",
}

// OK tells whether the land has been created
func (c CreateLandExitCode) OK() bool {
	return c == CREATE_LAND_LAND_HAS_BEEN_CREATED
}

func (c CreateLandExitCode) String() string {
	return exitCodeName("CreateLandExitCode", createLandExitCodeNames, uint8(c))
}

// CreateLandOperator creates a land for a user in the current epoch of a world
type CreateLandOperator struct {
	epochLookup
	lands *land.Facade
}

// NewCreateLandOperator creates a CreateLandOperator
func NewCreateLandOperator(worlds *world.Facade, epochs *epoch.Facade, lands *land.Facade) *CreateLandOperator {
	return &CreateLandOperator{epochLookup: epochLookup{worlds: worlds, epochs: epochs}, lands: lands}
}

// CreateLand creates the land; a name already taken in the world fails with LAND_HAS_NOT_BEEN_CREATED
func (op *CreateLandOperator) CreateLand(tx *persistence.Tx, idUser common.IDUser, idWorld common.IDWorld, name string) CreateLandExitCode {
	e, worldFound, epochFound, err := op.current(tx, idWorld)
	if err != nil {
		unexpected("create land", err)
		return CREATE_LAND_UNEXPECTED_ERROR
	}
	switch {
	case !worldFound:
		return CREATE_LAND_WORLD_DOES_NOT_EXIST
	case !epochFound || e.Finished:
		return CREATE_LAND_EPOCH_DOES_NOT_EXIST
	}
	if !op.lands.CreateLand(tx, idUser, idWorld, e.ID, name) {
		return CREATE_LAND_LAND_HAS_NOT_BEEN_CREATED
	}
	return CREATE_LAND_LAND_HAS_BEEN_CREATED
}
