package operator

import (
	"github.com/tusgame/tusworld/engine/persistence"
	"github.com/tusgame/tusworld/engine/world"
)

// CreateWorldExitCode is the outcome of CreateWorldOperator
type CreateWorldExitCode uint8

// CreateWorldOperator exit codes
const (
	CREATE_WORLD_UNEXPECTED_ERROR CreateWorldExitCode = iota
	CREATE_WORLD_WORLD_HAS_BEEN_CREATED
	CREATE_WORLD_WORLD_HAS_NOT_BEEN_CREATED
)

var createWorldExitCodeNames = []string{"UNEXPECTED_ERROR", "WORLD_HAS_BEEN_CREATED", "WORLD_HAS_NOT_BEEN_CREATED"}

// OK tells whether the world has been created
func (c CreateWorldExitCode) OK() bool {
	return c == CREATE_WORLD_WORLD_HAS_BEEN_CREATED
}

func (c CreateWorldExitCode) String() string {
	return exitCodeName("CreateWorldExitCode", createWorldExitCodeNames, uint8(c))
}

// CreateWorldOperator creates worlds
type CreateWorldOperator struct {
	worlds *world.Facade
}

// NewCreateWorldOperator creates a CreateWorldOperator
func NewCreateWorldOperator(worlds *world.Facade) *CreateWorldOperator {
	return &CreateWorldOperator{worlds: worlds}
}

// CreateWorld creates a world played with configuration
func (op *CreateWorldOperator) CreateWorld(tx *persistence.Tx, name string, configuration string) CreateWorldExitCode {
	_, found, err := op.worlds.GetWorldByName(tx, name)
	if err != nil {
		unexpected("create world", err)
		return CREATE_WORLD_UNEXPECTED_ERROR
	}
	if found || !op.worlds.CreateWorld(tx, name, configuration) {
		return CREATE_WORLD_WORLD_HAS_NOT_BEEN_CREATED
	}
	return CREATE_WORLD_WORLD_HAS_BEEN_CREATED
}
