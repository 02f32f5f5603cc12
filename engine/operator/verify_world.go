package operator

import (
	"github.com/tusgame/tusworld/engine/catalog"
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/persistence"
	"github.com/tusgame/tusworld/engine/world"
)

// VerifyWorldExitCode is the outcome of VerifyWorldOperator
type VerifyWorldExitCode uint8

// VerifyWorldOperator exit codes
const (
	VERIFY_WORLD_UNEXPECTED_ERROR VerifyWorldExitCode = iota
	VERIFY_WORLD_WORLD_DOES_NOT_EXIST
	VERIFY_WORLD_CONFIGURATION_MISMATCH
	VERIFY_WORLD_CONFIGURATION_MATCHES
)

var verifyWorldExitCodeNames = []string{"UNEXPECTED_ERROR", "WORLD_DOES_NOT_EXIST", "CONFIGURATION_MISMATCH", "CONFIGURATION_MATCHES"}

// OK tells whether the world is played with the loaded catalog
func (c VerifyWorldExitCode) OK() bool {
	return c == VERIFY_WORLD_CONFIGURATION_MATCHES
}

func (c VerifyWorldExitCode) String() string {
	return exitCodeName("VerifyWorldExitCode", verifyWorldExitCodeNames, uint8(c))
}

// VerifyWorldOperator checks that a world is configured with the loaded catalog
type VerifyWorldOperator struct {
	catalog *catalog.Catalog
	worlds  *world.Facade
}

// NewVerifyWorldOperator creates a VerifyWorldOperator
func NewVerifyWorldOperator(cat *catalog.Catalog, worlds *world.Facade) *VerifyWorldOperator {
	return &VerifyWorldOperator{catalog: cat, worlds: worlds}
}

// VerifyWorldConfiguration compares the configuration of the world with the catalog name
func (op *VerifyWorldOperator) VerifyWorldConfiguration(tx *persistence.Tx, idWorld common.IDWorld) VerifyWorldExitCode {
	w, found, err := op.worlds.GetWorld(tx, idWorld)
	if err != nil {
		unexpected("verify world configuration", err)
		return VERIFY_WORLD_UNEXPECTED_ERROR
	}
	if !found {
		return VERIFY_WORLD_WORLD_DOES_NOT_EXIST
	}
	if w.Configuration != op.catalog.Name {
		return VERIFY_WORLD_CONFIGURATION_MISMATCH
	}
	return VERIFY_WORLD_CONFIGURATION_MATCHES
}
