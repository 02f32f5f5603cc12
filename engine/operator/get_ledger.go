package operator

import (
	"github.com/tusgame/tusworld/engine/building"
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/human"
	"github.com/tusgame/tusworld/engine/persistence"
	"github.com/tusgame/tusworld/engine/resource"
)

// GetLedgerExitCode is the outcome of the ledger reading operators
type GetLedgerExitCode uint8

// Ledger reading exit codes
const (
	GET_LEDGER_UNEXPECTED_ERROR GetLedgerExitCode = iota
	GET_LEDGER_HAS_BEEN_GOT
)

var getLedgerExitCodeNames = []string{"UNEXPECTED_ERROR", "HAS_BEEN_GOT"}

// OK tells whether the records have been got
func (c GetLedgerExitCode) OK() bool {
	return c == GET_LEDGER_HAS_BEEN_GOT
}

func (c GetLedgerExitCode) String() string {
	return exitCodeName("GetLedgerExitCode", getLedgerExitCodeNames, uint8(c))
}

func getLedgerCode(op string, err error) GetLedgerExitCode {
	if err != nil {
		unexpected(op, err)
		return GET_LEDGER_UNEXPECTED_ERROR
	}
	return GET_LEDGER_HAS_BEEN_GOT
}

// GetBuildingOperator reads building ledgers
type GetBuildingOperator struct {
	buildings *building.Facade
}

// NewGetBuildingOperator creates a GetBuildingOperator
func NewGetBuildingOperator(buildings *building.Facade) *GetBuildingOperator {
	return &GetBuildingOperator{buildings: buildings}
}

// GetBuilding returns the buildings of key, with zero volume when holder owns none
func (op *GetBuildingOperator) GetBuilding(tx *persistence.Tx, holder common.HolderID, key building.Key) (GetLedgerExitCode, building.Record) {
	rec, err := op.buildings.GetBuilding(tx, holder, key)
	return getLedgerCode("get building", err), rec
}

// GetBuildings returns every building of holder
func (op *GetBuildingOperator) GetBuildings(tx *persistence.Tx, holder common.HolderID) (GetLedgerExitCode, building.Set) {
	set, err := op.buildings.GetBuildings(tx, holder)
	return getLedgerCode("get buildings", err), set
}

// GetHumanOperator reads human ledgers
type GetHumanOperator struct {
	humans *human.Facade
}

// NewGetHumanOperator creates a GetHumanOperator
func NewGetHumanOperator(humans *human.Facade) *GetHumanOperator {
	return &GetHumanOperator{humans: humans}
}

// GetHuman returns the humans of key, with zero volume when holder owns none
func (op *GetHumanOperator) GetHuman(tx *persistence.Tx, holder common.HolderID, key human.Key) (GetLedgerExitCode, human.Record) {
	rec, err := op.humans.GetHuman(tx, holder, key)
	return getLedgerCode("get human", err), rec
}

// GetHumans returns every human of holder
func (op *GetHumanOperator) GetHumans(tx *persistence.Tx, holder common.HolderID) (GetLedgerExitCode, human.Set) {
	set, err := op.humans.GetHumans(tx, holder)
	return getLedgerCode("get humans", err), set
}

// GetResourceOperator reads resource ledgers
type GetResourceOperator struct {
	resources *resource.Facade
}

// NewGetResourceOperator creates a GetResourceOperator
func NewGetResourceOperator(resources *resource.Facade) *GetResourceOperator {
	return &GetResourceOperator{resources: resources}
}

// GetResource returns the volume of key, zero when holder owns none
func (op *GetResourceOperator) GetResource(tx *persistence.Tx, holder common.HolderID, key resource.Key) (GetLedgerExitCode, resource.Record) {
	rec, err := op.resources.GetResource(tx, holder, key)
	return getLedgerCode("get resource", err), rec
}

// GetResources returns every resource of holder
func (op *GetResourceOperator) GetResources(tx *persistence.Tx, holder common.HolderID) (GetLedgerExitCode, resource.Set) {
	set, err := op.resources.GetResourceSet(tx, holder)
	return getLedgerCode("get resources", err), set
}
