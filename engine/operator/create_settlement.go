package operator

import (
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/land"
	"github.com/tusgame/tusworld/engine/persistence"
	"github.com/tusgame/tusworld/engine/settlement"
)

// CreateSettlementExitCode is the outcome of CreateSettlementOperator
type CreateSettlementExitCode uint8

// CreateSettlementOperator exit codes
const (
	CREATE_SETTLEMENT_UNEXPECTED_ERROR CreateSettlementExitCode = iota
	CREATE_SETTLEMENT_LAND_DOES_NOT_EXIST
	CREATE_SETTLEMENT_SETTLEMENT_DOES_EXIST
	CREATE_SETTLEMENT_SETTLEMENT_HAS_BEEN_CREATED
	CREATE_SETTLEMENT_SETTLEMENT_HAS_NOT_BEEN_CREATED
)

var createSettlementExitCodeNames = []string{
	"UNEXPECTED_ERROR",
	"LAND_DOES_NOT_EXIST",
	"SETTLEMENT_DOES_EXIST",
	"SETTLEMENT_HAS_BEEN_CREATED",
	"SETTLEMENT_HAS_NOT_BEEN_CREATED",
}

// OK tells whether the settlement has been created
func (c CreateSettlementExitCode) OK() bool {
	return c == CREATE_SETTLEMENT_SETTLEMENT_HAS_BEEN_CREATED
}

func (c CreateSettlementExitCode) String() string {
	return exitCodeName("CreateSettlementExitCode", createSettlementExitCodeNames, uint8(c))
}

// CreateSettlementOperator founds settlements.
//
// The first settlement of a land receives the grant and the land is marked granted.
type CreateSettlementOperator struct {
	lands       *land.Facade
	settlements *settlement.Facade
	grant       GrantGiver
}

// NewCreateSettlementOperator creates a CreateSettlementOperator
func NewCreateSettlementOperator(lands *land.Facade, settlements *settlement.Facade, grant GrantGiver) *CreateSettlementOperator {
	return &CreateSettlementOperator{lands: lands, settlements: settlements, grant: grant}
}

// CreateSettlement founds the settlement called name on the land
func (op *CreateSettlementOperator) CreateSettlement(tx *persistence.Tx, idLand common.IDLand, name string) CreateSettlementExitCode {
	l, found, err := op.lands.GetLand(tx, idLand)
	if err != nil {
		unexpected("create settlement", err)
		return CREATE_SETTLEMENT_UNEXPECTED_ERROR
	}
	if !found {
		return CREATE_SETTLEMENT_LAND_DOES_NOT_EXIST
	}
	_, found, err = op.settlements.GetSettlementByName(tx, idLand, name)
	if err != nil {
		unexpected("create settlement", err)
		return CREATE_SETTLEMENT_UNEXPECTED_ERROR
	}
	if found {
		return CREATE_SETTLEMENT_SETTLEMENT_DOES_EXIST
	}

	id, created := op.settlements.CreateSettlement(tx, idLand, name)
	if !created {
		return CREATE_SETTLEMENT_SETTLEMENT_HAS_NOT_BEEN_CREATED
	}
	if !l.Granted {
		if err = op.grant.GiveGrant(tx, id); err == nil {
			err = op.lands.MarkGranted(tx, idLand)
		}
		if err != nil {
			unexpected("create settlement", err)
			return CREATE_SETTLEMENT_UNEXPECTED_ERROR
		}
	}
	return CREATE_SETTLEMENT_SETTLEMENT_HAS_BEEN_CREATED
}
