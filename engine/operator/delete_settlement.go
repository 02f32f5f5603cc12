package operator

import (
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/persistence"
	"github.com/tusgame/tusworld/engine/settlement"
)

// DeleteSettlementExitCode is the outcome of DeleteSettlementOperator
type DeleteSettlementExitCode uint8

// DeleteSettlementOperator exit codes
const (
	DELETE_SETTLEMENT_UNEXPECTED_ERROR DeleteSettlementExitCode = iota
	DELETE_SETTLEMENT_SETTLEMENT_DOES_NOT_EXIST
	DELETE_SETTLEMENT_SETTLEMENT_HAS_BEEN_DELETED
)

var deleteSettlementExitCodeNames = []string{"UNEXPECTED_ERROR", "SETTLEMENT_DOES_NOT_EXIST", "SETTLEMENT_HAS_BEEN_DELETED"}

// OK tells whether the settlement has been deleted
func (c DeleteSettlementExitCode) OK() bool {
	return c == DELETE_SETTLEMENT_SETTLEMENT_HAS_BEEN_DELETED
}

func (c DeleteSettlementExitCode) String() string {
	return exitCodeName("DeleteSettlementExitCode", deleteSettlementExitCodeNames, uint8(c))
}

// DeleteSettlementOperator deletes a settlement with its ledgers
type DeleteSettlementOperator struct {
	settlements *settlement.Facade
	cleaner     *landCleaner
}

// NewDeleteSettlementOperator creates a DeleteSettlementOperator
func NewDeleteSettlementOperator(settlements *settlement.Facade, cleaner *landCleaner) *DeleteSettlementOperator {
	return &DeleteSettlementOperator{settlements: settlements, cleaner: cleaner}
}

// DeleteSettlement deletes the settlement
func (op *DeleteSettlementOperator) DeleteSettlement(tx *persistence.Tx, idSettlement common.IDSettlement) DeleteSettlementExitCode {
	_, found, err := op.settlements.GetSettlement(tx, idSettlement)
	if err != nil {
		unexpected("delete settlement", err)
		return DELETE_SETTLEMENT_UNEXPECTED_ERROR
	}
	if !found {
		return DELETE_SETTLEMENT_SETTLEMENT_DOES_NOT_EXIST
	}
	if err = op.cleaner.deleteSettlement(tx, idSettlement); err != nil {
		unexpected("delete settlement", err)
		return DELETE_SETTLEMENT_UNEXPECTED_ERROR
	}
	return DELETE_SETTLEMENT_SETTLEMENT_HAS_BEEN_DELETED
}
