package operator

import (
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/land"
	"github.com/tusgame/tusworld/engine/persistence"
	"github.com/tusgame/tusworld/engine/settlement"
)

// GetSettlementExitCode is the outcome of GetSettlementOperator
type GetSettlementExitCode uint8

// GetSettlementOperator exit codes
const (
	GET_SETTLEMENT_UNEXPECTED_ERROR GetSettlementExitCode = iota
	GET_SETTLEMENT_SETTLEMENT_HAS_BEEN_GOT
	GET_SETTLEMENT_SETTLEMENT_HAS_NOT_BEEN_GOT
)

var getSettlementExitCodeNames = []string{"UNEXPECTED_ERROR", "SETTLEMENT_HAS_BEEN_GOT", "SETTLEMENT_HAS_NOT_BEEN_GOT"}

// OK tells whether the settlement has been got
func (c GetSettlementExitCode) OK() bool {
	return c == GET_SETTLEMENT_SETTLEMENT_HAS_BEEN_GOT
}

func (c GetSettlementExitCode) String() string {
	return exitCodeName("GetSettlementExitCode", getSettlementExitCodeNames, uint8(c))
}

// GetSettlementOperator reads one settlement
type GetSettlementOperator struct {
	settlements *settlement.Facade
}

// NewGetSettlementOperator creates a GetSettlementOperator
func NewGetSettlementOperator(settlements *settlement.Facade) *GetSettlementOperator {
	return &GetSettlementOperator{settlements: settlements}
}

// GetSettlement returns the settlement of id
func (op *GetSettlementOperator) GetSettlement(tx *persistence.Tx, idSettlement common.IDSettlement) (GetSettlementExitCode, settlement.Settlement) {
	s, found, err := op.settlements.GetSettlement(tx, idSettlement)
	if err != nil {
		unexpected("get settlement", err)
		return GET_SETTLEMENT_UNEXPECTED_ERROR, settlement.Settlement{}
	}
	if !found {
		return GET_SETTLEMENT_SETTLEMENT_HAS_NOT_BEEN_GOT, settlement.Settlement{}
	}
	return GET_SETTLEMENT_SETTLEMENT_HAS_BEEN_GOT, s
}

// GetSettlementsExitCode is the outcome of GetSettlementsOperator
type GetSettlementsExitCode uint8

// GetSettlementsOperator exit codes
const (
	GET_SETTLEMENTS_UNEXPECTED_ERROR GetSettlementsExitCode = iota
	GET_SETTLEMENTS_LAND_DOES_NOT_EXIST
	GET_SETTLEMENTS_SETTLEMENTS_HAVE_BEEN_GOT
)

var getSettlementsExitCodeNames = []string{"UNEXPECTED_ERROR", "LAND_DOES_NOT_EXIST", "SETTLEMENTS_HAVE_BEEN_GOT"}

// OK tells whether the settlements have been got
func (c GetSettlementsExitCode) OK() bool {
	return c == GET_SETTLEMENTS_SETTLEMENTS_HAVE_BEEN_GOT
}

func (c GetSettlementsExitCode) String() string {
	return exitCodeName("GetSettlementsExitCode", getSettlementsExitCodeNames, uint8(c))
}

// GetSettlementsOperator lists the settlements of a land
type GetSettlementsOperator struct {
	lands       *land.Facade
	settlements *settlement.Facade
}

// NewGetSettlementsOperator creates a GetSettlementsOperator
func NewGetSettlementsOperator(lands *land.Facade, settlements *settlement.Facade) *GetSettlementsOperator {
	return &GetSettlementsOperator{lands: lands, settlements: settlements}
}

// GetSettlements returns every settlement of the land
func (op *GetSettlementsOperator) GetSettlements(tx *persistence.Tx, idLand common.IDLand) (GetSettlementsExitCode, []settlement.Settlement) {
	_, found, err := op.lands.GetLand(tx, idLand)
	if err != nil {
		unexpected("get settlements", err)
		return GET_SETTLEMENTS_UNEXPECTED_ERROR, nil
	}
	if !found {
		return GET_SETTLEMENTS_LAND_DOES_NOT_EXIST, nil
	}
	settlements, err := op.settlements.GetSettlements(tx, idLand)
	if err != nil {
		unexpected("get settlements", err)
		return GET_SETTLEMENTS_UNEXPECTED_ERROR, nil
	}
	return GET_SETTLEMENTS_SETTLEMENTS_HAVE_BEEN_GOT, settlements
}
