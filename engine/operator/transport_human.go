package operator

import (
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/human"
	"github.com/tusgame/tusworld/engine/persistence"
	"github.com/tusgame/tusworld/engine/settlement"
)

// TransportHumanExitCode is the outcome of TransportHumanOperator
type TransportHumanExitCode uint8

// TransportHumanOperator exit codes
const (
	TRANSPORT_HUMAN_UNEXPECTED_ERROR TransportHumanExitCode = iota
	TRANSPORT_HUMAN_TRYING_TO_TRANSPORT_ZERO_HUMANS
	TRANSPORT_HUMAN_TRYING_TO_TRANSPORT_TO_THE_SAME_SETTLEMENT
	TRANSPORT_HUMAN_SOURCE_SETTLEMENT_DOES_NOT_EXIST
	TRANSPORT_HUMAN_DESTINATION_SETTLEMENT_DOES_NOT_EXIST
	TRANSPORT_HUMAN_SETTLEMENTS_ARE_NOT_FROM_THE_SAME_LAND
	TRANSPORT_HUMAN_NOT_ENOUGH_HUMANS
	TRANSPORT_HUMAN_HUMAN_HAS_BEEN_TRANSPORTED
)

var transportHumanExitCodeNames = []string{
	"UNEXPECTED_ERROR",
	"TRYING_TO_TRANSPORT_ZERO_HUMANS",
	"TRYING_TO_TRANSPORT_TO_THE_SAME_SETTLEMENT",
	"SOURCE_SETTLEMENT_DOES_NOT_EXIST",
	"DESTINATION_SETTLEMENT_DOES_NOT_EXIST",
	"SETTLEMENTS_ARE_NOT_FROM_THE_SAME_LAND",
	"NOT_ENOUGH_HUMANS",
	"HUMAN_HAS_BEEN_TRANSPORTED",
}

var transportHumanVerdicts = map[transportVerdict]TransportHumanExitCode{
	transportSameSettlement: TRANSPORT_HUMAN_TRYING_TO_TRANSPORT_TO_THE_SAME_SETTLEMENT,
	transportNoSource:       TRANSPORT_HUMAN_SOURCE_SETTLEMENT_DOES_NOT_EXIST,
	transportNoDestination:  TRANSPORT_HUMAN_DESTINATION_SETTLEMENT_DOES_NOT_EXIST,
	transportDifferentLands: TRANSPORT_HUMAN_SETTLEMENTS_ARE_NOT_FROM_THE_SAME_LAND,
	transportFailed:         TRANSPORT_HUMAN_UNEXPECTED_ERROR,
}

// OK tells whether the humans have been transported
func (c TransportHumanExitCode) OK() bool {
	return c == TRANSPORT_HUMAN_HUMAN_HAS_BEEN_TRANSPORTED
}

func (c TransportHumanExitCode) String() string {
	return exitCodeName("TransportHumanExitCode", transportHumanExitCodeNames, uint8(c))
}

// TransportHumanOperator moves humans between settlements of one land
type TransportHumanOperator struct {
	route  transportRoute
	humans *human.Facade
}

// NewTransportHumanOperator creates a TransportHumanOperator
func NewTransportHumanOperator(settlements *settlement.Facade, humans *human.Facade) *TransportHumanOperator {
	return &TransportHumanOperator{route: transportRoute{settlements: settlements}, humans: humans}
}

// TransportHuman moves volume humans of key from source to destination
func (op *TransportHumanOperator) TransportHuman(tx *persistence.Tx, source common.IDSettlement, destination common.IDSettlement, key human.Key, volume common.Volume) TransportHumanExitCode {
	if volume == 0 {
		return TRANSPORT_HUMAN_TRYING_TO_TRANSPORT_ZERO_HUMANS
	}
	if verdict := op.route.verify(tx, "transport human", source, destination); verdict != transportAllowed {
		return transportHumanVerdicts[verdict]
	}

	src, dst := common.SettlementHolder(source), common.SettlementHolder(destination)
	rec, err := op.humans.GetHuman(tx, src, key)
	if err != nil {
		unexpected("transport human", err)
		return TRANSPORT_HUMAN_UNEXPECTED_ERROR
	}
	if rec.Volume < volume {
		return TRANSPORT_HUMAN_NOT_ENOUGH_HUMANS
	}

	if err = op.humans.SubtractHuman(tx, src, key, volume); err == nil {
		err = op.humans.AddHuman(tx, dst, key, volume)
	}
	if err != nil {
		unexpected("transport human", err)
		return TRANSPORT_HUMAN_UNEXPECTED_ERROR
	}
	return TRANSPORT_HUMAN_HUMAN_HAS_BEEN_TRANSPORTED
}
