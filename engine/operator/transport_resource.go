package operator

import (
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/persistence"
	"github.com/tusgame/tusworld/engine/resource"
	"github.com/tusgame/tusworld/engine/settlement"
)

// TransportResourceExitCode is the outcome of TransportResourceOperator
type TransportResourceExitCode uint8

// TransportResourceOperator exit codes
const (
	TRANSPORT_RESOURCE_UNEXPECTED_ERROR TransportResourceExitCode = iota
	TRANSPORT_RESOURCE_TRYING_TO_TRANSPORT_ZERO_RESOURCES
	TRANSPORT_RESOURCE_TRYING_TO_TRANSPORT_TO_THE_SAME_SETTLEMENT
	TRANSPORT_RESOURCE_SOURCE_SETTLEMENT_DOES_NOT_EXIST
	TRANSPORT_RESOURCE_DESTINATION_SETTLEMENT_DOES_NOT_EXIST
	TRANSPORT_RESOURCE_SETTLEMENTS_ARE_NOT_FROM_THE_SAME_LAND
	TRANSPORT_RESOURCE_NOT_ENOUGH_RESOURCES
	TRANSPORT_RESOURCE_RESOURCE_HAS_BEEN_TRANSPORTED
)

var transportResourceExitCodeNames = []string{
	"UNEXPECTED_ERROR",
	"TRYING_TO_TRANSPORT_ZERO_RESOURCES",
	"TRYING_TO_TRANSPORT_TO_THE_SAME_SETTLEMENT",
	"SOURCE_SETTLEMENT_DOES_NOT_EXIST",
	"DESTINATION_SETTLEMENT_DOES_NOT_EXIST",
	"SETTLEMENTS_ARE_NOT_FROM_THE_SAME_LAND",
	"NOT_ENOUGH_RESOURCES",
	"RESOURCE_HAS_BEEN_TRANSPORTED",
}

var transportResourceVerdicts = map[transportVerdict]TransportResourceExitCode{
	transportSameSettlement: TRANSPORT_RESOURCE_TRYING_TO_TRANSPORT_TO_THE_SAME_SETTLEMENT,
	transportNoSource:       TRANSPORT_RESOURCE_SOURCE_SETTLEMENT_DOES_NOT_EXIST,
	transportNoDestination:  TRANSPORT_RESOURCE_DESTINATION_SETTLEMENT_DOES_NOT_EXIST,
	transportDifferentLands: TRANSPORT_RESOURCE_SETTLEMENTS_ARE_NOT_FROM_THE_SAME_LAND,
	transportFailed:         TRANSPORT_RESOURCE_UNEXPECTED_ERROR,
}

// OK tells whether the resources have been transported
func (c TransportResourceExitCode) OK() bool {
	return c == TRANSPORT_RESOURCE_RESOURCE_HAS_BEEN_TRANSPORTED
}

func (c TransportResourceExitCode) String() string {
	return exitCodeName("TransportResourceExitCode", transportResourceExitCodeNames, uint8(c))
}

// TransportResourceOperator moves resources between settlements of one land
type TransportResourceOperator struct {
	route     transportRoute
	resources *resource.Facade
}

// NewTransportResourceOperator creates a TransportResourceOperator
func NewTransportResourceOperator(settlements *settlement.Facade, resources *resource.Facade) *TransportResourceOperator {
	return &TransportResourceOperator{route: transportRoute{settlements: settlements}, resources: resources}
}

// TransportResource moves volume of key from source to destination
func (op *TransportResourceOperator) TransportResource(tx *persistence.Tx, source common.IDSettlement, destination common.IDSettlement, key resource.Key, volume common.Volume) TransportResourceExitCode {
	if volume == 0 {
		return TRANSPORT_RESOURCE_TRYING_TO_TRANSPORT_ZERO_RESOURCES
	}
	if verdict := op.route.verify(tx, "transport resource", source, destination); verdict != transportAllowed {
		return transportResourceVerdicts[verdict]
	}

	src, dst := common.SettlementHolder(source), common.SettlementHolder(destination)
	rec, err := op.resources.GetResource(tx, src, key)
	if err != nil {
		unexpected("transport resource", err)
		return TRANSPORT_RESOURCE_UNEXPECTED_ERROR
	}
	if rec.Volume < volume {
		return TRANSPORT_RESOURCE_NOT_ENOUGH_RESOURCES
	}

	if err = op.resources.SubtractResource(tx, src, key, volume); err == nil {
		err = op.resources.AddResource(tx, dst, key, volume)
	}
	if err != nil {
		unexpected("transport resource", err)
		return TRANSPORT_RESOURCE_UNEXPECTED_ERROR
	}
	return TRANSPORT_RESOURCE_RESOURCE_HAS_BEEN_TRANSPORTED
}
