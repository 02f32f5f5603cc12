package operator

import (
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/persistence"
	"github.com/tusgame/tusworld/engine/settlement"
)

type transportVerdict int

const (
	transportAllowed transportVerdict = iota
	transportSameSettlement
	transportNoSource
	transportNoDestination
	transportDifferentLands
	transportFailed
)

// transportRoute checks that goods may travel between two settlements
type transportRoute struct {
	settlements *settlement.Facade
}

func (r transportRoute) verify(tx *persistence.Tx, op string, source common.IDSettlement, destination common.IDSettlement) transportVerdict {
	if source == destination {
		return transportSameSettlement
	}
	src, found, err := r.settlements.GetSettlement(tx, source)
	if err != nil {
		unexpected(op, err)
		return transportFailed
	}
	if !found {
		return transportNoSource
	}
	dst, found, err := r.settlements.GetSettlement(tx, destination)
	if err != nil {
		unexpected(op, err)
		return transportFailed
	}
	if !found {
		return transportNoDestination
	}
	if src.IDLand != dst.IDLand {
		return transportDifferentLands
	}
	return transportAllowed
}
