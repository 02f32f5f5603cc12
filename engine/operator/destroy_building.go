package operator

import (
	"github.com/pkg/errors"
	"github.com/tusgame/tusworld/engine/building"
	"github.com/tusgame/tusworld/engine/catalog"
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/ledger"
	"github.com/tusgame/tusworld/engine/persistence"
	"github.com/tusgame/tusworld/engine/resource"
)

// DestroyBuildingExitCode is the outcome of DestroyBuildingOperator
type DestroyBuildingExitCode uint8

// DestroyBuildingOperator exit codes
const (
	DESTROY_BUILDING_UNEXPECTED_ERROR DestroyBuildingExitCode = iota
	DESTROY_BUILDING_TRYING_TO_DESTROY_ZERO_BUILDINGS
	DESTROY_BUILDING_THERE_ARE_NO_BUILDINGS
	DESTROY_BUILDING_NOT_ENOUGH_BUILDINGS
	DESTROY_BUILDING_NOT_ENOUGH_RESOURCES
	DESTROY_BUILDING_BUILDINGS_MISSING_IN_THE_MEANTIME
	DESTROY_BUILDING_RESOURCES_MISSING_IN_THE_MEANTIME
	DESTROY_BUILDING_BUILDING_HAS_BEEN_DESTROYED
)

var destroyBuildingExitCodeNames = []string{
	"UNEXPECTED_ERROR",
	"TRYING_TO_DESTROY_ZERO_BUILDINGS",
	"THERE_ARE_NO_BUILDINGS",
	"NOT_ENOUGH_BUILDINGS",
	"NOT_ENOUGH_RESOURCES",
	"BUILDINGS_MISSING_IN_THE_MEANTIME",
	"RESOURCES_MISSING_IN_THE_MEANTIME",
	"BUILDING_HAS_BEEN_DESTROYED",
}

// OK tells whether the buildings have been destroyed
func (c DestroyBuildingExitCode) OK() bool {
	return c == DESTROY_BUILDING_BUILDING_HAS_BEEN_DESTROYED
}

func (c DestroyBuildingExitCode) String() string {
	return exitCodeName("DestroyBuildingExitCode", destroyBuildingExitCodeNames, uint8(c))
}

// DestroyBuildingOperator tears buildings down, paying the destruction cost
type DestroyBuildingOperator struct {
	catalog   *catalog.Catalog
	buildings *building.Facade
	resources *resource.Facade
}

// NewDestroyBuildingOperator creates a DestroyBuildingOperator
func NewDestroyBuildingOperator(cat *catalog.Catalog, buildings *building.Facade, resources *resource.Facade) *DestroyBuildingOperator {
	return &DestroyBuildingOperator{catalog: cat, buildings: buildings, resources: resources}
}

// DestroyBuilding destroys volume buildings of key
func (op *DestroyBuildingOperator) DestroyBuilding(tx *persistence.Tx, holder common.HolderID, key building.Key, volume common.Volume) DestroyBuildingExitCode {
	if volume == 0 {
		return DESTROY_BUILDING_TRYING_TO_DESTROY_ZERO_BUILDINGS
	}

	rec, err := op.buildings.GetBuilding(tx, holder, key)
	if err != nil {
		unexpected("destroy building", err)
		return DESTROY_BUILDING_UNEXPECTED_ERROR
	}
	if rec.Volume == 0 {
		return DESTROY_BUILDING_THERE_ARE_NO_BUILDINGS
	}
	if rec.Volume < volume {
		return DESTROY_BUILDING_NOT_ENOUGH_BUILDINGS
	}

	cost := op.catalog.BuildingDestroyCost(key, volume)
	have, err := op.resources.GetResourceSet(tx, holder)
	if err != nil {
		unexpected("destroy building", err)
		return DESTROY_BUILDING_UNEXPECTED_ERROR
	}
	if !ledger.Covers(have, cost) {
		return DESTROY_BUILDING_NOT_ENOUGH_RESOURCES
	}

	if err = op.buildings.SubtractBuilding(tx, holder, key, volume); err != nil {
		if isMissing(err) {
			return DESTROY_BUILDING_BUILDINGS_MISSING_IN_THE_MEANTIME
		}
		unexpected("destroy building", err)
		return DESTROY_BUILDING_UNEXPECTED_ERROR
	}
	if err = op.resources.SubtractResourceSet(tx, holder, cost); err != nil {
		if isMissing(err) {
			return DESTROY_BUILDING_RESOURCES_MISSING_IN_THE_MEANTIME
		}
		unexpected("destroy building", err)
		return DESTROY_BUILDING_UNEXPECTED_ERROR
	}
	return DESTROY_BUILDING_BUILDING_HAS_BEEN_DESTROYED
}

// isMissing tells whether a ledger debit failed because the volume was gone
func isMissing(err error) bool {
	cause := errors.Cause(err)
	return cause == ledger.ErrInsufficientVolume || cause == ledger.ErrRecordNotFound
}
