package operator

import (
	"github.com/tusgame/tusworld/engine/building"
	"github.com/tusgame/tusworld/engine/catalog"
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/ledger"
	"github.com/tusgame/tusworld/engine/persistence"
	"github.com/tusgame/tusworld/engine/resource"
)

// BuildBuildingExitCode is the outcome of BuildBuildingOperator
type BuildBuildingExitCode uint8

// BuildBuildingOperator exit codes
const (
	BUILD_BUILDING_UNEXPECTED_ERROR BuildBuildingExitCode = iota
	BUILD_BUILDING_TRYING_TO_BUILD_ZERO_BUILDINGS
	BUILD_BUILDING_NOT_ENOUGH_RESOURCES
	BUILD_BUILDING_BUILDING_HAS_BEEN_BUILT
)

var buildBuildingExitCodeNames = []string{
	"UNEXPECTED_ERROR",
	"TRYING_TO_BUILD_ZERO_BUILDINGS",
	"NOT_ENOUGH_RESOURCES",
	"BUILDING_HAS_BEEN_BUILT",
}

// OK tells whether the buildings have been built
func (c BuildBuildingExitCode) OK() bool {
	return c == BUILD_BUILDING_BUILDING_HAS_BEEN_BUILT
}

func (c BuildBuildingExitCode) String() string {
	return exitCodeName("BuildBuildingExitCode", buildBuildingExitCodeNames, uint8(c))
}

// BuildBuildingOperator turns resources into buildings
type BuildBuildingOperator struct {
	catalog   *catalog.Catalog
	buildings *building.Facade
	resources *resource.Facade
}

// NewBuildBuildingOperator creates a BuildBuildingOperator
func NewBuildBuildingOperator(cat *catalog.Catalog, buildings *building.Facade, resources *resource.Facade) *BuildBuildingOperator {
	return &BuildBuildingOperator{catalog: cat, buildings: buildings, resources: resources}
}

// BuildBuilding builds volume buildings of key paying their cost
func (op *BuildBuildingOperator) BuildBuilding(tx *persistence.Tx, holder common.HolderID, key building.Key, volume common.Volume) BuildBuildingExitCode {
	if volume == 0 {
		return BUILD_BUILDING_TRYING_TO_BUILD_ZERO_BUILDINGS
	}

	cost := op.catalog.BuildingCost(key, volume)
	have, err := op.resources.GetResourceSet(tx, holder)
	if err != nil {
		unexpected("build building", err)
		return BUILD_BUILDING_UNEXPECTED_ERROR
	}
	if !ledger.Covers(have, cost) {
		return BUILD_BUILDING_NOT_ENOUGH_RESOURCES
	}

	if err = op.resources.SubtractResourceSet(tx, holder, cost); err == nil {
		err = op.buildings.AddBuilding(tx, holder, key, volume)
	}
	if err != nil {
		unexpected("build building", err)
		return BUILD_BUILDING_UNEXPECTED_ERROR
	}
	return BUILD_BUILDING_BUILDING_HAS_BEEN_BUILT
}
