package operator

import (
	"github.com/tusgame/tusworld/engine/building"
	"github.com/tusgame/tusworld/engine/catalog"
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/human"
	"github.com/tusgame/tusworld/engine/ledger"
	"github.com/tusgame/tusworld/engine/persistence"
	"github.com/tusgame/tusworld/engine/resource"
)

// EngageHumanExitCode is the outcome of EngageHumanOperator
type EngageHumanExitCode uint8

// EngageHumanOperator exit codes, the checks in the order they are made
const (
	ENGAGE_HUMAN_UNEXPECTED_ERROR EngageHumanExitCode = iota
	ENGAGE_HUMAN_TRYING_TO_ENGAGE_ZERO_HUMANS
	ENGAGE_HUMAN_HUMAN_IS_NOT_ENGAGEABLE
	ENGAGE_HUMAN_NOT_ENOUGH_JOBLESS
	ENGAGE_HUMAN_NOT_ENOUGH_RESOURCES
	ENGAGE_HUMAN_NOT_ENOUGH_BUILDINGS
	ENGAGE_HUMAN_HUMAN_HAS_BEEN_ENGAGED
)

var engageHumanExitCodeNames = []string{
	"UNEXPECTED_ERROR",
	"TRYING_TO_ENGAGE_ZERO_HUMANS",
	"HUMAN_IS_NOT_ENGAGEABLE",
	"NOT_ENOUGH_JOBLESS",
	"NOT_ENOUGH_RESOURCES",
	"NOT_ENOUGH_BUILDINGS",
	"HUMAN_HAS_BEEN_ENGAGED",
}

// OK tells whether the humans have been engaged
func (c EngageHumanExitCode) OK() bool {
	return c == ENGAGE_HUMAN_HUMAN_HAS_BEEN_ENGAGED
}

func (c EngageHumanExitCode) String() string {
	return exitCodeName("EngageHumanExitCode", engageHumanExitCodeNames, uint8(c))
}

// EngageHumanOperator turns jobless humans into specialists
type EngageHumanOperator struct {
	catalog   *catalog.Catalog
	humans    *human.Facade
	resources *resource.Facade
	buildings *building.Facade
}

// NewEngageHumanOperator creates an EngageHumanOperator
func NewEngageHumanOperator(cat *catalog.Catalog, humans *human.Facade, resources *resource.Facade, buildings *building.Facade) *EngageHumanOperator {
	return &EngageHumanOperator{catalog: cat, humans: humans, resources: resources, buildings: buildings}
}

// EngageHuman engages volume humans of key from the jobless of holder
func (op *EngageHumanOperator) EngageHuman(tx *persistence.Tx, holder common.HolderID, key human.Key, volume common.Volume) EngageHumanExitCode {
	if volume == 0 {
		return ENGAGE_HUMAN_TRYING_TO_ENGAGE_ZERO_HUMANS
	}
	if !op.catalog.IsEngageable(key) {
		return ENGAGE_HUMAN_HUMAN_IS_NOT_ENGAGEABLE
	}

	jobless, err := op.humans.GetHuman(tx, holder, human.Jobless)
	if err != nil {
		unexpected("engage human", err)
		return ENGAGE_HUMAN_UNEXPECTED_ERROR
	}
	if jobless.Volume < volume {
		return ENGAGE_HUMAN_NOT_ENOUGH_JOBLESS
	}

	cost := op.catalog.HumanCost(key, volume)
	have, err := op.resources.GetResourceSet(tx, holder)
	if err != nil {
		unexpected("engage human", err)
		return ENGAGE_HUMAN_UNEXPECTED_ERROR
	}
	if !ledger.Covers(have, cost) {
		return ENGAGE_HUMAN_NOT_ENOUGH_RESOURCES
	}

	if class, housed := op.catalog.Housing(key); housed {
		free, err := freeCapacity(tx, op.catalog, op.humans, op.buildings, holder, class)
		if err != nil {
			unexpected("engage human", err)
			return ENGAGE_HUMAN_UNEXPECTED_ERROR
		}
		if free < volume {
			return ENGAGE_HUMAN_NOT_ENOUGH_BUILDINGS
		}
	}

	if err = op.resources.SubtractResourceSet(tx, holder, cost); err == nil {
		if err = op.humans.SubtractHuman(tx, holder, human.Jobless, volume); err == nil {
			err = op.humans.AddHuman(tx, holder, key, volume)
		}
	}
	if err != nil {
		unexpected("engage human", err)
		return ENGAGE_HUMAN_UNEXPECTED_ERROR
	}
	return ENGAGE_HUMAN_HUMAN_HAS_BEEN_ENGAGED
}

// freeCapacity returns how many more humans the buildings of class owned by holder can house
func freeCapacity(tx *persistence.Tx, cat *catalog.Catalog, humans *human.Facade, buildings *building.Facade, holder common.HolderID, class string) (common.Volume, error) {
	owned, err := buildings.GetBuildings(tx, holder)
	if err != nil {
		return 0, err
	}
	var capacity common.Volume
	for key, rec := range owned {
		if key.Class == class {
			capacity = common.AddVolume(capacity, cat.Capacity(key, rec.Volume))
		}
	}

	housed, err := humans.GetHumans(tx, holder)
	if err != nil {
		return 0, err
	}
	var occupants common.Volume
	for _, key := range cat.HousedBy(class) {
		occupants = common.AddVolume(occupants, housed.Volume(key))
	}
	if occupants >= capacity {
		return 0, nil
	}
	return capacity - occupants, nil
}
