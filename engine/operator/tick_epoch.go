package operator

import (
	"github.com/tusgame/tusworld/engine/catalog"
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/epoch"
	"github.com/tusgame/tusworld/engine/human"
	"github.com/tusgame/tusworld/engine/land"
	"github.com/tusgame/tusworld/engine/persistence"
	"github.com/tusgame/tusworld/engine/resource"
	"github.com/tusgame/tusworld/engine/settlement"
	"github.com/tusgame/tusworld/engine/world"
)

// TickEpochExitCode is the outcome of TickEpochOperator
type TickEpochExitCode uint8

// TickEpochOperator exit codes
const (
	TICK_EPOCH_UNEXPECTED_ERROR TickEpochExitCode = iota
	TICK_EPOCH_WORLD_DOES_NOT_EXIST
	TICK_EPOCH_EPOCH_DOES_NOT_EXIST
	TICK_EPOCH_EPOCH_HAS_BEEN_FINISHED
	TICK_EPOCH_EPOCH_IS_ACTIVE
	TICK_EPOCH_EPOCH_HAS_BEEN_TACK
)

var tickEpochExitCodeNames = []string{
	"UNEXPECTED_ERROR",
	"WORLD_DOES_NOT_EXIST",
	"EPOCH_DOES_NOT_EXIST",
	"EPOCH_HAS_BEEN_FINISHED",
	"EPOCH_IS_ACTIVE",
	"EPOCH_HAS_BEEN_TACK",
}

// OK tells whether the epoch has been tack
func (c TickEpochExitCode) OK() bool {
	return c == TICK_EPOCH_EPOCH_HAS_BEEN_TACK
}

func (c TickEpochExitCode) String() string {
	return exitCodeName("TickEpochExitCode", tickEpochExitCodeNames, uint8(c))
}

// TickEpochOperator advances an epoch by one tick.
//
// Players can not act during a tick: the epoch must be deactivated first.
type TickEpochOperator struct {
	epochLookup
	catalog     *catalog.Catalog
	lands       *land.Facade
	settlements *settlement.Facade
	humans      *human.Facade
	resources   *resource.Facade
}

// NewTickEpochOperator creates a TickEpochOperator
func NewTickEpochOperator(cat *catalog.Catalog, worlds *world.Facade, epochs *epoch.Facade, lands *land.Facade, settlements *settlement.Facade, humans *human.Facade, resources *resource.Facade) *TickEpochOperator {
	return &TickEpochOperator{
		epochLookup: epochLookup{worlds: worlds, epochs: epochs},
		catalog:     cat,
		lands:       lands,
		settlements: settlements,
		humans:      humans,
		resources:   resources,
	}
}

// TickEpoch increments the tick counter and credits every settlement with its production
func (op *TickEpochOperator) TickEpoch(tx *persistence.Tx, idWorld common.IDWorld) TickEpochExitCode {
	e, worldFound, epochFound, err := op.current(tx, idWorld)
	if err != nil {
		unexpected("tick epoch", err)
		return TICK_EPOCH_UNEXPECTED_ERROR
	}
	switch {
	case !worldFound:
		return TICK_EPOCH_WORLD_DOES_NOT_EXIST
	case !epochFound:
		return TICK_EPOCH_EPOCH_DOES_NOT_EXIST
	case e.Finished:
		return TICK_EPOCH_EPOCH_HAS_BEEN_FINISHED
	case e.Active:
		return TICK_EPOCH_EPOCH_IS_ACTIVE
	}

	if err = op.produce(tx, e.ID); err == nil {
		err = op.epochs.TickEpoch(tx, e.ID)
	}
	if err != nil {
		unexpected("tick epoch", err)
		return TICK_EPOCH_UNEXPECTED_ERROR
	}
	return TICK_EPOCH_EPOCH_HAS_BEEN_TACK
}

func (op *TickEpochOperator) produce(tx *persistence.Tx, idEpoch common.IDEpoch) error {
	lands, err := op.lands.GetLandsByEpoch(tx, idEpoch)
	if err != nil {
		return err
	}
	for _, l := range lands {
		settlements, err := op.settlements.GetSettlements(tx, l.ID)
		if err != nil {
			return err
		}
		for _, s := range settlements {
			humans, err := op.humans.GetHumans(tx, s.Holder())
			if err != nil {
				return err
			}
			production := resource.Set{}
			for key, rec := range humans {
				for r, p := range op.catalog.Production(key, rec.Volume) {
					p.Volume = common.AddVolume(p.Volume, production[r].Volume)
					production[r] = p
				}
			}
			owned, err := op.resources.GetResourceSet(tx, s.Holder())
			if err != nil {
				return err
			}
			// stores are full at common.MaxVolume
			for r, p := range production {
				if room := common.MaxVolume - owned.Volume(r); p.Volume > room {
					p.Volume = room
					production[r] = p
				}
			}
			if err = op.resources.AddResourceSet(tx, s.Holder(), production); err != nil {
				return err
			}
		}
	}
	return nil
}
