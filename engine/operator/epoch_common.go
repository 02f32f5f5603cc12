package operator

import (
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/epoch"
	"github.com/tusgame/tusworld/engine/persistence"
	"github.com/tusgame/tusworld/engine/world"
)

type epochLookup struct {
	worlds *world.Facade
	epochs *epoch.Facade
}

// current returns the current epoch of the world, telling which of the two is missing
func (l epochLookup) current(tx *persistence.Tx, idWorld common.IDWorld) (e epoch.Epoch, worldFound bool, epochFound bool, err error) {
	_, worldFound, err = l.worlds.GetWorld(tx, idWorld)
	if err != nil || !worldFound {
		return
	}
	e, epochFound, err = l.epochs.GetEpoch(tx, idWorld)
	return
}
