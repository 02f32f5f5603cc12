package operator

import (
	"github.com/tusgame/tusworld/engine/building"
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/human"
	"github.com/tusgame/tusworld/engine/land"
	"github.com/tusgame/tusworld/engine/persistence"
	"github.com/tusgame/tusworld/engine/resource"
	"github.com/tusgame/tusworld/engine/settlement"
)

// landCleaner deletes lands and settlements children first
type landCleaner struct {
	lands       *land.Facade
	settlements *settlement.Facade
	resources   *resource.Facade
	humans      *human.Facade
	buildings   *building.Facade
}

func newLandCleaner(lands *land.Facade, settlements *settlement.Facade, resources *resource.Facade, humans *human.Facade, buildings *building.Facade) *landCleaner {
	return &landCleaner{
		lands:       lands,
		settlements: settlements,
		resources:   resources,
		humans:      humans,
		buildings:   buildings,
	}
}

func (c *landCleaner) deleteSettlement(tx *persistence.Tx, id common.IDSettlement) error {
	holder := common.SettlementHolder(id)
	if err := c.resources.DeleteResources(tx, holder); err != nil {
		return err
	}
	if err := c.humans.DeleteHumans(tx, holder); err != nil {
		return err
	}
	if err := c.buildings.DeleteBuildings(tx, holder); err != nil {
		return err
	}
	return c.settlements.DeleteSettlement(tx, id)
}

func (c *landCleaner) deleteLand(tx *persistence.Tx, id common.IDLand) error {
	settlements, err := c.settlements.GetSettlements(tx, id)
	if err != nil {
		return err
	}
	for _, s := range settlements {
		if err = c.deleteSettlement(tx, s.ID); err != nil {
			return err
		}
	}
	return c.lands.DeleteLand(tx, id)
}
