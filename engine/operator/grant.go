package operator

import (
	"github.com/tusgame/tusworld/engine/catalog"
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/human"
	"github.com/tusgame/tusworld/engine/persistence"
	"github.com/tusgame/tusworld/engine/resource"
)

// GrantGiver gives the initial grant to the first settlement of a land
type GrantGiver interface {
	GiveGrant(tx *persistence.Tx, idSettlement common.IDSettlement) error
}

type catalogGrantGiver struct {
	catalog   *catalog.Catalog
	resources *resource.Facade
	humans    *human.Facade
}

// NewGrantGiver creates a GrantGiver crediting the grant of the catalog
func NewGrantGiver(cat *catalog.Catalog, resources *resource.Facade, humans *human.Facade) GrantGiver {
	return &catalogGrantGiver{catalog: cat, resources: resources, humans: humans}
}

func (g *catalogGrantGiver) GiveGrant(tx *persistence.Tx, idSettlement common.IDSettlement) error {
	holder := common.SettlementHolder(idSettlement)
	if err := g.resources.AddResourceSet(tx, holder, g.catalog.GrantResources()); err != nil {
		return err
	}
	return g.humans.AddHumanSet(tx, holder, g.catalog.GrantHumans())
}
