package operator

import (
	"github.com/tusgame/tusworld/engine/authorization"
	"github.com/tusgame/tusworld/engine/building"
	"github.com/tusgame/tusworld/engine/catalog"
	"github.com/tusgame/tusworld/engine/epoch"
	"github.com/tusgame/tusworld/engine/human"
	"github.com/tusgame/tusworld/engine/land"
	"github.com/tusgame/tusworld/engine/resource"
	"github.com/tusgame/tusworld/engine/settlement"
	"github.com/tusgame/tusworld/engine/user"
	"github.com/tusgame/tusworld/engine/world"
)

// Facades are the persistence facades operators are built upon
type Facades struct {
	Authorization *authorization.Facade
	Building      *building.Facade
	Epoch         *epoch.Facade
	Human         *human.Facade
	Land          *land.Facade
	Resource      *resource.Facade
	Settlement    *settlement.Facade
	User          *user.Facade
	World         *world.Facade
}

// NewFacades creates the facades over the relational store
func NewFacades() *Facades {
	return &Facades{
		Authorization: authorization.NewFacade(),
		Building:      building.NewFacade(building.NewAccessor()),
		Epoch:         epoch.NewFacade(),
		Human:         human.NewFacade(human.NewAccessor()),
		Land:          land.NewFacade(),
		Resource:      resource.NewFacade(resource.NewAccessor()),
		Settlement:    settlement.NewFacade(),
		User:          user.NewFacade(),
		World:         world.NewFacade(),
	}
}

// Registry holds one instance of every operator
type Registry struct {
	Catalog *catalog.Catalog

	Authenticate      *AuthenticateOperator
	Authorize         *AuthorizeOperator
	GetEpochOf        *GetEpochOperator
	VerifyWorld       *VerifyWorldOperator
	CreateUser        *CreateUserOperator
	CreateWorld       *CreateWorldOperator
	CreateEpoch       *CreateEpochOperator
	DeleteEpoch       *DeleteEpochOperator
	ActivateEpoch     *ActivateEpochOperator
	DeactivateEpoch   *DeactivateEpochOperator
	FinishEpoch       *FinishEpochOperator
	TickEpoch         *TickEpochOperator
	CreateLand        *CreateLandOperator
	DeleteLand        *DeleteLandOperator
	GetLand           *GetLandOperator
	GetLands          *GetLandsOperator
	CreateSettlement  *CreateSettlementOperator
	DeleteSettlement  *DeleteSettlementOperator
	GetSettlement     *GetSettlementOperator
	GetSettlements    *GetSettlementsOperator
	BuildBuilding     *BuildBuildingOperator
	DestroyBuilding   *DestroyBuildingOperator
	GetBuilding       *GetBuildingOperator
	EngageHuman       *EngageHumanOperator
	DismissHuman      *DismissHumanOperator
	GetHuman          *GetHumanOperator
	GetResource       *GetResourceOperator
	TransportHuman    *TransportHumanOperator
	TransportResource *TransportResourceOperator
}

// NewRegistry wires every operator to the facades and the catalog
func NewRegistry(cat *catalog.Catalog, f *Facades) *Registry {
	cleaner := newLandCleaner(f.Land, f.Settlement, f.Resource, f.Human, f.Building)
	return &Registry{
		Catalog: cat,

		Authenticate:      NewAuthenticateOperator(f.User),
		Authorize:         NewAuthorizeOperator(f.Authorization),
		GetEpochOf:        NewGetEpochOperator(f.Epoch),
		VerifyWorld:       NewVerifyWorldOperator(cat, f.World),
		CreateUser:        NewCreateUserOperator(f.User),
		CreateWorld:       NewCreateWorldOperator(f.World),
		CreateEpoch:       NewCreateEpochOperator(f.World, f.Epoch),
		DeleteEpoch:       NewDeleteEpochOperator(f.World, f.Epoch, cleaner),
		ActivateEpoch:     NewActivateEpochOperator(f.World, f.Epoch),
		DeactivateEpoch:   NewDeactivateEpochOperator(f.World, f.Epoch),
		FinishEpoch:       NewFinishEpochOperator(f.World, f.Epoch),
		TickEpoch:         NewTickEpochOperator(cat, f.World, f.Epoch, f.Land, f.Settlement, f.Human, f.Resource),
		CreateLand:        NewCreateLandOperator(f.World, f.Epoch, f.Land),
		DeleteLand:        NewDeleteLandOperator(f.Land, cleaner),
		GetLand:           NewGetLandOperator(f.Land),
		GetLands:          NewGetLandsOperator(f.World, f.Land),
		CreateSettlement:  NewCreateSettlementOperator(f.Land, f.Settlement, NewGrantGiver(cat, f.Resource, f.Human)),
		DeleteSettlement:  NewDeleteSettlementOperator(f.Settlement, cleaner),
		GetSettlement:     NewGetSettlementOperator(f.Settlement),
		GetSettlements:    NewGetSettlementsOperator(f.Land, f.Settlement),
		BuildBuilding:     NewBuildBuildingOperator(cat, f.Building, f.Resource),
		DestroyBuilding:   NewDestroyBuildingOperator(cat, f.Building, f.Resource),
		GetBuilding:       NewGetBuildingOperator(f.Building),
		EngageHuman:       NewEngageHumanOperator(cat, f.Human, f.Resource, f.Building),
		DismissHuman:      NewDismissHumanOperator(cat, f.Human, f.Resource),
		GetHuman:          NewGetHumanOperator(f.Human),
		GetResource:       NewGetResourceOperator(f.Resource),
		TransportHuman:    NewTransportHumanOperator(f.Settlement, f.Human),
		TransportResource: NewTransportResourceOperator(f.Settlement, f.Resource),
	}
}
