package operator

import (
	"testing"

	"github.com/bmizerany/assert"
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/human"
)

func TestCreateLand(t *testing.T) {
	e := newEnv(t)
	idWorld := e.world("Aldor")
	e.land(1, idWorld, "Shire")

	assert.Equal(t, CREATE_LAND_LAND_HAS_NOT_BEEN_CREATED, e.reg.CreateLand.CreateLand(e.tx, 1, idWorld, "Shire"))
	assert.Equal(t, CREATE_LAND_LAND_HAS_NOT_BEEN_CREATED, e.reg.CreateLand.CreateLand(e.tx, 2, idWorld, "Shire"))
	assert.Equal(t, CREATE_LAND_WORLD_DOES_NOT_EXIST, e.reg.CreateLand.CreateLand(e.tx, 1, 99, "Shire"))

	assert.Equal(t, CREATE_WORLD_WORLD_HAS_BEEN_CREATED, e.reg.CreateWorld.CreateWorld(e.tx, "Brem", "classic"))
	brem, _, _ := e.f.World.GetWorldByName(e.tx, "Brem")
	assert.Equal(t, CREATE_LAND_EPOCH_DOES_NOT_EXIST, e.reg.CreateLand.CreateLand(e.tx, 1, brem.ID, "Shire"))

	code, lands := e.reg.GetLands.GetLands(e.tx, 1, idWorld)
	assert.Equal(t, GET_LANDS_LANDS_HAVE_BEEN_GOT, code)
	assert.Equal(t, 1, len(lands))
	code, _ = e.reg.GetLands.GetLands(e.tx, 1, 99)
	assert.Equal(t, GET_LANDS_WORLD_DOES_NOT_EXIST, code)

	getCode, l := e.reg.GetLand.GetLand(e.tx, lands[0].ID)
	assert.Equal(t, GET_LAND_LAND_HAS_BEEN_GOT, getCode)
	assert.Equal(t, "Shire", l.Name)
	getCode, _ = e.reg.GetLand.GetLand(e.tx, 99)
	assert.Equal(t, GET_LAND_LAND_HAS_NOT_BEEN_GOT, getCode)
}

func TestCreateSettlementGrantsOnce(t *testing.T) {
	e := newEnv(t)
	idWorld := e.world("Aldor")
	idLand := e.land(1, idWorld, "Shire")

	first := common.SettlementHolder(e.settlement(idLand, "Hobbiton"))
	assert.Equal(t, common.Volume(1000), e.humanVolume(first, human.Jobless))
	assert.Equal(t, common.Volume(10000), e.resourceVolume(first, "food"))
	l, _, _ := e.f.Land.GetLand(e.tx, idLand)
	assert.T(t, l.Granted)

	second := common.SettlementHolder(e.settlement(idLand, "Bywater"))
	s := e.snapshot(second)
	assert.Equal(t, 0, len(s.resources))
	assert.Equal(t, 0, len(s.humans))

	assert.Equal(t, CREATE_SETTLEMENT_SETTLEMENT_DOES_EXIST, e.reg.CreateSettlement.CreateSettlement(e.tx, idLand, "Hobbiton"))
	assert.Equal(t, CREATE_SETTLEMENT_LAND_DOES_NOT_EXIST, e.reg.CreateSettlement.CreateSettlement(e.tx, 99, "Hobbiton"))

	code, settlements := e.reg.GetSettlements.GetSettlements(e.tx, idLand)
	assert.Equal(t, GET_SETTLEMENTS_SETTLEMENTS_HAVE_BEEN_GOT, code)
	assert.Equal(t, 2, len(settlements))
	code, _ = e.reg.GetSettlements.GetSettlements(e.tx, 99)
	assert.Equal(t, GET_SETTLEMENTS_LAND_DOES_NOT_EXIST, code)

	getCode, got := e.reg.GetSettlement.GetSettlement(e.tx, common.IDSettlement(first.ID()))
	assert.Equal(t, GET_SETTLEMENT_SETTLEMENT_HAS_BEEN_GOT, getCode)
	assert.Equal(t, "Hobbiton", got.Name)
	getCode, _ = e.reg.GetSettlement.GetSettlement(e.tx, 99)
	assert.Equal(t, GET_SETTLEMENT_SETTLEMENT_HAS_NOT_BEEN_GOT, getCode)
}

func TestDeleteSettlementAndLand(t *testing.T) {
	e := newEnv(t)
	idWorld := e.world("Aldor")
	idLand := e.land(1, idWorld, "Shire")
	hobbiton := e.settlement(idLand, "Hobbiton")
	bywater := e.settlement(idLand, "Bywater")
	assert.Equal(t, TRANSPORT_RESOURCE_RESOURCE_HAS_BEEN_TRANSPORTED, e.reg.TransportResource.TransportResource(e.tx, hobbiton, bywater, "gold", 10))

	assert.Equal(t, DELETE_SETTLEMENT_SETTLEMENT_HAS_BEEN_DELETED, e.reg.DeleteSettlement.DeleteSettlement(e.tx, bywater))
	assert.Equal(t, DELETE_SETTLEMENT_SETTLEMENT_DOES_NOT_EXIST, e.reg.DeleteSettlement.DeleteSettlement(e.tx, bywater))
	assert.Equal(t, 0, len(e.snapshot(common.SettlementHolder(bywater)).resources))

	assert.Equal(t, DELETE_LAND_LAND_HAS_BEEN_DELETED, e.reg.DeleteLand.DeleteLand(e.tx, idLand))
	assert.Equal(t, DELETE_LAND_LAND_DOES_NOT_EXIST, e.reg.DeleteLand.DeleteLand(e.tx, idLand))
	s := e.snapshot(common.SettlementHolder(hobbiton))
	assert.Equal(t, 0, len(s.resources))
	assert.Equal(t, 0, len(s.humans))
	_, found, _ := e.f.Settlement.GetSettlement(e.tx, hobbiton)
	assert.T(t, !found)
}
