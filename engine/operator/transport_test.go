package operator

import (
	"testing"

	"github.com/bmizerany/assert"
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/human"
	"github.com/tusgame/tusworld/engine/resource"
)

func TestTransportDifferentLands(t *testing.T) {
	e := newEnv(t)
	idWorld := e.world("Aldor")
	shire := e.settlement(e.land(1, idWorld, "Shire"), "Hobbiton")
	mordor := e.settlement(e.land(1, idWorld, "Mordor"), "Barad-dur")
	src, dst := common.SettlementHolder(shire), common.SettlementHolder(mordor)
	beforeSrc, beforeDst := e.snapshot(src), e.snapshot(dst)

	assert.Equal(t, TRANSPORT_HUMAN_SETTLEMENTS_ARE_NOT_FROM_THE_SAME_LAND, e.reg.TransportHuman.TransportHuman(e.tx, shire, mordor, human.Jobless, 1))
	assert.Equal(t, TRANSPORT_RESOURCE_SETTLEMENTS_ARE_NOT_FROM_THE_SAME_LAND, e.reg.TransportResource.TransportResource(e.tx, shire, mordor, "gold", 1))
	assert.Equal(t, beforeSrc, e.snapshot(src))
	assert.Equal(t, beforeDst, e.snapshot(dst))
}

func TestTransportChecks(t *testing.T) {
	e := newEnv(t)
	idWorld := e.world("Aldor")
	idLand := e.land(1, idWorld, "Shire")
	hobbiton := e.settlement(idLand, "Hobbiton")
	bywater := e.settlement(idLand, "Bywater")
	th, tr := e.reg.TransportHuman, e.reg.TransportResource

	assert.Equal(t, TRANSPORT_HUMAN_TRYING_TO_TRANSPORT_ZERO_HUMANS, th.TransportHuman(e.tx, hobbiton, hobbiton, human.Jobless, 0))
	assert.Equal(t, TRANSPORT_HUMAN_TRYING_TO_TRANSPORT_TO_THE_SAME_SETTLEMENT, th.TransportHuman(e.tx, hobbiton, hobbiton, human.Jobless, 1))
	assert.Equal(t, TRANSPORT_HUMAN_SOURCE_SETTLEMENT_DOES_NOT_EXIST, th.TransportHuman(e.tx, 404, 405, human.Jobless, 1))
	assert.Equal(t, TRANSPORT_HUMAN_DESTINATION_SETTLEMENT_DOES_NOT_EXIST, th.TransportHuman(e.tx, hobbiton, 405, human.Jobless, 1))
	assert.Equal(t, TRANSPORT_HUMAN_NOT_ENOUGH_HUMANS, th.TransportHuman(e.tx, hobbiton, bywater, human.Jobless, 1001))
	assert.Equal(t, TRANSPORT_HUMAN_NOT_ENOUGH_HUMANS, th.TransportHuman(e.tx, bywater, hobbiton, human.Jobless, 1))

	assert.Equal(t, TRANSPORT_RESOURCE_TRYING_TO_TRANSPORT_ZERO_RESOURCES, tr.TransportResource(e.tx, hobbiton, bywater, "gold", 0))
	assert.Equal(t, TRANSPORT_RESOURCE_TRYING_TO_TRANSPORT_TO_THE_SAME_SETTLEMENT, tr.TransportResource(e.tx, bywater, bywater, "gold", 1))
	assert.Equal(t, TRANSPORT_RESOURCE_SOURCE_SETTLEMENT_DOES_NOT_EXIST, tr.TransportResource(e.tx, 404, bywater, "gold", 1))
	assert.Equal(t, TRANSPORT_RESOURCE_DESTINATION_SETTLEMENT_DOES_NOT_EXIST, tr.TransportResource(e.tx, bywater, 404, "gold", 1))
	assert.Equal(t, TRANSPORT_RESOURCE_NOT_ENOUGH_RESOURCES, tr.TransportResource(e.tx, hobbiton, bywater, "gold", 10001))
}

func TestTransportConservation(t *testing.T) {
	e := newEnv(t)
	idWorld := e.world("Aldor")
	idLand := e.land(1, idWorld, "Shire")
	hobbiton := e.settlement(idLand, "Hobbiton")
	bywater := e.settlement(idLand, "Bywater")
	src, dst := common.SettlementHolder(hobbiton), common.SettlementHolder(bywater)

	for _, volume := range []common.Volume{1, 299, 700} {
		total := e.humanVolume(src, human.Jobless) + e.humanVolume(dst, human.Jobless)
		assert.Equal(t, TRANSPORT_HUMAN_HUMAN_HAS_BEEN_TRANSPORTED, e.reg.TransportHuman.TransportHuman(e.tx, hobbiton, bywater, human.Jobless, volume))
		assert.Equal(t, total, e.humanVolume(src, human.Jobless)+e.humanVolume(dst, human.Jobless))
	}
	assert.Equal(t, common.Volume(0), e.humanVolume(src, human.Jobless))
	assert.Equal(t, common.Volume(1000), e.humanVolume(dst, human.Jobless))

	gold := resource.Key("gold")
	for _, volume := range []common.Volume{5000, 5000} {
		total := e.resourceVolume(src, gold) + e.resourceVolume(dst, gold)
		assert.Equal(t, TRANSPORT_RESOURCE_RESOURCE_HAS_BEEN_TRANSPORTED, e.reg.TransportResource.TransportResource(e.tx, hobbiton, bywater, gold, volume))
		assert.Equal(t, total, e.resourceVolume(src, gold)+e.resourceVolume(dst, gold))
	}
	assert.Equal(t, TRANSPORT_RESOURCE_RESOURCE_HAS_BEEN_TRANSPORTED, e.reg.TransportResource.TransportResource(e.tx, bywater, hobbiton, gold, 1))
	assert.Equal(t, common.Volume(1), e.resourceVolume(src, gold))
	assert.Equal(t, common.Volume(9999), e.resourceVolume(dst, gold))
}
