package operator

import (
	"testing"

	"github.com/bmizerany/assert"
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/resource"
)

func TestBuildBuilding(t *testing.T) {
	e := newEnv(t)
	holder := e.granted()

	assert.Equal(t, BUILD_BUILDING_TRYING_TO_BUILD_ZERO_BUILDINGS, e.reg.BuildBuilding.BuildBuilding(e.tx, holder, barracks, 0))

	before := e.snapshot(holder)
	// 1000 rock pays for 10 barracks
	assert.Equal(t, BUILD_BUILDING_NOT_ENOUGH_RESOURCES, e.reg.BuildBuilding.BuildBuilding(e.tx, holder, barracks, 11))
	assert.Equal(t, before, e.snapshot(holder))

	assert.Equal(t, BUILD_BUILDING_BUILDING_HAS_BEEN_BUILT, e.reg.BuildBuilding.BuildBuilding(e.tx, holder, barracks, 10))
	assert.Equal(t, common.Volume(0), e.resourceVolume(holder, "rock"))
	assert.Equal(t, common.Volume(0), e.resourceVolume(holder, "wood"))
	assert.Equal(t, common.Volume(10000-200), e.resourceVolume(holder, "gold"))

	code, rec := e.reg.GetBuilding.GetBuilding(e.tx, holder, barracks)
	assert.Equal(t, GET_LEDGER_HAS_BEEN_GOT, code)
	assert.Equal(t, common.Volume(10), rec.Volume)
}

func TestDestroyBuilding(t *testing.T) {
	e := newEnv(t)
	holder := e.granted()
	assert.Equal(t, BUILD_BUILDING_BUILDING_HAS_BEEN_BUILT, e.reg.BuildBuilding.BuildBuilding(e.tx, holder, barracks, 2))

	assert.Equal(t, DESTROY_BUILDING_TRYING_TO_DESTROY_ZERO_BUILDINGS, e.reg.DestroyBuilding.DestroyBuilding(e.tx, holder, farm, 0))
	assert.Equal(t, DESTROY_BUILDING_THERE_ARE_NO_BUILDINGS, e.reg.DestroyBuilding.DestroyBuilding(e.tx, holder, farm, 1))
	assert.Equal(t, DESTROY_BUILDING_NOT_ENOUGH_BUILDINGS, e.reg.DestroyBuilding.DestroyBuilding(e.tx, holder, barracks, 3))

	gold := e.resourceVolume(holder, "gold")
	assert.Equal(t, DESTROY_BUILDING_BUILDING_HAS_BEEN_DESTROYED, e.reg.DestroyBuilding.DestroyBuilding(e.tx, holder, barracks, 1))
	assert.Equal(t, gold-10, e.resourceVolume(holder, "gold"))

	assert.Equal(t, nil, e.f.Resource.SubtractResource(e.tx, holder, resource.Key("gold"), gold-10))
	before := e.snapshot(holder)
	assert.Equal(t, DESTROY_BUILDING_NOT_ENOUGH_RESOURCES, e.reg.DestroyBuilding.DestroyBuilding(e.tx, holder, barracks, 1))
	assert.Equal(t, before, e.snapshot(holder))

	code, set := e.reg.GetBuilding.GetBuildings(e.tx, holder)
	assert.Equal(t, GET_LEDGER_HAS_BEEN_GOT, code)
	assert.Equal(t, common.Volume(1), set.Volume(barracks))
}

func TestBuildBuildingCostOverflow(t *testing.T) {
	e := newEnv(t)
	holder := e.granted()

	before := e.snapshot(holder)
	for _, volume := range []common.Volume{1 << 62, 1 << 63, common.MaxVolume} {
		assert.Equal(t, BUILD_BUILDING_NOT_ENOUGH_RESOURCES, e.reg.BuildBuilding.BuildBuilding(e.tx, holder, barracks, volume))
		assert.Equal(t, before, e.snapshot(holder))
	}
}
