package catalog

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bmizerany/assert"
	"github.com/tusgame/tusworld/engine/building"
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/human"
	"github.com/tusgame/tusworld/engine/resource"
)

var (
	druid    = human.Key{Class: "sorcerer", ID: "druid", Experience: "novice"}
	archer   = human.Key{Class: "soldier", ID: "archer", Experience: "novice"}
	archerAd = human.Key{Class: "soldier", ID: "archer", Experience: "advanced"}
	barracks = building.Key{Class: "barracks", ID: "regular"}
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, "classic", c.Name)
	assert.T(t, c.IsResource("gold"))
	assert.T(t, !c.IsResource("silver"))

	cost := c.HumanCost(druid, 3)
	assert.Equal(t, 7, len(cost))
	for _, rec := range cost {
		assert.Equal(t, common.Volume(3), rec.Volume)
	}
	_, housed := c.Housing(druid)
	assert.T(t, !housed)

	class, housed := c.Housing(archer)
	assert.T(t, housed)
	assert.Equal(t, "barracks", class)
	assert.Equal(t, common.Volume(20), c.Capacity(barracks, 2))

	assert.T(t, c.IsEngageable(archer))
	assert.T(t, !c.IsEngageable(archerAd))
	assert.T(t, c.IsDismissable(archerAd))
	assert.T(t, !c.IsEngageable(human.Jobless))
	assert.T(t, !c.IsDismissable(human.Jobless))
}

func TestGrant(t *testing.T) {
	c := Default()
	res := c.GrantResources()
	assert.Equal(t, common.Volume(10000), res.Volume(resource.Key("gold")))
	assert.Equal(t, common.Volume(1000), res.Volume(resource.Key("wood")))
	assert.Equal(t, common.Volume(1000), c.GrantHumans().Volume(human.Jobless))

	// the returned set is a copy
	humans := c.GrantHumans()
	delete(humans, human.Jobless)
	assert.Equal(t, common.Volume(1000), c.GrantHumans().Volume(human.Jobless))
}

func TestHousedBy(t *testing.T) {
	keys := Default().HousedBy("barracks")
	assert.Equal(t, 3, len(keys))
	assert.Equal(t, archerAd, keys[0])
	assert.Equal(t, 0, len(Default().HousedBy("castle")))
}

func TestUnknownKeys(t *testing.T) {
	c := Default()
	unknown := building.Key{Class: "castle", ID: "regular"}
	assert.Equal(t, 0, len(c.BuildingCost(unknown, 1)))
	assert.Equal(t, common.Volume(0), c.Capacity(unknown, 5))
	assert.T(t, !c.IsEngageable(human.Key{Class: "a", ID: "b", Experience: "c"}))
}

func TestParseErrors(t *testing.T) {
	docs := []string{
		"resources: [gold]",
		"name: x\nresources: [gold]\nhumans:\n  - {class: worker, id: jobless, experience: novice, costs: {silver: 1}}",
		"name: x\nhumans:\n  - {class: worker, id: jobless, experience: novice, housing: castle}",
		"name: x\nhumans:\n  - {class: soldier, id: archer, experience: novice}",
		"name: x\nhumans:\n  - {class: worker, id: jobless, experience: novice}\ngrant:\n  humans: {nope: 1}",
		"name: [",
	}
	for _, doc := range docs {
		_, err := Parse([]byte(doc))
		assert.NotEqual(t, nil, err, doc)
	}
}

func TestLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "catalog")
	assert.Equal(t, nil, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "mini.yaml")
	doc := "name: mini\nresources: [gold]\nhumans:\n  - {class: worker, id: jobless, experience: novice}\ngrant:\n  resources: {gold: 5}\n"
	assert.Equal(t, nil, ioutil.WriteFile(path, []byte(doc), 0644))

	c, err := Load(path)
	assert.Equal(t, nil, err)
	assert.Equal(t, "mini", c.Name)
	assert.Equal(t, common.Volume(5), c.GrantResources().Volume("gold"))

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.NotEqual(t, nil, err)
}

func TestHugeVolumes(t *testing.T) {
	c := Default()
	for _, volume := range []common.Volume{1 << 62, 1 << 63, common.MaxVolume} {
		cost := c.BuildingCost(barracks, volume)
		assert.NotEqual(t, 0, len(cost))
		for key, rec := range cost {
			assert.T(t, rec.Volume > common.MaxVolume, key, volume)
		}
	}
	assert.T(t, c.Capacity(barracks, 1<<62) > common.MaxVolume)
	assert.T(t, c.Capacity(barracks, common.MaxVolume) > common.MaxVolume)
}
