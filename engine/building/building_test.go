package building

import (
	"context"
	"testing"

	"github.com/bmizerany/assert"
	"github.com/pkg/errors"
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/ledger"
	"github.com/tusgame/tusworld/engine/persistence"
)

func TestParseKey(t *testing.T) {
	key, err := ParseKey("barracks/fortified")
	assert.Equal(t, nil, err)
	assert.Equal(t, Key{Class: "barracks", ID: "fortified"}, key)
	assert.Equal(t, "barracks/fortified", key.String())

	for _, s := range []string{"", "barracks", "barracks/", "/regular", "a/b/c"} {
		_, err := ParseKey(s)
		assert.NotEqual(t, nil, err, s)
	}
}

func TestFacade(t *testing.T) {
	db, err := persistence.OpenMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	tx, err := db.Begin(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	defer tx.Rollback()

	f := NewFacade(NewAccessor())
	holder := common.SettlementHolder(7)
	barracks := Key{Class: "barracks", ID: "regular"}
	farm := Key{Class: "farm", ID: "regular"}

	assert.Equal(t, "barracks/regular", barracks.String())
	assert.Equal(t, nil, f.AddBuilding(tx, holder, barracks, 2))
	assert.Equal(t, nil, f.AddBuilding(tx, holder, barracks, 3))
	assert.Equal(t, nil, f.AddBuilding(tx, holder, farm, 1))

	rec, err := f.GetBuilding(tx, holder, barracks)
	assert.Equal(t, nil, err)
	assert.Equal(t, common.Volume(5), rec.Volume)

	err = f.SubtractBuilding(tx, holder, farm, 2)
	assert.Equal(t, ledger.ErrInsufficientVolume, errors.Cause(err))
	assert.Equal(t, nil, f.SubtractBuilding(tx, holder, farm, 1))

	set, err := f.GetBuildings(tx, holder)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(set))
	_, hasFarm := set[farm]
	assert.T(t, !hasFarm)

	assert.Equal(t, nil, f.DeleteBuildings(tx, holder))
	rec, err = f.GetBuilding(tx, holder, barracks)
	assert.Equal(t, nil, err)
	assert.Equal(t, common.Volume(0), rec.Volume)
}
