package human

import (
	"context"
	"testing"

	"github.com/bmizerany/assert"
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/persistence"
)

func TestParseKey(t *testing.T) {
	key, err := ParseKey("soldier/archer/novice")
	assert.Equal(t, nil, err)
	assert.Equal(t, Key{Class: "soldier", ID: "archer", Experience: "novice"}, key)
	assert.Equal(t, "soldier/archer/novice", key.String())

	for _, s := range []string{"", "soldier", "soldier/archer", "soldier//novice", "a/b/c/d"} {
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
	holder := common.SettlementHolder(1)

	rec, err := f.GetHuman(tx, holder, Jobless)
	assert.Equal(t, nil, err)
	assert.Equal(t, common.Volume(0), rec.Volume)
	assert.Equal(t, Jobless, rec.Key)

	assert.Equal(t, nil, f.AddHuman(tx, holder, Jobless, 1000))
	assert.Equal(t, nil, f.SubtractHuman(tx, holder, Jobless, 1000))
	humans, err := f.GetHumans(tx, holder)
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(humans))
}
