package settlement

import (
	"context"
	"testing"

	"github.com/bmizerany/assert"
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/persistence"
)

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

	f := NewFacade()
	id, ok := f.CreateSettlement(tx, 1, "Hobbiton")
	assert.T(t, ok)
	assert.NotEqual(t, common.IDSettlement(0), id)
	_, ok = f.CreateSettlement(tx, 1, "Bywater")
	assert.T(t, ok)
	_, ok = f.CreateSettlement(tx, 1, "Hobbiton")
	assert.T(t, !ok)
	_, ok = f.CreateSettlement(tx, 2, "Hobbiton")
	assert.T(t, ok)

	s, found, err := f.GetSettlement(tx, id)
	assert.Equal(t, nil, err)
	assert.T(t, found)
	assert.Equal(t, "Hobbiton", s.Name)
	assert.Equal(t, common.SettlementHolder(id), s.Holder())

	byName, found, err := f.GetSettlementByName(tx, 1, "Hobbiton")
	assert.Equal(t, nil, err)
	assert.T(t, found)
	assert.Equal(t, s, byName)

	settlements, err := f.GetSettlements(tx, 1)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(settlements))

	assert.Equal(t, nil, f.DeleteSettlement(tx, id))
	_, found, _ = f.GetSettlement(tx, id)
	assert.T(t, !found)
}
