package epoch

import (
	"context"
	"testing"

	"github.com/bmizerany/assert"
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/persistence"
)

func openTx(t *testing.T) *persistence.Tx {
	db, err := persistence.OpenMemory()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	tx, err := db.Begin(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { tx.Rollback() })
	return tx
}

func TestLifecycle(t *testing.T) {
	tx := openTx(t)
	f := NewFacade()
	world := common.IDWorld(1)

	_, found, err := f.GetEpoch(tx, world)
	assert.Equal(t, nil, err)
	assert.T(t, !found)

	assert.T(t, f.CreateEpoch(tx, world))
	e, found, err := f.GetEpoch(tx, world)
	assert.Equal(t, nil, err)
	assert.T(t, found)
	assert.T(t, !e.Active)
	assert.T(t, !e.Finished)

	assert.Equal(t, nil, f.ActivateEpoch(tx, e.ID))
	assert.Equal(t, nil, f.TickEpoch(tx, e.ID))
	assert.Equal(t, nil, f.TickEpoch(tx, e.ID))
	e, _, _ = f.GetEpoch(tx, world)
	assert.T(t, e.Active)
	assert.Equal(t, uint64(2), e.Ticks)

	assert.Equal(t, nil, f.DeactivateEpoch(tx, e.ID))
	assert.Equal(t, nil, f.FinishEpoch(tx, e.ID))
	e, _, _ = f.GetEpoch(tx, world)
	assert.T(t, !e.Active)
	assert.T(t, e.Finished)

	assert.NotEqual(t, nil, f.TickEpoch(tx, e.ID+100))

	assert.Equal(t, nil, f.DeleteEpoch(tx, e.ID))
	_, found, _ = f.GetEpoch(tx, world)
	assert.T(t, !found)
}

func TestLatestEpochIsCurrent(t *testing.T) {
	tx := openTx(t)
	f := NewFacade()
	assert.T(t, f.CreateEpoch(tx, 1))
	first, _, _ := f.GetEpoch(tx, 1)
	assert.Equal(t, nil, f.FinishEpoch(tx, first.ID))
	assert.T(t, f.CreateEpoch(tx, 1))

	current, _, _ := f.GetEpoch(tx, 1)
	assert.NotEqual(t, first.ID, current.ID)
	assert.T(t, !current.Finished)
}

func TestEpochByLandAndSettlement(t *testing.T) {
	tx := openTx(t)
	f := NewFacade()
	assert.T(t, f.CreateEpoch(tx, 1))
	e, _, _ := f.GetEpoch(tx, 1)

	_, err := tx.Exec("INSERT INTO lands(id_land, id_user, id_world, id_epoch, name) VALUES(?, ?, ?, ?, ?)", 5, 1, 1, e.ID, "Shire")
	assert.Equal(t, nil, err)
	_, err = tx.Exec("INSERT INTO settlements(id_settlement, id_land, name) VALUES(?, ?, ?)", 9, 5, "Hobbiton")
	assert.Equal(t, nil, err)

	byLand, found, err := f.GetEpochByIDLand(tx, 5)
	assert.Equal(t, nil, err)
	assert.T(t, found)
	assert.Equal(t, e, byLand)

	bySettlement, found, err := f.GetEpochByIDSettlement(tx, 9)
	assert.Equal(t, nil, err)
	assert.T(t, found)
	assert.Equal(t, e, bySettlement)

	_, found, err = f.GetEpochByIDSettlement(tx, 10)
	assert.Equal(t, nil, err)
	assert.T(t, !found)
}
