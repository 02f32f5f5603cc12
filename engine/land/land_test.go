package land

import (
	"context"
	"testing"

	"github.com/bmizerany/assert"
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
	assert.T(t, f.CreateLand(tx, 1, 1, 1, "Shire"))
	assert.T(t, f.CreateLand(tx, 1, 1, 1, "Mordor"))
	assert.T(t, f.CreateLand(tx, 2, 2, 1, "Shire"))

	l, found, err := f.GetLandByName(tx, 1, "Shire")
	assert.Equal(t, nil, err)
	assert.T(t, found)
	assert.T(t, !l.Granted)

	assert.Equal(t, nil, f.MarkGranted(tx, l.ID))
	l, _, _ = f.GetLand(tx, l.ID)
	assert.T(t, l.Granted)

	lands, err := f.GetLands(tx, 1, 1)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(lands))

	lands, err = f.GetLandsByEpoch(tx, 1)
	assert.Equal(t, nil, err)
	assert.Equal(t, 3, len(lands))

	assert.Equal(t, nil, f.DeleteLand(tx, l.ID))
	_, found, err = f.GetLand(tx, l.ID)
	assert.Equal(t, nil, err)
	assert.T(t, !found)
}

func TestCreateLandNameTaken(t *testing.T) {
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
	assert.T(t, f.CreateLand(tx, 1, 1, 1, "Shire"))
	assert.T(t, !f.CreateLand(tx, 1, 1, 1, "Shire"))
	assert.T(t, persistence.IsUniqueViolation(tx.Err()))
}
