package user

import (
	"context"
	"testing"

	"github.com/bmizerany/assert"
	"github.com/tusgame/tusworld/engine/persistence"
)

func TestDigest(t *testing.T) {
	assert.Equal(t, 64, len(Digest("frodo", "ring")))
	assert.Equal(t, Digest("frodo", "ring"), Digest("frodo", "ring"))
	assert.NotEqual(t, Digest("frodo", "ring"), Digest("sam", "ring"))
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

	f := NewFacade()
	assert.T(t, f.CreateUser(tx, "frodo", "ring", false))
	assert.T(t, f.CreateUser(tx, "gandalf", "staff", true))
	assert.T(t, !f.CreateUser(tx, "frodo", "other", false))

	u, ok, err := f.Authenticate(tx, "frodo", "ring")
	assert.Equal(t, nil, err)
	assert.T(t, ok)
	assert.T(t, !u.Moderator)
	assert.NotEqual(t, "ring", u.Password)

	_, ok, err = f.Authenticate(tx, "frodo", "wrong")
	assert.Equal(t, nil, err)
	assert.T(t, !ok)
	_, ok, err = f.Authenticate(tx, "sauron", "ring")
	assert.Equal(t, nil, err)
	assert.T(t, !ok)

	g, found, err := f.GetUser(tx, 2)
	assert.Equal(t, nil, err)
	assert.T(t, found)
	assert.T(t, g.Moderator)
	assert.Equal(t, "gandalf", g.Login)
}
