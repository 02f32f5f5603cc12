package world

import (
	"database/sql"

	"github.com/pkg/errors"
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/persistence"
	"github.com/tusgame/tusworld/engine/twlog"
)

// World is a game universe; it is played with one configuration
type World struct {
	ID            common.IDWorld `db:"id_world"`
	Name          string         `db:"name"`
	Configuration string         `db:"configuration"`
}

const _SELECT_WORLD = "SELECT id_world, name, configuration FROM worlds"

// Facade persists worlds
type Facade struct{}

// NewFacade creates a Facade
func NewFacade() *Facade {
	return &Facade{}
}

// CreateWorld inserts a world, returning false when it can not be inserted
func (f *Facade) CreateWorld(tx *persistence.Tx, name string, configuration string) bool {
	_, err := tx.Exec("INSERT INTO worlds(name, configuration) VALUES(?, ?)", name, configuration)
	if err != nil {
		twlog.Warnf("world: create %s failed: %v", name, err)
		return false
	}
	return true
}

// GetWorld returns the world of id
func (f *Facade) GetWorld(tx *persistence.Tx, id common.IDWorld) (World, bool, error) {
	return f.getOne(tx, _SELECT_WORLD+" WHERE id_world = ?", id)
}

// GetWorldByName returns the world called name
func (f *Facade) GetWorldByName(tx *persistence.Tx, name string) (World, bool, error) {
	return f.getOne(tx, _SELECT_WORLD+" WHERE name = ?", name)
}

// GetWorlds returns every world
func (f *Facade) GetWorlds(tx *persistence.Tx) ([]World, error) {
	var worlds []World
	if err := tx.Select(&worlds, _SELECT_WORLD+" ORDER BY id_world"); err != nil {
		return nil, errors.Wrap(err, "get worlds")
	}
	return worlds, nil
}

func (f *Facade) getOne(tx *persistence.Tx, query string, args ...interface{}) (World, bool, error) {
	var w World
	err := tx.Get(&w, query, args...)
	if err == sql.ErrNoRows {
		return World{}, false, nil
	}
	if err != nil {
		return World{}, false, errors.Wrap(err, "get world")
	}
	return w, true, nil
}
