package building

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/ledger"
	"github.com/tusgame/tusworld/engine/persistence"
)

// Key identifies a building type by its class and id
type Key struct {
	Class string
	ID    string
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s", k.Class, k.ID)
}

// ParseKey parses "class/id"
func ParseKey(s string) (Key, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Key{}, errors.Errorf("invalid building key: %q", s)
	}
	return Key{Class: parts[0], ID: parts[1]}, nil
}

// Record is the volume of one building type owned by one holder
type Record = ledger.Record[Key]

// Set is every building owned by one holder
type Set = ledger.Set[Key]

// Accessor stores building ledgers
type Accessor = ledger.Accessor[Key]

// Table maps building keys onto the buildings table
var Table = ledger.Table[Key]{
	Name:       "buildings",
	KeyColumns: []string{"building_class", "id_building"},
	Columns:    func(k Key) []string { return []string{k.Class, k.ID} },
	Key:        func(cols []string) Key { return Key{Class: cols[0], ID: cols[1]} },
}

// NewAccessor creates the relational building accessor
func NewAccessor() Accessor {
	return ledger.NewSQLAccessor(Table)
}

// Facade is the building domain over its accessor
type Facade struct {
	accessor Accessor
}

// NewFacade creates a Facade
func NewFacade(accessor Accessor) *Facade {
	return &Facade{accessor: accessor}
}

// AddBuilding credits volume buildings of key to holder
func (f *Facade) AddBuilding(tx *persistence.Tx, holder common.HolderID, key Key, volume common.Volume) error {
	return ledger.Add(tx, f.accessor, holder, key, volume)
}

// SubtractBuilding debits volume buildings of key from holder
func (f *Facade) SubtractBuilding(tx *persistence.Tx, holder common.HolderID, key Key, volume common.Volume) error {
	return ledger.Subtract(tx, f.accessor, holder, key, volume)
}

// GetBuilding returns the record of key, with zero volume when holder owns none
func (f *Facade) GetBuilding(tx *persistence.Tx, holder common.HolderID, key Key) (Record, error) {
	rec, found, err := f.accessor.Get(tx, holder, key)
	if err != nil {
		return Record{}, err
	}
	if !found {
		rec = Record{Holder: holder, Key: key}
	}
	return rec, nil
}

// GetBuildings returns every building of holder
func (f *Facade) GetBuildings(tx *persistence.Tx, holder common.HolderID) (Set, error) {
	return f.accessor.GetAll(tx, holder)
}

// DeleteBuildings removes the whole building ledger of holder
func (f *Facade) DeleteBuildings(tx *persistence.Tx, holder common.HolderID) error {
	return ledger.DeleteAll(tx, f.accessor, holder)
}
