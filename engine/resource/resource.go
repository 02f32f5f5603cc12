package resource

import (
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/ledger"
	"github.com/tusgame/tusworld/engine/persistence"
)

// Key identifies a resource type of the catalog
type Key string

func (k Key) String() string {
	return string(k)
}

// Record is the volume of one resource owned by one holder
type Record = ledger.Record[Key]

// Set is every resource owned by one holder
type Set = ledger.Set[Key]

// Accessor stores resource ledgers
type Accessor = ledger.Accessor[Key]

// Table maps resource keys onto the resources table
var Table = ledger.Table[Key]{
	Name:       "resources",
	KeyColumns: []string{"id_resource"},
	Columns:    func(k Key) []string { return []string{string(k)} },
	Key:        func(cols []string) Key { return Key(cols[0]) },
}

// NewAccessor creates the relational resource accessor
func NewAccessor() Accessor {
	return ledger.NewSQLAccessor(Table)
}

// NewSet builds a Set from plain volumes
func NewSet(volumes map[Key]common.Volume) Set {
	set := make(Set, len(volumes))
	for key, volume := range volumes {
		set[key] = Record{Key: key, Volume: volume}
	}
	return set
}

// Facade is the resource domain over its accessor
type Facade struct {
	accessor Accessor
}

// NewFacade creates a Facade
func NewFacade(accessor Accessor) *Facade {
	return &Facade{accessor: accessor}
}

// AddResource credits volume of key to holder
func (f *Facade) AddResource(tx *persistence.Tx, holder common.HolderID, key Key, volume common.Volume) error {
	return ledger.Add(tx, f.accessor, holder, key, volume)
}

// AddResourceSet credits every resource of set to holder
func (f *Facade) AddResourceSet(tx *persistence.Tx, holder common.HolderID, set Set) error {
	return ledger.AddSet(tx, f.accessor, holder, set)
}

// SubtractResource debits volume of key from holder
func (f *Facade) SubtractResource(tx *persistence.Tx, holder common.HolderID, key Key, volume common.Volume) error {
	return ledger.Subtract(tx, f.accessor, holder, key, volume)
}

// SubtractResourceSet debits every resource of set from holder
func (f *Facade) SubtractResourceSet(tx *persistence.Tx, holder common.HolderID, set Set) error {
	return ledger.SubtractSet(tx, f.accessor, holder, set)
}

// GetResource returns the record of key, with zero volume when holder owns none
func (f *Facade) GetResource(tx *persistence.Tx, holder common.HolderID, key Key) (Record, error) {
	rec, found, err := f.accessor.Get(tx, holder, key)
	if err != nil {
		return Record{}, err
	}
	if !found {
		rec = Record{Holder: holder, Key: key}
	}
	return rec, nil
}

// GetResourceSet returns every resource of holder
func (f *Facade) GetResourceSet(tx *persistence.Tx, holder common.HolderID) (Set, error) {
	return f.accessor.GetAll(tx, holder)
}

// DeleteResources removes the whole resource ledger of holder
func (f *Facade) DeleteResources(tx *persistence.Tx, holder common.HolderID) error {
	return ledger.DeleteAll(tx, f.accessor, holder)
}
