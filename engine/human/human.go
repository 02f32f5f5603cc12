package human

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/ledger"
	"github.com/tusgame/tusworld/engine/persistence"
)

// Key identifies a human type: its class, its id and its experience
type Key struct {
	Class      string
	ID         string
	Experience string
}

// Jobless is the human every other human is engaged from
var Jobless = Key{Class: "worker", ID: "jobless", Experience: "novice"}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s/%s", k.Class, k.ID, k.Experience)
}

// ParseKey parses "class/id/experience"
func ParseKey(s string) (Key, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return Key{}, errors.Errorf("invalid human key: %q", s)
	}
	return Key{Class: parts[0], ID: parts[1], Experience: parts[2]}, nil
}

// Record is the volume of one human type owned by one holder
type Record = ledger.Record[Key]

// Set is every human owned by one holder
type Set = ledger.Set[Key]

// Accessor stores human ledgers
type Accessor = ledger.Accessor[Key]

// Table maps human keys onto the humans table
var Table = ledger.Table[Key]{
	Name:       "humans",
	KeyColumns: []string{"human_class", "id_human", "experience"},
	Columns:    func(k Key) []string { return []string{k.Class, k.ID, k.Experience} },
	Key:        func(cols []string) Key { return Key{Class: cols[0], ID: cols[1], Experience: cols[2]} },
}

// NewAccessor creates the relational human accessor
func NewAccessor() Accessor {
	return ledger.NewSQLAccessor(Table)
}

// Facade is the human domain over its accessor
type Facade struct {
	accessor Accessor
}

// NewFacade creates a Facade
func NewFacade(accessor Accessor) *Facade {
	return &Facade{accessor: accessor}
}

// AddHuman credits volume humans of key to holder
func (f *Facade) AddHuman(tx *persistence.Tx, holder common.HolderID, key Key, volume common.Volume) error {
	return ledger.Add(tx, f.accessor, holder, key, volume)
}

// AddHumanSet credits every human of set to holder
func (f *Facade) AddHumanSet(tx *persistence.Tx, holder common.HolderID, set Set) error {
	return ledger.AddSet(tx, f.accessor, holder, set)
}

// SubtractHuman debits volume humans of key from holder
func (f *Facade) SubtractHuman(tx *persistence.Tx, holder common.HolderID, key Key, volume common.Volume) error {
	return ledger.Subtract(tx, f.accessor, holder, key, volume)
}

// GetHuman returns the record of key, with zero volume when holder owns none
func (f *Facade) GetHuman(tx *persistence.Tx, holder common.HolderID, key Key) (Record, error) {
	rec, found, err := f.accessor.Get(tx, holder, key)
	if err != nil {
		return Record{}, err
	}
	if !found {
		rec = Record{Holder: holder, Key: key}
	}
	return rec, nil
}

// GetHumans returns every human of holder
func (f *Facade) GetHumans(tx *persistence.Tx, holder common.HolderID) (Set, error) {
	return f.accessor.GetAll(tx, holder)
}

// DeleteHumans removes the whole human ledger of holder
func (f *Facade) DeleteHumans(tx *persistence.Tx, holder common.HolderID) error {
	return ledger.DeleteAll(tx, f.accessor, holder)
}
