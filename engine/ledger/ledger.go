// Package ledger stores "holder owns key with volume" records.
//
// A record exists only while its volume is positive: inserting a zero volume
// is refused and a decrease reaching zero deletes the record.
package ledger

import (
	"github.com/pkg/errors"
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/persistence"
)

var (
	// ErrInsufficientVolume is returned when a decrease exceeds the stored volume
	ErrInsufficientVolume = errors.New("insufficient volume")
	// ErrRecordNotFound is returned when a volume change targets a missing record
	ErrRecordNotFound = errors.New("record not found")
	// ErrZeroVolume is returned for zero volumes and zero deltas
	ErrZeroVolume = errors.New("zero volume")
	// ErrVolumeOverflow is returned when a record would exceed common.MaxVolume
	ErrVolumeOverflow = errors.New("volume overflow")
)

// Record is one ledger entry
type Record[K comparable] struct {
	Holder common.HolderID
	Key    K
	Volume common.Volume
}

// Set maps every key of one holder to its record
type Set[K comparable] map[K]Record[K]

// Volume returns the volume of key, zero when absent
func (s Set[K]) Volume(key K) common.Volume {
	return s[key].Volume
}

// Accessor is the storage contract of one ledger kind.
//
// Every method runs in the caller's transaction and never commits it.
type Accessor[K comparable] interface {
	Insert(tx *persistence.Tx, holder common.HolderID, key K, volume common.Volume) error
	Delete(tx *persistence.Tx, holder common.HolderID, key K) error
	Get(tx *persistence.Tx, holder common.HolderID, key K) (Record[K], bool, error)
	GetAll(tx *persistence.Tx, holder common.HolderID) (Set[K], error)
	IncreaseVolume(tx *persistence.Tx, holder common.HolderID, key K, delta common.Volume) error
	DecreaseVolume(tx *persistence.Tx, holder common.HolderID, key K, delta common.Volume) error
}

// Add credits volume to holder, creating the record when needed
func Add[K comparable](tx *persistence.Tx, acc Accessor[K], holder common.HolderID, key K, volume common.Volume) error {
	if volume == 0 {
		return ErrZeroVolume
	}
	_, found, err := acc.Get(tx, holder, key)
	if err != nil {
		return err
	}
	if found {
		return acc.IncreaseVolume(tx, holder, key, volume)
	}
	return acc.Insert(tx, holder, key, volume)
}

// Subtract debits volume from holder, failing without change when it owns less
func Subtract[K comparable](tx *persistence.Tx, acc Accessor[K], holder common.HolderID, key K, volume common.Volume) error {
	if volume == 0 {
		return ErrZeroVolume
	}
	return acc.DecreaseVolume(tx, holder, key, volume)
}

// AddSet credits every record of set to holder
func AddSet[K comparable](tx *persistence.Tx, acc Accessor[K], holder common.HolderID, set Set[K]) error {
	for key, rec := range set {
		if rec.Volume == 0 {
			continue
		}
		if err := Add(tx, acc, holder, key, rec.Volume); err != nil {
			return err
		}
	}
	return nil
}

// SubtractSet debits every record of set from holder
func SubtractSet[K comparable](tx *persistence.Tx, acc Accessor[K], holder common.HolderID, set Set[K]) error {
	for key, rec := range set {
		if rec.Volume == 0 {
			continue
		}
		if err := Subtract(tx, acc, holder, key, rec.Volume); err != nil {
			return err
		}
	}
	return nil
}

// DeleteAll removes every record of holder
func DeleteAll[K comparable](tx *persistence.Tx, acc Accessor[K], holder common.HolderID) error {
	set, err := acc.GetAll(tx, holder)
	if err != nil {
		return err
	}
	for key := range set {
		if err := acc.Delete(tx, holder, key); err != nil {
			return err
		}
	}
	return nil
}

// Covers tells whether have holds at least the volume of every key of need
func Covers[K comparable](have Set[K], need Set[K]) bool {
	covered := true
	for key, rec := range need {
		if have.Volume(key) < rec.Volume {
			covered = false
		}
	}
	return covered
}

// Multiply returns a copy of set with every volume multiplied by factor
func Multiply[K comparable](set Set[K], factor common.Volume) Set[K] {
	res := make(Set[K], len(set))
	for key, rec := range set {
		rec.Volume = common.MulVolume(rec.Volume, factor)
		res[key] = rec
	}
	return res
}
