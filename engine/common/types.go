package common

import (
	"fmt"
	"math"
	"math/bits"
	"strings"

	"github.com/pkg/errors"
)

// IDUser identifies a user
type IDUser uint64

// IDWorld identifies a world
type IDWorld uint64

// IDEpoch identifies an epoch
type IDEpoch uint64

// IDLand identifies a land
type IDLand uint64

// IDSettlement identifies a settlement
type IDSettlement uint64

// Volume is a non-negative count of ledger units
type Volume uint64

// MaxVolume is the largest volume a ledger record can hold
const MaxVolume Volume = math.MaxInt64

// MulVolume returns v*factor; a product that does not fit in uint64 saturates
// to math.MaxUint64, which is above MaxVolume and so never affordable.
func MulVolume(v Volume, factor Volume) Volume {
	hi, lo := bits.Mul64(uint64(v), uint64(factor))
	if hi != 0 {
		return Volume(math.MaxUint64)
	}
	return Volume(lo)
}

// AddVolume returns v+delta, saturating at math.MaxUint64
func AddVolume(v Volume, delta Volume) Volume {
	sum, carry := bits.Add64(uint64(v), uint64(delta), 0)
	if carry != 0 {
		return Volume(math.MaxUint64)
	}
	return Volume(sum)
}

// HolderClass is the kind of entity owning ledger records
type HolderClass uint8

// Holder classes
const (
	HolderClassSettlement HolderClass = iota + 1
	HolderClassSettler
	HolderClassTransport
	HolderClassTroop
)

// ErrInvalidHolderClass is returned when a holder class is out of range
var ErrInvalidHolderClass = errors.New("invalid holder class")

// Valid tells whether the holder class is one of the known classes
func (hc HolderClass) Valid() bool {
	return hc >= HolderClassSettlement && hc <= HolderClassTroop
}

func (hc HolderClass) String() string {
	switch hc {
	case HolderClassSettlement:
		return "settlement"
	case HolderClassSettler:
		return "settler"
	case HolderClassTransport:
		return "transport"
	case HolderClassTroop:
		return "troop"
	}
	return fmt.Sprintf("holderclass(%d)", uint8(hc))
}

// ParseHolderClass converts a holder class name or number into HolderClass
func ParseHolderClass(s string) (HolderClass, error) {
	switch strings.ToLower(s) {
	case "settlement", "1":
		return HolderClassSettlement, nil
	case "settler", "2":
		return HolderClassSettler, nil
	case "transport", "3":
		return HolderClassTransport, nil
	case "troop", "4":
		return HolderClassTroop, nil
	}
	return 0, errors.Wrapf(ErrInvalidHolderClass, "holder class %q", s)
}

// HolderID identifies the owner of ledger records.
//
// The zero HolderID is invalid; use NewHolderID to build one.
type HolderID struct {
	class HolderClass
	id    uint64
}

// NewHolderID creates a HolderID, failing on an unknown holder class
func NewHolderID(class HolderClass, id uint64) (HolderID, error) {
	var h HolderID
	if err := h.Assign(class, id); err != nil {
		return HolderID{}, err
	}
	return h, nil
}

// SettlementHolder is the HolderID of a settlement
func SettlementHolder(id IDSettlement) HolderID {
	return HolderID{class: HolderClassSettlement, id: uint64(id)}
}

// Assign sets class and id, leaving the HolderID unchanged on an invalid class
func (h *HolderID) Assign(class HolderClass, id uint64) error {
	if !class.Valid() {
		return errors.Wrapf(ErrInvalidHolderClass, "holder class %d", uint8(class))
	}
	h.class = class
	h.id = id
	return nil
}

// Class returns the holder class
func (h HolderID) Class() HolderClass {
	return h.class
}

// ID returns the holder instance id
func (h HolderID) ID() uint64 {
	return h.id
}

// IsNil returns if the HolderID has never been assigned
func (h HolderID) IsNil() bool {
	return h.class == 0
}

func (h HolderID) String() string {
	return fmt.Sprintf("%s#%d", h.class, h.id)
}
