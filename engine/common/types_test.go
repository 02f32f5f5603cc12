package common

import (
	"math"
	"testing"

	"github.com/bmizerany/assert"
	"github.com/pkg/errors"
)

func TestHolderID(t *testing.T) {
	h, err := NewHolderID(HolderClassTroop, 7)
	assert.Equal(t, nil, err)
	assert.Equal(t, HolderClassTroop, h.Class())
	assert.Equal(t, uint64(7), h.ID())
	assert.Equal(t, "troop#7", h.String())
	assert.T(t, !h.IsNil(), "assigned holder is nil")

	assert.Equal(t, SettlementHolder(3), HolderID{class: HolderClassSettlement, id: 3})
}

func TestHolderIDInvalidClass(t *testing.T) {
	for _, class := range []HolderClass{0, 5, 255} {
		_, err := NewHolderID(class, 1)
		assert.Equal(t, ErrInvalidHolderClass, errors.Cause(err))
	}

	h := SettlementHolder(9)
	err := h.Assign(HolderClass(42), 10)
	assert.Equal(t, ErrInvalidHolderClass, errors.Cause(err))
	assert.Equal(t, SettlementHolder(9), h)
	assert.T(t, HolderID{}.IsNil(), "zero holder should be nil")
}

func TestParseHolderClass(t *testing.T) {
	for s, expected := range map[string]HolderClass{
		"settlement": HolderClassSettlement,
		"Settler":    HolderClassSettler,
		"3":          HolderClassTransport,
		"TROOP":      HolderClassTroop,
	} {
		class, err := ParseHolderClass(s)
		assert.Equal(t, nil, err)
		assert.Equal(t, expected, class)
	}
	_, err := ParseHolderClass("castle")
	assert.Equal(t, ErrInvalidHolderClass, errors.Cause(err))
}

func TestMulVolume(t *testing.T) {
	assert.Equal(t, Volume(300), MulVolume(100, 3))
	assert.Equal(t, Volume(0), MulVolume(0, math.MaxUint64))
	assert.Equal(t, Volume(math.MaxUint64), MulVolume(100, 1<<62))
	assert.Equal(t, Volume(math.MaxUint64), MulVolume(math.MaxUint64, 2))
	// fits in uint64 but not in a ledger record
	assert.T(t, MulVolume(2, 1<<62) > MaxVolume)
}

func TestAddVolume(t *testing.T) {
	assert.Equal(t, Volume(5), AddVolume(2, 3))
	assert.Equal(t, Volume(math.MaxUint64), AddVolume(math.MaxUint64, 1))
	assert.Equal(t, Volume(math.MaxUint64), AddVolume(1<<63, 1<<63))
}
