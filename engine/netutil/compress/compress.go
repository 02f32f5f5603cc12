package compress

import (
	"strings"

	"github.com/pkg/errors"
)

// Compressor compresses and decompresses frame payloads.
//
// A Compressor is owned by one connection and is not safe for concurrent use.
type Compressor interface {
	// Compress appends the compressed form of b to c
	Compress(b []byte, c []byte) ([]byte, error)
	// Decompress appends the decompressed form of c to b, failing once more than limit bytes are produced
	Decompress(c []byte, b []byte, limit int) ([]byte, error)
}

var (
	// ErrTooLarge is returned when a payload decompresses to more than the limit
	ErrTooLarge = errors.New("decompressed payload too large")
)

// IsValidFormat checks whether a compressor exists for the format
func IsValidFormat(compressFormat string) bool {
	switch strings.ToLower(compressFormat) {
	case "lz4", "zstd":
		return true
	}
	return false
}

// NewCompressor creates a compressor for the format ("lz4" or "zstd")
func NewCompressor(compressFormat string) (Compressor, error) {
	switch strings.ToLower(compressFormat) {
	case "lz4":
		return NewLz4Compressor(), nil
	case "zstd":
		return NewZstdCompressor()
	default:
		return nil, errors.Errorf("unknown compress format: %s", compressFormat)
	}
}
