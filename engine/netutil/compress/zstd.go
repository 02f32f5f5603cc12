package compress

import (
	"github.com/klauspost/compress/zstd"
)

type zstdCompressor struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// NewZstdCompressor creates a Compressor using zstd with the fastest level
func NewZstdCompressor() (Compressor, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest), zstd.WithEncoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		encoder.Close()
		return nil, err
	}
	return &zstdCompressor{encoder: encoder, decoder: decoder}, nil
}

func (zc *zstdCompressor) Compress(b []byte, c []byte) ([]byte, error) {
	return zc.encoder.EncodeAll(b, c), nil
}

func (zc *zstdCompressor) Decompress(c []byte, b []byte, limit int) ([]byte, error) {
	if size, err := frameContentSize(c); err == nil && size > uint64(limit) {
		return b, ErrTooLarge
	}
	start := len(b)
	out, err := zc.decoder.DecodeAll(c, b)
	if err != nil {
		return b, err
	}
	if len(out)-start > limit {
		return b, ErrTooLarge
	}
	return out, nil
}

func frameContentSize(c []byte) (uint64, error) {
	var header zstd.Header
	if err := header.Decode(c); err != nil {
		return 0, err
	}
	if !header.HasFCS {
		return 0, nil
	}
	return header.FrameContentSize, nil
}
