package compress

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4/v4"
)

type lz4Compressor struct {
	w *lz4.Writer
	r *lz4.Reader
}

// NewLz4Compressor creates a Compressor using the lz4 frame format
func NewLz4Compressor() Compressor {
	return &lz4Compressor{
		w: lz4.NewWriter(nil),
		r: lz4.NewReader(nil),
	}
}

func (lc *lz4Compressor) Compress(b []byte, c []byte) ([]byte, error) {
	buf := bytes.NewBuffer(c)
	lc.w.Reset(buf)

	if _, err := lc.w.Write(b); err != nil {
		return c, err
	}
	if err := lc.w.Close(); err != nil {
		return c, err
	}
	return buf.Bytes(), nil
}

func (lc *lz4Compressor) Decompress(c []byte, b []byte, limit int) ([]byte, error) {
	lc.r.Reset(bytes.NewReader(c))

	buf := bytes.NewBuffer(b)
	n, err := io.Copy(buf, io.LimitReader(lc.r, int64(limit)+1))
	if err != nil {
		return b, err
	}
	if n > int64(limit) {
		return b, ErrTooLarge
	}
	return buf.Bytes(), nil
}
