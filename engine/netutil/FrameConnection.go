package netutil

import (
	"encoding/binary"
	"io"
	"net"
	"time"

	"github.com/pkg/errors"
	"github.com/tusgame/tusworld/engine/consts"
	"github.com/tusgame/tusworld/engine/netutil/compress"
	"github.com/tusgame/tusworld/engine/twlog"
)

const (
	_FRAME_HEADER_SIZE     = 4
	_FRAME_COMPRESSED_FLAG = 0x80000000
	_FRAME_LENGTH_MASK     = 0x7fffffff
)

var (
	errFrameTooLarge = errors.New("frame payload too large")
)

// FrameConnection sends and receives length prefixed frames.
//
// Every frame starts with a 4-byte little endian header whose top bit marks a compressed
// payload and whose remaining bits are the payload length on the wire.
type FrameConnection struct {
	conn              net.Conn
	compressor        compress.Compressor
	compressThreshold int
	header            [_FRAME_HEADER_SIZE]byte
	sendBuf           []byte
	compressBuf       []byte
}

// NewFrameConnection wraps conn. Payloads longer than compressThreshold are compressed
// when a compressor is given.
func NewFrameConnection(conn net.Conn, compressor compress.Compressor, compressThreshold int) *FrameConnection {
	return &FrameConnection{
		conn:              conn,
		compressor:        compressor,
		compressThreshold: compressThreshold,
	}
}

// RecvFrame reads the next frame, decompressing it if required
func (fc *FrameConnection) RecvFrame() ([]byte, error) {
	if _, err := io.ReadFull(fc.conn, fc.header[:]); err != nil {
		return nil, err
	}

	header := binary.LittleEndian.Uint32(fc.header[:])
	compressed := header&_FRAME_COMPRESSED_FLAG != 0
	length := int(header & _FRAME_LENGTH_MASK)
	if length > consts.MAX_FRAME_PAYLOAD_LENGTH {
		return nil, errors.Wrapf(errFrameTooLarge, "recv %d bytes", length)
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(fc.conn, payload); err != nil {
		return nil, err
	}

	if compressed {
		if fc.compressor == nil {
			return nil, errors.New("compressed frame received but compression is not configured")
		}
		data, err := fc.compressor.Decompress(payload, nil, consts.MAX_FRAME_PAYLOAD_LENGTH)
		if err != nil {
			return nil, errors.Wrap(err, "decompress frame")
		}
		payload = data
	}

	if consts.DEBUG_FRAMES {
		twlog.Debugf("%s: recv frame %d bytes (compressed=%v)", fc, len(payload), compressed)
	}
	return payload, nil
}

// SendFrame writes payload as one frame
func (fc *FrameConnection) SendFrame(payload []byte) error {
	if len(payload) > consts.MAX_FRAME_PAYLOAD_LENGTH {
		return errors.Wrapf(errFrameTooLarge, "send %d bytes", len(payload))
	}

	data := payload
	compressed := false
	if fc.compressor != nil && fc.compressThreshold > 0 && len(payload) > fc.compressThreshold {
		c, err := fc.compressor.Compress(payload, fc.compressBuf[:0])
		if err != nil {
			return errors.Wrap(err, "compress frame")
		}
		fc.compressBuf = c
		// incompressible payloads travel as they are
		if len(c) < len(payload) {
			data = c
			compressed = true
		}
	}

	header := uint32(len(data))
	if compressed {
		header |= _FRAME_COMPRESSED_FLAG
	}

	fc.sendBuf = append(fc.sendBuf[:0], 0, 0, 0, 0)
	binary.LittleEndian.PutUint32(fc.sendBuf, header)
	fc.sendBuf = append(fc.sendBuf, data...)

	if consts.DEBUG_FRAMES {
		twlog.Debugf("%s: send frame %d bytes (compressed=%v)", fc, len(data), compressed)
	}
	return WriteAll(fc.conn, fc.sendBuf)
}

// RecvMsg reads one frame and unpacks it into msg
func (fc *FrameConnection) RecvMsg(msg interface{}) error {
	payload, err := fc.RecvFrame()
	if err != nil {
		return err
	}
	return MSG_PACKER.UnpackMsg(payload, msg)
}

// SendMsg packs msg and sends it as one frame
func (fc *FrameConnection) SendMsg(msg interface{}) error {
	payload, err := MSG_PACKER.PackMsg(msg, nil)
	if err != nil {
		return err
	}
	return fc.SendFrame(payload)
}

// SetRecvDeadline sets the deadline of the next receive
func (fc *FrameConnection) SetRecvDeadline(deadline time.Time) error {
	return fc.conn.SetReadDeadline(deadline)
}

// SetSendDeadline sets the deadline of the next send
func (fc *FrameConnection) SetSendDeadline(deadline time.Time) error {
	return fc.conn.SetWriteDeadline(deadline)
}

// RemoteAddr returns the remote address
func (fc *FrameConnection) RemoteAddr() net.Addr {
	return fc.conn.RemoteAddr()
}

// Close closes the underlying connection
func (fc *FrameConnection) Close() error {
	return fc.conn.Close()
}

func (fc *FrameConnection) String() string {
	return "FrameConnection<" + fc.conn.RemoteAddr().String() + ">"
}

// WriteAll write all bytes of data to the writer
func WriteAll(conn io.Writer, data []byte) error {
	left := len(data)
	for left > 0 {
		n, err := conn.Write(data)
		if n == left && err == nil { // handle most common case first
			return nil
		}

		if n > 0 {
			data = data[n:]
			left -= n
		}

		if err != nil && !IsTimeoutError(err) {
			return err
		}
	}
	return nil
}
