package netutil

import (
	"bytes"
	"fmt"
	"io"
	"net"
	"testing"
	"time"

	"github.com/bmizerany/assert"
	"github.com/pkg/errors"
	"github.com/tusgame/tusworld/engine/consts"
	"github.com/tusgame/tusworld/engine/netutil/compress"
	"github.com/tusgame/tusworld/engine/twlog"
)

type testEchoFrameServer struct {
	compressFormat string
}

func (ts *testEchoFrameServer) ServeTCPConnection(conn net.Conn) {
	var compressor compress.Compressor
	if ts.compressFormat != "" {
		compressor, _ = compress.NewCompressor(ts.compressFormat)
	}
	fc := NewFrameConnection(conn, compressor, 64)
	defer fc.Close()

	for {
		payload, err := fc.RecvFrame()
		if err != nil {
			if !IsConnectionError(err) {
				twlog.Errorf("recv error: %s", err)
			}
			return
		}
		if err := fc.SendFrame(payload); err != nil {
			twlog.Errorf("send error: %s", err)
			return
		}
	}
}

func startEchoServer(t *testing.T, compressFormat string) (host string, port int) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	go ServeListener(ln, &testEchoFrameServer{compressFormat: compressFormat})
	t.Cleanup(func() { ln.Close() })

	addr := ln.Addr().(*net.TCPAddr)
	return addr.IP.String(), addr.Port
}

func TestFrameConnection_Echo(t *testing.T) {
	for _, format := range []string{"", "lz4", "zstd"} {
		host, port := startEchoServer(t, format)
		conn, err := ConnectTCP(host, port)
		if err != nil {
			t.Fatal(err)
		}

		var compressor compress.Compressor
		if format != "" {
			compressor, _ = compress.NewCompressor(format)
		}
		fc := NewFrameConnection(conn, compressor, 64)

		for _, size := range []int{0, 1, 64, 65, 4096, 100000} {
			payload := bytes.Repeat([]byte("settlement"), size/10+1)[:size]
			if err := fc.SendFrame(payload); err != nil {
				t.Fatal(err)
			}
			echo, err := fc.RecvFrame()
			if err != nil {
				t.Fatal(err)
			}
			assert.Equal(t, payload, echo)
		}
		fc.Close()
	}
}

func TestFrameConnection_Header(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	compressor, _ := compress.NewCompressor("lz4")
	fc := NewFrameConnection(client, compressor, 8)

	go func() {
		fc.SendFrame([]byte("abc"))
		fc.SendFrame(bytes.Repeat([]byte("a"), 1000))
	}()

	header := make([]byte, 4)
	io.ReadFull(server, header)
	assert.Equal(t, []byte{3, 0, 0, 0}, header)
	body := make([]byte, 3)
	io.ReadFull(server, body)
	assert.Equal(t, "abc", string(body))

	io.ReadFull(server, header)
	assert.Equal(t, byte(0x80), header[3]&0x80)
	length := int(header[0]) | int(header[1])<<8 | int(header[2])<<16 | int(header[3]&0x7f)<<24
	assert.T(t, length < 1000, "payload should be compressed")
	io.ReadFull(server, make([]byte, length))
}

func TestFrameConnection_TooLarge(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	fc := NewFrameConnection(server, nil, 0)
	go func() {
		length := uint32(consts.MAX_FRAME_PAYLOAD_LENGTH + 1)
		client.Write([]byte{byte(length), byte(length >> 8), byte(length >> 16), byte(length >> 24)})
	}()

	_, err := fc.RecvFrame()
	assert.Equal(t, errFrameTooLarge, errors.Cause(err))

	err = fc.SendFrame(make([]byte, consts.MAX_FRAME_PAYLOAD_LENGTH+1))
	assert.Equal(t, errFrameTooLarge, errors.Cause(err))
}

func TestFrameConnection_Msg(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	sender := NewFrameConnection(client, nil, 0)
	receiver := NewFrameConnection(server, nil, 0)

	msg := testMsg{ID: 7, Login: "tester", Params: map[string]string{"name": "Tara"}}
	go sender.SendMsg(msg)

	receiver.SetRecvDeadline(time.Now().Add(time.Second))
	var got testMsg
	assert.Equal(t, nil, receiver.RecvMsg(&got))
	assert.Equal(t, msg, got)
}

func TestIsConnectionError(t *testing.T) {
	assert.T(t, IsConnectionError(io.EOF))
	assert.T(t, IsConnectionError(errors.Wrap(io.ErrUnexpectedEOF, "read")))
	assert.T(t, !IsConnectionError(fmt.Errorf("other")))
	assert.T(t, !IsConnectionError("not an error"))
	assert.T(t, !IsTimeoutError(nil))
}
