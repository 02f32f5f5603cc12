package server

import (
	"context"
	"net"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bmizerany/assert"
	"golang.org/x/net/websocket"

	"github.com/tusgame/tusworld/engine/config"
	"github.com/tusgame/tusworld/engine/executor"
	"github.com/tusgame/tusworld/engine/netutil"
	"github.com/tusgame/tusworld/engine/netutil/compress"
	"github.com/tusgame/tusworld/engine/proto"
)

const testConfig = `
[server]
ip = 127.0.0.1
port = 14000
compress_format = lz4
compress_threshold = 64
rate_limit = 0
moderator_login = moderator
moderator_password = secret

[storage]
driver = sqlite
url = :memory:

[journal]
type = sql
driver = sqlite
url = :memory:
`

func newTestService(t *testing.T) (*ServerService, string) {
	cfg, err := config.Parse([]byte(testConfig))
	if err != nil {
		t.Fatal(err)
	}
	ss, err := newServerService(cfg)
	if err != nil {
		t.Fatal(err)
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	go ss.run(ln)
	t.Cleanup(func() { ss.terminate(ln) })
	return ss, ln.Addr().String()
}

func newTestClient(t *testing.T, conn net.Conn) *netutil.FrameConnection {
	compressor, err := compress.NewCompressor("lz4")
	if err != nil {
		t.Fatal(err)
	}
	fc := netutil.NewFrameConnection(conn, compressor, 64)
	t.Cleanup(func() { fc.Close() })
	return fc
}

func dialTestClient(t *testing.T, addr string) *netutil.FrameConnection {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatal(err)
	}
	return newTestClient(t, conn)
}

func call(t *testing.T, fc *netutil.FrameConnection, req *proto.Request) *proto.Reply {
	t.Helper()
	if err := fc.SendMsg(req); err != nil {
		t.Fatal(err)
	}
	fc.SetRecvDeadline(time.Now().Add(5 * time.Second))
	var reply proto.Reply
	if err := fc.RecvMsg(&reply); err != nil {
		t.Fatal(err)
	}
	return &reply
}

func TestServeTCP(t *testing.T) {
	ss, addr := newTestService(t)
	fc := dialTestClient(t, addr)

	reply := call(t, fc, proto.NewRequest(proto.REQUEST_ECHO, "", ""))
	assert.Equal(t, proto.REQUEST_ECHO, reply.ID)
	assert.Equal(t, proto.STATUS_OK, reply.Status)
	assert.Equal(t, "Echo.", reply.Message)

	req := proto.NewRequest(proto.REQUEST_CREATE_WORLD, "moderator", "secret").
		Set(executor.PARAM_NAME, "Aldor").
		Set(executor.PARAM_CONFIGURATION, "classic")
	reply = call(t, fc, req)
	assert.Equal(t, proto.STATUS_OK, reply.Status)
	assert.Equal(t, "World has been created.", reply.Message)

	// the same name again is an operator outcome, not an error
	reply = call(t, fc, req)
	assert.Equal(t, proto.STATUS_OK, reply.Status)
	assert.NotEqual(t, "World has been created.", reply.Message)

	reply = call(t, fc, proto.NewRequest(proto.REQUEST_CREATE_WORLD, "moderator", "wrong").
		Set(executor.PARAM_NAME, "Morrowind").
		Set(executor.PARAM_CONFIGURATION, "classic"))
	assert.Equal(t, proto.STATUS_UNAUTHENTICATED, reply.Status)

	entries, err := ss.journal.Recent(context.Background(), 10)
	assert.Equal(t, nil, err)
	// echo and both create_world; the unauthenticated request is not performed
	assert.Equal(t, 3, len(entries))
	assert.Equal(t, "echo", entries[0].Request)
	assert.Equal(t, "create_world", entries[1].Request)
	assert.Equal(t, "moderator", entries[1].Login)
	assert.T(t, entries[1].OK)
	assert.T(t, !entries[2].OK)
	assert.Equal(t, 1, ss.numClients())
}

func TestServeUnknownAndMalformedRequests(t *testing.T) {
	_, addr := newTestService(t)
	fc := dialTestClient(t, addr)

	for _, id := range []proto.RequestID{0, 2, 0xffff} {
		reply := call(t, fc, proto.NewRequest(id, "moderator", "secret"))
		assert.Equal(t, proto.REPLY_ERROR, reply.ID)
		assert.Equal(t, proto.STATUS_UNKNOWN_REQUEST, reply.Status)
	}

	if err := fc.SendFrame([]byte{0xc1}); err != nil {
		t.Fatal(err)
	}
	var reply proto.Reply
	fc.SetRecvDeadline(time.Now().Add(5 * time.Second))
	assert.Equal(t, nil, fc.RecvMsg(&reply))
	assert.Equal(t, proto.REPLY_ERROR, reply.ID)
	assert.Equal(t, proto.STATUS_INVALID_REQUEST, reply.Status)

	// the connection survives a malformed request
	echo := call(t, fc, proto.NewRequest(proto.REQUEST_ECHO, "", ""))
	assert.Equal(t, proto.STATUS_OK, echo.Status)
}

func TestServeWebSocket(t *testing.T) {
	ss, _ := newTestService(t)
	httpServer := httptest.NewServer(websocket.Handler(ss.handleWebSocketConn))
	defer httpServer.Close()

	wsConn, err := websocket.Dial("ws"+strings.TrimPrefix(httpServer.URL, "http"), "", httpServer.URL)
	if err != nil {
		t.Fatal(err)
	}
	wsConn.PayloadType = websocket.BinaryFrame
	fc := newTestClient(t, wsConn)

	reply := call(t, fc, proto.NewRequest(proto.REQUEST_ECHO, "", ""))
	assert.Equal(t, proto.STATUS_OK, reply.Status)
	assert.Equal(t, "Echo.", reply.Message)
}

func TestTerminate(t *testing.T) {
	cfg, err := config.Parse([]byte(testConfig))
	if err != nil {
		t.Fatal(err)
	}
	ss, err := newServerService(cfg)
	if err != nil {
		t.Fatal(err)
	}
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	served := make(chan struct{})
	go func() {
		ss.run(ln)
		close(served)
	}()

	fc := dialTestClient(t, ln.Addr().String())
	call(t, fc, proto.NewRequest(proto.REQUEST_ECHO, "", ""))

	ss.terminate(ln)
	<-served
	assert.Equal(t, 0, ss.numClients())

	fc.SetRecvDeadline(time.Now().Add(5 * time.Second))
	_, err = fc.RecvFrame()
	assert.NotEqual(t, nil, err)
}

func TestLoadCatalog(t *testing.T) {
	cat, err := loadCatalog(&config.CatalogConfig{Name: "classic"})
	assert.Equal(t, nil, err)
	assert.Equal(t, "classic", cat.Name)

	_, err = loadCatalog(&config.CatalogConfig{Name: "modern"})
	assert.NotEqual(t, nil, err)
}
