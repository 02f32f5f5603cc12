package server

import (
	"fmt"
	"io"
	"net"
	"time"

	"golang.org/x/time/rate"

	"github.com/tusgame/tusworld/engine/consts"
	"github.com/tusgame/tusworld/engine/netutil"
	"github.com/tusgame/tusworld/engine/netutil/compress"
	"github.com/tusgame/tusworld/engine/proto"
	"github.com/tusgame/tusworld/engine/twlog"
)

// ClientProxy is a client connection served by one goroutine; its requests are handled in order
type ClientProxy struct {
	*netutil.FrameConnection
	clientid string
	limiter  *rate.Limiter
	service  *ServerService
}

func newClientProxy(clientid string, conn net.Conn, ss *ServerService) (*ClientProxy, error) {
	cfg := &ss.cfg.Server
	var compressor compress.Compressor
	if cfg.CompressFormat != "" {
		var err error
		if compressor, err = compress.NewCompressor(cfg.CompressFormat); err != nil {
			return nil, err
		}
	}

	limit := rate.Limit(cfg.RateLimit)
	if cfg.RateLimit == 0 {
		limit = rate.Inf
	}
	return &ClientProxy{
		FrameConnection: netutil.NewFrameConnection(conn, compressor, cfg.CompressThreshold),
		clientid:        clientid,
		limiter:         rate.NewLimiter(limit, cfg.RateBurst),
		service:         ss,
	}, nil
}

func (cp *ClientProxy) String() string {
	return fmt.Sprintf("ClientProxy<%s@%s>", cp.clientid, cp.RemoteAddr())
}

func (cp *ClientProxy) serve() {
	defer func() {
		cp.Close()
		// tell the server service that this client is down
		cp.service.onClientProxyClose(cp)

		if err := recover(); err != nil {
			twlog.TraceError("%s error: %v", cp, err)
		}
	}()

	for {
		if err := cp.serveRequest(); err != nil {
			if err == io.EOF || netutil.IsConnectionError(err) || cp.service.terminating.Load() {
				twlog.Debugf("%s: %v", cp, err)
			} else {
				twlog.Warnf("%s: %v", cp, err)
			}
			return
		}
	}
}

func (cp *ClientProxy) serveRequest() error {
	cp.SetRecvDeadline(time.Now().Add(consts.CLIENT_IDLE_TIMEOUT))
	frame, err := cp.RecvFrame()
	if err != nil {
		return err
	}

	if err := cp.limiter.Wait(cp.service.ctx); err != nil {
		return err
	}

	var reply *proto.Reply
	var req proto.Request
	if err := netutil.MSG_PACKER.UnpackMsg(frame, &req); err != nil {
		twlog.Debugf("%s: malformed request: %v", cp, err)
		reply = proto.NewReply(proto.REPLY_ERROR, proto.STATUS_INVALID_REQUEST)
	} else {
		reply = cp.service.handler.Handle(cp.service.ctx, &req)
	}

	cp.SetSendDeadline(time.Now().Add(consts.CLIENT_WRITE_TIMEOUT))
	return cp.SendMsg(reply)
}
