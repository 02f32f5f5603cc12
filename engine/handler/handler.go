// Package handler is the entry point of the transport layer into the request pipeline.
package handler

import (
	"context"

	"github.com/tusgame/tusworld/engine/consts"
	"github.com/tusgame/tusworld/engine/proto"
	"github.com/tusgame/tusworld/engine/twlog"
	"github.com/tusgame/tusworld/engine/twutils"
)

// Handler runs requests through the executor their id dispatches to
type Handler struct {
	dispatcher *Dispatcher
}

// NewHandler creates a Handler
func NewHandler(dispatcher *Dispatcher) *Handler {
	return &Handler{dispatcher: dispatcher}
}

// Handle returns the reply to req; it never panics
func (h *Handler) Handle(ctx context.Context, req *proto.Request) (reply *proto.Reply) {
	if consts.DEBUG_FRAMES {
		twlog.Debugf(">>> %s login=%q params=%v", req.IDRequest(), req.Login, req.Params)
	}

	paniced := twutils.RunPanicless(func() {
		reply = h.dispatcher.Lookup(req.IDRequest()).Execute(ctx, req)
	})
	if paniced || reply == nil {
		reply = proto.NewReply(req.IDRequest(), proto.STATUS_UNEXPECTED_ERROR)
	}

	if consts.DEBUG_FRAMES {
		twlog.Debugf("<<< %s %s %q objects=%d", reply.ID, reply.Status, reply.Message, len(reply.Objects))
	}
	return
}
