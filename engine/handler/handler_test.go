package handler

import (
	"context"
	"testing"

	"github.com/bmizerany/assert"
	"github.com/tusgame/tusworld/engine/catalog"
	"github.com/tusgame/tusworld/engine/executor"
	"github.com/tusgame/tusworld/engine/operator"
	"github.com/tusgame/tusworld/engine/persistence"
	"github.com/tusgame/tusworld/engine/proto"
)

type panicExecutor struct{}

func (panicExecutor) Execute(ctx context.Context, req *proto.Request) *proto.Reply {
	panic("boom")
}

func newTestHandler(t *testing.T) (*Handler, *Dispatcher) {
	db, err := persistence.OpenMemory()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	d := NewDispatcher(executor.NewContext(db, operator.NewRegistry(catalog.Default(), operator.NewFacades())))
	return NewHandler(d), d
}

func TestHandleEcho(t *testing.T) {
	h, _ := newTestHandler(t)
	reply := h.Handle(context.Background(), proto.NewRequest(proto.REQUEST_ECHO, "", ""))
	assert.Equal(t, proto.REQUEST_ECHO, reply.ID)
	assert.Equal(t, proto.STATUS_OK, reply.Status)
	assert.Equal(t, "Echo.", reply.Message)
}

func TestHandleUnknownRequest(t *testing.T) {
	h, _ := newTestHandler(t)
	for _, id := range []proto.RequestID{proto.REQUEST_INVALID, proto.REPLY_ERROR, 32, 0xffff} {
		reply := h.Handle(context.Background(), proto.NewRequest(id, "", ""))
		assert.Equal(t, proto.REPLY_ERROR, reply.ID)
		assert.Equal(t, proto.STATUS_UNKNOWN_REQUEST, reply.Status)
	}
}

func TestHandlePanic(t *testing.T) {
	h, d := newTestHandler(t)
	d.executors[proto.REQUEST_ECHO] = panicExecutor{}
	reply := h.Handle(context.Background(), proto.NewRequest(proto.REQUEST_ECHO, "", ""))
	assert.Equal(t, proto.REQUEST_ECHO, reply.ID)
	assert.Equal(t, proto.STATUS_UNEXPECTED_ERROR, reply.Status)
}

func TestDispatcherCoversEveryRequest(t *testing.T) {
	_, d := newTestHandler(t)
	for id := proto.REQUEST_ECHO; id <= proto.REQUEST_TRANSPORT_RESOURCE; id++ {
		_, unknown := d.Lookup(id).(unknownRequestExecutor)
		assert.Equal(t, id == proto.REPLY_ERROR, unknown, id)
	}
}
