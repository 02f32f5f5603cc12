package handler

import (
	"context"

	"github.com/tusgame/tusworld/engine/executor"
	"github.com/tusgame/tusworld/engine/proto"
	"github.com/tusgame/tusworld/engine/twlog"
)

// RequestExecutor executes the requests of one kind
type RequestExecutor interface {
	Execute(ctx context.Context, req *proto.Request) *proto.Reply
}

type unknownRequestExecutor struct{}

func (unknownRequestExecutor) Execute(ctx context.Context, req *proto.Request) *proto.Reply {
	twlog.Warnf("unknown request: %s", req.IDRequest())
	return proto.NewErrorReply()
}

// Dispatcher maps request ids to the executors bound to one server context
type Dispatcher struct {
	executors map[proto.RequestID]RequestExecutor
}

// NewDispatcher creates an executor for every action
func NewDispatcher(ctx *executor.Context) *Dispatcher {
	d := &Dispatcher{executors: map[proto.RequestID]RequestExecutor{}}
	for _, action := range executor.Actions() {
		if _, ok := d.executors[action.ID]; ok {
			twlog.Panicf("duplicate action %s for %s", action.Name, action.ID)
		}
		d.executors[action.ID] = executor.New(ctx, action)
	}
	return d
}

// Lookup returns the executor of id; unknown ids get an executor replying UNKNOWN_REQUEST
func (d *Dispatcher) Lookup(id proto.RequestID) RequestExecutor {
	if x, ok := d.executors[id]; ok {
		return x
	}
	return unknownRequestExecutor{}
}
