// Package executor runs requests through the fixed pipeline of the server:
// parameters are extracted and processed, the user is authenticated and
// authorized, the epoch and the world configuration are checked and finally
// the operator of the action is performed and its exit code turned into a reply.
//
// Every check stage runs in its own short transaction. Only the perform stage
// may mutate state and it commits only when the operator succeeded.
package executor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tusgame/tusworld/engine/consts"
	"github.com/tusgame/tusworld/engine/epoch"
	"github.com/tusgame/tusworld/engine/journal"
	"github.com/tusgame/tusworld/engine/operator"
	"github.com/tusgame/tusworld/engine/opmon"
	"github.com/tusgame/tusworld/engine/persistence"
	"github.com/tusgame/tusworld/engine/proto"
	"github.com/tusgame/tusworld/engine/twlog"
	"github.com/tusgame/tusworld/engine/user"
)

// State is the position of one request in the pipeline
type State uint8

// Pipeline states
const (
	StateCreated State = iota
	StateParametersExtracted
	StateParametersProcessed
	StateAuthenticated
	StateAuthorized
	StateEpochActive
	StateWorldConfigured
	StatePerformed
	StateRepliedOK
	StateRepliedError
)

var stateNames = []string{
	"Created", "ParametersExtracted", "ParametersProcessed", "Authenticated", "Authorized",
	"EpochActive", "WorldConfigured", "Performed", "RepliedOK", "RepliedError",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Recorder receives one entry per performed action
type Recorder interface {
	Record(entry journal.Entry)
}

// Context is what executors need from the running server
type Context struct {
	DB         *persistence.DB
	Registry   *operator.Registry
	MaxRetries int
	Backoff    time.Duration
	Journal    Recorder
}

// NewContext creates a Context with the default retry policy and no journal
func NewContext(db *persistence.DB, reg *operator.Registry) *Context {
	return &Context{
		DB:         db,
		Registry:   reg,
		MaxRetries: consts.STORAGE_MAX_RETRIES,
		Backoff:    consts.STORAGE_RETRY_BACKOFF,
	}
}

// Executor runs the requests of one action
type Executor struct {
	ctx    *Context
	action *Action
}

// New creates the executor of action
func New(ctx *Context, action *Action) *Executor {
	return &Executor{ctx: ctx, action: action}
}

// Action returns the action of the executor
func (x *Executor) Action() *Action {
	return x.action
}

// Result is the outcome of one request
type Result struct {
	Reply *proto.Reply
	State State
	// Code is set once the operator has been performed
	Code operator.ExitCode
}

// Execute runs req through the pipeline and returns the reply
func (x *Executor) Execute(ctx context.Context, req *proto.Request) *proto.Reply {
	return x.Run(ctx, req).Reply
}

// Run runs req through the pipeline
func (x *Executor) Run(ctx context.Context, req *proto.Request) Result {
	op := opmon.StartOperation("executor." + x.action.Name)
	defer op.Finish(consts.EXECUTOR_WARN_THRESHOLD)

	e := &execution{Context: x.ctx, ctx: ctx, action: x.action, req: req, state: StateCreated}
	res := e.run()
	if res.State != StateRepliedOK {
		op.Fail()
	}
	return res
}

// execution is the state of one request
type execution struct {
	*Context
	ctx    context.Context
	action *Action
	req    *proto.Request
	state  State

	p          params
	user       user.User
	epoch      epoch.Epoch
	epochFound bool
}

func (e *execution) advance(s State) {
	if consts.DEBUG_EXECUTORS {
		twlog.Debugf("%s: %s -> %s", e.action.Name, e.state, s)
	}
	e.state = s
}

func (e *execution) fail(stage string, status proto.Status) Result {
	twlog.Debugf("%s: %s failed in state %s, replying %s", e.action.Name, stage, e.state, status)
	e.state = StateRepliedError
	return Result{Reply: proto.NewReply(e.action.ID, status), State: e.state}
}

func (e *execution) run() Result {
	if !e.getParameters() {
		return e.fail("get parameters", proto.STATUS_INVALID_REQUEST)
	}
	e.advance(StateParametersExtracted)

	if !e.processParameters() {
		return e.fail("process parameters", proto.STATUS_INVALID_REQUEST)
	}
	e.advance(StateParametersProcessed)

	if e.action.Authenticate {
		ok, broken := e.authenticate()
		if broken {
			return e.fail("authenticate", proto.STATUS_UNEXPECTED_ERROR)
		}
		if !ok {
			return e.fail("authenticate", proto.STATUS_UNAUTHENTICATED)
		}
	}
	e.advance(StateAuthenticated)

	if e.action.Authorize != nil {
		ok, broken := e.authorize()
		if broken {
			return e.fail("authorize", proto.STATUS_UNEXPECTED_ERROR)
		}
		if !ok {
			return e.fail("authorize", proto.STATUS_UNAUTHORIZED)
		}
	}
	e.advance(StateAuthorized)

	if e.action.Epoch != nil {
		ok, broken := e.epochIsActive()
		if broken {
			return e.fail("epoch is active", proto.STATUS_UNEXPECTED_ERROR)
		}
		if !ok {
			return e.fail("epoch is active", proto.STATUS_EPOCH_IS_NOT_ACTIVE)
		}
	}
	e.advance(StateEpochActive)

	if e.action.VerifyWorld {
		ok, broken := e.verifyWorldConfiguration()
		if broken {
			return e.fail("verify world configuration", proto.STATUS_UNEXPECTED_ERROR)
		}
		if !ok {
			return e.fail("verify world configuration", proto.STATUS_WORLD_CONFIGURATION_MISMATCH)
		}
	}
	e.advance(StateWorldConfigured)

	return e.perform()
}

func (e *execution) getParameters() bool {
	if e.action.Authenticate {
		var err error
		if e.p.login, err = e.req.LoginValue(); err != nil {
			twlog.Debugf("%s: %v", e.action.Name, err)
			return false
		}
		if e.p.password, err = e.req.PasswordValue(); err != nil {
			twlog.Debugf("%s: %v", e.action.Name, err)
			return false
		}
	}
	for _, prm := range e.action.Params {
		if err := prm.get(e.req, &e.p); err != nil {
			twlog.Debugf("%s: %v", e.action.Name, err)
			return false
		}
	}
	return true
}

func (e *execution) processParameters() bool {
	for _, prm := range e.action.Params {
		if prm.process == nil {
			continue
		}
		if err := prm.process(e.Registry.Catalog, &e.p); err != nil {
			twlog.Debugf("%s: %v", e.action.Name, err)
			return false
		}
	}
	return true
}

// check runs f in its own transaction, committing only when the check operator succeeded
func (e *execution) check(stage string, f func(tx *persistence.Tx) (ok bool, passed bool)) (passed bool, broken bool) {
	tx, err := e.DB.Begin(e.ctx)
	if err != nil {
		twlog.Errorf("%s: %s: %v", e.action.Name, stage, err)
		return false, true
	}
	defer tx.Rollback()

	ok, passed := f(tx)
	if !ok {
		return false, true
	}
	if err := tx.Commit(); err != nil {
		twlog.Errorf("%s: %s: commit: %v", e.action.Name, stage, err)
		return false, true
	}
	return passed, false
}

func (e *execution) authenticate() (bool, bool) {
	return e.check("authenticate", func(tx *persistence.Tx) (bool, bool) {
		res := e.Registry.Authenticate.Authenticate(tx, e.p.login, e.p.password)
		if res.Authenticated {
			e.user = res.User
		}
		return res.Code.OK(), res.Authenticated
	})
}

func (e *execution) authorize() (bool, bool) {
	return e.check("authorize", func(tx *persistence.Tx) (bool, bool) {
		return e.action.Authorize(e, tx)
	})
}

func (e *execution) epochIsActive() (bool, bool) {
	return e.check("epoch is active", func(tx *persistence.Tx) (bool, bool) {
		res := e.action.Epoch(e, tx)
		if res.Found() {
			e.epoch, e.epochFound = res.Epoch, true
		}
		return res.Code.OK(), res.Found() && res.Epoch.Active
	})
}

func (e *execution) verifyWorldConfiguration() (bool, bool) {
	idWorld := e.p.idWorld
	if e.epochFound {
		idWorld = e.epoch.IDWorld
	}
	return e.check("verify world configuration", func(tx *persistence.Tx) (bool, bool) {
		code := e.Registry.VerifyWorld.VerifyWorldConfiguration(tx, idWorld)
		// a missing world is reported by the operator of the action
		return code.OK(), code != operator.VERIFY_WORLD_CONFIGURATION_MISMATCH
	})
}

func (e *execution) perform() Result {
	started := time.Now()
	for attempt := 0; ; attempt++ {
		out, retry, err := e.performOnce()
		if err == nil {
			e.advance(StatePerformed)
			res := e.reply(out)
			e.record(out, time.Since(started))
			return res
		}
		if !retry || attempt >= e.MaxRetries {
			twlog.Errorf("%s: perform failed after %d attempts: %v", e.action.Name, attempt+1, err)
			return e.fail("perform", proto.STATUS_UNEXPECTED_ERROR)
		}
		twlog.Warnf("%s: transaction conflict, retrying (%d/%d): %v", e.action.Name, attempt+1, e.MaxRetries, err)
		time.Sleep(e.Backoff * time.Duration(attempt+1))
	}
}

// performOnce runs the operator in a new transaction and commits iff it succeeded and mutated
func (e *execution) performOnce() (out outcome, retry bool, err error) {
	tx, err := e.DB.Begin(e.ctx)
	if err != nil {
		return out, persistence.IsRetryable(err), err
	}
	defer tx.Rollback()

	op := opmon.StartOperation("operator." + e.action.Name)
	out = e.action.Perform(e, tx)
	op.Finish(consts.OPERATOR_WARN_THRESHOLD)

	if txErr := tx.Err(); txErr != nil && persistence.IsRetryable(txErr) {
		return out, true, txErr
	}
	if !e.action.Mutating || !out.code.OK() {
		return out, false, nil
	}
	if err = tx.Commit(); err != nil {
		return out, persistence.IsRetryable(err), err
	}
	return out, false, nil
}

func (e *execution) reply(out outcome) Result {
	reply := proto.NewReply(e.action.ID, proto.STATUS_OK)
	reply.Message = e.action.Messages.message(out.code)
	reply.Objects = out.objects
	e.state = StateRepliedOK
	return Result{Reply: reply, State: e.state, Code: out.code}
}

func (e *execution) record(out outcome, duration time.Duration) {
	if e.Journal == nil {
		return
	}
	e.Journal.Record(journal.Entry{
		UUID:      uuid.NewString(),
		IDRequest: uint16(e.action.ID),
		Request:   e.action.Name,
		Login:     e.p.login,
		ExitCode:  out.code.String(),
		OK:        out.code.OK(),
		Duration:  duration,
		Time:      time.Now(),
	})
}
