package executor

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/bmizerany/assert"
	"github.com/tusgame/tusworld/engine/catalog"
	"github.com/tusgame/tusworld/engine/journal"
	"github.com/tusgame/tusworld/engine/operator"
	"github.com/tusgame/tusworld/engine/persistence"
	"github.com/tusgame/tusworld/engine/proto"
	"github.com/tusgame/tusworld/engine/user"
)

const (
	moderator = "moderator"
	alice     = "alice"
	bob       = "bob"
	password  = "secret"
)

type recorder struct {
	sync.Mutex
	entries []journal.Entry
}

func (r *recorder) Record(entry journal.Entry) {
	r.Lock()
	r.entries = append(r.entries, entry)
	r.Unlock()
}

type testServer struct {
	t         *testing.T
	db        *persistence.DB
	ctx       *Context
	executors map[proto.RequestID]*Executor
	journal   *recorder
}

func newTestServer(t *testing.T) *testServer {
	db, err := persistence.OpenMemory()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	ctx := NewContext(db, operator.NewRegistry(catalog.Default(), operator.NewFacades()))
	rec := &recorder{}
	ctx.Journal = rec
	s := &testServer{t: t, db: db, ctx: ctx, executors: map[proto.RequestID]*Executor{}, journal: rec}
	for _, action := range Actions() {
		s.executors[action.ID] = New(ctx, action)
	}

	s.inTx(func(tx *persistence.Tx) {
		assert.T(t, user.NewFacade().CreateUser(tx, moderator, password, true))
	})
	return s
}

func (s *testServer) inTx(f func(tx *persistence.Tx)) {
	tx, err := s.db.Begin(context.Background())
	if err != nil {
		s.t.Fatal(err)
	}
	defer tx.Rollback()
	f(tx)
	if err := tx.Commit(); err != nil {
		s.t.Fatal(err)
	}
}

func (s *testServer) run(login string, id proto.RequestID, params ...interface{}) Result {
	return s.runAs(login, password, id, params...)
}

func (s *testServer) runAs(login string, pwd string, id proto.RequestID, params ...interface{}) Result {
	req := proto.NewRequest(id, login, pwd)
	for i := 0; i+1 < len(params); i += 2 {
		req.Set(params[i].(string), params[i+1])
	}
	x, ok := s.executors[id]
	if !ok {
		s.t.Fatalf("no executor for %s", id)
	}
	return x.Run(context.Background(), req)
}

func (s *testServer) expect(res Result, status proto.Status, message string) {
	s.t.Helper()
	assert.Equal(s.t, status, res.Reply.Status, res.Reply.Message)
	assert.Equal(s.t, message, res.Reply.Message)
}

// world creates world Aldor with an active epoch and user alice owning land 1 and settlement 1
func (s *testServer) world() {
	s.expect(s.run(moderator, proto.REQUEST_CREATE_WORLD, PARAM_NAME, "Aldor", PARAM_CONFIGURATION, "classic"),
		proto.STATUS_OK, "World has been created.")
	s.expect(s.run(moderator, proto.REQUEST_CREATE_EPOCH, PARAM_ID_WORLD, uint64(1)),
		proto.STATUS_OK, "Epoch has been created.")
	s.expect(s.run(moderator, proto.REQUEST_CREATE_USER, PARAM_USER_LOGIN, alice, PARAM_USER_PASSWORD, password),
		proto.STATUS_OK, "User has been created.")
	s.expect(s.run(alice, proto.REQUEST_CREATE_LAND, PARAM_ID_WORLD, uint64(1), PARAM_NAME, "Eastmarch"),
		proto.STATUS_OK, "Land has been created.")

	res := s.run(alice, proto.REQUEST_CREATE_SETTLEMENT, PARAM_ID_LAND, uint64(1), PARAM_NAME, "Windhelm")
	assert.Equal(s.t, proto.STATUS_EPOCH_IS_NOT_ACTIVE, res.Reply.Status)
	assert.Equal(s.t, StateRepliedError, res.State)

	s.expect(s.run(moderator, proto.REQUEST_ACTIVATE_EPOCH, PARAM_ID_WORLD, uint64(1)),
		proto.STATUS_OK, "Epoch has been activated.")
	s.expect(s.run(alice, proto.REQUEST_CREATE_SETTLEMENT, PARAM_ID_LAND, uint64(1), PARAM_NAME, "Windhelm"),
		proto.STATUS_OK, "Settlement has been created.")
}

func settlementParams(extra ...interface{}) []interface{} {
	return append([]interface{}{PARAM_ID_HOLDER_CLASS, uint64(1), PARAM_ID_HOLDER, uint64(1)}, extra...)
}

func TestEcho(t *testing.T) {
	s := newTestServer(t)
	res := s.runAs("", "", proto.REQUEST_ECHO)
	s.expect(res, proto.STATUS_OK, "Echo.")
	assert.Equal(t, proto.REQUEST_ECHO, res.Reply.ID)
	assert.Equal(t, StateRepliedOK, res.State)
	assert.Equal(t, ECHO_ECHOED, res.Code)
}

func TestScenario(t *testing.T) {
	s := newTestServer(t)
	s.world()

	res := s.run(alice, proto.REQUEST_GET_LANDS, PARAM_ID_WORLD, uint64(1))
	s.expect(res, proto.STATUS_OK, "Lands have been got.")
	assert.Equal(t, 1, len(res.Reply.Objects))
	assert.Equal(t, "Eastmarch", res.Reply.Objects[0]["name"])
	assert.Equal(t, true, res.Reply.Objects[0]["granted"])

	res = s.run(alice, proto.REQUEST_GET_RESOURCE, settlementParams(PARAM_KEY, "gold")...)
	assert.Equal(t, proto.STATUS_OK, res.Reply.Status)
	assert.Equal(t, uint64(10000), res.Reply.Objects[0]["volume"])

	res = s.run(alice, proto.REQUEST_BUILD_BUILDING, settlementParams(PARAM_KEY, "farm/regular", PARAM_VOLUME, uint64(2))...)
	s.expect(res, proto.STATUS_OK, "Building has been built.")

	res = s.run(alice, proto.REQUEST_GET_RESOURCE, settlementParams(PARAM_KEY, "gold")...)
	assert.Equal(t, uint64(9980), res.Reply.Objects[0]["volume"])

	res = s.run(alice, proto.REQUEST_GET_BUILDINGS, settlementParams()...)
	assert.Equal(t, 1, len(res.Reply.Objects))
	assert.Equal(t, "farm/regular", res.Reply.Objects[0]["key"])
	assert.Equal(t, uint64(2), res.Reply.Objects[0]["volume"])

	res = s.run(alice, proto.REQUEST_BUILD_BUILDING, settlementParams(PARAM_KEY, "farm/regular", PARAM_VOLUME, uint64(0))...)
	s.expect(res, proto.STATUS_OK, "Trying to build zero buildings.")
	assert.Equal(t, StateRepliedOK, res.State)
	assert.Equal(t, false, res.Code.OK())

	res = s.run(alice, proto.REQUEST_GET_EPOCH, PARAM_ID_WORLD, uint64(1))
	s.expect(res, proto.STATUS_OK, "Epoch has been got.")
	assert.Equal(t, true, res.Reply.Objects[0]["active"])
}

func TestAuthentication(t *testing.T) {
	s := newTestServer(t)
	s.world()

	res := s.runAs(alice, "wrong", proto.REQUEST_GET_LAND, PARAM_ID_LAND, uint64(1))
	assert.Equal(t, proto.STATUS_UNAUTHENTICATED, res.Reply.Status)
	assert.Equal(t, StateRepliedError, res.State)

	res = s.runAs("nobody", password, proto.REQUEST_GET_LAND, PARAM_ID_LAND, uint64(1))
	assert.Equal(t, proto.STATUS_UNAUTHENTICATED, res.Reply.Status)

	res = s.runAs("", "", proto.REQUEST_GET_LAND, PARAM_ID_LAND, uint64(1))
	assert.Equal(t, proto.STATUS_INVALID_REQUEST, res.Reply.Status)
}

func TestAuthorization(t *testing.T) {
	s := newTestServer(t)
	s.world()
	s.expect(s.run(moderator, proto.REQUEST_CREATE_USER, PARAM_USER_LOGIN, bob, PARAM_USER_PASSWORD, password),
		proto.STATUS_OK, "User has been created.")

	for _, res := range []Result{
		s.run(bob, proto.REQUEST_GET_LAND, PARAM_ID_LAND, uint64(1)),
		s.run(bob, proto.REQUEST_GET_SETTLEMENT, PARAM_ID_SETTLEMENT, uint64(1)),
		s.run(bob, proto.REQUEST_GET_RESOURCES, settlementParams()...),
		s.run(bob, proto.REQUEST_CREATE_WORLD, PARAM_NAME, "Bobland", PARAM_CONFIGURATION, "classic"),
		s.run(alice, proto.REQUEST_ACTIVATE_EPOCH, PARAM_ID_WORLD, uint64(1)),
		// settlers cannot be acted upon
		s.run(alice, proto.REQUEST_GET_RESOURCES, PARAM_ID_HOLDER_CLASS, uint64(2), PARAM_ID_HOLDER, uint64(1)),
	} {
		assert.Equal(t, proto.STATUS_UNAUTHORIZED, res.Reply.Status)
		assert.Equal(t, "", res.Reply.Message)
	}

	// bob only sees his own lands
	res := s.run(bob, proto.REQUEST_GET_LANDS, PARAM_ID_WORLD, uint64(1))
	assert.Equal(t, proto.STATUS_OK, res.Reply.Status)
	assert.Equal(t, 0, len(res.Reply.Objects))
}

func TestInvalidParameters(t *testing.T) {
	s := newTestServer(t)
	s.world()

	for _, res := range []Result{
		s.run(moderator, proto.REQUEST_CREATE_WORLD, PARAM_NAME, "Nowhere"),
		s.run(moderator, proto.REQUEST_CREATE_WORLD, PARAM_NAME, "", PARAM_CONFIGURATION, "classic"),
		s.run(alice, proto.REQUEST_GET_LAND, PARAM_ID_LAND, "one"),
		s.run(alice, proto.REQUEST_GET_LAND, PARAM_ID_LAND, -1),
		s.run(alice, proto.REQUEST_BUILD_BUILDING, settlementParams(PARAM_KEY, "castle/regular", PARAM_VOLUME, uint64(1))...),
		s.run(alice, proto.REQUEST_BUILD_BUILDING, settlementParams(PARAM_KEY, "farm", PARAM_VOLUME, uint64(1))...),
		s.run(alice, proto.REQUEST_ENGAGE_HUMAN, settlementParams(PARAM_KEY, "worker/farmer", PARAM_VOLUME, uint64(1))...),
		s.run(alice, proto.REQUEST_GET_RESOURCE, settlementParams(PARAM_KEY, "silver")...),
		s.run(alice, proto.REQUEST_GET_RESOURCES, PARAM_ID_HOLDER_CLASS, uint64(9), PARAM_ID_HOLDER, uint64(1)),
		s.run(alice, proto.REQUEST_GET_RESOURCES, PARAM_ID_HOLDER_CLASS, uint64(300), PARAM_ID_HOLDER, uint64(1)),
		s.run(alice, proto.REQUEST_BUILD_BUILDING, settlementParams(PARAM_KEY, "barracks/regular", PARAM_VOLUME, uint64(1)<<63)...),
		s.run(alice, proto.REQUEST_ENGAGE_HUMAN, settlementParams(PARAM_KEY, "worker/lumberjack/novice", PARAM_VOLUME, uint64(math.MaxUint64))...),
	} {
		assert.Equal(t, proto.STATUS_INVALID_REQUEST, res.Reply.Status)
		assert.Equal(t, StateRepliedError, res.State)
	}
}

func TestHugeVolumeCostsEverything(t *testing.T) {
	s := newTestServer(t)
	s.world()

	res := s.run(alice, proto.REQUEST_BUILD_BUILDING, settlementParams(PARAM_KEY, "barracks/regular", PARAM_VOLUME, uint64(1)<<62)...)
	assert.Equal(t, proto.STATUS_OK, res.Reply.Status)
	assert.Equal(t, operator.BUILD_BUILDING_NOT_ENOUGH_RESOURCES, res.Code)

	res = s.run(alice, proto.REQUEST_GET_BUILDINGS, settlementParams()...)
	assert.Equal(t, proto.STATUS_OK, res.Reply.Status)
	assert.Equal(t, 0, len(res.Reply.Objects))
}

func TestWorldConfiguration(t *testing.T) {
	s := newTestServer(t)
	s.expect(s.run(moderator, proto.REQUEST_CREATE_WORLD, PARAM_NAME, "Elsewhere", PARAM_CONFIGURATION, "modern"),
		proto.STATUS_OK, "World has been created.")

	res := s.run(moderator, proto.REQUEST_CREATE_EPOCH, PARAM_ID_WORLD, uint64(1))
	assert.Equal(t, proto.STATUS_WORLD_CONFIGURATION_MISMATCH, res.Reply.Status)
	assert.Equal(t, StateRepliedError, res.State)

	// a missing world is reported by the operator
	s.expect(s.run(moderator, proto.REQUEST_CREATE_EPOCH, PARAM_ID_WORLD, uint64(99)),
		proto.STATUS_OK, "World does not exist.")
}

func TestJournal(t *testing.T) {
	s := newTestServer(t)
	s.world()

	// create_world, create_epoch, create_user, create_land, activate_epoch, create_settlement
	assert.Equal(t, 6, len(s.journal.entries))
	last := s.journal.entries[5]
	assert.Equal(t, uint16(proto.REQUEST_CREATE_SETTLEMENT), last.IDRequest)
	assert.Equal(t, "create_settlement", last.Request)
	assert.Equal(t, alice, last.Login)
	assert.Equal(t, "SETTLEMENT_HAS_BEEN_CREATED", last.ExitCode)
	assert.T(t, last.OK)
	assert.NotEqual(t, "", last.UUID)
	assert.NotEqual(t, s.journal.entries[4].UUID, last.UUID)

	// rejected requests are not performed
	s.run(alice, proto.REQUEST_CREATE_WORLD, PARAM_NAME, "Aldor2", PARAM_CONFIGURATION, "classic")
	assert.Equal(t, 6, len(s.journal.entries))
}

func TestUnknownExitCodeMessage(t *testing.T) {
	s := newTestServer(t)
	x := New(s.ctx, &Action{
		ID: proto.REQUEST_ECHO, Name: "silent",
		Perform: func(e *execution, tx *persistence.Tx) outcome {
			return outcome{code: ECHO_ECHOED}
		},
		Messages: messages{},
	})
	res := x.Run(context.Background(), proto.NewRequest(proto.REQUEST_ECHO, "", ""))
	s.expect(res, proto.STATUS_OK, METAMESSAGE_EVEN_MORE_UNEXPECTED_ERROR_UNKNOWN_EXIT_CODE)
	assert.Equal(t, "Echo.", messages{ECHO_ECHOED: "Echo."}.message(ECHO_ECHOED))
}

func TestPerformCommit(t *testing.T) {
	s := newTestServer(t)
	users := user.NewFacade()

	insert := func(login string, mutating bool, code operator.ExitCode) {
		x := New(s.ctx, &Action{
			ID: proto.REQUEST_CREATE_USER, Name: "insert_user", Mutating: mutating,
			Perform: func(e *execution, tx *persistence.Tx) outcome {
				assert.T(t, users.CreateUser(tx, login, password, false))
				return outcome{code: code}
			},
		})
		res := x.Run(context.Background(), proto.NewRequest(proto.REQUEST_CREATE_USER, "", ""))
		assert.Equal(t, proto.STATUS_OK, res.Reply.Status)
	}
	exists := func(login string) (found bool) {
		s.inTx(func(tx *persistence.Tx) {
			var err error
			_, found, err = users.GetUserByLogin(tx, login)
			assert.Equal(t, nil, err)
		})
		return
	}

	insert("committed", true, operator.CREATE_USER_USER_HAS_BEEN_CREATED)
	insert("read_only", false, operator.CREATE_USER_USER_HAS_BEEN_CREATED)
	insert("failed", true, operator.CREATE_USER_USER_HAS_NOT_BEEN_CREATED)

	assert.T(t, exists("committed"))
	assert.T(t, !exists("read_only"))
	assert.T(t, !exists("failed"))
}

type busyError struct{}

func (busyError) Error() string { return "database is locked" }
func (busyError) Code() int     { return 5 }

func TestPerformRetriesConflicts(t *testing.T) {
	s := newTestServer(t)
	s.ctx.Backoff = 0
	users := user.NewFacade()

	attempts := 0
	x := New(s.ctx, &Action{
		ID: proto.REQUEST_CREATE_USER, Name: "conflicting_insert", Mutating: true,
		Perform: func(e *execution, tx *persistence.Tx) outcome {
			attempts++
			assert.T(t, users.CreateUser(tx, "retried", password, false))
			if attempts == 1 {
				tx.Fail(busyError{})
			}
			return outcome{code: operator.CREATE_USER_USER_HAS_BEEN_CREATED}
		},
	})
	res := x.Run(context.Background(), proto.NewRequest(proto.REQUEST_CREATE_USER, "", ""))
	assert.Equal(t, 2, attempts)
	assert.Equal(t, proto.STATUS_OK, res.Reply.Status)
	assert.Equal(t, StateRepliedOK, res.State)

	s.inTx(func(tx *persistence.Tx) {
		_, found, err := users.GetUserByLogin(tx, "retried")
		assert.Equal(t, nil, err)
		assert.T(t, found)
	})
}

func TestPerformGivesUpOnConflicts(t *testing.T) {
	s := newTestServer(t)
	s.ctx.Backoff = 0
	s.ctx.MaxRetries = 2

	attempts := 0
	x := New(s.ctx, &Action{
		ID: proto.REQUEST_ECHO, Name: "always_busy", Mutating: true,
		Perform: func(e *execution, tx *persistence.Tx) outcome {
			attempts++
			tx.Fail(busyError{})
			return outcome{code: ECHO_ECHOED}
		},
	})
	res := x.Run(context.Background(), proto.NewRequest(proto.REQUEST_ECHO, "", ""))
	assert.Equal(t, 3, attempts)
	assert.Equal(t, proto.STATUS_UNEXPECTED_ERROR, res.Reply.Status)
	assert.Equal(t, StateRepliedError, res.State)
}

func TestStateNames(t *testing.T) {
	assert.Equal(t, "Created", StateCreated.String())
	assert.Equal(t, "RepliedError", StateRepliedError.String())
	assert.Equal(t, "State(42)", State(42).String())
}

func TestActionsAreComplete(t *testing.T) {
	seen := map[proto.RequestID]bool{}
	for _, action := range Actions() {
		assert.T(t, !seen[action.ID], action.Name)
		seen[action.ID] = true
		assert.T(t, action.Perform != nil, action.Name)
		assert.T(t, len(action.Messages) > 0, action.Name)
	}
	for id := proto.REQUEST_ECHO; id <= proto.REQUEST_TRANSPORT_RESOURCE; id++ {
		if id == proto.REPLY_ERROR {
			continue
		}
		assert.T(t, seen[id], id)
	}
}
