package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/xiaonanln/go-xnsyncutil/xnsyncutil"
	"golang.org/x/net/websocket"

	"github.com/tusgame/tusworld/engine/catalog"
	"github.com/tusgame/tusworld/engine/config"
	"github.com/tusgame/tusworld/engine/consts"
	"github.com/tusgame/tusworld/engine/executor"
	"github.com/tusgame/tusworld/engine/handler"
	"github.com/tusgame/tusworld/engine/journal"
	"github.com/tusgame/tusworld/engine/netutil"
	"github.com/tusgame/tusworld/engine/operator"
	"github.com/tusgame/tusworld/engine/persistence"
	"github.com/tusgame/tusworld/engine/twlog"
)

// ServerService serves requests of TCP and WebSocket clients
type ServerService struct {
	cfg     *config.TusWorldConfig
	db      *persistence.DB
	facades *operator.Facades
	handler *handler.Handler
	journal *journal.Journal

	listenAddr        string
	httpServer        *http.Server
	clientProxies     map[string]*ClientProxy
	clientProxiesLock sync.RWMutex
	clientProxiesWait sync.WaitGroup

	ctx         context.Context
	cancel      context.CancelFunc
	terminating xnsyncutil.AtomicBool
	terminated  *xnsyncutil.OneTimeCond
}

func newServerService(cfg *config.TusWorldConfig) (*ServerService, error) {
	cat, err := loadCatalog(&cfg.Catalog)
	if err != nil {
		return nil, err
	}

	db, err := persistence.Open(cfg.Storage.Driver, cfg.Storage.Url)
	if err != nil {
		return nil, err
	}

	ss := &ServerService{
		cfg:           cfg,
		db:            db,
		facades:       operator.NewFacades(),
		listenAddr:    fmt.Sprintf("%s:%d", cfg.Server.Ip, cfg.Server.Port),
		clientProxies: map[string]*ClientProxy{},
		terminated:    xnsyncutil.NewOneTimeCond(),
	}
	ss.ctx, ss.cancel = context.WithCancel(context.Background())

	if err = ss.seedModerator(); err != nil {
		ss.cancel()
		db.Close()
		return nil, err
	}

	if ss.journal, err = journal.Open(&cfg.Journal); err != nil {
		ss.cancel()
		db.Close()
		return nil, err
	}

	execCtx := executor.NewContext(db, operator.NewRegistry(cat, ss.facades))
	execCtx.MaxRetries = cfg.Storage.MaxRetries
	if ss.journal != nil {
		execCtx.Journal = ss.journal
	}
	ss.handler = handler.NewHandler(handler.NewDispatcher(execCtx))
	return ss, nil
}

func loadCatalog(cfg *config.CatalogConfig) (*catalog.Catalog, error) {
	cat := catalog.Default()
	if cfg.File != "" {
		file := cfg.File
		if !filepath.IsAbs(file) {
			file = filepath.Join(config.GetConfigDir(), file)
		}
		var err error
		if cat, err = catalog.Load(file); err != nil {
			return nil, err
		}
	}
	if cat.Name != cfg.Name {
		return nil, errors.Errorf("catalog %s is loaded, but %s is configured", cat.Name, cfg.Name)
	}
	twlog.Infof("Catalog %s loaded", cat.Name)
	return cat, nil
}

// seedModerator creates the configured moderator account if it does not exist yet
func (ss *ServerService) seedModerator() error {
	login, password := ss.cfg.Server.ModeratorLogin, ss.cfg.Server.ModeratorPassword
	if login == "" {
		return nil
	}

	tx, err := ss.db.Begin(ss.ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, found, err := ss.facades.User.GetUserByLogin(tx, login)
	if err != nil {
		return errors.Wrap(err, "seed moderator")
	}
	if found {
		return nil
	}
	if !ss.facades.User.CreateUser(tx, login, password, true) {
		return errors.Errorf("seed moderator: can not create %s", login)
	}
	twlog.Infof("Moderator %s created", login)
	return tx.Commit()
}

func (ss *ServerService) String() string {
	return fmt.Sprintf("ServerService<%s>", ss.listenAddr)
}

// run serves on ln until the service terminates
func (ss *ServerService) run(ln net.Listener) {
	twlog.Infof("%s: compress format: %q, rate limit: %v/s burst %d", ss, ss.cfg.Server.CompressFormat, ss.cfg.Server.RateLimit, ss.cfg.Server.RateBurst)
	err := netutil.ServeListener(ln, ss)
	if !ss.terminating.Load() {
		twlog.Panicf("%s: serve failed: %v", ss, err)
	}
	ss.terminated.Wait()
}

// ServeTCPConnection handle TCP connections from clients
func (ss *ServerService) ServeTCPConnection(conn net.Conn) {
	if tcpConn, ok := conn.(*net.TCPConn); ok {
		tcpConn.SetWriteBuffer(consts.BUFFERED_WRITE_BUFFSIZE)
		tcpConn.SetReadBuffer(consts.BUFFERED_READ_BUFFSIZE)
		tcpConn.SetNoDelay(true)
	}

	ss.handleClientConnection(conn)
}

func (ss *ServerService) handleWebSocketConn(wsConn *websocket.Conn) {
	twlog.Debugf("WebSocket Connection: %s", wsConn.Request().RemoteAddr)
	wsConn.PayloadType = websocket.BinaryFrame
	ss.handleClientConnection(wsConn)
}

func (ss *ServerService) handleClientConnection(netconn net.Conn) {
	ss.clientProxiesLock.Lock()
	if ss.terminating.Load() {
		// server terminating, not accepting more connections
		ss.clientProxiesLock.Unlock()
		netconn.Close()
		return
	}
	cp, err := newClientProxy(uuid.NewString(), netconn, ss)
	if err != nil {
		ss.clientProxiesLock.Unlock()
		twlog.Errorf("%s: %v", ss, err)
		netconn.Close()
		return
	}
	ss.clientProxies[cp.clientid] = cp
	ss.clientProxiesWait.Add(1)
	ss.clientProxiesLock.Unlock()

	twlog.Debugf("%s: client %s connected", ss, cp)
	cp.serve()
}

func (ss *ServerService) onClientProxyClose(cp *ClientProxy) {
	ss.clientProxiesLock.Lock()
	delete(ss.clientProxies, cp.clientid)
	ss.clientProxiesLock.Unlock()
	ss.clientProxiesWait.Done()

	twlog.Debugf("%s: client %s disconnected", ss, cp)
}

// numClients returns the number of connected clients
func (ss *ServerService) numClients() int {
	ss.clientProxiesLock.RLock()
	defer ss.clientProxiesLock.RUnlock()
	return len(ss.clientProxies)
}

// terminate closes every client, flushes the journal and closes the store
func (ss *ServerService) terminate(ln net.Listener) {
	ss.clientProxiesLock.Lock()
	ss.terminating.Store(true)
	for _, cp := range ss.clientProxies {
		cp.Close()
	}
	ss.clientProxiesLock.Unlock()

	ss.cancel()
	if ln != nil {
		ln.Close()
	}
	if ss.httpServer != nil {
		ss.httpServer.Close()
	}
	ss.clientProxiesWait.Wait()

	if ss.journal != nil {
		ss.journal.Close()
		ss.journal.WaitTerminated()
	}
	if err := ss.db.Close(); err != nil {
		twlog.Errorf("%s: close %s failed: %v", ss, ss.db, err)
	}
	ss.terminated.Signal()
}
