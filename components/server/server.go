// Package server runs the tusworld server: it accepts TCP and WebSocket clients and hands their requests to the executors.
package server

import (
	"net"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/tusgame/tusworld/engine/binutil"
	"github.com/tusgame/tusworld/engine/config"
	"github.com/tusgame/tusworld/engine/consts"
	"github.com/tusgame/tusworld/engine/twlog"
)

// Options are the command line options of the server
type Options struct {
	ConfigFile string
	LogLevel   string
	Daemon     bool
}

var (
	signalChan = make(chan os.Signal, 1)
)

// Start fires up the server and serves until it is terminated by a signal
func Start(opts Options) {
	if opts.Daemon {
		daemoncontext := binutil.Daemonize()
		defer daemoncontext.Release()
	}

	if opts.ConfigFile != "" {
		config.SetConfigFile(opts.ConfigFile)
	}

	cfg := config.Get()
	serverConfig := &cfg.Server
	if serverConfig.GoMaxProcs > 0 {
		twlog.Infof("SET GOMAXPROCS = %d", serverConfig.GoMaxProcs)
		runtime.GOMAXPROCS(serverConfig.GoMaxProcs)
	}
	logLevel := opts.LogLevel
	if logLevel == "" {
		logLevel = serverConfig.LogLevel
	}
	binutil.SetupTWLog("tusworld", logLevel, serverConfig.LogFile, serverConfig.LogStderr)

	ss, err := newServerService(cfg)
	if err != nil {
		twlog.Fatalf("create server failed: %v", err)
	}

	ln, err := net.Listen("tcp", ss.listenAddr)
	if err != nil {
		twlog.Fatalf("listen on %s failed: %v", ss.listenAddr, err)
	}
	twlog.Infof("Listening on TCP: %s ...", ss.listenAddr)

	ss.httpServer = binutil.SetupHTTPServer(serverConfig.HTTPIp, serverConfig.HTTPPort, ss.handleWebSocketConn)
	if consts.STATUS_REPORT_INTERVAL > 0 {
		startStatusReport(ss.ctx, consts.STATUS_REPORT_INTERVAL, ss)
	}
	setupSignals(ss, ln)
	ss.run(ln)
}

func setupSignals(ss *ServerService, ln net.Listener) {
	twlog.Infof("Setup signals ...")
	signal.Ignore(syscall.SIGPIPE, syscall.SIGHUP)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		for {
			sig := <-signalChan
			if sig == syscall.SIGINT || sig == syscall.SIGTERM {
				twlog.Infof("Terminating server ...")
				go ss.terminate(ln)

				ss.terminated.Wait()
				twlog.Infof("Server terminated gracefully.")
				twlog.Sync()
				os.Exit(0)
			} else {
				twlog.Errorf("unexpected signal: %s", sig)
			}
		}
	}()
}
