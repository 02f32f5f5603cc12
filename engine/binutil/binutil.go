package binutil

import (
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/natefinch/lumberjack"
	"github.com/tusgame/tusworld/engine/twlog"
	"golang.org/x/net/websocket"
)

// SetupHTTPServer starts the HTTP server for go tool pprof and websockets
//
// The server is not started when port is 0.
func SetupHTTPServer(ip string, port int, wsHandler func(ws *websocket.Conn)) *http.Server {
	if port == 0 {
		// pprof not enabled
		twlog.Infof("http server not enabled")
		return nil
	}

	httpHost := fmt.Sprintf("%s:%d", ip, port)
	twlog.Infof("http server listening on %s", httpHost)
	twlog.Infof("pprof http://%s/debug/pprof/ ... available commands: ", httpHost)
	twlog.Infof("    go tool pprof http://%s/debug/pprof/heap", httpHost)
	twlog.Infof("    go tool pprof http://%s/debug/pprof/profile", httpHost)

	mux := http.NewServeMux()
	mux.Handle("/debug/", http.DefaultServeMux) // net/http/pprof registers on the default mux
	if wsHandler != nil {
		mux.Handle("/ws", websocket.Handler(wsHandler))
	}

	server := &http.Server{Addr: httpHost, Handler: mux}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			twlog.Errorf("http server %s failed: %v", httpHost, err)
		}
	}()
	return server
}

// SetupTWLog setup the tusworld log system
func SetupTWLog(component string, logLevel string, logFile string, logStderr bool) {
	twlog.SetSource(component)
	twlog.Infof("Set log level to %s", logLevel)
	twlog.SetLevel(twlog.StringToLevel(logLevel))

	outputWriters := make([]io.Writer, 0, 2)
	if logFile != "" {
		logFileWriter := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    100, // megabytes
			MaxBackups: 100,
			MaxAge:     30, //days
			Compress:   true,
		}

		logFileWriter.Rotate() // rotate immediately
		outputWriters = append(outputWriters, logFileWriter)
	}

	if logStderr {
		outputWriters = append(outputWriters, os.Stderr)
	}

	twlog.SetOutput(outputWriters...)
}
