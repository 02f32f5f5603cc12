package main

import (
	"flag"
	"os"
	"strconv"

	"github.com/tusgame/tusworld/components/server"
	"github.com/tusgame/tusworld/engine/config"
)

const (
	defaultJournalCount = 20
)

var args struct {
	configFile      string
	logLevel        string
	runInDaemonMode bool
}

func parseArgs() {
	flag.StringVar(&args.configFile, "configfile", "", "set config file path")
	flag.StringVar(&args.logLevel, "log", "", "set log level, will override log level in config")
	flag.BoolVar(&args.runInDaemonMode, "d", false, "run in daemon mode")
	flag.Usage = func() {
		showMsg("usage: tusworld [-configfile file] [-log level] [-d] [serve|status|stop|journal [count]|config]")
		flag.PrintDefaults()
	}
	flag.Parse()
}

func main() {
	parseArgs()
	cmd, rest := parseCommand(flag.Args())

	if args.configFile != "" {
		config.SetConfigFile(args.configFile)
	}

	switch cmd {
	case "serve":
		server.Start(server.Options{
			ConfigFile: args.configFile,
			LogLevel:   args.logLevel,
			Daemon:     args.runInDaemonMode,
		})
	case "status":
		status()
	case "stop":
		stop()
	case "journal":
		n, err := parseCount(rest)
		checkErrorOrQuit(err, "bad journal count")
		showJournal(n)
	case "config":
		showMsg("config file: %s", config.GetConfigFilePath())
		os.Stdout.WriteString(config.DumpPretty(config.Get()) + "\n")
	default:
		flag.Usage()
		showMsgAndQuit("unknown command: %s", cmd)
	}
}

// parseCommand splits the command from its arguments; serve is the default command
func parseCommand(args []string) (string, []string) {
	if len(args) == 0 {
		return "serve", nil
	}
	return args[0], args[1:]
}

func parseCount(args []string) (int, error) {
	if len(args) == 0 {
		return defaultJournalCount, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}
