package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	mcpserver "github.com/styleshift/styleshift/pkg/mcp"
	"github.com/styleshift/styleshift/pkg/mcplog"
	"github.com/styleshift/styleshift/pkg/migrate"
	"github.com/styleshift/styleshift/pkg/util"
)

const version = "0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	projectCfg, err := loadProjectConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read .styleshift/config.yaml: %v\n", err)
		os.Exit(1)
	}
	logger := util.NewLogger(loggerConfig(projectCfg))
	util.SetDefault(logger)
	engine := migrate.New(logger)

	command := os.Args[1]
	switch command {
	case "scan":
		os.Exit(runScan(engine, projectCfg, os.Args[2:], false))
	case "apply":
		os.Exit(runScan(engine, projectCfg, os.Args[2:], true))
	case "watch":
		os.Exit(runWatch(engine, projectCfg, os.Args[2:]))
	case "serve":
		callLogPath := ""
		if projectCfg != nil {
			callLogPath = projectCfg.CallLogPath
		}
		callLog, err := mcplog.NewLogger(callLogPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open call log: %v\n", err)
			os.Exit(1)
		}
		srv := mcpserver.NewServer(engine, callLog)
		if err := srv.ServeStdio(); err != nil {
			fmt.Fprintf(os.Stderr, "server error: %v\n", err)
			os.Exit(1)
		}
	case "guide":
		fmt.Printf("Guide fingerprint: %s\n\n%s", migrate.GuideHash(), migrate.Guide())
	case "version":
		fmt.Printf("styleshift %s\n", version)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

// runScan handles both scan (dry run) and apply.
func runScan(engine *migrate.Engine, projectCfg *ProjectConfig, args []string, apply bool) int {
	name := "scan"
	if apply {
		name = "apply"
	}
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	maxFiles := fs.Int("max-files", 0, "cap on files scanned (default 5000, max 20000)")
	fs.Parse(args)

	req := requestFor(fs.Arg(0), projectCfg)
	req.Apply = apply
	req.MaxFiles = *maxFiles

	report, err := engine.Run(req)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Print(report.RenderText())
	if report.Summary.AbortedOn != "" {
		return 1
	}
	return 0
}

// runWatch re-runs dry-run scans on file changes until interrupted.
func runWatch(engine *migrate.Engine, projectCfg *ProjectConfig, args []string) int {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	debounce := fs.Duration("debounce", 300*time.Millisecond, "delay before rescanning after a change")
	fs.Parse(args)

	req := requestFor(fs.Arg(0), projectCfg)
	watcher, err := migrate.NewWatcher(engine, req, *debounce, func(r *migrate.Report) {
		fmt.Printf("%d file(s) scanned, %d finding(s), %d pending change(s)\n",
			r.Summary.FilesScanned, r.Summary.FindingCount, r.Summary.ChangeCount)
	}, util.NewLogger(loggerConfig(projectCfg)))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := watcher.Start(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer watcher.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return 0
}

func requestFor(rootArg string, projectCfg *ProjectConfig) migrate.Request {
	req := migrate.Request{ProjectRoot: resolveRoot(rootArg, projectCfg)}
	if projectCfg != nil {
		req.IncludeExtensions = projectCfg.IncludeExtensions
		req.ExcludeDirNames = projectCfg.ExcludeDirNames
	}
	return req
}

func loggerConfig(projectCfg *ProjectConfig) util.LoggerConfig {
	cfg := util.DefaultLoggerConfig()
	if projectCfg == nil {
		return cfg
	}
	if projectCfg.LogLevel != "" {
		cfg.Level = util.LogLevel(projectCfg.LogLevel)
	}
	if projectCfg.LogFormat != "" {
		cfg.Format = util.LogFormat(projectCfg.LogFormat)
	}
	return cfg
}

func printUsage() {
	fmt.Println("Usage: styleshift <command> [flags] [root]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  scan       Report legacy NativeWind usage (dry run)")
	fmt.Println("  apply      Apply the mechanical Uniwind migration edits")
	fmt.Println("  watch      Rescan on file changes and report pending work")
	fmt.Println("  serve      Start the MCP server on stdin/stdout")
	fmt.Println("  guide      Print the migration guide")
	fmt.Println("  version    Print version")
	fmt.Println("  help       Show this help message")
}
