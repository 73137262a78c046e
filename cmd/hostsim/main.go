// Package main is the entry point for the hostsim scenario runner.
//
// hostsim builds a simulated editor host from a config file, opens the
// documents listed in a YAML fixture, runs Lua scenario scripts against it
// and prints the resulting host state as JSON.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/tidwall/pretty"

	"github.com/dshills/hostsim/internal/config"
	"github.com/dshills/hostsim/internal/fixture"
	"github.com/dshills/hostsim/internal/host"
	"github.com/dshills/hostsim/internal/logging"
	"github.com/dshills/hostsim/internal/script"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	configPath  string
	fixturePath string
	scripts     []string
	logLevel    string
	pretty      bool
	showVersion bool
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.showVersion {
		fmt.Fprintf(stdout, "hostsim %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}

	cfg, err := config.LoadWithEnv(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: loading config: %v\n", err)
		return 1
	}

	logCfg := logging.DefaultConfig()
	logCfg.Output = stderr
	logCfg.Level = cfg.LogLevel()
	if opts.logLevel != "" {
		logCfg.Level = logging.ParseLevel(opts.logLevel)
	}
	logger := logging.New(logCfg)

	sim, err := host.NewFromConfig(cfg, host.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	if opts.fixturePath != "" {
		fx, err := fixture.Load(opts.fixturePath)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		if err := fx.Apply(sim); err != nil {
			fmt.Fprintf(stderr, "Error: applying fixture: %v\n", err)
			return 1
		}
		logger.Info("applied fixture %s", opts.fixturePath)
	}

	if len(opts.scripts) > 0 {
		state := script.NewState(sim, script.WithOutput(stderr), script.WithLogger(logger))
		defer state.Close()
		for _, path := range opts.scripts {
			if err := state.DoFile(path); err != nil {
				fmt.Fprintf(stderr, "Error: %s: %v\n", path, err)
				return 1
			}
			logger.Info("ran script %s", path)
		}
	}

	js, err := sim.DumpJSON()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	out := []byte(js)
	if opts.pretty {
		out = pretty.Pretty(out)
	} else {
		out = append(pretty.Ugly(out), '\n')
	}
	if _, err := stdout.Write(out); err != nil {
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	var scriptPath string

	fs := flag.NewFlagSet("hostsim", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", config.DefaultFile, "Path to configuration file")
	fs.StringVar(&opts.configPath, "c", config.DefaultFile, "Path to configuration file (shorthand)")
	fs.StringVar(&opts.fixturePath, "fixture", "", "YAML fixture of documents to open")
	fs.StringVar(&opts.fixturePath, "f", "", "YAML fixture of documents to open (shorthand)")
	fs.StringVar(&scriptPath, "script", "", "Lua scenario to run")
	fs.StringVar(&scriptPath, "s", "", "Lua scenario to run (shorthand)")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides config")
	fs.BoolVar(&opts.pretty, "pretty", false, "Indent the JSON output")
	fs.BoolVar(&opts.pretty, "p", false, "Indent the JSON output (shorthand)")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")
	fs.BoolVar(&opts.showVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "hostsim - simulated editor host for spell-check scenarios\n\n")
		fmt.Fprintf(stderr, "Usage: hostsim [options] [scripts...]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  hostsim -f docs.yaml                 Dump the fixture state\n")
		fmt.Fprintf(stderr, "  hostsim -f docs.yaml -p check.lua    Run a scenario, print indented state\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	switch opts.logLevel {
	case "", "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
		return opts, fmt.Errorf("invalid log level %q", opts.logLevel)
	}

	if scriptPath != "" {
		opts.scripts = append(opts.scripts, scriptPath)
	}
	opts.scripts = append(opts.scripts, fs.Args()...)
	return opts, nil
}
