// Package cmd wires up the CLI flags and runs the operator.
package cmd

import (
	"context"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"ignition/config"
	"ignition/internal/core"
	"ignition/internal/errors"
	"ignition/internal/metrics"
	"ignition/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X ignition/cmd.version=2.0.0"
var version = "1.0.0" //nolint:gochecknoglobals

// Execute parses args, layers config file, environment and flags, and
// runs one start/stop cycle.
func Execute(ctx context.Context, args []string) error {
	var flags config.Config
	fs := flag.NewFlagSet("ignition", flag.ContinueOnError)

	// ── output ───────────────────────────────────────────────────
	fs.StringVarP(&flags.Output, "output", "o", config.DefaultOutput, "Write the output event to `file` (- for stdout)")
	fs.StringVar(&flags.Metrics, "metrics", "", "Dump run metrics to stderr as `format` (json, prom)")

	// ── diagnostics ──────────────────────────────────────────────
	fs.CountVarP(&flags.Verbose, "verbose", "v", "Increase verbosity (repeatable)")
	fs.StringVar(&flags.Level, "level", config.DefaultLevel, "Log `level` (off, error, warn, info, debug, trace)")

	// ── run control ──────────────────────────────────────────────
	fs.StringVarP(&flags.ConfigFile, "config", "f", "", "Read settings from YAML `file`")
	fs.BoolVar(&flags.DryRun, "dry-run", false, "Validate and print the resolved config, then exit")

	var showVersion, showHelp bool
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")

	fs.Usage = func() { printUsage(fs) }

	// ── parse ────────────────────────────────────────────────────
	if err := fs.Parse(args); err != nil {
		return err
	}

	if showHelp {
		printUsage(fs)
		return nil
	}
	if showVersion {
		fmt.Printf("ignition %s\n", version)
		return nil
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q (use --help for usage)", fs.Arg(0))
	}

	// ── layer config ─────────────────────────────────────────────
	cfg := config.Default()
	cfg.ConfigFile = config.ResolveFile(flags.ConfigFile)
	if cfg.ConfigFile != "" {
		if err := config.LoadFromFile(cfg.ConfigFile, cfg); err != nil {
			return err
		}
	}
	config.LoadFromEnv(cfg)
	applyFlags(fs, &flags, cfg)

	// ── validate ─────────────────────────────────────────────────
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := util.NewLogger(cfg.EffectiveVerbosity())

	if cfg.DryRun {
		logger.Info("configuration is valid")
		return config.Dump(os.Stdout, cfg)
	}

	// ── run ──────────────────────────────────────────────────────
	var collector *metrics.Collector
	if cfg.Metrics != config.MetricsNone {
		collector = metrics.New()
	}

	mode, err := core.Build(cfg, logger, collector)
	if err != nil {
		return err
	}

	runErr := mode.Run(ctx)
	if err := errors.Join(runErr, mode.Close()); err != nil {
		return err
	}

	return dumpMetrics(cfg.Metrics, collector)
}

// ── helpers ──────────────────────────────────────────────────────────

// applyFlags copies every flag the user actually set onto cfg, so
// flags beat both environment and config file.
func applyFlags(fs *flag.FlagSet, flags, cfg *config.Config) {
	if fs.Changed("output") {
		cfg.Output = flags.Output
	}
	if fs.Changed("metrics") {
		cfg.Metrics = flags.Metrics
	}
	if fs.Changed("verbose") {
		cfg.Verbose = flags.Verbose
	}
	if fs.Changed("level") {
		cfg.Level = flags.Level
	}
	cfg.DryRun = flags.DryRun
}

func dumpMetrics(format string, collector *metrics.Collector) error {
	switch format {
	case config.MetricsJSON:
		fmt.Fprintln(os.Stderr, collector.JSON())
	case config.MetricsProm:
		return collector.WriteText(os.Stderr)
	}
	return nil
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, `ignition v%s

Starts a car, stops it, and says so.

Usage:
  ignition [options]

Options:
`, version)
	fs.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Environment:
  IGNITION_OUTPUT, IGNITION_METRICS, IGNITION_LEVEL,
  IGNITION_VERBOSE, IGNITION_CONFIG

Examples:
  ignition                                    Print the event to stdout
  ignition -o run.txt --metrics json          Write to a file, dump metrics
  ignition -vvv                               Trace every transition
  ignition -f ignition.yaml --dry-run         Check a config file
`)
}
