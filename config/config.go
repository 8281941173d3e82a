// Package config defines the runtime configuration for ignition and
// the layers it is assembled from.
package config

import (
	"fmt"

	"ignition/internal/errors"
	"ignition/util"
)

// Metrics dump formats accepted by --metrics.
const (
	MetricsNone = ""
	MetricsJSON = "json"
	MetricsProm = "prom"
)

// Config holds every tuneable for a single ignition run.
type Config struct {
	// ── Output ───────────────────────────────────────────────────────
	Output  string // event destination; "-" is stdout
	Metrics string // "", "json" or "prom"

	// ── Diagnostics ──────────────────────────────────────────────────
	Verbose int    // -v count
	Level   string // --level name, see util.ParseLevel

	// ── Run control ──────────────────────────────────────────────────
	ConfigFile string
	DryRun     bool
}

// Default returns a Config populated from defaults.go.
func Default() *Config {
	return &Config{
		Output: DefaultOutput,
		Level:  DefaultLevel,
	}
}

// EffectiveVerbosity combines -v and --level into a util.LogLevel; the
// louder one wins.  An unparsable level counts as quiet (Validate
// reports it).
func (c *Config) EffectiveVerbosity() int {
	v := int(util.VerbosityLevel(c.Verbose))
	if c.Level != "" {
		if lvl, err := util.ParseLevel(c.Level); err == nil && int(lvl) > v {
			v = int(lvl)
		}
	}
	return v
}

// ── Validation ───────────────────────────────────────────────────────

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Output == "" {
		return &errors.ConfigError{
			Field:   "output",
			Message: "an output destination is required",
			Hint:    fmt.Sprintf("use -o %s for stdout", util.StdoutPath),
			Err:     errors.ErrNoOutput,
		}
	}

	if c.Level != "" {
		if _, err := util.ParseLevel(c.Level); err != nil {
			return &errors.ConfigError{
				Field:   "level",
				Value:   c.Level,
				Message: "unknown log level",
				Hint:    "use one of off, error, warn, info, debug, trace",
				Err:     errors.ErrUnknownLevel,
			}
		}
	}

	switch c.Metrics {
	case MetricsNone, MetricsJSON, MetricsProm:
	default:
		return &errors.ConfigError{
			Field:   "metrics",
			Value:   c.Metrics,
			Message: "unknown metrics format",
			Hint:    "use json or prom",
			Err:     errors.ErrUnknownFormat,
		}
	}

	if c.Verbose < 0 {
		return &errors.ConfigError{
			Field:   "verbose",
			Value:   c.Verbose,
			Message: "verbosity cannot be negative",
		}
	}

	return nil
}
