package config

// ── Default values ───────────────────────────────────────────────────
//
// All tuneable defaults live here so they are easy to audit and reuse
// across CLI flags, config file parsing, and environment variable
// loading.

const (
	// DefaultOutput sends the output event to stdout.
	DefaultOutput = "-"

	// DefaultLevel only lets warnings and errors through.
	DefaultLevel = "warn"

	// EnvPrefix is prepended to every supported environment variable.
	EnvPrefix = "IGNITION_"
)
