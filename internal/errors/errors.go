// Package errors provides domain-specific error types for ignition.
//
// The vehicle contract itself never fails; these types cover the
// surrounding plumbing (configuration and the output sink) and carry
// enough context to print an actionable message.
package errors

import (
	"errors"
	"fmt"
)

// ── Sentinel errors ──────────────────────────────────────────────────

var (
	ErrUnknownLevel  = errors.New("unknown log level")
	ErrUnknownFormat = errors.New("unknown metrics format")
	ErrNoOutput      = errors.New("no output destination")
)

// ── Structured error types ───────────────────────────────────────────

// OutputError represents a failure on the output event sink.
type OutputError struct {
	Op   string // operation: "open", "write", "close"
	Path string // "-" for stdout
	Err  error  // underlying error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("output %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *OutputError) Unwrap() error { return e.Err }

// ConfigError represents an invalid configuration value.
type ConfigError struct {
	Field   string      // config field name
	Value   interface{} // the invalid value (nil if missing)
	Message string      // human-readable explanation
	Hint    string      // suggestion for the user (optional)
	Err     error       // sentinel, if any
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("config: --%s", e.Field)
	if e.Value != nil {
		msg += fmt.Sprintf("=%v", e.Value)
	}
	msg += ": " + e.Message
	if e.Hint != "" {
		msg += "\n  hint: " + e.Hint
	}
	return msg
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ── Constructors ─────────────────────────────────────────────────────

// WrapOutput creates an OutputError.  A nil err yields nil so callers
// can wrap the result of Write/Close unconditionally.
func WrapOutput(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &OutputError{Op: op, Path: path, Err: err}
}

// IsOutput reports whether err came from the output sink.
func IsOutput(err error) bool {
	var oe *OutputError
	return errors.As(err, &oe)
}

// ── Re-exports for convenience ───────────────────────────────────────
//
// These allow callers to use ignition/internal/errors as a drop-in
// replacement for the standard library in common operations.

// As is [errors.As].
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// New is [errors.New].
func New(text string) error { return errors.New(text) }

// Unwrap is [errors.Unwrap].
func Unwrap(err error) error { return errors.Unwrap(err) }

// Join is [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }
