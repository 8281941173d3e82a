// Package core is the orchestration layer.  It owns the Operator, the
// one component that drives a capability.Vehicle, and the builder that
// assembles an Operator from a Config.
//
// Architecture layers (bottom → top):
//
//	capability  →  core  →  cmd (CLI)
package core

import (
	"context"
	"io"
)

// Mode is a complete run of ignition from setup to teardown.  Close
// releases whatever Build opened for the run.
type Mode interface {
	Run(ctx context.Context) error
	io.Closer
}
