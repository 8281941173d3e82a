// Package capability defines the contract an operator drives.  A
// Vehicle is anything with an on/off state that can be started and
// stopped; the operator in internal/core holds a Vehicle and never
// the concrete type behind it, so any implementation here (or a test
// double) can stand in for another.
package capability

// Vehicle is the on/off capability.
//
// Implementations are expected to leave IsOn true after Start and
// false after Stop, whatever the prior state.  The contract does not
// enforce this; the shared tests in this package do.
type Vehicle interface {
	// IsOn reports the current state.
	IsOn() bool
	// SetOn overwrites the state directly.
	SetOn(on bool)

	Start()
	Stop()
}
