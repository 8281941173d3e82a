package capability

import (
	"ignition/internal/metrics"
	"ignition/util"
)

// Tracked decorates another Vehicle, forwarding every call and
// recording starts, stops and state flips.  It behaves exactly like the
// Vehicle it wraps.
type Tracked struct {
	inner   Vehicle
	metrics *metrics.Collector
	logger  *util.Logger
}

var _ Vehicle = (*Tracked)(nil)

// Track wraps v.  Both collector and logger may be nil.
func Track(v Vehicle, collector *metrics.Collector, logger *util.Logger) *Tracked {
	return &Tracked{inner: v, metrics: collector, logger: logger}
}

// Unwrap returns the decorated Vehicle.
func (t *Tracked) Unwrap() Vehicle { return t.inner }

func (t *Tracked) IsOn() bool { return t.inner.IsOn() }

func (t *Tracked) SetOn(on bool) {
	t.debug("set on=%t (was %t)", on, t.inner.IsOn())
	t.inner.SetOn(on)
}

func (t *Tracked) Start() {
	was := t.inner.IsOn()
	t.inner.Start()
	now := t.inner.IsOn()
	t.debug("start: %t -> %t", was, now)
	t.metrics.VehicleStarted(was, now)
}

func (t *Tracked) Stop() {
	was := t.inner.IsOn()
	t.inner.Stop()
	now := t.inner.IsOn()
	t.debug("stop: %t -> %t", was, now)
	t.metrics.VehicleStopped(was, now)
}

func (t *Tracked) debug(format string, args ...interface{}) {
	if t.logger != nil {
		t.logger.Debug("vehicle: "+format, args...)
	}
}
