// Package metrics provides lightweight counters for tracking what an
// ignition run did to its vehicle.
//
// Counts are kept in atomics for cheap snapshots and mirrored into a
// private Prometheus registry so they can be exported in the text
// exposition format.  All methods are safe for concurrent use.  A nil
// *Collector is a valid no-op receiver, so callers never need to
// nil-check.
package metrics

import (
	"encoding/json"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Namespace prefixes every exported metric name.
const Namespace = "ignition"

// Collector tracks runtime metrics for an ignition run.
// A nil Collector is safe to use; all methods become no-ops.
type Collector struct {
	starts      atomic.Int64
	stops       atomic.Int64
	transitions atomic.Int64
	events      atomic.Int64
	errorsTotal atomic.Int64

	registry        *prometheus.Registry
	operations      *prometheus.CounterVec
	transitionCount prometheus.Counter
	eventCount      prometheus.Counter
	errorCount      prometheus.Counter
	state           prometheus.Gauge

	mu           sync.RWMutex
	startTime    time.Time
	lastError    time.Time
	lastErrorMsg string
}

// New creates a metrics collector with the start time set to now.
func New() *Collector {
	c := &Collector{
		registry:  prometheus.NewRegistry(),
		startTime: time.Now(),
	}

	c.operations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: "vehicle",
		Name:      "operations_total",
		Help:      "Start and stop calls made on the vehicle.",
	}, []string{"op"})
	c.transitionCount = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: "vehicle",
		Name:      "transitions_total",
		Help:      "Calls that actually flipped the on/off state.",
	})
	c.state = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Subsystem: "vehicle",
		Name:      "on",
		Help:      "Last observed vehicle state (1=on, 0=off).",
	})
	c.eventCount = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "output_events_total",
		Help:      "Output events emitted by the operator.",
	})
	c.errorCount = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "errors_total",
		Help:      "Errors recorded during the run.",
	})

	c.registry.MustRegister(c.operations, c.transitionCount, c.state, c.eventCount, c.errorCount)
	return c
}

// Registry exposes the underlying Prometheus registry.
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

// ── Vehicle metrics ──────────────────────────────────────────────────

// VehicleStarted records a Start call.  before and after are the
// vehicle's state around the call.
func (c *Collector) VehicleStarted(before, after bool) {
	if c == nil {
		return
	}
	c.starts.Add(1)
	c.operations.WithLabelValues("start").Inc()
	c.observe(before, after)
}

// VehicleStopped records a Stop call.  before and after are the
// vehicle's state around the call.
func (c *Collector) VehicleStopped(before, after bool) {
	if c == nil {
		return
	}
	c.stops.Add(1)
	c.operations.WithLabelValues("stop").Inc()
	c.observe(before, after)
}

// observe sets the state gauge from what the vehicle reported and
// counts a transition when the state flipped.
func (c *Collector) observe(before, after bool) {
	if after {
		c.state.Set(1)
	} else {
		c.state.Set(0)
	}
	if before == after {
		return
	}
	c.transitions.Add(1)
	c.transitionCount.Inc()
}

// Starts returns the number of Start calls.
func (c *Collector) Starts() int64 {
	if c == nil {
		return 0
	}
	return c.starts.Load()
}

// Stops returns the number of Stop calls.
func (c *Collector) Stops() int64 {
	if c == nil {
		return 0
	}
	return c.stops.Load()
}

// Transitions returns the number of calls that changed the state.
func (c *Collector) Transitions() int64 {
	if c == nil {
		return 0
	}
	return c.transitions.Load()
}

// ── Output metrics ───────────────────────────────────────────────────

// EventEmitted records one output event.
func (c *Collector) EventEmitted() {
	if c == nil {
		return
	}
	c.events.Add(1)
	c.eventCount.Inc()
}

// Events returns the number of output events.
func (c *Collector) Events() int64 {
	if c == nil {
		return 0
	}
	return c.events.Load()
}

// ── Error metrics ────────────────────────────────────────────────────

// RecordError increments the error counter and stores the message.
func (c *Collector) RecordError(msg string) {
	if c == nil {
		return
	}
	c.errorsTotal.Add(1)
	c.errorCount.Inc()
	c.mu.Lock()
	c.lastError = time.Now()
	c.lastErrorMsg = msg
	c.mu.Unlock()
}

// ErrorCount returns the total number of errors recorded.
func (c *Collector) ErrorCount() int64 {
	if c == nil {
		return 0
	}
	return c.errorsTotal.Load()
}

// ── Snapshot ─────────────────────────────────────────────────────────

// Snapshot is a point-in-time copy of all metrics, suitable for JSON
// serialisation.
type Snapshot struct {
	Uptime           string `json:"uptime"`
	Starts           int64  `json:"starts"`
	Stops            int64  `json:"stops"`
	Transitions      int64  `json:"transitions"`
	Events           int64  `json:"events"`
	ErrorsTotal      int64  `json:"errors_total"`
	LastError        string `json:"last_error,omitempty"`
	LastErrorMessage string `json:"last_error_message,omitempty"`
}

// Snapshot returns a copy of all current metrics.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := Snapshot{
		Uptime:      time.Since(c.startTime).Truncate(time.Millisecond).String(),
		Starts:      c.starts.Load(),
		Stops:       c.stops.Load(),
		Transitions: c.transitions.Load(),
		Events:      c.events.Load(),
		ErrorsTotal: c.errorsTotal.Load(),
	}
	if !c.lastError.IsZero() {
		s.LastError = c.lastError.Format(time.RFC3339)
		s.LastErrorMessage = c.lastErrorMsg
	}
	return s
}

// JSON returns the snapshot as an indented JSON string.
func (c *Collector) JSON() string {
	s := c.Snapshot()
	data, _ := json.MarshalIndent(s, "", "  ")
	return string(data)
}

// WriteText writes every registered metric to w in the Prometheus text
// exposition format.
func (c *Collector) WriteText(w io.Writer) error {
	if c == nil {
		return nil
	}
	families, err := c.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
