package core

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"ignition/internal/capability"
	"ignition/internal/errors"
	"ignition/internal/metrics"
	"ignition/util"
)

// Marker is the text of the output event, written once per
// PerformOperations call.
const Marker = "My car"

// Operator drives a single Vehicle through a start/stop cycle and
// announces it on its writer.  The vehicle is bound at construction
// and never replaced; the Operator only ever sees it through the
// capability.Vehicle interface.
type Operator struct {
	vehicle capability.Vehicle

	out     io.Writer
	sink    string    // name used in OutputError, "-" for stdout
	closer  io.Closer // non-nil only when Build opened the sink
	logger  *util.Logger
	metrics *metrics.Collector
	err     error // last write failure
}

var _ Mode = (*Operator)(nil)

// New returns an Operator that owns a fresh Car, initially off.  A nil
// out writes to stdout; a nil logger is quiet.
func New(out io.Writer, logger *util.Logger) *Operator {
	return NewWithVehicle(capability.NewCar(false), out, logger)
}

// NewWithVehicle is New with a caller-supplied Vehicle.
func NewWithVehicle(v capability.Vehicle, out io.Writer, logger *util.Logger) *Operator {
	sink := "writer"
	if out == nil {
		out = os.Stdout
		sink = util.StdoutPath
	}
	if logger == nil {
		logger = util.NewLogger(int(util.LogQuiet))
	}
	return &Operator{
		vehicle: v,
		out:     out,
		sink:    sink,
		logger:  logger,
	}
}

// PerformOperations starts the vehicle, stops it, then emits the
// output event.  The order is fixed.
func (o *Operator) PerformOperations() {
	o.vehicle.Start()
	o.vehicle.Stop()
	o.emit()
}

func (o *Operator) emit() {
	if _, err := fmt.Fprintln(o.out, Marker); err != nil {
		o.err = err
		o.logger.Error("output event to %s failed: %v", o.sink, err)
		o.metrics.RecordError(err.Error())
		return
	}
	o.metrics.EventEmitted()
}

// Err returns the last output failure as an *errors.OutputError, or
// nil if every event was written.
func (o *Operator) Err() error {
	return errors.WrapOutput("write", o.sink, o.err)
}

// Run performs one cycle under ctx.  A context that is already done
// skips the cycle entirely.
func (o *Operator) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	id := uuid.NewString()
	o.logger.Debug("run %s: vehicle on=%t", id, o.vehicle.IsOn())
	o.PerformOperations()
	o.logger.Verbose("run %s: done, vehicle on=%t", id, o.vehicle.IsOn())

	return o.Err()
}

// Close releases the output sink if Build opened it.
func (o *Operator) Close() error {
	if o.closer == nil {
		return nil
	}
	c := o.closer
	o.closer = nil
	return errors.WrapOutput("close", o.sink, c.Close())
}
