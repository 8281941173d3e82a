package core

import (
	"ignition/config"
	"ignition/internal/capability"
	"ignition/internal/metrics"
	"ignition/util"
)

// Build constructs a ready Mode from the given configuration: it opens
// the output sink and hands an Operator a fresh Car, off, wrapped so
// that collector sees every start and stop.  logger and collector may
// be nil.  Callers must Close the returned Mode.
func Build(cfg *config.Config, logger *util.Logger, collector *metrics.Collector) (Mode, error) {
	out, err := util.OpenOutput(cfg.Output)
	if err != nil {
		return nil, err
	}

	vehicle := capability.Track(capability.NewCar(false), collector, logger)

	op := NewWithVehicle(vehicle, out, logger)
	op.sink = cfg.Output
	op.closer = out
	op.metrics = collector

	op.logger.Verbose("output: %s", cfg.Output)
	return op, nil
}
