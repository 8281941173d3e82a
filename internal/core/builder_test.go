package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ignition/config"
	"ignition/internal/capability"
	"ignition/internal/errors"
	"ignition/internal/metrics"
	"ignition/util"
)

func TestBuild_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "event.txt")
	cfg := &config.Config{Output: path}
	collector := metrics.New()

	mode, err := Build(cfg, util.NewLogger(0), collector)
	require.NoError(t, err)

	require.NoError(t, mode.Run(context.Background()))
	require.NoError(t, mode.Close())
	// A second Close is a no-op.
	require.NoError(t, mode.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Marker+"\n", string(data))

	assert.Equal(t, int64(1), collector.Starts())
	assert.Equal(t, int64(1), collector.Stops())
	assert.Equal(t, int64(2), collector.Transitions())
	assert.Equal(t, int64(1), collector.Events())
}

func TestBuild_TrackedCarOff(t *testing.T) {
	cfg := &config.Config{Output: util.StdoutPath}

	mode, err := Build(cfg, util.NewLogger(0), nil)
	require.NoError(t, err)
	defer mode.Close()

	op, ok := mode.(*Operator)
	require.True(t, ok, "expected *Operator, got %T", mode)

	tracked, ok := op.vehicle.(*capability.Tracked)
	require.True(t, ok, "expected *capability.Tracked, got %T", op.vehicle)
	_, isCar := tracked.Unwrap().(*capability.Car)
	assert.True(t, isCar)
	assert.False(t, tracked.IsOn())
}

// TestBuild_NilLogger verifies Build falls back to a quiet logger like
// NewWithVehicle does.
func TestBuild_NilLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "event.txt")

	mode, err := Build(&config.Config{Output: path}, nil, nil)
	require.NoError(t, err)
	require.NoError(t, mode.Run(context.Background()))
	require.NoError(t, mode.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Marker+"\n", string(data))
}

func TestBuild_BadOutput(t *testing.T) {
	cfg := &config.Config{Output: filepath.Join(t.TempDir(), "missing", "x.txt")}

	_, err := Build(cfg, util.NewLogger(0), nil)
	require.Error(t, err)
	assert.True(t, errors.IsOutput(err))
}

func TestBuild_NoOutput(t *testing.T) {
	_, err := Build(&config.Config{}, util.NewLogger(0), nil)
	assert.ErrorIs(t, err, errors.ErrNoOutput)
}
