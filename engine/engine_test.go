package engine

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/rotor/engine/core"
	"github.com/spaghettifunk/rotor/engine/math"
)

func newGame(app *ApplicationConfig, update Update) *Game {
	return &Game{
		ApplicationConfig: app,
		FnUpdate:          update,
	}
}

func TestNewRequiresGame(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, core.ErrInvalidConfig)

	_, err = New(&Game{})
	assert.ErrorIs(t, err, core.ErrInvalidConfig)
}

func TestEngineLifecycle(t *testing.T) {
	var initialized, updates, shutdowns int
	g := newGame(&ApplicationConfig{Name: "test", Samples: 12, Seed: 99, Workers: 2}, func(ctx context.Context, cfg *core.Config) error {
		updates++
		assert.Equal(t, 12, cfg.Check.Samples)
		assert.Equal(t, uint64(99), cfg.Check.Seed)
		assert.Equal(t, 2, cfg.Check.Workers)
		return nil
	})
	g.FnInitialize = func(cfg *core.Config) error {
		initialized++
		return nil
	}
	g.FnShutdown = func() error {
		shutdowns++
		return nil
	}

	e, err := New(g)
	require.NoError(t, err)
	assert.Equal(t, EngineStageUninitialized, e.Stage())

	assert.ErrorIs(t, e.Run(), ErrInvalidStage)

	require.NoError(t, e.Initialize())
	assert.Equal(t, EngineStageInitialized, e.Stage())
	assert.ErrorIs(t, e.Initialize(), ErrInvalidStage)

	require.NoError(t, e.Run())
	assert.Equal(t, EngineStageRunning, e.Stage())

	require.NoError(t, e.Shutdown())
	assert.Equal(t, EngineStageShuttingDown, e.Stage())

	assert.Equal(t, 1, initialized)
	assert.Equal(t, 1, updates)
	assert.Equal(t, 1, shutdowns)
}

func TestEngineRunReturnsUpdateError(t *testing.T) {
	boom := errors.New("boom")
	e, err := New(newGame(&ApplicationConfig{}, func(context.Context, *core.Config) error { return boom }))
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	assert.ErrorIs(t, e.Run(), boom)
}

func TestEngineAppliesConfig(t *testing.T) {
	t.Cleanup(func() {
		_ = math.SetTolerances(math.DefaultTolerances())
		_ = core.SetLogLevel("info")
	})

	path := filepath.Join(t.TempDir(), "rotor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: warn
math:
  epsilon: 1.0e-8
  slerp_threshold: 0.99
check:
  samples: 5
`), 0o644))

	e, err := New(newGame(&ApplicationConfig{ConfigPath: path, LogLevel: "error"}, nil))
	require.NoError(t, err)
	require.NoError(t, e.Initialize())

	assert.Equal(t, 5, e.Config().Check.Samples)
	assert.Equal(t, "error", core.LogLevel())
	assert.Equal(t, math.Tolerances{Epsilon: 1e-8, SlerpThreshold: 0.99}, math.GetTolerances())
	require.NoError(t, e.Run())
}

func TestEngineRejectsInvalidSetup(t *testing.T) {
	e, err := New(newGame(&ApplicationConfig{LogLevel: "chatty"}, nil))
	require.NoError(t, err)
	assert.ErrorIs(t, e.Initialize(), core.ErrUnknownLogLevel)

	e, err = New(newGame(&ApplicationConfig{Watch: true}, nil))
	require.NoError(t, err)
	assert.ErrorIs(t, e.Initialize(), core.ErrInvalidConfig)

	e, err = New(newGame(&ApplicationConfig{ConfigPath: filepath.Join(t.TempDir(), "none.toml")}, nil))
	require.NoError(t, err)
	assert.ErrorIs(t, e.Initialize(), os.ErrNotExist)
}

func TestEngineWatchReruns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rotor.toml")
	require.NoError(t, os.WriteFile(path, []byte("[check]\nsamples = 1\n"), 0o644))

	var updates atomic.Int32
	seen := make(chan int, 16)
	e, err := New(newGame(&ApplicationConfig{ConfigPath: path, Watch: true}, func(ctx context.Context, cfg *core.Config) error {
		updates.Add(1)
		seen <- cfg.Check.Samples
		return nil
	}))
	require.NoError(t, err)
	require.NoError(t, e.Initialize())

	done := make(chan error, 1)
	go func() { done <- e.Run() }()

	assert.Equal(t, 1, <-seen)
	require.NoError(t, os.WriteFile(path, []byte("[check]\nsamples = 8\n"), 0o644))

	deadline := time.After(5 * time.Second)
wait:
	for {
		select {
		case n := <-seen:
			if n == 8 {
				break wait
			}
		case <-deadline:
			t.Fatal("engine did not re-run after the config changed")
		}
	}

	require.NoError(t, e.Shutdown())
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after shutdown")
	}
	assert.GreaterOrEqual(t, updates.Load(), int32(2))
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "running", EngineStageRunning.String())
	assert.Equal(t, "stage(42)", Stage(42).String())
}
