package testbed

import (
	"context"
	"errors"
	gomath "math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/spaghettifunk/rotor/engine"
	"github.com/spaghettifunk/rotor/engine/core"
)

func checkConfig(samples int) core.CheckConfig {
	return core.CheckConfig{
		Samples:    samples,
		Seed:       1,
		Precisions: []string{Float32, Float64},
	}
}

func TestPropertiesHold(t *testing.T) {
	report, err := NewRunner(checkConfig(200)).Run(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, report.RunID)
	assert.Equal(t, uint64(1), report.Seed)
	assert.Len(t, report.Results, 2*len(properties[float64]()))
	for _, res := range report.Results {
		assert.True(t, res.Passed(), "%s/%s: worst error %g > %g", res.Precision, res.Property, res.WorstError, res.Tolerance)
		assert.Equal(t, 200, res.Samples)
	}
	assert.Empty(t, report.Failed())
	assert.NoError(t, report.Err())
}

func TestPropertyNamesAreUnique(t *testing.T) {
	names := map[string]bool{}
	for _, p := range properties[float32]() {
		assert.False(t, names[p.name], "duplicate property %s", p.name)
		names[p.name] = true
	}
	assert.Contains(t, names, "euler_quaternion_matrix_roundtrip")
	assert.Contains(t, names, "singular_matrix_has_no_inverse")
}

func TestRunIsDeterministic(t *testing.T) {
	serial := checkConfig(50)
	serial.Workers = 1
	a, err := NewRunner(serial).Run(context.Background())
	require.NoError(t, err)

	parallel := checkConfig(50)
	parallel.Workers = 4
	b, err := NewRunner(parallel).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, b.Results, len(a.Results))
	for i := range a.Results {
		assert.Equal(t, a.Results[i].Property, b.Results[i].Property)
		assert.Equal(t, a.Results[i].Precision, b.Results[i].Precision)
		assert.Equal(t, a.Results[i].WorstError, b.Results[i].WorstError, a.Results[i].Property)
	}
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestNewRunnerDefaultsWorkers(t *testing.T) {
	assert.Positive(t, NewRunner(checkConfig(1)).workers)

	cfg := checkConfig(1)
	cfg.Workers = 3
	assert.Equal(t, 3, NewRunner(cfg).workers)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(checkConfig(10)).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunUnknownPrecision(t *testing.T) {
	cfg := checkConfig(10)
	cfg.Precisions = []string{"float16"}
	_, err := NewRunner(cfg).Run(context.Background())
	assert.ErrorIs(t, err, core.ErrInvalidConfig)
}

func TestReportErr(t *testing.T) {
	report := &Report{Results: []Result{
		{Property: "ok", Precision: Float64, WorstError: 1e-12, Tolerance: 1e-9},
		{Property: "drift", Precision: Float32, WorstError: 1e-2, Tolerance: 1e-4},
		{Property: "nan", Precision: Float64, WorstError: gomath.Inf(1), Tolerance: 1e-9},
	}}

	failed := report.Failed()
	require.Len(t, failed, 2)
	assert.Equal(t, "drift", failed[0].Property)

	err := report.Err()
	assert.ErrorIs(t, err, core.ErrPropertyViolated)
	assert.Contains(t, err.Error(), "float32/drift")
	assert.Contains(t, err.Error(), "float64/nan")
	assert.NotContains(t, err.Error(), "/ok")
}

func TestCheckerReportsNaN(t *testing.T) {
	r := NewRunner(checkConfig(3))
	nan := property{name: "nan", check: func(*rand.Rand) float64 { return gomath.NaN() }}

	res := r.check(nan, Float64, 1)
	assert.False(t, res.Passed())
	assert.True(t, gomath.IsInf(res.WorstError, 1))
}

func TestCheckGame(t *testing.T) {
	app := &engine.ApplicationConfig{Name: "test", Samples: 20}
	g := NewCheckGame(app)
	assert.Nil(t, g.LastReport())

	cfg := core.DefaultConfig()
	cfg.Check = checkConfig(20)

	require.NoError(t, g.Initialize(cfg))
	require.NoError(t, g.Update(context.Background(), cfg))
	require.NotNil(t, g.LastReport())
	assert.NoError(t, g.LastReport().Err())
	require.NoError(t, g.Shutdown())

	e, err := engine.New(g.Game)
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	require.NoError(t, e.Run())
	require.NoError(t, e.Shutdown())
	assert.Equal(t, 2, g.state().runs)
}

func TestCheckGameCancelled(t *testing.T) {
	g := NewCheckGame(&engine.ApplicationConfig{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := g.Update(ctx, core.DefaultConfig())
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Nil(t, g.LastReport())
}
