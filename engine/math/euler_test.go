package math

import (
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEulerConversion(t *testing.T) {
	e := NewEuler(Degrees(90.0), Degrees(-45.0), Degrees(180.0))
	r := EulerToRadians[Deg[float64], float64](e)

	assert.InDelta(t, K_PI/2, r.X.Value, 1e-12)
	assert.InDelta(t, -K_PI/4, r.Y.Value, 1e-12)
	assert.InDelta(t, K_PI, r.Z.Value, 1e-12)

	back := EulerFromRadians[Deg[float64], float64](r)
	assert.InDelta(t, 90.0, back.X.Value, 1e-12)
	assert.InDelta(t, -45.0, back.Y.Value, 1e-12)
	assert.InDelta(t, 180.0, back.Z.Value, 1e-12)

	assert.Equal(t, "Euler(90°, -45°, 180°)", e.String())
}

func TestEulerDecodeTOML(t *testing.T) {
	var e Euler[Deg[float64]]
	err := toml.Unmarshal([]byte(`
x = "90deg"
y = "-0.5rad"
z = "30"
`), &e)
	require.NoError(t, err)

	assert.Equal(t, 90.0, e.X.Value)
	assert.InDelta(t, -28.6478897565, e.Y.Value, 1e-9)
	assert.Equal(t, 30.0, e.Z.Value)
}

func TestEulerDecodeYAML(t *testing.T) {
	var e Euler[Rad[float32]]
	err := yaml.Unmarshal([]byte("x: \"180deg\"\ny: \"1.5rad\"\nz: \"0\"\n"), &e)
	require.NoError(t, err)

	assert.InDelta(t, float32(K_PI), e.X.Value, 1e-6)
	assert.Equal(t, float32(1.5), e.Y.Value)
	assert.Equal(t, float32(0), e.Z.Value)
}
