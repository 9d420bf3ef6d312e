package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 0.9995, cfg.Math.SlerpThreshold)
	assert.Equal(t, []string{"float32", "float64"}, cfg.Check.Precisions)
}

func TestParseConfigTOML(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
[log]
level = "debug"

[math]
epsilon = 1e-9
slerp_threshold = 0.999

[check]
samples = 50
seed = 7
workers = 2
`), ".toml")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 1e-9, cfg.Math.Epsilon)
	assert.Equal(t, 0.999, cfg.Math.SlerpThreshold)
	assert.Equal(t, 50, cfg.Check.Samples)
	assert.Equal(t, uint64(7), cfg.Check.Seed)
	assert.Equal(t, 2, cfg.Check.Workers)
	// Missing keys keep their defaults.
	assert.Equal(t, []string{"float32", "float64"}, cfg.Check.Precisions)
}

func TestParseConfigYAML(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
check:
  samples: 10
  precisions: [float64]
`), ".yml")
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Check.Samples)
	assert.Equal(t, []string{"float64"}, cfg.Check.Precisions)
	assert.Equal(t, "info", cfg.Log.Level)

	cfg, err = ParseConfig(nil, ".yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseConfigRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
		ext  string
		err  error
	}{
		{"unknown toml key", "[math]\nepsilonn = 1.0\n", ".toml", ErrInvalidConfig},
		{"unknown yaml key", "check:\n  sample: 3\n", ".yaml", ErrInvalidConfig},
		{"bad log level", "[log]\nlevel = \"loud\"\n", ".toml", ErrUnknownLogLevel},
		{"negative epsilon", "[math]\nepsilon = -1.0\n", ".toml", ErrInvalidConfig},
		{"slerp threshold above one", "math:\n  slerp_threshold: 2\n", ".yaml", ErrInvalidConfig},
		{"zero samples", "[check]\nsamples = 0\n", ".toml", ErrInvalidConfig},
		{"negative workers", "[check]\nworkers = -1\n", ".toml", ErrInvalidConfig},
		{"unknown precision", "check:\n  precisions: [float16]\n", ".yaml", ErrInvalidConfig},
		{"empty precisions", "check:\n  precisions: []\n", ".yaml", ErrInvalidConfig},
		{"unsupported format", "{}", ".json", ErrInvalidConfig},
		{"malformed toml", "[check\n", ".toml", ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data), tt.ext)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rotor.toml")
	require.NoError(t, os.WriteFile(path, []byte("[check]\nsamples = 3\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Check.Samples)

	_, err = LoadConfig(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("log:\n  level: nope\n"), 0o644))
	_, err = LoadConfig(bad)
	assert.ErrorIs(t, err, ErrUnknownLogLevel)
}
