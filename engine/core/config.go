package core

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
}

// MathConfig mirrors the tunable thresholds of the math package.
type MathConfig struct {
	Epsilon        float64 `toml:"epsilon" yaml:"epsilon"`
	SlerpThreshold float64 `toml:"slerp_threshold" yaml:"slerp_threshold"`
}

// CheckConfig drives the property checks of the testbed.
type CheckConfig struct {
	Samples    int      `toml:"samples" yaml:"samples"`
	Seed       uint64   `toml:"seed" yaml:"seed"`
	Precisions []string `toml:"precisions" yaml:"precisions"`
	// Workers is the size of the check pool. Zero uses one worker per CPU.
	Workers int `toml:"workers" yaml:"workers"`
}

type Config struct {
	Log   LogConfig   `toml:"log" yaml:"log"`
	Math  MathConfig  `toml:"math" yaml:"math"`
	Check CheckConfig `toml:"check" yaml:"check"`
}

func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
		Math: MathConfig{
			Epsilon:        0,
			SlerpThreshold: 0.9995,
		},
		Check: CheckConfig{
			Samples:    1000,
			Seed:       1,
			Precisions: []string{"float32", "float64"},
		},
	}
}

func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("log.level %q: %w", c.Log.Level, ErrUnknownLogLevel)
	}
	if c.Math.Epsilon < 0 {
		return fmt.Errorf("math.epsilon must be >= 0, got %v: %w", c.Math.Epsilon, ErrInvalidConfig)
	}
	if c.Math.SlerpThreshold <= 0 || c.Math.SlerpThreshold > 1 {
		return fmt.Errorf("math.slerp_threshold must be in (0, 1], got %v: %w", c.Math.SlerpThreshold, ErrInvalidConfig)
	}
	if c.Check.Samples <= 0 {
		return fmt.Errorf("check.samples must be positive, got %d: %w", c.Check.Samples, ErrInvalidConfig)
	}
	if c.Check.Workers < 0 {
		return fmt.Errorf("check.workers must be >= 0, got %d: %w", c.Check.Workers, ErrInvalidConfig)
	}
	if len(c.Check.Precisions) == 0 {
		return fmt.Errorf("check.precisions is empty: %w", ErrInvalidConfig)
	}
	for _, p := range c.Check.Precisions {
		if p != "float32" && p != "float64" {
			return fmt.Errorf("check.precisions: unknown precision %q: %w", p, ErrInvalidConfig)
		}
	}
	return nil
}

// LoadConfig reads a TOML (.toml) or YAML (.yaml, .yml) file on top of
// DefaultConfig. Unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := ParseConfig(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes data in the format named by ext.
func ParseConfig(data []byte, ext string) (*Config, error) {
	cfg := DefaultConfig()

	switch strings.ToLower(ext) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document leaves the defaults untouched.
		if err := dec.Decode(cfg); err != nil && len(bytes.TrimSpace(data)) > 0 {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q: %w", ext, ErrInvalidConfig)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
