package math

import (
	"fmt"
	"sync/atomic"

	"github.com/spaghettifunk/rotor/engine/core"
)

// DefaultSlerpThreshold is the quaternion dot product above which Slerp
// switches to normalized linear interpolation.
const DefaultSlerpThreshold = 0.9995

// Tolerances are the tunable numeric thresholds of the package.
type Tolerances struct {
	// Epsilon is the absolute determinant magnitude at or below which a
	// matrix is treated as singular. Zero selects Epsilon[T]() of the
	// scalar in use.
	Epsilon float64 `toml:"epsilon" yaml:"epsilon"`
	// SlerpThreshold is the dot product above which Slerp falls back to
	// Nlerp.
	SlerpThreshold float64 `toml:"slerp_threshold" yaml:"slerp_threshold"`
}

var tolerances atomic.Pointer[Tolerances]

func init() {
	t := DefaultTolerances()
	tolerances.Store(&t)
}

func DefaultTolerances() Tolerances {
	return Tolerances{
		Epsilon:        0,
		SlerpThreshold: DefaultSlerpThreshold,
	}
}

// Validate checks the ranges of both thresholds.
func (t Tolerances) Validate() error {
	if !IsFinite(t.Epsilon) || t.Epsilon < 0 {
		return fmt.Errorf("epsilon must be a finite value >= 0, got %v: %w", t.Epsilon, core.ErrInvalidTolerance)
	}
	if !IsFinite(t.SlerpThreshold) || t.SlerpThreshold <= 0 || t.SlerpThreshold > 1 {
		return fmt.Errorf("slerp_threshold must be in (0, 1], got %v: %w", t.SlerpThreshold, core.ErrInvalidTolerance)
	}
	return nil
}

// GetTolerances returns the thresholds currently in effect.
func GetTolerances() Tolerances {
	return *tolerances.Load()
}

// SetTolerances replaces the thresholds used by Inverse and Slerp. It is safe
// to call while other goroutines are computing.
func SetTolerances(t Tolerances) error {
	if err := t.Validate(); err != nil {
		return err
	}
	tolerances.Store(&t)
	core.LogDebug("math tolerances set: epsilon=%g slerp_threshold=%g", t.Epsilon, t.SlerpThreshold)
	return nil
}

// singularEpsilon is the effective determinant threshold for T.
func singularEpsilon[T Scalar]() T {
	eps := tolerances.Load().Epsilon
	if eps == 0 {
		return Epsilon[T]()
	}
	return T(eps)
}

func slerpThreshold[T Scalar]() T {
	return T(tolerances.Load().SlerpThreshold)
}
