package math

import (
	m "math"

	"golang.org/x/exp/constraints"
)

// Scalar is the constraint every type in this package is generic over.
type Scalar interface {
	constraints.Float
}

const (
	/** @brief An approximate representation of PI. */
	K_PI = 3.14159265358979323846
	/** @brief An approximate representation of PI multiplied by 2. */
	K_PI_2 = 2.0 * K_PI
	/** @brief An approximate representation of PI divided by 2. */
	K_HALF_PI = 0.5 * K_PI
	/** @brief An approximate representation of PI divided by 4. */
	K_QUARTER_PI = 0.25 * K_PI
	/** @brief One divided by an approximate representation of PI. */
	K_ONE_OVER_PI = 1.0 / K_PI
	/** @brief One divided by half of an approximate representation of PI. */
	K_ONE_OVER_TWO_PI = 1.0 / K_PI_2
	/** @brief An approximation of the square root of 2. */
	K_SQRT_TWO = 1.41421356237309504880
	/** @brief An approximation of the square root of 3. */
	K_SQRT_THREE = 1.73205080756887729352
	/** @brief One divided by an approximation of the square root of 2. */
	K_SQRT_ONE_OVER_TWO = 0.70710678118654752440
	/** @brief One divided by an approximation of the square root of 3. */
	K_SQRT_ONE_OVER_THREE = 0.57735026918962576450
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER = K_PI / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	K_RAD2DEG_MULTIPLIER = 180.0 / K_PI
	/** @brief Smallest positive float32 where 1.0 + K_FLOAT_EPSILON != 1.0 */
	K_FLOAT_EPSILON = 1.192092896e-07
	/** @brief Smallest positive float64 where 1.0 + K_DOUBLE_EPSILON != 1.0 */
	K_DOUBLE_EPSILON = 2.220446049250313e-16
)

/**
 * Note that these are here in order to prevent converting to float64
 * by hand everywhere. Every transcendental goes through the standard
 * library in double precision and is narrowed back to T.
 */
func ksin[T Scalar](x T) T {
	return T(m.Sin(float64(x)))
}

func kcos[T Scalar](x T) T {
	return T(m.Cos(float64(x)))
}

func ksincos[T Scalar](x T) (T, T) {
	s, c := m.Sincos(float64(x))
	return T(s), T(c)
}

func ktan[T Scalar](x T) T {
	return T(m.Tan(float64(x)))
}

func kasin[T Scalar](x T) T {
	return T(m.Asin(float64(x)))
}

func kacos[T Scalar](x T) T {
	return T(m.Acos(float64(x)))
}

func katan[T Scalar](x T) T {
	return T(m.Atan(float64(x)))
}

func katan2[T Scalar](y, x T) T {
	return T(m.Atan2(float64(y), float64(x)))
}

func ksqrt[T Scalar](x T) T {
	return T(m.Sqrt(float64(x)))
}

func kabs[T Scalar](x T) T {
	return T(m.Abs(float64(x)))
}

func kmod[T Scalar](x, y T) T {
	return T(m.Mod(float64(x), float64(y)))
}

func kmin[T Scalar](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func kmax[T Scalar](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// isSinglePrecision reports whether T carries float32 precision. It works
// for named types too, where a type switch on T would not.
func isSinglePrecision[T Scalar]() bool {
	one := T(1)
	return one+T(1e-10) == one
}

// Epsilon returns the machine epsilon of T.
func Epsilon[T Scalar]() T {
	if isSinglePrecision[T]() {
		return T(K_FLOAT_EPSILON)
	}
	return T(K_DOUBLE_EPSILON)
}

// ApproxEqual reports whether a and b are no further apart than tolerance.
func ApproxEqual[T Scalar](a, b, tolerance T) bool {
	return kabs(a-b) <= tolerance
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite[T Scalar](x T) bool {
	f := float64(x)
	return !m.IsNaN(f) && !m.IsInf(f, 0)
}
