package math

import (
	"sync"
	"time"

	"golang.org/x/exp/rand"
)

var seedOnce sync.Once

// NewRand returns a deterministic generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// unit returns a value in [0, 1). A nil r draws from the package source,
// seeded from the clock on first use.
func unit(r *rand.Rand) float64 {
	if r == nil {
		seedOnce.Do(func() {
			rand.Seed(uint64(time.Now().UnixNano()))
		})
		return rand.Float64()
	}
	return r.Float64()
}

// RandomInRange returns a value in [min, max).
func RandomInRange[T Scalar](r *rand.Rand, min, max T) T {
	return min + T(unit(r))*(max-min)
}

// RandomQuaternion returns a uniformly distributed unit quaternion using
// Shoemake's subgroup algorithm.
func RandomQuaternion[T Scalar](r *rand.Rand) Quaternion[T] {
	u1, u2, u3 := unit(r), unit(r), unit(r)
	a := ksqrt(1 - u1)
	b := ksqrt(u1)
	s2, c2 := ksincos(K_PI_2 * u2)
	s3, c3 := ksincos(K_PI_2 * u3)
	return NewQuaternion(T(b*c3), T(a*s2), T(a*c2), T(b*s3))
}

// RandomMatrix3 returns a uniformly distributed rotation matrix.
func RandomMatrix3[T Scalar](r *rand.Rand) Matrix3[T] {
	return RandomQuaternion[T](r).ToMatrix3()
}

// RandomUnitVector3 returns a direction uniformly distributed on the unit
// sphere.
func RandomUnitVector3[T Scalar](r *rand.Rand) Vector3[T] {
	z := 2*unit(r) - 1
	s, c := ksincos(K_PI_2 * unit(r))
	rho := ksqrt(1 - z*z)
	return Vector3[T]{T(rho * c), T(rho * s), T(z)}
}

func RandomVector3InRange[T Scalar](r *rand.Rand, min, max T) Vector3[T] {
	return Vector3[T]{
		RandomInRange(r, min, max),
		RandomInRange(r, min, max),
		RandomInRange(r, min, max),
	}
}

// RandomMatrix4InRange returns a general matrix with every element in
// [min, max). It is almost surely invertible.
func RandomMatrix4InRange[T Scalar](r *rand.Rand, min, max T) Matrix4[T] {
	var d [16]T
	for i := range d {
		d[i] = RandomInRange(r, min, max)
	}
	return NewMatrix4FromArray(d)
}

// RandomRad returns an angle in [-half turn, half turn).
func RandomRad[T Scalar](r *rand.Rand) Rad[T] {
	return Radians(RandomInRange(r, T(-K_PI), T(K_PI)))
}

// RandomDeg returns an angle in [-180, 180).
func RandomDeg[T Scalar](r *rand.Rand) Deg[T] {
	return Degrees(RandomInRange[T](r, -180, 180))
}

// RandomEuler returns three independent angles in [-half turn, half turn).
func RandomEuler[T Scalar](r *rand.Rand) Euler[Rad[T]] {
	return NewEuler(RandomRad[T](r), RandomRad[T](r), RandomRad[T](r))
}
