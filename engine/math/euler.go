package math

import "fmt"

// gimbalThreshold is how close |sin(yaw)| has to be to 1 before the roll
// is folded into the pitch.
const gimbalThreshold = 1e-6

// Euler is a set of three angles applied intrinsically about X, then Y,
// then Z: the rotation Rx(X) * Ry(Y) * Rz(Z). X is the pitch, Y the yaw
// and Z the roll.
type Euler[A any] struct {
	X A `toml:"x" yaml:"x"`
	Y A `toml:"y" yaml:"y"`
	Z A `toml:"z" yaml:"z"`
}

func NewEuler[A any](x, y, z A) Euler[A] {
	return Euler[A]{X: x, Y: y, Z: z}
}

// EulerToRadians converts every angle of e to radians.
func EulerToRadians[A Angle[A, T], T Scalar](e Euler[A]) Euler[Rad[T]] {
	return Euler[Rad[T]]{e.X.Radians(), e.Y.Radians(), e.Z.Radians()}
}

// EulerFromRadians converts every angle of e to the unit A.
func EulerFromRadians[A Angle[A, T], T Scalar](e Euler[Rad[T]]) Euler[A] {
	var a A
	return Euler[A]{a.FromRadians(e.X), a.FromRadians(e.Y), a.FromRadians(e.Z)}
}

func (e Euler[A]) String() string {
	return fmt.Sprintf("Euler(%v, %v, %v)", e.X, e.Y, e.Z)
}

// matrixToEuler decomposes m, assumed to be Rx(a) * Ry(b) * Rz(c). When
// the yaw is at plus or minus a quarter turn, pitch and roll rotate about
// the same axis, the roll is set to zero and the whole rotation is
// reported as pitch.
func matrixToEuler[T Scalar](m Matrix3[T]) Euler[Rad[T]] {
	r02 := Clamp(m.Z.X, -1, 1)
	y := kasin(r02)

	if kabs(r02) >= 1-T(gimbalThreshold) {
		return Euler[Rad[T]]{
			X: Radians(katan2(m.Y.Z, m.Y.Y)),
			Y: Radians(y),
			Z: Radians[T](0),
		}
	}

	return Euler[Rad[T]]{
		X: Radians(katan2(-m.Z.Y, m.Z.Z)),
		Y: Radians(y),
		Z: Radians(katan2(-m.Y.X, m.X.X)),
	}
}
