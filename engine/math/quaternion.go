package math

import "fmt"

// Quaternion is a scalar part W and a vector part V. Unit quaternions
// represent rotations; q and -q represent the same one.
type Quaternion[T Scalar] struct {
	W T
	V Vector3[T]
}

func NewQuaternion[T Scalar](w, x, y, z T) Quaternion[T] {
	return Quaternion[T]{W: w, V: Vector3[T]{x, y, z}}
}

// NewQuaternionFromSV builds a quaternion from its scalar and vector parts.
func NewQuaternionFromSV[T Scalar](s T, v Vector3[T]) Quaternion[T] {
	return Quaternion[T]{W: s, V: v}
}

/**
 * @brief Creates an identity quaternion.
 *
 * @return An identity quaternion.
 */
func NewQuaternionIdentity[T Scalar]() Quaternion[T] {
	return Quaternion[T]{W: 1}
}

func NewQuaternionZero[T Scalar]() Quaternion[T] {
	return Quaternion[T]{}
}

func (q Quaternion[T]) Add(other Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{q.W + other.W, q.V.Add(other.V)}
}

func (q Quaternion[T]) Sub(other Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{q.W - other.W, q.V.Sub(other.V)}
}

func (q Quaternion[T]) Neg() Quaternion[T] {
	return Quaternion[T]{-q.W, q.V.Neg()}
}

func (q Quaternion[T]) MulScalar(scalar T) Quaternion[T] {
	return Quaternion[T]{q.W * scalar, q.V.MulScalar(scalar)}
}

func (q Quaternion[T]) DivScalar(scalar T) Quaternion[T] {
	return Quaternion[T]{q.W / scalar, q.V.DivScalar(scalar)}
}

/**
 * @brief Multiplies the provided quaternions (Hamilton product). The
 * product is not commutative: as rotations, q.Mul(other) applies other
 * first, then q.
 *
 * @param other The second quaternion.
 * @return The multiplied quaternion.
 */
func (q Quaternion[T]) Mul(other Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{
		W: q.W*other.W - q.V.X*other.V.X - q.V.Y*other.V.Y - q.V.Z*other.V.Z,
		V: Vector3[T]{
			q.W*other.V.X + q.V.X*other.W + q.V.Y*other.V.Z - q.V.Z*other.V.Y,
			q.W*other.V.Y + q.V.Y*other.W + q.V.Z*other.V.X - q.V.X*other.V.Z,
			q.W*other.V.Z + q.V.Z*other.W + q.V.X*other.V.Y - q.V.Y*other.V.X,
		},
	}
}

/**
 * @brief Calculates the dot product of the provided quaternions.
 */
func (q Quaternion[T]) Dot(other Quaternion[T]) T {
	return q.W*other.W + q.V.Dot(other.V)
}

/**
 * @brief Returns the conjugate of the provided quaternion. That is,
 * the x, y and z elements are negated, but the w element is untouched.
 */
func (q Quaternion[T]) Conjugate() Quaternion[T] {
	return Quaternion[T]{q.W, q.V.Neg()}
}

func (q Quaternion[T]) MagnitudeSquared() T {
	return q.Dot(q)
}

/**
 * @brief Returns the normal (magnitude) of the provided quaternion.
 */
func (q Quaternion[T]) Magnitude() T {
	return ksqrt(q.MagnitudeSquared())
}

/**
 * @brief Returns a normalized copy of the provided quaternion.
 */
func (q Quaternion[T]) Normalize() Quaternion[T] {
	return q.DivScalar(q.Magnitude())
}

/**
 * @brief Returns the multiplicative inverse of the provided quaternion.
 * For unit quaternions this equals the conjugate.
 */
func (q Quaternion[T]) Inverse() Quaternion[T] {
	return q.Conjugate().DivScalar(q.MagnitudeSquared())
}

func (q Quaternion[T]) Compare(other Quaternion[T], tolerance T) bool {
	return ApproxEqual(q.W, other.W, tolerance) && q.V.Compare(other.V, tolerance)
}

// Lerp interpolates component-wise without normalizing.
func (q Quaternion[T]) Lerp(other Quaternion[T], amount T) Quaternion[T] {
	return q.MulScalar(1 - amount).Add(other.MulScalar(amount))
}

// Nlerp interpolates component-wise and normalizes the result.
func (q Quaternion[T]) Nlerp(other Quaternion[T], amount T) Quaternion[T] {
	return q.Lerp(other, amount).Normalize()
}

/**
 * @brief Calculates spherical linear interpolation of a given percentage
 * between two quaternions, using the configured slerp threshold.
 *
 * @param other The second quaternion.
 * @param percentage The percentage of interpolation, typically a value from 0.0-1.0.
 * @return An interpolated quaternion.
 */
func (q Quaternion[T]) Slerp(other Quaternion[T], percentage T) Quaternion[T] {
	return q.SlerpWithThreshold(other, percentage, slerpThreshold[T]())
}

// SlerpWithThreshold is Slerp with an explicit dot product threshold above
// which the endpoints are treated as too close and Nlerp is used instead.
func (q Quaternion[T]) SlerpWithThreshold(other Quaternion[T], percentage, threshold T) Quaternion[T] {
	// Source: https://en.Wikipedia.org/wiki/Slerp
	if q == other {
		return q
	}

	// If the dot product is negative, slerp won't take
	// the shorter path. Note that v1 and -v1 are equivalent when
	// the negation is applied to all four components. Fix by
	// reversing one quaternion.
	dot := q.Dot(other)
	if dot < 0 {
		other = other.Neg()
		dot = -dot
	}

	if dot > threshold {
		return q.Nlerp(other, percentage)
	}

	theta0 := kacos(Clamp(dot, -1, 1)) // angle between input vectors
	sinTheta0 := ksin(theta0)
	// A threshold of 1 lets parallel endpoints through.
	if sinTheta0 <= Epsilon[T]() {
		return q.Nlerp(other, percentage)
	}
	theta := theta0 * percentage // angle between q and result

	s0 := ksin(theta0-theta) / sinTheta0
	s1 := ksin(theta) / sinTheta0

	return q.MulScalar(s0).Add(other.MulScalar(s1))
}

func (q Quaternion[T]) ToArray() [4]T {
	return [4]T{q.W, q.V.X, q.V.Y, q.V.Z}
}

func (q Quaternion[T]) String() string {
	return fmt.Sprintf("%v + %vi + %vj + %vk", q.W, q.V.X, q.V.Y, q.V.Z)
}

// ------------------------------------------
// Conversions
// ------------------------------------------

/**
 * @brief Creates a rotation matrix from the given quaternion. q is not
 * normalized first.
 *
 * @return A rotation matrix.
 */
func (q Quaternion[T]) ToMatrix3() Matrix3[T] {
	x2 := q.V.X + q.V.X
	y2 := q.V.Y + q.V.Y
	z2 := q.V.Z + q.V.Z

	xx2 := x2 * q.V.X
	xy2 := x2 * q.V.Y
	xz2 := x2 * q.V.Z

	yy2 := y2 * q.V.Y
	yz2 := y2 * q.V.Z
	zz2 := z2 * q.V.Z

	sx2 := x2 * q.W
	sy2 := y2 * q.W
	sz2 := z2 * q.W

	return NewMatrix3(
		1-yy2-zz2, xy2+sz2, xz2-sy2,
		xy2-sz2, 1-xx2-zz2, yz2+sx2,
		xz2+sy2, yz2-sx2, 1-xx2-yy2)
}

func (q Quaternion[T]) ToMatrix4() Matrix4[T] {
	return NewMatrix4FromMatrix3(q.ToMatrix3())
}

// NewQuaternionFromMatrix3 converts a rotation matrix with Shepperd's
// method: the square root is taken of the largest of the trace and the
// three diagonal elements, which keeps the divisor away from zero.
func NewQuaternionFromMatrix3[T Scalar](m Matrix3[T]) Quaternion[T] {
	// rij is row i, column j.
	r00, r10, r20 := m.X.X, m.X.Y, m.X.Z
	r01, r11, r21 := m.Y.X, m.Y.Y, m.Y.Z
	r02, r12, r22 := m.Z.X, m.Z.Y, m.Z.Z

	trace := r00 + r11 + r22
	switch {
	case trace > 0:
		s := 2 * ksqrt(trace+1)
		return NewQuaternion(
			s/4,
			(r21-r12)/s,
			(r02-r20)/s,
			(r10-r01)/s)
	case r00 > r11 && r00 > r22:
		s := 2 * ksqrt(1+r00-r11-r22)
		return NewQuaternion(
			(r21-r12)/s,
			s/4,
			(r01+r10)/s,
			(r02+r20)/s)
	case r11 > r22:
		s := 2 * ksqrt(1+r11-r00-r22)
		return NewQuaternion(
			(r02-r20)/s,
			(r01+r10)/s,
			s/4,
			(r12+r21)/s)
	default:
		s := 2 * ksqrt(1+r22-r00-r11)
		return NewQuaternion(
			(r10-r01)/s,
			(r02+r20)/s,
			(r12+r21)/s,
			s/4)
	}
}

// ------------------------------------------
// Rotation3
// ------------------------------------------

func (Quaternion[T]) Identity() Quaternion[T] {
	return NewQuaternionIdentity[T]()
}

// FromEuler returns qx * qy * qz, the same rotation as
// Matrix3.FromEuler.
func (Quaternion[T]) FromEuler(e Euler[Rad[T]]) Quaternion[T] {
	sx, cx := e.X.MulScalar(0.5).SinCos()
	sy, cy := e.Y.MulScalar(0.5).SinCos()
	sz, cz := e.Z.MulScalar(0.5).SinCos()

	return NewQuaternion(
		cx*cy*cz-sx*sy*sz,
		sx*cy*cz+cx*sy*sz,
		cx*sy*cz-sx*cy*sz,
		cx*cy*sz+sx*sy*cz)
}

func (q Quaternion[T]) FromAngleX(theta Rad[T]) Quaternion[T] {
	return q.FromEuler(Euler[Rad[T]]{X: theta})
}

func (q Quaternion[T]) FromAngleY(theta Rad[T]) Quaternion[T] {
	return q.FromEuler(Euler[Rad[T]]{Y: theta})
}

func (q Quaternion[T]) FromAngleZ(theta Rad[T]) Quaternion[T] {
	return q.FromEuler(Euler[Rad[T]]{Z: theta})
}

/**
 * @brief Creates a quaternion from the given axis and angle. The axis
 * must be unit length.
 *
 * @param axis The axis of rotation.
 * @param theta The angle of rotation.
 * @return A new quaternion.
 */
func (Quaternion[T]) FromAxisAngle(axis Vector3[T], theta Rad[T]) Quaternion[T] {
	s, c := theta.MulScalar(0.5).SinCos()
	return Quaternion[T]{c, axis.MulScalar(s)}
}

// BetweenVectors returns the shortest arc rotation taking the direction of
// a onto the direction of b. Opposite vectors produce a half turn about an
// axis perpendicular to a.
func (Quaternion[T]) BetweenVectors(a, b Vector3[T]) Quaternion[T] {
	a = a.Normalize()
	b = b.Normalize()

	d := a.Dot(b)
	if d >= 0 {
		return Quaternion[T]{1 + d, a.Cross(b)}.Normalize()
	}

	// Past a quarter turn 1+d cancels, so take the angle from atan2.
	c := a.Cross(b)
	eps := Epsilon[T]()
	if c.LengthSquared() <= eps*eps {
		axis := a.Cross(NewVector3UnitX[T]())
		if axis.LengthSquared() <= eps*16 {
			axis = a.Cross(NewVector3UnitY[T]())
		}
		return Quaternion[T]{0, axis.Normalize()}
	}
	s := c.Length()
	return Quaternion[T]{}.FromAxisAngle(c.DivScalar(s), Radians(katan2(s, d)))
}

func (q Quaternion[T]) LookAt(dir, up Vector3[T]) Quaternion[T] {
	return NewQuaternionFromMatrix3(Matrix3[T]{}.LookAt(dir, up))
}

func (Quaternion[T]) FromMatrix3(m Matrix3[T]) Quaternion[T] {
	return NewQuaternionFromMatrix3(m)
}

func (Quaternion[T]) FromQuaternion(q Quaternion[T]) Quaternion[T] {
	return q
}

func (q Quaternion[T]) ToQuaternion() Quaternion[T] {
	return q
}

func (q Quaternion[T]) ToEuler() Euler[Rad[T]] {
	return matrixToEuler(q.ToMatrix3())
}

// RotateVector rotates v by q, which must be a unit quaternion.
func (q Quaternion[T]) RotateVector(v Vector3[T]) Vector3[T] {
	tmp := q.V.Cross(v).Add(v.MulScalar(q.W))
	return q.V.Cross(tmp).MulScalar(2).Add(v)
}

func (q Quaternion[T]) RotatePoint(p Point3[T]) Point3[T] {
	return Point3FromVector(q.RotateVector(p.ToVector()))
}

// Concat returns q * other: other is applied first, then q.
func (q Quaternion[T]) Concat(other Quaternion[T]) Quaternion[T] {
	return q.Mul(other)
}

// Invert returns the inverse rotation, the conjugate of a unit quaternion.
func (q Quaternion[T]) Invert() Quaternion[T] {
	return q.Conjugate()
}
