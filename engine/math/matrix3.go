package math

import "fmt"

// Matrix3 is a 3x3 matrix stored as three column vectors. As a rotation,
// it is expected to be orthonormal.
type Matrix3[T Scalar] struct {
	X, Y, Z Vector3[T]
}

// NewMatrix3 creates a matrix from its elements in column-major order.
func NewMatrix3[T Scalar](
	c0r0, c0r1, c0r2,
	c1r0, c1r1, c1r2,
	c2r0, c2r1, c2r2 T,
) Matrix3[T] {
	return Matrix3[T]{
		X: Vector3[T]{c0r0, c0r1, c0r2},
		Y: Vector3[T]{c1r0, c1r1, c1r2},
		Z: Vector3[T]{c2r0, c2r1, c2r2},
	}
}

func NewMatrix3FromCols[T Scalar](c0, c1, c2 Vector3[T]) Matrix3[T] {
	return Matrix3[T]{c0, c1, c2}
}

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0},
 *   {0, 1, 0},
 *   {0, 0, 1}
 * }
 *
 * @return A new identity matrix
 */
func NewMatrix3Identity[T Scalar]() Matrix3[T] {
	return NewMatrix3FromValue(T(1))
}

func NewMatrix3Zero[T Scalar]() Matrix3[T] {
	return Matrix3[T]{}
}

// NewMatrix3FromValue returns a matrix with value along the diagonal.
func NewMatrix3FromValue[T Scalar](value T) Matrix3[T] {
	return NewMatrix3(
		value, 0, 0,
		0, value, 0,
		0, 0, value)
}

func (m Matrix3[T]) Col(i int) Vector3[T] {
	return [3]Vector3[T]{m.X, m.Y, m.Z}[i]
}

func (m Matrix3[T]) Row(i int) Vector3[T] {
	return Vector3[T]{m.X.ToArray()[i], m.Y.ToArray()[i], m.Z.ToArray()[i]}
}

func (m Matrix3[T]) Diagonal() Vector3[T] {
	return Vector3[T]{m.X.X, m.Y.Y, m.Z.Z}
}

/**
 * @brief Returns a transposed copy of the provided matrix (rows->colums)
 */
func (m Matrix3[T]) Transpose() Matrix3[T] {
	return NewMatrix3(
		m.X.X, m.Y.X, m.Z.X,
		m.X.Y, m.Y.Y, m.Z.Y,
		m.X.Z, m.Y.Z, m.Z.Z)
}

func (m Matrix3[T]) Trace() T {
	return m.X.X + m.Y.Y + m.Z.Z
}

// Determinant is the scalar triple product of the columns.
func (m Matrix3[T]) Determinant() T {
	return m.X.X*(m.Y.Y*m.Z.Z-m.Z.Y*m.Y.Z) -
		m.Y.X*(m.X.Y*m.Z.Z-m.Z.Y*m.X.Z) +
		m.Z.X*(m.X.Y*m.Y.Z-m.Y.Y*m.X.Z)
}

/**
 * @brief Creates and returns an inverse of the provided matrix.
 *
 * @return The inverted matrix and true, or the zero matrix and false when
 * the determinant is within the singular epsilon of zero.
 */
func (m Matrix3[T]) Inverse() (Matrix3[T], bool) {
	det := m.Determinant()
	if kabs(det) <= singularEpsilon[T]() {
		return Matrix3[T]{}, false
	}
	// The rows of the inverse are the cross products of column pairs.
	return NewMatrix3FromCols(
		m.Y.Cross(m.Z).DivScalar(det),
		m.Z.Cross(m.X).DivScalar(det),
		m.X.Cross(m.Y).DivScalar(det)).Transpose(), true
}

func (m Matrix3[T]) IsInvertible() bool {
	return kabs(m.Determinant()) > singularEpsilon[T]()
}

// MulVector returns the weighted sum of the columns of m.
func (m Matrix3[T]) MulVector(v Vector3[T]) Vector3[T] {
	return m.X.MulScalar(v.X).Add(m.Y.MulScalar(v.Y)).Add(m.Z.MulScalar(v.Z))
}

/**
 * @brief Returns the result of multiplying m and other. The resulting
 * transformation applies other first, then m.
 */
func (m Matrix3[T]) Mul(other Matrix3[T]) Matrix3[T] {
	return Matrix3[T]{m.MulVector(other.X), m.MulVector(other.Y), m.MulVector(other.Z)}
}

func (m Matrix3[T]) Add(other Matrix3[T]) Matrix3[T] {
	return Matrix3[T]{m.X.Add(other.X), m.Y.Add(other.Y), m.Z.Add(other.Z)}
}

func (m Matrix3[T]) Sub(other Matrix3[T]) Matrix3[T] {
	return Matrix3[T]{m.X.Sub(other.X), m.Y.Sub(other.Y), m.Z.Sub(other.Z)}
}

func (m Matrix3[T]) Neg() Matrix3[T] {
	return Matrix3[T]{m.X.Neg(), m.Y.Neg(), m.Z.Neg()}
}

func (m Matrix3[T]) MulScalar(scalar T) Matrix3[T] {
	return Matrix3[T]{m.X.MulScalar(scalar), m.Y.MulScalar(scalar), m.Z.MulScalar(scalar)}
}

func (m Matrix3[T]) DivScalar(scalar T) Matrix3[T] {
	return Matrix3[T]{m.X.DivScalar(scalar), m.Y.DivScalar(scalar), m.Z.DivScalar(scalar)}
}

func (m Matrix3[T]) Compare(other Matrix3[T], tolerance T) bool {
	return m.X.Compare(other.X, tolerance) &&
		m.Y.Compare(other.Y, tolerance) &&
		m.Z.Compare(other.Z, tolerance)
}

func (m Matrix3[T]) IsIdentity(tolerance T) bool {
	return m.Compare(NewMatrix3Identity[T](), tolerance)
}

func (m Matrix3[T]) IsDiagonal(tolerance T) bool {
	return ApproxEqual(m.X.Y, 0, tolerance) && ApproxEqual(m.X.Z, 0, tolerance) &&
		ApproxEqual(m.Y.X, 0, tolerance) && ApproxEqual(m.Y.Z, 0, tolerance) &&
		ApproxEqual(m.Z.X, 0, tolerance) && ApproxEqual(m.Z.Y, 0, tolerance)
}

func (m Matrix3[T]) IsSymmetric(tolerance T) bool {
	return ApproxEqual(m.X.Y, m.Y.X, tolerance) &&
		ApproxEqual(m.X.Z, m.Z.X, tolerance) &&
		ApproxEqual(m.Y.Z, m.Z.Y, tolerance)
}

func (m Matrix3[T]) ToArray() [9]T {
	return [9]T{
		m.X.X, m.X.Y, m.X.Z,
		m.Y.X, m.Y.Y, m.Y.Z,
		m.Z.X, m.Z.Y, m.Z.Z,
	}
}

func (m Matrix3[T]) String() string {
	return fmt.Sprintf("[%v, %v, %v]", m.X, m.Y, m.Z)
}

// ------------------------------------------
// Rotation3
// ------------------------------------------

func (Matrix3[T]) Identity() Matrix3[T] {
	return NewMatrix3Identity[T]()
}

// FromEuler builds Rx(pitch) * Ry(yaw) * Rz(roll).
func (Matrix3[T]) FromEuler(e Euler[Rad[T]]) Matrix3[T] {
	sa, ca := e.X.SinCos()
	sb, cb := e.Y.SinCos()
	sc, cc := e.Z.SinCos()

	return NewMatrix3(
		cb*cc, sa*sb*cc+ca*sc, -ca*sb*cc+sa*sc,
		-cb*sc, -sa*sb*sc+ca*cc, ca*sb*sc+sa*cc,
		sb, -sa*cb, ca*cb)
}

func (m Matrix3[T]) FromAngleX(theta Rad[T]) Matrix3[T] {
	return m.FromEuler(Euler[Rad[T]]{X: theta})
}

func (m Matrix3[T]) FromAngleY(theta Rad[T]) Matrix3[T] {
	return m.FromEuler(Euler[Rad[T]]{Y: theta})
}

func (m Matrix3[T]) FromAngleZ(theta Rad[T]) Matrix3[T] {
	return m.FromEuler(Euler[Rad[T]]{Z: theta})
}

// FromAxisAngle applies Rodrigues' formula. axis must be unit length.
func (Matrix3[T]) FromAxisAngle(axis Vector3[T], theta Rad[T]) Matrix3[T] {
	s, c := theta.SinCos()
	k := 1 - c

	return NewMatrix3(
		k*axis.X*axis.X+c, k*axis.X*axis.Y+s*axis.Z, k*axis.X*axis.Z-s*axis.Y,
		k*axis.X*axis.Y-s*axis.Z, k*axis.Y*axis.Y+c, k*axis.Y*axis.Z+s*axis.X,
		k*axis.X*axis.Z+s*axis.Y, k*axis.Y*axis.Z-s*axis.X, k*axis.Z*axis.Z+c)
}

func (Matrix3[T]) BetweenVectors(a, b Vector3[T]) Matrix3[T] {
	return Quaternion[T]{}.BetweenVectors(a, b).ToMatrix3()
}

// LookAt returns the rotation mapping dir onto +Z and up into the YZ
// plane.
func (Matrix3[T]) LookAt(dir, up Vector3[T]) Matrix3[T] {
	dir = dir.Normalize()
	side := up.Cross(dir).Normalize()
	up = dir.Cross(side).Normalize()
	return NewMatrix3FromCols(side, up, dir).Transpose()
}

func (Matrix3[T]) FromMatrix3(m Matrix3[T]) Matrix3[T] {
	return m
}

func (Matrix3[T]) FromQuaternion(q Quaternion[T]) Matrix3[T] {
	return q.ToMatrix3()
}

func (m Matrix3[T]) ToMatrix3() Matrix3[T] {
	return m
}

func (m Matrix3[T]) ToQuaternion() Quaternion[T] {
	return NewQuaternionFromMatrix3(m)
}

func (m Matrix3[T]) ToEuler() Euler[Rad[T]] {
	return matrixToEuler(m)
}

func (m Matrix3[T]) RotateVector(v Vector3[T]) Vector3[T] {
	return m.MulVector(v)
}

func (m Matrix3[T]) RotatePoint(p Point3[T]) Point3[T] {
	return Point3FromVector(m.MulVector(p.ToVector()))
}

// Concat returns m * other: other is applied first, then m.
func (m Matrix3[T]) Concat(other Matrix3[T]) Matrix3[T] {
	return m.Mul(other)
}

// Invert returns the inverse rotation, which for an orthonormal matrix is
// its transpose.
func (m Matrix3[T]) Invert() Matrix3[T] {
	return m.Transpose()
}
