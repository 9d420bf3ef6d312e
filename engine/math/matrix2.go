package math

import "fmt"

// Matrix2 is a 2x2 matrix stored as two column vectors.
type Matrix2[T Scalar] struct {
	X, Y Vector2[T]
}

// NewMatrix2 creates a matrix from its elements in column-major order.
func NewMatrix2[T Scalar](c0r0, c0r1, c1r0, c1r1 T) Matrix2[T] {
	return Matrix2[T]{
		X: Vector2[T]{c0r0, c0r1},
		Y: Vector2[T]{c1r0, c1r1},
	}
}

func NewMatrix2FromCols[T Scalar](c0, c1 Vector2[T]) Matrix2[T] {
	return Matrix2[T]{c0, c1}
}

func NewMatrix2Identity[T Scalar]() Matrix2[T] {
	return NewMatrix2FromValue(T(1))
}

func NewMatrix2Zero[T Scalar]() Matrix2[T] {
	return Matrix2[T]{}
}

// NewMatrix2FromValue returns a matrix with value along the diagonal.
func NewMatrix2FromValue[T Scalar](value T) Matrix2[T] {
	return NewMatrix2(value, 0, 0, value)
}

// NewMatrix2FromAngle creates a counter-clockwise rotation by theta.
func NewMatrix2FromAngle[T Scalar](theta Rad[T]) Matrix2[T] {
	s, c := theta.SinCos()
	return NewMatrix2(c, s, -s, c)
}

func (m Matrix2[T]) Col(i int) Vector2[T] {
	return [2]Vector2[T]{m.X, m.Y}[i]
}

func (m Matrix2[T]) Row(i int) Vector2[T] {
	return Vector2[T]{m.X.ToArray()[i], m.Y.ToArray()[i]}
}

func (m Matrix2[T]) Diagonal() Vector2[T] {
	return Vector2[T]{m.X.X, m.Y.Y}
}

func (m Matrix2[T]) Transpose() Matrix2[T] {
	return NewMatrix2(m.X.X, m.Y.X, m.X.Y, m.Y.Y)
}

func (m Matrix2[T]) Trace() T {
	return m.X.X + m.Y.Y
}

func (m Matrix2[T]) Determinant() T {
	return m.X.X*m.Y.Y - m.Y.X*m.X.Y
}

// Inverse returns the inverse of m. The second result is false when the
// determinant is within the singular epsilon of zero.
func (m Matrix2[T]) Inverse() (Matrix2[T], bool) {
	det := m.Determinant()
	if kabs(det) <= singularEpsilon[T]() {
		return Matrix2[T]{}, false
	}
	return NewMatrix2(
		m.Y.Y/det, -m.X.Y/det,
		-m.Y.X/det, m.X.X/det), true
}

func (m Matrix2[T]) IsInvertible() bool {
	return kabs(m.Determinant()) > singularEpsilon[T]()
}

// MulVector returns the weighted sum of the columns of m.
func (m Matrix2[T]) MulVector(v Vector2[T]) Vector2[T] {
	return m.X.MulScalar(v.X).Add(m.Y.MulScalar(v.Y))
}

// Mul returns m * other, which applies other first.
func (m Matrix2[T]) Mul(other Matrix2[T]) Matrix2[T] {
	return Matrix2[T]{m.MulVector(other.X), m.MulVector(other.Y)}
}

func (m Matrix2[T]) Add(other Matrix2[T]) Matrix2[T] {
	return Matrix2[T]{m.X.Add(other.X), m.Y.Add(other.Y)}
}

func (m Matrix2[T]) Sub(other Matrix2[T]) Matrix2[T] {
	return Matrix2[T]{m.X.Sub(other.X), m.Y.Sub(other.Y)}
}

func (m Matrix2[T]) Neg() Matrix2[T] {
	return Matrix2[T]{m.X.Neg(), m.Y.Neg()}
}

func (m Matrix2[T]) MulScalar(scalar T) Matrix2[T] {
	return Matrix2[T]{m.X.MulScalar(scalar), m.Y.MulScalar(scalar)}
}

func (m Matrix2[T]) DivScalar(scalar T) Matrix2[T] {
	return Matrix2[T]{m.X.DivScalar(scalar), m.Y.DivScalar(scalar)}
}

func (m Matrix2[T]) Compare(other Matrix2[T], tolerance T) bool {
	return m.X.Compare(other.X, tolerance) && m.Y.Compare(other.Y, tolerance)
}

func (m Matrix2[T]) IsIdentity(tolerance T) bool {
	return m.Compare(NewMatrix2Identity[T](), tolerance)
}

func (m Matrix2[T]) IsDiagonal(tolerance T) bool {
	return ApproxEqual(m.X.Y, 0, tolerance) && ApproxEqual(m.Y.X, 0, tolerance)
}

func (m Matrix2[T]) IsSymmetric(tolerance T) bool {
	return ApproxEqual(m.X.Y, m.Y.X, tolerance)
}

// ------------------------------------------
// 2D rotation
// ------------------------------------------

func (Matrix2[T]) Identity() Matrix2[T] {
	return NewMatrix2Identity[T]()
}

func (Matrix2[T]) FromAngle(theta Rad[T]) Matrix2[T] {
	return NewMatrix2FromAngle(theta)
}

// BetweenVectors returns the rotation taking the direction of a onto the
// direction of b.
func (Matrix2[T]) BetweenVectors(a, b Vector2[T]) Matrix2[T] {
	return NewMatrix2FromAngle(a.Angle(b))
}

func (m Matrix2[T]) RotateVector(v Vector2[T]) Vector2[T] {
	return m.MulVector(v)
}

func (m Matrix2[T]) RotatePoint(p Point2[T]) Point2[T] {
	return Point2FromVector(m.MulVector(p.ToVector()))
}

// Concat returns m * other: other is applied first, then m.
func (m Matrix2[T]) Concat(other Matrix2[T]) Matrix2[T] {
	return m.Mul(other)
}

// Invert returns the inverse rotation. m must be orthonormal.
func (m Matrix2[T]) Invert() Matrix2[T] {
	return m.Transpose()
}

func (m Matrix2[T]) String() string {
	return fmt.Sprintf("[%v, %v]", m.X, m.Y)
}
