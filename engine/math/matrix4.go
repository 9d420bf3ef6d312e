package math

import "fmt"

// Matrix4 is a 4x4 matrix stored as four column vectors. W holds the
// translation of an affine transform.
type Matrix4[T Scalar] struct {
	X, Y, Z, W Vector4[T]
}

// NewMatrix4 creates a matrix from its elements in column-major order.
func NewMatrix4[T Scalar](
	c0r0, c0r1, c0r2, c0r3,
	c1r0, c1r1, c1r2, c1r3,
	c2r0, c2r1, c2r2, c2r3,
	c3r0, c3r1, c3r2, c3r3 T,
) Matrix4[T] {
	return Matrix4[T]{
		X: Vector4[T]{c0r0, c0r1, c0r2, c0r3},
		Y: Vector4[T]{c1r0, c1r1, c1r2, c1r3},
		Z: Vector4[T]{c2r0, c2r1, c2r2, c2r3},
		W: Vector4[T]{c3r0, c3r1, c3r2, c3r3},
	}
}

func NewMatrix4FromCols[T Scalar](c0, c1, c2, c3 Vector4[T]) Matrix4[T] {
	return Matrix4[T]{c0, c1, c2, c3}
}

// NewMatrix4FromArray reads 16 elements in column-major order.
func NewMatrix4FromArray[T Scalar](d [16]T) Matrix4[T] {
	return Matrix4[T]{
		X: Vector4[T]{d[0], d[1], d[2], d[3]},
		Y: Vector4[T]{d[4], d[5], d[6], d[7]},
		Z: Vector4[T]{d[8], d[9], d[10], d[11]},
		W: Vector4[T]{d[12], d[13], d[14], d[15]},
	}
}

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @return A new identity matrix
 */
func NewMatrix4Identity[T Scalar]() Matrix4[T] {
	return NewMatrix4FromValue(T(1))
}

func NewMatrix4Zero[T Scalar]() Matrix4[T] {
	return Matrix4[T]{}
}

// NewMatrix4FromValue returns a matrix with value along the diagonal.
func NewMatrix4FromValue[T Scalar](value T) Matrix4[T] {
	return NewMatrix4(
		value, 0, 0, 0,
		0, value, 0, 0,
		0, 0, value, 0,
		0, 0, 0, value)
}

/**
 * @brief Creates and returns a translation matrix from the given position.
 *
 * @param position The position to be used to create the matrix.
 * @return A newly created translation matrix.
 */
func NewMatrix4Translation[T Scalar](position Vector3[T]) Matrix4[T] {
	out := NewMatrix4Identity[T]()
	out.W = position.Extend(1)
	return out
}

/**
 * @brief Returns a uniform scale matrix.
 */
func NewMatrix4Scale[T Scalar](value T) Matrix4[T] {
	return NewMatrix4NonuniformScale(value, value, value)
}

/**
 * @brief Returns a scale matrix using the provided scale per axis.
 */
func NewMatrix4NonuniformScale[T Scalar](x, y, z T) Matrix4[T] {
	return NewMatrix4(
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1)
}

// NewMatrix4FromMatrix3 embeds m as the upper left block of an otherwise
// identity matrix.
func NewMatrix4FromMatrix3[T Scalar](m Matrix3[T]) Matrix4[T] {
	return Matrix4[T]{
		X: m.X.Extend(0),
		Y: m.Y.Extend(0),
		Z: m.Z.Extend(0),
		W: Vector4[T]{0, 0, 0, 1},
	}
}

func NewMatrix4FromQuaternion[T Scalar](q Quaternion[T]) Matrix4[T] {
	return NewMatrix4FromMatrix3(q.ToMatrix3())
}

/**
 * @brief Creates and returns a right-handed view matrix looking at target
 * from the perspective of position.
 *
 * @param position The position of the eye.
 * @param target The position to "look at".
 * @param up The up vector.
 * @return A matrix looking at target from the perspective of position.
 */
func NewMatrix4LookAt[T Scalar](position, target Point3[T], up Vector3[T]) Matrix4[T] {
	f := target.Sub(position).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)
	eye := position.ToVector()

	return NewMatrix4(
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-eye.Dot(s), -eye.Dot(u), eye.Dot(f), 1)
}

func (m Matrix4[T]) Col(i int) Vector4[T] {
	return [4]Vector4[T]{m.X, m.Y, m.Z, m.W}[i]
}

func (m Matrix4[T]) Row(i int) Vector4[T] {
	return Vector4[T]{m.X.ToArray()[i], m.Y.ToArray()[i], m.Z.ToArray()[i], m.W.ToArray()[i]}
}

func (m Matrix4[T]) Diagonal() Vector4[T] {
	return Vector4[T]{m.X.X, m.Y.Y, m.Z.Z, m.W.W}
}

// ToArray flattens m in column-major order.
func (m Matrix4[T]) ToArray() [16]T {
	return [16]T{
		m.X.X, m.X.Y, m.X.Z, m.X.W,
		m.Y.X, m.Y.Y, m.Y.Z, m.Y.W,
		m.Z.X, m.Z.Y, m.Z.Z, m.Z.W,
		m.W.X, m.W.Y, m.W.Z, m.W.W,
	}
}

// ToMatrix3 drops the last row and column.
func (m Matrix4[T]) ToMatrix3() Matrix3[T] {
	return Matrix3[T]{m.X.Truncate(), m.Y.Truncate(), m.Z.Truncate()}
}

// ToQuaternion converts the upper 3x3 block, which must be a rotation.
func (m Matrix4[T]) ToQuaternion() Quaternion[T] {
	return NewQuaternionFromMatrix3(m.ToMatrix3())
}

/**
 * @brief Returns a transposed copy of the provided matrix (rows->colums)
 */
func (m Matrix4[T]) Transpose() Matrix4[T] {
	return Matrix4[T]{m.Row(0), m.Row(1), m.Row(2), m.Row(3)}
}

func (m Matrix4[T]) Trace() T {
	return m.X.X + m.Y.Y + m.Z.Z + m.W.W
}

// cofactors returns the first column of the adjugate and the 24 products
// of element pairs shared by the remaining columns.
func cofactors[T Scalar](m [16]T) (o [16]T, t [24]T) {
	t[0] = m[10] * m[15]
	t[1] = m[14] * m[11]
	t[2] = m[6] * m[15]
	t[3] = m[14] * m[7]
	t[4] = m[6] * m[11]
	t[5] = m[10] * m[7]
	t[6] = m[2] * m[15]
	t[7] = m[14] * m[3]
	t[8] = m[2] * m[11]
	t[9] = m[10] * m[3]
	t[10] = m[2] * m[7]
	t[11] = m[6] * m[3]
	t[12] = m[8] * m[13]
	t[13] = m[12] * m[9]
	t[14] = m[4] * m[13]
	t[15] = m[12] * m[5]
	t[16] = m[4] * m[9]
	t[17] = m[8] * m[5]
	t[18] = m[0] * m[13]
	t[19] = m[12] * m[1]
	t[20] = m[0] * m[9]
	t[21] = m[8] * m[1]
	t[22] = m[0] * m[5]
	t[23] = m[4] * m[1]

	o[0] = (t[0]*m[5] + t[3]*m[9] + t[4]*m[13]) - (t[1]*m[5] + t[2]*m[9] + t[5]*m[13])
	o[1] = (t[1]*m[1] + t[6]*m[9] + t[9]*m[13]) - (t[0]*m[1] + t[7]*m[9] + t[8]*m[13])
	o[2] = (t[2]*m[1] + t[7]*m[5] + t[10]*m[13]) - (t[3]*m[1] + t[6]*m[5] + t[11]*m[13])
	o[3] = (t[5]*m[1] + t[8]*m[5] + t[11]*m[9]) - (t[4]*m[1] + t[9]*m[5] + t[10]*m[9])
	return o, t
}

// Determinant expands along the first row using the adjugate's first column.
func (m Matrix4[T]) Determinant() T {
	d := m.ToArray()
	o, _ := cofactors(d)
	return d[0]*o[0] + d[4]*o[1] + d[8]*o[2] + d[12]*o[3]
}

/**
 * @brief Creates and returns an inverse of the provided matrix.
 *
 * @return The inverted matrix and true, or the zero matrix and false when
 * the determinant is within the singular epsilon of zero.
 */
func (m Matrix4[T]) Inverse() (Matrix4[T], bool) {
	d := m.ToArray()
	o, t := cofactors(d)

	det := d[0]*o[0] + d[4]*o[1] + d[8]*o[2] + d[12]*o[3]
	if kabs(det) <= singularEpsilon[T]() {
		return Matrix4[T]{}, false
	}
	f := 1 / det

	o[0] = f * o[0]
	o[1] = f * o[1]
	o[2] = f * o[2]
	o[3] = f * o[3]
	o[4] = f * ((t[1]*d[4] + t[2]*d[8] + t[5]*d[12]) - (t[0]*d[4] + t[3]*d[8] + t[4]*d[12]))
	o[5] = f * ((t[0]*d[0] + t[7]*d[8] + t[8]*d[12]) - (t[1]*d[0] + t[6]*d[8] + t[9]*d[12]))
	o[6] = f * ((t[3]*d[0] + t[6]*d[4] + t[11]*d[12]) - (t[2]*d[0] + t[7]*d[4] + t[10]*d[12]))
	o[7] = f * ((t[4]*d[0] + t[9]*d[4] + t[10]*d[8]) - (t[5]*d[0] + t[8]*d[4] + t[11]*d[8]))
	o[8] = f * ((t[12]*d[7] + t[15]*d[11] + t[16]*d[15]) - (t[13]*d[7] + t[14]*d[11] + t[17]*d[15]))
	o[9] = f * ((t[13]*d[3] + t[18]*d[11] + t[21]*d[15]) - (t[12]*d[3] + t[19]*d[11] + t[20]*d[15]))
	o[10] = f * ((t[14]*d[3] + t[19]*d[7] + t[22]*d[15]) - (t[15]*d[3] + t[18]*d[7] + t[23]*d[15]))
	o[11] = f * ((t[17]*d[3] + t[20]*d[7] + t[23]*d[11]) - (t[16]*d[3] + t[21]*d[7] + t[22]*d[11]))
	o[12] = f * ((t[14]*d[10] + t[17]*d[14] + t[13]*d[6]) - (t[16]*d[14] + t[12]*d[6] + t[15]*d[10]))
	o[13] = f * ((t[20]*d[14] + t[12]*d[2] + t[19]*d[10]) - (t[18]*d[10] + t[21]*d[14] + t[13]*d[2]))
	o[14] = f * ((t[18]*d[6] + t[23]*d[14] + t[15]*d[2]) - (t[22]*d[14] + t[14]*d[2] + t[19]*d[6]))
	o[15] = f * ((t[22]*d[10] + t[16]*d[2] + t[21]*d[6]) - (t[20]*d[6] + t[23]*d[10] + t[17]*d[2]))

	return NewMatrix4FromArray(o), true
}

func (m Matrix4[T]) IsInvertible() bool {
	return kabs(m.Determinant()) > singularEpsilon[T]()
}

// MulVector returns the weighted sum of the columns of m.
func (m Matrix4[T]) MulVector(v Vector4[T]) Vector4[T] {
	return m.X.MulScalar(v.X).
		Add(m.Y.MulScalar(v.Y)).
		Add(m.Z.MulScalar(v.Z)).
		Add(m.W.MulScalar(v.W))
}

/**
 * @brief Returns the result of multiplying m and other. The resulting
 * transformation applies other first, then m.
 */
func (m Matrix4[T]) Mul(other Matrix4[T]) Matrix4[T] {
	return Matrix4[T]{
		m.MulVector(other.X),
		m.MulVector(other.Y),
		m.MulVector(other.Z),
		m.MulVector(other.W),
	}
}

// TransformPoint applies m to p in homogeneous coordinates, dividing by the
// resulting w.
func (m Matrix4[T]) TransformPoint(p Point3[T]) Point3[T] {
	return Point3FromHomogeneous(m.MulVector(p.ToHomogeneous()))
}

// TransformVector applies m to v ignoring translation.
func (m Matrix4[T]) TransformVector(v Vector3[T]) Vector3[T] {
	return m.MulVector(v.Extend(0)).Truncate()
}

func (m Matrix4[T]) Add(other Matrix4[T]) Matrix4[T] {
	return Matrix4[T]{m.X.Add(other.X), m.Y.Add(other.Y), m.Z.Add(other.Z), m.W.Add(other.W)}
}

func (m Matrix4[T]) Sub(other Matrix4[T]) Matrix4[T] {
	return Matrix4[T]{m.X.Sub(other.X), m.Y.Sub(other.Y), m.Z.Sub(other.Z), m.W.Sub(other.W)}
}

func (m Matrix4[T]) Neg() Matrix4[T] {
	return Matrix4[T]{m.X.Neg(), m.Y.Neg(), m.Z.Neg(), m.W.Neg()}
}

func (m Matrix4[T]) MulScalar(scalar T) Matrix4[T] {
	return Matrix4[T]{m.X.MulScalar(scalar), m.Y.MulScalar(scalar), m.Z.MulScalar(scalar), m.W.MulScalar(scalar)}
}

func (m Matrix4[T]) DivScalar(scalar T) Matrix4[T] {
	return Matrix4[T]{m.X.DivScalar(scalar), m.Y.DivScalar(scalar), m.Z.DivScalar(scalar), m.W.DivScalar(scalar)}
}

func (m Matrix4[T]) Compare(other Matrix4[T], tolerance T) bool {
	return m.X.Compare(other.X, tolerance) &&
		m.Y.Compare(other.Y, tolerance) &&
		m.Z.Compare(other.Z, tolerance) &&
		m.W.Compare(other.W, tolerance)
}

func (m Matrix4[T]) IsIdentity(tolerance T) bool {
	return m.Compare(NewMatrix4Identity[T](), tolerance)
}

func (m Matrix4[T]) IsDiagonal(tolerance T) bool {
	d := m.ToArray()
	for i, v := range d {
		if i%5 != 0 && !ApproxEqual(v, 0, tolerance) {
			return false
		}
	}
	return true
}

func (m Matrix4[T]) IsSymmetric(tolerance T) bool {
	return m.Compare(m.Transpose(), tolerance)
}

/**
 * @brief Returns a forward vector relative to the provided matrix.
 */
func (m Matrix4[T]) Forward() Vector3[T] {
	return m.Z.Truncate().Neg().Normalize()
}

/**
 * @brief Returns an up vector relative to the provided matrix.
 */
func (m Matrix4[T]) Up() Vector3[T] {
	return m.Y.Truncate().Normalize()
}

/**
 * @brief Returns a right vector relative to the provided matrix.
 */
func (m Matrix4[T]) Right() Vector3[T] {
	return m.X.Truncate().Normalize()
}

func (m Matrix4[T]) String() string {
	return fmt.Sprintf("[%v, %v, %v, %v]", m.X, m.Y, m.Z, m.W)
}
