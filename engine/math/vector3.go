package math

import "fmt"

// Vector3 represents a 3D vector
type Vector3[T Scalar] struct {
	X, Y, Z T
}

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @return A new 3-element vector.
 */
func NewVector3[T Scalar](x, y, z T) Vector3[T] {
	return Vector3[T]{x, y, z}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to value.
 */
func NewVector3FromValue[T Scalar](value T) Vector3[T] {
	return Vector3[T]{value, value, value}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 0.
 */
func NewVector3Zero[T Scalar]() Vector3[T] {
	return Vector3[T]{}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 1.
 */
func NewVector3One[T Scalar]() Vector3[T] {
	return Vector3[T]{1, 1, 1}
}

// NewVector3UnitX returns (1, 0, 0).
func NewVector3UnitX[T Scalar]() Vector3[T] {
	return Vector3[T]{1, 0, 0}
}

// NewVector3UnitY returns (0, 1, 0).
func NewVector3UnitY[T Scalar]() Vector3[T] {
	return Vector3[T]{0, 1, 0}
}

// NewVector3UnitZ returns (0, 0, 1).
func NewVector3UnitZ[T Scalar]() Vector3[T] {
	return Vector3[T]{0, 0, 1}
}

/**
 * @brief Creates and returns a 3-component vector pointing up (0, 1, 0).
 */
func NewVector3Up[T Scalar]() Vector3[T] {
	return Vector3[T]{0, 1, 0}
}

/**
 * @brief Creates and returns a 3-component vector pointing down (0, -1, 0).
 */
func NewVector3Down[T Scalar]() Vector3[T] {
	return Vector3[T]{0, -1, 0}
}

/**
 * @brief Creates and returns a 3-component vector pointing left (-1, 0, 0).
 */
func NewVector3Left[T Scalar]() Vector3[T] {
	return Vector3[T]{-1, 0, 0}
}

/**
 * @brief Creates and returns a 3-component vector pointing right (1, 0, 0).
 */
func NewVector3Right[T Scalar]() Vector3[T] {
	return Vector3[T]{1, 0, 0}
}

/**
 * @brief Creates and returns a 3-component vector pointing forward (0, 0, -1).
 */
func NewVector3Forward[T Scalar]() Vector3[T] {
	return Vector3[T]{0, 0, -1}
}

/**
 * @brief Creates and returns a 3-component vector pointing backward (0, 0, 1).
 */
func NewVector3Back[T Scalar]() Vector3[T] {
	return Vector3[T]{0, 0, 1}
}

/**
 * @brief Adds other to v and returns a copy of the result.
 */
func (v Vector3[T]) Add(other Vector3[T]) Vector3[T] {
	return Vector3[T]{
		v.X + other.X,
		v.Y + other.Y,
		v.Z + other.Z}
}

/**
 * @brief Subtracts other from v and returns a copy of the result.
 */
func (v Vector3[T]) Sub(other Vector3[T]) Vector3[T] {
	return Vector3[T]{
		v.X - other.X,
		v.Y - other.Y,
		v.Z - other.Z}
}

/**
 * @brief Multiplies v by other element by element and returns a copy of the result.
 */
func (v Vector3[T]) Mul(other Vector3[T]) Vector3[T] {
	return Vector3[T]{
		v.X * other.X,
		v.Y * other.Y,
		v.Z * other.Z}
}

// MulElements is Mul, named for the ElementWise capability.
func (v Vector3[T]) MulElements(other Vector3[T]) Vector3[T] {
	return v.Mul(other)
}

/**
 * @brief Divides v by other element by element and returns a copy of the result.
 */
func (v Vector3[T]) Div(other Vector3[T]) Vector3[T] {
	return Vector3[T]{
		v.X / other.X,
		v.Y / other.Y,
		v.Z / other.Z}
}

/**
 * @brief Multiplies all elements of v by scalar and returns a copy of the result.
 *
 * @param scalar The scalar value.
 * @return A copy of the resulting vector.
 */
func (v Vector3[T]) MulScalar(scalar T) Vector3[T] {
	return Vector3[T]{
		v.X * scalar,
		v.Y * scalar,
		v.Z * scalar}
}

/**
 * @brief Divides all elements of v by scalar and returns a copy of the result.
 */
func (v Vector3[T]) DivScalar(scalar T) Vector3[T] {
	return Vector3[T]{
		v.X / scalar,
		v.Y / scalar,
		v.Z / scalar}
}

func (v Vector3[T]) AddScalar(scalar T) Vector3[T] {
	return Vector3[T]{v.X + scalar, v.Y + scalar, v.Z + scalar}
}

func (v Vector3[T]) SubScalar(scalar T) Vector3[T] {
	return Vector3[T]{v.X - scalar, v.Y - scalar, v.Z - scalar}
}

// RemScalar returns the floating point remainder of each element by scalar.
func (v Vector3[T]) RemScalar(scalar T) Vector3[T] {
	return Vector3[T]{kmod(v.X, scalar), kmod(v.Y, scalar), kmod(v.Z, scalar)}
}

func (v Vector3[T]) Neg() Vector3[T] {
	return Vector3[T]{-v.X, -v.Y, -v.Z}
}

/**
 * @brief Returns the dot product between the provided vectors. Typically used
 * to calculate the difference in direction.
 *
 * @param other The second vector.
 * @return The dot product.
 */
func (v Vector3[T]) Dot(other Vector3[T]) T {
	p := T(0)
	p += v.X * other.X
	p += v.Y * other.Y
	p += v.Z * other.Z
	return p
}

/**
 * @brief Calculates and returns the cross product of the supplied vectors.
 * The cross product is a new vector which is orthoganal to both provided vectors.
 *
 * @param other The second vector.
 * @return The cross product.
 */
func (v Vector3[T]) Cross(other Vector3[T]) Vector3[T] {
	return Vector3[T]{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X}
}

/**
 * @brief Returns the squared length of the provided vector.
 */
func (v Vector3[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

/**
 * @brief Returns the length of the provided vector.
 */
func (v Vector3[T]) Length() T {
	return ksqrt(v.LengthSquared())
}

/**
 * @brief Returns a copy of v scaled to unit length. A zero vector yields NaNs.
 */
func (v Vector3[T]) Normalize() Vector3[T] {
	length := v.Length()
	return Vector3[T]{
		v.X / length,
		v.Y / length,
		v.Z / length}
}

// NormalizeTo returns a vector with the direction of v and the given length.
func (v Vector3[T]) NormalizeTo(length T) Vector3[T] {
	return v.MulScalar(length / v.Length())
}

// Lerp linearly interpolates from v towards other by amount.
func (v Vector3[T]) Lerp(other Vector3[T], amount T) Vector3[T] {
	return v.Add(other.Sub(v).MulScalar(amount))
}

/**
 * @brief Returns the distance between v and other.
 */
func (v Vector3[T]) Distance(other Vector3[T]) T {
	return v.Sub(other).Length()
}

// Angle returns the unsigned angle between v and other.
func (v Vector3[T]) Angle(other Vector3[T]) Rad[T] {
	return Radians(katan2(v.Cross(other).Length(), v.Dot(other)))
}

// IsPerpendicular reports whether the dot product of v and other is within
// tolerance of zero.
func (v Vector3[T]) IsPerpendicular(other Vector3[T], tolerance T) bool {
	return ApproxEqual(v.Dot(other), 0, tolerance)
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 *
 * @param other The second vector.
 * @param tolerance The difference tolerance. Typically K_FLOAT_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vector3[T]) Compare(other Vector3[T], tolerance T) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}

	if kabs(v.Y-other.Y) > tolerance {
		return false
	}

	if kabs(v.Z-other.Z) > tolerance {
		return false
	}

	return true
}

func (v Vector3[T]) Sum() T {
	return v.X + v.Y + v.Z
}

func (v Vector3[T]) Product() T {
	return v.X * v.Y * v.Z
}

func (v Vector3[T]) MinElement() T {
	return kmin(kmin(v.X, v.Y), v.Z)
}

func (v Vector3[T]) MaxElement() T {
	return kmax(kmax(v.X, v.Y), v.Z)
}

// Min returns the element-wise minimum of v and other.
func (v Vector3[T]) Min(other Vector3[T]) Vector3[T] {
	return Vector3[T]{kmin(v.X, other.X), kmin(v.Y, other.Y), kmin(v.Z, other.Z)}
}

// Max returns the element-wise maximum of v and other.
func (v Vector3[T]) Max(other Vector3[T]) Vector3[T] {
	return Vector3[T]{kmax(v.X, other.X), kmax(v.Y, other.Y), kmax(v.Z, other.Z)}
}

/**
 * @brief Returns a new Vector4 using v as the x, y and z components and w for w.
 */
func (v Vector3[T]) Extend(w T) Vector4[T] {
	return Vector4[T]{v.X, v.Y, v.Z, w}
}

// Truncate drops the z component.
func (v Vector3[T]) Truncate() Vector2[T] {
	return Vector2[T]{v.X, v.Y}
}

func (v Vector3[T]) ToPoint() Point3[T] {
	return Point3[T]{v.X, v.Y, v.Z}
}

func (v Vector3[T]) ToArray() [3]T {
	return [3]T{v.X, v.Y, v.Z}
}

func NewVector3FromArray[T Scalar](a [3]T) Vector3[T] {
	return Vector3[T]{a[0], a[1], a[2]}
}

func (v Vector3[T]) String() string {
	return fmt.Sprintf("[%v, %v, %v]", v.X, v.Y, v.Z)
}
