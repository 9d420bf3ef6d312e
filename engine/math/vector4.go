package math

import "fmt"

// Vector4 represents a 4D vector
type Vector4[T Scalar] struct {
	X, Y, Z, W T
}

/**
 * @brief Creates and returns a new 4-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @param w The w value.
 * @return A new 4-element vector.
 */
func NewVector4[T Scalar](x, y, z, w T) Vector4[T] {
	return Vector4[T]{
		X: x,
		Y: y,
		Z: z,
		W: w,
	}
}

func NewVector4FromValue[T Scalar](value T) Vector4[T] {
	return Vector4[T]{value, value, value, value}
}

func NewVector4Zero[T Scalar]() Vector4[T] {
	return Vector4[T]{}
}

func NewVector4One[T Scalar]() Vector4[T] {
	return Vector4[T]{1, 1, 1, 1}
}

func NewVector4UnitX[T Scalar]() Vector4[T] {
	return Vector4[T]{1, 0, 0, 0}
}

func NewVector4UnitY[T Scalar]() Vector4[T] {
	return Vector4[T]{0, 1, 0, 0}
}

func NewVector4UnitZ[T Scalar]() Vector4[T] {
	return Vector4[T]{0, 0, 1, 0}
}

func NewVector4UnitW[T Scalar]() Vector4[T] {
	return Vector4[T]{0, 0, 0, 1}
}

func (v Vector4[T]) Add(other Vector4[T]) Vector4[T] {
	return Vector4[T]{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
		W: v.W + other.W,
	}
}

func (v Vector4[T]) Sub(other Vector4[T]) Vector4[T] {
	return Vector4[T]{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
		W: v.W - other.W,
	}
}

func (v Vector4[T]) Mul(other Vector4[T]) Vector4[T] {
	return Vector4[T]{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
		W: v.W * other.W,
	}
}

func (v Vector4[T]) MulElements(other Vector4[T]) Vector4[T] {
	return v.Mul(other)
}

func (v Vector4[T]) Div(other Vector4[T]) Vector4[T] {
	return Vector4[T]{
		X: v.X / other.X,
		Y: v.Y / other.Y,
		Z: v.Z / other.Z,
		W: v.W / other.W,
	}
}

func (v Vector4[T]) MulScalar(scalar T) Vector4[T] {
	return Vector4[T]{v.X * scalar, v.Y * scalar, v.Z * scalar, v.W * scalar}
}

func (v Vector4[T]) DivScalar(scalar T) Vector4[T] {
	return Vector4[T]{v.X / scalar, v.Y / scalar, v.Z / scalar, v.W / scalar}
}

func (v Vector4[T]) AddScalar(scalar T) Vector4[T] {
	return Vector4[T]{v.X + scalar, v.Y + scalar, v.Z + scalar, v.W + scalar}
}

func (v Vector4[T]) SubScalar(scalar T) Vector4[T] {
	return Vector4[T]{v.X - scalar, v.Y - scalar, v.Z - scalar, v.W - scalar}
}

func (v Vector4[T]) RemScalar(scalar T) Vector4[T] {
	return Vector4[T]{kmod(v.X, scalar), kmod(v.Y, scalar), kmod(v.Z, scalar), kmod(v.W, scalar)}
}

func (v Vector4[T]) Neg() Vector4[T] {
	return Vector4[T]{-v.X, -v.Y, -v.Z, -v.W}
}

func (v Vector4[T]) Dot(other Vector4[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

func (v Vector4[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

func (v Vector4[T]) Length() T {
	return ksqrt(v.LengthSquared())
}

func (v Vector4[T]) Normalize() Vector4[T] {
	length := v.Length()
	return Vector4[T]{
		v.X / length,
		v.Y / length,
		v.Z / length,
		v.W / length}
}

func (v Vector4[T]) NormalizeTo(length T) Vector4[T] {
	return v.MulScalar(length / v.Length())
}

func (v Vector4[T]) Lerp(other Vector4[T], amount T) Vector4[T] {
	return v.Add(other.Sub(v).MulScalar(amount))
}

func (v Vector4[T]) Distance(other Vector4[T]) T {
	return v.Sub(other).Length()
}

// Angle returns the unsigned angle between v and other.
func (v Vector4[T]) Angle(other Vector4[T]) Rad[T] {
	return Radians(kacos(Clamp(v.Dot(other)/(v.Length()*other.Length()), -1, 1)))
}

func (v Vector4[T]) IsPerpendicular(other Vector4[T], tolerance T) bool {
	return ApproxEqual(v.Dot(other), 0, tolerance)
}

func (v Vector4[T]) Compare(other Vector4[T], tolerance T) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}

	if kabs(v.Y-other.Y) > tolerance {
		return false
	}

	if kabs(v.Z-other.Z) > tolerance {
		return false
	}

	if kabs(v.W-other.W) > tolerance {
		return false
	}

	return true
}

func (v Vector4[T]) Sum() T {
	return v.X + v.Y + v.Z + v.W
}

func (v Vector4[T]) Product() T {
	return v.X * v.Y * v.Z * v.W
}

func (v Vector4[T]) MinElement() T {
	return kmin(kmin(v.X, v.Y), kmin(v.Z, v.W))
}

func (v Vector4[T]) MaxElement() T {
	return kmax(kmax(v.X, v.Y), kmax(v.Z, v.W))
}

func (v Vector4[T]) Min(other Vector4[T]) Vector4[T] {
	return Vector4[T]{kmin(v.X, other.X), kmin(v.Y, other.Y), kmin(v.Z, other.Z), kmin(v.W, other.W)}
}

func (v Vector4[T]) Max(other Vector4[T]) Vector4[T] {
	return Vector4[T]{kmax(v.X, other.X), kmax(v.Y, other.Y), kmax(v.Z, other.Z), kmax(v.W, other.W)}
}

/**
 * @brief Returns a new Vector3 containing the x, y and z components of v,
 * essentially dropping the w component.
 */
func (v Vector4[T]) Truncate() Vector3[T] {
	return Vector3[T]{v.X, v.Y, v.Z}
}

// TruncateN drops the n-th component. It panics when n is not in [0, 3],
// like an out of range array index.
func (v Vector4[T]) TruncateN(n int) Vector3[T] {
	switch n {
	case 0:
		return Vector3[T]{v.Y, v.Z, v.W}
	case 1:
		return Vector3[T]{v.X, v.Z, v.W}
	case 2:
		return Vector3[T]{v.X, v.Y, v.W}
	case 3:
		return Vector3[T]{v.X, v.Y, v.Z}
	}
	panic(fmt.Sprintf("vector4: component %d out of range", n))
}

func (v Vector4[T]) ToArray() [4]T {
	return [4]T{v.X, v.Y, v.Z, v.W}
}

func NewVector4FromArray[T Scalar](a [4]T) Vector4[T] {
	return Vector4[T]{a[0], a[1], a[2], a[3]}
}

func (v Vector4[T]) String() string {
	return fmt.Sprintf("[%v, %v, %v, %v]", v.X, v.Y, v.Z, v.W)
}
