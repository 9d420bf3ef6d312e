package math

import "fmt"

// Vector2 represents a 2D vector
type Vector2[T Scalar] struct {
	X, Y T
}

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 */
func NewVector2[T Scalar](x, y T) Vector2[T] {
	return Vector2[T]{
		X: x,
		Y: y,
	}
}

func NewVector2FromValue[T Scalar](value T) Vector2[T] {
	return Vector2[T]{value, value}
}

func NewVector2Zero[T Scalar]() Vector2[T] {
	return Vector2[T]{}
}

func NewVector2One[T Scalar]() Vector2[T] {
	return Vector2[T]{1, 1}
}

func NewVector2UnitX[T Scalar]() Vector2[T] {
	return Vector2[T]{1, 0}
}

func NewVector2UnitY[T Scalar]() Vector2[T] {
	return Vector2[T]{0, 1}
}

func (v Vector2[T]) Add(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X + other.X, v.Y + other.Y}
}

func (v Vector2[T]) Sub(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X - other.X, v.Y - other.Y}
}

func (v Vector2[T]) Mul(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X * other.X, v.Y * other.Y}
}

func (v Vector2[T]) MulElements(other Vector2[T]) Vector2[T] {
	return v.Mul(other)
}

func (v Vector2[T]) Div(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X / other.X, v.Y / other.Y}
}

func (v Vector2[T]) MulScalar(scalar T) Vector2[T] {
	return Vector2[T]{v.X * scalar, v.Y * scalar}
}

func (v Vector2[T]) DivScalar(scalar T) Vector2[T] {
	return Vector2[T]{v.X / scalar, v.Y / scalar}
}

func (v Vector2[T]) AddScalar(scalar T) Vector2[T] {
	return Vector2[T]{v.X + scalar, v.Y + scalar}
}

func (v Vector2[T]) SubScalar(scalar T) Vector2[T] {
	return Vector2[T]{v.X - scalar, v.Y - scalar}
}

func (v Vector2[T]) RemScalar(scalar T) Vector2[T] {
	return Vector2[T]{kmod(v.X, scalar), kmod(v.Y, scalar)}
}

func (v Vector2[T]) Neg() Vector2[T] {
	return Vector2[T]{-v.X, -v.Y}
}

func (v Vector2[T]) Dot(other Vector2[T]) T {
	return v.X*other.X + v.Y*other.Y
}

// PerpDot is the z component of the cross product of v and other extended
// into 3D.
func (v Vector2[T]) PerpDot(other Vector2[T]) T {
	return v.X*other.Y - v.Y*other.X
}

func (v Vector2[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y
}

func (v Vector2[T]) Length() T {
	return ksqrt(v.LengthSquared())
}

func (v Vector2[T]) Normalize() Vector2[T] {
	length := v.Length()
	return Vector2[T]{v.X / length, v.Y / length}
}

func (v Vector2[T]) NormalizeTo(length T) Vector2[T] {
	return v.MulScalar(length / v.Length())
}

func (v Vector2[T]) Lerp(other Vector2[T], amount T) Vector2[T] {
	return v.Add(other.Sub(v).MulScalar(amount))
}

func (v Vector2[T]) Distance(other Vector2[T]) T {
	return v.Sub(other).Length()
}

// Angle returns the signed angle from v to other.
func (v Vector2[T]) Angle(other Vector2[T]) Rad[T] {
	return Radians(katan2(v.PerpDot(other), v.Dot(other)))
}

func (v Vector2[T]) IsPerpendicular(other Vector2[T], tolerance T) bool {
	return ApproxEqual(v.Dot(other), 0, tolerance)
}

func (v Vector2[T]) Compare(other Vector2[T], tolerance T) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}
	if kabs(v.Y-other.Y) > tolerance {
		return false
	}
	return true
}

func (v Vector2[T]) Sum() T {
	return v.X + v.Y
}

func (v Vector2[T]) Product() T {
	return v.X * v.Y
}

func (v Vector2[T]) MinElement() T {
	return kmin(v.X, v.Y)
}

func (v Vector2[T]) MaxElement() T {
	return kmax(v.X, v.Y)
}

func (v Vector2[T]) Min(other Vector2[T]) Vector2[T] {
	return Vector2[T]{kmin(v.X, other.X), kmin(v.Y, other.Y)}
}

func (v Vector2[T]) Max(other Vector2[T]) Vector2[T] {
	return Vector2[T]{kmax(v.X, other.X), kmax(v.Y, other.Y)}
}

func (v Vector2[T]) Extend(z T) Vector3[T] {
	return Vector3[T]{v.X, v.Y, z}
}

func (v Vector2[T]) ToPoint() Point2[T] {
	return Point2[T]{v.X, v.Y}
}

func (v Vector2[T]) ToArray() [2]T {
	return [2]T{v.X, v.Y}
}

func NewVector2FromArray[T Scalar](a [2]T) Vector2[T] {
	return Vector2[T]{a[0], a[1]}
}

func (v Vector2[T]) String() string {
	return fmt.Sprintf("[%v, %v]", v.X, v.Y)
}
