package math

import "fmt"

// Point2 is a location in 2D space. Points are displaced by vectors and
// differ by vectors; they are never added to each other.
type Point2[T Scalar] struct {
	X, Y T
}

// Point3 is a location in 3D space.
type Point3[T Scalar] struct {
	X, Y, Z T
}

// Point4 is a location in 4D space.
type Point4[T Scalar] struct {
	X, Y, Z, W T
}

func NewPoint2[T Scalar](x, y T) Point2[T] {
	return Point2[T]{x, y}
}

func NewPoint3[T Scalar](x, y, z T) Point3[T] {
	return Point3[T]{x, y, z}
}

func NewPoint4[T Scalar](x, y, z, w T) Point4[T] {
	return Point4[T]{x, y, z, w}
}

func Origin2[T Scalar]() Point2[T] { return Point2[T]{} }
func Origin3[T Scalar]() Point3[T] { return Point3[T]{} }
func Origin4[T Scalar]() Point4[T] { return Point4[T]{} }

// Point2FromVector returns the point displaced from the origin by v.
func Point2FromVector[T Scalar](v Vector2[T]) Point2[T] {
	return Point2[T]{v.X, v.Y}
}

func Point3FromVector[T Scalar](v Vector3[T]) Point3[T] {
	return Point3[T]{v.X, v.Y, v.Z}
}

func Point4FromVector[T Scalar](v Vector4[T]) Point4[T] {
	return Point4[T]{v.X, v.Y, v.Z, v.W}
}

// ------------------------------------------
// Point2
// ------------------------------------------

// ToVector returns the displacement of p from the origin.
func (p Point2[T]) ToVector() Vector2[T] {
	return Vector2[T]{p.X, p.Y}
}

func (p Point2[T]) AddVector(v Vector2[T]) Point2[T] {
	return Point2[T]{p.X + v.X, p.Y + v.Y}
}

func (p Point2[T]) SubVector(v Vector2[T]) Point2[T] {
	return Point2[T]{p.X - v.X, p.Y - v.Y}
}

// Sub returns the vector from other to p.
func (p Point2[T]) Sub(other Point2[T]) Vector2[T] {
	return Vector2[T]{p.X - other.X, p.Y - other.Y}
}

func (p Point2[T]) MulScalar(scalar T) Point2[T] {
	return Point2[T]{p.X * scalar, p.Y * scalar}
}

func (p Point2[T]) DivScalar(scalar T) Point2[T] {
	return Point2[T]{p.X / scalar, p.Y / scalar}
}

func (p Point2[T]) Dot(v Vector2[T]) T {
	return p.X*v.X + p.Y*v.Y
}

func (p Point2[T]) Distance(other Point2[T]) T {
	return p.Sub(other).Length()
}

func (p Point2[T]) Compare(other Point2[T], tolerance T) bool {
	return p.ToVector().Compare(other.ToVector(), tolerance)
}

func (p Point2[T]) Sum() T        { return p.X + p.Y }
func (p Point2[T]) Product() T    { return p.X * p.Y }
func (p Point2[T]) MinElement() T { return kmin(p.X, p.Y) }
func (p Point2[T]) MaxElement() T { return kmax(p.X, p.Y) }

func (p Point2[T]) Min(other Point2[T]) Point2[T] {
	return Point2FromVector(p.ToVector().Min(other.ToVector()))
}

func (p Point2[T]) Max(other Point2[T]) Point2[T] {
	return Point2FromVector(p.ToVector().Max(other.ToVector()))
}

func (p Point2[T]) MulElements(other Point2[T]) Point2[T] {
	return Point2FromVector(p.ToVector().Mul(other.ToVector()))
}

func (p Point2[T]) ToArray() [2]T {
	return [2]T{p.X, p.Y}
}

func (p Point2[T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// ------------------------------------------
// Point3
// ------------------------------------------

func (p Point3[T]) ToVector() Vector3[T] {
	return Vector3[T]{p.X, p.Y, p.Z}
}

func (p Point3[T]) AddVector(v Vector3[T]) Point3[T] {
	return Point3[T]{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

func (p Point3[T]) SubVector(v Vector3[T]) Point3[T] {
	return Point3[T]{p.X - v.X, p.Y - v.Y, p.Z - v.Z}
}

func (p Point3[T]) Sub(other Point3[T]) Vector3[T] {
	return Vector3[T]{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

func (p Point3[T]) MulScalar(scalar T) Point3[T] {
	return Point3[T]{p.X * scalar, p.Y * scalar, p.Z * scalar}
}

func (p Point3[T]) DivScalar(scalar T) Point3[T] {
	return Point3[T]{p.X / scalar, p.Y / scalar, p.Z / scalar}
}

func (p Point3[T]) Dot(v Vector3[T]) T {
	return p.X*v.X + p.Y*v.Y + p.Z*v.Z
}

func (p Point3[T]) Distance(other Point3[T]) T {
	return p.Sub(other).Length()
}

func (p Point3[T]) Compare(other Point3[T], tolerance T) bool {
	return p.ToVector().Compare(other.ToVector(), tolerance)
}

func (p Point3[T]) Sum() T        { return p.X + p.Y + p.Z }
func (p Point3[T]) Product() T    { return p.X * p.Y * p.Z }
func (p Point3[T]) MinElement() T { return p.ToVector().MinElement() }
func (p Point3[T]) MaxElement() T { return p.ToVector().MaxElement() }

func (p Point3[T]) Min(other Point3[T]) Point3[T] {
	return Point3FromVector(p.ToVector().Min(other.ToVector()))
}

func (p Point3[T]) Max(other Point3[T]) Point3[T] {
	return Point3FromVector(p.ToVector().Max(other.ToVector()))
}

func (p Point3[T]) MulElements(other Point3[T]) Point3[T] {
	return Point3FromVector(p.ToVector().Mul(other.ToVector()))
}

// ToHomogeneous returns p as (x, y, z, 1).
func (p Point3[T]) ToHomogeneous() Vector4[T] {
	return Vector4[T]{p.X, p.Y, p.Z, 1}
}

// Point3FromHomogeneous divides the xyz part of v by its w component.
func Point3FromHomogeneous[T Scalar](v Vector4[T]) Point3[T] {
	return Point3FromVector(v.Truncate().DivScalar(v.W))
}

func (p Point3[T]) ToArray() [3]T {
	return [3]T{p.X, p.Y, p.Z}
}

func (p Point3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", p.X, p.Y, p.Z)
}

// ------------------------------------------
// Point4
// ------------------------------------------

func (p Point4[T]) ToVector() Vector4[T] {
	return Vector4[T]{p.X, p.Y, p.Z, p.W}
}

func (p Point4[T]) AddVector(v Vector4[T]) Point4[T] {
	return Point4FromVector(p.ToVector().Add(v))
}

func (p Point4[T]) SubVector(v Vector4[T]) Point4[T] {
	return Point4FromVector(p.ToVector().Sub(v))
}

func (p Point4[T]) Sub(other Point4[T]) Vector4[T] {
	return p.ToVector().Sub(other.ToVector())
}

func (p Point4[T]) MulScalar(scalar T) Point4[T] {
	return Point4FromVector(p.ToVector().MulScalar(scalar))
}

func (p Point4[T]) DivScalar(scalar T) Point4[T] {
	return Point4FromVector(p.ToVector().DivScalar(scalar))
}

func (p Point4[T]) Dot(v Vector4[T]) T {
	return p.ToVector().Dot(v)
}

func (p Point4[T]) Distance(other Point4[T]) T {
	return p.Sub(other).Length()
}

func (p Point4[T]) Compare(other Point4[T], tolerance T) bool {
	return p.ToVector().Compare(other.ToVector(), tolerance)
}

func (p Point4[T]) Sum() T        { return p.ToVector().Sum() }
func (p Point4[T]) Product() T    { return p.ToVector().Product() }
func (p Point4[T]) MinElement() T { return p.ToVector().MinElement() }
func (p Point4[T]) MaxElement() T { return p.ToVector().MaxElement() }

func (p Point4[T]) Min(other Point4[T]) Point4[T] {
	return Point4FromVector(p.ToVector().Min(other.ToVector()))
}

func (p Point4[T]) Max(other Point4[T]) Point4[T] {
	return Point4FromVector(p.ToVector().Max(other.ToVector()))
}

func (p Point4[T]) MulElements(other Point4[T]) Point4[T] {
	return Point4FromVector(p.ToVector().Mul(other.ToVector()))
}

func (p Point4[T]) ToArray() [4]T {
	return [4]T{p.X, p.Y, p.Z, p.W}
}

func (p Point4[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", p.X, p.Y, p.Z, p.W)
}
