// Package mgl converts between rotor and github.com/go-gl/mathgl. Vectors
// and matrices convert for both mgl32 and mgl64 through the underlying
// array types; both libraries store matrices column-major, as rotor does.
package mgl

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/spaghettifunk/rotor/engine/math"
)

func ToVec2[V ~[2]T, T math.Scalar](v math.Vector2[T]) V {
	return V(v.ToArray())
}

func FromVec2[V ~[2]T, T math.Scalar](v V) math.Vector2[T] {
	return math.NewVector2FromArray([2]T(v))
}

func ToVec3[V ~[3]T, T math.Scalar](v math.Vector3[T]) V {
	return V(v.ToArray())
}

func FromVec3[V ~[3]T, T math.Scalar](v V) math.Vector3[T] {
	return math.NewVector3FromArray([3]T(v))
}

func ToVec4[V ~[4]T, T math.Scalar](v math.Vector4[T]) V {
	return V(v.ToArray())
}

func FromVec4[V ~[4]T, T math.Scalar](v V) math.Vector4[T] {
	return math.NewVector4FromArray([4]T(v))
}

func ToMat3[M ~[9]T, T math.Scalar](m math.Matrix3[T]) M {
	return M(m.ToArray())
}

func FromMat3[M ~[9]T, T math.Scalar](m M) math.Matrix3[T] {
	return math.NewMatrix3(m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

func ToMat4[M ~[16]T, T math.Scalar](m math.Matrix4[T]) M {
	return M(m.ToArray())
}

func FromMat4[M ~[16]T, T math.Scalar](m M) math.Matrix4[T] {
	return math.NewMatrix4FromArray([16]T(m))
}

func QuatTo32(q math.Quaternion[float32]) mgl32.Quat {
	return mgl32.Quat{W: q.W, V: ToVec3[mgl32.Vec3](q.V)}
}

func QuatFrom32(q mgl32.Quat) math.Quaternion[float32] {
	return math.NewQuaternionFromSV(q.W, FromVec3(q.V))
}

func QuatTo64(q math.Quaternion[float64]) mgl64.Quat {
	return mgl64.Quat{W: q.W, V: ToVec3[mgl64.Vec3](q.V)}
}

func QuatFrom64(q mgl64.Quat) math.Quaternion[float64] {
	return math.NewQuaternionFromSV(q.W, FromVec3(q.V))
}
