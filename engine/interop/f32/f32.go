// Package f32 converts between rotor and golang.org/x/image/math/f32.
// Matrices there are row-major and are transposed on the way through.
package f32

import (
	"golang.org/x/image/math/f32"

	"github.com/spaghettifunk/rotor/engine/math"
)

func ToVec2(v math.Vector2[float32]) f32.Vec2 {
	return f32.Vec2(v.ToArray())
}

func FromVec2(v f32.Vec2) math.Vector2[float32] {
	return math.NewVector2FromArray([2]float32(v))
}

func ToVec3(v math.Vector3[float32]) f32.Vec3 {
	return f32.Vec3(v.ToArray())
}

func FromVec3(v f32.Vec3) math.Vector3[float32] {
	return math.NewVector3FromArray([3]float32(v))
}

func ToVec4(v math.Vector4[float32]) f32.Vec4 {
	return f32.Vec4(v.ToArray())
}

func FromVec4(v f32.Vec4) math.Vector4[float32] {
	return math.NewVector4FromArray([4]float32(v))
}

func ToMat3(m math.Matrix3[float32]) f32.Mat3 {
	return f32.Mat3(m.Transpose().ToArray())
}

func FromMat3(m f32.Mat3) math.Matrix3[float32] {
	// Reading row-major data as columns yields the transpose.
	return math.NewMatrix3(m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8]).Transpose()
}

func ToMat4(m math.Matrix4[float32]) f32.Mat4 {
	return f32.Mat4(m.Transpose().ToArray())
}

func FromMat4(m f32.Mat4) math.Matrix4[float32] {
	return math.NewMatrix4FromArray([16]float32(m)).Transpose()
}

// ToAff3 keeps the top two rows of m, which must be a 2D affine transform
// with a last row of (0, 0, 1).
func ToAff3(m math.Matrix3[float32]) f32.Aff3 {
	return f32.Aff3{
		m.X.X, m.Y.X, m.Z.X,
		m.X.Y, m.Y.Y, m.Z.Y,
	}
}

// FromAff3 returns a 2D affine transform as a 3x3 matrix.
func FromAff3(a f32.Aff3) math.Matrix3[float32] {
	return math.NewMatrix3(
		a[0], a[3], 0,
		a[1], a[4], 0,
		a[2], a[5], 1)
}

// TransformPoint2 applies a 2D affine transform to p.
func TransformPoint2(a f32.Aff3, p math.Point2[float32]) math.Point2[float32] {
	v := FromAff3(a).MulVector(math.NewVector3(p.X, p.Y, 1))
	return math.NewPoint2(v.X, v.Y)
}
