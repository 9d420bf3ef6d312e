package mgl

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/rotor/engine/math"
)

func TestVectorRoundTrip(t *testing.T) {
	v3 := math.NewVector3(1.0, -2.0, 3.5)
	assert.Equal(t, mgl64.Vec3{1, -2, 3.5}, ToVec3[mgl64.Vec3](v3))
	assert.Equal(t, v3, FromVec3(ToVec3[mgl64.Vec3](v3)))

	v2 := math.NewVector2[float32](4, 5)
	assert.Equal(t, v2, FromVec2(ToVec2[mgl32.Vec2](v2)))

	v4 := math.NewVector4[float32](1, 2, 3, 4)
	assert.Equal(t, mgl32.Vec4{1, 2, 3, 4}, ToVec4[mgl32.Vec4](v4))
	assert.Equal(t, v4, FromVec4(ToVec4[mgl32.Vec4](v4)))

	a, b := math.NewVector3(1.0, 2.0, 3.0), math.NewVector3(-1.0, 0.5, 2.0)
	cross := ToVec3[mgl64.Vec3](a).Cross(ToVec3[mgl64.Vec3](b))
	assert.Equal(t, a.Cross(b), FromVec3(cross))
}

func TestRotationMatchesMathGL(t *testing.T) {
	theta := math.Degrees(37.0)

	m := math.FromAngleZ[math.Matrix3[float64], float64](theta)
	want := mgl64.Rotate3DZ(theta.Radians().Value)
	assert.True(t, FromMat3(want).Compare(m, 1e-12))

	axis := math.NewVector3(1.0, 2.0, -2.0).Normalize()
	q := math.FromAxisAngle[math.Quaternion[float64], float64](axis, theta)
	wantQ := mgl64.QuatRotate(theta.Radians().Value, ToVec3[mgl64.Vec3](axis))
	assert.True(t, QuatFrom64(wantQ).Compare(q, 1e-12))

	v := math.NewVector3(0.5, -4.0, 2.0)
	assert.True(t, FromVec3(wantQ.Rotate(ToVec3[mgl64.Vec3](v))).Compare(q.RotateVector(v), 1e-12))
}

func TestEulerMatchesMathGL(t *testing.T) {
	e := math.NewEuler(math.Degrees(20.0), math.Degrees(-50.0), math.Degrees(75.0))
	r := math.EulerToRadians[math.Deg[float64], float64](e)

	q := math.FromEuler[math.Quaternion[float64], float64](e)
	want := mgl64.AnglesToQuat(r.X.Value, r.Y.Value, r.Z.Value, mgl64.XYZ)
	assert.True(t, QuatFrom64(want).Compare(q, 1e-12), "%v != %v", QuatFrom64(want), q)

	m := math.FromEuler[math.Matrix3[float64], float64](e)
	assert.True(t, FromMat4(want.Mat4()).ToMatrix3().Compare(m, 1e-12))
}

func TestQuaternionProductMatchesMathGL(t *testing.T) {
	a := math.FromAngleX[math.Quaternion[float32], float32](math.Degrees[float32](30))
	b := math.FromAngleY[math.Quaternion[float32], float32](math.Degrees[float32](-60))

	want := QuatTo32(a).Mul(QuatTo32(b))
	assert.True(t, QuatFrom32(want).Compare(a.Mul(b), 1e-6))
	assert.Equal(t, a, QuatFrom32(QuatTo32(a)))
}

func TestMatrix4MatchesMathGL(t *testing.T) {
	m := math.NewMatrix4(
		4.0, 1.0, 0.0, 2.0,
		0.5, 3.0, 1.0, 0.0,
		1.0, 0.0, 5.0, 1.0,
		2.0, 1.0, 0.0, 6.0)
	mm := ToMat4[mgl64.Mat4](m)

	assert.InDelta(t, mm.Det(), m.Determinant(), 1e-9)
	inv, ok := m.Inverse()
	require.True(t, ok)
	assert.True(t, FromMat4(mm.Inv()).Compare(inv, 1e-12))

	n := math.NewMatrix4Translation(math.NewVector3(1.0, 2.0, 3.0))
	assert.True(t, FromMat4(mm.Mul4(ToMat4[mgl64.Mat4](n))).Compare(m.Mul(n), 1e-12))
}

func TestLookAtMatchesMathGL(t *testing.T) {
	eye := math.NewPoint3(3.0, 4.0, 5.0)
	center := math.NewPoint3(-1.0, 0.5, 0.0)
	up := math.NewVector3Up[float64]()

	got := math.NewMatrix4LookAt(eye, center, up)
	want := mgl64.LookAtV(
		ToVec3[mgl64.Vec3](eye.ToVector()),
		ToVec3[mgl64.Vec3](center.ToVector()),
		ToVec3[mgl64.Vec3](up))
	assert.True(t, FromMat4(want).Compare(got, 1e-12))
}
