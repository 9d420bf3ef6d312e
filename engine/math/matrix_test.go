package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// rowMajor4 flattens m row by row, the layout gonum expects.
func rowMajor4(m Matrix4[float64]) []float64 {
	a := m.Transpose().ToArray()
	return a[:]
}

func rowMajor3(m Matrix3[float64]) []float64 {
	a := m.Transpose().ToArray()
	return a[:]
}

func TestMatrix2(t *testing.T) {
	m := NewMatrix2(1.0, 3.0, 2.0, 4.0)

	assert.Equal(t, NewVector2(1.0, 3.0), m.Col(0))
	assert.Equal(t, NewVector2(1.0, 2.0), m.Row(0))
	assert.Equal(t, NewVector2(1.0, 4.0), m.Diagonal())
	assert.Equal(t, 5.0, m.Trace())
	assert.Equal(t, -2.0, m.Determinant())
	assert.Equal(t, NewMatrix2(1.0, 2.0, 3.0, 4.0), m.Transpose())
	assert.Equal(t, NewVector2(5.0, 11.0), m.MulVector(NewVector2(1.0, 2.0)))

	inv, ok := m.Inverse()
	require.True(t, ok)
	assert.Equal(t, NewMatrix2(-2.0, 1.5, 1.0, -0.5), inv)
	assert.True(t, m.Mul(inv).IsIdentity(1e-12))

	_, ok = NewMatrix2(1.0, 2.0, 2.0, 4.0).Inverse()
	assert.False(t, ok)
	assert.False(t, NewMatrix2Zero[float64]().IsInvertible())
}

func TestMatrix2Rotation(t *testing.T) {
	r := NewMatrix2FromAngle(Degrees(90.0).Radians())
	assert.True(t, r.RotateVector(NewVector2(1.0, 0.0)).Compare(NewVector2(0.0, 1.0), 1e-12))
	assert.True(t, r.RotatePoint(NewPoint2(0.0, 1.0)).Compare(NewPoint2(-1.0, 0.0), 1e-12))
	assert.True(t, r.Concat(r.Invert()).IsIdentity(1e-12))

	a := NewVector2(2.0, 0.0)
	b := NewVector2(-1.0, -1.0)
	between := Matrix2[float64]{}.BetweenVectors(a, b)
	assert.True(t, between.RotateVector(a.Normalize()).Compare(b.Normalize(), 1e-12))
}

func TestMatrix3(t *testing.T) {
	m := NewMatrix3(
		2.0, 0.0, 1.0,
		1.0, 3.0, 0.0,
		0.0, 1.0, 4.0)

	assert.Equal(t, NewVector3(2.0, 1.0, 0.0), m.Row(0))
	assert.Equal(t, NewVector3(1.0, 3.0, 0.0), m.Col(1))
	assert.Equal(t, 9.0, m.Trace())
	assert.False(t, m.IsSymmetric(0))
	assert.True(t, m.Add(m.Transpose()).IsSymmetric(0))
	assert.True(t, NewMatrix3FromValue(2.0).IsDiagonal(0))
	assert.Equal(t, NewMatrix3Zero[float64](), m.Sub(m))
	assert.Equal(t, m.MulScalar(2), m.Add(m))

	d := mat.NewDense(3, 3, rowMajor3(m))
	assert.InDelta(t, mat.Det(d), m.Determinant(), 1e-12)

	var want mat.Dense
	require.NoError(t, want.Inverse(d))
	inv, ok := m.Inverse()
	require.True(t, ok)
	assert.InDeltaSlice(t, want.RawMatrix().Data, rowMajor3(inv), 1e-12)
	assert.True(t, m.Mul(inv).IsIdentity(1e-12))
}

func TestMatrix3Singular(t *testing.T) {
	m := NewMatrix3(
		1.0, 2.0, 3.0,
		2.0, 4.0, 6.0,
		0.0, 1.0, 1.0)
	_, ok := m.Inverse()
	assert.False(t, ok)
	assert.False(t, m.IsInvertible())
}

func TestMatrix4Inverse(t *testing.T) {
	m := NewMatrix4(
		4.0, 1.0, 0.0, 2.0,
		0.5, 3.0, 1.0, 0.0,
		1.0, 0.0, 5.0, 1.0,
		2.0, 1.0, 0.0, 6.0)

	d := mat.NewDense(4, 4, rowMajor4(m))
	assert.InDelta(t, mat.Det(d), m.Determinant(), 1e-9)

	var want mat.Dense
	require.NoError(t, want.Inverse(d))
	inv, ok := m.Inverse()
	require.True(t, ok)
	assert.InDeltaSlice(t, want.RawMatrix().Data, rowMajor4(inv), 1e-12)
	assert.True(t, m.Mul(inv).IsIdentity(1e-12))
	assert.True(t, inv.Mul(m).IsIdentity(1e-12))
}

func TestMatrix4Singular(t *testing.T) {
	m := NewMatrix4(
		1.0, 2.0, 3.0, 4.0,
		2.0, 4.0, 6.0, 8.0,
		0.0, 1.0, 0.0, 1.0,
		1.0, 0.0, 1.0, 0.0)
	inv, ok := m.Inverse()
	assert.False(t, ok)
	assert.Equal(t, NewMatrix4Zero[float64](), inv)

	_, ok = NewMatrix4Zero[float32]().Inverse()
	assert.False(t, ok)
}

func TestMatrix4Transforms(t *testing.T) {
	tr := NewMatrix4Translation(NewVector3(1.0, 2.0, 3.0))
	sc := NewMatrix4NonuniformScale(2.0, 3.0, 4.0)
	p := NewPoint3(1.0, 1.0, 1.0)

	assert.Equal(t, NewPoint3(2.0, 3.0, 4.0), tr.TransformPoint(p))
	assert.Equal(t, NewVector3(1.0, 1.0, 1.0), tr.TransformVector(NewVector3(1.0, 1.0, 1.0)))
	assert.Equal(t, NewPoint3(3.0, 5.0, 7.0), tr.Mul(sc).TransformPoint(p))
	assert.Equal(t, NewPoint3(4.0, 9.0, 16.0), sc.Mul(tr).TransformPoint(p))
	assert.Equal(t, NewMatrix4NonuniformScale(2.0, 2.0, 2.0), NewMatrix4Scale(2.0))
	assert.True(t, sc.IsDiagonal(0))
	assert.False(t, tr.IsDiagonal(0))

	inv, ok := tr.Inverse()
	require.True(t, ok)
	assert.True(t, inv.Compare(NewMatrix4Translation(NewVector3(-1.0, -2.0, -3.0)), 1e-12))
}

func TestMatrix4LookAt(t *testing.T) {
	eye := NewPoint3(0.0, 0.0, 5.0)
	view := NewMatrix4LookAt(eye, Origin3[float64](), NewVector3Up[float64]())

	assert.True(t, view.TransformPoint(eye).Compare(Origin3[float64](), 1e-12))
	assert.True(t, view.TransformPoint(Origin3[float64]()).Compare(NewPoint3(0.0, 0.0, -5.0), 1e-12))
	assert.True(t, view.Right().Compare(NewVector3UnitX[float64](), 1e-12))
	assert.True(t, view.Up().Compare(NewVector3UnitY[float64](), 1e-12))
	assert.True(t, view.Forward().Compare(NewVector3Forward[float64](), 1e-12))
}

func TestMatrix4Blocks(t *testing.T) {
	q := Quaternion[float64]{}.FromAngleY(Degrees(30.0).Radians())
	m := NewMatrix4FromQuaternion(q)

	assert.Equal(t, q.ToMatrix3(), m.ToMatrix3())
	assert.Equal(t, NewVector4(0.0, 0.0, 0.0, 1.0), m.Row(3))
	assert.True(t, m.ToQuaternion().Compare(q, 1e-12))
	assert.Equal(t, m, NewMatrix4FromArray(m.ToArray()))
	assert.Equal(t, m.Transpose(), m.Transpose().Transpose().Transpose())
}
