package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type quat64 = Quaternion[float64]

func TestDecomposedTransform(t *testing.T) {
	d := Decomposed[quat64, float64]{
		Scale: 2,
		Rot:   FromAngleZ[quat64, float64](Degrees(90.0)),
		Disp:  NewVector3(1.0, 0.0, 0.0),
	}

	assert.True(t, d.TransformPoint(NewPoint3(1.0, 0.0, 0.0)).Compare(NewPoint3(1.0, 2.0, 0.0), 1e-12))
	assert.True(t, d.TransformVector(NewVector3(1.0, 0.0, 0.0)).Compare(NewVector3(0.0, 2.0, 0.0), 1e-12))

	m := d.ToMatrix4()
	p := NewPoint3(0.5, -1.0, 3.0)
	assert.True(t, m.TransformPoint(p).Compare(d.TransformPoint(p), 1e-12))
}

func TestDecomposedConcatAndInvert(t *testing.T) {
	a := Decomposed[quat64, float64]{
		Scale: 2,
		Rot:   FromAngleX[quat64, float64](Degrees(30.0)),
		Disp:  NewVector3(1.0, 2.0, 3.0),
	}
	b := Decomposed[quat64, float64]{
		Scale: 0.5,
		Rot:   FromAngleY[quat64, float64](Degrees(-70.0)),
		Disp:  NewVector3(-4.0, 0.0, 1.0),
	}
	p := NewPoint3(0.3, 0.7, -1.1)

	ab := a.Concat(b)
	assert.True(t, ab.TransformPoint(p).Compare(a.TransformPoint(b.TransformPoint(p)), 1e-12))
	assert.True(t, ab.ToMatrix4().Compare(a.ToMatrix4().Mul(b.ToMatrix4()), 1e-12))

	inv, ok := a.Invert()
	require.True(t, ok)
	assert.True(t, inv.TransformPoint(a.TransformPoint(p)).Compare(p, 1e-12))
	assert.True(t, a.Concat(inv).Compare(NewDecomposedIdentity[quat64, float64](), 1e-12))

	_, ok = Decomposed[quat64, float64]{Rot: a.Rot}.Invert()
	assert.False(t, ok)
}

func TestDecomposedInvertUsesSingularEpsilon(t *testing.T) {
	d := Decomposed[quat64, float64]{Scale: 1e-3, Rot: IdentityRotation[quat64, float64]()}
	_, ok := d.Invert()
	assert.True(t, ok)

	withTolerances(t, Tolerances{Epsilon: 1e-2, SlerpThreshold: DefaultSlerpThreshold})
	_, ok = d.Invert()
	assert.False(t, ok)
}

func TestDecomposedMatrixRotation(t *testing.T) {
	d := Decomposed[Matrix3[float32], float32]{
		Scale: 3,
		Rot:   FromAngleZ[Matrix3[float32], float32](Degrees[float32](180)),
		Disp:  NewVector3[float32](0, 0, 1),
	}
	got := d.TransformPoint(NewPoint3[float32](1, 0, 0))
	assert.True(t, got.Compare(NewPoint3[float32](-3, 0, 1), 1e-5), got)
}

func TestDecomposedLookAt(t *testing.T) {
	eye := NewPoint3(1.0, 2.0, 3.0)
	center := NewPoint3(4.0, 2.0, 3.0)
	view := NewDecomposedLookAt[quat64, float64](eye, center, NewVector3Up[float64]())

	assert.True(t, view.TransformPoint(eye).Compare(Origin3[float64](), 1e-12))
	// The target lies straight ahead on +Z, at its distance from the eye.
	assert.True(t, view.TransformPoint(center).Compare(NewPoint3(0.0, 0.0, 3.0), 1e-12))
}

func TestTransformHierarchy(t *testing.T) {
	parent := NewTransform[quat64, float64]()
	parent.SetPosition(NewVector3(10.0, 0.0, 0.0))
	parent.SetRotation(FromAngleZ[quat64, float64](Degrees(90.0)))

	child := NewTransformFrom(NewVector3(1.0, 0.0, 0.0), NewQuaternionIdentity[float64](), NewVector3FromValue(2.0))
	child.Parent = parent

	origin := child.World().TransformPoint(Origin3[float64]())
	assert.True(t, origin.Compare(NewPoint3(10.0, 1.0, 0.0), 1e-12), origin)

	// The child's scale applies before its translation.
	tip := child.World().TransformPoint(NewPoint3(1.0, 0.0, 0.0))
	assert.True(t, tip.Compare(NewPoint3(10.0, 3.0, 0.0), 1e-12), tip)

	parent.Translate(NewVector3(0.0, 0.0, 5.0))
	origin = child.World().TransformPoint(Origin3[float64]())
	assert.True(t, origin.Compare(NewPoint3(10.0, 1.0, 5.0), 1e-12), origin)
}

func TestTransformLocal(t *testing.T) {
	tr := NewTransform[Matrix3[float64], float64]()
	assert.True(t, tr.Local().IsIdentity(0))

	tr.Rotate(FromAngleX[Matrix3[float64], float64](Degrees(90.0)))
	tr.Rotate(FromAngleZ[Matrix3[float64], float64](Degrees(90.0)))
	// Rotate works in the local frame: Z first, then X.
	v := tr.Local().TransformVector(NewVector3(1.0, 0.0, 0.0))
	assert.True(t, v.Compare(NewVector3(0.0, 0.0, 1.0), 1e-12), v)

	tr.ScaleBy(NewVector3(1.0, 2.0, 3.0))
	assert.Equal(t, NewVector3(1.0, 2.0, 3.0), tr.Scale())
	tr.SetScale(NewVector3One[float64]())
	assert.Equal(t, NewVector3One[float64](), tr.Scale())

	var none *Transform[Matrix3[float64], float64]
	assert.True(t, none.World().IsIdentity(0))
}
