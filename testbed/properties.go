package testbed

import (
	"golang.org/x/exp/rand"

	"github.com/spaghettifunk/rotor/engine/math"
)

// property is one law checked over random samples. check returns the
// error of a single sample; the law holds when every error is at most the
// tolerance of the precision.
type property struct {
	name  string
	check func(r *rand.Rand) float64
}

// maxDiff returns the largest component difference between a and b.
func maxDiff[T math.Scalar](a, b []T) float64 {
	worst := 0.0
	for i := range a {
		d := float64(a[i] - b[i])
		if d < 0 {
			d = -d
		}
		if d != d {
			return d
		}
		if d > worst {
			worst = d
		}
	}
	return worst
}

func vec3Diff[T math.Scalar](a, b math.Vector3[T]) float64 {
	x, y := a.ToArray(), b.ToArray()
	return maxDiff(x[:], y[:])
}

func mat3Diff[T math.Scalar](a, b math.Matrix3[T]) float64 {
	x, y := a.ToArray(), b.ToArray()
	return maxDiff(x[:], y[:])
}

func mat4Diff[T math.Scalar](a, b math.Matrix4[T]) float64 {
	x, y := a.ToArray(), b.ToArray()
	return maxDiff(x[:], y[:])
}

// quatDiff ignores the overall sign, since q and -q are the same rotation.
func quatDiff[T math.Scalar](a, b math.Quaternion[T]) float64 {
	x, y, z := a.ToArray(), b.ToArray(), b.Neg().ToArray()
	return min(maxDiff(x[:], y[:]), maxDiff(x[:], z[:]))
}

func boolErr(ok bool) float64 {
	if ok {
		return 0
	}
	return 1
}

// properties returns every law for the scalar T.
func properties[T math.Scalar]() []property {
	return []property{
		{
			name: "euler_quaternion_matrix_roundtrip",
			check: func(r *rand.Rand) float64 {
				e := math.RandomEuler[T](r)
				q := math.FromEuler[math.Quaternion[T], T](e)
				back := q.ToMatrix3().ToQuaternion()
				return quatDiff(q, back)
			},
		},
		{
			name: "euler_matrix_matches_quaternion",
			check: func(r *rand.Rand) float64 {
				e := math.RandomEuler[T](r)
				m := math.FromEuler[math.Matrix3[T], T](e)
				q := math.FromEuler[math.Quaternion[T], T](e)
				return mat3Diff(m, q.ToMatrix3())
			},
		},
		{
			name: "composition_consistency",
			check: func(r *rand.Rand) float64 {
				a, b := math.RandomQuaternion[T](r), math.RandomQuaternion[T](r)
				ma, mb := a.ToMatrix3(), b.ToMatrix3()
				v := math.RandomVector3InRange[T](r, -10, 10)

				want := b.RotateVector(a.RotateVector(v))
				return max(
					vec3Diff(b.Concat(a).RotateVector(v), want),
					vec3Diff(mb.Concat(ma).RotateVector(v), want),
					vec3Diff(mb.RotateVector(ma.RotateVector(v)), want))
			},
		},
		{
			name: "inverse_consistency",
			check: func(r *rand.Rand) float64 {
				q := math.RandomQuaternion[T](r)
				m := q.ToMatrix3()
				v := math.RandomVector3InRange[T](r, -10, 10)
				return max(
					vec3Diff(q.Invert().RotateVector(q.RotateVector(v)), v),
					vec3Diff(m.Invert().RotateVector(m.RotateVector(v)), v))
			},
		},
		{
			name: "axis_angle_consistency",
			check: func(r *rand.Rand) float64 {
				axis := math.RandomUnitVector3[T](r)
				theta := math.RandomRad[T](r)
				m := math.FromAxisAngle[math.Matrix3[T], T](axis, theta)
				q := math.FromAxisAngle[math.Quaternion[T], T](axis, theta)
				return mat3Diff(m, q.ToMatrix3())
			},
		},
		{
			name: "euler_decomposition",
			check: func(r *rand.Rand) float64 {
				m := math.RandomMatrix3[T](r)
				e := m.ToEuler()
				return mat3Diff(math.FromEuler[math.Matrix3[T], T](e), m)
			},
		},
		{
			name: "between_vectors",
			check: func(r *rand.Rand) float64 {
				a, b := math.RandomUnitVector3[T](r), math.RandomUnitVector3[T](r)
				q := math.BetweenVectors[math.Quaternion[T], T](a, b)
				return vec3Diff(q.RotateVector(a), b)
			},
		},
		{
			name: "matrix_inverse_law",
			check: func(r *rand.Rand) float64 {
				// Diagonal dominance keeps the samples well conditioned.
				m := math.RandomMatrix4InRange[T](r, -1, 1).Add(math.NewMatrix4FromValue[T](4))
				inv, ok := m.Inverse()
				if !ok {
					return 1
				}
				m3 := m.ToMatrix3()
				inv3, ok := m3.Inverse()
				if !ok {
					return 1
				}
				return max(
					mat4Diff(m.Mul(inv), math.NewMatrix4Identity[T]()),
					mat3Diff(m3.Mul(inv3), math.NewMatrix3Identity[T]()))
			},
		},
		{
			name: "singular_matrix_has_no_inverse",
			check: func(r *rand.Rand) float64 {
				m := math.RandomMatrix4InRange[T](r, -1, 1)
				m.Y = math.Vector4[T]{}
				_, ok4 := m.Inverse()
				m3 := m.ToMatrix3()
				_, ok3 := m3.Inverse()
				return boolErr(!ok4 && !ok3)
			},
		},
		{
			name: "angle_closure",
			check: func(r *rand.Rand) float64 {
				x := math.RandomInRange[T](r, -720, 720)
				y := math.RandomInRange[T](r, -720, 720)
				got := math.Degrees(x).Add(math.Degrees(y)).Radians()
				want := math.Radians(x * math.K_DEG2RAD_MULTIPLIER).Add(math.Radians(y * math.K_DEG2RAD_MULTIPLIER))
				return maxDiff([]T{got.Value}, []T{want.Value})
			},
		},
		{
			name: "slerp_endpoints",
			check: func(r *rand.Rand) float64 {
				q, p := math.RandomQuaternion[T](r), math.RandomQuaternion[T](r)
				t := math.RandomInRange[T](r, 0, 1)
				same := boolErr(q.Slerp(q, t) == q)
				return max(same, quatDiff(q.Slerp(p, 0), q), quatDiff(q.Slerp(p, 1), p))
			},
		},
	}
}
