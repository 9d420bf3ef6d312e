package math

// Arithmetic is the operator set shared by vectors, matrices, quaternions
// and angles: a linear space over T with equality. Generic code constrained
// by it is resolved at compile time.
type Arithmetic[A any, T Scalar] interface {
	comparable
	Add(other A) A
	Sub(other A) A
	Neg() A
	MulScalar(scalar T) A
	DivScalar(scalar T) A
	Compare(other A, tolerance T) bool
}

// ElementWise is implemented by the fixed-size containers (vectors and
// points) whose components can be folded or combined one by one.
type ElementWise[A any, T Scalar] interface {
	Sum() T
	Product() T
	MinElement() T
	MaxElement() T
	Min(other A) A
	Max(other A) A
	MulElements(other A) A
}

// Affine is the operator set of points. A point can be displaced by a vector
// and two points differ by a vector, but points never add together.
type Affine[P any, V any, T Scalar] interface {
	comparable
	AddVector(v V) P
	SubVector(v V) P
	Sub(other P) V
	MulScalar(scalar T) P
	DivScalar(scalar T) P
	Compare(other P, tolerance T) bool
}

// Lerp linearly interpolates between a and b.
func Lerp[A Arithmetic[A, T], T Scalar](a, b A, t T) A {
	return a.Add(b.Sub(a).MulScalar(t))
}

// Sum adds all values together. The zero value of A is the additive identity
// for every type in this package.
func Sum[A Arithmetic[A, T], T Scalar](values ...A) A {
	var total A
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// Mean returns the arithmetic mean of values, or the zero value when empty.
func Mean[A Arithmetic[A, T], T Scalar](values ...A) A {
	var zero A
	if len(values) == 0 {
		return zero
	}
	return Sum[A, T](values...).DivScalar(T(len(values)))
}

// ApproxEqualAll reports whether a[i] and b[i] are within tolerance for all i.
func ApproxEqualAll[A Arithmetic[A, T], T Scalar](a, b []A, tolerance T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Compare(b[i], tolerance) {
			return false
		}
	}
	return true
}

// Midpoint returns the point halfway between p and q.
func Midpoint[P Affine[P, V, T], V Arithmetic[V, T], T Scalar](p, q P) P {
	return p.AddVector(q.Sub(p).MulScalar(0.5))
}

// Centroid returns the barycenter of points, computed as displacements from
// the first point so that points are never summed directly.
func Centroid[P Affine[P, V, T], V Arithmetic[V, T], T Scalar](points ...P) P {
	var zero P
	if len(points) == 0 {
		return zero
	}
	origin := points[0]
	var offset V
	for _, p := range points[1:] {
		offset = offset.Add(p.Sub(origin))
	}
	return origin.AddVector(offset.DivScalar(T(len(points))))
}
