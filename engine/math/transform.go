package math

// Decomposed is a similarity transform: a uniform scale, then a rotation,
// then a displacement.
type Decomposed[R Rotation3[R, T], T Scalar] struct {
	Scale T
	Rot   R
	Disp  Vector3[T]
}

func NewDecomposedIdentity[R Rotation3[R, T], T Scalar]() Decomposed[R, T] {
	var r R
	return Decomposed[R, T]{Scale: 1, Rot: r.Identity()}
}

// NewDecomposedLookAt returns the view transform of an eye at eye looking
// at center.
func NewDecomposedLookAt[R Rotation3[R, T], T Scalar](eye, center Point3[T], up Vector3[T]) Decomposed[R, T] {
	var r R
	rot := r.LookAt(center.Sub(eye), up)
	return Decomposed[R, T]{
		Scale: 1,
		Rot:   rot,
		Disp:  rot.RotateVector(eye.ToVector().Neg()),
	}
}

// TransformVector scales and rotates v. The displacement does not apply
// to vectors.
func (d Decomposed[R, T]) TransformVector(v Vector3[T]) Vector3[T] {
	return d.Rot.RotateVector(v.MulScalar(d.Scale))
}

func (d Decomposed[R, T]) TransformPoint(p Point3[T]) Point3[T] {
	return d.Rot.RotatePoint(p.MulScalar(d.Scale)).AddVector(d.Disp)
}

// Concat returns the transform applying other first, then d.
func (d Decomposed[R, T]) Concat(other Decomposed[R, T]) Decomposed[R, T] {
	return Decomposed[R, T]{
		Scale: d.Scale * other.Scale,
		Rot:   d.Rot.Concat(other.Rot),
		Disp:  d.Rot.RotateVector(other.Disp.MulScalar(d.Scale)).Add(d.Disp),
	}
}

// Invert returns the inverse transform, or false when the scale is within
// the singular epsilon of zero.
func (d Decomposed[R, T]) Invert() (Decomposed[R, T], bool) {
	if kabs(d.Scale) <= singularEpsilon[T]() {
		return Decomposed[R, T]{}, false
	}
	s := 1 / d.Scale
	r := d.Rot.Invert()
	return Decomposed[R, T]{
		Scale: s,
		Rot:   r,
		Disp:  r.RotateVector(d.Disp).MulScalar(-s),
	}, true
}

func (d Decomposed[R, T]) ToMatrix4() Matrix4[T] {
	m := NewMatrix4FromMatrix3(d.Rot.ToMatrix3().MulScalar(d.Scale))
	m.W = d.Disp.Extend(1)
	return m
}

func (d Decomposed[R, T]) Compare(other Decomposed[R, T], tolerance T) bool {
	return ApproxEqual(d.Scale, other.Scale, tolerance) &&
		d.Rot.Compare(other.Rot, tolerance) &&
		d.Disp.Compare(other.Disp, tolerance)
}

/**
 * @brief Represents the transform of an object in the world.
 * Transforms can have a parent whose own transform is then
 * taken into account. NOTE: The properties of this should not
 * be edited directly, but done via the methods below to ensure
 * proper matrix generation.
 */
type Transform[R Rotation3[R, T], T Scalar] struct {
	/** @brief The position relative to the parent. */
	position Vector3[T]
	/** @brief The rotation relative to the parent. */
	rotation R
	/** @brief The per-axis scale. */
	scale Vector3[T]
	/**
	 * @brief Indicates if the position, rotation or scale have changed,
	 * indicating that the local matrix needs to be recalculated.
	 */
	isDirty bool
	/** @brief The local transformation matrix. */
	local Matrix4[T]
	/** @brief A parent transform if one is assigned. Can also be nil. */
	Parent *Transform[R, T]
}

func NewTransform[R Rotation3[R, T], T Scalar]() *Transform[R, T] {
	var r R
	return NewTransformFrom(NewVector3Zero[T](), r.Identity(), NewVector3One[T]())
}

func NewTransformFrom[R Rotation3[R, T], T Scalar](position Vector3[T], rotation R, scale Vector3[T]) *Transform[R, T] {
	return &Transform[R, T]{
		position: position,
		rotation: rotation,
		scale:    scale,
		isDirty:  true,
		local:    NewMatrix4Identity[T](),
	}
}

func (t *Transform[R, T]) Position() Vector3[T] { return t.position }
func (t *Transform[R, T]) Rotation() R          { return t.rotation }
func (t *Transform[R, T]) Scale() Vector3[T]    { return t.scale }

func (t *Transform[R, T]) SetPosition(position Vector3[T]) {
	t.position = position
	t.isDirty = true
}

func (t *Transform[R, T]) Translate(translation Vector3[T]) {
	t.position = t.position.Add(translation)
	t.isDirty = true
}

func (t *Transform[R, T]) SetRotation(rotation R) {
	t.rotation = rotation
	t.isDirty = true
}

// Rotate applies rotation in the local frame, before the current rotation.
func (t *Transform[R, T]) Rotate(rotation R) {
	t.rotation = t.rotation.Concat(rotation)
	t.isDirty = true
}

func (t *Transform[R, T]) SetScale(scale Vector3[T]) {
	t.scale = scale
	t.isDirty = true
}

func (t *Transform[R, T]) ScaleBy(scale Vector3[T]) {
	t.scale = t.scale.Mul(scale)
	t.isDirty = true
}

// Local returns translation * rotation * scale, rebuilt only after a change.
func (t *Transform[R, T]) Local() Matrix4[T] {
	if t == nil {
		return NewMatrix4Identity[T]()
	}
	if t.isDirty {
		tr := NewMatrix4Translation(t.position)
		r := NewMatrix4FromMatrix3(t.rotation.ToMatrix3())
		s := NewMatrix4NonuniformScale(t.scale.X, t.scale.Y, t.scale.Z)
		t.local = tr.Mul(r).Mul(s)
		t.isDirty = false
	}
	return t.local
}

// World returns the local matrix composed with every ancestor's.
func (t *Transform[R, T]) World() Matrix4[T] {
	if t == nil {
		return NewMatrix4Identity[T]()
	}
	l := t.Local()
	if t.Parent != nil {
		return t.Parent.World().Mul(l)
	}
	return l
}
