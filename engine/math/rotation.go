package math

// Rotation3 is implemented by Matrix3 and Quaternion. Constructors are
// methods on value receivers that ignore the receiver, so the zero value of
// a rotation type works as its factory:
//
//	q := Quaternion[float32]{}.FromAxisAngle(axis, theta)
//
// Generic code should go through the package level functions below.
type Rotation3[R any, T Scalar] interface {
	comparable

	Identity() R
	FromEuler(e Euler[Rad[T]]) R
	FromAngleX(theta Rad[T]) R
	FromAngleY(theta Rad[T]) R
	FromAngleZ(theta Rad[T]) R
	FromAxisAngle(axis Vector3[T], theta Rad[T]) R
	BetweenVectors(a, b Vector3[T]) R
	LookAt(dir, up Vector3[T]) R
	FromMatrix3(m Matrix3[T]) R
	FromQuaternion(q Quaternion[T]) R

	ToMatrix3() Matrix3[T]
	ToQuaternion() Quaternion[T]
	ToEuler() Euler[Rad[T]]

	RotateVector(v Vector3[T]) Vector3[T]
	RotatePoint(p Point3[T]) Point3[T]
	// Concat returns the rotation applying other first, then the receiver.
	Concat(other R) R
	Invert() R
	Compare(other R, tolerance T) bool
}

// Rotation2 is implemented by Matrix2.
type Rotation2[R any, T Scalar] interface {
	comparable

	Identity() R
	FromAngle(theta Rad[T]) R
	BetweenVectors(a, b Vector2[T]) R
	RotateVector(v Vector2[T]) Vector2[T]
	RotatePoint(p Point2[T]) Point2[T]
	Concat(other R) R
	Invert() R
	Compare(other R, tolerance T) bool
}

// IdentityRotation returns the identity of the rotation type R.
func IdentityRotation[R Rotation3[R, T], T Scalar]() R {
	var r R
	return r.Identity()
}

// FromEuler builds a rotation of type R from angles in any unit.
func FromEuler[R Rotation3[R, T], T Scalar, A Angle[A, T]](e Euler[A]) R {
	var r R
	return r.FromEuler(EulerToRadians[A, T](e))
}

// FromAngleX is FromEuler with only a pitch, so both are bit-for-bit equal
// for the same angle.
func FromAngleX[R Rotation3[R, T], T Scalar, A Angle[A, T]](theta A) R {
	var r R
	return r.FromAngleX(theta.Radians())
}

func FromAngleY[R Rotation3[R, T], T Scalar, A Angle[A, T]](theta A) R {
	var r R
	return r.FromAngleY(theta.Radians())
}

func FromAngleZ[R Rotation3[R, T], T Scalar, A Angle[A, T]](theta A) R {
	var r R
	return r.FromAngleZ(theta.Radians())
}

// FromAxisAngle rotates by theta about axis, which must be unit length.
func FromAxisAngle[R Rotation3[R, T], T Scalar, A Angle[A, T]](axis Vector3[T], theta A) R {
	var r R
	return r.FromAxisAngle(axis, theta.Radians())
}

// BetweenVectors returns the shortest arc rotation from a to b.
func BetweenVectors[R Rotation3[R, T], T Scalar](a, b Vector3[T]) R {
	var r R
	return r.BetweenVectors(a, b)
}

// LookAt returns the rotation mapping dir onto +Z and up into the YZ
// plane.
func LookAt[R Rotation3[R, T], T Scalar](dir, up Vector3[T]) R {
	var r R
	return r.LookAt(dir, up)
}

// ConvertRotation converts between rotation representations.
func ConvertRotation[To Rotation3[To, T], T Scalar, From Rotation3[From, T]](from From) To {
	var to To
	if q, ok := any(from).(Quaternion[T]); ok {
		return to.FromQuaternion(q)
	}
	return to.FromMatrix3(from.ToMatrix3())
}

// ToEuler decomposes r into angles of unit A.
func ToEuler[A Angle[A, T], T Scalar, R Rotation3[R, T]](r R) Euler[A] {
	return EulerFromRadians[A, T](r.ToEuler())
}

// Compose returns the rotation applying rotations in order, first to last.
func Compose[R Rotation3[R, T], T Scalar](rotations ...R) R {
	var r R
	out := r.Identity()
	for _, next := range rotations {
		out = next.Concat(out)
	}
	return out
}
