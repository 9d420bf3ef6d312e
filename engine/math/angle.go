package math

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// Rad is an angle in radians.
type Rad[T Scalar] struct {
	Value T
}

// Deg is an angle in degrees.
type Deg[T Scalar] struct {
	Value T
}

// Radians wraps v, which is already expressed in radians.
func Radians[T Scalar](v T) Rad[T] {
	return Rad[T]{Value: v}
}

// Degrees wraps v, which is already expressed in degrees.
func Degrees[T Scalar](v T) Deg[T] {
	return Deg[T]{Value: v}
}

// Angle is the capability shared by both angle units. Angles form a linear
// space over T but are not closed under multiplication: there is no
// angle times angle, only angle times scalar and angle over angle (Ratio).
type Angle[A any, T Scalar] interface {
	Arithmetic[A, T]
	Unitless() T
	Radians() Rad[T]
	Degrees() Deg[T]
	// FromRadians converts r into the unit of the receiver's type. The
	// receiver's value is ignored.
	FromRadians(r Rad[T]) A
	FullTurn() A
	Rem(other A) A
	Ratio(other A) T
	Normalize() A
	NormalizeSigned() A
	Less(other A) bool
	Sin() T
	Cos() T
	Tan() T
	SinCos() (T, T)
}

// normalizeTurn wraps v into [0, full).
func normalizeTurn[T Scalar](v, full T) T {
	rem := kmod(v, full)
	if rem < 0 {
		rem += full
	}
	// -tiny + full may round up to exactly full.
	if rem >= full {
		rem = 0
	}
	return rem
}

// normalizeSignedTurn wraps v into (-full/2, full/2].
func normalizeSignedTurn[T Scalar](v, full T) T {
	n := normalizeTurn(v, full)
	if n > full/2 {
		n -= full
	}
	return n
}

// ------------------------------------------
// Radians
// ------------------------------------------

func (r Rad[T]) Unitless() T                 { return r.Value }
func (r Rad[T]) Radians() Rad[T]             { return r }
func (r Rad[T]) FromRadians(o Rad[T]) Rad[T] { return o }
func (r Rad[T]) FullTurn() Rad[T]            { return Rad[T]{T(K_PI_2)} }

func (r Rad[T]) Degrees() Deg[T] {
	return Deg[T]{r.Value * T(K_RAD2DEG_MULTIPLIER)}
}

func (r Rad[T]) Add(other Rad[T]) Rad[T]   { return Rad[T]{r.Value + other.Value} }
func (r Rad[T]) Sub(other Rad[T]) Rad[T]   { return Rad[T]{r.Value - other.Value} }
func (r Rad[T]) Neg() Rad[T]               { return Rad[T]{-r.Value} }
func (r Rad[T]) MulScalar(scalar T) Rad[T] { return Rad[T]{r.Value * scalar} }
func (r Rad[T]) DivScalar(scalar T) Rad[T] { return Rad[T]{r.Value / scalar} }
func (r Rad[T]) Rem(other Rad[T]) Rad[T]   { return Rad[T]{kmod(r.Value, other.Value)} }
func (r Rad[T]) Ratio(other Rad[T]) T      { return r.Value / other.Value }
func (r Rad[T]) Less(other Rad[T]) bool    { return r.Value < other.Value }
func (r Rad[T]) Cmp(other Rad[T]) int      { return cmp.Compare(r.Value, other.Value) }
func (r Rad[T]) Normalize() Rad[T]         { return Rad[T]{normalizeTurn(r.Value, T(K_PI_2))} }
func (r Rad[T]) NormalizeSigned() Rad[T]   { return Rad[T]{normalizeSignedTurn(r.Value, T(K_PI_2))} }
func (r Rad[T]) Sin() T                    { return ksin(r.Value) }
func (r Rad[T]) Cos() T                    { return kcos(r.Value) }
func (r Rad[T]) Tan() T                    { return ktan(r.Value) }
func (r Rad[T]) SinCos() (T, T)            { return ksincos(r.Value) }

func (r Rad[T]) Compare(other Rad[T], tolerance T) bool {
	return ApproxEqual(r.Value, other.Value, tolerance)
}

// Bisect returns the angle halfway between r and other along the shorter
// arc, normalized.
func (r Rad[T]) Bisect(other Rad[T]) Rad[T] {
	return r.Add(other.Sub(r).NormalizeSigned().MulScalar(0.5)).Normalize()
}

func (r Rad[T]) String() string {
	return fmt.Sprintf("%v rad", r.Value)
}

// ------------------------------------------
// Degrees
// ------------------------------------------

func (d Deg[T]) Unitless() T                 { return d.Value }
func (d Deg[T]) Degrees() Deg[T]             { return d }
func (d Deg[T]) FromRadians(o Rad[T]) Deg[T] { return o.Degrees() }
func (d Deg[T]) FullTurn() Deg[T]            { return Deg[T]{360} }

func (d Deg[T]) Radians() Rad[T] {
	return Rad[T]{d.Value * T(K_DEG2RAD_MULTIPLIER)}
}

func (d Deg[T]) Add(other Deg[T]) Deg[T]   { return Deg[T]{d.Value + other.Value} }
func (d Deg[T]) Sub(other Deg[T]) Deg[T]   { return Deg[T]{d.Value - other.Value} }
func (d Deg[T]) Neg() Deg[T]               { return Deg[T]{-d.Value} }
func (d Deg[T]) MulScalar(scalar T) Deg[T] { return Deg[T]{d.Value * scalar} }
func (d Deg[T]) DivScalar(scalar T) Deg[T] { return Deg[T]{d.Value / scalar} }
func (d Deg[T]) Rem(other Deg[T]) Deg[T]   { return Deg[T]{kmod(d.Value, other.Value)} }
func (d Deg[T]) Ratio(other Deg[T]) T      { return d.Value / other.Value }
func (d Deg[T]) Less(other Deg[T]) bool    { return d.Value < other.Value }
func (d Deg[T]) Cmp(other Deg[T]) int      { return cmp.Compare(d.Value, other.Value) }
func (d Deg[T]) Normalize() Deg[T]         { return Deg[T]{normalizeTurn(d.Value, 360)} }
func (d Deg[T]) NormalizeSigned() Deg[T]   { return Deg[T]{normalizeSignedTurn(d.Value, 360)} }
func (d Deg[T]) Sin() T                    { return d.Radians().Sin() }
func (d Deg[T]) Cos() T                    { return d.Radians().Cos() }
func (d Deg[T]) Tan() T                    { return d.Radians().Tan() }
func (d Deg[T]) SinCos() (T, T)            { return d.Radians().SinCos() }

func (d Deg[T]) Compare(other Deg[T], tolerance T) bool {
	return ApproxEqual(d.Value, other.Value, tolerance)
}

// Bisect returns the angle halfway between d and other along the shorter
// arc, normalized.
func (d Deg[T]) Bisect(other Deg[T]) Deg[T] {
	return d.Add(other.Sub(d).NormalizeSigned().MulScalar(0.5)).Normalize()
}

func (d Deg[T]) String() string {
	return fmt.Sprintf("%v°", d.Value)
}

// ------------------------------------------
// Unit-agnostic helpers
// ------------------------------------------

func Asin[A Angle[A, T], T Scalar](x T) A {
	var a A
	return a.FromRadians(Rad[T]{kasin(x)})
}

func Acos[A Angle[A, T], T Scalar](x T) A {
	var a A
	return a.FromRadians(Rad[T]{kacos(x)})
}

func Atan[A Angle[A, T], T Scalar](x T) A {
	var a A
	return a.FromRadians(Rad[T]{katan(x)})
}

func Atan2[A Angle[A, T], T Scalar](y, x T) A {
	var a A
	return a.FromRadians(Rad[T]{katan2(y, x)})
}

// TurnDiv returns a full turn divided into n equal parts.
func TurnDiv[A Angle[A, T], T Scalar](n T) A {
	var a A
	return a.FullTurn().DivScalar(n)
}

func TurnDiv2[A Angle[A, T], T Scalar]() A { return TurnDiv[A, T](2) }
func TurnDiv3[A Angle[A, T], T Scalar]() A { return TurnDiv[A, T](3) }
func TurnDiv4[A Angle[A, T], T Scalar]() A { return TurnDiv[A, T](4) }
func TurnDiv6[A Angle[A, T], T Scalar]() A { return TurnDiv[A, T](6) }

// ------------------------------------------
// Text encoding
// ------------------------------------------

// parseAngle reads "<value>[deg|°|rad]" and returns the value in radians.
// Without a suffix the value is taken to be in the default unit.
func parseAngle[T Scalar](text []byte, defaultIsDegrees bool) (Rad[T], error) {
	s := strings.TrimSpace(string(text))
	isDegrees := defaultIsDegrees
	switch {
	case strings.HasSuffix(s, "deg"):
		s, isDegrees = strings.TrimSuffix(s, "deg"), true
	case strings.HasSuffix(s, "°"):
		s, isDegrees = strings.TrimSuffix(s, "°"), true
	case strings.HasSuffix(s, "rad"):
		s, isDegrees = strings.TrimSuffix(s, "rad"), false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return Rad[T]{}, fmt.Errorf("invalid angle %q: %w", string(text), err)
	}
	if isDegrees {
		return Deg[T]{T(v)}.Radians(), nil
	}
	return Rad[T]{T(v)}, nil
}

func (r Rad[T]) MarshalText() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(r.Value), 'g', -1, 64) + "rad"), nil
}

func (r *Rad[T]) UnmarshalText(text []byte) error {
	v, err := parseAngle[T](text, false)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func (d Deg[T]) MarshalText() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(d.Value), 'g', -1, 64) + "deg"), nil
}

func (d *Deg[T]) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	// Keep the literal degree value when no conversion is needed.
	if !strings.HasSuffix(s, "rad") {
		s = strings.TrimSuffix(strings.TrimSuffix(s, "deg"), "°")
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("invalid angle %q: %w", string(text), err)
		}
		d.Value = T(v)
		return nil
	}
	r, err := parseAngle[T](text, true)
	if err != nil {
		return err
	}
	*d = r.Degrees()
	return nil
}
