// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package linear implements swizzled vectors and the
// vector math commonly used in graphics code.
//
// A Vec of up to four components names them x, y, z and w
// (or r, g, b and a), and any combination of these names
// can be used to read or write a vector's components:
//
//	v := linear.Vec3[float64](1, 2, 3)
//	u, _ := v.Swizzle("zzx") // [3 3 1]
//	v.SetVec("xy", u.Must("yz")) // v is now [3 1 3]
//
// Vectors with more than four components exist too, but
// their components are positional (comp_0, comp_1, ...)
// and cannot be swizzled.
package linear

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/ikz87/swizzle/internal/swz"
)

// Number is the set of component types.
type Number interface {
	constraints.Integer | constraints.Float
}

var (
	// ErrType means that a value is not of the expected type
	// (e.g., a non-numeric component).
	ErrType = errors.New("linear: invalid type")

	// ErrArity means that the number of components does not
	// match what the operation requires.
	ErrArity = errors.New("linear: component count mismatch")

	// ErrAttribute means that a name is not a valid swizzle
	// of the vector.
	ErrAttribute = errors.New("linear: no such component")

	// ErrZeroDiv means that an operation would divide by zero.
	ErrZeroDiv = errors.New("linear: division by zero")
)

// Kind is the kind of a Vec.
type Kind uint8

// Kinds.
const (
	// Fixed vectors have between one and four components
	// named x, y, z and w.
	Fixed Kind = iota
	// Dynamic vectors have more than four components
	// named comp_0, comp_1, etc.
	// They cannot be swizzled.
	Dynamic
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Fixed:
		return "Fixed"
	case Dynamic:
		return "Dynamic"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Vec is a vector of T.
// The number of components is fixed at construction.
//
// Vec is a value type: assigning a Vec to another
// variable yields an independent copy. Only the Set
// methods mutate a Vec, and they fail on Dynamic ones.
type Vec[T Number] struct {
	n int
	c [swz.Max]T
	// Components of Dynamic vectors.
	// Never written after construction.
	d []T
}

// Vec2 returns the vector [x y].
func Vec2[T Number](x, y T) Vec[T] { return Vec[T]{n: 2, c: [swz.Max]T{x, y}} }

// Vec3 returns the vector [x y z].
func Vec3[T Number](x, y, z T) Vec[T] { return Vec[T]{n: 3, c: [swz.Max]T{x, y, z}} }

// Vec4 returns the vector [x y z w].
func Vec4[T Number](x, y, z, w T) Vec[T] { return Vec[T]{n: 4, c: [swz.Max]T{x, y, z, w}} }

// Zero returns the zero vector of n components.
// It panics if n is negative.
func Zero[T Number](n int) Vec[T] { return FromSlice(make([]T, n)) }

// Up returns the vector [0 1 0].
// Every call returns a new value.
func Up[T Number]() Vec[T] { return Vec3[T](0, 1, 0) }

// FromSlice returns a vector whose components are the
// elements of s, in order. The vector is Fixed if s has
// at most four elements and Dynamic otherwise.
// s is copied.
func FromSlice[T Number](s []T) (v Vec[T]) {
	v.n = len(s)
	if v.n > swz.Max {
		v.d = make([]T, v.n)
		copy(v.d, s)
	} else {
		copy(v.c[:], s)
	}
	return
}

// New creates a vector of n components.
//
// Each argument is either a scalar of any numeric type,
// which is converted to T, or a Vec[T] (or *Vec[T]), whose
// components are appended in order. A sole argument can
// also be a slice or array holding exactly n scalars.
//
// The error is ErrArity if the arguments do not provide
// exactly n components and ErrType if one of them is
// not numeric.
func New[T Number](n int, args ...any) (Vec[T], error) {
	if n < 1 {
		return Vec[T]{}, fmt.Errorf("%w: cannot create vector of %d components", ErrArity, n)
	}
	if len(args) == 1 {
		if s, ok, err := sequence[T](args[0]); ok {
			if err != nil {
				return Vec[T]{}, err
			}
			if len(s) != n {
				return Vec[T]{}, fmt.Errorf("%w: sequence has %d elements, expected %d", ErrArity, len(s), n)
			}
			return FromSlice(s), nil
		}
	}
	s := make([]T, 0, n)
	for i, a := range args {
		switch a := a.(type) {
		case Vec[T]:
			s = a.appendTo(s)
		case *Vec[T]:
			if a == nil {
				return Vec[T]{}, fmt.Errorf("%w: argument %d is a nil vector", ErrType, i)
			}
			s = a.appendTo(s)
		default:
			x, ok := scalar[T](a)
			if !ok {
				return Vec[T]{}, fmt.Errorf("%w: argument %d has type %T", ErrType, i, a)
			}
			s = append(s, x)
		}
	}
	if len(s) != n {
		return Vec[T]{}, fmt.Errorf("%w: have %d components, expected %d", ErrArity, len(s), n)
	}
	return FromSlice(s), nil
}

// sequence converts a to a slice of T.
// ok is false if a is neither a slice nor an array.
func sequence[T Number](a any) (s []T, ok bool, err error) {
	switch a := a.(type) {
	case []T:
		return a, true, nil
	case []any:
		s = make([]T, len(a))
		for i := range a {
			x, ok := scalar[T](a[i])
			if !ok {
				return nil, true, fmt.Errorf("%w: element %d has type %T", ErrType, i, a[i])
			}
			s[i] = x
		}
		return s, true, nil
	}
	rv := reflect.ValueOf(a)
	if k := rv.Kind(); k != reflect.Slice && k != reflect.Array {
		return nil, false, nil
	}
	s = make([]T, rv.Len())
	for i := range s {
		e := rv.Index(i).Interface()
		x, ok := scalar[T](e)
		if !ok {
			return nil, true, fmt.Errorf("%w: element %d has type %T", ErrType, i, e)
		}
		s[i] = x
	}
	return s, true, nil
}

// scalar converts a to T if a is of a numeric type.
func scalar[T Number](a any) (T, bool) {
	switch a := a.(type) {
	case T:
		return a, true
	case int:
		return T(a), true
	case int8:
		return T(a), true
	case int16:
		return T(a), true
	case int32:
		return T(a), true
	case int64:
		return T(a), true
	case uint:
		return T(a), true
	case uint8:
		return T(a), true
	case uint16:
		return T(a), true
	case uint32:
		return T(a), true
	case uint64:
		return T(a), true
	case uintptr:
		return T(a), true
	case float32:
		return T(a), true
	case float64:
		return T(a), true
	}
	return 0, false
}

// Convert converts the components of v to U.
// The kind of the vector is preserved.
func Convert[U, T Number](v Vec[T]) (u Vec[U]) {
	u.n = v.n
	if v.d != nil {
		u.d = make([]U, v.n)
		for i, x := range v.d {
			u.d[i] = U(x)
		}
		return
	}
	for i := 0; i < v.n; i++ {
		u.c[i] = U(v.c[i])
	}
	return
}

// Len returns the number of components in v.
func (v Vec[T]) Len() int { return v.n }

// Kind returns the kind of v.
func (v Vec[T]) Kind() Kind {
	if v.d != nil {
		return Dynamic
	}
	return Fixed
}

// At returns the i-th component of v.
// It panics if i is out of range.
func (v Vec[T]) At(i int) T {
	if i < 0 || i >= v.n {
		panic("linear: component index out of range")
	}
	if v.d != nil {
		return v.d[i]
	}
	return v.c[i]
}

// Slice returns the components of v in order.
// The slice is not shared with v.
func (v Vec[T]) Slice() []T { return v.appendTo(make([]T, 0, v.n)) }

func (v Vec[T]) appendTo(s []T) []T {
	if v.d != nil {
		return append(s, v.d...)
	}
	return append(s, v.c[:v.n]...)
}

// Names returns the names of v's components in order.
func (v Vec[T]) Names() []string {
	names := make([]string, v.n)
	for i := range names {
		if v.d != nil {
			names[i] = swz.Prefix + strconv.Itoa(i)
		} else {
			names[i] = string(swz.Name(i))
		}
	}
	return names
}

// Equal reports whether v and w have the same components.
func (v Vec[T]) Equal(w Vec[T]) bool {
	if v.n != w.n {
		return false
	}
	for i := 0; i < v.n; i++ {
		if v.At(i) != w.At(i) {
			return false
		}
	}
	return true
}

// ApproxEqual reports whether v and w have the same number
// of components and no pair differs by more than eps.
func (v Vec[T]) ApproxEqual(w Vec[T], eps float64) bool {
	if v.n != w.n {
		return false
	}
	for i := 0; i < v.n; i++ {
		if math.Abs(float64(v.At(i))-float64(w.At(i))) > eps {
			return false
		}
	}
	return true
}

// apply returns a vector of the same kind as v whose i-th
// component is f(i, v.At(i)).
func (v Vec[T]) apply(f func(i int, x T) T) Vec[T] {
	u := Vec[T]{n: v.n}
	if v.d != nil {
		u.d = make([]T, v.n)
		for i, x := range v.d {
			u.d[i] = f(i, x)
		}
		return u
	}
	for i := 0; i < v.n; i++ {
		u.c[i] = f(i, v.c[i])
	}
	return u
}

func arityError(n, m int) error {
	return fmt.Errorf("%w: %d and %d components", ErrArity, n, m)
}

// Add returns v + w.
func (v Vec[T]) Add(w Vec[T]) (Vec[T], error) {
	if v.n != w.n {
		return Vec[T]{}, arityError(v.n, w.n)
	}
	return v.apply(func(i int, x T) T { return x + w.At(i) }), nil
}

// Sub returns v - w.
func (v Vec[T]) Sub(w Vec[T]) (Vec[T], error) {
	if v.n != w.n {
		return Vec[T]{}, arityError(v.n, w.n)
	}
	return v.apply(func(i int, x T) T { return x - w.At(i) }), nil
}

// Scale returns s ⋅ v.
func (v Vec[T]) Scale(s T) Vec[T] {
	return v.apply(func(_ int, x T) T { return x * s })
}

// Div returns v / s.
// Integer division by zero panics, as it does for T.
func (v Vec[T]) Div(s T) Vec[T] {
	return v.apply(func(_ int, x T) T { return x / s })
}

// FloorDiv returns v / s with each component rounded
// toward negative infinity.
// Integer division by zero panics, as it does for T.
func (v Vec[T]) FloorDiv(s T) Vec[T] {
	return v.apply(func(_ int, x T) T { return floorDiv(x, s) })
}

func floorDiv[T Number](a, b T) T {
	if isFloat[T]() {
		return T(math.Floor(float64(a) / float64(b)))
	}
	q := a / b
	if r := a - q*b; r != 0 && (r < 0) != (b < 0) {
		q--
	}
	return q
}

// isFloat reports whether T is a floating-point type.
func isFloat[T Number]() bool {
	var h T = 1
	h /= 2
	return h != 0
}

// RoundNone makes Text render unrounded values.
const RoundNone = -1

// String implements fmt.Stringer.
// Values are not rounded.
func (v Vec[T]) String() string { return fmt.Sprint(v.Slice()) }

// Text renders v with every component rounded to the
// given number of decimal digits (half to even).
// If digits is negative (e.g., RoundNone), it is
// equivalent to v.String().
func (v Vec[T]) Text(digits int) string {
	if digits < 0 {
		return v.String()
	}
	s := make([]float64, v.n)
	for i := range s {
		// Round on the decimal text: scaling by 10^digits
		// overflows for large components.
		d := strconv.FormatFloat(float64(v.At(i)), 'f', digits, 64)
		s[i], _ = strconv.ParseFloat(d, 64)
	}
	return fmt.Sprint(s)
}
