// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// need checks that every vector in vs has n components.
func need[T Number](n int, vs ...Vec[T]) error {
	for _, v := range vs {
		if v.n != n {
			return fmt.Errorf("%w: need %d components, have %d", ErrArity, n, v.n)
		}
	}
	return nil
}

func dot[T Number](v, w Vec[T]) (d T) {
	for i := 0; i < v.n; i++ {
		d += v.At(i) * w.At(i)
	}
	return
}

// Dot returns v ⋅ w.
// The error is ErrArity if v and w differ in length.
func Dot[T Number](v, w Vec[T]) (T, error) {
	if v.n != w.n {
		return 0, arityError(v.n, w.n)
	}
	return dot(v, w), nil
}

// Len returns the length of v.
func Len[T constraints.Float](v Vec[T]) T {
	return T(math.Sqrt(float64(dot(v, v))))
}

// Norm returns v normalized.
// The zero vector is returned unchanged.
func Norm[T constraints.Float](v Vec[T]) Vec[T] {
	l := Len(v)
	if l == 0 {
		return v
	}
	return v.Div(l)
}

// Distance returns the length of v - w.
func Distance[T constraints.Float](v, w Vec[T]) (T, error) {
	u, err := v.Sub(w)
	if err != nil {
		return 0, err
	}
	return Len(u), nil
}

// Project returns the projection of v onto w.
// The error is ErrZeroDiv if w is the zero vector.
func Project[T constraints.Float](v, w Vec[T]) (Vec[T], error) {
	vw, err := Dot(v, w)
	if err != nil {
		return Vec[T]{}, err
	}
	ww := dot(w, w)
	if ww == 0 {
		return Vec[T]{}, fmt.Errorf("%w: projection onto zero vector", ErrZeroDiv)
	}
	return w.Scale(vw).Div(ww), nil
}

// AngleBetween returns the angle between v and w, in
// radians. It is zero if either vector has zero length.
func AngleBetween[T constraints.Float](v, w Vec[T]) (T, error) {
	if v.n != w.n {
		return 0, arityError(v.n, w.n)
	}
	if Len(v)*Len(w) == 0 {
		return 0, nil
	}
	// Rounding can push the cosine out of [-1, 1].
	c := max(-1, min(1, dot(Norm(v), Norm(w))))
	return T(math.Acos(float64(c))), nil
}

// Angle returns the angle of the 2D vector v relative
// to the x axis, in radians.
func Angle[T constraints.Float](v Vec[T]) (T, error) {
	if err := need(2, v); err != nil {
		return 0, err
	}
	return T(math.Atan2(float64(v.At(1)), float64(v.At(0)))), nil
}

// Rotate rotates the 2D vector v by angle radians.
func Rotate[T constraints.Float](v Vec[T], angle T) (Vec[T], error) {
	if err := need(2, v); err != nil {
		return Vec[T]{}, err
	}
	var m M2[T]
	m.Rotate(angle)
	return m.MulV(v), nil
}

func cross[T Number](v, w Vec[T]) Vec[T] {
	return Vec3(
		v.c[1]*w.c[2]-v.c[2]*w.c[1],
		v.c[2]*w.c[0]-v.c[0]*w.c[2],
		v.c[0]*w.c[1]-v.c[1]*w.c[0],
	)
}

// Cross returns v × w.
// v and w must be 3D vectors.
func Cross[T Number](v, w Vec[T]) (Vec[T], error) {
	if err := need(3, v, w); err != nil {
		return Vec[T]{}, err
	}
	return cross(v, w), nil
}

// rotate3 rotates the 3D vector v using the rotation
// that f makes.
func rotate3[T constraints.Float](v Vec[T], f func(*M3[T], T), angle T) (Vec[T], error) {
	if err := need(3, v); err != nil {
		return Vec[T]{}, err
	}
	var m M3[T]
	f(&m, angle)
	return m.MulV(v), nil
}

// RotateX rotates the 3D vector v by angle radians
// around the x axis.
func RotateX[T constraints.Float](v Vec[T], angle T) (Vec[T], error) {
	return rotate3(v, (*M3[T]).RotateX, angle)
}

// RotateY rotates the 3D vector v by angle radians
// around the y axis.
func RotateY[T constraints.Float](v Vec[T], angle T) (Vec[T], error) {
	return rotate3(v, (*M3[T]).RotateY, angle)
}

// RotateZ rotates the 3D vector v by angle radians
// around the z axis.
func RotateZ[T constraints.Float](v Vec[T], angle T) (Vec[T], error) {
	return rotate3(v, (*M3[T]).RotateZ, angle)
}

// hyp returns the normalized 2D vector whose x is the
// length of v's projection onto the xz plane and whose
// y is v's y.
func hyp[T constraints.Float](v Vec[T]) Vec[T] {
	return Norm(Vec2(Len(v.Must("xz")), v.c[1]))
}

// AzimuthElevation returns the azimuth and elevation
// angles, in radians, between the 3D vectors v and w.
// The azimuth is measured on the xz plane and the
// elevation relative to it.
func AzimuthElevation[T constraints.Float](v, w Vec[T]) (azimuth, elevation T, err error) {
	if err = need(3, v, w); err != nil {
		return
	}
	a, _ := AngleBetween(v.Must("xz"), w.Must("xz"))
	e, _ := AngleBetween(hyp(v), hyp(w))
	return -a, e, nil
}

// RotateAzimuthElevation rotates the 3D vector v by the
// given elevation and then by the given azimuth, in
// radians. The azimuth is relative to the x axis.
func RotateAzimuthElevation[T constraints.Float](v Vec[T], azimuth, elevation T) (Vec[T], error) {
	if err := need(3, v); err != nil {
		return Vec[T]{}, err
	}
	xz := v.Must("xz")
	e, _ := Rotate(Vec2(Len(xz), v.c[1]), elevation)
	u := Vec3(e.c[0], e.c[1], 0)
	a, _ := AngleBetween(xz, Vec2[T](1, 0))
	r, _ := Rotate(u.Must("xz"), a+azimuth)
	if err := u.SetVec("xz", r); err != nil {
		return Vec[T]{}, err
	}
	return u, nil
}

// OrthonormalBasis is like OrthonormalBasisRef
// using Up as the reference vector.
func OrthonormalBasis[T constraints.Float](v Vec[T]) (n, x, y Vec[T], err error) {
	return OrthonormalBasisRef(v, Up[T]())
}

// OrthonormalBasisRef returns v normalized and two unit
// vectors orthogonal to it and to each other.
// x is perpendicular to both v and ref. If v is colinear
// with ref, the components of ref are rotated (zxy) to
// form the reference instead.
func OrthonormalBasisRef[T constraints.Float](v, ref Vec[T]) (n, x, y Vec[T], err error) {
	if err = need(3, v, ref); err != nil {
		return
	}
	n = Norm(v)
	if d := dot(n, ref); d == 1 || d == -1 {
		ref = ref.Must("zxy")
	}
	x = Norm(cross(n, ref))
	y = Norm(cross(n, x))
	return
}
