// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"

	"golang.org/x/exp/constraints"
)

// M2 is a column-major 2x2 matrix of T.
type M2[T constraints.Float] [2][2]T

// Rotate makes m a rotation of angle radians.
func (m *M2[T]) Rotate(angle T) {
	s, c := math.Sincos(float64(angle))
	*m = M2[T]{
		{T(c), T(s)},
		{T(-s), T(c)},
	}
}

// MulV returns m ⋅ v.
// v must have two components.
func (m *M2[T]) MulV(v Vec[T]) Vec[T] {
	x, y := v.At(0), v.At(1)
	return Vec2(m[0][0]*x+m[1][0]*y, m[0][1]*x+m[1][1]*y)
}

// M3 is a column-major 3x3 matrix of T.
type M3[T constraints.Float] [3][3]T

// RotateX makes m a rotation of angle radians
// around the x axis.
func (m *M3[T]) RotateX(angle T) {
	s, c := math.Sincos(float64(angle))
	*m = M3[T]{
		{1, 0, 0},
		{0, T(c), T(s)},
		{0, T(-s), T(c)},
	}
}

// RotateY makes m a rotation of angle radians
// around the y axis.
func (m *M3[T]) RotateY(angle T) {
	s, c := math.Sincos(float64(angle))
	*m = M3[T]{
		{T(c), 0, T(-s)},
		{0, 1, 0},
		{T(s), 0, T(c)},
	}
}

// RotateZ makes m a rotation of angle radians
// around the z axis.
func (m *M3[T]) RotateZ(angle T) {
	s, c := math.Sincos(float64(angle))
	*m = M3[T]{
		{T(c), T(s), 0},
		{T(-s), T(c), 0},
		{0, 0, 1},
	}
}

// MulV returns m ⋅ v.
// v must have three components.
func (m *M3[T]) MulV(v Vec[T]) Vec[T] {
	var u [3]T
	for j := range u {
		for k := range m {
			u[j] += m[k][j] * v.At(k)
		}
	}
	return Vec3(u[0], u[1], u[2])
}
