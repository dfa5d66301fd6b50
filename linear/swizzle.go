// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"fmt"

	"github.com/ikz87/swizzle/internal/swz"
)

// parse parses s as a swizzle of v.
// Dynamic vectors have no named components, so any
// swizzle fails on them.
func (v Vec[T]) parse(s string) ([]int, error) {
	n := v.n
	if v.d != nil {
		n = 0
	}
	idx, err := swz.Parse(s, n)
	if err != nil {
		return nil, fmt.Errorf("%w %q (%w)", ErrAttribute, s, err)
	}
	return idx, nil
}

// gather returns the vector whose i-th component is the
// idx[i]-th component of v.
// The result is Dynamic when idx has more than four elements.
func (v Vec[T]) gather(idx []int) (u Vec[T]) {
	u.n = len(idx)
	dst := u.c[:]
	if u.n > swz.Max {
		u.d = make([]T, u.n)
		dst = u.d
	}
	for i, j := range idx {
		dst[i] = v.c[j]
	}
	return
}

// Get reads the components of v named by the swizzle s.
// It returns a T if s has a single character, and a
// Vec[T] otherwise.
//
// The error is ErrAttribute if s is not a valid swizzle
// of v. This is always the case for Dynamic vectors.
func (v Vec[T]) Get(s string) (any, error) {
	idx, err := v.parse(s)
	if err != nil {
		return nil, err
	}
	if len(idx) == 1 {
		return v.c[idx[0]], nil
	}
	return v.gather(idx), nil
}

// Scalar is like Get for single-character swizzles.
// The error is ErrArity if s has more than one character.
func (v Vec[T]) Scalar(s string) (T, error) {
	idx, err := v.parse(s)
	if err != nil {
		return 0, err
	}
	if len(idx) != 1 {
		return 0, fmt.Errorf("%w: swizzle %q does not name a scalar", ErrArity, s)
	}
	return v.c[idx[0]], nil
}

// Swizzle is like Get for swizzles of two or more
// characters. The returned vector is a new value.
// The error is ErrArity if s has a single character.
func (v Vec[T]) Swizzle(s string) (Vec[T], error) {
	idx, err := v.parse(s)
	if err != nil {
		return Vec[T]{}, err
	}
	if len(idx) == 1 {
		return Vec[T]{}, fmt.Errorf("%w: swizzle %q names a scalar", ErrArity, s)
	}
	return v.gather(idx), nil
}

// Must is like Swizzle but panics if s is not valid.
func (v Vec[T]) Must(s string) Vec[T] {
	u, err := v.Swizzle(s)
	if err != nil {
		panic(err)
	}
	return u
}

// Set writes x to the components of v named by the
// swizzle s.
// If s has a single character, x must be a scalar of
// any numeric type. Otherwise, x must be a Vec[T] (or
// *Vec[T]) with as many components as s has characters,
// and its components are written in order (a repeated
// character keeps the last value written to it).
//
// The error is ErrAttribute if s is not a valid swizzle
// of v, ErrType if x is not of the expected type and
// ErrArity if x has the wrong number of components.
// v is not modified when Set fails.
func (v *Vec[T]) Set(s string, x any) error {
	idx, err := v.parse(s)
	if err != nil {
		return err
	}
	if len(idx) == 1 {
		y, ok := scalar[T](x)
		if !ok {
			return fmt.Errorf("%w: cannot assign %T to %q", ErrType, x, s)
		}
		v.c[idx[0]] = y
		return nil
	}
	switch x := x.(type) {
	case Vec[T]:
		return v.store(s, idx, x)
	case *Vec[T]:
		if x != nil {
			return v.store(s, idx, *x)
		}
	}
	return fmt.Errorf("%w: cannot assign %T to %q", ErrType, x, s)
}

// SetScalar is like Set for single-character swizzles.
// The error is ErrType if s has more than one character.
func (v *Vec[T]) SetScalar(s string, x T) error {
	idx, err := v.parse(s)
	if err != nil {
		return err
	}
	if len(idx) != 1 {
		return fmt.Errorf("%w: cannot assign scalar to %q", ErrType, s)
	}
	v.c[idx[0]] = x
	return nil
}

// SetVec is like Set for swizzles of two or more
// characters. The error is ErrType if s has a single
// character.
func (v *Vec[T]) SetVec(s string, w Vec[T]) error {
	idx, err := v.parse(s)
	if err != nil {
		return err
	}
	if len(idx) == 1 {
		return fmt.Errorf("%w: cannot assign vector to %q", ErrType, s)
	}
	return v.store(s, idx, w)
}

// store writes w's components to the components of v
// at idx. w is a copy, so it may be v itself.
func (v *Vec[T]) store(s string, idx []int, w Vec[T]) error {
	if w.n != len(idx) {
		return fmt.Errorf("%w: swizzle %q has %d components, vector has %d", ErrArity, s, len(idx), w.n)
	}
	for i, j := range idx {
		v.c[j] = w.At(i)
	}
	return nil
}
