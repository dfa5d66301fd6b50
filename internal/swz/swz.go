// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package swz parses swizzle strings.
//
// A swizzle is a non-empty sequence of component names
// drawn from x, y, z and w. The color names r, g, b and a
// are aliases of x, y, z and w, respectively, and are
// translated one character at a time, so they can be
// mixed with the positional names (e.g., "xg" is "xy").
package swz

import (
	"errors"
	"strings"
)

// Max is the number of named components.
const Max = 4

// Prefix is the prefix of the names given to the components
// of vectors that have more than Max of them.
// Such names are not swizzles.
const Prefix = "comp_"

var (
	// ErrSyntax means that a string is not a swizzle.
	ErrSyntax = errors.New("swz: not a swizzle")

	// ErrRange means that a swizzle names a component
	// that the vector does not have.
	ErrRange = errors.New("swz: component out of range")
)

// Index returns the index of the component named by c,
// or -1 if c is not a component name.
func Index(c byte) int {
	switch c {
	case 'x', 'r':
		return 0
	case 'y', 'g':
		return 1
	case 'z', 'b':
		return 2
	case 'w', 'a':
		return 3
	}
	return -1
}

// Name returns the canonical name of the i-th component.
// It panics if i is not in the range [0, Max).
func Name(i int) byte { return "xyzw"[i] }

// Translate replaces color aliases in s with their
// canonical names. Other characters are kept as is.
func Translate(s string) string {
	b := []byte(s)
	for i, c := range b {
		switch c {
		case 'r':
			b[i] = 'x'
		case 'g':
			b[i] = 'y'
		case 'b':
			b[i] = 'z'
		case 'a':
			b[i] = 'w'
		}
	}
	return string(b)
}

// Reserved reports whether s is a name that can never
// be a swizzle: the empty string, positional component
// names and names starting with two underscores.
func Reserved(s string) bool {
	return s == "" || strings.HasPrefix(s, Prefix) || strings.HasPrefix(s, "__")
}

// Parse parses s as a swizzle of a vector with n named
// components. It returns, for each character of s, the
// index of the component it names.
// The error is ErrSyntax if s is not a swizzle and
// ErrRange if s names a component whose index is not
// less than n.
func Parse(s string, n int) ([]int, error) {
	if Reserved(s) {
		return nil, ErrSyntax
	}
	t := Translate(s)
	if !strings.ContainsAny(t, "xyzw") {
		return nil, ErrSyntax
	}
	idx := make([]int, len(t))
	for i := 0; i < len(t); i++ {
		switch j := Index(t[i]); {
		case j < 0:
			return nil, ErrSyntax
		case j >= n:
			return nil, ErrRange
		default:
			idx[i] = j
		}
	}
	return idx, nil
}
