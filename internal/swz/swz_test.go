// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package swz

import (
	"errors"
	"slices"
	"testing"
)

func TestIndex(t *testing.T) {
	for _, x := range [...]struct {
		c byte
		i int
	}{
		{'x', 0}, {'y', 1}, {'z', 2}, {'w', 3},
		{'r', 0}, {'g', 1}, {'b', 2}, {'a', 3},
		{'X', -1}, {'q', -1}, {'_', -1}, {'0', -1},
	} {
		if i := Index(x.c); i != x.i {
			t.Fatalf("Index(%q):\nhave %d\nwant %d", x.c, i, x.i)
		}
	}
	for i := 0; i < Max; i++ {
		if j := Index(Name(i)); j != i {
			t.Fatalf("Index(Name(%d)):\nhave %d\nwant %d", i, j, i)
		}
	}
}

func TestTranslate(t *testing.T) {
	for _, x := range [...][2]string{
		{"rgba", "xyzw"},
		{"xg", "xy"},
		{"abgr", "wzyx"},
		{"xyzw", "xyzw"},
		{"rq", "xq"},
		{"", ""},
	} {
		if s := Translate(x[0]); s != x[1] {
			t.Fatalf("Translate(%q):\nhave %q\nwant %q", x[0], s, x[1])
		}
	}
}

func TestReserved(t *testing.T) {
	for _, x := range [...]struct {
		s string
		r bool
	}{
		{"", true},
		{"comp_0", true},
		{"comp_12", true},
		{"__x", true},
		{"x", false},
		{"comp", false},
		{"_x", false},
	} {
		if r := Reserved(x.s); r != x.r {
			t.Fatalf("Reserved(%q):\nhave %t\nwant %t", x.s, r, x.r)
		}
	}
}

func TestParse(t *testing.T) {
	for _, x := range [...]struct {
		s   string
		n   int
		idx []int
	}{
		{"x", 2, []int{0}},
		{"xx", 2, []int{0, 0}},
		{"zyx", 3, []int{2, 1, 0}},
		{"rgba", 4, []int{0, 1, 2, 3}},
		{"xg", 2, []int{0, 1}},
		{"wzyxw", 4, []int{3, 2, 1, 0, 3}},
		{"xxyyzz", 3, []int{0, 0, 1, 1, 2, 2}},
	} {
		idx, err := Parse(x.s, x.n)
		if err != nil {
			t.Fatalf("Parse(%q, %d):\nhave %v\nwant nil", x.s, x.n, err)
		}
		if !slices.Equal(idx, x.idx) {
			t.Fatalf("Parse(%q, %d):\nhave %v\nwant %v", x.s, x.n, idx, x.idx)
		}
	}

	for _, x := range [...]struct {
		s   string
		n   int
		err error
	}{
		{"", 4, ErrSyntax},
		{"comp_0", 4, ErrSyntax},
		{"__len__", 4, ErrSyntax},
		{"size", 4, ErrSyntax},
		{"q", 4, ErrSyntax},
		{"xq", 4, ErrSyntax},
		{"xY", 4, ErrSyntax},
		{"z", 2, ErrRange},
		{"xyw", 3, ErrRange},
		{"a", 3, ErrRange},
		{"x", 0, ErrRange},
	} {
		idx, err := Parse(x.s, x.n)
		if !errors.Is(err, x.err) {
			t.Fatalf("Parse(%q, %d):\nhave %v\nwant %v", x.s, x.n, err, x.err)
		}
		if idx != nil {
			t.Fatalf("Parse(%q, %d):\nhave %v\nwant nil", x.s, x.n, idx)
		}
	}
}
