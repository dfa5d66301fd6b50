// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/ikz87/swizzle/linear"
)

func Example() {
	a := linear.Vec3[float64](1, 2, 3)
	b := linear.Vec3[float64](3, 4, 5)

	u, _ := a.Must("xy").Add(b.Must("zz"))
	fmt.Println(u)

	a.SetVec("zyx", linear.Vec3[float64](3, 2, 1))
	fmt.Println(a)

	c, _ := linear.New[float64](4, b.Must("xy"), 6, 7)
	fmt.Println(c.Must("abgr"))

	// Output:
	// [6 7]
	// [1 2 3]
	// [7 6 4 3]
}

func ExampleVec_Get() {
	v := linear.Vec3[float64](1, 2, 3)

	x, _ := v.Get("x")
	fmt.Println(x)

	long, _ := v.Get("xxyyzz")
	w := long.(linear.Vec[float64])
	fmt.Println(w, w.Kind())

	_, err := w.Get("xy")
	fmt.Println(errors.Is(err, linear.ErrAttribute))

	// Output:
	// 1
	// [1 1 2 2 3 3] Dynamic
	// true
}

func ExampleVec_Set() {
	v := linear.Vec4[int](1, 2, 3, 4)

	v.Set("a", 0)
	v.Set("rg", linear.Vec2(9, 8))
	fmt.Println(v)

	err := v.Set("xyz", linear.Vec2(0, 0))
	fmt.Println(errors.Is(err, linear.ErrArity), v)

	// Output:
	// [9 8 3 0]
	// true [9 8 3 0]
}

func ExampleVec_Text() {
	v := linear.Vec3(1.23456, 2, math.Pi)
	fmt.Println(v.Text(linear.RoundNone))
	fmt.Println(v.Text(2))

	// Output:
	// [1.23456 2 3.141592653589793]
	// [1.23 2 3.14]
}

func ExampleOrthonormalBasis() {
	n, x, y, _ := linear.OrthonormalBasis(linear.Vec3[float64](0, 0, 2))
	fmt.Println(n, x, y)

	// Output:
	// [0 0 1] [-1 0 0] [0 -1 0]
}
