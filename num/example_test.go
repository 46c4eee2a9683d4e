// SPDX-License-Identifier: MIT

package num_test

import (
	"fmt"

	"github.com/katalvlaran/genmath/num"
	"github.com/katalvlaran/genmath/provider"
)

func ExampleSigned() {
	type I16 = num.Signed[int16, provider.Int16]

	a := num.NewSigned[int16, provider.Int16](300)
	b := num.SignedFromInt64[int16, provider.Int16](-7)

	fmt.Println(a.Add(b), a.Div(b), b.Abs(), a.Mul(a))
	fmt.Println(a.Greater(b), a.Equals(I16{}), a.Equals(int16(300)))
	// Output:
	// 293 -42 7 24464
	// true false false
}

func ExampleRational() {
	x := num.RationalFromFloat64[float64, provider.Float64](2)

	fmt.Printf("%.6f %.6f\n", x.Sqrt().Value(), x.Inv().Value())
	// Output: 1.414214 0.500000
}
