// SPDX-License-Identifier: MIT

package aggregate_test

import (
	"fmt"

	"github.com/katalvlaran/genmath/aggregate"
	"github.com/katalvlaran/genmath/provider"
)

// ExampleSigma shows that integer providers truncate at every step while the
// float provider keeps the fraction.
func ExampleSigma() {
	ints := []int32{2, 4, 4, 4, 5, 5, 7, 9, 1}
	floats := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	isigma, iavg := aggregate.Sigma[provider.Int32](ints)
	fsigma, favg := aggregate.Sigma[provider.Float64](floats)

	fmt.Println(iavg, isigma)
	fmt.Println(favg, fsigma)
	// Output:
	// 4 2
	// 5 2
}

// ExampleRange scans once for both extremes.
func ExampleRange() {
	lo, hi := aggregate.Range[provider.Uint16]([]uint16{300, 7, 65535, 42})
	fmt.Println(lo, hi)
	// Output: 7 65535
}
