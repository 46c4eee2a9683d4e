// SPDX-License-Identifier: MIT

package bench

import "github.com/katalvlaran/genmath/algebra"

// Dataset returns n elements where element i is i*10/n converted through
// P.FromUint64. For n = 1,000,000 that is 100,000 copies of each of 0..9.
// n <= 0 yields an empty slice.
func Dataset[P algebra.Converter[T], T any](n int) []T {
	if n <= 0 {
		return []T{}
	}
	var p P
	out := make([]T, n)
	for i := range out {
		out[i] = p.FromUint64(uint64(bucket(i, n)))
	}

	return out
}

// bucket is i*10/n without overflowing int for large n.
func bucket(i, n int) int {
	return int(int64(i) * 10 / int64(n))
}
