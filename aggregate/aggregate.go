// SPDX-License-Identifier: MIT

package aggregate

// Sum folds values left to right starting at P.Zero.
//
// Complexity: O(n) time, O(1) space.
func Sum[P Summer[T], T any](values []T) T {
	var p P
	acc := p.Zero()
	for _, v := range values {
		acc = p.Add(acc, v)
	}

	return acc
}

// Average returns Sum(values) / P.FromUint64(len(values)).
//
// The count goes through the provider's conversion, so for integer providers
// the result is truncated toward zero. An empty slice divides by zero with the
// provider's own semantics.
func Average[P Averager[T], T any](values []T) T {
	var p P

	return p.Div(Sum[P](values), p.FromUint64(uint64(len(values))))
}

// Max returns the greatest element according to P.Compare.
//
// Implementation:
//   - Stage 1: Seed the running maximum with P.MinValue.
//   - Stage 2: Replace it only when an element compares strictly greater, so
//     among equal elements the earliest one is returned.
//
// An empty slice returns P.MinValue.
func Max[P Ranker[T], T any](values []T) T {
	var p P
	best := p.MinValue()
	for _, v := range values {
		if p.Compare(v, best) > 0 {
			best = v
		}
	}

	return best
}

// Min returns the least element according to P.Compare; ties keep the earliest.
// An empty slice returns P.MaxValue.
func Min[P Ranker[T], T any](values []T) T {
	var p P
	best := p.MaxValue()
	for _, v := range values {
		if p.Compare(v, best) < 0 {
			best = v
		}
	}

	return best
}

// Range returns Min(values) and Max(values) computed in a single pass.
func Range[P Ranker[T], T any](values []T) (lo, hi T) {
	var p P
	lo, hi = p.MaxValue(), p.MinValue()
	for _, v := range values {
		if p.Compare(v, lo) < 0 {
			lo = v
		}
		if p.Compare(v, hi) > 0 {
			hi = v
		}
	}

	return lo, hi
}

// Variance returns the population variance of values together with the
// average it was measured against.
//
// Implementation:
//   - Stage 1: avg = Average(values).
//   - Stage 2: acc = Σ Sqr(v − avg), folded left to right from P.Zero.
//   - Stage 3: variance = acc / P.FromUint64(n).
//
// No Bessel correction is applied. With an integer provider every step
// truncates, so the result is the integer variance around the truncated mean.
//
// Complexity: O(n) time (two passes), O(1) space.
func Variance[P Deviator[T], T any](values []T) (variance, average T) {
	var p P
	n := p.FromUint64(uint64(len(values)))

	// Stage 1 (Mean)
	average = p.Div(Sum[P](values), n)

	// Stage 2 (Squared deviations)
	acc := p.Zero()
	for _, v := range values {
		acc = p.Add(acc, p.Sqr(p.Sub(v, average)))
	}

	// Stage 3 (Normalize)
	return p.Div(acc, n), average
}

// Sigma returns the population standard deviation Sqrt(Variance(values)) and
// the average it was measured against.
func Sigma[P Deviator[T], T any](values []T) (sigma, average T) {
	var p P
	variance, average := Variance[P](values)

	return p.Sqrt(variance), average
}
