// SPDX-License-Identifier: MIT

// Package aggregate computes Sum, Average, Max, Min, Range, Variance and Sigma
// over an in-memory slice of any representation type T, with the arithmetic
// supplied by a provider P.
//
// The provider is the first type parameter, so T is inferred from the slice:
//
//	xs := []int32{1, 2, 3, 4}
//	aggregate.Sum[provider.Int32](xs)              // 10
//	aggregate.Average[provider.Int32](xs)          // 2 (integer division)
//	sigma, avg := aggregate.Sigma[provider.Float64](fs)
//
// Each function asks only for the capabilities it uses (see the constraint
// interfaces in constraints.go), so a provider that cannot divide can still
// Sum, and one without arithmetic can still Max.
//
// Error model:
//   - Functions add no error handling of their own. Whatever the provider's
//     operations do on overflow or division by zero is what the caller sees:
//     wraparound for unchecked integers, a panic with *algebra.ArithmeticError
//     for checked providers (use algebra.Catch to turn it into an error),
//     ±Inf/NaN for floats.
//   - Average, Variance and Sigma of an empty slice divide by zero.
//   - Max of an empty slice returns P.MinValue; Min returns P.MaxValue.
//
// Determinism:
//   - One left-to-right pass per reduction; results depend only on the input
//     order and the provider.
package aggregate
