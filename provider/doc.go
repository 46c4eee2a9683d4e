// SPDX-License-Identifier: MIT

// Package provider implements the algebra capability bundles for Go's
// primitive numeric types and for decimals.
//
// Providers are zero-sized structs. Use them as type parameters; generic code
// instantiates them with `var p P` and never needs a shared instance.
//
//	Representation          unchecked           checked                 fuzzy
//	uint8..uint64           Uint8..Uint64       CheckedUint8..64        —
//	int8..int64             Int8..Int64         CheckedInt8..64         —
//	float32, float64        Float32, Float64    —                       Fuzzy[T, Tol]
//	decimal.Decimal         Decimal             CheckedDecimal          FuzzyDecimal[Tol]
//	bool                    Bool                —                       —
//
// Overflow policy:
//   - Unchecked integer providers wrap exactly like Go's native arithmetic.
//     Division by zero is Go's runtime panic.
//   - Checked providers panic with *algebra.ArithmeticError (ErrOverflow or
//     ErrDivideByZero) from the capability methods, and return the same error
//     from their Try* counterparts.
//   - Float providers follow IEEE 754: x/0 is ±Inf or NaN.
//
// Fuzzy providers take their tolerance from a zero-sized type implementing
// Tolerance (Tol1e3 … Tol1e12, or your own), so they stay zero-sized:
//
//	type P = provider.Fuzzy[float64, provider.Tol1e6]
//	var p P
//	p.Equal(1.0, 1.0000004) // true
//
// Fuzzy Compare is not transitive; this is inherent to tolerance-based order.
package provider
