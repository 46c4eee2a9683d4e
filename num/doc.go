// SPDX-License-Identifier: MIT

// Package num provides value wrappers that pair a representation type T with
// a provider P, so generic code can do arithmetic on T without naming the
// provider at every call:
//
//	type I32 = num.Signed[int32, provider.CheckedInt32]
//
//	a := num.NewSigned[int32, provider.CheckedInt32](40)
//	b := a.Add(num.NewSigned[int32, provider.CheckedInt32](2)) // 42
//	a.Less(b)                                                   // true
//
// Go has no operator overloading, so the operators are methods: Add, Sub,
// Mul, Div, Neg, Cmp, Eq, Less, LessEq, Greater, GreaterEq.
//
// Three flavours mirror the top-level bundles:
//
//	Unsigned[T, P algebra.UnsignedMath[T]]
//	Signed[T, P algebra.SignedMath[T]]
//	Rational[T, P algebra.RationalMath[T]]
//
// Every method instantiates P locally and delegates to it; wrappers add no
// error handling of their own. Overflow and division by zero behave exactly as
// the provider defines them (wrap, panic with *algebra.ArithmeticError, or
// IEEE Inf/NaN). Equality, ordering and hashing come from the provider's
// Comparer, so two Rational values over a fuzzy provider can be Eq without
// being bit-identical.
//
// Wrappers are immutable values: every operation returns a new wrapper.
package num
