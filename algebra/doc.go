// SPDX-License-Identifier: MIT

// Package algebra defines the numeric capability interfaces that generic
// algorithms in genmath are written against.
//
// What is in here?
//
//	Small orthogonal contracts, one operation cluster each:
//	  • Adder, Subtracter, Negater, Multiplier, Divider, Inverter
//	  • ZeroProvider, OneProvider, Rooter (Sqr/Sqrt)
//	  • Limits (MinValue/MaxValue), EpsilonProvider
//	  • Comparer (Compare/Equal/Hash/Abs/Min/Max)
//	  • BitwiseMath (And/Or/Xor/Not)
//	  • Converter (from uint64/int64/float64, to float64)
//	  • Trigonometry, Exponential
//
//	and the bundles composed from them, following the algebraic structures:
//
//	  AdditionGroup ─┐
//	                 ├─ Ring ──────────────┐
//	  Multiplier+One ┘                     ├─ SignedMath
//	  IntegerMath ─────── UnsignedMath ────┘
//	  AdditionGroup + MultiplicationGroup = Field ── RationalMath
//
// A provider is a zero-sized struct implementing one of the bundles for one
// representation type. Generic code takes the provider as a type parameter and
// instantiates it locally:
//
//	func Sum[T any, P interface {
//		algebra.Adder[T]
//		algebra.ZeroProvider[T]
//	}](xs []T) T {
//		var p P
//		acc := p.Zero()
//		for _, x := range xs {
//			acc = p.Add(acc, x)
//		}
//		return acc
//	}
//
// Errors:
//
//	Methods returning a bare T cannot return an error, so checked providers
//	report overflow by panicking with *ArithmeticError (the same way Go traps on
//	integer division by zero). Use Catch to turn such a panic into an error, or
//	the Try* methods of checked providers. See errors.go.
//
// Concurrency: every contract here is a pure function of its arguments.
package algebra
