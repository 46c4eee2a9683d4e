// Package genmath is generic arithmetic for Go: write an algorithm once over a
// representation type T and choose its arithmetic by type parameter.
//
// 🚀 What is genmath?
//
//	A zero-overhead abstraction layer that brings together:
//		• Capabilities: one small interface per operation (Adder, Divider, Comparer…)
//		• Bundles: groups, rings and fields composed from the capabilities
//		• Providers: zero-sized structs for bool, 8–64 bit integers, float32/64 and
//		  28-digit decimal, in unchecked, checked and fuzzy (epsilon) flavours
//		• Wrappers: Unsigned, Signed and Rational values with Add/Sub/Cmp/Eq methods
//		• Aggregates: Sum, Average, Max, Min, Range, Variance, Sigma
//		• Geometry: Point and Size over any provider
//
// ✨ Why choose genmath?
//
//   - One algorithm, many number types – int32 today, decimal tomorrow
//   - Overflow is a choice – wrap like Go, or fail with algebra.ErrOverflow
//   - Fuzzy comparison when floats need it, exact when they do not
//
// Packages:
//
//	algebra/   — capability interfaces, bundles, Rounding, ArithmeticError
//	provider/  — concrete providers (Int32, CheckedInt64, Float64, Fuzzy, Decimal…)
//	num/       — value wrappers pairing T with a provider
//	aggregate/ — generic Sum/Average/Max/Min/Range/Variance/Sigma
//	geom/      — Point and Size
//	bench/     — regression dataset, benchmark runner, gonum cross-check
//	cmd/genbench — CLI over bench
//
// Quick example:
//
//	xs := []int32{2, 4, 4, 4, 5, 5, 7, 9}
//	sigma, avg := aggregate.Sigma[provider.CheckedInt32](xs) // 2, 5
//
//	go get github.com/katalvlaran/genmath
package genmath
