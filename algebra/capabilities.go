// SPDX-License-Identifier: MIT
// Package algebra: minimal capability interfaces.
//
// Each interface names the smallest operation cluster that generic code may
// depend on. They carry no state; T is the representation type.

package algebra

// Adder adds two values.
type Adder[T any] interface {
	Add(a, b T) T
}

// Subtracter subtracts b from a.
type Subtracter[T any] interface {
	Sub(a, b T) T
}

// Negater returns the additive inverse.
type Negater[T any] interface {
	Neg(a T) T
}

// Multiplier multiplies two values.
type Multiplier[T any] interface {
	Mul(a, b T) T
}

// Divider divides a by b. Integer providers truncate toward zero.
type Divider[T any] interface {
	Div(a, b T) T
}

// Inverter returns the multiplicative inverse (one / a).
type Inverter[T any] interface {
	Inv(a T) T
}

// ZeroProvider exposes the additive neutral element.
type ZeroProvider[T any] interface {
	Zero() T
}

// OneProvider exposes the multiplicative neutral element.
type OneProvider[T any] interface {
	One() T
}

// Rooter exposes square and square root.
//
// For integer representations Sqrt goes through float64 and truncates; it is a
// convenience and not guaranteed bit-exact for 64-bit inputs.
type Rooter[T any] interface {
	Sqr(a T) T
	Sqrt(a T) T
}

// Limits exposes the representable range.
type Limits[T any] interface {
	MinValue() T
	MaxValue() T
}

// EpsilonProvider exposes the smallest difference the provider treats as
// significant. Integer providers return One.
type EpsilonProvider[T any] interface {
	Epsilon() T
}

// Comparer bundles ordering, equality, hashing, absolute value, min and max.
// An ordered type needs all of them together.
//
// Compare returns -1, 0 or +1. Equal(a, b) implies Hash(a) == Hash(b).
type Comparer[T any] interface {
	Compare(a, b T) int
	Equal(a, b T) bool
	Hash(a T) uint64
	Abs(a T) T
	Min(a, b T) T
	Max(a, b T) T
}

// BitwiseMath exposes bitwise (or, for bool, logical) operators.
type BitwiseMath[T any] interface {
	And(a, b T) T
	Or(a, b T) T
	Xor(a, b T) T
	Not(a T) T
}

// Converter converts between T and the widest built-in numeric types.
//
//   - FromUint64 / FromInt64 preserve the value when it fits; otherwise
//     unchecked providers wrap like a Go conversion and checked providers fail
//     with ErrOverflow.
//   - FromFloat64 truncates toward zero (the native Go conversion). For
//     unchecked integer providers an out-of-range or NaN input gives an
//     implementation-defined result, as in Go; it does not wrap. Checked
//     providers fail with ErrOverflow.
//   - FromFloat64Rounded applies the given Rounding first and reports
//     ErrUnsupportedRounding (and, for checked providers, ErrOverflow) as an error.
//   - ToFloat64 is exact for values representable in float64.
type Converter[T any] interface {
	FromUint64(v uint64) T
	FromInt64(v int64) T
	FromFloat64(v float64) T
	FromFloat64Rounded(v float64, mode Rounding) (T, error)
	ToFloat64(v T) float64
}

// Trigonometry exposes the circular functions and their inverses (radians).
type Trigonometry[T any] interface {
	Sin(a T) T
	Cos(a T) T
	Tan(a T) T
	Asin(a T) T
	Acos(a T) T
	Atan(a T) T
	Atan2(y, x T) T
}

// Exponential exposes the natural exponential and logarithm.
type Exponential[T any] interface {
	Exp(a T) T
	Log(a T) T
}
