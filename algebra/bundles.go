// SPDX-License-Identifier: MIT
// Package algebra: capability bundles.
//
// Bundles compose the minimal interfaces into the algebraic structures a
// provider claims to satisfy. The laws are part of the contract and are
// checked by the provider test suites:
//
//	AdditionGroup:       a+b = b+a, (a+b)+c = a+(b+c), a+(−a) = 0, a−b = a+(−b), 0+a = a
//	MultiplicationGroup: a·b = b·a, (a·b)·c = a·(b·c), a·a⁻¹ = 1, a/b = a·b⁻¹, 1·a = a
//	Ring:                AdditionGroup + Multiplier + One (no general inverse)
//	Field:               AdditionGroup + MultiplicationGroup
//
// Integer providers satisfy the laws exactly modulo 2ⁿ (wraparound); float
// providers satisfy them to the precision the representation allows.

package algebra

// AdditionGroup is an abelian group under addition.
type AdditionGroup[T any] interface {
	Adder[T]
	Subtracter[T]
	Negater[T]
	ZeroProvider[T]
}

// MultiplicationGroup is an abelian group under multiplication (zero excluded).
type MultiplicationGroup[T any] interface {
	Multiplier[T]
	Divider[T]
	Inverter[T]
	OneProvider[T]
}

// Ring adds multiplication to an AdditionGroup without requiring inverses.
type Ring[T any] interface {
	AdditionGroup[T]
	Multiplier[T]
	OneProvider[T]
}

// Field is both an addition group and a multiplication group.
type Field[T any] interface {
	AdditionGroup[T]
	MultiplicationGroup[T]
}

// Arithmetic is the core every numeric bundle shares: the four operations,
// both neutral elements, square and square root.
type Arithmetic[T any] interface {
	Adder[T]
	Subtracter[T]
	Multiplier[T]
	Divider[T]
	ZeroProvider[T]
	OneProvider[T]
	Rooter[T]
}

// IntegerMath is the arithmetic core plus bitwise operators, ordering,
// limits and conversion.
type IntegerMath[T any] interface {
	Arithmetic[T]
	BitwiseMath[T]
	Comparer[T]
	Limits[T]
	EpsilonProvider[T]
	Converter[T]
}

// UnsignedMath is IntegerMath for unsigned representations. Sub is exposed
// for convenience; negation and inversion are not.
type UnsignedMath[T any] interface {
	IntegerMath[T]
}

// SignedMath is IntegerMath plus the ring structure (adds Neg).
// Div truncates toward zero; there is no multiplicative inverse in general.
type SignedMath[T any] interface {
	IntegerMath[T]
	Ring[T]
}

// RationalMath is the arithmetic core over a field, with ordering, limits,
// conversion, trigonometry and exponential functions.
type RationalMath[T any] interface {
	Arithmetic[T]
	Field[T]
	Comparer[T]
	Limits[T]
	EpsilonProvider[T]
	Converter[T]
	Trigonometry[T]
	Exponential[T]
}

// LogicMath is the bundle of the boolean provider: bitwise operators over
// {false, true} with ordering and the two neutral elements.
type LogicMath[T any] interface {
	BitwiseMath[T]
	Comparer[T]
	ZeroProvider[T]
	OneProvider[T]
}
