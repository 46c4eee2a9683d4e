// SPDX-License-Identifier: MIT

package num

import (
	"fmt"

	"github.com/katalvlaran/genmath/algebra"
)

// Rational wraps a T whose arithmetic is defined by the provider P.
type Rational[T any, P algebra.RationalMath[T]] struct {
	v T
}

// NewRational wraps v without conversion.
func NewRational[T any, P algebra.RationalMath[T]](v T) Rational[T, P] {
	return Rational[T, P]{v: v}
}

// RationalFromUint64 converts v through P.FromUint64.
func RationalFromUint64[T any, P algebra.RationalMath[T]](v uint64) Rational[T, P] {
	var p P
	return Rational[T, P]{v: p.FromUint64(v)}
}

// RationalFromInt64 converts v through P.FromInt64.
func RationalFromInt64[T any, P algebra.RationalMath[T]](v int64) Rational[T, P] {
	var p P
	return Rational[T, P]{v: p.FromInt64(v)}
}

// Value unwraps the representation value.
func (x Rational[T, P]) Value() T { return x.v }

// Float64 converts the value through P.ToFloat64.
func (x Rational[T, P]) Float64() float64 {
	var p P
	return p.ToFloat64(x.v)
}

func (x Rational[T, P]) Add(y Rational[T, P]) Rational[T, P] {
	var p P
	return Rational[T, P]{v: p.Add(x.v, y.v)}
}

func (x Rational[T, P]) Sub(y Rational[T, P]) Rational[T, P] {
	var p P
	return Rational[T, P]{v: p.Sub(x.v, y.v)}
}

func (x Rational[T, P]) Mul(y Rational[T, P]) Rational[T, P] {
	var p P
	return Rational[T, P]{v: p.Mul(x.v, y.v)}
}

func (x Rational[T, P]) Div(y Rational[T, P]) Rational[T, P] {
	var p P
	return Rational[T, P]{v: p.Div(x.v, y.v)}
}

func (x Rational[T, P]) Sqr() Rational[T, P] {
	var p P
	return Rational[T, P]{v: p.Sqr(x.v)}
}

func (x Rational[T, P]) Sqrt() Rational[T, P] {
	var p P
	return Rational[T, P]{v: p.Sqrt(x.v)}
}

func (x Rational[T, P]) Abs() Rational[T, P] {
	var p P
	return Rational[T, P]{v: p.Abs(x.v)}
}

func (x Rational[T, P]) Min(y Rational[T, P]) Rational[T, P] {
	var p P
	return Rational[T, P]{v: p.Min(x.v, y.v)}
}

func (x Rational[T, P]) Max(y Rational[T, P]) Rational[T, P] {
	var p P
	return Rational[T, P]{v: p.Max(x.v, y.v)}
}

// Cmp returns -1, 0 or +1 according to P.Compare.
func (x Rational[T, P]) Cmp(y Rational[T, P]) int {
	var p P
	return p.Compare(x.v, y.v)
}

// Eq reports equality according to P.Equal.
func (x Rational[T, P]) Eq(y Rational[T, P]) bool {
	var p P
	return p.Equal(x.v, y.v)
}

func (x Rational[T, P]) Less(y Rational[T, P]) bool      { return x.Cmp(y) < 0 }
func (x Rational[T, P]) LessEq(y Rational[T, P]) bool    { return x.Cmp(y) <= 0 }
func (x Rational[T, P]) Greater(y Rational[T, P]) bool   { return x.Cmp(y) > 0 }
func (x Rational[T, P]) GreaterEq(y Rational[T, P]) bool { return x.Cmp(y) >= 0 }

// IsZero reports whether the value equals P.Zero.
func (x Rational[T, P]) IsZero() bool {
	var p P
	return p.Equal(x.v, p.Zero())
}

// Hash returns P.Hash of the value.
func (x Rational[T, P]) Hash() uint64 {
	var p P
	return p.Hash(x.v)
}

// Equals reports whether other is a Rational[T, P] equal to x. Any other type
// compares unequal.
func (x Rational[T, P]) Equals(other any) bool {
	y, ok := other.(Rational[T, P])
	return ok && x.Eq(y)
}

func (x Rational[T, P]) String() string { return fmt.Sprint(x.v) }

// RationalFromFloat64 converts v through P.FromFloat64.
func RationalFromFloat64[T any, P algebra.RationalMath[T]](v float64) Rational[T, P] {
	var p P
	return Rational[T, P]{v: p.FromFloat64(v)}
}

func (x Rational[T, P]) Neg() Rational[T, P] {
	var p P
	return Rational[T, P]{v: p.Neg(x.v)}
}

// Inv returns the multiplicative inverse 1/x.
func (x Rational[T, P]) Inv() Rational[T, P] {
	var p P
	return Rational[T, P]{v: p.Inv(x.v)}
}

func (x Rational[T, P]) Sin() Rational[T, P] {
	var p P
	return Rational[T, P]{v: p.Sin(x.v)}
}

func (x Rational[T, P]) Cos() Rational[T, P] {
	var p P
	return Rational[T, P]{v: p.Cos(x.v)}
}

func (x Rational[T, P]) Tan() Rational[T, P] {
	var p P
	return Rational[T, P]{v: p.Tan(x.v)}
}

func (x Rational[T, P]) Asin() Rational[T, P] {
	var p P
	return Rational[T, P]{v: p.Asin(x.v)}
}

func (x Rational[T, P]) Acos() Rational[T, P] {
	var p P
	return Rational[T, P]{v: p.Acos(x.v)}
}

func (x Rational[T, P]) Atan() Rational[T, P] {
	var p P
	return Rational[T, P]{v: p.Atan(x.v)}
}

func (x Rational[T, P]) Exp() Rational[T, P] {
	var p P
	return Rational[T, P]{v: p.Exp(x.v)}
}

func (x Rational[T, P]) Log() Rational[T, P] {
	var p P
	return Rational[T, P]{v: p.Log(x.v)}
}

// Atan2 returns the angle of the vector (abscissa, x); the receiver is the
// ordinate, as in math.Atan2(y, x).
func (x Rational[T, P]) Atan2(abscissa Rational[T, P]) Rational[T, P] {
	var p P
	return Rational[T, P]{v: p.Atan2(x.v, abscissa.v)}
}

// Epsilon returns P.Epsilon, the tolerance used by Eq for fuzzy providers.
func (x Rational[T, P]) Epsilon() Rational[T, P] {
	var p P
	return Rational[T, P]{v: p.Epsilon()}
}
