// SPDX-License-Identifier: MIT

package num

import (
	"fmt"

	"github.com/katalvlaran/genmath/algebra"
)

// Unsigned wraps a T whose arithmetic is defined by the provider P.
type Unsigned[T any, P algebra.UnsignedMath[T]] struct {
	v T
}

// NewUnsigned wraps v without conversion.
func NewUnsigned[T any, P algebra.UnsignedMath[T]](v T) Unsigned[T, P] {
	return Unsigned[T, P]{v: v}
}

// UnsignedFromUint64 converts v through P.FromUint64.
func UnsignedFromUint64[T any, P algebra.UnsignedMath[T]](v uint64) Unsigned[T, P] {
	var p P
	return Unsigned[T, P]{v: p.FromUint64(v)}
}

// UnsignedFromInt64 converts v through P.FromInt64.
func UnsignedFromInt64[T any, P algebra.UnsignedMath[T]](v int64) Unsigned[T, P] {
	var p P
	return Unsigned[T, P]{v: p.FromInt64(v)}
}

// Value unwraps the representation value.
func (x Unsigned[T, P]) Value() T { return x.v }

// Float64 converts the value through P.ToFloat64.
func (x Unsigned[T, P]) Float64() float64 {
	var p P
	return p.ToFloat64(x.v)
}

func (x Unsigned[T, P]) Add(y Unsigned[T, P]) Unsigned[T, P] {
	var p P
	return Unsigned[T, P]{v: p.Add(x.v, y.v)}
}

func (x Unsigned[T, P]) Sub(y Unsigned[T, P]) Unsigned[T, P] {
	var p P
	return Unsigned[T, P]{v: p.Sub(x.v, y.v)}
}

func (x Unsigned[T, P]) Mul(y Unsigned[T, P]) Unsigned[T, P] {
	var p P
	return Unsigned[T, P]{v: p.Mul(x.v, y.v)}
}

func (x Unsigned[T, P]) Div(y Unsigned[T, P]) Unsigned[T, P] {
	var p P
	return Unsigned[T, P]{v: p.Div(x.v, y.v)}
}

func (x Unsigned[T, P]) Sqr() Unsigned[T, P] {
	var p P
	return Unsigned[T, P]{v: p.Sqr(x.v)}
}

func (x Unsigned[T, P]) Sqrt() Unsigned[T, P] {
	var p P
	return Unsigned[T, P]{v: p.Sqrt(x.v)}
}

func (x Unsigned[T, P]) Abs() Unsigned[T, P] {
	var p P
	return Unsigned[T, P]{v: p.Abs(x.v)}
}

func (x Unsigned[T, P]) Min(y Unsigned[T, P]) Unsigned[T, P] {
	var p P
	return Unsigned[T, P]{v: p.Min(x.v, y.v)}
}

func (x Unsigned[T, P]) Max(y Unsigned[T, P]) Unsigned[T, P] {
	var p P
	return Unsigned[T, P]{v: p.Max(x.v, y.v)}
}

// Cmp returns -1, 0 or +1 according to P.Compare.
func (x Unsigned[T, P]) Cmp(y Unsigned[T, P]) int {
	var p P
	return p.Compare(x.v, y.v)
}

// Eq reports equality according to P.Equal.
func (x Unsigned[T, P]) Eq(y Unsigned[T, P]) bool {
	var p P
	return p.Equal(x.v, y.v)
}

func (x Unsigned[T, P]) Less(y Unsigned[T, P]) bool      { return x.Cmp(y) < 0 }
func (x Unsigned[T, P]) LessEq(y Unsigned[T, P]) bool    { return x.Cmp(y) <= 0 }
func (x Unsigned[T, P]) Greater(y Unsigned[T, P]) bool   { return x.Cmp(y) > 0 }
func (x Unsigned[T, P]) GreaterEq(y Unsigned[T, P]) bool { return x.Cmp(y) >= 0 }

// IsZero reports whether the value equals P.Zero.
func (x Unsigned[T, P]) IsZero() bool {
	var p P
	return p.Equal(x.v, p.Zero())
}

// Hash returns P.Hash of the value.
func (x Unsigned[T, P]) Hash() uint64 {
	var p P
	return p.Hash(x.v)
}

// Equals reports whether other is a Unsigned[T, P] equal to x. Any other type
// compares unequal.
func (x Unsigned[T, P]) Equals(other any) bool {
	y, ok := other.(Unsigned[T, P])
	return ok && x.Eq(y)
}

func (x Unsigned[T, P]) String() string { return fmt.Sprint(x.v) }

func (x Unsigned[T, P]) And(y Unsigned[T, P]) Unsigned[T, P] {
	var p P
	return Unsigned[T, P]{v: p.And(x.v, y.v)}
}

func (x Unsigned[T, P]) Or(y Unsigned[T, P]) Unsigned[T, P] {
	var p P
	return Unsigned[T, P]{v: p.Or(x.v, y.v)}
}

func (x Unsigned[T, P]) Xor(y Unsigned[T, P]) Unsigned[T, P] {
	var p P
	return Unsigned[T, P]{v: p.Xor(x.v, y.v)}
}

func (x Unsigned[T, P]) Not() Unsigned[T, P] {
	var p P
	return Unsigned[T, P]{v: p.Not(x.v)}
}
