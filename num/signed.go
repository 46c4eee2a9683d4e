// SPDX-License-Identifier: MIT

package num

import (
	"fmt"

	"github.com/katalvlaran/genmath/algebra"
)

// Signed wraps a T whose arithmetic is defined by the provider P.
type Signed[T any, P algebra.SignedMath[T]] struct {
	v T
}

// NewSigned wraps v without conversion.
func NewSigned[T any, P algebra.SignedMath[T]](v T) Signed[T, P] {
	return Signed[T, P]{v: v}
}

// SignedFromUint64 converts v through P.FromUint64.
func SignedFromUint64[T any, P algebra.SignedMath[T]](v uint64) Signed[T, P] {
	var p P
	return Signed[T, P]{v: p.FromUint64(v)}
}

// SignedFromInt64 converts v through P.FromInt64.
func SignedFromInt64[T any, P algebra.SignedMath[T]](v int64) Signed[T, P] {
	var p P
	return Signed[T, P]{v: p.FromInt64(v)}
}

// Value unwraps the representation value.
func (x Signed[T, P]) Value() T { return x.v }

// Float64 converts the value through P.ToFloat64.
func (x Signed[T, P]) Float64() float64 {
	var p P
	return p.ToFloat64(x.v)
}

func (x Signed[T, P]) Add(y Signed[T, P]) Signed[T, P] {
	var p P
	return Signed[T, P]{v: p.Add(x.v, y.v)}
}

func (x Signed[T, P]) Sub(y Signed[T, P]) Signed[T, P] {
	var p P
	return Signed[T, P]{v: p.Sub(x.v, y.v)}
}

func (x Signed[T, P]) Mul(y Signed[T, P]) Signed[T, P] {
	var p P
	return Signed[T, P]{v: p.Mul(x.v, y.v)}
}

func (x Signed[T, P]) Div(y Signed[T, P]) Signed[T, P] {
	var p P
	return Signed[T, P]{v: p.Div(x.v, y.v)}
}

func (x Signed[T, P]) Sqr() Signed[T, P] {
	var p P
	return Signed[T, P]{v: p.Sqr(x.v)}
}

func (x Signed[T, P]) Sqrt() Signed[T, P] {
	var p P
	return Signed[T, P]{v: p.Sqrt(x.v)}
}

func (x Signed[T, P]) Abs() Signed[T, P] {
	var p P
	return Signed[T, P]{v: p.Abs(x.v)}
}

func (x Signed[T, P]) Min(y Signed[T, P]) Signed[T, P] {
	var p P
	return Signed[T, P]{v: p.Min(x.v, y.v)}
}

func (x Signed[T, P]) Max(y Signed[T, P]) Signed[T, P] {
	var p P
	return Signed[T, P]{v: p.Max(x.v, y.v)}
}

// Cmp returns -1, 0 or +1 according to P.Compare.
func (x Signed[T, P]) Cmp(y Signed[T, P]) int {
	var p P
	return p.Compare(x.v, y.v)
}

// Eq reports equality according to P.Equal.
func (x Signed[T, P]) Eq(y Signed[T, P]) bool {
	var p P
	return p.Equal(x.v, y.v)
}

func (x Signed[T, P]) Less(y Signed[T, P]) bool      { return x.Cmp(y) < 0 }
func (x Signed[T, P]) LessEq(y Signed[T, P]) bool    { return x.Cmp(y) <= 0 }
func (x Signed[T, P]) Greater(y Signed[T, P]) bool   { return x.Cmp(y) > 0 }
func (x Signed[T, P]) GreaterEq(y Signed[T, P]) bool { return x.Cmp(y) >= 0 }

// IsZero reports whether the value equals P.Zero.
func (x Signed[T, P]) IsZero() bool {
	var p P
	return p.Equal(x.v, p.Zero())
}

// Hash returns P.Hash of the value.
func (x Signed[T, P]) Hash() uint64 {
	var p P
	return p.Hash(x.v)
}

// Equals reports whether other is a Signed[T, P] equal to x. Any other type
// compares unequal.
func (x Signed[T, P]) Equals(other any) bool {
	y, ok := other.(Signed[T, P])
	return ok && x.Eq(y)
}

func (x Signed[T, P]) String() string { return fmt.Sprint(x.v) }

func (x Signed[T, P]) Neg() Signed[T, P] {
	var p P
	return Signed[T, P]{v: p.Neg(x.v)}
}

func (x Signed[T, P]) And(y Signed[T, P]) Signed[T, P] {
	var p P
	return Signed[T, P]{v: p.And(x.v, y.v)}
}

func (x Signed[T, P]) Or(y Signed[T, P]) Signed[T, P] {
	var p P
	return Signed[T, P]{v: p.Or(x.v, y.v)}
}

func (x Signed[T, P]) Xor(y Signed[T, P]) Signed[T, P] {
	var p P
	return Signed[T, P]{v: p.Xor(x.v, y.v)}
}

func (x Signed[T, P]) Not() Signed[T, P] {
	var p P
	return Signed[T, P]{v: p.Not(x.v)}
}
