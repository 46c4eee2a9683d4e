// SPDX-License-Identifier: MIT

package provider

import (
	"cmp"
	"math"
	"unsafe"

	"github.com/katalvlaran/genmath/algebra"
	"golang.org/x/exp/constraints"
)

// Float implements algebra.RationalMath for float32/float64 with exact
// (IEEE 754) comparison. Transcendental functions are evaluated in float64 and
// rounded to T.
type Float[T constraints.Float] struct{}

var _ algebra.RationalMath[float64] = Float[float64]{}

// isSingle reports whether T is a 32-bit float.
func isSingle[T constraints.Float]() bool {
	var z T
	return unsafe.Sizeof(z) == 4
}

func (Float[T]) Add(a, b T) T { return a + b }
func (Float[T]) Sub(a, b T) T { return a - b }
func (Float[T]) Mul(a, b T) T { return a * b }
func (Float[T]) Div(a, b T) T { return a / b }
func (Float[T]) Neg(a T) T    { return -a }
func (Float[T]) Inv(a T) T    { return 1 / a }

func (Float[T]) Zero() T { return 0 }
func (Float[T]) One() T  { return 1 }

func (Float[T]) Sqr(a T) T  { return a * a }
func (Float[T]) Sqrt(a T) T { return T(math.Sqrt(float64(a))) }

// MinValue is the most negative finite value.
func (f Float[T]) MinValue() T { return -f.MaxValue() }

// MaxValue is the largest finite value.
func (Float[T]) MaxValue() T {
	m := float64(math.MaxFloat64)
	if isSingle[T]() {
		m = math.MaxFloat32
	}

	return T(m)
}

// Epsilon is the smallest positive (subnormal) value.
func (Float[T]) Epsilon() T {
	e := float64(math.SmallestNonzeroFloat64)
	if isSingle[T]() {
		e = math.SmallestNonzeroFloat32
	}

	return T(e)
}

// Compare orders NaN before every other value, like cmp.Compare.
func (Float[T]) Compare(a, b T) int { return cmp.Compare(a, b) }

// Equal is consistent with Compare: NaN equals NaN and -0 equals +0.
func (Float[T]) Equal(a, b T) bool { return cmp.Compare(a, b) == 0 }

// Hash normalises -0 and NaN so Equal values hash alike.
func (Float[T]) Hash(a T) uint64 {
	switch {
	case a == 0:
		return 0
	case a != a:
		return math.Float64bits(math.NaN())
	default:
		return math.Float64bits(float64(a))
	}
}

func (Float[T]) Abs(a T) T { return T(math.Abs(float64(a))) }

func (f Float[T]) Min(a, b T) T {
	if f.Compare(a, b) <= 0 {
		return a
	}

	return b
}

func (f Float[T]) Max(a, b T) T {
	if f.Compare(a, b) >= 0 {
		return a
	}

	return b
}

func (Float[T]) Sin(a T) T      { return T(math.Sin(float64(a))) }
func (Float[T]) Cos(a T) T      { return T(math.Cos(float64(a))) }
func (Float[T]) Tan(a T) T      { return T(math.Tan(float64(a))) }
func (Float[T]) Asin(a T) T     { return T(math.Asin(float64(a))) }
func (Float[T]) Acos(a T) T     { return T(math.Acos(float64(a))) }
func (Float[T]) Atan(a T) T     { return T(math.Atan(float64(a))) }
func (Float[T]) Atan2(y, x T) T { return T(math.Atan2(float64(y), float64(x))) }
func (Float[T]) Exp(a T) T      { return T(math.Exp(float64(a))) }
func (Float[T]) Log(a T) T      { return T(math.Log(float64(a))) }

func (Float[T]) FromUint64(v uint64) T   { return T(v) }
func (Float[T]) FromInt64(v int64) T     { return T(v) }
func (Float[T]) FromFloat64(v float64) T { return T(v) }

// FromFloat64Rounded validates mode and converts v. Floats keep their
// fractional part, so the mode only matters for its validity.
func (Float[T]) FromFloat64Rounded(v float64, mode algebra.Rounding) (T, error) {
	if err := checkMode[T]("FromFloat64Rounded", mode); err != nil {
		return 0, err
	}

	return T(v), nil
}

func (Float[T]) ToFloat64(v T) float64 { return float64(v) }
