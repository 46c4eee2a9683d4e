// SPDX-License-Identifier: MIT

package provider

import (
	"cmp"
	"math"

	"github.com/katalvlaran/genmath/algebra"
	"golang.org/x/exp/constraints"
)

// Unsigned implements algebra.UnsignedMath for T with native wraparound.
type Unsigned[T constraints.Unsigned] struct{}

var _ algebra.UnsignedMath[uint32] = Unsigned[uint32]{}

func (Unsigned[T]) Add(a, b T) T { return a + b }
func (Unsigned[T]) Sub(a, b T) T { return a - b }
func (Unsigned[T]) Mul(a, b T) T { return a * b }

// Div truncates; a zero divisor is Go's runtime panic.
func (Unsigned[T]) Div(a, b T) T { return a / b }

func (Unsigned[T]) Zero() T { return 0 }
func (Unsigned[T]) One() T  { return 1 }

func (Unsigned[T]) Sqr(a T) T { return a * a }

// Sqrt is the truncated float64 square root.
func (Unsigned[T]) Sqrt(a T) T { return T(math.Sqrt(float64(a))) }

func (Unsigned[T]) MinValue() T { return 0 }
func (Unsigned[T]) MaxValue() T { return unsignedMax[T]() }
func (Unsigned[T]) Epsilon() T  { return 1 }

func (Unsigned[T]) Compare(a, b T) int { return cmp.Compare(a, b) }
func (Unsigned[T]) Equal(a, b T) bool  { return a == b }
func (Unsigned[T]) Hash(a T) uint64    { return uint64(a) }
func (Unsigned[T]) Abs(a T) T          { return a }
func (Unsigned[T]) Min(a, b T) T       { return min(a, b) }
func (Unsigned[T]) Max(a, b T) T       { return max(a, b) }

func (Unsigned[T]) And(a, b T) T { return a & b }
func (Unsigned[T]) Or(a, b T) T  { return a | b }
func (Unsigned[T]) Xor(a, b T) T { return a ^ b }
func (Unsigned[T]) Not(a T) T    { return ^a }

func (Unsigned[T]) FromUint64(v uint64) T { return T(v) }
func (Unsigned[T]) FromInt64(v int64) T   { return T(v) }

// FromFloat64 is the native conversion; out-of-range input is
// implementation-defined, as in Go.
func (Unsigned[T]) FromFloat64(v float64) T { return T(v) }

// FromFloat64Rounded rounds v by mode, then converts natively.
func (Unsigned[T]) FromFloat64Rounded(v float64, mode algebra.Rounding) (T, error) {
	r, err := roundFloat[T]("FromFloat64Rounded", v, mode)
	if err != nil {
		return 0, err
	}

	return T(r), nil
}

func (Unsigned[T]) ToFloat64(v T) float64 { return float64(v) }
