// SPDX-License-Identifier: MIT

package provider

import (
	"cmp"
	"math"

	"github.com/katalvlaran/genmath/algebra"
	"golang.org/x/exp/constraints"
)

// Signed implements algebra.SignedMath for T with native two's-complement
// wraparound: Neg(MinValue) and Abs(MinValue) return MinValue.
type Signed[T constraints.Signed] struct{}

var _ algebra.SignedMath[int32] = Signed[int32]{}

func (Signed[T]) Add(a, b T) T { return a + b }
func (Signed[T]) Sub(a, b T) T { return a - b }
func (Signed[T]) Mul(a, b T) T { return a * b }

// Div truncates toward zero; a zero divisor is Go's runtime panic.
func (Signed[T]) Div(a, b T) T { return a / b }
func (Signed[T]) Neg(a T) T    { return -a }

func (Signed[T]) Zero() T { return 0 }
func (Signed[T]) One() T  { return 1 }

func (Signed[T]) Sqr(a T) T { return a * a }

// Sqrt is the truncated float64 square root; negative input yields 0.
func (Signed[T]) Sqrt(a T) T {
	if a < 0 {
		return 0
	}

	return T(math.Sqrt(float64(a)))
}

func (Signed[T]) MinValue() T { return signedMin[T]() }
func (Signed[T]) MaxValue() T { return signedMax[T]() }
func (Signed[T]) Epsilon() T  { return 1 }

func (Signed[T]) Compare(a, b T) int { return cmp.Compare(a, b) }
func (Signed[T]) Equal(a, b T) bool  { return a == b }
func (Signed[T]) Hash(a T) uint64    { return uint64(int64(a)) }

func (Signed[T]) Abs(a T) T {
	if a < 0 {
		return -a
	}

	return a
}

func (Signed[T]) Min(a, b T) T { return min(a, b) }
func (Signed[T]) Max(a, b T) T { return max(a, b) }

func (Signed[T]) And(a, b T) T { return a & b }
func (Signed[T]) Or(a, b T) T  { return a | b }
func (Signed[T]) Xor(a, b T) T { return a ^ b }
func (Signed[T]) Not(a T) T    { return ^a }

func (Signed[T]) FromUint64(v uint64) T { return T(v) }
func (Signed[T]) FromInt64(v int64) T   { return T(v) }

// FromFloat64 is the native conversion (truncation toward zero); out-of-range
// input is implementation-defined, as in Go.
func (Signed[T]) FromFloat64(v float64) T { return T(v) }

// FromFloat64Rounded rounds v by mode, then converts natively.
func (Signed[T]) FromFloat64Rounded(v float64, mode algebra.Rounding) (T, error) {
	r, err := roundFloat[T]("FromFloat64Rounded", v, mode)
	if err != nil {
		return 0, err
	}

	return T(r), nil
}

func (Signed[T]) ToFloat64(v T) float64 { return float64(v) }
