// SPDX-License-Identifier: MIT
// Package provider: overflow-checked integer providers.
//
// CheckedSigned and CheckedUnsigned expose the same capability surface as
// Signed and Unsigned. Every operation whose true result can fall outside the
// representation (Add, Sub, Mul, Div, Neg, Abs, Sqr, Sqrt of a negative, and
// every narrowing conversion) fails instead of wrapping:
//   - TryX methods return (T, error) with an *algebra.ArithmeticError;
//   - the capability methods panic with that same error.
//
// A zero divisor reports algebra.ErrDivideByZero; everything else reports
// algebra.ErrOverflow.

package provider

import (
	"math"

	"github.com/katalvlaran/genmath/algebra"
	"golang.org/x/exp/constraints"
)

// ---------- signed ----------

// CheckedSigned implements algebra.SignedMath for T, failing on overflow.
type CheckedSigned[T constraints.Signed] struct {
	Signed[T]
}

var _ algebra.SignedMath[int64] = CheckedSigned[int64]{}

// TryAdd returns a+b or ErrOverflow.
func (CheckedSigned[T]) TryAdd(a, b T) (T, error) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, arithError[T]("Add", algebra.ErrOverflow)
	}

	return s, nil
}

// TrySub returns a-b or ErrOverflow.
func (CheckedSigned[T]) TrySub(a, b T) (T, error) {
	d := a - b
	if (b > 0 && d > a) || (b < 0 && d < a) {
		return 0, arithError[T]("Sub", algebra.ErrOverflow)
	}

	return d, nil
}

// TryMul returns a*b or ErrOverflow.
func (CheckedSigned[T]) TryMul(a, b T) (T, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	lo := signedMin[T]()
	if (a == -1 && b == lo) || (b == -1 && a == lo) {
		return 0, arithError[T]("Mul", algebra.ErrOverflow)
	}
	p := a * b
	if p/b != a {
		return 0, arithError[T]("Mul", algebra.ErrOverflow)
	}

	return p, nil
}

// TryDiv returns a/b, ErrDivideByZero for b==0, or ErrOverflow for MinValue/-1.
func (CheckedSigned[T]) TryDiv(a, b T) (T, error) {
	if b == 0 {
		return 0, arithError[T]("Div", algebra.ErrDivideByZero)
	}
	if b == -1 && a == signedMin[T]() {
		return 0, arithError[T]("Div", algebra.ErrOverflow)
	}

	return a / b, nil
}

// TryNeg returns -a or ErrOverflow for MinValue.
func (CheckedSigned[T]) TryNeg(a T) (T, error) {
	if a == signedMin[T]() {
		return 0, arithError[T]("Neg", algebra.ErrOverflow)
	}

	return -a, nil
}

// TryAbs returns |a| or ErrOverflow for MinValue.
func (CheckedSigned[T]) TryAbs(a T) (T, error) {
	if a == signedMin[T]() {
		return 0, arithError[T]("Abs", algebra.ErrOverflow)
	}
	if a < 0 {
		return -a, nil
	}

	return a, nil
}

// TrySqrt returns the truncated square root or ErrOverflow for a<0.
func (CheckedSigned[T]) TrySqrt(a T) (T, error) {
	if a < 0 {
		return 0, arithError[T]("Sqrt", algebra.ErrOverflow)
	}

	return T(math.Sqrt(float64(a))), nil
}

// TryFromUint64 converts v or returns ErrOverflow.
func (CheckedSigned[T]) TryFromUint64(v uint64) (T, error) {
	if v > uint64(signedMax[T]()) {
		return 0, arithError[T]("FromUint64", algebra.ErrOverflow)
	}

	return T(v), nil
}

// TryFromInt64 converts v or returns ErrOverflow.
func (CheckedSigned[T]) TryFromInt64(v int64) (T, error) {
	if v < int64(signedMin[T]()) || v > int64(signedMax[T]()) {
		return 0, arithError[T]("FromInt64", algebra.ErrOverflow)
	}

	return T(v), nil
}

// TryFromFloat64 truncates v toward zero or returns ErrOverflow (NaN included).
func (CheckedSigned[T]) TryFromFloat64(v float64) (T, error) {
	t := math.Trunc(v)
	if !floatFitsSigned[T](t) {
		return 0, arithError[T]("FromFloat64", algebra.ErrOverflow)
	}

	return T(t), nil
}

func (c CheckedSigned[T]) Add(a, b T) T { return algebra.Must(c.TryAdd(a, b)) }
func (c CheckedSigned[T]) Sub(a, b T) T { return algebra.Must(c.TrySub(a, b)) }
func (c CheckedSigned[T]) Mul(a, b T) T { return algebra.Must(c.TryMul(a, b)) }
func (c CheckedSigned[T]) Div(a, b T) T { return algebra.Must(c.TryDiv(a, b)) }
func (c CheckedSigned[T]) Neg(a T) T    { return algebra.Must(c.TryNeg(a)) }
func (c CheckedSigned[T]) Abs(a T) T    { return algebra.Must(c.TryAbs(a)) }
func (c CheckedSigned[T]) Sqr(a T) T    { return algebra.Must(c.TryMul(a, a)) }
func (c CheckedSigned[T]) Sqrt(a T) T   { return algebra.Must(c.TrySqrt(a)) }

func (c CheckedSigned[T]) FromUint64(v uint64) T   { return algebra.Must(c.TryFromUint64(v)) }
func (c CheckedSigned[T]) FromInt64(v int64) T     { return algebra.Must(c.TryFromInt64(v)) }
func (c CheckedSigned[T]) FromFloat64(v float64) T { return algebra.Must(c.TryFromFloat64(v)) }

// FromFloat64Rounded rounds v by mode and converts it, reporting an
// unsupported mode or an out-of-range result as an error.
func (c CheckedSigned[T]) FromFloat64Rounded(v float64, mode algebra.Rounding) (T, error) {
	r, err := roundFloat[T]("FromFloat64Rounded", v, mode)
	if err != nil {
		return 0, err
	}
	if !floatFitsSigned[T](r) {
		return 0, arithError[T]("FromFloat64Rounded", algebra.ErrOverflow)
	}

	return T(r), nil
}

// ---------- unsigned ----------

// CheckedUnsigned implements algebra.UnsignedMath for T, failing on overflow.
// Sub below zero is reported as ErrOverflow.
type CheckedUnsigned[T constraints.Unsigned] struct {
	Unsigned[T]
}

var _ algebra.UnsignedMath[uint64] = CheckedUnsigned[uint64]{}

// TryAdd returns a+b or ErrOverflow.
func (CheckedUnsigned[T]) TryAdd(a, b T) (T, error) {
	s := a + b
	if s < a {
		return 0, arithError[T]("Add", algebra.ErrOverflow)
	}

	return s, nil
}

// TrySub returns a-b or ErrOverflow when b > a.
func (CheckedUnsigned[T]) TrySub(a, b T) (T, error) {
	if b > a {
		return 0, arithError[T]("Sub", algebra.ErrOverflow)
	}

	return a - b, nil
}

// TryMul returns a*b or ErrOverflow.
func (CheckedUnsigned[T]) TryMul(a, b T) (T, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	p := a * b
	if p/a != b {
		return 0, arithError[T]("Mul", algebra.ErrOverflow)
	}

	return p, nil
}

// TryDiv returns a/b or ErrDivideByZero.
func (CheckedUnsigned[T]) TryDiv(a, b T) (T, error) {
	if b == 0 {
		return 0, arithError[T]("Div", algebra.ErrDivideByZero)
	}

	return a / b, nil
}

// TryFromUint64 converts v or returns ErrOverflow.
func (CheckedUnsigned[T]) TryFromUint64(v uint64) (T, error) {
	if v > uint64(unsignedMax[T]()) {
		return 0, arithError[T]("FromUint64", algebra.ErrOverflow)
	}

	return T(v), nil
}

// TryFromInt64 converts v or returns ErrOverflow (negative input included).
func (CheckedUnsigned[T]) TryFromInt64(v int64) (T, error) {
	if v < 0 || uint64(v) > uint64(unsignedMax[T]()) {
		return 0, arithError[T]("FromInt64", algebra.ErrOverflow)
	}

	return T(v), nil
}

// TryFromFloat64 truncates v toward zero or returns ErrOverflow (NaN included).
func (CheckedUnsigned[T]) TryFromFloat64(v float64) (T, error) {
	t := math.Trunc(v)
	if !floatFitsUnsigned[T](t) {
		return 0, arithError[T]("FromFloat64", algebra.ErrOverflow)
	}

	return T(t), nil
}

func (c CheckedUnsigned[T]) Add(a, b T) T { return algebra.Must(c.TryAdd(a, b)) }
func (c CheckedUnsigned[T]) Sub(a, b T) T { return algebra.Must(c.TrySub(a, b)) }
func (c CheckedUnsigned[T]) Mul(a, b T) T { return algebra.Must(c.TryMul(a, b)) }
func (c CheckedUnsigned[T]) Div(a, b T) T { return algebra.Must(c.TryDiv(a, b)) }
func (c CheckedUnsigned[T]) Sqr(a T) T    { return algebra.Must(c.TryMul(a, a)) }

func (c CheckedUnsigned[T]) FromUint64(v uint64) T   { return algebra.Must(c.TryFromUint64(v)) }
func (c CheckedUnsigned[T]) FromInt64(v int64) T     { return algebra.Must(c.TryFromInt64(v)) }
func (c CheckedUnsigned[T]) FromFloat64(v float64) T { return algebra.Must(c.TryFromFloat64(v)) }

// FromFloat64Rounded rounds v by mode and converts it, reporting an
// unsupported mode or an out-of-range result as an error.
func (c CheckedUnsigned[T]) FromFloat64Rounded(v float64, mode algebra.Rounding) (T, error) {
	r, err := roundFloat[T]("FromFloat64Rounded", v, mode)
	if err != nil {
		return 0, err
	}
	if !floatFitsUnsigned[T](r) {
		return 0, arithError[T]("FromFloat64Rounded", algebra.ErrOverflow)
	}

	return T(r), nil
}
