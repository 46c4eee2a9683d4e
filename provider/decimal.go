// SPDX-License-Identifier: MIT
// Package provider: decimal providers over shopspring/decimal.
//
// The decimal providers model a 96-bit-mantissa decimal with 28 fractional
// digits: MaxValue is 2^96−1, Epsilon is 1e-28, and Div/Inv/Mul round their
// result to 28 places. Decimals have no NaN or infinity, so Sqrt, the
// transcendental functions and FromFloat64 (all computed through float64)
// panic with ErrOverflow when the float64 result is not finite.
//
// Unchecked Decimal does not enforce the ±MaxValue range; CheckedDecimal does.
// Division by zero panics with ErrDivideByZero in both.

package provider

import (
	"hash/fnv"
	"math"
	"math/big"

	"github.com/katalvlaran/genmath/algebra"
	"github.com/shopspring/decimal"
)

// decimalScale is the number of fractional digits kept by rounding operations.
const decimalScale int32 = 28

const decimalTypeName = "decimal"

var (
	decimalMax = decimal.NewFromBigInt(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 96), big.NewInt(1)), 0)
	decimalMin = decimalMax.Neg()
	decimalEps = decimal.New(1, -decimalScale)
	decimalOne = decimal.NewFromInt(1)
)

func decimalError(op string, err error) *algebra.ArithmeticError {
	return algebra.NewArithmeticError(op, decimalTypeName, err)
}

// decimalFromFloat converts a finite float64; NaN and ±Inf are ErrOverflow.
func decimalFromFloat(op string, f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, decimalError(op, algebra.ErrOverflow)
	}

	return decimal.NewFromFloat(f), nil
}

// viaFloat applies fn to a through float64 and panics on a non-finite result.
func viaFloat(op string, a decimal.Decimal, fn func(float64) float64) decimal.Decimal {
	return algebra.Must(decimalFromFloat(op, fn(a.InexactFloat64())))
}

// Decimal implements algebra.RationalMath for decimal.Decimal with exact
// comparison.
type Decimal struct{}

var _ algebra.RationalMath[decimal.Decimal] = Decimal{}

func (Decimal) Add(a, b decimal.Decimal) decimal.Decimal { return a.Add(b) }
func (Decimal) Sub(a, b decimal.Decimal) decimal.Decimal { return a.Sub(b) }
func (Decimal) Mul(a, b decimal.Decimal) decimal.Decimal { return a.Mul(b).Round(decimalScale) }
func (Decimal) Neg(a decimal.Decimal) decimal.Decimal    { return a.Neg() }

// Div rounds the quotient to 28 fractional digits.
func (d Decimal) Div(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		panic(decimalError("Div", algebra.ErrDivideByZero))
	}

	return a.DivRound(b, decimalScale)
}

func (d Decimal) Inv(a decimal.Decimal) decimal.Decimal { return d.Div(decimalOne, a) }

func (Decimal) Zero() decimal.Decimal { return decimal.Zero }
func (Decimal) One() decimal.Decimal  { return decimalOne }

func (d Decimal) Sqr(a decimal.Decimal) decimal.Decimal { return d.Mul(a, a) }

// Sqrt goes through float64; a negative input panics with ErrOverflow.
func (Decimal) Sqrt(a decimal.Decimal) decimal.Decimal { return viaFloat("Sqrt", a, math.Sqrt) }

func (Decimal) MinValue() decimal.Decimal { return decimalMin }
func (Decimal) MaxValue() decimal.Decimal { return decimalMax }

// Epsilon is the smallest positive value at 28 fractional digits.
func (Decimal) Epsilon() decimal.Decimal { return decimalEps }

func (Decimal) Compare(a, b decimal.Decimal) int { return a.Cmp(b) }
func (Decimal) Equal(a, b decimal.Decimal) bool  { return a.Equal(b) }

// Hash is taken over the canonical string, so 1.0 and 1.00 hash alike.
func (Decimal) Hash(a decimal.Decimal) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(a.String()))
	return h.Sum64()
}

func (Decimal) Abs(a decimal.Decimal) decimal.Decimal { return a.Abs() }

func (d Decimal) Min(a, b decimal.Decimal) decimal.Decimal {
	if d.Compare(a, b) <= 0 {
		return a
	}

	return b
}

func (d Decimal) Max(a, b decimal.Decimal) decimal.Decimal {
	if d.Compare(a, b) >= 0 {
		return a
	}

	return b
}

func (Decimal) Sin(a decimal.Decimal) decimal.Decimal  { return viaFloat("Sin", a, math.Sin) }
func (Decimal) Cos(a decimal.Decimal) decimal.Decimal  { return viaFloat("Cos", a, math.Cos) }
func (Decimal) Tan(a decimal.Decimal) decimal.Decimal  { return viaFloat("Tan", a, math.Tan) }
func (Decimal) Asin(a decimal.Decimal) decimal.Decimal { return viaFloat("Asin", a, math.Asin) }
func (Decimal) Acos(a decimal.Decimal) decimal.Decimal { return viaFloat("Acos", a, math.Acos) }
func (Decimal) Atan(a decimal.Decimal) decimal.Decimal { return viaFloat("Atan", a, math.Atan) }
func (Decimal) Exp(a decimal.Decimal) decimal.Decimal  { return viaFloat("Exp", a, math.Exp) }
func (Decimal) Log(a decimal.Decimal) decimal.Decimal  { return viaFloat("Log", a, math.Log) }

func (Decimal) Atan2(y, x decimal.Decimal) decimal.Decimal {
	return algebra.Must(decimalFromFloat("Atan2", math.Atan2(y.InexactFloat64(), x.InexactFloat64())))
}

func (Decimal) FromUint64(v uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0)
}

func (Decimal) FromInt64(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// FromFloat64 keeps the shortest decimal representation of v.
func (Decimal) FromFloat64(v float64) decimal.Decimal {
	return algebra.Must(decimalFromFloat("FromFloat64", v))
}

// FromFloat64Rounded validates mode and converts v; decimals keep the
// fractional part.
func (Decimal) FromFloat64Rounded(v float64, mode algebra.Rounding) (decimal.Decimal, error) {
	if err := checkMode[decimal.Decimal]("FromFloat64Rounded", mode); err != nil {
		return decimal.Zero, err
	}

	return decimalFromFloat("FromFloat64Rounded", v)
}

func (Decimal) ToFloat64(v decimal.Decimal) float64 { return v.InexactFloat64() }

// ---------- checked ----------

// CheckedDecimal is Decimal with every result confined to ±MaxValue.
type CheckedDecimal struct {
	Decimal
}

var _ algebra.RationalMath[decimal.Decimal] = CheckedDecimal{}

// bound returns r or ErrOverflow when |r| > MaxValue.
func (CheckedDecimal) bound(op string, r decimal.Decimal) (decimal.Decimal, error) {
	if r.Abs().GreaterThan(decimalMax) {
		return decimal.Zero, decimalError(op, algebra.ErrOverflow)
	}

	return r, nil
}

func (c CheckedDecimal) TryAdd(a, b decimal.Decimal) (decimal.Decimal, error) {
	return c.bound("Add", a.Add(b))
}

func (c CheckedDecimal) TrySub(a, b decimal.Decimal) (decimal.Decimal, error) {
	return c.bound("Sub", a.Sub(b))
}

func (c CheckedDecimal) TryMul(a, b decimal.Decimal) (decimal.Decimal, error) {
	return c.bound("Mul", a.Mul(b).Round(decimalScale))
}

func (c CheckedDecimal) TryDiv(a, b decimal.Decimal) (decimal.Decimal, error) {
	if b.IsZero() {
		return decimal.Zero, decimalError("Div", algebra.ErrDivideByZero)
	}

	return c.bound("Div", a.DivRound(b, decimalScale))
}

// TryFromFloat64 converts v or returns ErrOverflow for non-finite or
// out-of-range input.
func (c CheckedDecimal) TryFromFloat64(v float64) (decimal.Decimal, error) {
	d, err := decimalFromFloat("FromFloat64", v)
	if err != nil {
		return decimal.Zero, err
	}

	return c.bound("FromFloat64", d)
}

// TryFromUint64 always succeeds; every uint64 fits in 96 bits.
func (c CheckedDecimal) TryFromUint64(v uint64) (decimal.Decimal, error) {
	return c.FromUint64(v), nil
}

// TryFromInt64 always succeeds; every int64 fits in 96 bits.
func (c CheckedDecimal) TryFromInt64(v int64) (decimal.Decimal, error) {
	return c.FromInt64(v), nil
}

func (c CheckedDecimal) Add(a, b decimal.Decimal) decimal.Decimal {
	return algebra.Must(c.TryAdd(a, b))
}

func (c CheckedDecimal) Sub(a, b decimal.Decimal) decimal.Decimal {
	return algebra.Must(c.TrySub(a, b))
}

func (c CheckedDecimal) Mul(a, b decimal.Decimal) decimal.Decimal {
	return algebra.Must(c.TryMul(a, b))
}

func (c CheckedDecimal) Div(a, b decimal.Decimal) decimal.Decimal {
	return algebra.Must(c.TryDiv(a, b))
}

func (c CheckedDecimal) Sqr(a decimal.Decimal) decimal.Decimal {
	return c.Mul(a, a)
}

func (c CheckedDecimal) Inv(a decimal.Decimal) decimal.Decimal {
	return c.Div(decimalOne, a)
}

// Exp fails with ErrOverflow when the result exceeds MaxValue.
func (c CheckedDecimal) Exp(a decimal.Decimal) decimal.Decimal {
	return algebra.Must(c.bound("Exp", c.Decimal.Exp(a)))
}

func (c CheckedDecimal) FromFloat64(v float64) decimal.Decimal {
	return algebra.Must(c.TryFromFloat64(v))
}

func (c CheckedDecimal) FromFloat64Rounded(v float64, mode algebra.Rounding) (decimal.Decimal, error) {
	if err := checkMode[decimal.Decimal]("FromFloat64Rounded", mode); err != nil {
		return decimal.Zero, err
	}

	return c.TryFromFloat64(v)
}

// ---------- fuzzy ----------

// FuzzyDecimal is Decimal with comparison relaxed by the tolerance E; see Fuzzy.
type FuzzyDecimal[E Tolerance] struct {
	Decimal
}

var _ algebra.RationalMath[decimal.Decimal] = FuzzyDecimal[Tol1e9]{}

// Epsilon returns the tolerance as a decimal.
func (FuzzyDecimal[E]) Epsilon() decimal.Decimal {
	var e E
	return decimal.NewFromFloat(e.Epsilon())
}

func (f FuzzyDecimal[E]) Equal(a, b decimal.Decimal) bool {
	return !a.Sub(b).Abs().GreaterThan(f.Epsilon())
}

func (f FuzzyDecimal[E]) Compare(a, b decimal.Decimal) int {
	e := f.Epsilon()
	switch {
	case a.LessThan(b.Sub(e)):
		return -1
	case a.GreaterThan(b.Add(e)):
		return 1
	default:
		return 0
	}
}

func (FuzzyDecimal[E]) Hash(decimal.Decimal) uint64 { return 0 }

func (f FuzzyDecimal[E]) Min(a, b decimal.Decimal) decimal.Decimal {
	if f.Compare(a, b) <= 0 {
		return a
	}

	return b
}

func (f FuzzyDecimal[E]) Max(a, b decimal.Decimal) decimal.Decimal {
	if f.Compare(a, b) >= 0 {
		return a
	}

	return b
}
