// SPDX-License-Identifier: MIT

package provider_test

import (
	"testing"

	"github.com/Pallinder/go-randomdata"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/genmath/algebra"
)

// groupMath is what the addition-group law checks need from a provider.
type groupMath[T any] interface {
	algebra.AdditionGroup[T]
	algebra.Comparer[T]
}

// fieldMath is what the multiplication-group law checks need from a provider.
type fieldMath[T any] interface {
	algebra.Field[T]
	algebra.Comparer[T]
}

// limitedMath is what the sample builder needs from a provider.
type limitedMath[T any] interface {
	algebra.ZeroProvider[T]
	algebra.OneProvider[T]
	algebra.Limits[T]
}

// samples returns zero, one, MinValue and MaxValue plus any extra values.
func samples[T any, P limitedMath[T]](extra ...T) []T {
	var p P
	return append([]T{p.Zero(), p.One(), p.MinValue(), p.MaxValue()}, extra...)
}

// randomSamples returns n values drawn from [lo, hi) and converted through
// P.FromInt64. Wrapping providers reduce out-of-range draws modulo 2ⁿ.
func randomSamples[T any, P algebra.Converter[T]](n, lo, hi int) []T {
	var p P
	out := make([]T, n)
	for i := range out {
		out[i] = p.FromInt64(int64(randomdata.Number(lo, hi)))
	}

	return out
}

// requireAdditionGroup checks a+(−a) = 0, 0+a = a, a−b = a+(−b) and
// commutativity over every pair of xs.
func requireAdditionGroup[T any, P groupMath[T]](t *testing.T, xs []T) {
	t.Helper()
	var p P
	for _, a := range xs {
		require.Truef(t, p.Equal(p.Add(a, p.Neg(a)), p.Zero()), "a+(-a) != 0 for %v", a)
		require.Truef(t, p.Equal(p.Add(p.Zero(), a), a), "0+a != a for %v", a)
		for _, b := range xs {
			require.Truef(t, p.Equal(p.Add(a, b), p.Add(b, a)), "a+b != b+a for %v, %v", a, b)
			require.Truef(t, p.Equal(p.Sub(a, b), p.Add(a, p.Neg(b))), "a-b != a+(-b) for %v, %v", a, b)
		}
	}
}

// requireMultiplicationGroup checks a·a⁻¹ = 1 and 1·a = a for nonzero xs.
func requireMultiplicationGroup[T any, P fieldMath[T]](t *testing.T, xs []T) {
	t.Helper()
	var p P
	for _, a := range xs {
		require.Truef(t, p.Equal(p.Mul(p.One(), a), a), "1*a != a for %v", a)
		if p.Equal(a, p.Zero()) {
			continue
		}
		require.Truef(t, p.Equal(p.Mul(a, p.Inv(a)), p.One()), "a*inv(a) != 1 for %v", a)
	}
}

// requireArithError asserts err is an *algebra.ArithmeticError matching target.
func requireArithError(t *testing.T, err error, target error) {
	t.Helper()
	require.ErrorIs(t, err, target)
	var ae *algebra.ArithmeticError
	require.ErrorAs(t, err, &ae)
}
