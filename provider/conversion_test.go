// SPDX-License-Identifier: MIT

package provider_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/genmath/algebra"
	"github.com/katalvlaran/genmath/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTrip checks FromFloat64(ToFloat64(a)) == a for every a in xs.
func roundTrip[T any, P interface {
	algebra.Converter[T]
	algebra.Comparer[T]
}](t *testing.T, xs []T) {
	t.Helper()
	var p P
	for _, a := range xs {
		require.Truef(t, p.Equal(p.FromFloat64(p.ToFloat64(a)), a), "round trip failed for %v", a)
	}
}

func TestConversion_RoundTrip(t *testing.T) {
	t.Parallel()

	roundTrip[int8, provider.Int8](t, []int8{0, 1, -1, 127, -128})
	roundTrip[int16, provider.CheckedInt16](t, []int16{0, 1, -1, 32767, -32768})
	roundTrip[int32, provider.Int32](t, []int32{0, 1, -1, 1 << 30, -1 << 31})
	roundTrip[int64, provider.CheckedInt64](t, []int64{0, 1, -1, 1 << 52, -1 << 52})
	roundTrip[uint8, provider.CheckedUint8](t, []uint8{0, 1, 255})
	roundTrip[uint16, provider.Uint16](t, []uint16{0, 1, 65535})
	roundTrip[uint32, provider.CheckedUint32](t, []uint32{0, 1, math.MaxUint32})
	roundTrip[uint64, provider.Uint64](t, []uint64{0, 1, 1 << 53})
	roundTrip[float64, provider.Float64](t, []float64{0, -1.5, 1e300})
}

func TestConversion_RoundingModes(t *testing.T) {
	t.Parallel()

	var p provider.Int32
	cases := []struct {
		in   float64
		mode algebra.Rounding
		want int32
	}{
		{2.5, algebra.RoundNearest, 2},
		{3.5, algebra.RoundNearest, 4},
		{-2.5, algebra.RoundNearest, -2},
		{2.4, algebra.RoundNearest, 2},
		{2.1, algebra.RoundUp, 3},
		{-2.9, algebra.RoundUp, -2},
		{2.9, algebra.RoundDown, 2},
		{-2.1, algebra.RoundDown, -3},
	}
	for _, tc := range cases {
		got, err := p.FromFloat64Rounded(tc.in, tc.mode)
		require.NoError(t, err)
		assert.Equalf(t, tc.want, got, "%v rounded %s", tc.in, tc.mode)
	}

	// without a mode, conversion truncates toward zero
	assert.Equal(t, int32(-2), p.FromFloat64(-2.9))
	assert.Equal(t, int32(2), p.FromFloat64(2.9))
}

func TestConversion_UnsupportedRounding(t *testing.T) {
	t.Parallel()

	bad := algebra.Rounding(3)
	_, err := provider.Int8{}.FromFloat64Rounded(1, bad)
	requireArithError(t, err, algebra.ErrUnsupportedRounding)
	_, err = provider.CheckedUint64{}.FromFloat64Rounded(1, bad)
	requireArithError(t, err, algebra.ErrUnsupportedRounding)
	_, err = provider.Decimal{}.FromFloat64Rounded(1, bad)
	requireArithError(t, err, algebra.ErrUnsupportedRounding)
	assert.Equal(t, "Rounding(3)", bad.String())
}

func TestConversion_CheckedRoundedOverflow(t *testing.T) {
	t.Parallel()

	var c provider.CheckedUint8
	v, err := c.FromFloat64Rounded(254.5, algebra.RoundUp)
	require.NoError(t, err)
	assert.Equal(t, uint8(255), v)

	_, err = c.FromFloat64Rounded(255.5, algebra.RoundUp)
	requireArithError(t, err, algebra.ErrOverflow)

	var s provider.CheckedInt8
	_, err = s.FromFloat64Rounded(-128.5, algebra.RoundDown)
	requireArithError(t, err, algebra.ErrOverflow)
	v8, err := s.FromFloat64Rounded(-128.5, algebra.RoundUp)
	require.NoError(t, err)
	assert.Equal(t, int8(-128), v8)
}

func TestConversion_Widening(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(-5), provider.CheckedInt64{}.FromInt64(-5))
	assert.Equal(t, uint64(math.MaxUint64), provider.CheckedUint64{}.FromUint64(math.MaxUint64))
	assert.Equal(t, int8(-1), provider.Int8{}.FromUint64(255), "unchecked narrowing wraps")
	assert.Equal(t, uint8(255), provider.Uint8{}.FromInt64(-1), "unchecked narrowing wraps")
}
