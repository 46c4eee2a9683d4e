// SPDX-License-Identifier: MIT

package provider_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/genmath/algebra"
	"github.com/katalvlaran/genmath/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// FloatSuite exercises the exact float providers.
type FloatSuite struct {
	suite.Suite
}

func TestFloatSuite(t *testing.T) {
	suite.Run(t, new(FloatSuite))
}

// TestAdditionGroup checks the group laws on values where float addition is exact.
func (s *FloatSuite) TestAdditionGroup() {
	requireAdditionGroup[float64, provider.Float64](s.T(), []float64{0, 1, -2.5, 1024, 0.125})
	requireAdditionGroup[float32, provider.Float32](s.T(), []float32{0, 1, -2.5, 1024, 0.125})
}

// TestMultiplicationGroup checks a·a⁻¹ = 1 on powers of two (exact inverses).
func (s *FloatSuite) TestMultiplicationGroup() {
	requireMultiplicationGroup[float64, provider.Float64](s.T(), []float64{1, 2, 0.5, -4, 1024})
	requireMultiplicationGroup[float32, provider.Float32](s.T(), []float32{1, 2, 0.5, -4, 1024})
}

// TestLimits checks MinValue/MaxValue/Epsilon per width.
func (s *FloatSuite) TestLimits() {
	require.Equal(s.T(), math.MaxFloat64, provider.Float64{}.MaxValue())
	require.Equal(s.T(), -math.MaxFloat64, provider.Float64{}.MinValue())
	require.Equal(s.T(), math.SmallestNonzeroFloat64, provider.Float64{}.Epsilon())
	require.Equal(s.T(), float32(math.MaxFloat32), provider.Float32{}.MaxValue())
	require.Equal(s.T(), float32(math.SmallestNonzeroFloat32), provider.Float32{}.Epsilon())
	require.Equal(s.T(), float32(-math.MaxFloat32), provider.Float32{}.MinValue())
	require.Equal(s.T(), float32(math.MaxFloat32), provider.Fuzzy[float32, provider.Tol1e3]{}.MaxValue())
	require.False(s.T(), math.IsInf(float64(provider.Float32{}.MaxValue()), 0))
	require.Greater(s.T(), provider.Float32{}.Epsilon(), float32(0))
}

// TestDivisionByZero follows IEEE 754.
func (s *FloatSuite) TestDivisionByZero() {
	var p provider.Float64
	require.True(s.T(), math.IsInf(p.Div(1, 0), 1))
	require.True(s.T(), math.IsInf(p.Inv(p.Neg(0)), -1))
	require.True(s.T(), math.IsNaN(p.Div(0, 0)))
}

// TestComparer checks ordering, NaN handling and hashing of signed zeros.
func (s *FloatSuite) TestComparer() {
	var p provider.Float64
	nan := math.NaN()
	negZero := math.Copysign(0, -1)

	require.Equal(s.T(), -1, p.Compare(1, 2))
	require.Equal(s.T(), 1, p.Compare(2, 1))
	require.Equal(s.T(), -1, p.Compare(nan, -math.MaxFloat64))
	require.True(s.T(), p.Equal(nan, nan))
	require.True(s.T(), p.Equal(0, negZero))
	require.Equal(s.T(), p.Hash(0), p.Hash(negZero))
	require.Equal(s.T(), p.Hash(nan), p.Hash(-nan))
	require.Equal(s.T(), 3.5, p.Abs(-3.5))
	require.Equal(s.T(), -1.0, p.Min(-1, 1))
	require.Equal(s.T(), 1.0, p.Max(-1, 1))
}

// TestTranscendental spot-checks trig, exp and log.
func (s *FloatSuite) TestTranscendental() {
	var p provider.Float64
	require.InDelta(s.T(), 1.0, p.Sin(math.Pi/2), 1e-15)
	require.InDelta(s.T(), -1.0, p.Cos(math.Pi), 1e-15)
	require.InDelta(s.T(), 1.0, p.Tan(math.Pi/4), 1e-15)
	require.InDelta(s.T(), math.Pi/2, p.Asin(1), 1e-15)
	require.InDelta(s.T(), math.Pi, p.Acos(-1), 1e-15)
	require.InDelta(s.T(), math.Pi/4, p.Atan(1), 1e-15)
	require.InDelta(s.T(), -3*math.Pi/4, p.Atan2(-1, -1), 1e-15)
	require.InDelta(s.T(), math.E, p.Exp(1), 1e-15)
	require.InDelta(s.T(), 1.0, p.Log(math.E), 1e-15)

	var q provider.Float32
	require.InDelta(s.T(), float32(1.4142135), q.Sqrt(2), 1e-7)
	require.Equal(s.T(), float32(6.25), q.Sqr(2.5))
}

// TestRoundTrip checks convertFrom(toFloat64(a)) == a on exactly representable values.
func (s *FloatSuite) TestRoundTrip() {
	var p provider.Float32
	for _, v := range []float32{0, 1, -1, 0.5, 1 << 20, -12345} {
		require.Equal(s.T(), v, p.FromFloat64(p.ToFloat64(v)))
	}
	require.Equal(s.T(), float32(42), p.FromInt64(42))
	require.Equal(s.T(), float32(42), p.FromUint64(42))
}

func TestFuzzy_EqualWithinEpsilon(t *testing.T) {
	t.Parallel()

	var p64 provider.Fuzzy[float64, provider.Tol1e6]
	e := p64.Epsilon()
	for _, a := range []float64{0, 1, -3.25, 1000} {
		assert.Truef(t, p64.Equal(a, a+e/2), "a=%v, a+e/2 must be equal", a)
		assert.Falsef(t, p64.Equal(a, a+2*e), "a=%v, a+2e must differ", a)
	}

	var p32 provider.Fuzzy[float32, provider.Tol1e3]
	e32 := p32.Epsilon()
	for _, a := range []float32{0, 1, -3.25} {
		assert.True(t, p32.Equal(a, a+e32/2))
		assert.False(t, p32.Equal(a, a+2*e32))
	}
}

func TestFuzzy_CompareAndNonTransitivity(t *testing.T) {
	t.Parallel()

	var p provider.Fuzzy[float64, provider.Tol1e3]
	assert.Equal(t, 0, p.Compare(1.0, 1.0005))
	assert.Equal(t, -1, p.Compare(1.0, 1.002))
	assert.Equal(t, 1, p.Compare(1.002, 1.0))

	// a≈b and b≈c but not a≈c: a documented property of tolerance order.
	a, b, c := 1.0, 1.0008, 1.0016
	assert.True(t, p.Equal(a, b))
	assert.True(t, p.Equal(b, c))
	assert.False(t, p.Equal(a, c))

	assert.Equal(t, p.Hash(a), p.Hash(b))
	assert.Equal(t, 1.0, p.Min(1.0, 1.0005), "ties keep the first argument")
	assert.Equal(t, 1.002, p.Max(1.0, 1.002))
}

func TestFuzzy_MultiplicationGroup(t *testing.T) {
	t.Parallel()

	// 1/3·3 is not exact in binary; the fuzzy provider accepts it.
	requireMultiplicationGroup[float64, provider.Fuzzy[float64, provider.Tol1e12]](t, []float64{3, 7, -11, 0.1, 1e6})
	requireMultiplicationGroup[float32, provider.Fuzzy[float32, provider.Tol1e6]](t, []float32{3, 7, -11, 0.1})
}

func TestFloat_FromFloat64Rounded(t *testing.T) {
	t.Parallel()

	var p provider.Float64
	v, err := p.FromFloat64Rounded(2.5, algebra.RoundUp)
	require.NoError(t, err)
	assert.Equal(t, 2.5, v, "floats keep the fraction")

	_, err = p.FromFloat64Rounded(2.5, algebra.Rounding(9))
	requireArithError(t, err, algebra.ErrUnsupportedRounding)
}
