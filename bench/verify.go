// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/genmath/aggregate"
	"github.com/katalvlaran/genmath/algebra"
	"github.com/katalvlaran/genmath/provider"
)

const (
	opVerify = "Verify"

	// VerifyTolerance is the absolute tolerance for float comparisons.
	VerifyTolerance = 1e-9
)

// Check is one comparison of a generic result against its oracle.
type Check struct {
	Name string  `yaml:"name"`
	Got  float64 `yaml:"got"`
	Want float64 `yaml:"want"`
	OK   bool    `yaml:"ok"`
}

// Verification lists every check Verify performed.
type Verification struct {
	Size   int     `yaml:"size"`
	Checks []Check `yaml:"checks"`
}

// Failed returns the names of the checks that did not pass.
func (v *Verification) Failed() []string {
	var out []string
	for _, c := range v.Checks {
		if !c.OK {
			out = append(out, c.Name)
		}
	}

	return out
}

// Verify runs the aggregates over the sequence of length n and compares them
// with independent oracles:
//   - float64, fuzzy float64 and decimal mean/sigma against gonum's
//     stat.PopMeanStdDev;
//   - int32 and int64 average/sigma against a native loop that truncates at
//     the same steps.
//
// The Verification is always returned when n > 0. The error wraps
// ErrMismatch and names the failed checks, or is ErrEmptyDataset for n <= 0.
func Verify(n int) (*Verification, error) {
	if n <= 0 {
		return nil, benchErrorf(opVerify, ErrEmptyDataset)
	}

	floats := Dataset[provider.Float64, float64](n)
	wantMean, wantStd := stat.PopMeanStdDev(floats, nil)

	v := &Verification{Size: n}
	add := func(name string, got, want, tol float64) {
		v.Checks = append(v.Checks, Check{
			Name: name,
			Got:  got,
			Want: want,
			OK:   math.Abs(got-want) <= tol,
		})
	}

	sigma, avg := aggregate.Sigma[provider.Float64](floats)
	add("float64/average", avg, wantMean, VerifyTolerance)
	add("float64/sigma", sigma, wantStd, VerifyTolerance)

	sigma, avg = aggregate.Sigma[provider.Fuzzy[float64, provider.Tol1e9]](floats)
	add("fuzzy-float64/average", avg, wantMean, VerifyTolerance)
	add("fuzzy-float64/sigma", sigma, wantStd, VerifyTolerance)

	dsigma, davg := rationalStats[provider.Decimal, decimal.Decimal](n)
	add("decimal/average", davg, wantMean, VerifyTolerance)
	add("decimal/sigma", dsigma, wantStd, VerifyTolerance)

	i64Mean, i64Std := truncatedMeanStd(n)
	isigma, iavg, err := integerStats[provider.CheckedInt64, int64](n)
	if err != nil {
		return nil, benchErrorf(opVerify, err)
	}
	add("int64/average", iavg, i64Mean, 0)
	add("int64/sigma", isigma, i64Std, 0)

	isigma, iavg, err = integerStats[provider.CheckedInt32, int32](n)
	if err != nil {
		return nil, benchErrorf(opVerify, err)
	}
	add("int32/average", iavg, i64Mean, 0)
	add("int32/sigma", isigma, i64Std, 0)

	if failed := v.Failed(); len(failed) > 0 {
		return v, benchErrorf(opVerify, fmt.Errorf("%s: %w", strings.Join(failed, ", "), ErrMismatch))
	}

	return v, nil
}

// Write renders the verification as a key/value table or YAML.
func (v *Verification) Write(w io.Writer, f Format) error {
	switch f {
	case FormatYAML:
		return writeYAML(w, v)
	case FormatText:
		rows := make([][]string, 0, len(v.Checks))
		for _, c := range v.Checks {
			status := "ok"
			if !c.OK {
				status = "FAIL"
			}
			rows = append(rows, []string{c.Name, fmt.Sprint(c.Got), fmt.Sprint(c.Want), status})
		}
		title := fmt.Sprintf("verify, size %d", v.Size)
		_, err := io.WriteString(w, fmtTable(title, []string{"Check", "Got", "Want", "Status"}, rows))
		return err
	default:
		return benchErrorf(string(f), ErrUnknownFormat)
	}
}

func rationalStats[P aggregate.Provider[T], T any](n int) (sigma, avg float64) {
	var p P
	s, a := aggregate.Sigma[P](Dataset[P, T](n))

	return p.ToFloat64(s), p.ToFloat64(a)
}

// integerStats reports checked-provider failures as errors.
func integerStats[P aggregate.Provider[T], T any](n int) (sigma, avg float64, err error) {
	var p P
	xs := Dataset[P, T](n)
	type pair struct{ s, a T }
	r, err := algebra.Catch(func() pair {
		s, a := aggregate.Sigma[P](xs)
		return pair{s, a}
	})
	if err != nil {
		return 0, 0, err
	}

	return p.ToFloat64(r.s), p.ToFloat64(r.a), nil
}

// truncatedMeanStd recomputes integer average and sigma with plain int64
// arithmetic, truncating where an integer provider does.
func truncatedMeanStd(n int) (mean, std float64) {
	var sum int64
	for i := 0; i < n; i++ {
		sum += int64(bucket(i, n))
	}
	avg := sum / int64(n)

	var acc int64
	for i := 0; i < n; i++ {
		d := int64(bucket(i, n)) - avg
		acc += d * d
	}

	return float64(avg), float64(int64(math.Sqrt(float64(acc / int64(n)))))
}
