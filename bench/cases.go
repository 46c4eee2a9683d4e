// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"math"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/genmath/aggregate"
	"github.com/katalvlaran/genmath/num"
	"github.com/katalvlaran/genmath/provider"
)

// Stats is the outcome of one measured round, formatted with %v.
type Stats struct {
	Sum     string `yaml:"sum"`
	Average string `yaml:"average"`
	Min     string `yaml:"min"`
	Max     string `yaml:"max"`
	Sigma   string `yaml:"sigma"`
}

// Case is a named measurement. Prepare builds the dataset outside the timed
// region and returns the function that is timed.
type Case struct {
	Name        string
	Type        string
	Description string

	// OptIn cases run only when named; they are left out of Defaults.
	OptIn   bool
	prepare func(n int) func() Stats
}

// Prepare builds the dataset of length n and returns the timed function.
// n must be positive.
func (c Case) Prepare(n int) func() Stats { return c.prepare(n) }

var registry = []Case{
	{
		Name:        "native-float64",
		Type:        "float64",
		Description: "hand-written float64 loops, no provider",
		prepare:     nativeFloat64,
	},
	optIn(aggregateCase[provider.CheckedInt16, int16]("checked-int16", "aggregate over checked int16; the sum overflows past ~7,000 elements")),
	aggregateCase[provider.Int32, int32]("int32", "aggregate over unchecked int32"),
	aggregateCase[provider.CheckedInt32, int32]("checked-int32", "aggregate over checked int32"),
	aggregateCase[provider.Int64, int64]("int64", "aggregate over unchecked int64"),
	aggregateCase[provider.CheckedInt64, int64]("checked-int64", "aggregate over checked int64"),
	aggregateCase[provider.Float32, float32]("float32", "aggregate over float32"),
	aggregateCase[provider.Float64, float64]("float64", "aggregate over float64"),
	aggregateCase[provider.Fuzzy[float64, provider.Tol1e9], float64]("fuzzy-float64", "aggregate over float64, epsilon 1e-9"),
	aggregateCase[provider.Decimal, decimal.Decimal]("decimal", "aggregate over 28-digit decimal"),
	aggregateCase[provider.CheckedDecimal, decimal.Decimal]("checked-decimal", "aggregate over checked 28-digit decimal"),
	{
		Name:        "wrapper-int64",
		Type:        "int64",
		Description: "loops over num.Signed[int64, CheckedInt64]",
		prepare:     wrapperInt64,
	},
	{
		Name:        "wrapper-float64",
		Type:        "float64",
		Description: "loops over num.Rational[float64, Float64]",
		prepare:     wrapperFloat64,
	},
}

// Cases returns every registered case in registration order.
func Cases() []Case {
	return slices.Clone(registry)
}

// Defaults returns the cases run when none are named: every case except the
// OptIn ones, in registration order.
func Defaults() []Case {
	out := make([]Case, 0, len(registry))
	for _, c := range registry {
		if !c.OptIn {
			out = append(out, c)
		}
	}

	return out
}

// Names returns the registered case names in registration order.
func Names() []string {
	names := make([]string, len(registry))
	for i, c := range registry {
		names[i] = c.Name
	}

	return names
}

// Lookup returns the case called name.
func Lookup(name string) (Case, error) {
	i := slices.IndexFunc(registry, func(c Case) bool { return c.Name == name })
	if i < 0 {
		return Case{}, benchErrorf(name, ErrUnknownCase)
	}

	return registry[i], nil
}

func optIn(c Case) Case {
	c.OptIn = true
	return c
}

func aggregateCase[P aggregate.Provider[T], T any](name, desc string) Case {
	var zero T

	return Case{
		Name:        name,
		Type:        fmt.Sprintf("%T", zero),
		Description: desc,
		prepare: func(n int) func() Stats {
			xs := Dataset[P, T](n)

			return func() Stats {
				sum := aggregate.Sum[P](xs)
				lo, hi := aggregate.Range[P](xs)
				sigma, avg := aggregate.Sigma[P](xs)

				return Stats{
					Sum:     fmt.Sprint(sum),
					Average: fmt.Sprint(avg),
					Min:     fmt.Sprint(lo),
					Max:     fmt.Sprint(hi),
					Sigma:   fmt.Sprint(sigma),
				}
			}
		},
	}
}

func nativeFloat64(n int) func() Stats {
	xs := Dataset[provider.Float64, float64](n)

	return func() Stats {
		var sum float64
		lo, hi := xs[0], xs[0]
		for _, v := range xs {
			sum += v
			lo = min(lo, v)
			hi = max(hi, v)
		}
		avg := sum / float64(len(xs))

		var acc float64
		for _, v := range xs {
			d := v - avg
			acc += d * d
		}
		sigma := math.Sqrt(acc / float64(len(xs)))

		return Stats{
			Sum:     fmt.Sprint(sum),
			Average: fmt.Sprint(avg),
			Min:     fmt.Sprint(lo),
			Max:     fmt.Sprint(hi),
			Sigma:   fmt.Sprint(sigma),
		}
	}
}

func wrapperFloat64(n int) func() Stats {
	type rational = num.Rational[float64, provider.Float64]

	xs := make([]rational, n)
	for i := range xs {
		xs[i] = num.RationalFromUint64[float64, provider.Float64](uint64(bucket(i, n)))
	}
	count := num.RationalFromUint64[float64, provider.Float64](uint64(n))

	return func() Stats {
		var sum rational
		lo, hi := xs[0], xs[0]
		for _, v := range xs {
			sum = sum.Add(v)
			lo = lo.Min(v)
			hi = hi.Max(v)
		}
		avg := sum.Div(count)

		var acc rational
		for _, v := range xs {
			acc = acc.Add(v.Sub(avg).Sqr())
		}

		return Stats{
			Sum:     sum.String(),
			Average: avg.String(),
			Min:     lo.String(),
			Max:     hi.String(),
			Sigma:   acc.Div(count).Sqrt().String(),
		}
	}
}

func wrapperInt64(n int) func() Stats {
	type signed = num.Signed[int64, provider.CheckedInt64]

	xs := make([]signed, n)
	for i := range xs {
		xs[i] = num.NewSigned[int64, provider.CheckedInt64](int64(bucket(i, n)))
	}
	count := num.SignedFromUint64[int64, provider.CheckedInt64](uint64(n))

	return func() Stats {
		var sum signed
		lo, hi := xs[0], xs[0]
		for _, v := range xs {
			sum = sum.Add(v)
			lo = lo.Min(v)
			hi = hi.Max(v)
		}
		avg := sum.Div(count)

		var acc signed
		for _, v := range xs {
			acc = acc.Add(v.Sub(avg).Sqr())
		}

		return Stats{
			Sum:     sum.String(),
			Average: avg.String(),
			Min:     lo.String(),
			Max:     hi.String(),
			Sigma:   acc.Div(count).Sqrt().String(),
		}
	}
}
