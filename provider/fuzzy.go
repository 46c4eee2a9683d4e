// SPDX-License-Identifier: MIT

package provider

import (
	"math"

	"github.com/katalvlaran/genmath/algebra"
	"golang.org/x/exp/constraints"
)

// Tolerance supplies the epsilon of a fuzzy provider. Implementations are
// zero-sized types so the provider itself stays zero-sized.
type Tolerance interface {
	Epsilon() float64
}

// Predefined tolerances.
type (
	Tol1e3  struct{}
	Tol1e6  struct{}
	Tol1e9  struct{}
	Tol1e12 struct{}
)

func (Tol1e3) Epsilon() float64  { return 1e-3 }
func (Tol1e6) Epsilon() float64  { return 1e-6 }
func (Tol1e9) Epsilon() float64  { return 1e-9 }
func (Tol1e12) Epsilon() float64 { return 1e-12 }

// Fuzzy is Float with approximate comparison:
//
//	Equal(a, b)   ⇔ |a−b| ≤ ε
//	Compare(a, b) = −1 if a < b−ε, +1 if a > b+ε, 0 otherwise
//
// The relation is not transitive. Hash is constant, the only hash consistent
// with a non-transitive equality.
type Fuzzy[T constraints.Float, E Tolerance] struct {
	Float[T]
}

var _ algebra.RationalMath[float64] = Fuzzy[float64, Tol1e9]{}

func (Fuzzy[T, E]) eps() float64 {
	var e E
	return e.Epsilon()
}

// Epsilon returns ε converted to T.
func (f Fuzzy[T, E]) Epsilon() T { return T(f.eps()) }

func (f Fuzzy[T, E]) Equal(a, b T) bool {
	return math.Abs(float64(a)-float64(b)) <= f.eps()
}

func (f Fuzzy[T, E]) Compare(a, b T) int {
	e := f.eps()
	x, y := float64(a), float64(b)
	switch {
	case x < y-e:
		return -1
	case x > y+e:
		return 1
	default:
		return 0
	}
}

func (Fuzzy[T, E]) Hash(T) uint64 { return 0 }

func (f Fuzzy[T, E]) Min(a, b T) T {
	if f.Compare(a, b) <= 0 {
		return a
	}

	return b
}

func (f Fuzzy[T, E]) Max(a, b T) T {
	if f.Compare(a, b) >= 0 {
		return a
	}

	return b
}
