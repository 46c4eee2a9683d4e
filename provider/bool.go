// SPDX-License-Identifier: MIT

package provider

import "github.com/katalvlaran/genmath/algebra"

// Bool implements algebra.LogicMath: logical operators over {false, true}
// with false < true, Zero = false and One = true.
type Bool struct{}

var _ algebra.LogicMath[bool] = Bool{}

func (Bool) And(a, b bool) bool { return a && b }
func (Bool) Or(a, b bool) bool  { return a || b }
func (Bool) Xor(a, b bool) bool { return a != b }
func (Bool) Not(a bool) bool    { return !a }

func (Bool) Zero() bool { return false }
func (Bool) One() bool  { return true }

func (Bool) Compare(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	default:
		return 1
	}
}

func (Bool) Equal(a, b bool) bool { return a == b }

func (Bool) Hash(a bool) uint64 {
	if a {
		return 1
	}

	return 0
}

func (Bool) Abs(a bool) bool    { return a }
func (Bool) Min(a, b bool) bool { return a && b }
func (Bool) Max(a, b bool) bool { return a || b }
