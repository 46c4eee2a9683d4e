// SPDX-License-Identifier: MIT

package algebra

import (
	"fmt"
	"math"
)

// Rounding selects how a float64 is narrowed to a representation without
// fractional precision.
//
//   - RoundNearest: nearest integer, ties to even (banker's rounding).
//   - RoundUp: toward +Inf (ceiling).
//   - RoundDown: toward −Inf (floor).
//
// The set is closed: any other value is rejected with ErrUnsupportedRounding.
type Rounding uint8

const (
	// RoundNearest rounds to the nearest integer, ties to even.
	RoundNearest Rounding = iota

	// RoundUp rounds toward positive infinity.
	RoundUp

	// RoundDown rounds toward negative infinity.
	RoundDown
)

// String returns the mode name.
func (r Rounding) String() string {
	switch r {
	case RoundNearest:
		return "nearest"
	case RoundUp:
		return "up"
	case RoundDown:
		return "down"
	default:
		return fmt.Sprintf("Rounding(%d)", uint8(r))
	}
}

// Valid reports whether r belongs to the supported set.
func (r Rounding) Valid() bool { return r <= RoundDown }

// Apply rounds v to an integral float64 according to r.
// NaN and ±Inf pass through unchanged; the caller decides whether they fit.
func (r Rounding) Apply(v float64) (float64, error) {
	switch r {
	case RoundNearest:
		return math.RoundToEven(v), nil
	case RoundUp:
		return math.Ceil(v), nil
	case RoundDown:
		return math.Floor(v), nil
	default:
		return v, fmt.Errorf("%s: %w", r, ErrUnsupportedRounding)
	}
}
