// SPDX-License-Identifier: MIT

package provider

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/katalvlaran/genmath/algebra"
	"golang.org/x/exp/constraints"
)

// bitSize returns the width of T in bits.
func bitSize[T constraints.Integer]() uint {
	var z T
	return uint(unsafe.Sizeof(z)) * 8
}

// signedMin returns the most negative value of T.
func signedMin[T constraints.Signed]() T {
	return T(1) << (bitSize[T]() - 1)
}

// signedMax returns the largest value of T.
func signedMax[T constraints.Signed]() T {
	return ^signedMin[T]()
}

// unsignedMax returns the largest value of T.
func unsignedMax[T constraints.Unsigned]() T {
	return ^T(0)
}

// typeName returns the Go name of T for error messages.
func typeName[T any]() string {
	var z T
	return fmt.Sprintf("%T", z)
}

// arithError builds the *algebra.ArithmeticError for op on T.
func arithError[T any](op string, err error) *algebra.ArithmeticError {
	return algebra.NewArithmeticError(op, typeName[T](), err)
}

// roundFloat applies mode to v, tagging the error with op and T.
func roundFloat[T any](op string, v float64, mode algebra.Rounding) (float64, error) {
	r, err := mode.Apply(v)
	if err != nil {
		return 0, arithError[T](op, err)
	}

	return r, nil
}

// checkMode rejects a Rounding outside the supported set.
func checkMode[T any](op string, mode algebra.Rounding) error {
	if mode.Valid() {
		return nil
	}

	return arithError[T](op, fmt.Errorf("%s: %w", mode, algebra.ErrUnsupportedRounding))
}

// floatFitsSigned reports whether the integral float t lies in T's range.
// NaN never fits.
func floatFitsSigned[T constraints.Signed](t float64) bool {
	limit := math.Ldexp(1, int(bitSize[T]()-1)) // 2^(n-1)
	return t >= -limit && t < limit
}

// floatFitsUnsigned reports whether the integral float t lies in T's range.
// NaN never fits.
func floatFitsUnsigned[T constraints.Unsigned](t float64) bool {
	limit := math.Ldexp(1, int(bitSize[T]())) // 2^n
	return t >= 0 && t < limit
}
