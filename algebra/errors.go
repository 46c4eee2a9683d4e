// SPDX-License-Identifier: MIT
// Package algebra: sentinel error set and the arithmetic failure type.
//
// All failures raised by providers match one of the sentinels below via
// errors.Is. Checked providers panic with *ArithmeticError from methods that
// return a bare T; Catch converts such a panic back into an error.

package algebra

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow is returned when the mathematical result of an operation is
	// outside the range of the representation (checked providers only).
	ErrOverflow = errors.New("algebra: arithmetic overflow")

	// ErrDivideByZero is returned by checked providers on a zero divisor.
	ErrDivideByZero = errors.New("algebra: division by zero")

	// ErrUnsupportedRounding is returned when a Rounding value is outside the
	// closed set {RoundNearest, RoundUp, RoundDown}.
	ErrUnsupportedRounding = errors.New("algebra: rounding mode not supported")
)

// ArithmeticError describes a failed operation on a concrete representation.
type ArithmeticError struct {
	// Op is the provider operation name, e.g. "Add" or "FromFloat64".
	Op string

	// Type is the representation type name, e.g. "int8" or "decimal".
	Type string

	// Err is one of the package sentinels.
	Err error
}

// Error implements the error interface.
func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("%s(%s): %v", e.Op, e.Type, e.Err)
}

// Unwrap lets errors.Is / errors.As see the sentinel.
func (e *ArithmeticError) Unwrap() error { return e.Err }

// NewArithmeticError builds an *ArithmeticError for op on the named type.
func NewArithmeticError(op, typ string, err error) *ArithmeticError {
	return &ArithmeticError{Op: op, Type: typ, Err: err}
}

// Catch runs fn and returns its result. If fn panics with an *ArithmeticError
// the panic is stopped and returned as err; any other panic (including Go's
// native integer divide trap) propagates unchanged.
func Catch[T any](fn func() T) (res T, err error) {
	defer func() {
		if r := recover(); r != nil {
			ae, ok := r.(*ArithmeticError)
			if !ok {
				panic(r)
			}
			err = ae
		}
	}()

	return fn(), nil
}

// Must panics with err when it is not nil and returns v otherwise. It is the
// bridge from the Try* family to the panic-reporting capability surface.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}

	return v
}
