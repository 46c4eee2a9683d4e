// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"

	"github.com/katalvlaran/genmath/algebra"
)

// Bundle is the capability set Point and Size need.
type Bundle[T any] interface {
	algebra.Adder[T]
	algebra.Subtracter[T]
	algebra.ZeroProvider[T]
	algebra.Comparer[T]
}

// Point is a location (X, Y).
type Point[T any, P Bundle[T]] struct {
	X, Y T
}

// Size is an extent Width × Height.
type Size[T any, P Bundle[T]] struct {
	Width, Height T
}

// NewPoint returns the point (x, y).
func NewPoint[T any, P Bundle[T]](x, y T) Point[T, P] {
	return Point[T, P]{X: x, Y: y}
}

// NewSize returns the size w × h.
func NewSize[T any, P Bundle[T]](w, h T) Size[T, P] {
	return Size[T, P]{Width: w, Height: h}
}

// Add moves the point by s component-wise.
func (pt Point[T, P]) Add(s Size[T, P]) Point[T, P] {
	var p P
	return Point[T, P]{X: p.Add(pt.X, s.Width), Y: p.Add(pt.Y, s.Height)}
}

// Sub subtracts s component-wise and returns the result as a Size.
func (pt Point[T, P]) Sub(s Size[T, P]) Size[T, P] {
	var p P
	return Size[T, P]{Width: p.Sub(pt.X, s.Width), Height: p.Sub(pt.Y, s.Height)}
}

// Offset moves the point by (dx, dy).
func (pt Point[T, P]) Offset(dx, dy T) Point[T, P] {
	return pt.Add(Size[T, P]{Width: dx, Height: dy})
}

// Equal compares both coordinates with P.Equal.
func (pt Point[T, P]) Equal(o Point[T, P]) bool {
	var p P
	return p.Equal(pt.X, o.X) && p.Equal(pt.Y, o.Y)
}

// Hash is P.Hash(X) XOR P.Hash(Y).
func (pt Point[T, P]) Hash() uint64 {
	var p P
	return p.Hash(pt.X) ^ p.Hash(pt.Y)
}

// IsEmpty reports whether both coordinates equal P.Zero.
func (pt Point[T, P]) IsEmpty() bool {
	var p P
	return p.Equal(pt.X, p.Zero()) && p.Equal(pt.Y, p.Zero())
}

func (pt Point[T, P]) String() string {
	return fmt.Sprintf("(%v, %v)", pt.X, pt.Y)
}

func (sz Size[T, P]) Add(o Size[T, P]) Size[T, P] {
	var p P
	return Size[T, P]{Width: p.Add(sz.Width, o.Width), Height: p.Add(sz.Height, o.Height)}
}

func (sz Size[T, P]) Sub(o Size[T, P]) Size[T, P] {
	var p P
	return Size[T, P]{Width: p.Sub(sz.Width, o.Width), Height: p.Sub(sz.Height, o.Height)}
}

// Equal compares both extents with P.Equal.
func (sz Size[T, P]) Equal(o Size[T, P]) bool {
	var p P
	return p.Equal(sz.Width, o.Width) && p.Equal(sz.Height, o.Height)
}

// Hash is P.Hash(Width) XOR P.Hash(Height).
func (sz Size[T, P]) Hash() uint64 {
	var p P
	return p.Hash(sz.Width) ^ p.Hash(sz.Height)
}

// IsEmpty reports whether both extents equal P.Zero.
func (sz Size[T, P]) IsEmpty() bool {
	var p P
	return p.Equal(sz.Width, p.Zero()) && p.Equal(sz.Height, p.Zero())
}

func (sz Size[T, P]) String() string {
	return fmt.Sprintf("%vx%v", sz.Width, sz.Height)
}
