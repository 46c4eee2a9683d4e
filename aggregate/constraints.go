// SPDX-License-Identifier: MIT

package aggregate

import "github.com/katalvlaran/genmath/algebra"

// Summer can fold a sequence by addition.
type Summer[T any] interface {
	algebra.Adder[T]
	algebra.ZeroProvider[T]
}

// Averager can divide a sum by an element count.
type Averager[T any] interface {
	Summer[T]
	algebra.Divider[T]
	algebra.Converter[T]
}

// Ranker can seed and run a linear extreme-value scan.
type Ranker[T any] interface {
	algebra.Limits[T]
	algebra.Comparer[T]
}

// Deviator has everything Variance and Sigma need.
type Deviator[T any] interface {
	Averager[T]
	algebra.Subtracter[T]
	algebra.Rooter[T]
}

// Provider is the full capability set of this package.
type Provider[T any] interface {
	Deviator[T]
	Ranker[T]
}
