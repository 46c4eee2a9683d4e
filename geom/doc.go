// SPDX-License-Identifier: MIT

// Package geom provides generic 2D values, Point and Size, over any
// representation type T whose arithmetic comes from a provider P.
//
//	type P = geom.Point[int32, provider.Int32]
//	type S = geom.Size[int32, provider.Int32]
//
//	p := P{}.Add(S{Width: 1})  // (1, 0)
//	p.Sub(S{Width: 1})         // 0x0 as a Size
//
// Equality and hashing go through the provider, so over a fuzzy provider two
// points within epsilon on both axes are Equal. Hash XORs the component
// hashes, which keeps Equal values hashing alike for every provider in this
// module (fuzzy providers hash to a constant).
package geom
