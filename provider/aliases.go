// SPDX-License-Identifier: MIT

package provider

// Unchecked integer providers.
type (
	Uint8  = Unsigned[uint8]
	Uint16 = Unsigned[uint16]
	Uint32 = Unsigned[uint32]
	Uint64 = Unsigned[uint64]

	Int8  = Signed[int8]
	Int16 = Signed[int16]
	Int32 = Signed[int32]
	Int64 = Signed[int64]
)

// Checked integer providers.
type (
	CheckedUint8  = CheckedUnsigned[uint8]
	CheckedUint16 = CheckedUnsigned[uint16]
	CheckedUint32 = CheckedUnsigned[uint32]
	CheckedUint64 = CheckedUnsigned[uint64]

	CheckedInt8  = CheckedSigned[int8]
	CheckedInt16 = CheckedSigned[int16]
	CheckedInt32 = CheckedSigned[int32]
	CheckedInt64 = CheckedSigned[int64]
)

// Exact float providers.
type (
	Float32 = Float[float32]
	Float64 = Float[float64]
)
