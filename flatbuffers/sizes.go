package flatbuffers

type (
	// UOffsetT is an unsigned offset. Stored references are relative to the
	// position they are stored at and always point forward.
	UOffsetT uint32
	// SOffsetT is a signed offset, used to point from a table to its vtable.
	SOffsetT int32
	// VOffsetT is a 16-bit offset used inside vtables.
	VOffsetT uint16
)

const (
	SizeUint8   = 1
	SizeUint16  = 2
	SizeUint32  = 4
	SizeUint64  = 8
	SizeInt8    = 1
	SizeInt16   = 2
	SizeInt32   = 4
	SizeInt64   = 8
	SizeFloat32 = 4
	SizeFloat64 = 8
	SizeByte    = 1
	SizeBool    = 1

	SizeUOffsetT = 4
	SizeSOffsetT = 4
	SizeVOffsetT = 2
)

const (
	// VtableMetadataFields is the number of voffsets in a vtable header:
	// the vtable byte size and the table byte size.
	VtableMetadataFields = 2

	// FileIdentifierLength is the length of the optional identifier that
	// follows the root offset.
	FileIdentifierLength = 4

	// MaxBufferSize is the largest buffer the builder will grow to.
	MaxBufferSize = 1<<31 - 1
)

// VtableOffset returns the vtable position of the field with the given
// slot index.
func VtableOffset(slot int) VOffsetT {
	return VOffsetT((slot + VtableMetadataFields) * SizeVOffsetT)
}

// SlotIndex is the inverse of VtableOffset.
func SlotIndex(vt VOffsetT) int {
	return int(vt)/SizeVOffsetT - VtableMetadataFields
}
