package flatbuffers

import (
	"bytes"
	"math"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/xerrors"
)

// WriteVtable serializes the vtable for the current object, if applicable.
//
// Before writing out the vtable, this checks pre-existing vtables for equality
// to this one. If an equal vtable is found, point the object to the existing
// vtable and return.
//
// Because vtable values are sensitive to alignment of object data, not all
// logically-equal vtables will be deduplicated. Tables start 4-byte aligned
// (see Prep), so tables whose fields were added most aligned first always
// are; StartObject documents that order.
//
// A vtable has the following format:
//
//	<VOffsetT: size of the vtable in bytes, including this value>
//	<VOffsetT: size of the object in bytes, including the vtable offset>
//	<VOffsetT: offset for a field> * N, where N is the number of fields in
//	        the schema for this type. Includes deprecated fields.
//
// Thus, a vtable is made of 2 + N elements, each SizeVOffsetT bytes wide.
// Trailing absent fields are trimmed; readers treat slots past the end as
// absent.
//
// An object has the following format:
//
//	<SOffsetT: offset to this object's vtable (may be negative)>
//	<byte: data>+
func (b *Builder) WriteVtable() (n UOffsetT) {
	// Prepend a zero scalar to the object. Later in this function we'll
	// write an offset here that points to the object's vtable:
	Prepend(b, SOffsetT(0))

	objectOffset := b.Offset()

	// Trim vtable of trailing zeroes.
	i := len(b.vtable) - 1
	for ; i >= 0 && b.vtable[i] == 0; i-- {
	}
	b.vtable = b.vtable[:i+1]

	vt := b.encodeVtable(objectOffset)
	sum := xxhash.Sum64(vt)
	existingVtable := b.vtables.find(b.Bytes, sum, vt)

	if existingVtable == 0 {
		// Did not find a vtable, so write this one to the buffer.
		b.Prep(SizeVOffsetT, len(vt))
		b.head -= UOffsetT(len(vt))
		copy(b.Bytes[b.head:], vt)

		// Next, write the offset to the new vtable in the
		// already-allocated SOffsetT at the beginning of this object:
		objectStart := SOffsetT(len(b.Bytes)) - SOffsetT(objectOffset)
		WriteSOffsetT(b.Bytes[objectStart:], SOffsetT(b.Offset())-SOffsetT(objectOffset))

		// Finally, store this vtable in memory for future
		// deduplication:
		b.vtables.add(sum, b.Offset())
	} else {
		// Found a duplicate vtable.
		objectStart := SOffsetT(len(b.Bytes)) - SOffsetT(objectOffset)
		b.head = UOffsetT(objectStart)

		// Write the offset to the found vtable in the
		// already-allocated SOffsetT at the beginning of this object:
		WriteSOffsetT(b.Bytes[b.head:], SOffsetT(existingVtable)-SOffsetT(objectOffset))
	}

	b.vtable = b.vtable[:0]
	return objectOffset
}

// encodeVtable renders the vtable of the open object into the scratch
// buffer, in final byte order.
func (b *Builder) encodeVtable(objectOffset UOffsetT) []byte {
	size := (len(b.vtable) + VtableMetadataFields) * SizeVOffsetT
	if cap(b.scratch) < size {
		b.scratch = make([]byte, size)
	}
	vt := b.scratch[:size]

	objectSize := objectOffset - b.objectEnd
	if objectSize > math.MaxUint16 {
		panic(xerrors.Errorf("table of %d bytes: %w", objectSize, ErrOffsetOverflow))
	}
	WriteVOffsetT(vt[0:], VOffsetT(size))
	WriteVOffsetT(vt[SizeVOffsetT:], VOffsetT(objectSize))

	for i, pos := range b.vtable {
		var off UOffsetT
		if pos != 0 {
			// Forward reference to field;
			// use 32bit number to assert no overflow:
			off = objectOffset - pos
			if off > math.MaxUint16 {
				panic(xerrors.Errorf("field %d at %d: %w", i, off, ErrOffsetOverflow))
			}
		}
		WriteVOffsetT(vt[(VtableMetadataFields+i)*SizeVOffsetT:], VOffsetT(off))
	}
	return vt
}

// vtableCache indexes the vtables already written to one buffer by a hash of
// their bytes.
type vtableCache struct {
	byHash map[uint64][]UOffsetT
}

func (c *vtableCache) find(buf []byte, sum uint64, vt []byte) UOffsetT {
	for _, off := range c.byHash[sum] {
		start := len(buf) - int(off)
		if start+len(vt) <= len(buf) && bytes.Equal(buf[start:start+len(vt)], vt) {
			return off
		}
	}
	return 0
}

func (c *vtableCache) add(sum uint64, off UOffsetT) {
	if c.byHash == nil {
		c.byHash = make(map[uint64][]UOffsetT)
	}
	c.byHash[sum] = append(c.byHash[sum], off)
}

func (c *vtableCache) reset() {
	for k := range c.byHash {
		delete(c.byHash, k)
	}
}

// NumVtables returns the number of distinct vtables written so far.
func (b *Builder) NumVtables() int {
	n := 0
	for _, offs := range b.vtables.byHash {
		n += len(offs)
	}
	return n
}

// Vtable is a read-only view of a vtable inside a finished buffer.
type Vtable struct {
	Bytes []byte
	Pos   UOffsetT
}

// Size is the byte size of the vtable, header included.
func (v Vtable) Size() VOffsetT {
	return GetVOffsetT(v.Bytes[v.Pos:])
}

// TableSize is the byte size of the table, vtable offset included.
func (v Vtable) TableSize() VOffsetT {
	return GetVOffsetT(v.Bytes[v.Pos+SizeVOffsetT:])
}

// NumSlots is the number of field slots stored in the vtable.
func (v Vtable) NumSlots() int {
	return int(v.Size())/SizeVOffsetT - VtableMetadataFields
}

// Get returns the table-relative offset of the field at vtable position
// vtableOffset, or 0 if the field is absent.
func (v Vtable) Get(vtableOffset VOffsetT) VOffsetT {
	if vtableOffset < v.Size() {
		return GetVOffsetT(v.Bytes[v.Pos+UOffsetT(vtableOffset):])
	}
	return 0
}

// Field returns the table-relative offset of the field with the given slot
// index, or 0 if the field is absent.
func (v Vtable) Field(slot int) VOffsetT {
	return v.Get(VtableOffset(slot))
}
