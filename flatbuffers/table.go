package flatbuffers

// Table wraps a byte slice and provides read access to its data.
//
// The variable `Pos` indicates the root of the FlatBuffers object therein.
//
// Table performs no bounds checking beyond what Go slices do: it must only
// be used on buffers that passed the Verifier or that come from a trusted
// Builder.
type Table struct {
	Bytes []byte
	Pos   UOffsetT // Always < 1<<31.
}

// Init points the table at the object at pos in buf.
func (t *Table) Init(buf []byte, pos UOffsetT) {
	t.Bytes = buf
	t.Pos = pos
}

// Vtable returns the vtable of this object.
//
//	vtable:
//	+-------------------+-------------------+-------------------+-----+
//	| vtable length (2B)| object length (2B)| field0 offset (2B)| ... |
//	+-------------------+-------------------+-------------------+-----+
//
//	object:
//	+-------------------+-------------------+-------------------+-----+
//	| vtable soffset(4B)| data for field0   | data for field1   | ... |
//	+-------------------+-------------------+-------------------+-----+
func (t *Table) Vtable() Vtable {
	return Vtable{Bytes: t.Bytes, Pos: UOffsetT(SOffsetT(t.Pos) - t.GetSOffsetT(t.Pos))}
}

// Offset provides access into the Table's vtable.
//
// Fields which are deprecated are ignored by checking against the vtable's length.
//
// vtableOffset 是字段在 vtable 中的位置（4 + 2*槽位号），返回值是字段数据
// 相对表头 Pos 的偏移；为 0 表示字段不存在，调用方应使用默认值。
// 旧代码读新数据时槽位可能超出 vtable 长度，同样按不存在处理。
func (t *Table) Offset(vtableOffset VOffsetT) VOffsetT {
	return t.Vtable().Get(vtableOffset)
}

// Indirect retrieves the relative offset stored at `offset`.
//
// uoffset 总是相对它自身所在的位置向后指，所以目标 = 位置 + 存储的值。
func (t *Table) Indirect(off UOffsetT) UOffsetT {
	return off + GetUOffsetT(t.Bytes[off:])
}

// String gets a string from data stored inside the flatbuffer. The result
// aliases the buffer.
func (t *Table) String(off UOffsetT) string {
	b := t.ByteVector(off)
	return byteSliceToString(b)
}

// ByteVector gets a byte slice from data stored inside the flatbuffer.
//
// 返回的切片直接引用 buffer，不做拷贝。
func (t *Table) ByteVector(off UOffsetT) []byte {
	off += GetUOffsetT(t.Bytes[off:])
	start := off + UOffsetT(SizeUOffsetT)
	length := GetUOffsetT(t.Bytes[off:])
	return t.Bytes[start : start+length]
}

// BytesAt returns the bytes of the string or byte vector whose length
// prefix is at the absolute position pos, e.g. a string union member.
//
// 与 ByteVector 不同，pos 直接指向长度字段，而不是指向一个 uoffset。
func (t *Table) BytesAt(pos UOffsetT) []byte {
	start := pos + UOffsetT(SizeUOffsetT)
	return t.Bytes[start : start+GetUOffsetT(t.Bytes[pos:])]
}

// VectorLen retrieves the length of the vector whose offset is stored at
// "off" in this object.
func (t *Table) VectorLen(off UOffsetT) int {
	off += t.Pos
	off += GetUOffsetT(t.Bytes[off:])
	return int(GetUOffsetT(t.Bytes[off:]))
}

// Vector retrieves the start of data of the vector whose offset is stored
// at "off" in this object.
func (t *Table) Vector(off UOffsetT) UOffsetT {
	off += t.Pos
	x := off + GetUOffsetT(t.Bytes[off:])
	// data starts after metadata containing the vector length
	x += UOffsetT(SizeUOffsetT)
	return x
}

// Union initializes any Table-derived type to point to the union at the given offset.
//
// union 的值字段只是一个指向表的 uoffset，成员的具体类型由同名的 _type 字段决定。
func (t *Table) Union(t2 *Table, off UOffsetT) {
	off += t.Pos
	t2.Pos = off + GetUOffsetT(t.Bytes[off:])
	t2.Bytes = t.Bytes
}

// GetUOffsetT retrieves a UOffsetT at the given offset.
func (t *Table) GetUOffsetT(off UOffsetT) UOffsetT {
	return GetUOffsetT(t.Bytes[off:])
}

// GetVOffsetT retrieves a VOffsetT at the given offset.
func (t *Table) GetVOffsetT(off UOffsetT) VOffsetT {
	return GetVOffsetT(t.Bytes[off:])
}

// GetSOffsetT retrieves a SOffsetT at the given offset.
func (t *Table) GetSOffsetT(off UOffsetT) SOffsetT {
	return GetSOffsetT(t.Bytes[off:])
}

// Get retrieves a scalar at the given absolute offset.
func Get[T Scalar](t *Table, off UOffsetT) T {
	return ReadScalar[T](t.Bytes[off:])
}

// GetSlot retrieves the scalar that the given vtable location points to.
// If the vtable value is zero, the default value `d` will be returned.
//
// 默认值不写入 buffer，由读取方提供，因此 d 必须与写入时的默认值一致。
func GetSlot[T Scalar](t *Table, slot VOffsetT, d T) T {
	off := t.Offset(slot)
	if off == 0 {
		return d
	}
	return ReadScalar[T](t.Bytes[t.Pos+UOffsetT(off):])
}

// GetOptionalSlot is like GetSlot but reports presence instead of applying
// a default.
func GetOptionalSlot[T Scalar](t *Table, slot VOffsetT) (T, bool) {
	off := t.Offset(slot)
	if off == 0 {
		var zero T
		return zero, false
	}
	return ReadScalar[T](t.Bytes[t.Pos+UOffsetT(off):]), true
}

// Ref returns the absolute position of the object referenced by the given
// vtable location, or false if the field is absent.
func (t *Table) Ref(slot VOffsetT) (UOffsetT, bool) {
	off := t.Offset(slot)
	if off == 0 {
		return 0, false
	}
	return t.Indirect(t.Pos + UOffsetT(off)), true
}

// ByteVectorSlot returns the bytes of the string or byte vector at the given
// vtable location. An absent field yields nil, an empty one a non-nil
// empty slice.
func (t *Table) ByteVectorSlot(slot VOffsetT) []byte {
	off := t.Offset(slot)
	if off == 0 {
		return nil
	}
	return t.ByteVector(t.Pos + UOffsetT(off))
}

// StructSlot returns the absolute position of an inline struct, or false if
// the field is absent.
func (t *Table) StructSlot(slot VOffsetT) (UOffsetT, bool) {
	off := t.Offset(slot)
	if off == 0 {
		return 0, false
	}
	return t.Pos + UOffsetT(off), true
}
