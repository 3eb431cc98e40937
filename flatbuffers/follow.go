package flatbuffers

// Initer is implemented by buffer-backed views of tables and structs.
type Initer interface {
	Init(buf []byte, pos UOffsetT)
}

// Follow dereferences the uoffset stored at pos and returns a view of the
// object it points to. Nothing is copied.
//
// Follow trusts the buffer: call it on verified buffers or on buffers this
// process built itself.
func Follow[T any, P interface {
	*T
	Initer
}](buf []byte, pos UOffsetT) P {
	p := P(new(T))
	p.Init(buf, pos+GetUOffsetT(buf[pos:]))
	return p
}

// GetRoot returns a view of the root table of a finished buffer. offset is
// the position of the root uoffset, normally 0.
//
// GetRoot trusts the buffer; see VerifiedRoot for untrusted input.
func GetRoot[T any, P interface {
	*T
	Initer
}](buf []byte, offset UOffsetT) P {
	return Follow[T, P](buf, offset)
}

// GetSizePrefixedRoot is GetRoot for buffers finished with
// FinishSizePrefixed.
func GetSizePrefixedRoot[T any, P interface {
	*T
	Initer
}](buf []byte, offset UOffsetT) P {
	return Follow[T, P](buf, offset+SizeUint32)
}

// GetSizePrefix reads the size prefix of a size-prefixed buffer.
func GetSizePrefix(buf []byte, offset UOffsetT) uint32 {
	return ReadScalar[uint32](buf[offset:])
}

// GetBufferIdentifier returns the file identifier that follows the root
// offset. It returns "" if the buffer is too short to carry one.
func GetBufferIdentifier(buf []byte, sizePrefixed bool) string {
	start := SizeUOffsetT
	if sizePrefixed {
		start += SizeUint32
	}
	if len(buf) < start+FileIdentifierLength {
		return ""
	}
	return string(buf[start : start+FileIdentifierLength])
}

// BufferHasIdentifier reports whether the buffer carries the identifier id.
func BufferHasIdentifier(buf []byte, id string, sizePrefixed bool) bool {
	return len(id) == FileIdentifierLength && GetBufferIdentifier(buf, sizePrefixed) == id
}

// ScalarVector is a zero-copy view of a vector of scalars.
type ScalarVector[T Scalar] struct {
	Bytes []byte
	Start UOffsetT // first element
	N     int
}

// GetScalarVector returns a view of the scalar vector at the given vtable
// location, or false if the field is absent.
func GetScalarVector[T Scalar](t *Table, slot VOffsetT) (ScalarVector[T], bool) {
	off := t.Offset(slot)
	if off == 0 {
		return ScalarVector[T]{}, false
	}
	return ScalarVector[T]{Bytes: t.Bytes, Start: t.Vector(UOffsetT(off)), N: t.VectorLen(UOffsetT(off))}, true
}

func (v ScalarVector[T]) Len() int { return v.N }

func (v ScalarVector[T]) At(i int) T {
	return ReadScalar[T](v.Bytes[v.Start+UOffsetT(i*SizeOf[T]()):])
}

// Slice copies the vector out of the buffer.
func (v ScalarVector[T]) Slice() []T {
	out := make([]T, v.N)
	for i := range out {
		out[i] = v.At(i)
	}
	return out
}

// StringVector is a zero-copy view of a vector of strings.
type StringVector struct {
	Bytes []byte
	Start UOffsetT
	N     int
}

// GetStringVector returns a view of the string vector at the given vtable
// location, or false if the field is absent.
func GetStringVector(t *Table, slot VOffsetT) (StringVector, bool) {
	off := t.Offset(slot)
	if off == 0 {
		return StringVector{}, false
	}
	return StringVector{Bytes: t.Bytes, Start: t.Vector(UOffsetT(off)), N: t.VectorLen(UOffsetT(off))}, true
}

func (v StringVector) Len() int { return v.N }

// At returns the bytes of the i-th string; they alias the buffer.
func (v StringVector) At(i int) []byte {
	t := Table{Bytes: v.Bytes}
	return t.ByteVector(v.Start + UOffsetT(i*SizeUOffsetT))
}

// TableVector is a zero-copy view of a vector of tables.
type TableVector[T any, P interface {
	*T
	Initer
}] struct {
	Bytes []byte
	Start UOffsetT
	N     int
}

// GetTableVector returns a view of the table vector at the given vtable
// location, or false if the field is absent.
func GetTableVector[T any, P interface {
	*T
	Initer
}](t *Table, slot VOffsetT) (TableVector[T, P], bool) {
	off := t.Offset(slot)
	if off == 0 {
		return TableVector[T, P]{}, false
	}
	return TableVector[T, P]{Bytes: t.Bytes, Start: t.Vector(UOffsetT(off)), N: t.VectorLen(UOffsetT(off))}, true
}

func (v TableVector[T, P]) Len() int { return v.N }

func (v TableVector[T, P]) At(i int) P {
	return Follow[T, P](v.Bytes, v.Start+UOffsetT(i*SizeUOffsetT))
}
