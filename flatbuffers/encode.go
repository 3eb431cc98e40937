package flatbuffers

import (
	"encoding/binary"
	"reflect"
	"unsafe"
)

// Scalar is the set of fixed-width values that can be stored inline in a
// table, a struct or a vector. Named types (enums) are included.
type Scalar interface {
	~bool |
		~int8 | ~uint8 |
		~int16 | ~uint16 |
		~int32 | ~uint32 |
		~int64 | ~uint64 |
		~float32 | ~float64
}

// Kind describes how a value is laid out in the buffer: its width and
// whether it is read directly or through an offset.
type Kind uint8

const (
	KindNone Kind = iota
	KindBool
	KindInt8
	KindUint8
	KindInt16
	KindUint16
	KindInt32
	KindUint32
	KindInt64
	KindUint64
	KindFloat32
	KindFloat64
	// KindUOffset marks a reference: the slot holds a uoffset to the value.
	KindUOffset
)

var kindNames = [...]string{
	KindNone:    "none",
	KindBool:    "bool",
	KindInt8:    "int8",
	KindUint8:   "uint8",
	KindInt16:   "int16",
	KindUint16:  "uint16",
	KindInt32:   "int32",
	KindUint32:  "uint32",
	KindInt64:   "int64",
	KindUint64:  "uint64",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindUOffset: "uoffset",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// Size returns the inline width of the kind in bytes.
func (k Kind) Size() int {
	switch k {
	case KindBool, KindInt8, KindUint8:
		return 1
	case KindInt16, KindUint16:
		return 2
	case KindInt32, KindUint32, KindFloat32, KindUOffset:
		return 4
	case KindInt64, KindUint64, KindFloat64:
		return 8
	}
	return 0
}

// KindOf returns the layout kind of T.
func KindOf[T Scalar]() Kind {
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Bool:
		return KindBool
	case reflect.Int8:
		return KindInt8
	case reflect.Uint8:
		return KindUint8
	case reflect.Int16:
		return KindInt16
	case reflect.Uint16:
		return KindUint16
	case reflect.Int32:
		return KindInt32
	case reflect.Uint32:
		return KindUint32
	case reflect.Int64:
		return KindInt64
	case reflect.Uint64:
		return KindUint64
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	}
	return KindNone
}

// SizeOf returns the encoded width of T.
func SizeOf[T Scalar]() int {
	var v T
	return int(unsafe.Sizeof(v))
}

// ReadScalar decodes a little-endian T from the start of buf.
// Any non-zero byte decodes to true for boolean kinds.
func ReadScalar[T Scalar](buf []byte) T {
	var v T
	p := unsafe.Pointer(&v)
	switch unsafe.Sizeof(v) {
	case 1:
		b := buf[0]
		if b > 1 && KindOf[T]() == KindBool {
			b = 1
		}
		*(*uint8)(p) = b
	case 2:
		*(*uint16)(p) = binary.LittleEndian.Uint16(buf)
	case 4:
		*(*uint32)(p) = binary.LittleEndian.Uint32(buf)
	case 8:
		*(*uint64)(p) = binary.LittleEndian.Uint64(buf)
	}
	return v
}

// WriteScalar encodes v little-endian at the start of buf.
func WriteScalar[T Scalar](buf []byte, v T) {
	p := unsafe.Pointer(&v)
	switch unsafe.Sizeof(v) {
	case 1:
		buf[0] = *(*uint8)(p)
	case 2:
		binary.LittleEndian.PutUint16(buf, *(*uint16)(p))
	case 4:
		binary.LittleEndian.PutUint32(buf, *(*uint32)(p))
	case 8:
		binary.LittleEndian.PutUint64(buf, *(*uint64)(p))
	}
}

// GetUOffsetT decodes a little-endian UOffsetT from the given byte slice.
func GetUOffsetT(buf []byte) UOffsetT {
	return UOffsetT(binary.LittleEndian.Uint32(buf))
}

// GetSOffsetT decodes a little-endian SOffsetT from the given byte slice.
func GetSOffsetT(buf []byte) SOffsetT {
	return SOffsetT(binary.LittleEndian.Uint32(buf))
}

// GetVOffsetT decodes a little-endian VOffsetT from the given byte slice.
func GetVOffsetT(buf []byte) VOffsetT {
	return VOffsetT(binary.LittleEndian.Uint16(buf))
}

func WriteUOffsetT(buf []byte, n UOffsetT) {
	binary.LittleEndian.PutUint32(buf, uint32(n))
}

func WriteSOffsetT(buf []byte, n SOffsetT) {
	binary.LittleEndian.PutUint32(buf, uint32(n))
}

func WriteVOffsetT(buf []byte, n VOffsetT) {
	binary.LittleEndian.PutUint16(buf, uint16(n))
}

// byteSliceToString aliases b as a string without copying. The string is
// only valid while the underlying buffer is neither reused nor released.
func byteSliceToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}
