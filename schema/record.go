package schema

import (
	"math"

	flatbuffers "github.com/blastbao/fbtable/flatbuffers"
)

// Record is the dynamic form of a table or struct, keyed by field name.
type Record map[string]interface{}

func asRecord(v interface{}) (Record, bool) {
	switch r := v.(type) {
	case Record:
		return r, true
	case map[string]interface{}:
		return Record(r), true
	}
	return nil, false
}

// codec moves one scalar kind between records and buffers. Records hold
// the canonical forms bool, int64, uint64 and float64; packing also accepts
// any Go number that converts without loss.
type codec struct {
	slot  func(b *flatbuffers.Builder, slot int, v interface{}, f *Field) bool
	place func(b *flatbuffers.Builder, v interface{}) bool
	read  func(buf []byte) interface{}
	def   func(f *Field) interface{}
}

func codecOf[T flatbuffers.Scalar](conv func(interface{}) (T, bool), def func(*Field) T, canon func(T) interface{}) codec {
	return codec{
		slot: func(b *flatbuffers.Builder, slot int, v interface{}, f *Field) bool {
			x, ok := conv(v)
			if ok {
				flatbuffers.PrependSlot(b, slot, x, def(f))
			}
			return ok
		},
		place: func(b *flatbuffers.Builder, v interface{}) bool {
			x, ok := conv(v)
			if ok {
				flatbuffers.Place(b, x)
			}
			return ok
		},
		read: func(buf []byte) interface{} {
			return canon(flatbuffers.ReadScalar[T](buf))
		},
		def: func(f *Field) interface{} {
			return canon(def(f))
		},
	}
}

var codecs = map[flatbuffers.Kind]codec{
	flatbuffers.KindBool:    codecOf(toBool, defBool, canonBool),
	flatbuffers.KindInt8:    codecOf(toSigned[int8], defInteger[int8], canonSigned[int8]),
	flatbuffers.KindInt16:   codecOf(toSigned[int16], defInteger[int16], canonSigned[int16]),
	flatbuffers.KindInt32:   codecOf(toSigned[int32], defInteger[int32], canonSigned[int32]),
	flatbuffers.KindInt64:   codecOf(toSigned[int64], defInteger[int64], canonSigned[int64]),
	flatbuffers.KindUint8:   codecOf(toUnsigned[uint8], defInteger[uint8], canonUnsigned[uint8]),
	flatbuffers.KindUint16:  codecOf(toUnsigned[uint16], defInteger[uint16], canonUnsigned[uint16]),
	flatbuffers.KindUint32:  codecOf(toUnsigned[uint32], defInteger[uint32], canonUnsigned[uint32]),
	flatbuffers.KindUint64:  codecOf(toUnsigned[uint64], defInteger[uint64], canonUnsigned[uint64]),
	flatbuffers.KindFloat32: codecOf(toFloat[float32], defReal[float32], canonFloat[float32]),
	flatbuffers.KindFloat64: codecOf(toFloat[float64], defReal[float64], canonFloat[float64]),
}

func toBool(v interface{}) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func defBool(f *Field) bool        { return f.DefaultInteger != 0 }
func canonBool(x bool) interface{} { return x }

func defInteger[T ~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64](f *Field) T {
	return T(f.DefaultInteger)
}

func defReal[T ~float32 | ~float64](f *Field) T { return T(f.DefaultReal) }

func canonSigned[T ~int8 | ~int16 | ~int32 | ~int64](x T) interface{}       { return int64(x) }
func canonUnsigned[T ~uint8 | ~uint16 | ~uint32 | ~uint64](x T) interface{} { return uint64(x) }
func canonFloat[T ~float32 | ~float64](x T) interface{}                     { return float64(x) }

func toSigned[T ~int8 | ~int16 | ~int32 | ~int64](v interface{}) (T, bool) {
	x, ok := asInt64(v)
	if !ok || int64(T(x)) != x {
		return 0, false
	}
	return T(x), true
}

func toUnsigned[T ~uint8 | ~uint16 | ~uint32 | ~uint64](v interface{}) (T, bool) {
	x, ok := asUint64(v)
	if !ok || uint64(T(x)) != x {
		return 0, false
	}
	return T(x), true
}

func toFloat[T ~float32 | ~float64](v interface{}) (T, bool) {
	switch x := v.(type) {
	case float32:
		return T(x), true
	case float64:
		return T(x), true
	}
	if i, ok := asInt64(v); ok {
		return T(i), true
	}
	if u, ok := asUint64(v); ok {
		return T(u), true
	}
	return 0, false
}

func asInt64(v interface{}) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint, uint8, uint16, uint32, uint64:
		u, _ := asUint64(x)
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	case float64:
		// Numbers decoded from JSON arrive as float64.
		if x != math.Trunc(x) || x < math.MinInt64 || x >= math.MaxInt64 {
			return 0, false
		}
		return int64(x), true
	}
	return 0, false
}

func asUint64(v interface{}) (uint64, bool) {
	switch x := v.(type) {
	case uint:
		return uint64(x), true
	case uint8:
		return uint64(x), true
	case uint16:
		return uint64(x), true
	case uint32:
		return uint64(x), true
	case uint64:
		return x, true
	case int, int8, int16, int32, int64:
		i, _ := asInt64(x)
		if i < 0 {
			return 0, false
		}
		return uint64(i), true
	case float64:
		if x != math.Trunc(x) || x < 0 || x >= math.MaxUint64 {
			return 0, false
		}
		return uint64(x), true
	}
	return 0, false
}
