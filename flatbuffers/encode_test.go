package flatbuffers

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type color int8

func checkScalar[T Scalar](t *testing.T, v T, want []byte) {
	t.Helper()
	buf := make([]byte, len(want))
	WriteScalar(buf, v)
	assert.Equal(t, want, buf, "encoding %v", v)
	assert.Equal(t, v, ReadScalar[T](buf))
	assert.Equal(t, len(want), SizeOf[T]())
}

func TestScalarEncoding(t *testing.T) {
	checkScalar(t, true, []byte{1})
	checkScalar(t, int8(-2), []byte{0xFE})
	checkScalar(t, uint8(0xAB), []byte{0xAB})
	checkScalar(t, int16(-2), []byte{0xFE, 0xFF})
	checkScalar(t, uint16(0x789A), []byte{0x9A, 0x78})
	checkScalar(t, int32(-1), []byte{0xFF, 0xFF, 0xFF, 0xFF})
	checkScalar(t, uint32(0x01020304), []byte{4, 3, 2, 1})
	checkScalar(t, int64(math.MinInt64), []byte{0, 0, 0, 0, 0, 0, 0, 0x80})
	checkScalar(t, uint64(0x0102030405060708), []byte{8, 7, 6, 5, 4, 3, 2, 1})
	checkScalar(t, float32(1), []byte{0, 0, 0x80, 0x3F})
	checkScalar(t, float64(1), []byte{0, 0, 0, 0, 0, 0, 0xF0, 0x3F})
	checkScalar(t, color(-3), []byte{0xFD})
}

func TestReadScalarNormalizesBool(t *testing.T) {
	v := ReadScalar[bool]([]byte{7})
	require.True(t, v)
	require.Equal(t, true, v)

	buf := make([]byte, 1)
	WriteScalar(buf, v)
	require.Equal(t, []byte{1}, buf)
}

func TestKindOf(t *testing.T) {
	for _, test := range []struct {
		got  Kind
		want Kind
		size int
	}{
		{KindOf[bool](), KindBool, 1},
		{KindOf[int8](), KindInt8, 1},
		{KindOf[color](), KindInt8, 1},
		{KindOf[uint16](), KindUint16, 2},
		{KindOf[int32](), KindInt32, 4},
		{KindOf[UOffsetT](), KindUint32, 4},
		{KindOf[float32](), KindFloat32, 4},
		{KindOf[uint64](), KindUint64, 8},
		{KindOf[float64](), KindFloat64, 8},
	} {
		assert.Equal(t, test.want, test.got)
		assert.Equal(t, test.size, test.got.Size(), test.got.String())
	}
	assert.Equal(t, 4, KindUOffset.Size())
	assert.Equal(t, "invalid", Kind(200).String())
}

func TestVtableOffset(t *testing.T) {
	assert.Equal(t, VOffsetT(4), VtableOffset(0))
	assert.Equal(t, VOffsetT(10), VtableOffset(3))
	for slot := 0; slot < 10; slot++ {
		assert.Equal(t, slot, SlotIndex(VtableOffset(slot)))
	}
}

func TestOffsetHelpers(t *testing.T) {
	buf := make([]byte, 4)
	WriteSOffsetT(buf, -6)
	assert.Equal(t, SOffsetT(-6), GetSOffsetT(buf))
	WriteUOffsetT(buf, 12)
	assert.Equal(t, UOffsetT(12), GetUOffsetT(buf))
	WriteVOffsetT(buf, 0x1234)
	assert.Equal(t, VOffsetT(0x1234), GetVOffsetT(buf))
	assert.Equal(t, "ab", byteSliceToString([]byte("ab")))
}
