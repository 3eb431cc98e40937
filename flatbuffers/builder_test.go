package flatbuffers_test

import (
	"fmt"
	"testing"

	"github.com/apache/arrow/go/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	flatbuffers "github.com/blastbao/fbtable/flatbuffers"
)

func requirePanicIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
	}()
	fn()
}

// written returns the bytes produced so far, finished or not.
func written(b *flatbuffers.Builder) []byte {
	return b.Bytes[b.Head():]
}

// tableAt converts a builder offset into a position in the finished buffer.
func tableAt(buf []byte, off flatbuffers.UOffsetT) *flatbuffers.Table {
	return &flatbuffers.Table{Bytes: buf, Pos: flatbuffers.UOffsetT(len(buf)) - off}
}

func TestByteLayout(t *testing.T) {
	for _, test := range []struct {
		name  string
		build func(b *flatbuffers.Builder)
		want  []byte
	}{
		{
			name: "string",
			build: func(b *flatbuffers.Builder) {
				b.CreateString("moop")
			},
			want: []byte{
				4, 0, 0, 0, // length
				'm', 'o', 'o', 'p',
				0, 0, 0, 0, // terminator and padding
			},
		},
		{
			name: "empty string",
			build: func(b *flatbuffers.Builder) {
				b.CreateString("")
			},
			want: []byte{0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name: "table without fields",
			build: func(b *flatbuffers.Builder) {
				b.StartObject(0)
				b.EndObject()
			},
			want: []byte{
				4, 0,       // vtable size
				4, 0,       // table size
				4, 0, 0, 0, // soffset to vtable
			},
		},
		{
			name: "table with one int16",
			build: func(b *flatbuffers.Builder) {
				b.StartObject(1)
				flatbuffers.PrependSlot(b, 0, int16(0x789A), 0)
				b.EndObject()
			},
			want: []byte{
				6, 0,       // vtable size
				8, 0,       // table size
				6, 0,       // field 0
				6, 0, 0, 0, // soffset to vtable
				0, 0,       // padding
				0x9A, 0x78,
			},
		},
		{
			name: "trailing absent fields are trimmed",
			build: func(b *flatbuffers.Builder) {
				b.StartObject(3)
				flatbuffers.PrependSlot(b, 0, int16(0x789A), 0)
				flatbuffers.PrependSlot(b, 2, int16(0), 0)
				b.EndObject()
			},
			want: []byte{
				6, 0,
				8, 0,
				6, 0,
				6, 0, 0, 0,
				0, 0,
				0x9A, 0x78,
			},
		},
		{
			name: "byte vector",
			build: func(b *flatbuffers.Builder) {
				b.CreateByteVector([]byte{1, 2, 3})
			},
			want: []byte{3, 0, 0, 0, 1, 2, 3, 0},
		},
		{
			name: "int32 vector",
			build: func(b *flatbuffers.Builder) {
				flatbuffers.CreateVector(b, []int32{1, -1})
			},
			want: []byte{
				2, 0, 0, 0,
				1, 0, 0, 0,
				0xFF, 0xFF, 0xFF, 0xFF,
			},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			b := flatbuffers.NewBuilder(0)
			test.build(b)
			assert.Equal(t, test.want, written(b))
		})
	}
}

func TestFinishLayout(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	b.StartObject(0)
	root := b.EndObject()
	b.FinishWithFileIdentifier(root, []byte("TEST"))
	buf := b.FinishedBytes()

	assert.Equal(t, []byte{
		12, 0, 0, 0, // root uoffset
		'T', 'E', 'S', 'T',
		4, 0, 4, 0, // vtable
		4, 0, 0, 0, // table
	}, buf)
	assert.True(t, flatbuffers.BufferHasIdentifier(buf, "TEST", false))
	assert.False(t, flatbuffers.BufferHasIdentifier(buf, "NOPE", false))
	assert.Equal(t, "TEST", flatbuffers.GetBufferIdentifier(buf, false))
}

func TestFinishSizePrefixed(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	name := b.CreateString("sized")
	b.StartObject(1)
	b.PrependUOffsetTSlot(0, name)
	root := b.EndObject()
	b.FinishSizePrefixedWithFileIdentifier(root, []byte("SIZE"))
	buf := b.FinishedBytes()

	require.Equal(t, uint32(len(buf)-4), flatbuffers.GetSizePrefix(buf, 0))
	require.True(t, flatbuffers.BufferHasIdentifier(buf, "SIZE", true))

	var tab flatbuffers.Table
	tab.Init(buf, 4+flatbuffers.GetUOffsetT(buf[4:]))
	require.Equal(t, []byte("sized"), tab.ByteVectorSlot(4))
}

func TestDefaultsAreElided(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	b.StartObject(3)
	flatbuffers.PrependSlot(b, 0, int32(0), 0)
	flatbuffers.PrependSlot(b, 1, int32(5), 0)
	flatbuffers.PrependSlot(b, 2, true, true)
	root := b.EndObject()
	b.Finish(root)
	buf := b.FinishedBytes()

	tab := flatbuffers.Table{Bytes: buf, Pos: flatbuffers.GetUOffsetT(buf)}
	vt := tab.Vtable()
	assert.Equal(t, 2, vt.NumSlots())
	assert.Zero(t, vt.Field(0))
	assert.NotZero(t, vt.Field(1))
	assert.Zero(t, vt.Field(2))

	assert.Equal(t, int32(0), flatbuffers.GetSlot(&tab, 4, int32(0)))
	assert.Equal(t, int32(42), flatbuffers.GetSlot(&tab, 4, int32(42)), "absent fields read the caller's default")
	assert.Equal(t, int32(5), flatbuffers.GetSlot(&tab, 6, int32(0)))
	assert.Equal(t, true, flatbuffers.GetSlot(&tab, 8, true))
	_, ok := flatbuffers.GetOptionalSlot[int32](&tab, 4)
	assert.False(t, ok)
}

func TestForceDefaults(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	b.ForceDefaults(true)
	b.StartObject(2)
	flatbuffers.PrependSlot(b, 0, int32(0), 0)
	flatbuffers.PrependSlot(b, 1, uint8(3), 3)
	root := b.EndObject()
	b.Finish(root)
	buf := b.FinishedBytes()

	tab := flatbuffers.Table{Bytes: buf, Pos: flatbuffers.GetUOffsetT(buf)}
	v, ok := flatbuffers.GetOptionalSlot[int32](&tab, 4)
	assert.True(t, ok)
	assert.Equal(t, int32(0), v)
	u, ok := flatbuffers.GetOptionalSlot[uint8](&tab, 6)
	assert.True(t, ok)
	assert.Equal(t, uint8(3), u)
}

func buildPair(b *flatbuffers.Builder, x, y int32) flatbuffers.UOffsetT {
	b.StartObject(2)
	flatbuffers.PrependSlot(b, 0, x, 0)
	flatbuffers.PrependSlot(b, 1, y, 0)
	return b.EndObject()
}

func TestVtableDeduplication(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	offs := []flatbuffers.UOffsetT{
		buildPair(b, 1, 2),
		buildPair(b, 3, 4),
		buildPair(b, -5, 6),
	}
	require.Equal(t, 1, b.NumVtables())

	// Same slots, different shape.
	offs = append(offs, buildPair(b, 7, 0))
	require.Equal(t, 2, b.NumVtables())

	b.Finish(offs[len(offs)-1])
	buf := b.FinishedBytes()

	first := tableAt(buf, offs[0]).Vtable().Pos
	for i, off := range offs[:3] {
		tab := tableAt(buf, off)
		assert.Equal(t, first, tab.Vtable().Pos, "table %d", i)
	}
	assert.NotEqual(t, first, tableAt(buf, offs[3]).Vtable().Pos)

	assert.Equal(t, int32(-5), flatbuffers.GetSlot(tableAt(buf, offs[2]), 4, int32(0)))
	assert.Equal(t, int32(6), flatbuffers.GetSlot(tableAt(buf, offs[2]), 6, int32(0)))
	assert.Equal(t, int32(0), flatbuffers.GetSlot(tableAt(buf, offs[3]), 6, int32(0)))
}

func TestVtableDeduplicationIgnoresLeadingPadding(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	build := func(v int64) flatbuffers.UOffsetT {
		b.StartObject(1)
		flatbuffers.PrependSlot(b, 0, v, 0)
		return b.EndObject()
	}
	first := build(1)
	// Leaves the buffer 4 bytes off 8-byte alignment.
	b.CreateString("abcde")
	second := build(2)
	require.Equal(t, 1, b.NumVtables())

	b.Finish(second)
	buf := b.FinishedBytes()
	assert.Equal(t, int64(1), flatbuffers.GetSlot(tableAt(buf, first), 4, int64(0)))
	assert.Equal(t, int64(2), flatbuffers.GetSlot(tableAt(buf, second), 4, int64(0)))
	assert.Equal(t, flatbuffers.VOffsetT(12), tableAt(buf, second).Vtable().TableSize())
}

func TestVtableDeduplicationNarrowFields(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	build := func(flag bool, tag uint8) flatbuffers.UOffsetT {
		b.StartObject(2)
		flatbuffers.PrependSlot(b, 1, tag, 0)
		flatbuffers.PrependSlot(b, 0, flag, false)
		return b.EndObject()
	}
	var offs []flatbuffers.UOffsetT
	for i := 0; i < 4; i++ {
		offs = append(offs, build(true, uint8(i+1)))
		// Odd-length byte vectors leave every possible misalignment.
		b.CreateByteVector(make([]byte, i))
	}
	offs = append(offs, build(true, 9), build(true, 10))
	assert.Equal(t, 1, b.NumVtables())

	b.Finish(offs[len(offs)-1])
	buf := b.FinishedBytes()
	for i, off := range offs {
		tab := tableAt(buf, off)
		assert.Zero(t, tab.Pos%4, "table %d starts aligned", i)
		assert.Equal(t, flatbuffers.VOffsetT(8), tab.Vtable().TableSize(), "table %d", i)
		assert.True(t, flatbuffers.GetSlot(tab, 4, false))
	}
	assert.Equal(t, uint8(3), flatbuffers.GetSlot(tableAt(buf, offs[2]), 6, uint8(0)))
}

func TestResetAllowsReuse(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	b.Finish(buildPair(b, 1, 2))
	want := append([]byte(nil), b.FinishedBytes()...)

	b.Reset()
	requirePanicIs(t, flatbuffers.ErrNotFinished, func() { b.FinishedBytes() })
	b.Finish(buildPair(b, 1, 2))
	assert.Equal(t, want, b.FinishedBytes())
	assert.Equal(t, 1, b.NumVtables())
}

func TestGrowthKeepsOffsets(t *testing.T) {
	b := flatbuffers.NewBuilder(1)
	var offs []flatbuffers.UOffsetT
	for i := 0; i < 500; i++ {
		offs = append(offs, b.CreateString(fmt.Sprintf("string number %d", i)))
	}
	vec := b.CreateUOffsetVector(offs)
	b.StartObject(1)
	b.PrependUOffsetTSlot(0, vec)
	b.Finish(b.EndObject())
	buf := b.FinishedBytes()

	tab := flatbuffers.Table{Bytes: buf, Pos: flatbuffers.GetUOffsetT(buf)}
	strs, ok := flatbuffers.GetStringVector(&tab, 4)
	require.True(t, ok)
	require.Equal(t, 500, strs.Len())
	for i := 0; i < strs.Len(); i++ {
		require.Equal(t, fmt.Sprintf("string number %d", i), string(strs.At(i)))
	}
}

func TestSharedStrings(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	a := b.CreateSharedString("mesh.obj")
	other := b.CreateSharedString("other.obj")
	again := b.CreateSharedString("mesh.obj")
	assert.Equal(t, a, again)
	assert.NotEqual(t, a, other)
}

func TestScalarVectors(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	floats := flatbuffers.CreateVector(b, []float64{0.5, -2, 1e10})
	bools := flatbuffers.CreateVector(b, []bool{true, false, true})
	b.StartObject(3)
	b.PrependUOffsetTSlot(0, floats)
	b.PrependUOffsetTSlot(1, bools)
	b.Finish(b.EndObject())
	buf := b.FinishedBytes()

	tab := flatbuffers.Table{Bytes: buf, Pos: flatbuffers.GetUOffsetT(buf)}
	fv, ok := flatbuffers.GetScalarVector[float64](&tab, 4)
	require.True(t, ok)
	assert.Equal(t, []float64{0.5, -2, 1e10}, fv.Slice())
	assert.Equal(t, uint64(0), uint64(fv.Start)%8, "float64 elements are 8-byte aligned")

	bv, ok := flatbuffers.GetScalarVector[bool](&tab, 6)
	require.True(t, ok)
	assert.Equal(t, []bool{true, false, true}, bv.Slice())

	_, ok = flatbuffers.GetScalarVector[int32](&tab, 8)
	assert.False(t, ok)
}

func TestBuilderMisuse(t *testing.T) {
	for _, test := range []struct {
		name   string
		target error
		fn     func(b *flatbuffers.Builder)
	}{
		{
			name:   "nested object",
			target: flatbuffers.ErrNested,
			fn: func(b *flatbuffers.Builder) {
				b.StartObject(1)
				b.StartObject(1)
			},
		},
		{
			name:   "string inside object",
			target: flatbuffers.ErrNested,
			fn: func(b *flatbuffers.Builder) {
				b.StartObject(1)
				b.CreateString("late")
			},
		},
		{
			name:   "end without start",
			target: flatbuffers.ErrNotNested,
			fn: func(b *flatbuffers.Builder) {
				b.EndObject()
			},
		},
		{
			name:   "slot outside object",
			target: flatbuffers.ErrNotNested,
			fn: func(b *flatbuffers.Builder) {
				flatbuffers.PrependSlot(b, 0, int32(1), 0)
			},
		},
		{
			name:   "finished bytes before finish",
			target: flatbuffers.ErrNotFinished,
			fn: func(b *flatbuffers.Builder) {
				b.FinishedBytes()
			},
		},
		{
			name:   "reference into the open table",
			target: flatbuffers.ErrScope,
			fn: func(b *flatbuffers.Builder) {
				b.StartObject(2)
				flatbuffers.PrependSlot(b, 0, int32(1), 0)
				b.PrependUOffsetTSlot(1, b.Offset())
			},
		},
		{
			name:   "reference to unwritten data",
			target: flatbuffers.ErrOffsetOverflow,
			fn: func(b *flatbuffers.Builder) {
				b.PrependUOffsetT(b.Offset() + 64)
			},
		},
		{
			name:   "short file identifier",
			target: flatbuffers.ErrIdentifier,
			fn: func(b *flatbuffers.Builder) {
				b.StartObject(0)
				b.FinishWithFileIdentifier(b.EndObject(), []byte("AB"))
			},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			b := flatbuffers.NewBuilder(0)
			requirePanicIs(t, test.target, func() { test.fn(b) })
		})
	}
}

func TestBuilderAllocatorAccounting(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	b := flatbuffers.NewBuilderWithAllocator(mem, 16)
	var offs []flatbuffers.UOffsetT
	for i := 0; i < 100; i++ {
		offs = append(offs, buildPair(b, int32(i), int32(-i)))
	}
	vec := b.CreateUOffsetVector(offs)
	b.StartObject(1)
	b.PrependUOffsetTSlot(0, vec)
	b.Finish(b.EndObject())
	require.NotEmpty(t, b.FinishedBytes())
	// Only the live buffer is still allocated.
	mem.AssertSize(t, len(b.Bytes))

	b.Release()
}
