package keywordtest_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	flatbuffers "github.com/blastbao/fbtable/flatbuffers"
	"github.com/blastbao/fbtable/keywordtest"
)

func build(args *keywordtest.KeywordsInTableArgs) []byte {
	b := flatbuffers.NewBuilder(0)
	b.Finish(keywordtest.CreateKeywordsInTable(b, args))
	return b.FinishedBytes()
}

func TestAllDefaults(t *testing.T) {
	buf := build(&keywordtest.KeywordsInTableArgs{})
	assert.Equal(t, []byte{
		8, 0, 0, 0, // root
		4, 0, 4, 0, // vtable without slots
		4, 0, 0, 0, // table
	}, buf)

	kw, err := keywordtest.GetKeywordsInTable(buf, nil)
	require.NoError(t, err)
	tab := kw.Table()
	vt := tab.Vtable()
	assert.Equal(t, 0, vt.NumSlots())
	for slot := 0; slot < 4; slot++ {
		assert.Zero(t, vt.Field(slot), "slot %d", slot)
	}
	assert.Equal(t, keywordtest.ABCVoid, kw.Is())
	assert.Equal(t, keywordtest.PublicNONE, kw.Private())
	assert.Equal(t, int32(0), kw.Type())
	assert.False(t, kw.Default())
}

func TestOnlyTypeSet(t *testing.T) {
	buf := build(&keywordtest.KeywordsInTableArgs{Type: 7})
	assert.Equal(t, []byte{
		16, 0, 0, 0, // root
		0, 0, // padding
		10, 0, 8, 0, 0, 0, 0, 0, 4, 0, // vtable
		10, 0, 0, 0, // soffset to vtable
		7, 0, 0, 0, // type
	}, buf)

	kw := keywordtest.GetRootAsKeywordsInTable(buf, 0)
	tab := kw.Table()
	vt := tab.Vtable()
	assert.Equal(t, 3, vt.NumSlots())
	var present []int
	for slot := 0; slot < vt.NumSlots(); slot++ {
		if vt.Field(slot) != 0 {
			present = append(present, slot)
		}
	}
	assert.Equal(t, []int{2}, present)
	assert.Equal(t, int32(7), kw.Type())
	assert.Equal(t, keywordtest.ABCVoid, kw.Is())
}

func TestObjectAPIRoundTrip(t *testing.T) {
	// Every presence pattern of the four fields; bit i sets slot i.
	for mask := 0; mask < 1<<4; mask++ {
		want := &keywordtest.KeywordsInTableT{}
		if mask&1 != 0 {
			want.Is = keywordtest.ABCStackalloc
		}
		if mask&2 != 0 {
			want.Private = keywordtest.Public(3)
		}
		if mask&4 != 0 {
			want.Type = -12
		}
		if mask&8 != 0 {
			want.Default = true
		}

		b := flatbuffers.NewBuilder(0)
		b.Finish(want.Pack(b))
		kw, err := keywordtest.GetKeywordsInTable(b.FinishedBytes(), nil)
		require.NoError(t, err, "mask %04b", mask)
		if diff := cmp.Diff(want, kw.UnPack()); diff != "" {
			t.Errorf("mask %04b: round trip mismatch (-want +got):\n%s", mask, diff)
		}

		tab := kw.Table()
		vt := tab.Vtable()
		for slot := 0; slot < 4; slot++ {
			assert.Equal(t, mask&(1<<slot) != 0, vt.Field(slot) != 0, "mask %04b slot %d", mask, slot)
		}
	}
}

func TestForcedDefaultsReadBack(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	b.ForceDefaults(true)
	b.Finish(keywordtest.CreateKeywordsInTable(b, &keywordtest.KeywordsInTableArgs{}))

	kw, err := keywordtest.GetKeywordsInTable(b.FinishedBytes(), nil)
	require.NoError(t, err)
	tab := kw.Table()
	assert.Equal(t, 4, tab.Vtable().NumSlots())
	assert.Equal(t, &keywordtest.KeywordsInTableT{}, kw.UnPack())
}

func TestString(t *testing.T) {
	kw := keywordtest.GetRootAsKeywordsInTable(build(&keywordtest.KeywordsInTableArgs{
		Is:      keywordtest.ABCWhere,
		Type:    3,
		Default: true,
	}), 0)
	assert.Equal(t, "KeywordsInTable{is: where, private: NONE, type: 3, default: true}", kw.String())
	assert.Equal(t, "ABC(9)", keywordtest.ABC(9).String())
	assert.Equal(t, keywordtest.ABCStackalloc, keywordtest.EnumValuesABC["stackalloc"])
}

func TestRejectsDamagedBuffer(t *testing.T) {
	buf := build(&keywordtest.KeywordsInTableArgs{Type: 7})
	_, err := keywordtest.GetKeywordsInTable(buf[:len(buf)-2], nil)
	require.ErrorIs(t, err, flatbuffers.RangeOutOfBounds)
}

func TestJSONForm(t *testing.T) {
	in := &keywordtest.KeywordsInTableT{Is: keywordtest.ABCWhere, Type: 5}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"is":1,"private":0,"type":5,"default":false}`, string(data))

	var out keywordtest.KeywordsInTableT
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, *in, out)
}
