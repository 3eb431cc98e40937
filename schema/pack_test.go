package schema_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	flatbuffers "github.com/blastbao/fbtable/flatbuffers"
	"github.com/blastbao/fbtable/keywordtest"
	"github.com/blastbao/fbtable/schema"
)

func sampleMonster() schema.Record {
	return schema.Record{
		"pos":       schema.Record{"x": 1.0, "y": 2.0, "z": 3.0},
		"mana":      int64(150),
		"hp":        int64(300),
		"name":      "orc",
		"inventory": []interface{}{uint64(0), uint64(1), uint64(255)},
		"color":     uint64(1),
		"weapons": []interface{}{
			schema.Record{"name": "axe", "damage": int64(7)},
			schema.Record{"damage": int64(0)},
		},
		"equipped": schema.Record{"name": "club", "damage": int64(-2)},
		"path": []interface{}{
			schema.Record{"x": 0.5, "y": 0.0, "z": -1.0},
			schema.Record{"x": 4.0, "y": 8.0, "z": 16.0},
		},
		"tags":  []interface{}{"green", ""},
		"speed": 2.25,
		"id":    uint64(1) << 63,
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	s := loadGame(t)
	want := sampleMonster()

	for _, sizePrefixed := range []bool{false, true} {
		b := flatbuffers.NewBuilder(0)
		buf, err := s.PackRoot(b, want, sizePrefixed)
		require.NoError(t, err)
		assert.True(t, flatbuffers.BufferHasIdentifier(buf, "MONS", sizePrefixed))

		got, err := s.UnpackRoot(buf, sizePrefixed)
		require.NoError(t, err)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("sizePrefixed=%t: record mismatch (-want +got):\n%s", sizePrefixed, diff)
		}
	}
}

func TestUnpackDefaults(t *testing.T) {
	s := loadGame(t)
	b := flatbuffers.NewBuilder(0)
	buf, err := s.PackRoot(b, schema.Record{"name": "blob"}, false)
	require.NoError(t, err)

	got, err := s.UnpackRoot(buf, false)
	require.NoError(t, err)
	assert.Equal(t, schema.Record{
		"name":  "blob",
		"mana":  int64(150),
		"hp":    int64(100),
		"color": uint64(2),
		"speed": 1.5,
		"id":    uint64(0),
	}, got)

	root := flatbuffers.GetRoot[flatbuffers.Table](buf, 0)
	assert.Equal(t, 4, root.Vtable().NumSlots(), "only name is stored")
}

func TestConsecutiveTablesShareVtable(t *testing.T) {
	s := loadGame(t)
	rec := schema.Record{
		"name":  "slime",
		"pos":   schema.Record{"x": 1.0, "y": 2.0, "z": 3.0},
		"hp":    int64(7),
		"speed": 0.25,
		"id":    uint64(99),
		"color": uint64(0),
	}
	b := flatbuffers.NewBuilder(0)
	var offs []flatbuffers.UOffsetT
	for i := 0; i < 3; i++ {
		off, err := s.Pack(b, s.Root(), rec)
		require.NoError(t, err)
		offs = append(offs, off)
	}
	assert.Equal(t, 1, b.NumVtables())

	b.Finish(offs[2])
	buf := b.FinishedBytes()
	for _, off := range offs {
		tab := flatbuffers.Table{Bytes: buf, Pos: flatbuffers.UOffsetT(len(buf)) - off}
		assert.Equal(t, uint64(99), flatbuffers.GetSlot(&tab, s.Root().Field("id").VT(), uint64(0)))
		pos, ok := tab.StructSlot(s.Root().Field("pos").VT())
		require.True(t, ok)
		assert.Zero(t, pos%4)
	}
}

func TestPackAcceptsLooseNumbers(t *testing.T) {
	s := loadGame(t)
	var rec schema.Record
	require.NoError(t, json.Unmarshal([]byte(`{
		"name": "json",
		"hp": 12,
		"inventory": [1, 2],
		"pos": {"x": 1, "y": 2, "z": 3},
		"id": 42
	}`), &rec))

	b := flatbuffers.NewBuilder(0)
	buf, err := s.PackRoot(b, rec, false)
	require.NoError(t, err)
	got, err := s.UnpackRoot(buf, false)
	require.NoError(t, err)
	assert.Equal(t, int64(12), got["hp"])
	assert.Equal(t, []interface{}{uint64(1), uint64(2)}, got["inventory"])
	assert.Equal(t, schema.Record{"x": 1.0, "y": 2.0, "z": 3.0}, got["pos"])
	assert.Equal(t, uint64(42), got["id"])

	b.Reset()
	buf, err = s.PackRoot(b, schema.Record{"name": "go", "hp": int16(5), "inventory": []byte{9}}, false)
	require.NoError(t, err)
	got, err = s.UnpackRoot(buf, false)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got["hp"])
	assert.Equal(t, []interface{}{uint64(9)}, got["inventory"])
}

func TestPackRejects(t *testing.T) {
	s := loadGame(t)
	for name, rec := range map[string]schema.Record{
		"missing required":  {"hp": 1},
		"unknown field":     {"name": "x", "legs": 4},
		"out of range":      {"name": "x", "hp": 70000},
		"fraction for int":  {"name": "x", "hp": 1.5},
		"negative unsigned": {"name": "x", "id": -1},
		"wrong type":        {"name": 5},
		"bad element":       {"name": "x", "tags": []interface{}{"a", 2}},
		"nested missing":    {"name": "x", "equipped": schema.Record{"edge": 1}},
		"struct field":      {"name": "x", "pos": schema.Record{"w": 1.0}},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := s.PackRoot(flatbuffers.NewBuilder(0), rec, false)
			require.ErrorIs(t, err, schema.ErrRecord)
		})
	}
}

func TestDeprecatedFieldsAreSkipped(t *testing.T) {
	s := loadGame(t)
	b := flatbuffers.NewBuilder(0)
	buf, err := s.PackRoot(b, schema.Record{"name": "x", "friendly": true}, false)
	require.NoError(t, err)
	got, err := s.UnpackRoot(buf, false)
	require.NoError(t, err)
	assert.NotContains(t, got, "friendly")
}

func TestVerifyUsesDescriptorOptions(t *testing.T) {
	s := loadGame(t)
	b := flatbuffers.NewBuilder(0)
	buf, err := s.PackRoot(b, sampleMonster(), false)
	require.NoError(t, err)
	require.NoError(t, s.Verify(buf, false))

	s.Verifier.MaxTables = 2
	require.ErrorIs(t, s.Verify(buf, false), flatbuffers.TooManyTables)

	_, err = s.UnpackRoot(buf[:len(buf)/2], false)
	require.Error(t, err)
}

func TestMatchesGeneratedBindings(t *testing.T) {
	s, err := schema.LoadFile("testdata/keywords.yaml")
	require.NoError(t, err)

	// A single stored field leaves no room for layout differences.
	dyn := flatbuffers.NewBuilder(0)
	got, err := s.PackRoot(dyn, schema.Record{"type": 7}, false)
	require.NoError(t, err)
	gen := flatbuffers.NewBuilder(0)
	gen.Finish(keywordtest.CreateKeywordsInTable(gen, &keywordtest.KeywordsInTableArgs{Type: 7}))
	assert.Equal(t, gen.FinishedBytes(), got)

	dyn.Reset()
	buf, err := s.PackRoot(dyn, schema.Record{"is": 2, "type": -4, "default": true}, false)
	require.NoError(t, err)
	kw, err := keywordtest.GetKeywordsInTable(buf, nil)
	require.NoError(t, err)
	assert.Equal(t, &keywordtest.KeywordsInTableT{Is: keywordtest.ABCStackalloc, Type: -4, Default: true}, kw.UnPack())

	gen.Reset()
	gen.Finish((&keywordtest.KeywordsInTableT{Is: keywordtest.ABCWhere, Default: true}).Pack(gen))
	rec, err := s.UnpackRoot(gen.FinishedBytes(), false)
	require.NoError(t, err)
	assert.Equal(t, schema.Record{"is": int64(1), "private": int64(0), "type": int64(0), "default": true}, rec)
}
