// Package keywordtest holds the bindings of the KeywordTest schema, whose
// field names collide with keywords of several target languages:
//
//	enum ABC : int { void, where, stackalloc }
//	enum public : int { NONE }
//	table KeywordsInTable {
//	  is: ABC = void;
//	  private: public;
//	  type: int;
//	  default: bool = false;
//	}
package keywordtest

import (
	"fmt"

	flatbuffers "github.com/blastbao/fbtable/flatbuffers"
)

const KeywordsInTableFullyQualifiedName = "KeywordTest.KeywordsInTable"

// Vtable positions of the KeywordsInTable fields.
const (
	KeywordsInTableVTIs      flatbuffers.VOffsetT = 4
	KeywordsInTableVTPrivate flatbuffers.VOffsetT = 6
	KeywordsInTableVTType    flatbuffers.VOffsetT = 8
	KeywordsInTableVTDefault flatbuffers.VOffsetT = 10
)

const keywordsInTableNumFields = 4

// KeywordsInTableT is the owned form of KeywordsInTable.
type KeywordsInTableT struct {
	Is      ABC    `json:"is"`
	Private Public `json:"private"`
	Type    int32  `json:"type"`
	Default bool   `json:"default"`
}

// Pack writes t into builder and returns the table offset.
func (t *KeywordsInTableT) Pack(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	if t == nil {
		return 0
	}
	return CreateKeywordsInTable(builder, &KeywordsInTableArgs{
		Is:      t.Is,
		Private: t.Private,
		Type:    t.Type,
		Default: t.Default,
	})
}

func (rcv *KeywordsInTable) UnPackTo(t *KeywordsInTableT) {
	t.Is = rcv.Is()
	t.Private = rcv.Private()
	t.Type = rcv.Type()
	t.Default = rcv.Default()
}

// UnPack copies the table out of the buffer.
func (rcv *KeywordsInTable) UnPack() *KeywordsInTableT {
	if rcv == nil {
		return nil
	}
	t := &KeywordsInTableT{}
	rcv.UnPackTo(t)
	return t
}

// KeywordsInTable is a view of a KeywordsInTable inside a buffer.
type KeywordsInTable struct {
	_tab flatbuffers.Table
}

// GetRootAsKeywordsInTable returns the root table of a trusted buffer.
func GetRootAsKeywordsInTable(buf []byte, offset flatbuffers.UOffsetT) *KeywordsInTable {
	return flatbuffers.GetRoot[KeywordsInTable](buf, offset)
}

// GetSizePrefixedRootAsKeywordsInTable is GetRootAsKeywordsInTable for
// size-prefixed buffers.
func GetSizePrefixedRootAsKeywordsInTable(buf []byte, offset flatbuffers.UOffsetT) *KeywordsInTable {
	return flatbuffers.GetSizePrefixedRoot[KeywordsInTable](buf, offset)
}

// GetKeywordsInTable verifies buf and returns its root table.
func GetKeywordsInTable(buf []byte, opts *flatbuffers.VerifierOptions) (*KeywordsInTable, error) {
	return flatbuffers.VerifiedRoot[KeywordsInTable](buf, opts, VerifyKeywordsInTable)
}

func (rcv *KeywordsInTable) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *KeywordsInTable) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *KeywordsInTable) Is() ABC {
	return flatbuffers.GetSlot(&rcv._tab, KeywordsInTableVTIs, ABCVoid)
}

func (rcv *KeywordsInTable) Private() Public {
	return flatbuffers.GetSlot(&rcv._tab, KeywordsInTableVTPrivate, PublicNONE)
}

func (rcv *KeywordsInTable) Type() int32 {
	return flatbuffers.GetSlot(&rcv._tab, KeywordsInTableVTType, int32(0))
}

func (rcv *KeywordsInTable) Default() bool {
	return flatbuffers.GetSlot(&rcv._tab, KeywordsInTableVTDefault, false)
}

func (rcv *KeywordsInTable) String() string {
	return fmt.Sprintf("KeywordsInTable{is: %v, private: %v, type: %d, default: %t}",
		rcv.Is(), rcv.Private(), rcv.Type(), rcv.Default())
}

// VerifyKeywordsInTable checks the KeywordsInTable at pos.
func VerifyKeywordsInTable(v *flatbuffers.Verifier, pos flatbuffers.UOffsetT) error {
	tv, err := v.VisitTable(pos)
	if err != nil {
		return err
	}
	flatbuffers.VerifyField[ABC](tv, "is", KeywordsInTableVTIs, false)
	flatbuffers.VerifyField[Public](tv, "private", KeywordsInTableVTPrivate, false)
	flatbuffers.VerifyField[int32](tv, "type", KeywordsInTableVTType, false)
	flatbuffers.VerifyField[bool](tv, "default", KeywordsInTableVTDefault, false)
	return tv.Finish()
}

// KeywordsInTableArgs holds the field values for CreateKeywordsInTable.
// The zero value holds every field's default.
type KeywordsInTableArgs struct {
	Is      ABC
	Private Public
	Type    int32
	Default bool
}

// CreateKeywordsInTable writes a complete table, largest fields first.
func CreateKeywordsInTable(builder *flatbuffers.Builder, args *KeywordsInTableArgs) flatbuffers.UOffsetT {
	KeywordsInTableStart(builder)
	KeywordsInTableAddType(builder, args.Type)
	KeywordsInTableAddPrivate(builder, args.Private)
	KeywordsInTableAddIs(builder, args.Is)
	KeywordsInTableAddDefault(builder, args.Default)
	return KeywordsInTableEnd(builder)
}

func KeywordsInTableStart(builder *flatbuffers.Builder) {
	builder.StartObject(keywordsInTableNumFields)
}

func KeywordsInTableAddIs(builder *flatbuffers.Builder, is ABC) {
	flatbuffers.PrependSlot(builder, 0, is, ABCVoid)
}

func KeywordsInTableAddPrivate(builder *flatbuffers.Builder, private Public) {
	flatbuffers.PrependSlot(builder, 1, private, PublicNONE)
}

func KeywordsInTableAddType(builder *flatbuffers.Builder, type_ int32) {
	flatbuffers.PrependSlot(builder, 2, type_, 0)
}

func KeywordsInTableAddDefault(builder *flatbuffers.Builder, default_ bool) {
	flatbuffers.PrependSlot(builder, 3, default_, false)
}

func KeywordsInTableEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
