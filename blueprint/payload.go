package blueprint

import (
	"strconv"

	flatbuffers "github.com/blastbao/fbtable/flatbuffers"
)

// BlueprintPayloadData tags the value held by a BlueprintPayload. Unlike
// the other members, S is a bare string rather than a table.
type BlueprintPayloadData uint8

const (
	BlueprintPayloadDataNONE BlueprintPayloadData = 0
	BlueprintPayloadDataS    BlueprintPayloadData = 1
	BlueprintPayloadDataI    BlueprintPayloadData = 2
	BlueprintPayloadDataF    BlueprintPayloadData = 3
	BlueprintPayloadDataB    BlueprintPayloadData = 4
	BlueprintPayloadDataE    BlueprintPayloadData = 5
)

var EnumNamesBlueprintPayloadData = map[BlueprintPayloadData]string{
	BlueprintPayloadDataNONE: "NONE",
	BlueprintPayloadDataS:    "s",
	BlueprintPayloadDataI:    "i",
	BlueprintPayloadDataF:    "f",
	BlueprintPayloadDataB:    "b",
	BlueprintPayloadDataE:    "e",
}

func (v BlueprintPayloadData) String() string {
	if s, ok := EnumNamesBlueprintPayloadData[v]; ok {
		return s
	}
	return "BlueprintPayloadData(" + strconv.FormatInt(int64(v), 10) + ")"
}

// BlueprintPayloadDataT is the owned form of the union. Value is a string
// for S and *IntValT, *FloatValT, *BoolValT or *BlueprintEntityPayloadT
// for the table members.
type BlueprintPayloadDataT struct {
	Type  BlueprintPayloadData
	Value interface{}
}

// Pack writes the member and returns its offset, or 0 for NONE.
func (t *BlueprintPayloadDataT) Pack(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	if t == nil {
		return 0
	}
	switch t.Type {
	case BlueprintPayloadDataS:
		return builder.CreateString(t.Value.(string))
	case BlueprintPayloadDataI:
		return t.Value.(*IntValT).Pack(builder)
	case BlueprintPayloadDataF:
		return t.Value.(*FloatValT).Pack(builder)
	case BlueprintPayloadDataB:
		return t.Value.(*BoolValT).Pack(builder)
	case BlueprintPayloadDataE:
		return t.Value.(*BlueprintEntityPayloadT).Pack(builder)
	}
	return 0
}

// UnPack copies the member out of the buffer. table.Pos is the member's
// position: a table for most tags, the length prefix of a string for S.
// Unknown tags yield nil.
func (rcv BlueprintPayloadData) UnPack(table flatbuffers.Table) *BlueprintPayloadDataT {
	switch rcv {
	case BlueprintPayloadDataS:
		return &BlueprintPayloadDataT{Type: rcv, Value: string(table.BytesAt(table.Pos))}
	case BlueprintPayloadDataI:
		var x IntVal
		x.Init(table.Bytes, table.Pos)
		return &BlueprintPayloadDataT{Type: rcv, Value: x.UnPack()}
	case BlueprintPayloadDataF:
		var x FloatVal
		x.Init(table.Bytes, table.Pos)
		return &BlueprintPayloadDataT{Type: rcv, Value: x.UnPack()}
	case BlueprintPayloadDataB:
		var x BoolVal
		x.Init(table.Bytes, table.Pos)
		return &BlueprintPayloadDataT{Type: rcv, Value: x.UnPack()}
	case BlueprintPayloadDataE:
		var x BlueprintEntityPayload
		x.Init(table.Bytes, table.Pos)
		return &BlueprintPayloadDataT{Type: rcv, Value: x.UnPack()}
	}
	return nil
}

// VerifyBlueprintPayloadData checks the union member of type typ at pos.
// Unknown tags are accepted without descending into the member.
func VerifyBlueprintPayloadData(v *flatbuffers.Verifier, typ uint8, pos flatbuffers.UOffsetT) error {
	switch BlueprintPayloadData(typ) {
	case BlueprintPayloadDataS:
		return v.VerifyString(pos)
	case BlueprintPayloadDataI:
		return VerifyIntVal(v, pos)
	case BlueprintPayloadDataF:
		return VerifyFloatVal(v, pos)
	case BlueprintPayloadDataB:
		return VerifyBoolVal(v, pos)
	case BlueprintPayloadDataE:
		return VerifyBlueprintEntityPayload(v, pos)
	}
	return nil
}

// BlueprintPayloadT is the owned form of BlueprintPayload.
type BlueprintPayloadT struct {
	Data *BlueprintPayloadDataT `json:"data"`
}

func (t *BlueprintPayloadT) Pack(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	if t == nil {
		return 0
	}
	dataOffset := t.Data.Pack(builder)
	BlueprintPayloadStart(builder)
	BlueprintPayloadAddData(builder, dataOffset)
	if dataOffset != 0 {
		BlueprintPayloadAddDataType(builder, t.Data.Type)
	}
	return BlueprintPayloadEnd(builder)
}

func (rcv *BlueprintPayload) UnPackTo(t *BlueprintPayloadT) {
	var table flatbuffers.Table
	if rcv.Data(&table) {
		t.Data = rcv.DataType().UnPack(table)
	}
}

func (rcv *BlueprintPayload) UnPack() *BlueprintPayloadT {
	if rcv == nil {
		return nil
	}
	t := &BlueprintPayloadT{}
	rcv.UnPackTo(t)
	return t
}

// BlueprintPayload wraps the value of a pin or data node.
type BlueprintPayload struct {
	_tab flatbuffers.Table
}

func (rcv *BlueprintPayload) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *BlueprintPayload) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *BlueprintPayload) DataType() BlueprintPayloadData {
	return flatbuffers.GetSlot(&rcv._tab, 4, BlueprintPayloadDataNONE)
}

// Data points obj at the member. It reports false if no member is set.
func (rcv *BlueprintPayload) Data(obj *flatbuffers.Table) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		rcv._tab.Union(obj, o)
		return true
	}
	return false
}

// DataString returns the member when it is a string, or nil otherwise.
func (rcv *BlueprintPayload) DataString() []byte {
	var obj flatbuffers.Table
	if rcv.DataType() != BlueprintPayloadDataS || !rcv.Data(&obj) {
		return nil
	}
	return obj.BytesAt(obj.Pos)
}

func VerifyBlueprintPayload(v *flatbuffers.Verifier, pos flatbuffers.UOffsetT) error {
	tv, err := v.VisitTable(pos)
	if err != nil {
		return err
	}
	tv.Union("data", 4, 6, false, VerifyBlueprintPayloadData)
	return tv.Finish()
}

func BlueprintPayloadStart(builder *flatbuffers.Builder) {
	builder.StartObject(2)
}

func BlueprintPayloadAddDataType(builder *flatbuffers.Builder, dataType BlueprintPayloadData) {
	flatbuffers.PrependSlot(builder, 0, dataType, BlueprintPayloadDataNONE)
}

func BlueprintPayloadAddData(builder *flatbuffers.Builder, data flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(1, data)
}

func BlueprintPayloadEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

type IntValT struct {
	Val int32 `json:"val"`
}

func (t *IntValT) Pack(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	if t == nil {
		return 0
	}
	return CreateIntVal(builder, t.Val)
}

func (rcv *IntVal) UnPack() *IntValT {
	if rcv == nil {
		return nil
	}
	return &IntValT{Val: rcv.Val()}
}

type IntVal struct {
	_tab flatbuffers.Table
}

func (rcv *IntVal) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *IntVal) Val() int32 {
	return flatbuffers.GetSlot(&rcv._tab, 4, int32(0))
}

func VerifyIntVal(v *flatbuffers.Verifier, pos flatbuffers.UOffsetT) error {
	tv, err := v.VisitTable(pos)
	if err != nil {
		return err
	}
	flatbuffers.VerifyField[int32](tv, "val", 4, false)
	return tv.Finish()
}

func CreateIntVal(builder *flatbuffers.Builder, val int32) flatbuffers.UOffsetT {
	builder.StartObject(1)
	flatbuffers.PrependSlot(builder, 0, val, 0)
	return builder.EndObject()
}

type FloatValT struct {
	Val float32 `json:"val"`
}

func (t *FloatValT) Pack(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	if t == nil {
		return 0
	}
	return CreateFloatVal(builder, t.Val)
}

func (rcv *FloatVal) UnPack() *FloatValT {
	if rcv == nil {
		return nil
	}
	return &FloatValT{Val: rcv.Val()}
}

type FloatVal struct {
	_tab flatbuffers.Table
}

func (rcv *FloatVal) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *FloatVal) Val() float32 {
	return flatbuffers.GetSlot(&rcv._tab, 4, float32(0))
}

func VerifyFloatVal(v *flatbuffers.Verifier, pos flatbuffers.UOffsetT) error {
	tv, err := v.VisitTable(pos)
	if err != nil {
		return err
	}
	flatbuffers.VerifyField[float32](tv, "val", 4, false)
	return tv.Finish()
}

func CreateFloatVal(builder *flatbuffers.Builder, val float32) flatbuffers.UOffsetT {
	builder.StartObject(1)
	flatbuffers.PrependSlot(builder, 0, val, 0)
	return builder.EndObject()
}

type BoolValT struct {
	Val bool `json:"val"`
}

func (t *BoolValT) Pack(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	if t == nil {
		return 0
	}
	return CreateBoolVal(builder, t.Val)
}

func (rcv *BoolVal) UnPack() *BoolValT {
	if rcv == nil {
		return nil
	}
	return &BoolValT{Val: rcv.Val()}
}

type BoolVal struct {
	_tab flatbuffers.Table
}

func (rcv *BoolVal) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *BoolVal) Val() bool {
	return flatbuffers.GetSlot(&rcv._tab, 4, false)
}

func VerifyBoolVal(v *flatbuffers.Verifier, pos flatbuffers.UOffsetT) error {
	tv, err := v.VisitTable(pos)
	if err != nil {
		return err
	}
	flatbuffers.VerifyField[bool](tv, "val", 4, false)
	return tv.Finish()
}

func CreateBoolVal(builder *flatbuffers.Builder, val bool) flatbuffers.UOffsetT {
	builder.StartObject(1)
	flatbuffers.PrependSlot(builder, 0, val, false)
	return builder.EndObject()
}

// BlueprintEntityPayloadT refers to a scene entity by id.
type BlueprintEntityPayloadT struct {
	ID int32 `json:"id"`
}

func (t *BlueprintEntityPayloadT) Pack(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	if t == nil {
		return 0
	}
	return CreateBlueprintEntityPayload(builder, t.ID)
}

func (rcv *BlueprintEntityPayload) UnPack() *BlueprintEntityPayloadT {
	if rcv == nil {
		return nil
	}
	return &BlueprintEntityPayloadT{ID: rcv.ID()}
}

type BlueprintEntityPayload struct {
	_tab flatbuffers.Table
}

func (rcv *BlueprintEntityPayload) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *BlueprintEntityPayload) ID() int32 {
	return flatbuffers.GetSlot(&rcv._tab, 4, int32(0))
}

func VerifyBlueprintEntityPayload(v *flatbuffers.Verifier, pos flatbuffers.UOffsetT) error {
	tv, err := v.VisitTable(pos)
	if err != nil {
		return err
	}
	flatbuffers.VerifyField[int32](tv, "id", 4, false)
	return tv.Finish()
}

func CreateBlueprintEntityPayload(builder *flatbuffers.Builder, id int32) flatbuffers.UOffsetT {
	builder.StartObject(1)
	flatbuffers.PrependSlot(builder, 0, id, 0)
	return builder.EndObject()
}
