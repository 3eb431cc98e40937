package blueprint

import (
	flatbuffers "github.com/blastbao/fbtable/flatbuffers"
)

type BlueprintPinT struct {
	ID      int32              `json:"id"`
	Type    PinType            `json:"type"`
	SubType PinSubType         `json:"subtype"`
	Kind    PinKind            `json:"kind"`
	Data    *BlueprintPayloadT `json:"data"`
}

func (t *BlueprintPinT) Pack(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	if t == nil {
		return 0
	}
	dataOffset := t.Data.Pack(builder)
	BlueprintPinStart(builder)
	BlueprintPinAddID(builder, t.ID)
	BlueprintPinAddData(builder, dataOffset)
	BlueprintPinAddType(builder, t.Type)
	BlueprintPinAddSubType(builder, t.SubType)
	BlueprintPinAddKind(builder, t.Kind)
	return BlueprintPinEnd(builder)
}

func (rcv *BlueprintPin) UnPackTo(t *BlueprintPinT) {
	t.ID = rcv.ID()
	t.Type = rcv.Type()
	t.SubType = rcv.SubType()
	t.Kind = rcv.Kind()
	t.Data = rcv.Data(nil).UnPack()
}

func (rcv *BlueprintPin) UnPack() *BlueprintPinT {
	if rcv == nil {
		return nil
	}
	t := &BlueprintPinT{}
	rcv.UnPackTo(t)
	return t
}

// BlueprintPin is an input or output socket of a node.
type BlueprintPin struct {
	_tab flatbuffers.Table
}

func (rcv *BlueprintPin) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *BlueprintPin) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *BlueprintPin) ID() int32 {
	return flatbuffers.GetSlot(&rcv._tab, 4, int32(0))
}

func (rcv *BlueprintPin) Type() PinType {
	return flatbuffers.GetSlot(&rcv._tab, 6, PinTypeFlow)
}

func (rcv *BlueprintPin) SubType() PinSubType {
	return flatbuffers.GetSlot(&rcv._tab, 8, PinSubTypeNone)
}

func (rcv *BlueprintPin) Kind() PinKind {
	return flatbuffers.GetSlot(&rcv._tab, 10, PinKindOutput)
}

// Data returns the pin's value, or nil if it has none. obj is reused when
// not nil.
func (rcv *BlueprintPin) Data(obj *BlueprintPayload) *BlueprintPayload {
	pos, ok := rcv._tab.Ref(12)
	if !ok {
		return nil
	}
	if obj == nil {
		obj = new(BlueprintPayload)
	}
	obj.Init(rcv._tab.Bytes, pos)
	return obj
}

func VerifyBlueprintPin(v *flatbuffers.Verifier, pos flatbuffers.UOffsetT) error {
	tv, err := v.VisitTable(pos)
	if err != nil {
		return err
	}
	flatbuffers.VerifyField[int32](tv, "id", 4, false)
	flatbuffers.VerifyField[uint8](tv, "type", 6, false)
	flatbuffers.VerifyField[uint8](tv, "subtype", 8, false)
	flatbuffers.VerifyField[uint8](tv, "kind", 10, false)
	tv.Table("data", 12, false, VerifyBlueprintPayload)
	return tv.Finish()
}

func BlueprintPinStart(builder *flatbuffers.Builder) {
	builder.StartObject(5)
}

func BlueprintPinAddID(builder *flatbuffers.Builder, id int32) {
	flatbuffers.PrependSlot(builder, 0, id, 0)
}

func BlueprintPinAddType(builder *flatbuffers.Builder, typ PinType) {
	flatbuffers.PrependSlot(builder, 1, typ, PinTypeFlow)
}

func BlueprintPinAddSubType(builder *flatbuffers.Builder, subType PinSubType) {
	flatbuffers.PrependSlot(builder, 2, subType, PinSubTypeNone)
}

func BlueprintPinAddKind(builder *flatbuffers.Builder, kind PinKind) {
	flatbuffers.PrependSlot(builder, 3, kind, PinKindOutput)
}

func BlueprintPinAddData(builder *flatbuffers.Builder, data flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(4, data)
}

func BlueprintPinEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
