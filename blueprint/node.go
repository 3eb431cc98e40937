package blueprint

import (
	flatbuffers "github.com/blastbao/fbtable/flatbuffers"
)

const (
	vec2iSize  = 8
	vec2iAlign = 4
)

// Vec2iT is the owned form of Vec2i, a canvas position.
type Vec2iT struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

func (t *Vec2iT) Pack(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	if t == nil {
		return 0
	}
	return CreateVec2i(builder, t.X, t.Y)
}

func (rcv *Vec2i) UnPack() *Vec2iT {
	if rcv == nil {
		return nil
	}
	return &Vec2iT{X: rcv.X(), Y: rcv.Y()}
}

type Vec2i struct {
	_tab flatbuffers.Table
}

func (rcv *Vec2i) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Vec2i) X() int32 { return flatbuffers.Get[int32](&rcv._tab, rcv._tab.Pos+0) }
func (rcv *Vec2i) Y() int32 { return flatbuffers.Get[int32](&rcv._tab, rcv._tab.Pos+4) }

// CreateVec2i writes a Vec2i inline into the open table.
func CreateVec2i(builder *flatbuffers.Builder, x, y int32) flatbuffers.UOffsetT {
	builder.Prep(vec2iAlign, vec2iSize)
	flatbuffers.Prepend(builder, y)
	flatbuffers.Prepend(builder, x)
	return builder.Offset()
}

// BlueprintNodeT is the owned form of BlueprintNode. Data is only set on
// nodes that hold a value of their own, such as string nodes.
type BlueprintNodeT struct {
	ID       int32              `json:"id"`
	Type     NodeType           `json:"type"`
	Position *Vec2iT            `json:"position"`
	Inputs   []*BlueprintPinT   `json:"inputs"`
	Outputs  []*BlueprintPinT   `json:"outputs"`
	Data     *BlueprintPayloadT `json:"data"`
}

func packPins(builder *flatbuffers.Builder, pins []*BlueprintPinT) flatbuffers.UOffsetT {
	if pins == nil {
		return 0
	}
	offsets := make([]flatbuffers.UOffsetT, len(pins))
	for j := range pins {
		offsets[j] = pins[j].Pack(builder)
	}
	return builder.CreateUOffsetVector(offsets)
}

func (t *BlueprintNodeT) Pack(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	if t == nil {
		return 0
	}
	inputsOffset := packPins(builder, t.Inputs)
	outputsOffset := packPins(builder, t.Outputs)
	dataOffset := t.Data.Pack(builder)
	BlueprintNodeStart(builder)
	if t.Position != nil {
		BlueprintNodeAddPosition(builder, t.Position.Pack(builder))
	}
	BlueprintNodeAddID(builder, t.ID)
	BlueprintNodeAddInputs(builder, inputsOffset)
	BlueprintNodeAddOutputs(builder, outputsOffset)
	BlueprintNodeAddData(builder, dataOffset)
	BlueprintNodeAddType(builder, t.Type)
	return BlueprintNodeEnd(builder)
}

func unpackPins(pins flatbuffers.TableVector[BlueprintPin, *BlueprintPin], ok bool) []*BlueprintPinT {
	if !ok {
		return nil
	}
	out := make([]*BlueprintPinT, pins.Len())
	for j := range out {
		out[j] = pins.At(j).UnPack()
	}
	return out
}

func (rcv *BlueprintNode) UnPackTo(t *BlueprintNodeT) {
	t.ID = rcv.ID()
	t.Type = rcv.Type()
	t.Position = rcv.Position(nil).UnPack()
	t.Inputs = unpackPins(rcv.Inputs())
	t.Outputs = unpackPins(rcv.Outputs())
	t.Data = rcv.Data(nil).UnPack()
}

func (rcv *BlueprintNode) UnPack() *BlueprintNodeT {
	if rcv == nil {
		return nil
	}
	t := &BlueprintNodeT{}
	rcv.UnPackTo(t)
	return t
}

type BlueprintNode struct {
	_tab flatbuffers.Table
}

func (rcv *BlueprintNode) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *BlueprintNode) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *BlueprintNode) ID() int32 {
	return flatbuffers.GetSlot(&rcv._tab, 4, int32(0))
}

func (rcv *BlueprintNode) Type() NodeType {
	return flatbuffers.GetSlot(&rcv._tab, 6, NodeTypeKeyPress)
}

func (rcv *BlueprintNode) Position(obj *Vec2i) *Vec2i {
	pos, ok := rcv._tab.StructSlot(8)
	if !ok {
		return nil
	}
	if obj == nil {
		obj = new(Vec2i)
	}
	obj.Init(rcv._tab.Bytes, pos)
	return obj
}

func (rcv *BlueprintNode) Inputs() (flatbuffers.TableVector[BlueprintPin, *BlueprintPin], bool) {
	return flatbuffers.GetTableVector[BlueprintPin](&rcv._tab, 10)
}

func (rcv *BlueprintNode) Outputs() (flatbuffers.TableVector[BlueprintPin, *BlueprintPin], bool) {
	return flatbuffers.GetTableVector[BlueprintPin](&rcv._tab, 12)
}

func (rcv *BlueprintNode) Data(obj *BlueprintPayload) *BlueprintPayload {
	pos, ok := rcv._tab.Ref(14)
	if !ok {
		return nil
	}
	if obj == nil {
		obj = new(BlueprintPayload)
	}
	obj.Init(rcv._tab.Bytes, pos)
	return obj
}

func VerifyBlueprintNode(v *flatbuffers.Verifier, pos flatbuffers.UOffsetT) error {
	tv, err := v.VisitTable(pos)
	if err != nil {
		return err
	}
	flatbuffers.VerifyField[int32](tv, "id", 4, false)
	flatbuffers.VerifyField[uint8](tv, "type", 6, false)
	tv.Struct("position", 8, vec2iSize, vec2iAlign, false)
	tv.TableVector("inputs", 10, false, VerifyBlueprintPin)
	tv.TableVector("outputs", 12, false, VerifyBlueprintPin)
	tv.Table("data", 14, false, VerifyBlueprintPayload)
	return tv.Finish()
}

func BlueprintNodeStart(builder *flatbuffers.Builder) {
	builder.StartObject(6)
}

func BlueprintNodeAddID(builder *flatbuffers.Builder, id int32) {
	flatbuffers.PrependSlot(builder, 0, id, 0)
}

func BlueprintNodeAddType(builder *flatbuffers.Builder, typ NodeType) {
	flatbuffers.PrependSlot(builder, 1, typ, NodeTypeKeyPress)
}

// BlueprintNodeAddPosition records a Vec2i written with CreateVec2i just
// before.
func BlueprintNodeAddPosition(builder *flatbuffers.Builder, position flatbuffers.UOffsetT) {
	builder.PrependStructSlot(2, position, 0)
}

func BlueprintNodeAddInputs(builder *flatbuffers.Builder, inputs flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(3, inputs)
}

func BlueprintNodeAddOutputs(builder *flatbuffers.Builder, outputs flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(4, outputs)
}

func BlueprintNodeAddData(builder *flatbuffers.Builder, data flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(5, data)
}

func BlueprintNodeEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
