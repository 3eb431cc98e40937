package blueprint

import (
	flatbuffers "github.com/blastbao/fbtable/flatbuffers"
)

// BlueprintLinkT connects an output pin to an input pin. Pins are named by
// id; the node ids are kept so a reader can resolve pins without a global
// index.
type BlueprintLinkT struct {
	ID          int32 `json:"id"`
	StartNodeID int32 `json:"start_node_id"`
	StartPinID  int32 `json:"start_pin_id"`
	EndNodeID   int32 `json:"end_node_id"`
	EndPinID    int32 `json:"end_pin_id"`
}

func (t *BlueprintLinkT) Pack(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	if t == nil {
		return 0
	}
	return CreateBlueprintLink(builder, t.ID, t.StartNodeID, t.StartPinID, t.EndNodeID, t.EndPinID)
}

func (rcv *BlueprintLink) UnPack() *BlueprintLinkT {
	if rcv == nil {
		return nil
	}
	return &BlueprintLinkT{
		ID:          rcv.ID(),
		StartNodeID: rcv.StartNodeID(),
		StartPinID:  rcv.StartPinID(),
		EndNodeID:   rcv.EndNodeID(),
		EndPinID:    rcv.EndPinID(),
	}
}

type BlueprintLink struct {
	_tab flatbuffers.Table
}

func (rcv *BlueprintLink) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *BlueprintLink) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *BlueprintLink) ID() int32          { return flatbuffers.GetSlot(&rcv._tab, 4, int32(0)) }
func (rcv *BlueprintLink) StartNodeID() int32 { return flatbuffers.GetSlot(&rcv._tab, 6, int32(0)) }
func (rcv *BlueprintLink) StartPinID() int32  { return flatbuffers.GetSlot(&rcv._tab, 8, int32(0)) }
func (rcv *BlueprintLink) EndNodeID() int32   { return flatbuffers.GetSlot(&rcv._tab, 10, int32(0)) }
func (rcv *BlueprintLink) EndPinID() int32    { return flatbuffers.GetSlot(&rcv._tab, 12, int32(0)) }

func VerifyBlueprintLink(v *flatbuffers.Verifier, pos flatbuffers.UOffsetT) error {
	tv, err := v.VisitTable(pos)
	if err != nil {
		return err
	}
	flatbuffers.VerifyField[int32](tv, "id", 4, false)
	flatbuffers.VerifyField[int32](tv, "start_node_id", 6, false)
	flatbuffers.VerifyField[int32](tv, "start_pin_id", 8, false)
	flatbuffers.VerifyField[int32](tv, "end_node_id", 10, false)
	flatbuffers.VerifyField[int32](tv, "end_pin_id", 12, false)
	return tv.Finish()
}

// CreateBlueprintLink writes a complete BlueprintLink table.
func CreateBlueprintLink(builder *flatbuffers.Builder, id, startNodeID, startPinID, endNodeID, endPinID int32) flatbuffers.UOffsetT {
	builder.StartObject(5)
	flatbuffers.PrependSlot(builder, 4, endPinID, 0)
	flatbuffers.PrependSlot(builder, 3, endNodeID, 0)
	flatbuffers.PrependSlot(builder, 2, startPinID, 0)
	flatbuffers.PrependSlot(builder, 1, startNodeID, 0)
	flatbuffers.PrependSlot(builder, 0, id, 0)
	return builder.EndObject()
}
