package scene

import (
	flatbuffers "github.com/blastbao/fbtable/flatbuffers"
)

type ComponentT struct {
	Data *ComponentDataT `json:"data"`
}

func (t *ComponentT) Pack(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	if t == nil {
		return 0
	}
	dataOffset := t.Data.Pack(builder)
	ComponentStart(builder)
	ComponentAddData(builder, dataOffset)
	if dataOffset != 0 {
		ComponentAddDataType(builder, t.Data.Type)
	}
	return ComponentEnd(builder)
}

func (rcv *Component) UnPackTo(t *ComponentT) {
	var table flatbuffers.Table
	if rcv.Data(&table) {
		t.Data = rcv.DataType().UnPack(table)
	}
}

func (rcv *Component) UnPack() *ComponentT {
	if rcv == nil {
		return nil
	}
	t := &ComponentT{}
	rcv.UnPackTo(t)
	return t
}

// Component wraps one union member.
type Component struct {
	_tab flatbuffers.Table
}

func (rcv *Component) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Component) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *Component) DataType() ComponentData {
	return flatbuffers.GetSlot(&rcv._tab, 4, ComponentDataNONE)
}

// Data points obj at the member table. It reports false if no member is
// set; DataType tells which table type obj now refers to.
func (rcv *Component) Data(obj *flatbuffers.Table) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		rcv._tab.Union(obj, o)
		return true
	}
	return false
}

func VerifyComponent(v *flatbuffers.Verifier, pos flatbuffers.UOffsetT) error {
	tv, err := v.VisitTable(pos)
	if err != nil {
		return err
	}
	tv.Union("data", 4, 6, false, VerifyComponentData)
	return tv.Finish()
}

func ComponentStart(builder *flatbuffers.Builder) {
	builder.StartObject(2)
}

func ComponentAddDataType(builder *flatbuffers.Builder, dataType ComponentData) {
	flatbuffers.PrependSlot(builder, 0, dataType, ComponentDataNONE)
}

func ComponentAddData(builder *flatbuffers.Builder, data flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(1, data)
}

func ComponentEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
