package scene

import (
	flatbuffers "github.com/blastbao/fbtable/flatbuffers"
)

// EntityT is the owned form of Entity. A nil Components slice is an absent
// vector, an empty one an empty vector.
type EntityT struct {
	UUID       uint64        `json:"uuid"`
	Components []*ComponentT `json:"components"`
}

func (t *EntityT) Pack(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	if t == nil {
		return 0
	}
	componentsOffset := flatbuffers.UOffsetT(0)
	if t.Components != nil {
		offsets := make([]flatbuffers.UOffsetT, len(t.Components))
		for j := range t.Components {
			offsets[j] = t.Components[j].Pack(builder)
		}
		componentsOffset = builder.CreateUOffsetVector(offsets)
	}
	EntityStart(builder)
	EntityAddUUID(builder, t.UUID)
	EntityAddComponents(builder, componentsOffset)
	return EntityEnd(builder)
}

func (rcv *Entity) UnPackTo(t *EntityT) {
	t.UUID = rcv.UUID()
	if components, ok := rcv.Components(); ok {
		t.Components = make([]*ComponentT, components.Len())
		for j := range t.Components {
			t.Components[j] = components.At(j).UnPack()
		}
	}
}

func (rcv *Entity) UnPack() *EntityT {
	if rcv == nil {
		return nil
	}
	t := &EntityT{}
	rcv.UnPackTo(t)
	return t
}

type Entity struct {
	_tab flatbuffers.Table
}

func (rcv *Entity) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Entity) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *Entity) UUID() uint64 {
	return flatbuffers.GetSlot(&rcv._tab, 4, uint64(0))
}

func (rcv *Entity) Components() (flatbuffers.TableVector[Component, *Component], bool) {
	return flatbuffers.GetTableVector[Component](&rcv._tab, 6)
}

func VerifyEntity(v *flatbuffers.Verifier, pos flatbuffers.UOffsetT) error {
	tv, err := v.VisitTable(pos)
	if err != nil {
		return err
	}
	flatbuffers.VerifyField[uint64](tv, "uuid", 4, false)
	tv.TableVector("components", 6, false, VerifyComponent)
	return tv.Finish()
}

func EntityStart(builder *flatbuffers.Builder) {
	builder.StartObject(2)
}

func EntityAddUUID(builder *flatbuffers.Builder, uuid uint64) {
	flatbuffers.PrependSlot(builder, 0, uuid, 0)
}

func EntityAddComponents(builder *flatbuffers.Builder, components flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(1, components)
}

func EntityEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
