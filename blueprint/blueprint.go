// Package blueprint holds the bindings of the visual scripting schema: a
// Blueprint is a graph of nodes whose pins are joined by links. Pins and
// data nodes carry a payload that is either a bare string or one of a few
// small value tables.
//
//	enum NodeType: ubyte { KeyPress, KeyRelease, String, Print }
//	enum PinType: ubyte { Flow, Bool, Int, Float, String, Object, Function, Delegate }
//	enum PinSubType: ubyte { None, Actor, Light, Camera, Animation, Sequence, Composition }
//	enum PinKind: ubyte { Output, Input }
//	struct Vec2i { x, y: int; }
//	table IntVal { val: int; }
//	table FloatVal { val: float; }
//	table BoolVal { val: bool; }
//	table BlueprintEntityPayload { id: int; }
//	union BlueprintPayloadData { s: string, i: IntVal, f: FloatVal, b: BoolVal, e: BlueprintEntityPayload }
//	table BlueprintPayload { data: BlueprintPayloadData; }
//	table BlueprintPin { id: int; type: PinType; subtype: PinSubType; kind: PinKind; data: BlueprintPayload; }
//	table BlueprintNode { id: int; type: NodeType; position: Vec2i; inputs, outputs: [BlueprintPin]; data: BlueprintPayload; }
//	table BlueprintLink { id, start_node_id, start_pin_id, end_node_id, end_pin_id: int; }
//	table Blueprint { nodes: [BlueprintNode]; links: [BlueprintLink]; }
//	root_type Blueprint;
package blueprint

import (
	flatbuffers "github.com/blastbao/fbtable/flatbuffers"
)

type BlueprintT struct {
	Nodes []*BlueprintNodeT `json:"nodes"`
	Links []*BlueprintLinkT `json:"links"`
}

func (t *BlueprintT) Pack(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	if t == nil {
		return 0
	}
	nodesOffset := flatbuffers.UOffsetT(0)
	if t.Nodes != nil {
		offsets := make([]flatbuffers.UOffsetT, len(t.Nodes))
		for j := range t.Nodes {
			offsets[j] = t.Nodes[j].Pack(builder)
		}
		nodesOffset = builder.CreateUOffsetVector(offsets)
	}
	linksOffset := flatbuffers.UOffsetT(0)
	if t.Links != nil {
		offsets := make([]flatbuffers.UOffsetT, len(t.Links))
		for j := range t.Links {
			offsets[j] = t.Links[j].Pack(builder)
		}
		linksOffset = builder.CreateUOffsetVector(offsets)
	}
	BlueprintStart(builder)
	BlueprintAddNodes(builder, nodesOffset)
	BlueprintAddLinks(builder, linksOffset)
	return BlueprintEnd(builder)
}

func (rcv *Blueprint) UnPackTo(t *BlueprintT) {
	if nodes, ok := rcv.Nodes(); ok {
		t.Nodes = make([]*BlueprintNodeT, nodes.Len())
		for j := range t.Nodes {
			t.Nodes[j] = nodes.At(j).UnPack()
		}
	}
	if links, ok := rcv.Links(); ok {
		t.Links = make([]*BlueprintLinkT, links.Len())
		for j := range t.Links {
			t.Links[j] = links.At(j).UnPack()
		}
	}
}

func (rcv *Blueprint) UnPack() *BlueprintT {
	if rcv == nil {
		return nil
	}
	t := &BlueprintT{}
	rcv.UnPackTo(t)
	return t
}

type Blueprint struct {
	_tab flatbuffers.Table
}

// GetRootAsBlueprint returns the root of a trusted blueprint buffer.
func GetRootAsBlueprint(buf []byte, offset flatbuffers.UOffsetT) *Blueprint {
	return flatbuffers.GetRoot[Blueprint](buf, offset)
}

// GetBlueprint verifies buf and returns its root. Blueprint buffers carry
// no file identifier.
func GetBlueprint(buf []byte, opts *flatbuffers.VerifierOptions) (*Blueprint, error) {
	return flatbuffers.VerifiedRoot[Blueprint](buf, opts, VerifyBlueprint)
}

func (rcv *Blueprint) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Blueprint) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *Blueprint) Nodes() (flatbuffers.TableVector[BlueprintNode, *BlueprintNode], bool) {
	return flatbuffers.GetTableVector[BlueprintNode](&rcv._tab, 4)
}

func (rcv *Blueprint) Links() (flatbuffers.TableVector[BlueprintLink, *BlueprintLink], bool) {
	return flatbuffers.GetTableVector[BlueprintLink](&rcv._tab, 6)
}

func VerifyBlueprint(v *flatbuffers.Verifier, pos flatbuffers.UOffsetT) error {
	tv, err := v.VisitTable(pos)
	if err != nil {
		return err
	}
	tv.TableVector("nodes", 4, false, VerifyBlueprintNode)
	tv.TableVector("links", 6, false, VerifyBlueprintLink)
	return tv.Finish()
}

func BlueprintStart(builder *flatbuffers.Builder) {
	builder.StartObject(2)
}

func BlueprintAddNodes(builder *flatbuffers.Builder, nodes flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, nodes)
}

func BlueprintAddLinks(builder *flatbuffers.Builder, links flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(1, links)
}

func BlueprintEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
