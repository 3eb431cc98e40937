// Package scene holds the bindings of a small scene graph schema: a Scene
// of Entities, each carrying a list of Components whose payload is one of
// several component tables.
//
//	struct Vec3 { x, y, z: float; }
//	struct Quat { w, x, y, z: float; }
//	table TransformComponent { translation: Vec3; rotation: Quat; scale: Vec3; }
//	table CameraComponent { fov = 45; near = 0.1; far = 1000; aspect = 1; active: bool; }
//	table ModelMetadataComponent { model_path: string; }
//	table MetadataComponent { identifier: ulong; name: string; }
//	table BlueprintMetadataComponent { blueprint_path: string; }
//	union ComponentData {
//	  TransformComponent, CameraComponent, ModelMetadataComponent,
//	  MetadataComponent, BlueprintMetadataComponent
//	}
//	table Component { data: ComponentData; }
//	table Entity { uuid: ulong; components: [Component]; }
//	table Scene { entities: [Entity]; }
//	root_type Scene;
//	file_identifier "PWSC";
package scene

import (
	flatbuffers "github.com/blastbao/fbtable/flatbuffers"
)

// SceneIdentifier is the file identifier of scene buffers.
const SceneIdentifier = "PWSC"

type SceneT struct {
	Entities []*EntityT `json:"entities"`
}

func (t *SceneT) Pack(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	if t == nil {
		return 0
	}
	entitiesOffset := flatbuffers.UOffsetT(0)
	if t.Entities != nil {
		offsets := make([]flatbuffers.UOffsetT, len(t.Entities))
		for j := range t.Entities {
			offsets[j] = t.Entities[j].Pack(builder)
		}
		entitiesOffset = builder.CreateUOffsetVector(offsets)
	}
	SceneStart(builder)
	SceneAddEntities(builder, entitiesOffset)
	return SceneEnd(builder)
}

func (rcv *Scene) UnPackTo(t *SceneT) {
	if entities, ok := rcv.Entities(); ok {
		t.Entities = make([]*EntityT, entities.Len())
		for j := range t.Entities {
			t.Entities[j] = entities.At(j).UnPack()
		}
	}
}

func (rcv *Scene) UnPack() *SceneT {
	if rcv == nil {
		return nil
	}
	t := &SceneT{}
	rcv.UnPackTo(t)
	return t
}

type Scene struct {
	_tab flatbuffers.Table
}

// GetRootAsScene returns the root of a trusted scene buffer.
func GetRootAsScene(buf []byte, offset flatbuffers.UOffsetT) *Scene {
	return flatbuffers.GetRoot[Scene](buf, offset)
}

func GetSizePrefixedRootAsScene(buf []byte, offset flatbuffers.UOffsetT) *Scene {
	return flatbuffers.GetSizePrefixedRoot[Scene](buf, offset)
}

// SceneBufferHasIdentifier reports whether buf is tagged as a scene buffer.
func SceneBufferHasIdentifier(buf []byte) bool {
	return flatbuffers.BufferHasIdentifier(buf, SceneIdentifier, false)
}

// GetScene verifies buf, including its file identifier, and returns its
// root. Pass sizePrefixed for buffers written by FinishSizePrefixedSceneBuffer.
func GetScene(buf []byte, sizePrefixed bool, opts *flatbuffers.VerifierOptions) (*Scene, error) {
	if err := VerifySceneBuffer(buf, sizePrefixed, opts); err != nil {
		return nil, err
	}
	if sizePrefixed {
		return GetSizePrefixedRootAsScene(buf, 0), nil
	}
	return GetRootAsScene(buf, 0), nil
}

// VerifySceneBuffer checks a complete scene buffer.
func VerifySceneBuffer(buf []byte, sizePrefixed bool, opts *flatbuffers.VerifierOptions) error {
	return flatbuffers.NewVerifier(buf, opts).VerifyBuffer(SceneIdentifier, sizePrefixed, VerifyScene)
}

func (rcv *Scene) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Scene) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *Scene) Entities() (flatbuffers.TableVector[Entity, *Entity], bool) {
	return flatbuffers.GetTableVector[Entity](&rcv._tab, 4)
}

func VerifyScene(v *flatbuffers.Verifier, pos flatbuffers.UOffsetT) error {
	tv, err := v.VisitTable(pos)
	if err != nil {
		return err
	}
	tv.TableVector("entities", 4, false, VerifyEntity)
	return tv.Finish()
}

func SceneStart(builder *flatbuffers.Builder) {
	builder.StartObject(1)
}

func SceneAddEntities(builder *flatbuffers.Builder, entities flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, entities)
}

func SceneEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

func FinishSceneBuffer(builder *flatbuffers.Builder, offset flatbuffers.UOffsetT) {
	builder.FinishWithFileIdentifier(offset, []byte(SceneIdentifier))
}

func FinishSizePrefixedSceneBuffer(builder *flatbuffers.Builder, offset flatbuffers.UOffsetT) {
	builder.FinishSizePrefixedWithFileIdentifier(offset, []byte(SceneIdentifier))
}
