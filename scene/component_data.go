package scene

import (
	"strconv"

	flatbuffers "github.com/blastbao/fbtable/flatbuffers"
)

// ComponentData tags the table held by a Component.
type ComponentData uint8

const (
	ComponentDataNONE                       ComponentData = 0
	ComponentDataTransformComponent         ComponentData = 1
	ComponentDataCameraComponent            ComponentData = 2
	ComponentDataModelMetadataComponent     ComponentData = 3
	ComponentDataMetadataComponent          ComponentData = 4
	ComponentDataBlueprintMetadataComponent ComponentData = 5
)

var EnumNamesComponentData = map[ComponentData]string{
	ComponentDataNONE:                       "NONE",
	ComponentDataTransformComponent:         "TransformComponent",
	ComponentDataCameraComponent:            "CameraComponent",
	ComponentDataModelMetadataComponent:     "ModelMetadataComponent",
	ComponentDataMetadataComponent:          "MetadataComponent",
	ComponentDataBlueprintMetadataComponent: "BlueprintMetadataComponent",
}

var EnumValuesComponentData = map[string]ComponentData{
	"NONE":                       ComponentDataNONE,
	"TransformComponent":         ComponentDataTransformComponent,
	"CameraComponent":            ComponentDataCameraComponent,
	"ModelMetadataComponent":     ComponentDataModelMetadataComponent,
	"MetadataComponent":          ComponentDataMetadataComponent,
	"BlueprintMetadataComponent": ComponentDataBlueprintMetadataComponent,
}

func (v ComponentData) String() string {
	if s, ok := EnumNamesComponentData[v]; ok {
		return s
	}
	return "ComponentData(" + strconv.FormatInt(int64(v), 10) + ")"
}

// ComponentDataT is the owned form of the union. Value holds the owned
// form of the member table named by Type, e.g. *CameraComponentT.
type ComponentDataT struct {
	Type  ComponentData
	Value interface{}
}

// Pack writes the member table and returns its offset, or 0 for NONE.
func (t *ComponentDataT) Pack(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	if t == nil {
		return 0
	}
	switch t.Type {
	case ComponentDataTransformComponent:
		return t.Value.(*TransformComponentT).Pack(builder)
	case ComponentDataCameraComponent:
		return t.Value.(*CameraComponentT).Pack(builder)
	case ComponentDataModelMetadataComponent:
		return t.Value.(*ModelMetadataComponentT).Pack(builder)
	case ComponentDataMetadataComponent:
		return t.Value.(*MetadataComponentT).Pack(builder)
	case ComponentDataBlueprintMetadataComponent:
		return t.Value.(*BlueprintMetadataComponentT).Pack(builder)
	}
	return 0
}

// UnPack copies the member table out of the buffer. Unknown tags yield nil.
func (rcv ComponentData) UnPack(table flatbuffers.Table) *ComponentDataT {
	switch rcv {
	case ComponentDataTransformComponent:
		var x TransformComponent
		x.Init(table.Bytes, table.Pos)
		return &ComponentDataT{Type: rcv, Value: x.UnPack()}
	case ComponentDataCameraComponent:
		var x CameraComponent
		x.Init(table.Bytes, table.Pos)
		return &ComponentDataT{Type: rcv, Value: x.UnPack()}
	case ComponentDataModelMetadataComponent:
		var x ModelMetadataComponent
		x.Init(table.Bytes, table.Pos)
		return &ComponentDataT{Type: rcv, Value: x.UnPack()}
	case ComponentDataMetadataComponent:
		var x MetadataComponent
		x.Init(table.Bytes, table.Pos)
		return &ComponentDataT{Type: rcv, Value: x.UnPack()}
	case ComponentDataBlueprintMetadataComponent:
		var x BlueprintMetadataComponent
		x.Init(table.Bytes, table.Pos)
		return &ComponentDataT{Type: rcv, Value: x.UnPack()}
	}
	return nil
}

// VerifyComponentData checks the union member of type typ at pos. Tags
// added by newer writers are accepted without looking at the member, so
// older readers skip components they do not know.
func VerifyComponentData(v *flatbuffers.Verifier, typ uint8, pos flatbuffers.UOffsetT) error {
	switch ComponentData(typ) {
	case ComponentDataTransformComponent:
		return VerifyTransformComponent(v, pos)
	case ComponentDataCameraComponent:
		return VerifyCameraComponent(v, pos)
	case ComponentDataModelMetadataComponent:
		return VerifyModelMetadataComponent(v, pos)
	case ComponentDataMetadataComponent:
		return VerifyMetadataComponent(v, pos)
	case ComponentDataBlueprintMetadataComponent:
		return VerifyBlueprintMetadataComponent(v, pos)
	}
	return nil
}
