package scene

import (
	flatbuffers "github.com/blastbao/fbtable/flatbuffers"
)

// TransformComponentT is the owned form of TransformComponent. Nil vectors
// are absent fields.
type TransformComponentT struct {
	Translation *Vec3T `json:"translation"`
	Rotation    *QuatT `json:"rotation"`
	Scale       *Vec3T `json:"scale"`
}

func (t *TransformComponentT) Pack(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	if t == nil {
		return 0
	}
	TransformComponentStart(builder)
	TransformComponentAddTranslation(builder, t.Translation.Pack(builder))
	TransformComponentAddRotation(builder, t.Rotation.Pack(builder))
	TransformComponentAddScale(builder, t.Scale.Pack(builder))
	return TransformComponentEnd(builder)
}

func (rcv *TransformComponent) UnPackTo(t *TransformComponentT) {
	t.Translation = rcv.Translation(nil).UnPack()
	t.Rotation = rcv.Rotation(nil).UnPack()
	t.Scale = rcv.Scale(nil).UnPack()
}

func (rcv *TransformComponent) UnPack() *TransformComponentT {
	if rcv == nil {
		return nil
	}
	t := &TransformComponentT{}
	rcv.UnPackTo(t)
	return t
}

type TransformComponent struct {
	_tab flatbuffers.Table
}

func (rcv *TransformComponent) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *TransformComponent) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *TransformComponent) Translation(obj *Vec3) *Vec3 {
	if pos, ok := rcv._tab.StructSlot(4); ok {
		if obj == nil {
			obj = new(Vec3)
		}
		obj.Init(rcv._tab.Bytes, pos)
		return obj
	}
	return nil
}

func (rcv *TransformComponent) Rotation(obj *Quat) *Quat {
	if pos, ok := rcv._tab.StructSlot(6); ok {
		if obj == nil {
			obj = new(Quat)
		}
		obj.Init(rcv._tab.Bytes, pos)
		return obj
	}
	return nil
}

func (rcv *TransformComponent) Scale(obj *Vec3) *Vec3 {
	if pos, ok := rcv._tab.StructSlot(8); ok {
		if obj == nil {
			obj = new(Vec3)
		}
		obj.Init(rcv._tab.Bytes, pos)
		return obj
	}
	return nil
}

func VerifyTransformComponent(v *flatbuffers.Verifier, pos flatbuffers.UOffsetT) error {
	tv, err := v.VisitTable(pos)
	if err != nil {
		return err
	}
	tv.Struct("translation", 4, vec3Size, structAlign, false).
		Struct("rotation", 6, quatSize, structAlign, false).
		Struct("scale", 8, vec3Size, structAlign, false)
	return tv.Finish()
}

func TransformComponentStart(builder *flatbuffers.Builder) {
	builder.StartObject(3)
}

func TransformComponentAddTranslation(builder *flatbuffers.Builder, translation flatbuffers.UOffsetT) {
	builder.PrependStructSlot(0, translation, 0)
}

func TransformComponentAddRotation(builder *flatbuffers.Builder, rotation flatbuffers.UOffsetT) {
	builder.PrependStructSlot(1, rotation, 0)
}

func TransformComponentAddScale(builder *flatbuffers.Builder, scale flatbuffers.UOffsetT) {
	builder.PrependStructSlot(2, scale, 0)
}

func TransformComponentEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

// Camera defaults, as declared in the schema.
const (
	DefaultCameraFov    float32 = 45
	DefaultCameraNear   float32 = 0.1
	DefaultCameraFar    float32 = 1000
	DefaultCameraAspect float32 = 1
)

type CameraComponentT struct {
	Fov    float32 `json:"fov"`
	Near   float32 `json:"near"`
	Far    float32 `json:"far"`
	Aspect float32 `json:"aspect"`
	Active bool    `json:"active"`
}

// NewCameraComponentT returns a camera holding the schema defaults.
func NewCameraComponentT() *CameraComponentT {
	return &CameraComponentT{
		Fov:    DefaultCameraFov,
		Near:   DefaultCameraNear,
		Far:    DefaultCameraFar,
		Aspect: DefaultCameraAspect,
	}
}

func (t *CameraComponentT) Pack(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	if t == nil {
		return 0
	}
	CameraComponentStart(builder)
	CameraComponentAddFov(builder, t.Fov)
	CameraComponentAddNear(builder, t.Near)
	CameraComponentAddFar(builder, t.Far)
	CameraComponentAddAspect(builder, t.Aspect)
	CameraComponentAddActive(builder, t.Active)
	return CameraComponentEnd(builder)
}

func (rcv *CameraComponent) UnPackTo(t *CameraComponentT) {
	t.Fov = rcv.Fov()
	t.Near = rcv.Near()
	t.Far = rcv.Far()
	t.Aspect = rcv.Aspect()
	t.Active = rcv.Active()
}

func (rcv *CameraComponent) UnPack() *CameraComponentT {
	if rcv == nil {
		return nil
	}
	t := &CameraComponentT{}
	rcv.UnPackTo(t)
	return t
}

type CameraComponent struct {
	_tab flatbuffers.Table
}

func (rcv *CameraComponent) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *CameraComponent) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *CameraComponent) Fov() float32 {
	return flatbuffers.GetSlot(&rcv._tab, 4, DefaultCameraFov)
}

func (rcv *CameraComponent) Near() float32 {
	return flatbuffers.GetSlot(&rcv._tab, 6, DefaultCameraNear)
}

func (rcv *CameraComponent) Far() float32 {
	return flatbuffers.GetSlot(&rcv._tab, 8, DefaultCameraFar)
}

func (rcv *CameraComponent) Aspect() float32 {
	return flatbuffers.GetSlot(&rcv._tab, 10, DefaultCameraAspect)
}

func (rcv *CameraComponent) Active() bool {
	return flatbuffers.GetSlot(&rcv._tab, 12, false)
}

func VerifyCameraComponent(v *flatbuffers.Verifier, pos flatbuffers.UOffsetT) error {
	tv, err := v.VisitTable(pos)
	if err != nil {
		return err
	}
	flatbuffers.VerifyField[float32](tv, "fov", 4, false)
	flatbuffers.VerifyField[float32](tv, "near", 6, false)
	flatbuffers.VerifyField[float32](tv, "far", 8, false)
	flatbuffers.VerifyField[float32](tv, "aspect", 10, false)
	flatbuffers.VerifyField[bool](tv, "active", 12, false)
	return tv.Finish()
}

func CameraComponentStart(builder *flatbuffers.Builder) {
	builder.StartObject(5)
}

func CameraComponentAddFov(builder *flatbuffers.Builder, fov float32) {
	flatbuffers.PrependSlot(builder, 0, fov, DefaultCameraFov)
}

func CameraComponentAddNear(builder *flatbuffers.Builder, near float32) {
	flatbuffers.PrependSlot(builder, 1, near, DefaultCameraNear)
}

func CameraComponentAddFar(builder *flatbuffers.Builder, far float32) {
	flatbuffers.PrependSlot(builder, 2, far, DefaultCameraFar)
}

func CameraComponentAddAspect(builder *flatbuffers.Builder, aspect float32) {
	flatbuffers.PrependSlot(builder, 3, aspect, DefaultCameraAspect)
}

func CameraComponentAddActive(builder *flatbuffers.Builder, active bool) {
	flatbuffers.PrependSlot(builder, 4, active, false)
}

func CameraComponentEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

type ModelMetadataComponentT struct {
	ModelPath string `json:"model_path"`
}

func (t *ModelMetadataComponentT) Pack(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	if t == nil {
		return 0
	}
	modelPathOffset := flatbuffers.UOffsetT(0)
	if t.ModelPath != "" {
		modelPathOffset = builder.CreateSharedString(t.ModelPath)
	}
	ModelMetadataComponentStart(builder)
	ModelMetadataComponentAddModelPath(builder, modelPathOffset)
	return ModelMetadataComponentEnd(builder)
}

func (rcv *ModelMetadataComponent) UnPackTo(t *ModelMetadataComponentT) {
	t.ModelPath = string(rcv.ModelPath())
}

func (rcv *ModelMetadataComponent) UnPack() *ModelMetadataComponentT {
	if rcv == nil {
		return nil
	}
	t := &ModelMetadataComponentT{}
	rcv.UnPackTo(t)
	return t
}

type ModelMetadataComponent struct {
	_tab flatbuffers.Table
}

func (rcv *ModelMetadataComponent) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *ModelMetadataComponent) Table() flatbuffers.Table {
	return rcv._tab
}

// ModelPath returns nil when the field is absent.
func (rcv *ModelMetadataComponent) ModelPath() []byte {
	return rcv._tab.ByteVectorSlot(4)
}

func VerifyModelMetadataComponent(v *flatbuffers.Verifier, pos flatbuffers.UOffsetT) error {
	tv, err := v.VisitTable(pos)
	if err != nil {
		return err
	}
	tv.String("model_path", 4, false)
	return tv.Finish()
}

func ModelMetadataComponentStart(builder *flatbuffers.Builder) {
	builder.StartObject(1)
}

func ModelMetadataComponentAddModelPath(builder *flatbuffers.Builder, modelPath flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, modelPath)
}

func ModelMetadataComponentEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

type MetadataComponentT struct {
	Identifier uint64 `json:"identifier"`
	Name       string `json:"name"`
}

func (t *MetadataComponentT) Pack(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	if t == nil {
		return 0
	}
	nameOffset := flatbuffers.UOffsetT(0)
	if t.Name != "" {
		nameOffset = builder.CreateString(t.Name)
	}
	MetadataComponentStart(builder)
	MetadataComponentAddIdentifier(builder, t.Identifier)
	MetadataComponentAddName(builder, nameOffset)
	return MetadataComponentEnd(builder)
}

func (rcv *MetadataComponent) UnPackTo(t *MetadataComponentT) {
	t.Identifier = rcv.Identifier()
	t.Name = string(rcv.Name())
}

func (rcv *MetadataComponent) UnPack() *MetadataComponentT {
	if rcv == nil {
		return nil
	}
	t := &MetadataComponentT{}
	rcv.UnPackTo(t)
	return t
}

type MetadataComponent struct {
	_tab flatbuffers.Table
}

func (rcv *MetadataComponent) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *MetadataComponent) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *MetadataComponent) Identifier() uint64 {
	return flatbuffers.GetSlot(&rcv._tab, 4, uint64(0))
}

func (rcv *MetadataComponent) Name() []byte {
	return rcv._tab.ByteVectorSlot(6)
}

func VerifyMetadataComponent(v *flatbuffers.Verifier, pos flatbuffers.UOffsetT) error {
	tv, err := v.VisitTable(pos)
	if err != nil {
		return err
	}
	flatbuffers.VerifyField[uint64](tv, "identifier", 4, false)
	tv.String("name", 6, false)
	return tv.Finish()
}

func MetadataComponentStart(builder *flatbuffers.Builder) {
	builder.StartObject(2)
}

func MetadataComponentAddIdentifier(builder *flatbuffers.Builder, identifier uint64) {
	flatbuffers.PrependSlot(builder, 0, identifier, 0)
}

func MetadataComponentAddName(builder *flatbuffers.Builder, name flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(1, name)
}

func MetadataComponentEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

// BlueprintMetadataComponentT names the blueprint file that drives an
// entity.
type BlueprintMetadataComponentT struct {
	BlueprintPath string `json:"blueprint_path"`
}

func (t *BlueprintMetadataComponentT) Pack(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	if t == nil {
		return 0
	}
	blueprintPathOffset := flatbuffers.UOffsetT(0)
	if t.BlueprintPath != "" {
		blueprintPathOffset = builder.CreateSharedString(t.BlueprintPath)
	}
	BlueprintMetadataComponentStart(builder)
	BlueprintMetadataComponentAddBlueprintPath(builder, blueprintPathOffset)
	return BlueprintMetadataComponentEnd(builder)
}

func (rcv *BlueprintMetadataComponent) UnPackTo(t *BlueprintMetadataComponentT) {
	t.BlueprintPath = string(rcv.BlueprintPath())
}

func (rcv *BlueprintMetadataComponent) UnPack() *BlueprintMetadataComponentT {
	if rcv == nil {
		return nil
	}
	t := &BlueprintMetadataComponentT{}
	rcv.UnPackTo(t)
	return t
}

type BlueprintMetadataComponent struct {
	_tab flatbuffers.Table
}

func (rcv *BlueprintMetadataComponent) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *BlueprintMetadataComponent) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *BlueprintMetadataComponent) BlueprintPath() []byte {
	return rcv._tab.ByteVectorSlot(4)
}

func VerifyBlueprintMetadataComponent(v *flatbuffers.Verifier, pos flatbuffers.UOffsetT) error {
	tv, err := v.VisitTable(pos)
	if err != nil {
		return err
	}
	tv.String("blueprint_path", 4, false)
	return tv.Finish()
}

func BlueprintMetadataComponentStart(builder *flatbuffers.Builder) {
	builder.StartObject(1)
}

func BlueprintMetadataComponentAddBlueprintPath(builder *flatbuffers.Builder, blueprintPath flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, blueprintPath)
}

func BlueprintMetadataComponentEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
