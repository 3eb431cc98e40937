package scene_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	flatbuffers "github.com/blastbao/fbtable/flatbuffers"
	"github.com/blastbao/fbtable/scene"
)

func sampleScene() *scene.SceneT {
	return &scene.SceneT{
		Entities: []*scene.EntityT{
			{
				UUID: 0xDEADBEEFCAFE,
				Components: []*scene.ComponentT{
					{Data: &scene.ComponentDataT{
						Type: scene.ComponentDataTransformComponent,
						Value: &scene.TransformComponentT{
							Translation: &scene.Vec3T{X: 1, Y: 2, Z: 3},
							Rotation:    &scene.QuatT{W: 1},
							Scale:       &scene.Vec3T{X: 1, Y: 1, Z: 1},
						},
					}},
					{Data: &scene.ComponentDataT{
						Type:  scene.ComponentDataMetadataComponent,
						Value: &scene.MetadataComponentT{Identifier: 17, Name: "player"},
					}},
					{Data: &scene.ComponentDataT{
						Type:  scene.ComponentDataModelMetadataComponent,
						Value: &scene.ModelMetadataComponentT{ModelPath: "models/player.glb"},
					}},
				},
			},
			{
				UUID: 2,
				Components: []*scene.ComponentT{
					{Data: &scene.ComponentDataT{
						Type:  scene.ComponentDataCameraComponent,
						Value: &scene.CameraComponentT{Fov: 60, Near: 0.5, Far: 250, Aspect: 1.5, Active: true},
					}},
					{},
					{Data: &scene.ComponentDataT{
						Type:  scene.ComponentDataBlueprintMetadataComponent,
						Value: &scene.BlueprintMetadataComponentT{BlueprintPath: "blueprints/camera.bp"},
					}},
				},
			},
			{UUID: 3, Components: []*scene.ComponentT{}},
			{UUID: 4},
		},
	}
}

func packScene(t *testing.T, s *scene.SceneT) []byte {
	t.Helper()
	b := flatbuffers.NewBuilder(0)
	scene.FinishSceneBuffer(b, s.Pack(b))
	return b.FinishedBytes()
}

func TestSceneRoundTrip(t *testing.T) {
	want := sampleScene()
	buf := packScene(t, want)
	require.True(t, scene.SceneBufferHasIdentifier(buf))

	root, err := scene.GetScene(buf, false, nil)
	require.NoError(t, err)
	if diff := cmp.Diff(want, root.UnPack()); diff != "" {
		t.Errorf("scene mismatch (-want +got):\n%s", diff)
	}
}

func TestAbsentAndEmptyComponents(t *testing.T) {
	root, err := scene.GetScene(packScene(t, sampleScene()), false, nil)
	require.NoError(t, err)
	entities, ok := root.Entities()
	require.True(t, ok)
	require.Equal(t, 4, entities.Len())

	empty, ok := entities.At(2).Components()
	require.True(t, ok)
	assert.Equal(t, 0, empty.Len())

	_, ok = entities.At(3).Components()
	assert.False(t, ok)
}

func TestZeroCopyAccess(t *testing.T) {
	root, err := scene.GetScene(packScene(t, sampleScene()), false, nil)
	require.NoError(t, err)
	entities, _ := root.Entities()
	player := entities.At(0)
	assert.Equal(t, uint64(0xDEADBEEFCAFE), player.UUID())

	components, _ := player.Components()
	first := components.At(0)
	require.Equal(t, scene.ComponentDataTransformComponent, first.DataType())

	var tab flatbuffers.Table
	require.True(t, first.Data(&tab))
	var transform scene.TransformComponent
	transform.Init(tab.Bytes, tab.Pos)
	translation := transform.Translation(nil)
	require.NotNil(t, translation)
	assert.Equal(t, float32(2), translation.Y())
	assert.Equal(t, float32(1), transform.Rotation(nil).W())

	meta := components.At(1)
	require.True(t, meta.Data(&tab))
	var m scene.MetadataComponent
	m.Init(tab.Bytes, tab.Pos)
	assert.Equal(t, []byte("player"), m.Name())
	assert.Equal(t, uint64(17), m.Identifier())

	second, _ := entities.At(1).Components()
	noData := second.At(1)
	assert.Equal(t, scene.ComponentDataNONE, noData.DataType())
	assert.False(t, noData.Data(&tab))
}

func TestCameraDefaults(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	b.Finish(scene.NewCameraComponentT().Pack(b))
	buf := b.FinishedBytes()

	var cam scene.CameraComponent
	cam.Init(buf, flatbuffers.GetUOffsetT(buf))
	tab := cam.Table()
	assert.Equal(t, 0, tab.Vtable().NumSlots(), "defaults are not stored")
	assert.Equal(t, scene.DefaultCameraFov, cam.Fov())
	assert.Equal(t, scene.DefaultCameraNear, cam.Near())
	assert.Equal(t, scene.DefaultCameraFar, cam.Far())
	assert.Equal(t, scene.DefaultCameraAspect, cam.Aspect())
	assert.False(t, cam.Active())

	// A zero fov differs from the default and must be stored.
	b.Reset()
	b.Finish((&scene.CameraComponentT{}).Pack(b))
	buf = b.FinishedBytes()
	cam.Init(buf, flatbuffers.GetUOffsetT(buf))
	assert.Equal(t, &scene.CameraComponentT{}, cam.UnPack())
}

func TestSharedModelPaths(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	path := "models/tree.glb"
	first := (&scene.ModelMetadataComponentT{ModelPath: path}).Pack(b)
	second := (&scene.ModelMetadataComponentT{ModelPath: path}).Pack(b)
	vec := b.CreateUOffsetVector([]flatbuffers.UOffsetT{first, second})
	b.StartObject(1)
	b.PrependUOffsetTSlot(0, vec)
	b.Finish(b.EndObject())
	buf := b.FinishedBytes()

	holder := flatbuffers.Table{Bytes: buf, Pos: flatbuffers.GetUOffsetT(buf)}
	models, ok := flatbuffers.GetTableVector[scene.ModelMetadataComponent](&holder, 4)
	require.True(t, ok)
	a, c := models.At(0).ModelPath(), models.At(1).ModelPath()
	assert.Equal(t, []byte(path), a)
	assert.Same(t, &a[0], &c[0])
}

func TestSizePrefixedScene(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	scene.FinishSizePrefixedSceneBuffer(b, sampleScene().Pack(b))
	buf := b.FinishedBytes()

	assert.Equal(t, uint32(len(buf)-4), flatbuffers.GetSizePrefix(buf, 0))
	root, err := scene.GetScene(buf, true, nil)
	require.NoError(t, err)
	entities, _ := root.Entities()
	assert.Equal(t, 4, entities.Len())

	_, err = scene.GetScene(buf, false, nil)
	require.Error(t, err)
}

func TestSceneIdentifierMismatch(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	b.FinishWithFileIdentifier(sampleScene().Pack(b), []byte("XXXX"))
	buf := b.FinishedBytes()

	assert.False(t, scene.SceneBufferHasIdentifier(buf))
	_, err := scene.GetScene(buf, false, nil)
	require.ErrorIs(t, err, flatbuffers.IdentifierMismatch)
}

// wrapComponent finishes a scene holding one entity with the given
// component table.
func wrapComponent(b *flatbuffers.Builder, component flatbuffers.UOffsetT) []byte {
	components := b.CreateUOffsetVector([]flatbuffers.UOffsetT{component})
	scene.EntityStart(b)
	scene.EntityAddComponents(b, components)
	entity := scene.EntityEnd(b)
	entities := b.CreateUOffsetVector([]flatbuffers.UOffsetT{entity})
	scene.SceneStart(b)
	scene.SceneAddEntities(b, entities)
	scene.FinishSceneBuffer(b, scene.SceneEnd(b))
	return b.FinishedBytes()
}

func TestUnionTagWithoutValue(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	scene.ComponentStart(b)
	scene.ComponentAddDataType(b, scene.ComponentDataCameraComponent)
	buf := wrapComponent(b, scene.ComponentEnd(b))

	err := scene.VerifySceneBuffer(buf, false, nil)
	require.ErrorIs(t, err, flatbuffers.InconsistentUnion)

	var ve *flatbuffers.VerifyError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "data", ve.Detail)
	require.GreaterOrEqual(t, len(ve.Trace), 2)
	assert.Equal(t, "components", ve.Trace[1].Field)
}

func TestUnknownUnionTagIsSkipped(t *testing.T) {
	// A newer writer stores a component this reader has no table for.
	b := flatbuffers.NewBuilder(0)
	newer := (&scene.ModelMetadataComponentT{ModelPath: "from the future"}).Pack(b)
	scene.ComponentStart(b)
	scene.ComponentAddData(b, newer)
	scene.ComponentAddDataType(b, scene.ComponentData(9))
	buf := wrapComponent(b, scene.ComponentEnd(b))

	root, err := scene.GetScene(buf, false, nil)
	require.NoError(t, err)
	assert.Equal(t, "ComponentData(9)", scene.ComponentData(9).String())

	entities, _ := root.Entities()
	components, _ := entities.At(0).Components()
	assert.Equal(t, scene.ComponentData(9), components.At(0).DataType())

	got := root.UnPack()
	require.Len(t, got.Entities, 1)
	require.Len(t, got.Entities[0].Components, 1)
	assert.Nil(t, got.Entities[0].Components[0].Data)
}

func TestUnknownUnionTagStillChecksOffset(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	newer := (&scene.ModelMetadataComponentT{ModelPath: "x"}).Pack(b)
	scene.ComponentStart(b)
	scene.ComponentAddData(b, newer)
	scene.ComponentAddDataType(b, scene.ComponentData(200))
	component := scene.ComponentEnd(b)
	buf := wrapComponent(b, component)

	// Point the member offset past the end of the buffer.
	var comp scene.Component
	pos := flatbuffers.UOffsetT(len(buf)) - component
	comp.Init(buf, pos)
	tab := comp.Table()
	valuePos := pos + flatbuffers.UOffsetT(tab.Offset(6))
	flatbuffers.WriteUOffsetT(buf[valuePos:], flatbuffers.UOffsetT(len(buf)))

	err := scene.VerifySceneBuffer(buf, false, nil)
	require.ErrorIs(t, err, flatbuffers.RangeOutOfBounds)
}

func TestBlueprintMetadataComponent(t *testing.T) {
	buf := packScene(t, sampleScene())
	root, err := scene.GetScene(buf, false, nil)
	require.NoError(t, err)
	entities, _ := root.Entities()
	components, _ := entities.At(1).Components()
	require.Equal(t, 3, components.Len())

	last := components.At(2)
	require.Equal(t, scene.ComponentDataBlueprintMetadataComponent, last.DataType())
	var tab flatbuffers.Table
	require.True(t, last.Data(&tab))
	var bp scene.BlueprintMetadataComponent
	bp.Init(tab.Bytes, tab.Pos)
	assert.Equal(t, []byte("blueprints/camera.bp"), bp.BlueprintPath())
}

func TestSceneBudgets(t *testing.T) {
	buf := packScene(t, sampleScene())
	err := scene.VerifySceneBuffer(buf, false, &flatbuffers.VerifierOptions{MaxTables: 5})
	require.ErrorIs(t, err, flatbuffers.TooManyTables)
	err = scene.VerifySceneBuffer(buf, false, &flatbuffers.VerifierOptions{MaxDepth: 2})
	require.ErrorIs(t, err, flatbuffers.DepthLimitReached)
}
