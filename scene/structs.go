package scene

import (
	flatbuffers "github.com/blastbao/fbtable/flatbuffers"
)

const (
	vec3Size    = 12
	quatSize    = 16
	structAlign = 4
)

// Vec3T is the owned form of Vec3.
type Vec3T struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

func (t *Vec3T) Pack(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	if t == nil {
		return 0
	}
	return CreateVec3(builder, t.X, t.Y, t.Z)
}

func (rcv *Vec3) UnPackTo(t *Vec3T) {
	t.X = rcv.X()
	t.Y = rcv.Y()
	t.Z = rcv.Z()
}

func (rcv *Vec3) UnPack() *Vec3T {
	if rcv == nil {
		return nil
	}
	t := &Vec3T{}
	rcv.UnPackTo(t)
	return t
}

// Vec3 is a struct stored inline: three float32 with no vtable.
type Vec3 struct {
	_tab flatbuffers.Table
}

func (rcv *Vec3) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Vec3) X() float32 { return flatbuffers.Get[float32](&rcv._tab, rcv._tab.Pos+0) }
func (rcv *Vec3) Y() float32 { return flatbuffers.Get[float32](&rcv._tab, rcv._tab.Pos+4) }
func (rcv *Vec3) Z() float32 { return flatbuffers.Get[float32](&rcv._tab, rcv._tab.Pos+8) }

// CreateVec3 writes a Vec3 inline and returns its offset. It is meant to be
// called while the containing table is open.
func CreateVec3(builder *flatbuffers.Builder, x, y, z float32) flatbuffers.UOffsetT {
	builder.Prep(structAlign, vec3Size)
	flatbuffers.Prepend(builder, z)
	flatbuffers.Prepend(builder, y)
	flatbuffers.Prepend(builder, x)
	return builder.Offset()
}

// QuatT is the owned form of Quat.
type QuatT struct {
	W float32 `json:"w"`
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

func (t *QuatT) Pack(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	if t == nil {
		return 0
	}
	return CreateQuat(builder, t.W, t.X, t.Y, t.Z)
}

func (rcv *Quat) UnPackTo(t *QuatT) {
	t.W = rcv.W()
	t.X = rcv.X()
	t.Y = rcv.Y()
	t.Z = rcv.Z()
}

func (rcv *Quat) UnPack() *QuatT {
	if rcv == nil {
		return nil
	}
	t := &QuatT{}
	rcv.UnPackTo(t)
	return t
}

// Quat is a rotation stored inline as w, x, y, z.
type Quat struct {
	_tab flatbuffers.Table
}

func (rcv *Quat) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Quat) W() float32 { return flatbuffers.Get[float32](&rcv._tab, rcv._tab.Pos+0) }
func (rcv *Quat) X() float32 { return flatbuffers.Get[float32](&rcv._tab, rcv._tab.Pos+4) }
func (rcv *Quat) Y() float32 { return flatbuffers.Get[float32](&rcv._tab, rcv._tab.Pos+8) }
func (rcv *Quat) Z() float32 { return flatbuffers.Get[float32](&rcv._tab, rcv._tab.Pos+12) }

func CreateQuat(builder *flatbuffers.Builder, w, x, y, z float32) flatbuffers.UOffsetT {
	builder.Prep(structAlign, quatSize)
	flatbuffers.Prepend(builder, z)
	flatbuffers.Prepend(builder, y)
	flatbuffers.Prepend(builder, x)
	flatbuffers.Prepend(builder, w)
	return builder.Offset()
}
