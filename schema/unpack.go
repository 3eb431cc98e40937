package schema

import (
	flatbuffers "github.com/blastbao/fbtable/flatbuffers"
)

// Unpack copies the table of type o at pos out of buf. Absent scalars take
// their defaults; absent strings, vectors, tables and structs are left out
// of the record. Deprecated fields are skipped.
//
// Unpack trusts buf; see UnpackRoot for untrusted input.
func (s *Schema) Unpack(buf []byte, pos flatbuffers.UOffsetT, o *Object) Record {
	t := flatbuffers.Table{Bytes: buf, Pos: pos}
	rec := make(Record, len(o.Fields))
	for _, f := range o.Fields {
		if f.Deprecated {
			continue
		}
		vt := f.VT()
		switch f.Type.Base {
		case String:
			if b := t.ByteVectorSlot(vt); b != nil {
				rec[f.Name] = string(b)
			}
		case Table:
			if p, ok := t.Ref(vt); ok {
				rec[f.Name] = s.Unpack(buf, p, f.Type.obj)
			}
		case Struct:
			if p, ok := t.StructSlot(vt); ok {
				rec[f.Name] = readStruct(buf, p, f.Type.obj)
			}
		case Vector:
			if off := t.Offset(vt); off != 0 {
				rec[f.Name] = s.unpackVector(&t, flatbuffers.UOffsetT(off), f)
			}
		default:
			c := codecs[f.Type.Base.Kind()]
			if off := t.Offset(vt); off != 0 {
				rec[f.Name] = c.read(buf[pos+flatbuffers.UOffsetT(off):])
			} else {
				rec[f.Name] = c.def(f)
			}
		}
	}
	return rec
}

func (s *Schema) unpackVector(t *flatbuffers.Table, off flatbuffers.UOffsetT, f *Field) []interface{} {
	start := t.Vector(off)
	n := t.VectorLen(off)
	out := make([]interface{}, n)
	switch f.Type.Element {
	case String:
		for i := range out {
			out[i] = string(t.ByteVector(start + flatbuffers.UOffsetT(i*flatbuffers.SizeUOffsetT)))
		}
	case Table:
		for i := range out {
			elem := start + flatbuffers.UOffsetT(i*flatbuffers.SizeUOffsetT)
			out[i] = s.Unpack(t.Bytes, t.Indirect(elem), f.Type.obj)
		}
	case Struct:
		st := f.Type.obj
		for i := range out {
			out[i] = readStruct(t.Bytes, start+flatbuffers.UOffsetT(i*st.ByteSize), st)
		}
	default:
		c := codecs[f.Type.Element.Kind()]
		size := f.Type.Element.Kind().Size()
		for i := range out {
			out[i] = c.read(t.Bytes[start+flatbuffers.UOffsetT(i*size):])
		}
	}
	return out
}

func readStruct(buf []byte, pos flatbuffers.UOffsetT, st *Object) Record {
	rec := make(Record, len(st.Fields))
	for _, f := range st.Fields {
		p := pos + flatbuffers.UOffsetT(f.Offset)
		if f.Type.Base == Struct {
			rec[f.Name] = readStruct(buf, p, f.Type.obj)
		} else {
			rec[f.Name] = codecs[f.Type.Base.Kind()].read(buf[p:])
		}
	}
	return rec
}

// UnpackRoot verifies buf with the schema's options and then copies its
// root table out.
func (s *Schema) UnpackRoot(buf []byte, sizePrefixed bool) (Record, error) {
	if err := s.Verify(buf, sizePrefixed); err != nil {
		return nil, err
	}
	root, err := s.root()
	if err != nil {
		return nil, err
	}
	var offset flatbuffers.UOffsetT
	if sizePrefixed {
		offset = flatbuffers.SizeUint32
	}
	return s.Unpack(buf, offset+flatbuffers.GetUOffsetT(buf[offset:]), root), nil
}
