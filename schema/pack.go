package schema

import (
	"reflect"

	flatbuffers "github.com/blastbao/fbtable/flatbuffers"
	"golang.org/x/xerrors"
)

func mismatch(o *Object, f *Field, v interface{}) error {
	return xerrors.Errorf("%s.%s: cannot store %T as %s: %w", o.Name, f.Name, v, f.Type.elem(), ErrRecord)
}

// Pack writes rec as a table of type o and returns its offset. Fields
// missing from rec are absent from the table; scalar fields equal to their
// default are elided unless the builder forces defaults.
//
// b must not have an object open. If Pack fails the builder is left in an
// unspecified state and must be Reset.
func (s *Schema) Pack(b *flatbuffers.Builder, o *Object, rec Record) (flatbuffers.UOffsetT, error) {
	if o.IsStruct {
		return 0, xerrors.Errorf("%s is a struct: %w", o.Name, ErrRecord)
	}
	for name := range rec {
		if o.Field(name) == nil {
			return 0, xerrors.Errorf("%s: unknown field %q: %w", o.Name, name, ErrRecord)
		}
	}

	fields := o.packOrder()
	refs := make(map[*Field]flatbuffers.UOffsetT)
	for _, f := range fields {
		v, ok := rec[f.Name]
		if !ok || v == nil {
			if f.Required {
				return 0, xerrors.Errorf("%s.%s: required field missing: %w", o.Name, f.Name, ErrRecord)
			}
			continue
		}
		if f.Type.Base.Kind() != flatbuffers.KindUOffset {
			continue
		}
		off, err := s.packRef(b, o, f, v)
		if err != nil {
			return 0, err
		}
		refs[f] = off
	}

	b.StartObject(o.NumSlots())
	for _, f := range fields {
		v, ok := rec[f.Name]
		if !ok || v == nil {
			continue
		}
		switch {
		case f.Type.Base == Struct:
			sub, ok := asRecord(v)
			if !ok {
				return 0, mismatch(o, f, v)
			}
			if err := writeStruct(b, f.Type.obj, sub); err != nil {
				return 0, err
			}
			b.PrependStructSlot(f.ID, b.Offset(), 0)
		case f.Type.Base.IsScalar():
			if !codecs[f.Type.Base.Kind()].slot(b, f.ID, v, f) {
				return 0, mismatch(o, f, v)
			}
		default:
			b.PrependUOffsetTSlot(f.ID, refs[f])
		}
	}
	return b.EndObject(), nil
}

func (s *Schema) packRef(b *flatbuffers.Builder, o *Object, f *Field, v interface{}) (flatbuffers.UOffsetT, error) {
	switch f.Type.Base {
	case String:
		switch x := v.(type) {
		case string:
			return b.CreateString(x), nil
		case []byte:
			return b.CreateByteString(x), nil
		}
		return 0, mismatch(o, f, v)
	case Table:
		sub, ok := asRecord(v)
		if !ok {
			return 0, mismatch(o, f, v)
		}
		return s.Pack(b, f.Type.obj, sub)
	}

	list := reflect.ValueOf(v)
	if list.Kind() != reflect.Slice && list.Kind() != reflect.Array {
		return 0, mismatch(o, f, v)
	}
	n := list.Len()
	elem := func(i int) interface{} { return list.Index(i).Interface() }

	switch f.Type.Element {
	case String, Table:
		offs := make([]flatbuffers.UOffsetT, n)
		for i := range offs {
			off, err := s.packRef(b, o, &Field{Name: f.Name, Type: Type{Base: f.Type.Element, obj: f.Type.obj}}, elem(i))
			if err != nil {
				return 0, xerrors.Errorf("element %d: %w", i, err)
			}
			offs[i] = off
		}
		return b.CreateUOffsetVector(offs), nil
	case Struct:
		st := f.Type.obj
		subs := make([]Record, n)
		for i := range subs {
			sub, ok := asRecord(elem(i))
			if !ok {
				return 0, xerrors.Errorf("element %d: %w", i, mismatch(o, f, elem(i)))
			}
			subs[i] = sub
		}
		b.StartVector(st.ByteSize, n, st.MinAlign)
		for i := n - 1; i >= 0; i-- {
			if err := placeStruct(b, st, subs[i]); err != nil {
				return 0, xerrors.Errorf("element %d: %w", i, err)
			}
		}
		return b.EndVector(n), nil
	}

	c := codecs[f.Type.Element.Kind()]
	size := f.Type.Element.Kind().Size()
	b.StartVector(size, n, size)
	for i := n - 1; i >= 0; i-- {
		if !c.place(b, elem(i)) {
			return 0, xerrors.Errorf("element %d: %w", i, mismatch(o, f, elem(i)))
		}
	}
	return b.EndVector(n), nil
}

// writeStruct aligns for and writes a struct inline.
func writeStruct(b *flatbuffers.Builder, st *Object, rec Record) error {
	b.Prep(st.MinAlign, st.ByteSize)
	return placeStruct(b, st, rec)
}

// placeStruct writes the members of a struct back to front into space the
// caller has already reserved. Missing members take their defaults.
func placeStruct(b *flatbuffers.Builder, st *Object, rec Record) error {
	for name := range rec {
		if st.Field(name) == nil {
			return xerrors.Errorf("%s: unknown field %q: %w", st.Name, name, ErrRecord)
		}
	}
	end := st.ByteSize
	for _, f := range st.structOrder() {
		b.Pad(end - f.Offset - f.inlineSize())
		v, ok := rec[f.Name]
		if f.Type.Base == Struct {
			sub := Record{}
			if ok {
				if sub, ok = asRecord(v); !ok {
					return mismatch(st, f, v)
				}
			}
			if err := placeStruct(b, f.Type.obj, sub); err != nil {
				return err
			}
		} else {
			c := codecs[f.Type.Base.Kind()]
			if !ok {
				v = c.def(f)
			}
			if !c.place(b, v) {
				return mismatch(st, f, v)
			}
		}
		end = f.Offset
	}
	b.Pad(end)
	return nil
}

// PackRoot builds a complete buffer holding rec as the root table, tagged
// with the schema's file identifier if it has one. The returned bytes alias
// the builder.
func (s *Schema) PackRoot(b *flatbuffers.Builder, rec Record, sizePrefixed bool) ([]byte, error) {
	root, err := s.root()
	if err != nil {
		return nil, err
	}
	off, err := s.Pack(b, root, rec)
	if err != nil {
		return nil, err
	}
	switch {
	case s.FileIdentifier != "" && sizePrefixed:
		b.FinishSizePrefixedWithFileIdentifier(off, []byte(s.FileIdentifier))
	case s.FileIdentifier != "":
		b.FinishWithFileIdentifier(off, []byte(s.FileIdentifier))
	case sizePrefixed:
		b.FinishSizePrefixed(off)
	default:
		b.Finish(off)
	}
	return b.FinishedBytes(), nil
}
