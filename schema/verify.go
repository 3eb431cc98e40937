package schema

import (
	flatbuffers "github.com/blastbao/fbtable/flatbuffers"
)

// VerifyFunc returns a verifier callback for tables of type o.
func (s *Schema) VerifyFunc(o *Object) flatbuffers.VerifyFunc {
	return func(v *flatbuffers.Verifier, pos flatbuffers.UOffsetT) error {
		tv, err := v.VisitTable(pos)
		if err != nil {
			return err
		}
		for _, f := range o.Fields {
			s.verifyField(tv, f)
		}
		return tv.Finish()
	}
}

func (s *Schema) verifyField(tv *flatbuffers.TableVerifier, f *Field) {
	t := &f.Type
	vt := f.VT()
	switch t.Base {
	case String:
		tv.String(f.Name, vt, f.Required)
	case Table:
		tv.Table(f.Name, vt, f.Required, s.VerifyFunc(t.obj))
	case Struct:
		tv.Struct(f.Name, vt, t.obj.ByteSize, t.obj.MinAlign, f.Required)
	case Vector:
		switch t.Element {
		case String:
			tv.StringVector(f.Name, vt, f.Required)
		case Table:
			tv.TableVector(f.Name, vt, f.Required, s.VerifyFunc(t.obj))
		case Struct:
			tv.ScalarVector(f.Name, vt, t.obj.ByteSize, f.Required)
		default:
			tv.ScalarVector(f.Name, vt, t.Element.Kind().Size(), f.Required)
		}
	default:
		tv.Scalar(f.Name, vt, t.Base.Kind().Size(), f.Required)
	}
}

// Verify checks a buffer whose root is the schema's root table, including
// its file identifier when the schema declares one. The schema's verifier
// options apply.
func (s *Schema) Verify(buf []byte, sizePrefixed bool) error {
	root, err := s.root()
	if err != nil {
		return err
	}
	v := flatbuffers.NewVerifier(buf, s.Verifier)
	return v.VerifyBuffer(s.FileIdentifier, sizePrefixed, s.VerifyFunc(root))
}
