// Package schema describes compiled table layouts as data and drives the
// flatbuffers builder, reader and verifier from such descriptions instead
// of from generated bindings.
//
// A descriptor is usually written by a schema compiler and loaded with Load
// or LoadFile from YAML, JSON or msgpack:
//
//	name: Monster
//	root_table: Monster
//	file_identifier: MONS
//	objects:
//	  - name: Monster
//	    fields:
//	      - {name: hp, id: 0, type: {base: short}, default_integer: 100}
//	      - {name: name, id: 1, type: {base: string}, required: true}
//
// Records are plain maps keyed by field name. Scalars unpack as bool, int64,
// uint64 or float64; strings as string; vectors as []interface{}; tables and
// structs as Record.
package schema

import (
	"sort"

	flatbuffers "github.com/blastbao/fbtable/flatbuffers"
	"golang.org/x/xerrors"
)

var (
	ErrInvalidSchema = xerrors.New("schema: invalid descriptor")
	ErrUnsupported   = xerrors.New("schema: unsupported type")
	ErrRecord        = xerrors.New("schema: record does not match object")
)

// BaseType names the type of a field or vector element.
type BaseType string

const (
	Bool   BaseType = "bool"
	Byte   BaseType = "byte"
	UByte  BaseType = "ubyte"
	Short  BaseType = "short"
	UShort BaseType = "ushort"
	Int    BaseType = "int"
	UInt   BaseType = "uint"
	Long   BaseType = "long"
	ULong  BaseType = "ulong"
	Float  BaseType = "float"
	Double BaseType = "double"
	String BaseType = "string"
	Vector BaseType = "vector"
	Table  BaseType = "table"
	Struct BaseType = "struct"
	Union  BaseType = "union"
)

var scalarKinds = map[BaseType]flatbuffers.Kind{
	Bool:   flatbuffers.KindBool,
	Byte:   flatbuffers.KindInt8,
	UByte:  flatbuffers.KindUint8,
	Short:  flatbuffers.KindInt16,
	UShort: flatbuffers.KindUint16,
	Int:    flatbuffers.KindInt32,
	UInt:   flatbuffers.KindUint32,
	Long:   flatbuffers.KindInt64,
	ULong:  flatbuffers.KindUint64,
	Float:  flatbuffers.KindFloat32,
	Double: flatbuffers.KindFloat64,
}

// Kind returns the inline layout of the type. Strings, vectors and tables
// are references; structs and unions have no single kind.
func (t BaseType) Kind() flatbuffers.Kind {
	if k, ok := scalarKinds[t]; ok {
		return k
	}
	switch t {
	case String, Vector, Table:
		return flatbuffers.KindUOffset
	}
	return flatbuffers.KindNone
}

func (t BaseType) IsScalar() bool {
	_, ok := scalarKinds[t]
	return ok
}

// Type is the full type of a field. Element is set for vectors; Object
// names the table or struct for Table, Struct and vectors of them; Enum
// optionally names the enum an integer field holds.
type Type struct {
	Base    BaseType `yaml:"base" json:"base" msgpack:"base"`
	Element BaseType `yaml:"element,omitempty" json:"element,omitempty" msgpack:"element,omitempty"`
	Object  string   `yaml:"object,omitempty" json:"object,omitempty" msgpack:"object,omitempty"`
	Enum    string   `yaml:"enum,omitempty" json:"enum,omitempty" msgpack:"enum,omitempty"`

	obj *Object
}

// elem returns the type stored inline: the element for vectors, the type
// itself otherwise.
func (t *Type) elem() BaseType {
	if t.Base == Vector {
		return t.Element
	}
	return t.Base
}

type Field struct {
	Name           string  `yaml:"name" json:"name" msgpack:"name"`
	ID             int     `yaml:"id" json:"id" msgpack:"id"`
	Type           Type    `yaml:"type" json:"type" msgpack:"type"`
	DefaultInteger int64   `yaml:"default_integer,omitempty" json:"default_integer,omitempty" msgpack:"default_integer,omitempty"`
	DefaultReal    float64 `yaml:"default_real,omitempty" json:"default_real,omitempty" msgpack:"default_real,omitempty"`
	Required       bool    `yaml:"required,omitempty" json:"required,omitempty" msgpack:"required,omitempty"`
	Deprecated     bool    `yaml:"deprecated,omitempty" json:"deprecated,omitempty" msgpack:"deprecated,omitempty"`
	// Offset is the byte offset of a struct member inside its struct.
	Offset int `yaml:"offset,omitempty" json:"offset,omitempty" msgpack:"offset,omitempty"`
}

// VT returns the vtable position of a table field.
func (f *Field) VT() flatbuffers.VOffsetT {
	return flatbuffers.VtableOffset(f.ID)
}

// inlineSize is the number of bytes the field occupies inside its table or
// struct.
func (f *Field) inlineSize() int {
	if f.Type.Base == Struct {
		return f.Type.obj.ByteSize
	}
	return f.Type.Base.Kind().Size()
}

func (f *Field) inlineAlign() int {
	if f.Type.Base == Struct {
		return f.Type.obj.MinAlign
	}
	return f.Type.Base.Kind().Size()
}

// Object is a table or, with IsStruct, a fixed-layout struct.
type Object struct {
	Name     string   `yaml:"name" json:"name" msgpack:"name"`
	IsStruct bool     `yaml:"struct,omitempty" json:"struct,omitempty" msgpack:"struct,omitempty"`
	MinAlign int      `yaml:"minalign,omitempty" json:"minalign,omitempty" msgpack:"minalign,omitempty"`
	ByteSize int      `yaml:"bytesize,omitempty" json:"bytesize,omitempty" msgpack:"bytesize,omitempty"`
	Fields   []*Field `yaml:"fields" json:"fields" msgpack:"fields"`

	numSlots int
	byName   map[string]*Field
}

// Field returns the field called name, or nil.
func (o *Object) Field(name string) *Field {
	return o.byName[name]
}

// NumSlots is the number of vtable slots of a table: its highest id plus one.
func (o *Object) NumSlots() int {
	return o.numSlots
}

type EnumVal struct {
	Name  string `yaml:"name" json:"name" msgpack:"name"`
	Value int64  `yaml:"value" json:"value" msgpack:"value"`
}

type Enum struct {
	Name       string    `yaml:"name" json:"name" msgpack:"name"`
	Underlying BaseType  `yaml:"underlying" json:"underlying" msgpack:"underlying"`
	Values     []EnumVal `yaml:"values" json:"values" msgpack:"values"`
}

// Lookup returns the name of value v.
func (e *Enum) Lookup(v int64) (string, bool) {
	for _, ev := range e.Values {
		if ev.Value == v {
			return ev.Name, true
		}
	}
	return "", false
}

// Schema is a compiled schema description.
type Schema struct {
	Name           string                       `yaml:"name" json:"name" msgpack:"name"`
	RootTable      string                       `yaml:"root_table" json:"root_table" msgpack:"root_table"`
	FileIdentifier string                       `yaml:"file_identifier,omitempty" json:"file_identifier,omitempty" msgpack:"file_identifier,omitempty"`
	Enums          []*Enum                      `yaml:"enums,omitempty" json:"enums,omitempty" msgpack:"enums,omitempty"`
	Objects        []*Object                    `yaml:"objects" json:"objects" msgpack:"objects"`
	Verifier       *flatbuffers.VerifierOptions `yaml:"verifier,omitempty" json:"verifier,omitempty" msgpack:"verifier,omitempty"`

	objects map[string]*Object
	enums   map[string]*Enum
}

// Object returns the object called name, or nil.
func (s *Schema) Object(name string) *Object {
	return s.objects[name]
}

func (s *Schema) Enum(name string) *Enum {
	return s.enums[name]
}

// Root returns the root table.
func (s *Schema) Root() *Object {
	return s.objects[s.RootTable]
}

func (s *Schema) root() (*Object, error) {
	if r := s.Root(); r != nil {
		return r, nil
	}
	return nil, invalid("no root table")
}

func invalid(format string, args ...interface{}) error {
	return xerrors.Errorf(format+": %w", append(args, ErrInvalidSchema)...)
}

// Validate resolves names and checks the descriptor for consistency. It
// must succeed before the schema is used; Load calls it.
func (s *Schema) Validate() error {
	s.enums = make(map[string]*Enum, len(s.Enums))
	for _, e := range s.Enums {
		if _, dup := s.enums[e.Name]; dup {
			return invalid("duplicate enum %q", e.Name)
		}
		if !e.Underlying.IsScalar() || e.Underlying == Bool || e.Underlying == Float || e.Underlying == Double {
			return invalid("enum %q: underlying type %q is not an integer", e.Name, e.Underlying)
		}
		s.enums[e.Name] = e
	}

	s.objects = make(map[string]*Object, len(s.Objects))
	for _, o := range s.Objects {
		if o.Name == "" {
			return invalid("object without name")
		}
		if _, dup := s.objects[o.Name]; dup {
			return invalid("duplicate object %q", o.Name)
		}
		s.objects[o.Name] = o
	}

	for _, o := range s.Objects {
		if err := s.resolve(o); err != nil {
			return err
		}
	}
	// Struct sizes are checked after all members are resolved so that
	// nested structs may be declared in any order. Every struct's own
	// layout is checked before any member offset is, since member checks
	// divide by the alignment of nested structs.
	for _, o := range s.Objects {
		if o.IsStruct {
			if err := checkStructLayout(o); err != nil {
				return err
			}
		}
	}
	for _, o := range s.Objects {
		if o.IsStruct {
			if err := checkStructMembers(o); err != nil {
				return err
			}
		}
	}

	if s.RootTable != "" {
		root := s.objects[s.RootTable]
		if root == nil || root.IsStruct {
			return invalid("root %q is not a table", s.RootTable)
		}
	}
	if s.FileIdentifier != "" && len(s.FileIdentifier) != flatbuffers.FileIdentifierLength {
		return invalid("file identifier %q must be %d bytes", s.FileIdentifier, flatbuffers.FileIdentifierLength)
	}
	return nil
}

func (s *Schema) resolve(o *Object) error {
	o.byName = make(map[string]*Field, len(o.Fields))
	ids := make(map[int]bool, len(o.Fields))
	o.numSlots = 0
	for _, f := range o.Fields {
		if _, dup := o.byName[f.Name]; dup {
			return invalid("%s: duplicate field %q", o.Name, f.Name)
		}
		o.byName[f.Name] = f
		if !o.IsStruct {
			if f.ID < 0 || ids[f.ID] {
				return invalid("%s.%s: bad or duplicate id %d", o.Name, f.Name, f.ID)
			}
			ids[f.ID] = true
			if f.ID+1 > o.numSlots {
				o.numSlots = f.ID + 1
			}
		}
		if err := s.resolveType(o, f); err != nil {
			return err
		}
	}
	return nil
}

func (s *Schema) resolveType(o *Object, f *Field) error {
	t := &f.Type
	if t.Base == Union || t.Element == Union {
		return xerrors.Errorf("%s.%s: unions: %w", o.Name, f.Name, ErrUnsupported)
	}
	switch t.Base {
	case Vector:
		if t.Element == Vector || t.Element == "" {
			return invalid("%s.%s: bad vector element %q", o.Name, f.Name, t.Element)
		}
	case Table, Struct, String:
	default:
		if !t.Base.IsScalar() {
			return invalid("%s.%s: unknown type %q", o.Name, f.Name, t.Base)
		}
	}
	if o.IsStruct && !(t.Base.IsScalar() || t.Base == Struct) {
		return invalid("%s.%s: struct members must be scalars or structs", o.Name, f.Name)
	}

	elem := t.elem()
	if elem == Table || elem == Struct {
		t.obj = s.objects[t.Object]
		if t.obj == nil {
			return invalid("%s.%s: unknown object %q", o.Name, f.Name, t.Object)
		}
		if t.obj.IsStruct != (elem == Struct) {
			return invalid("%s.%s: %q is not a %s", o.Name, f.Name, t.Object, elem)
		}
	} else if !elem.IsScalar() && elem != String {
		return invalid("%s.%s: unknown element type %q", o.Name, f.Name, elem)
	}

	if t.Enum != "" {
		e := s.enums[t.Enum]
		if e == nil {
			return invalid("%s.%s: unknown enum %q", o.Name, f.Name, t.Enum)
		}
		if e.Underlying != elem {
			return invalid("%s.%s: enum %q is %s, field is %s", o.Name, f.Name, t.Enum, e.Underlying, elem)
		}
	}
	if f.Required && t.Base.IsScalar() {
		return invalid("%s.%s: scalar fields cannot be required", o.Name, f.Name)
	}
	return nil
}

func checkStructLayout(o *Object) error {
	if o.MinAlign <= 0 || o.MinAlign&(o.MinAlign-1) != 0 {
		return invalid("struct %s: minalign %d is not a power of two", o.Name, o.MinAlign)
	}
	if o.ByteSize <= 0 || o.ByteSize%o.MinAlign != 0 {
		return invalid("struct %s: bytesize %d", o.Name, o.ByteSize)
	}
	return nil
}

func checkStructMembers(o *Object) error {
	for _, f := range o.Fields {
		if f.Type.Base == Struct && f.Type.obj == o {
			return invalid("struct %s contains itself", o.Name)
		}
		size, align := f.inlineSize(), f.inlineAlign()
		if f.Offset < 0 || f.Offset+size > o.ByteSize || f.Offset%align != 0 || align > o.MinAlign {
			return invalid("struct %s.%s: bad offset %d", o.Name, f.Name, f.Offset)
		}
	}
	next := o.ByteSize
	for _, f := range o.structOrder() {
		if f.Offset+f.inlineSize() > next {
			return invalid("struct %s.%s overlaps the next member", o.Name, f.Name)
		}
		next = f.Offset
	}
	return nil
}

// packOrder returns the live fields of a table, most aligned first and
// then largest first. Every inline size is a multiple of its alignment, so
// no padding falls between fields and the layout does not depend on where
// the table starts.
func (o *Object) packOrder() []*Field {
	fields := make([]*Field, 0, len(o.Fields))
	for _, f := range o.Fields {
		if !f.Deprecated {
			fields = append(fields, f)
		}
	}
	sort.SliceStable(fields, func(i, j int) bool {
		ai, aj := fields[i].inlineAlign(), fields[j].inlineAlign()
		if ai != aj {
			return ai > aj
		}
		return fields[i].inlineSize() > fields[j].inlineSize()
	})
	return fields
}

// structOrder returns the members of a struct from the last byte to the
// first, the order in which the builder writes them.
func (o *Object) structOrder() []*Field {
	fields := append([]*Field(nil), o.Fields...)
	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].Offset > fields[j].Offset
	})
	return fields
}
