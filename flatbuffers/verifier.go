package flatbuffers

import (
	"unicode/utf8"
)

// VerifierOptions bound the work the Verifier will do on one buffer.
// Zero fields take the values of DefaultVerifierOptions.
type VerifierOptions struct {
	// MaxDepth limits how deeply tables may nest.
	MaxDepth int `yaml:"max_depth" json:"max_depth" msgpack:"max_depth"`
	// MaxTables limits how many tables are visited, counting every visit of
	// a shared table.
	MaxTables int `yaml:"max_tables" json:"max_tables" msgpack:"max_tables"`
	// MaxApparentSize limits the sum of all byte ranges checked. Buffers
	// that share subobjects can appear much larger than they are.
	MaxApparentSize int `yaml:"max_apparent_size" json:"max_apparent_size" msgpack:"max_apparent_size"`
	// IgnoreMissingNullTerminator accepts strings without a trailing NUL.
	IgnoreMissingNullTerminator bool `yaml:"ignore_missing_null_terminator" json:"ignore_missing_null_terminator" msgpack:"ignore_missing_null_terminator"`
}

// DefaultVerifierOptions returns the limits used when none are given.
func DefaultVerifierOptions() VerifierOptions {
	return VerifierOptions{
		MaxDepth:        64,
		MaxTables:       1000000,
		MaxApparentSize: 1 << 31,
	}
}

func (o *VerifierOptions) withDefaults() VerifierOptions {
	d := DefaultVerifierOptions()
	if o == nil {
		return d
	}
	r := *o
	if r.MaxDepth <= 0 {
		r.MaxDepth = d.MaxDepth
	}
	if r.MaxTables <= 0 {
		r.MaxTables = d.MaxTables
	}
	if r.MaxApparentSize <= 0 {
		r.MaxApparentSize = d.MaxApparentSize
	}
	return r
}

// VerifyFunc checks the object at pos, typically by calling VisitTable.
type VerifyFunc func(v *Verifier, pos UOffsetT) error

// UnionVerifyFunc checks the union member of type typ at pos.
type UnionVerifyFunc func(v *Verifier, typ uint8, pos UOffsetT) error

// Verifier checks that an untrusted buffer is structurally sound: after it
// accepts a buffer, every access made through the schema's accessors stays
// in bounds and is aligned.
//
// A Verifier holds the budgets of one verification run and must not be
// shared between goroutines. Verifying never modifies the buffer.
type Verifier struct {
	buf  []byte
	opts VerifierOptions

	depth        int
	numTables    int
	apparentSize int
}

// NewVerifier returns a Verifier for buf. opts may be nil.
func NewVerifier(buf []byte, opts *VerifierOptions) *Verifier {
	return &Verifier{buf: buf, opts: opts.withDefaults()}
}

// Verify checks buf, whose root offset is at position 0, with fn.
func Verify(buf []byte, opts *VerifierOptions, fn VerifyFunc) error {
	return NewVerifier(buf, opts).VerifyBuffer("", false, fn)
}

// VerifiedRoot verifies buf and only then returns a view of its root
// table. It is the entry point for buffers of unknown provenance.
func VerifiedRoot[T any, P interface {
	*T
	Initer
}](buf []byte, opts *VerifierOptions, fn VerifyFunc) (P, error) {
	if err := Verify(buf, opts, fn); err != nil {
		return nil, err
	}
	return GetRoot[T, P](buf, 0), nil
}

// VerifyBuffer checks the size prefix and file identifier, if requested,
// then the root table with fn. An empty identifier is not checked.
func (v *Verifier) VerifyBuffer(identifier string, sizePrefixed bool, fn VerifyFunc) error {
	var offset UOffsetT
	if sizePrefixed {
		if err := v.inBuffer(0, SizeUint32, SizeUint32); err != nil {
			return err
		}
		size := ReadScalar[uint32](v.buf)
		if uint64(size) > uint64(len(v.buf)-SizeUint32) {
			return violation(RangeOutOfBounds, 0, "size prefix")
		}
		v.buf = v.buf[:SizeUint32+int(size)]
		offset = SizeUint32
	}
	if identifier != "" {
		idPos := offset + SizeUOffsetT
		if err := v.rangeInBuffer(idPos, FileIdentifierLength); err != nil {
			return err
		}
		if string(v.buf[idPos:idPos+FileIdentifierLength]) != identifier {
			return violation(IdentifierMismatch, idPos, identifier)
		}
	}
	return v.VerifyRoot(offset, fn)
}

// VerifyRoot checks the table referenced by the uoffset at offset.
func (v *Verifier) VerifyRoot(offset UOffsetT, fn VerifyFunc) error {
	pos, err := v.derefUOffset(offset)
	if err != nil {
		return err
	}
	return fn(v, pos)
}

func (v *Verifier) rangeInBuffer(pos UOffsetT, size int) error {
	if size < 0 || uint64(pos)+uint64(size) > uint64(len(v.buf)) {
		return violation(RangeOutOfBounds, pos, "")
	}
	v.apparentSize += size
	if v.apparentSize > v.opts.MaxApparentSize {
		return violation(ApparentSizeTooLarge, pos, "")
	}
	return nil
}

func (v *Verifier) inBuffer(pos UOffsetT, size, align int) error {
	if align > 1 && int(pos)%align != 0 {
		return violation(Unaligned, pos, "")
	}
	return v.rangeInBuffer(pos, size)
}

func (v *Verifier) derefUOffset(pos UOffsetT) (UOffsetT, error) {
	if err := v.inBuffer(pos, SizeUOffsetT, SizeUOffsetT); err != nil {
		return 0, err
	}
	target := uint64(pos) + uint64(GetUOffsetT(v.buf[pos:]))
	if target >= uint64(len(v.buf)) {
		return 0, violation(RangeOutOfBounds, pos, "uoffset target")
	}
	return UOffsetT(target), nil
}

func (v *Verifier) derefSOffset(pos UOffsetT) (UOffsetT, error) {
	if err := v.inBuffer(pos, SizeSOffsetT, SizeSOffsetT); err != nil {
		return 0, err
	}
	target := int64(pos) - int64(GetSOffsetT(v.buf[pos:]))
	if target < 0 || target >= int64(len(v.buf)) {
		return 0, violation(SignedOffsetOutOfBounds, pos, "")
	}
	return UOffsetT(target), nil
}

// VerifyVector checks the length prefix of the vector at pos and that its
// elements lie inside the buffer. It returns the position of the first
// element and the element count.
func (v *Verifier) VerifyVector(pos UOffsetT, elemSize int) (UOffsetT, int, error) {
	if err := v.inBuffer(pos, SizeUOffsetT, SizeUOffsetT); err != nil {
		return 0, 0, err
	}
	n := uint64(GetUOffsetT(v.buf[pos:]))
	start := pos + SizeUOffsetT
	size := n * uint64(elemSize)
	if size > uint64(len(v.buf)) {
		return 0, 0, violation(RangeOutOfBounds, pos, "vector length")
	}
	if err := v.rangeInBuffer(start, int(size)); err != nil {
		return 0, 0, err
	}
	return start, int(n), nil
}

// VerifyString checks the string at pos: its length prefix, terminator
// and encoding.
func (v *Verifier) VerifyString(pos UOffsetT) error {
	start, n, err := v.VerifyVector(pos, SizeByte)
	if err != nil {
		return err
	}
	end := start + UOffsetT(n)
	if !v.opts.IgnoreMissingNullTerminator {
		if int(end) >= len(v.buf) || v.buf[end] != 0 {
			return violation(MissingNullTerminator, end, "")
		}
	}
	if !utf8.Valid(v.buf[start:end]) {
		return violation(Utf8Error, start, "")
	}
	return nil
}

// VisitTable checks the table header at pos and its vtable. The returned
// TableVerifier is used to check the fields; its Finish must be called.
func (v *Verifier) VisitTable(pos UOffsetT) (*TableVerifier, error) {
	v.depth++
	if v.depth > v.opts.MaxDepth {
		return nil, violation(DepthLimitReached, pos, "")
	}
	v.numTables++
	if v.numTables > v.opts.MaxTables {
		return nil, violation(TooManyTables, pos, "")
	}

	vtable, err := v.derefSOffset(pos)
	if err != nil {
		return nil, err
	}
	if err := v.inBuffer(vtable, 2*SizeVOffsetT, SizeVOffsetT); err != nil {
		return nil, err
	}
	vtLen := GetVOffsetT(v.buf[vtable:])
	if vtLen < VtableMetadataFields*SizeVOffsetT || vtLen%SizeVOffsetT != 0 {
		return nil, violation(MalformedVtable, vtable, "vtable size")
	}
	if err := v.rangeInBuffer(vtable, int(vtLen)); err != nil {
		return nil, err
	}
	size := GetVOffsetT(v.buf[vtable+SizeVOffsetT:])
	if size < SizeSOffsetT {
		return nil, violation(MalformedVtable, vtable, "table size")
	}
	if err := v.rangeInBuffer(pos, int(size)); err != nil {
		return nil, err
	}
	return &TableVerifier{v: v, pos: pos, vtable: vtable, vtLen: vtLen, size: size}, nil
}

// TableVerifier checks the fields of one table. Its methods record the
// first violation and become no-ops afterwards; Finish returns it.
type TableVerifier struct {
	v      *Verifier
	pos    UOffsetT
	vtable UOffsetT
	vtLen  VOffsetT
	size   VOffsetT
	err    error
}

// Pos returns the position of the table being checked.
func (tv *TableVerifier) Pos() UOffsetT { return tv.pos }

// field locates a field of the given size and checks that it lies within
// the table.
func (tv *TableVerifier) field(name string, vt VOffsetT, size, align int, required bool) (UOffsetT, bool) {
	if tv.err != nil {
		return 0, false
	}
	var off VOffsetT
	if vt+SizeVOffsetT <= tv.vtLen {
		off = GetVOffsetT(tv.v.buf[tv.vtable+UOffsetT(vt):])
	}
	if off == 0 {
		if required {
			tv.err = violation(MissingRequiredField, tv.pos, name)
		}
		return 0, false
	}
	if off < SizeSOffsetT || int(off)+size > int(tv.size) {
		tv.err = violation(FieldOutOfTable, tv.pos+UOffsetT(off), name)
		return 0, false
	}
	pos := tv.pos + UOffsetT(off)
	if err := tv.v.inBuffer(pos, size, align); err != nil {
		tv.err = appendTrace(err, TraceEntry{Field: name, Index: -1, Pos: pos})
		return 0, false
	}
	return pos, true
}

// Scalar checks an inline scalar field of the given width.
func (tv *TableVerifier) Scalar(name string, vt VOffsetT, size int, required bool) *TableVerifier {
	tv.field(name, vt, size, size, required)
	return tv
}

// VerifyField checks an inline scalar field of type T.
func VerifyField[T Scalar](tv *TableVerifier, name string, vt VOffsetT, required bool) *TableVerifier {
	return tv.Scalar(name, vt, SizeOf[T](), required)
}

// Struct checks an inline struct field.
func (tv *TableVerifier) Struct(name string, vt VOffsetT, size, align int, required bool) *TableVerifier {
	tv.field(name, vt, size, align, required)
	return tv
}

// ref locates a reference field and dereferences it.
func (tv *TableVerifier) ref(name string, vt VOffsetT, required bool) (UOffsetT, bool) {
	pos, ok := tv.field(name, vt, SizeUOffsetT, SizeUOffsetT, required)
	if !ok {
		return 0, false
	}
	target, err := tv.v.derefUOffset(pos)
	if err != nil {
		tv.err = appendTrace(err, TraceEntry{Field: name, Index: -1, Pos: pos})
		return 0, false
	}
	return target, true
}

func (tv *TableVerifier) fail(err error, name string, pos UOffsetT) {
	if err != nil {
		tv.err = appendTrace(err, TraceEntry{Field: name, Index: -1, Pos: pos})
	}
}

// String checks a string field.
func (tv *TableVerifier) String(name string, vt VOffsetT, required bool) *TableVerifier {
	if pos, ok := tv.ref(name, vt, required); ok {
		tv.fail(tv.v.VerifyString(pos), name, pos)
	}
	return tv
}

// ScalarVector checks a vector of inline elements of elemSize bytes.
func (tv *TableVerifier) ScalarVector(name string, vt VOffsetT, elemSize int, required bool) *TableVerifier {
	if pos, ok := tv.ref(name, vt, required); ok {
		_, _, err := tv.v.VerifyVector(pos, elemSize)
		tv.fail(err, name, pos)
	}
	return tv
}

// StringVector checks a vector of strings.
func (tv *TableVerifier) StringVector(name string, vt VOffsetT, required bool) *TableVerifier {
	pos, ok := tv.ref(name, vt, required)
	if !ok {
		return tv
	}
	tv.fail(tv.v.eachElement(pos, func(elem UOffsetT) error {
		return tv.v.VerifyString(elem)
	}), name, pos)
	return tv
}

// Table checks a nested table field with fn.
func (tv *TableVerifier) Table(name string, vt VOffsetT, required bool, fn VerifyFunc) *TableVerifier {
	if pos, ok := tv.ref(name, vt, required); ok {
		tv.fail(fn(tv.v, pos), name, pos)
	}
	return tv
}

// TableVector checks a vector of tables, each with fn.
func (tv *TableVerifier) TableVector(name string, vt VOffsetT, required bool, fn VerifyFunc) *TableVerifier {
	pos, ok := tv.ref(name, vt, required)
	if !ok {
		return tv
	}
	tv.fail(tv.v.eachElement(pos, func(elem UOffsetT) error {
		return fn(tv.v, elem)
	}), name, pos)
	return tv
}

// Union checks a union: its uint8 type field at typeVt and the value at
// valueVt must be both present or both absent (type NONE), and the value
// is checked by fn.
func (tv *TableVerifier) Union(name string, typeVt, valueVt VOffsetT, required bool, fn UnionVerifyFunc) *TableVerifier {
	typPos, hasType := tv.field(name+"_type", typeVt, SizeUint8, SizeUint8, required)
	if tv.err != nil {
		return tv
	}
	var typ uint8
	if hasType {
		typ = tv.v.buf[typPos]
	}
	pos, hasValue := tv.ref(name, valueVt, false)
	if tv.err != nil {
		return tv
	}
	if hasValue != (typ != 0) {
		tv.err = violation(InconsistentUnion, tv.pos, name)
		return tv
	}
	if hasValue {
		tv.fail(fn(tv.v, typ, pos), name, pos)
	}
	return tv
}

// Finish ends the table visit and returns the first violation, if any.
func (tv *TableVerifier) Finish() error {
	tv.v.depth--
	return tv.err
}

// eachElement verifies a vector of uoffsets and calls fn with the target of
// every element.
func (v *Verifier) eachElement(pos UOffsetT, fn func(elem UOffsetT) error) error {
	start, n, err := v.VerifyVector(pos, SizeUOffsetT)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		slot := start + UOffsetT(i*SizeUOffsetT)
		elem, err := v.derefUOffset(slot)
		if err == nil {
			err = fn(elem)
		}
		if err != nil {
			return appendTrace(err, TraceEntry{Index: i, Pos: slot})
		}
	}
	return nil
}
