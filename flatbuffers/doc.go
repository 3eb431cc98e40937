// Package flatbuffers provides facilities to read, write and verify
// flatbuffers objects.
//
// A buffer is a flat little-endian byte slice built back to front by a
// Builder. Children (strings, vectors, nested tables) are written first and
// referenced by their parents through forward uoffsets; Finish writes the
// root uoffset at the start of the buffer.
//
// Every table starts with a soffset to its vtable. The vtable maps each
// field slot, identified by schema order, to the field's byte offset inside
// the table, with 0 meaning the field is absent and its schema default
// applies:
//
//	vtable: [vtable size][table size][field 0 offset][field 1 offset]...
//	table:  [soffset to vtable][field data]...
//
// Identical vtables are written once per buffer and shared by all tables
// that use them.
//
// Readers access fields in place through Table and the generic GetSlot,
// Follow and vector views. These perform no validation: buffers of unknown
// provenance must first be accepted by a Verifier (or VerifiedRoot), which
// checks every offset, length and alignment reachable from the root within
// configurable depth, table count and size budgets.
package flatbuffers
