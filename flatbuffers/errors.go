package flatbuffers

import (
	"fmt"
	"strings"

	"golang.org/x/xerrors"
)

// Construction errors. The builder panics with these (possibly wrapped)
// values: they signal misuse of the API and abort the current build.
var (
	ErrNested         = xerrors.New("flatbuffers: object must not be nested")
	ErrNotNested      = xerrors.New("flatbuffers: must be inside object")
	ErrNotFinished    = xerrors.New("flatbuffers: buffer is not finished")
	ErrOffsetOverflow = xerrors.New("flatbuffers: offset does not fit")
	ErrScope          = xerrors.New("flatbuffers: offset from a different construction scope")
	ErrBufferTooLarge = xerrors.New("flatbuffers: cannot grow buffer beyond 2 gigabytes")
	ErrIdentifier     = xerrors.New("flatbuffers: incorrect file identifier length")
)

// Violation is the kind of structural problem found by the Verifier.
// A Violation is itself an error so that errors.Is can match on it.
type Violation uint8

const (
	RangeOutOfBounds Violation = iota + 1
	SignedOffsetOutOfBounds
	Unaligned
	MalformedVtable
	FieldOutOfTable
	MissingRequiredField
	MissingNullTerminator
	Utf8Error
	InconsistentUnion
	IdentifierMismatch
	DepthLimitReached
	TooManyTables
	ApparentSizeTooLarge
)

var violationNames = map[Violation]string{
	RangeOutOfBounds:        "range out of bounds",
	SignedOffsetOutOfBounds: "signed offset out of bounds",
	Unaligned:               "unaligned access",
	MalformedVtable:         "malformed vtable",
	FieldOutOfTable:         "field outside of table",
	MissingRequiredField:    "missing required field",
	MissingNullTerminator:   "missing null terminator",
	Utf8Error:               "invalid utf-8",
	InconsistentUnion:       "inconsistent union",
	IdentifierMismatch:      "file identifier mismatch",
	DepthLimitReached:       "depth limit reached",
	TooManyTables:           "too many tables",
	ApparentSizeTooLarge:    "apparent size too large",
}

func (v Violation) Error() string {
	if s, ok := violationNames[v]; ok {
		return s
	}
	return fmt.Sprintf("violation(%d)", uint8(v))
}

// BudgetExceeded reports whether v is one of the work budget rejections.
func (v Violation) BudgetExceeded() bool {
	return v == DepthLimitReached || v == TooManyTables || v == ApparentSizeTooLarge
}

// IsBounds reports whether v is a bounds violation.
func (v Violation) IsBounds() bool {
	return v == RangeOutOfBounds || v == SignedOffsetOutOfBounds || v == FieldOutOfTable
}

// TraceEntry locates one step of the path from the root to a violation.
type TraceEntry struct {
	Field string // set for table fields
	Index int    // set for vector elements, -1 otherwise
	Pos   UOffsetT
}

func (e TraceEntry) String() string {
	if e.Field != "" {
		return fmt.Sprintf("%s@%d", e.Field, e.Pos)
	}
	return fmt.Sprintf("[%d]@%d", e.Index, e.Pos)
}

// VerifyError is returned by the Verifier when a buffer is rejected.
type VerifyError struct {
	Violation Violation
	// Pos is the buffer position at which the violation was detected.
	Pos UOffsetT
	// Detail names the field or extra context, may be empty.
	Detail string
	// Trace runs from the innermost location outwards.
	Trace []TraceEntry
}

func (e *VerifyError) Error() string {
	var sb strings.Builder
	sb.WriteString("flatbuffers: ")
	sb.WriteString(e.Violation.Error())
	fmt.Fprintf(&sb, " at %d", e.Pos)
	if e.Detail != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Detail)
		sb.WriteString(")")
	}
	if len(e.Trace) > 0 {
		sb.WriteString(" in ")
		for i := len(e.Trace) - 1; i >= 0; i-- {
			sb.WriteString(e.Trace[i].String())
			if i > 0 {
				sb.WriteString(".")
			}
		}
	}
	return sb.String()
}

func (e *VerifyError) Unwrap() error { return e.Violation }

func violation(v Violation, pos UOffsetT, detail string) *VerifyError {
	return &VerifyError{Violation: v, Pos: pos, Detail: detail}
}

// appendTrace records the current location on err if it is a VerifyError.
func appendTrace(err error, e TraceEntry) error {
	var ve *VerifyError
	if xerrors.As(err, &ve) {
		ve.Trace = append(ve.Trace, e)
	}
	return err
}
