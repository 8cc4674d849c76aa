package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDefine Phase = "define" // layout and field declaration
	PhaseGet    Phase = "get"    // field extraction
	PhaseSet    Phase = "set"    // field assignment
	PhaseParse  Phase = "parse"  // layout text parsing
)

// Kind categorizes the error
type Kind string

const (
	KindOverflow        Kind = "overflow"     // layout exceeds the storage width
	KindInvalidBits     Kind = "invalid_bits" // value has bits outside the field span
	KindInvalidStrategy Kind = "invalid_strategy"
	KindInvalidOffset   Kind = "invalid_offset"
	KindZeroWidth       Kind = "zero_width"
	KindDuplicateField  Kind = "duplicate_field"
	KindUnknownField    Kind = "unknown_field"
	KindFrozen          Kind = "frozen"
	KindInvalidData     Kind = "invalid_data"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Field  string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Field != "" {
		b.WriteString(" at ")
		b.WriteString(e.Field)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Convenience constructors for common error patterns

// Overflow creates a definition error for a field or padding span that does
// not fit in the storage unit's remaining bits.
func Overflow(field string, width, used, total uint) *Error {
	return &Error{
		Phase:  PhaseDefine,
		Kind:   KindOverflow,
		Field:  field,
		Detail: fmt.Sprintf("span needs %d bits, %d of %d remaining", width, total-used, total),
	}
}

// InvalidBits creates the set-time error for a value carrying bits outside
// its field's span. The detail message is fixed; callers needing diagnostics
// inspect the offending value themselves.
func InvalidBits(field string, value any) *Error {
	return &Error{
		Phase:  PhaseSet,
		Kind:   KindInvalidBits,
		Field:  field,
		Detail: "invalid bits set",
		Value:  value,
	}
}

// InvalidStrategy creates a definition error for a strategy that cannot be
// used in the given position.
func InvalidStrategy(phase Phase, field, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidStrategy,
		Field:  field,
		Detail: detail,
	}
}

// OffsetRange creates a definition error for an effective offset that places
// the field's span outside the result or value type's width.
func OffsetRange(phase Phase, field string, offset, width, typeBits uint) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidOffset,
		Field:  field,
		Detail: fmt.Sprintf("offset %d plus width %d exceeds %d-bit type", offset, width, typeBits),
	}
}

// ZeroWidth creates a definition error for a zero-width field or padding span.
func ZeroWidth(field string) *Error {
	return &Error{
		Phase:  PhaseDefine,
		Kind:   KindZeroWidth,
		Field:  field,
		Detail: "span must be at least one bit",
	}
}

// DuplicateField creates a definition error for a field name declared twice.
func DuplicateField(name string) *Error {
	return &Error{
		Phase:  PhaseDefine,
		Kind:   KindDuplicateField,
		Field:  name,
		Detail: "field name already declared",
	}
}

// UnknownField creates an error for a name the layout does not contain.
func UnknownField(phase Phase, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnknownField,
		Field:  name,
		Detail: "no such field in layout",
	}
}

// Frozen creates a definition error for a declaration after the layout was
// frozen.
func Frozen(field string) *Error {
	return &Error{
		Phase:  PhaseDefine,
		Kind:   KindFrozen,
		Field:  field,
		Detail: "layout already frozen",
	}
}

// ParseFailed creates a layout text parsing error.
func ParseFailed(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidData,
		Detail: detail,
		Cause:  cause,
	}
}
