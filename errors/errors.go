package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseValidate   Phase = "validate"   // feature-gated validation
	PhaseDecode     Phase = "decode"     // binary to IR
	PhaseEncode     Phase = "encode"     // IR to binary
	PhaseInstrument Phase = "instrument" // metering rewrite
	PhaseConfig     Phase = "config"     // cost tables, feature lists
	PhaseLoad       Phase = "load"       // reading input files
	PhaseRuntime    Phase = "runtime"    // executing instrumented modules
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidModule Kind = "invalid_module"
	KindMalformed     Kind = "malformed"
	KindUnsupported   Kind = "unsupported"
	KindOutOfBounds   Kind = "out_of_bounds"
	KindInvalidInput  Kind = "invalid_input"
	KindNotFound      Kind = "not_found"
	KindTrap          Kind = "trap"
)

// Sentinels for errors.Is matching. Only Phase and Kind are compared.
var (
	ErrValidation         = &Error{Phase: PhaseValidate, Kind: KindInvalidModule}
	ErrDecode             = &Error{Phase: PhaseDecode, Kind: KindMalformed}
	ErrUnsupportedSection = &Error{Phase: PhaseDecode, Kind: KindUnsupported}
	ErrUnmapped           = &Error{Phase: PhaseEncode, Kind: KindUnsupported}
	ErrUnchecked          = &Error{Phase: PhaseValidate, Kind: KindUnsupported}
)

// Error is the structured error type used throughout the module
type Error struct {
	Value   any
	Cause   error
	Phase   Phase
	Kind    Kind
	Section string
	Detail  string
	Path    []string
	// Offset and End locate the failure in the input, End is zero when
	// only a position is known.
	Offset int
	End    int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Section != "" {
		b.WriteString(" in ")
		b.WriteString(e.Section)
		b.WriteString(" section")
	}

	switch {
	case e.End > 0:
		fmt.Fprintf(&b, " (bytes %d..%d)", e.Offset, e.End)
	case e.Offset > 0:
		fmt.Fprintf(&b, " (offset %d)", e.Offset)
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

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the logical path, e.g. function and operator position
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Section names the module section the error belongs to
func (b *Builder) Section(name string) *Builder {
	b.err.Section = name
	return b
}

// Range sets the input byte range
func (b *Builder) Range(start, end int) *Builder {
	b.err.Offset = start
	b.err.End = end
	return b
}

// Offset sets the input byte position
func (b *Builder) Offset(pos int) *Builder {
	b.err.Offset = pos
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Validation wraps a validator failure
func Validation(cause error) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindInvalidModule,
		Detail: "module rejected by validator",
		Cause:  cause,
	}
}

// Unchecked reports a module that relies on proposals the configured
// validator cannot check. cause is the validator's own rejection.
func Unchecked(proposals []string, cause error) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindUnsupported,
		Detail: fmt.Sprintf("validator cannot check proposals used by the module: %s", strings.Join(proposals, ", ")),
		Value:  proposals,
		Cause:  cause,
	}
}

// Decode wraps a reader diagnostic raised inside a recognized section
func Decode(section string, offset int, cause error) *Error {
	return &Error{
		Phase:   PhaseDecode,
		Kind:    KindMalformed,
		Section: section,
		Offset:  offset,
		Cause:   cause,
	}
}

// UnsupportedSection reports a recognized payload kind that is not decoded
func UnsupportedSection(id byte, start, end int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindUnsupported,
		Detail: fmt.Sprintf("section id %d is not supported", id),
		Value:  id,
		Offset: start,
		End:    end,
	}
}

// Unmapped describes a model value with no wire encoding. Encoders panic
// with it since a parsed module can never contain one.
func Unmapped(category string, value any) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindUnsupported,
		Detail: fmt.Sprintf("unmapped %s %v", category, value),
		Value:  value,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Path:   path,
		Detail: detail,
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, path []string, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Path:   path,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// NotFound creates a lookup failure error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
		Value:  name,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
