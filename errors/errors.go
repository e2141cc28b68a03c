package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseConfigure Phase = "configure" // encoder construction
	PhaseEncode    Phase = "encode"    // per-edge evaluation
	PhaseSimulate  Phase = "simulate"  // harness configuration and stimulus
	PhaseReport    Phase = "report"    // report rendering
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidWidth  Kind = "invalid_width"
	KindWidthMismatch Kind = "width_mismatch"
	KindInvalidCycles Kind = "invalid_cycles"
	KindInvalidPower  Kind = "invalid_power"
	KindInvalidWord   Kind = "invalid_word"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Value != nil {
		b.WriteString(fmt.Sprintf(" (value: %v)", e.Value))
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

// Convenience constructors for common error patterns

// InvalidWidth creates an out-of-range bus width error
func InvalidWidth(phase Phase, width int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidWidth,
		Value:  width,
		Detail: "bus width must be in [1, 64]",
	}
}

// WidthMismatch creates a mismatched operand width error
func WidthMismatch(phase Phase, want, got int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindWidthMismatch,
		Detail: fmt.Sprintf("operand width %d does not match encoder width %d", got, want),
	}
}

// InvalidCycles creates an invalid stimulus length error
func InvalidCycles(phase Phase, cycles int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidCycles,
		Value:  cycles,
		Detail: "cycle count must be positive",
	}
}

// InvalidPower creates an invalid power model parameter error
func InvalidPower(phase Phase, param string, value float64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidPower,
		Value:  value,
		Detail: fmt.Sprintf("power model parameter %s must be positive", param),
	}
}

// InvalidWord creates an unparseable word literal error
func InvalidWord(phase Phase, literal string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidWord,
		Value:  literal,
		Cause:  cause,
		Detail: "word literal must be binary (0b...), hex (0x...) or decimal",
	}
}
