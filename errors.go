package semverx

import (
	"errors"
	"strings"
)

// Error is the semverx error domain type. It carries the accumulated
// context of a failure as it bubbles up through the version model,
// the dependency graph, and the strategy engine.
//
// Components should create an Error at the point of failure and prefer
// BubbleUp over wrapping in another Error as it crosses a layer boundary.
type Error struct {
	Inner   error
	Kind    ErrorKind
	Message string
	Op      string

	// Context holds bubbled annotations, oldest first.
	Context []string
	// StressLevel is the cost this error contributes to the stress model.
	StressLevel float64
	// CanRecover distinguishes errors that permit strategy fallback from
	// fatal errors that abort a resolution immediately.
	CanRecover bool
}

var (
	_ error                       = (*Error)(nil)
	_ interface{ Is(error) bool } = (*Error)(nil)
	_ interface{ Unwrap() error } = (*Error)(nil)
)

// Error implements error.
func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(" ")
	}
	b.WriteString("[")
	b.WriteString(string(e.Kind))
	b.WriteString("]: ")
	if e.Message != "" {
		b.WriteString(e.Message)
	}
	for _, c := range e.Context {
		b.WriteString("; ")
		b.WriteString(c)
	}
	if e.Inner != nil {
		b.WriteString(": ")
		b.WriteString(e.Inner.Error())
	}
	return b.String()
}

// Is enables errors.Is against an ErrorKind.
func (e *Error) Is(target error) bool {
	kind, ok := target.(ErrorKind)
	if !ok {
		return false
	}
	return e.Kind == kind
}

// Unwrap enables errors.Unwrap.
func (e *Error) Unwrap() error {
	return e.Inner
}

// BubbleUp is the single supported error-propagation transform: it appends
// a context string and amplifies the error's stress level by 1.5, modeling
// compounding blame as a failure propagates through layers. It mutates and
// returns the receiver so call sites can chain: `return err.BubbleUp("...")`.
func (e *Error) BubbleUp(context string) *Error {
	e.Context = append(e.Context, context)
	e.StressLevel *= 1.5
	return e
}

// ErrorKind is one of the closed set of error classes produced by semverx
// operations.
type ErrorKind string

// Defined error kinds. This set is closed; do not add new kinds without
// updating the recovery policy in the strategy engine.
const (
	KindParsing    ErrorKind = "parsing"
	KindValidating ErrorKind = "validating"
	KindComparing  ErrorKind = "comparing"
	KindResolving  ErrorKind = "resolving"
	KindHealing    ErrorKind = "healing"
	KindPanic      ErrorKind = "panic"
)

// Error implements error so ErrorKind can be used directly with errors.Is.
func (k ErrorKind) Error() string { return string(k) }

func newError(kind ErrorKind, op, message string, stress float64, recoverable bool) *Error {
	return &Error{
		Kind:        kind,
		Op:          op,
		Message:     message,
		StressLevel: stress,
		CanRecover:  recoverable,
	}
}

// AsError reports whether err's chain contains a *Error, returning it.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
