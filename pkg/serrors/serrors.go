// Package serrors defines the semantic error kinds surfaced by the candy store
// and a wrapper type that carries a kind next to an optional cause.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel). Kinds are comparable
// and match through errors.Is/As when carried by an *Error.
func NewKind(name string) Kind { return kind{s: name} }

var (
	// ErrValidation indicates a record or argument broke a domain rule, such as
	// a malformed email or a password that is too short.
	ErrValidation = NewKind("VALIDATION")
	// ErrEmptyCart indicates checkout was attempted without anything to order.
	ErrEmptyCart = NewKind("EMPTY_CART")
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized indicates the supplied credentials were rejected.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrForbidden indicates the caller is known but lacks the staff role.
	ErrForbidden = NewKind("FORBIDDEN")
	// ErrConflict indicates a state conflict: duplicate registration or
	// insufficient stock.
	ErrConflict = NewKind("CONFLICT")
	// ErrInternal indicates an unexpected failure.
	ErrInternal = NewKind("INTERNAL")
)

// Error is a semantic error carrying a kind, an optional wrapped cause and an
// optional message. errors.Is and errors.As match either the kind or the cause.
//
// Error string formatting:
//   - msg and err set: "<msg>: <err>"
//   - only msg: "<msg>"
//   - only err: "<err>"
//   - neither: the kind's name
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a semantic error of kind k with a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a semantic error of kind k that wraps err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// KindOf returns the first semantic kind found in err's chain, or nil.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return nil
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target matches the kind or the wrapped cause.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}

	return e.err != nil && errors.Is(e.err, target)
}

// As assigns the kind or the wrapped cause to target when the types line up.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}

	return e.err != nil && errors.As(e.err, target)
}

// Kind returns the semantic kind, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }
