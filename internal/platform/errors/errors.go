// Package errors is the coded error type shared by every layer
//
// Import it as perr. Services return *Error values; the HTTP layer maps
// the code to a status and the JSON envelope carries the Wire form.
package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies an error for callers and for the wire
type ErrorCode uint16

const (
	// ErrorCodeUnknown is anything we could not classify
	ErrorCodeUnknown ErrorCode = iota

	// ErrorCodePanic marks a panic recovered by middleware
	ErrorCodePanic

	// ErrorCodeUnavailable means a dependency is not ready yet
	ErrorCodeUnavailable

	// ErrorCodeInvalidArgument is input that parsed but cannot be applied
	ErrorCodeInvalidArgument

	// ErrorCodeValidation is malformed input such as a bad time token
	ErrorCodeValidation

	// ErrorCodeJSON is an undecodable request body
	ErrorCodeJSON

	// ErrorCodeNotFound is a missing project, day or item
	ErrorCodeNotFound

	// ErrorCodeDuplicateKey is a unique constraint hit
	ErrorCodeDuplicateKey

	// ErrorCodeDB is any other storage failure
	ErrorCodeDB
)

var codeNames = [...]string{
	ErrorCodeUnknown:         "unknown",
	ErrorCodePanic:           "panic",
	ErrorCodeUnavailable:     "unavailable",
	ErrorCodeInvalidArgument: "invalid_argument",
	ErrorCodeValidation:      "validation",
	ErrorCodeJSON:            "json",
	ErrorCodeNotFound:        "not_found",
	ErrorCodeDuplicateKey:    "duplicate_key",
	ErrorCodeDB:              "db",
}

// String names the code for logs and metric labels
func (c ErrorCode) String() string {
	if int(c) < len(codeNames) {
		return codeNames[c]
	}
	return fmt.Sprintf("code(%d)", uint16(c))
}

// HTTPStatusCode maps a code to the status the API answers with
func HTTPStatusCode(c ErrorCode) int {
	switch c {
	case ErrorCodeValidation, ErrorCodeJSON:
		return http.StatusBadRequest
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeDuplicateKey:
		return http.StatusConflict
	case ErrorCodeInvalidArgument:
		return http.StatusUnprocessableEntity
	case ErrorCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ErrNotFound is returned by single row lookups that matched nothing
var ErrNotFound = New(ErrorCodeNotFound, "not found")

// Error carries a code, a message, an optional form field and the cause
type Error struct {
	orig  error
	msg   string
	code  ErrorCode
	field string
}

// Wire is the error part of the JSON envelope
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		return e.msg + ": " + e.orig.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.orig }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Field names the offending input, empty when not tied to one
func (e *Error) Field() string { return e.field }

// Message is the text without the wrapped cause
func (e *Error) Message() string { return e.msg }

// ToWire drops the cause; only msg leaves the process
func (e *Error) ToWire() Wire { return Wire{Code: e.code, Message: e.msg, Field: e.field} }

// WireFrom converts any error, foreign ones become Unknown
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return e.ToWire()
	}
	return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
}

// Root walks Unwrap to the innermost cause
func Root(err error) error {
	for err != nil {
		u := stderrs.Unwrap(err)
		if u == nil {
			return err
		}
		err = u
	}
	return nil
}

// As finds the outermost *Error in the chain
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf returns the code of the outermost *Error, Unknown otherwise
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err carries code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// HTTPStatus is HTTPStatusCode(CodeOf(err))
func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }

// WithField returns a copy of the *Error with field set
// foreign errors pass through untouched
func WithField(err error, field string) error {
	if e, ok := As(err); ok {
		c := *e
		c.field = field
		return &c
	}
	return err
}

// New returns an *Error with code and msg
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf is New with formatting
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap attaches code and msg to orig
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// Wrapf is Wrap with formatting
func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), orig: orig}
}

// NotFoundf returns an ErrorCodeNotFound error
func NotFoundf(format string, a ...any) error { return Newf(ErrorCodeNotFound, format, a...) }

// InvalidArgf returns an ErrorCodeInvalidArgument error
func InvalidArgf(format string, a ...any) error { return Newf(ErrorCodeInvalidArgument, format, a...) }

// Validationf returns an ErrorCodeValidation error
func Validationf(format string, a ...any) error { return Newf(ErrorCodeValidation, format, a...) }

// DBf returns an ErrorCodeDB error
func DBf(format string, a ...any) error { return Newf(ErrorCodeDB, format, a...) }

// JSONErrf returns an ErrorCodeJSON error
func JSONErrf(format string, a ...any) error { return Newf(ErrorCodeJSON, format, a...) }

// PanicErrf returns an ErrorCodePanic error
func PanicErrf(format string, a ...any) error { return Newf(ErrorCodePanic, format, a...) }
