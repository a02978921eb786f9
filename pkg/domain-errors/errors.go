// Package domainerrors defines coded errors shared across modules. Services
// return these so transport layers can translate them into HTTP responses
// without inspecting error strings.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code identifies the class of a domain error.
type Code string

const (
	// CodeBadRequest covers malformed requests (unparseable body, bad IDs).
	CodeBadRequest Code = "bad_request"

	// CodeValidation covers rule-violating input: blocks too short,
	// overlapping ranges, out-of-range ratings. Never retried.
	CodeValidation Code = "validation_failed"

	// CodeNotFound covers lookups for subjects that do not exist.
	CodeNotFound Code = "not_found"

	// CodeUnavailable covers upstream read failures where no result at all
	// could be produced.
	CodeUnavailable Code = "unavailable"

	// CodePartial marks results where some upstream domains failed but
	// others reported. The caller receives the partial result alongside
	// this code.
	CodePartial Code = "partial_result"

	// CodeInternal covers everything else. Its message is never exposed to
	// clients.
	CodeInternal Code = "internal_error"
)

// Error is a coded domain error. It optionally wraps an underlying cause.
type Error struct {
	code    Code
	message string
	cause   error
}

// New constructs a domain error with a code and a human-readable message.
func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

// Wrap constructs a domain error that records an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{code: code, message: message, cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

// Code returns the error's classification code.
func (e *Error) Code() Code { return e.code }

// Message returns the human-readable description without the code prefix.
func (e *Error) Message() string { return e.message }

func (e *Error) Unwrap() error { return e.cause }

// HasCode reports whether err is, or wraps, a domain error with the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.code == code
	}
	return false
}

// CodeOf extracts the code from err, defaulting to CodeInternal for
// unclassified errors.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.code
	}
	return CodeInternal
}
