// Package errors provides the coded error type shared by xformstack packages.
//
// Every error carries a machine-readable [Code]. Callers branch on the code
// with [Is] and print [UserMessage] to people:
//
//	if errors.Is(err, errors.ErrCodeNotFound) {
//	    // no such entry
//	}
//
// Chain access by index or depth is a programming error; it panics with an
// [OutOfRange] value instead of returning one.
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error category.
type Code string

const (
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidDocument  Code = "INVALID_DOCUMENT"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidPath      Code = "INVALID_PATH"
	ErrCodeInvalidTransform Code = "INVALID_TRANSFORM"

	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	ErrCodeEmptyStack Code = "EMPTY_STACK"
	ErrCodeOutOfRange Code = "OUT_OF_RANGE"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an error with code and a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an error with code and a formatted message around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// Is reports whether the first *Error in err's chain has code.
func Is(err error, code Code) bool {
	e, ok := As(err)
	return ok && e.Code == code
}

// GetCode returns the code of the first *Error in err's chain, or "".
func GetCode(err error) Code {
	if e, ok := As(err); ok {
		return e.Code
	}
	return ""
}

// UserMessage renders err without codes. Causes that are themselves coded
// are rendered the same way.
func UserMessage(err error) string {
	e, ok := As(err)
	if !ok {
		return err.Error()
	}
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + UserMessage(e.Cause)
}

// NotFound reports a name lookup that matched no entry.
func NotFound(name string) *Error {
	return New(ErrCodeNotFound, "no entry named %q", name)
}

// OutOfRange is the panic value for index and depth precondition failures.
func OutOfRange(what string, index, size int) *Error {
	return New(ErrCodeOutOfRange, "%s %d out of range [0, %d)", what, index, size)
}
