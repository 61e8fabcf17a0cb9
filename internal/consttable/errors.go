package consttable

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the kind of failure.
type ErrorCode string

const (
	// CodeSchema is returned when a column or row declaration is invalid.
	CodeSchema ErrorCode = "SCHEMA"
	// CodeUnknownColumn is returned when a query references an undeclared column.
	CodeUnknownColumn ErrorCode = "UNKNOWN_COLUMN"
	// CodeArgument is returned for malformed selectors, conditions or calls.
	CodeArgument ErrorCode = "ARGUMENT"
	// CodeNotFound is returned when a direct key lookup misses.
	CodeNotFound ErrorCode = "NOT_FOUND"
	// CodeLogger is returned when logging is attempted without a usable sink.
	CodeLogger ErrorCode = "LOGGER"
)

// Sentinels for errors.Is. They only compare codes.
var (
	ErrSchema        = &Error{code: CodeSchema}
	ErrUnknownColumn = &Error{code: CodeUnknownColumn}
	ErrArgument      = &Error{code: CodeArgument}
	ErrNotFound      = &Error{code: CodeNotFound}
	ErrLogger        = &Error{code: CodeLogger}
)

// Error is a coded error with optional details and a wrapped cause.
type Error struct {
	code       ErrorCode
	message    string
	details    map[string]any
	wrappedErr error
}

// NewError creates a new Error with the given code and message.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		code:    code,
		message: message,
		details: make(map[string]any),
	}
}

// WithDetail adds a single detail to the error.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.details == nil {
		e.details = make(map[string]any)
	}
	e.details[key] = value
	return e
}

// Wrap wraps an underlying error.
func (e *Error) Wrap(err error) *Error {
	e.wrappedErr = err
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.wrappedErr != nil {
		return fmt.Sprintf("%s: %v", e.message, e.wrappedErr)
	}
	return e.message
}

// Code returns the error code.
func (e *Error) Code() ErrorCode {
	return e.code
}

// Details returns additional error details.
func (e *Error) Details() map[string]any {
	return e.details
}

// Detail returns a single detail, or nil.
func (e *Error) Detail(key string) any {
	return e.details[key]
}

// Unwrap returns the wrapped error if any.
func (e *Error) Unwrap() error {
	return e.wrappedErr
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.code == e.code
}

// CodeOf returns the code of the first *Error in err's chain, or "".
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return ""
}

func schemaError(table, format string, args ...any) *Error {
	return NewError(CodeSchema, fmt.Sprintf("%s: %s", table, fmt.Sprintf(format, args...))).
		WithDetail("table", table)
}

func unknownColumnError(table, column string) *Error {
	return NewError(CodeUnknownColumn, fmt.Sprintf("%s: unknown column %q", table, column)).
		WithDetail("table", table).
		WithDetail("column", column)
}

func argumentError(table, format string, args ...any) *Error {
	return NewError(CodeArgument, fmt.Sprintf("%s: %s", table, fmt.Sprintf(format, args...))).
		WithDetail("table", table)
}

func notFoundError(table string, key any) *Error {
	return NewError(CodeNotFound, fmt.Sprintf("%s: no row with key %v", table, key)).
		WithDetail("table", table).
		WithDetail("key", key)
}

func loggerError(table string) *Error {
	return NewError(CodeLogger, fmt.Sprintf("%s: no logger configured", table)).
		WithDetail("table", table)
}
