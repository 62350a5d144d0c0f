package domain

import (
	"errors"
	"fmt"
)

// Code classifies a failure of a workspace operation.
type Code int

const (
	// CodeInternal is used for everything that does not fit another code,
	// including storage failures that were not classified by the adapter.
	CodeInternal Code = iota

	// CodeInvalidArgument means the request itself is malformed, regardless
	// of the state of the workspace (blank name, unknown association kind).
	CodeInvalidArgument

	// CodeNotFound means a referenced entity does not exist.
	CodeNotFound

	// CodeFailedPrecondition means the workspace is not in a state the
	// operation requires, e.g. archiving an archived project.
	CodeFailedPrecondition
)

// String returns the code name.
func (c Code) String() string {
	switch c {
	case CodeInvalidArgument:
		return "InvalidArgument"
	case CodeNotFound:
		return "NotFound"
	case CodeFailedPrecondition:
		return "FailedPrecondition"
	default:
		return "Internal"
	}
}

// Sentinel errors, one per code. errors.Is(err, ErrNotFound) holds for every
// *Error with CodeNotFound.
var (
	ErrInternal           = errors.New("internal error")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrNotFound           = errors.New("not found")
	ErrFailedPrecondition = errors.New("failed precondition")
)

// Error is the typed failure returned by operations and repositories.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// Error returns the message, followed by the cause when there is one.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's code.
func (e *Error) Is(target error) bool {
	return target == sentinel(e.Code)
}

func sentinel(c Code) error {
	switch c {
	case CodeInvalidArgument:
		return ErrInvalidArgument
	case CodeNotFound:
		return ErrNotFound
	case CodeFailedPrecondition:
		return ErrFailedPrecondition
	default:
		return ErrInternal
	}
}

// InvalidArgument returns a CodeInvalidArgument error.
func InvalidArgument(format string, args ...any) *Error {
	return &Error{Code: CodeInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// NotFound returns a CodeNotFound error.
func NotFound(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// FailedPrecondition returns a CodeFailedPrecondition error.
func FailedPrecondition(format string, args ...any) *Error {
	return &Error{Code: CodeFailedPrecondition, Message: fmt.Sprintf(format, args...)}
}

// Internal wraps err as a CodeInternal error.
func Internal(err error, format string, args ...any) *Error {
	return &Error{Code: CodeInternal, Message: fmt.Sprintf(format, args...), Err: err}
}

// CodeOf returns the code of the first *Error in err's chain. Errors that
// carry no code are Internal.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// MessageOf returns the message of the first *Error in err's chain, or
// err.Error() for unclassified errors.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
