package api

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/johnwards/temple/internal/domain"
	"github.com/johnwards/temple/internal/logger"
)

// Error categories carried in the error envelope.
const (
	CategoryValidationError = "VALIDATION_ERROR"
	CategoryObjectNotFound  = "OBJECT_NOT_FOUND"
	CategoryConflict        = "CONFLICT"
	CategoryUnauthorized    = "UNAUTHORIZED"
	CategoryInternalError   = "INTERNAL_ERROR"
)

// Error is the JSON envelope of every failed request.
type Error struct {
	Status        string        `json:"status"`
	Message       string        `json:"message"`
	CorrelationID string        `json:"correlationId"`
	Category      string        `json:"category"`
	Errors        []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one entry of Error.Errors.
type ErrorDetail struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	In      string `json:"in,omitempty"`
}

// NewNotFoundError creates a 404 error with the OBJECT_NOT_FOUND category.
func NewNotFoundError(message, correlationID string) *Error {
	return &Error{
		Status:        "error",
		Message:       message,
		CorrelationID: correlationID,
		Category:      CategoryObjectNotFound,
	}
}

// NewValidationError creates a 400 error with the VALIDATION_ERROR category.
func NewValidationError(message, correlationID string, details []ErrorDetail) *Error {
	return &Error{
		Status:        "error",
		Message:       message,
		CorrelationID: correlationID,
		Category:      CategoryValidationError,
		Errors:        details,
	}
}

// NewConflictError creates a 409 error with the CONFLICT category.
func NewConflictError(message, correlationID string) *Error {
	return &Error{
		Status:        "error",
		Message:       message,
		CorrelationID: correlationID,
		Category:      CategoryConflict,
	}
}

// NewInternalError creates a 500 error. The message is generic; the cause
// goes to the log only.
func NewInternalError(correlationID string) *Error {
	return &Error{
		Status:        "error",
		Message:       "Internal Server Error",
		CorrelationID: correlationID,
		Category:      CategoryInternalError,
	}
}

// WriteError writes an Error as a JSON response with the given HTTP status code.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int, apiErr *Error) {
	WriteJSON(w, r, statusCode, apiErr)
}

// WriteDomainError maps err's domain code to a status and category:
// InvalidArgument is 400, NotFound 404, FailedPrecondition 409 and
// anything else 500.
func WriteDomainError(w http.ResponseWriter, r *http.Request, err error) {
	corrID := CorrelationID(r.Context())
	msg := domain.MessageOf(err)

	switch domain.CodeOf(err) {
	case domain.CodeInvalidArgument:
		WriteError(w, r, http.StatusBadRequest, NewValidationError(msg, corrID, nil))
	case domain.CodeNotFound:
		WriteError(w, r, http.StatusNotFound, NewNotFoundError(msg, corrID))
	case domain.CodeFailedPrecondition:
		WriteError(w, r, http.StatusConflict, NewConflictError(msg, corrID))
	default:
		logger.FromContext(r.Context()).Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		WriteError(w, r, http.StatusInternalServerError, NewInternalError(corrID))
	}
}
