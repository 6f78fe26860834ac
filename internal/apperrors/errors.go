package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForeignKey indicates that a write referenced a workplace or labor that does not exist.
var ErrForeignKey = errors.New("referenced resource does not exist")

// ErrNoActiveWorkplace indicates that a mutation requiring workplace context was
// attempted while no workplace is selected.
var ErrNoActiveWorkplace = errors.New("no active workplace selected")

// ErrImportParse indicates that a backup document could not be parsed.
var ErrImportParse = errors.New("backup document is malformed")

// ErrStorageUnavailable indicates an I/O-layer failure in the persistence store.
var ErrStorageUnavailable = errors.New("storage unavailable")

// AppError wraps an underlying error with an application status code and message.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError with the given code, message and cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError wrapping ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewValidationFailedError creates an AppError wrapping ErrValidation.
func NewValidationFailedError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// NewConflictError creates an AppError wrapping ErrDuplicate.
func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrDuplicate}
}

// NewForeignKeyError creates an AppError wrapping ErrForeignKey.
func NewForeignKeyError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrForeignKey}
}

// NewStorageError creates an AppError wrapping ErrStorageUnavailable.
func NewStorageError(message string, err error) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message, Err: errors.Join(ErrStorageUnavailable, err)}
}

// NewImportParseError creates an AppError wrapping ErrImportParse.
func NewImportParseError(message string, err error) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: errors.Join(ErrImportParse, err)}
}

// StatusCode returns the HTTP status code best matching err.
func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr.Code
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation), errors.Is(err, ErrImportParse):
		return http.StatusBadRequest
	case errors.Is(err, ErrDuplicate), errors.Is(err, ErrForeignKey), errors.Is(err, ErrNoActiveWorkplace):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
