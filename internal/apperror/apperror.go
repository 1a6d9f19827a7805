package apperror

import (
	"errors"
	"fmt"
)

// Sentinel kinds forming the closed error taxonomy. Workflows wrap these;
// the HTTP layer maps them to status codes with errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
	ErrPermission = errors.New("permission denied")
	ErrIntegrity  = errors.New("integrity fault")
	ErrTransient  = errors.New("transient failure")
)

// FieldError is a single structured validation failure.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type AppError struct {
	Err     error        // sentinel kind
	Message string       // human-readable error message
	Details []FieldError // optional per-field validation detail
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Validation(details []FieldError) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: "validation failed",
		Details: details,
	}
}

func Conflict(field, value string) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Message: fmt.Sprintf("an account with %s %q already exists", field, value),
	}
}

func NotFound(resource string, id int64) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %d", resource, id),
	}
}

// Permission indicates the caller lacks rights over the resource.
func Permission(message string) *AppError {
	return &AppError{
		Err:     ErrPermission,
		Message: message,
	}
}

// Integrity marks a server-side invariant violation, such as a referenced
// account missing from storage. Clients only see a generic message.
func Integrity(message string) *AppError {
	return &AppError{
		Err:     ErrIntegrity,
		Message: message,
	}
}

// Transient wraps a notifier or storage failure that may succeed on retry.
func Transient(cause error) *AppError {
	return &AppError{
		Err:     ErrTransient,
		Message: cause.Error(),
	}
}
