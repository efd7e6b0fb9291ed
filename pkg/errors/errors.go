package errors

import "net/http"

// ErrorKind classifies failures so the presentation layer can distinguish
// validation problems, invariant conflicts and expected negative results
// without parsing messages.
type ErrorKind string

const (
	KindValidation  ErrorKind = "VALIDATION"
	KindConflict    ErrorKind = "CONFLICT"
	KindNotEligible ErrorKind = "NOT_ELIGIBLE"
	KindNotFound    ErrorKind = "NOT_FOUND"
	KindInternal    ErrorKind = "INTERNAL"
)

// AppError is a custom error type that includes an HTTP status code and a kind
type AppError struct {
	Code    int       `json:"code"`
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// NewAppError creates a new AppError
func NewAppError(code int, kind ErrorKind, message string) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
	}
}

// Common errors
var (
	ErrInvalidRequest = NewAppError(http.StatusBadRequest, KindValidation, "Invalid request parameters")
	ErrNotFound       = NewAppError(http.StatusNotFound, KindNotFound, "Resource not found")
	ErrInternalServer = NewAppError(http.StatusInternalServerError, KindInternal, "Internal server error")
)

// Validation signals bad or missing input fields. Recoverable locally by the
// caller; no state was touched.
func Validation(msg string) *AppError {
	return NewAppError(http.StatusBadRequest, KindValidation, msg)
}

// Conflict signals an invariant violation, e.g. joining while another
// challenge is still active.
func Conflict(msg string) *AppError {
	return NewAppError(http.StatusConflict, KindConflict, msg)
}

// NotEligible signals an expected negative result, e.g. completing a day
// twice. Callers treat it as a normal outcome, not a crash.
func NotEligible(msg string) *AppError {
	return NewAppError(http.StatusConflict, KindNotEligible, msg)
}

func NotFound(msg string) *AppError {
	return NewAppError(http.StatusNotFound, KindNotFound, msg)
}

func Internal(msg string) *AppError {
	return NewAppError(http.StatusInternalServerError, KindInternal, msg)
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Kind == kind
}
