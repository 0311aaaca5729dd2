package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is an application error carrying the HTTP status it maps to.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
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

// Validation creates a 400 error for missing or malformed input.
func Validation(message string) *AppError {
	return &AppError{Code: "VALIDATION_ERROR", Message: message, Status: http.StatusBadRequest}
}

// NotFound creates a 404 error.
func NotFound(message string) *AppError {
	return &AppError{Code: "NOT_FOUND", Message: message, Status: http.StatusNotFound}
}

// Conflict creates a 400 error for uniqueness violations. The original
// deployment answered duplicates with 400 rather than 409, and clients depend
// on that.
func Conflict(message string) *AppError {
	return &AppError{Code: "CONFLICT", Message: message, Status: http.StatusBadRequest}
}

// Auth creates a 401 error for bad credentials.
func Auth(message string) *AppError {
	return &AppError{Code: "AUTH_ERROR", Message: message, Status: http.StatusUnauthorized}
}

// Forbidden creates a 403 error.
func Forbidden(message string) *AppError {
	return &AppError{Code: "FORBIDDEN", Message: message, Status: http.StatusForbidden}
}

// Internal wraps an unexpected failure. The wrapped error is for logs only and
// never reaches the caller.
func Internal(err error) *AppError {
	return &AppError{Code: "INTERNAL_ERROR", Message: "Server error", Status: http.StatusInternalServerError, Err: err}
}

var (
	ErrBookingNotFound     = NotFound("Booking not found")
	ErrRideHistoryNotFound = NotFound("Ride history not found")
	ErrStudentNotFound     = NotFound("Student not found")
	ErrUserNotFound        = NotFound("User not found")

	ErrInvalidCredentials = Auth("Invalid email or password")
	ErrInvalidResetToken  = Validation("Invalid or expired reset token.")

	// ErrHistoryExists is the unique-index rejection of a second history
	// record for the same booking. The lifecycle manager treats it as a
	// no-op.
	ErrHistoryExists = Conflict("Ride history already exists for booking")
)

// Get converts err to an AppError, mapping anything unknown to an opaque 500.
func Get(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// Is reports whether err is an AppError with the same code.
func Is(err error, target *AppError) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == target.Code
}
