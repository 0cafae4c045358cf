package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses and chat replies.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

const (
	CodeNotFound       = "WGR_001"
	CodeAccessDenied   = "WGR_002"
	CodeInvalidState   = "WGR_003"
	CodeInvalidInput   = "WGR_004"
	CodeStorageFailure = "SYS_001"
	CodeInvalidToken   = "AUTH_001"
	CodeRateLimited    = "RATE_001"
)

// ---- Wager lifecycle (WGR) ----

func ErrWagerNotFound() *AppError {
	return New(CodeNotFound, "Wager not found", http.StatusNotFound)
}

func ErrAccessDenied(message string) *AppError {
	return New(CodeAccessDenied, message, http.StatusForbidden)
}

func ErrInvalidState(message string) *AppError {
	return New(CodeInvalidState, message, http.StatusConflict)
}

// Validation returns a WGR_004 input error.
func Validation(message string) *AppError {
	return New(CodeInvalidInput, message, http.StatusBadRequest)
}

// ErrInvalidInput wraps a parse or domain validation error as WGR_004.
func ErrInvalidInput(err error) *AppError {
	return Wrap(CodeInvalidInput, err.Error(), http.StatusBadRequest, err)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimited, "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrStorageFailure(err error) *AppError {
	return Wrap(CodeStorageFailure, "Storage failure", http.StatusInternalServerError, err)
}

// HasCode reports whether err is an AppError carrying code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// IsUserRejection reports whether err is a rejection caused by the caller
// (bad input, wrong role, wrong state, unknown wager) rather than a fault.
func IsUserRejection(err error) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	switch appErr.Code {
	case CodeNotFound, CodeAccessDenied, CodeInvalidState, CodeInvalidInput:
		return true
	}
	return false
}
