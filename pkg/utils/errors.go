package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// CustomError represents a custom application error
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (e *CustomError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

// NewInvalidInputError returns an error for requests rejected before any
// processing is attempted
func NewInvalidInputError(message string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// NewExtractionError returns an error for PDFs that could not be read
func NewExtractionError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusInternalServerError,
		Message: "PDF text extraction failed",
		Detail:  detail,
	}
}

// NewStructuringError returns an error for completion-service failures and
// completions that could not be parsed as JSON
func NewStructuringError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusInternalServerError,
		Message: "CV structuring failed",
		Detail:  detail,
	}
}

// StatusCode returns the HTTP status carried by err, falling back to 500
func StatusCode(err error) int {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Code
	}
	return http.StatusInternalServerError
}
