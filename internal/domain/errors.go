package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrForbidden    ErrorCode = "FORBIDDEN"

	// Pipeline specific errors
	ErrInvalidSourceURL ErrorCode = "INVALID_SOURCE_URL"
	ErrPipelineFailure  ErrorCode = "PIPELINE_FAILURE"

	// Quiz specific errors
	ErrQuizNotFound ErrorCode = "QUIZ_NOT_FOUND"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(ErrNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(ErrUnauthorized, message, nil)
}

func NewForbiddenError(message string) *DomainError {
	return NewError(ErrForbidden, message, nil)
}

func NewQuizNotFoundError(quizID string) *DomainError {
	return NewError(ErrQuizNotFound, fmt.Sprintf("Quiz not found with ID: %s", quizID), nil)
}

// NewInvalidSourceURLError is raised when the input URL does not match a
// supported video host. It fires before any resource is allocated.
func NewInvalidSourceURLError(url string) *DomainError {
	return NewError(ErrInvalidSourceURL, fmt.Sprintf("Not a supported video URL: %s", url), nil)
}

// NewPipelineFailure wraps any failure from download, transcription,
// generation, response validation or persistence. The message must keep
// enough detail to tell which stage broke.
func NewPipelineFailure(message string, err error) *DomainError {
	return NewError(ErrPipelineFailure, message, err)
}

// NewPipelineFailuref formats the failure message.
func NewPipelineFailuref(err error, format string, args ...interface{}) *DomainError {
	return NewError(ErrPipelineFailure, fmt.Sprintf(format, args...), err)
}

// IsInvalidSourceURL reports whether err is an INVALID_SOURCE_URL domain error.
func IsInvalidSourceURL(err error) bool {
	de, ok := err.(*DomainError)
	return ok && de.Code == ErrInvalidSourceURL
}

// IsPipelineFailure reports whether err is a PIPELINE_FAILURE domain error.
func IsPipelineFailure(err error) bool {
	de, ok := err.(*DomainError)
	return ok && de.Code == ErrPipelineFailure
}
