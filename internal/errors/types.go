package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeSource     ErrorType = "source"
	ErrorTypeVocabulary ErrorType = "vocabulary"
	ErrorTypeCache      ErrorType = "cache"
	ErrorTypeInternal   ErrorType = "internal"
)

// WachtError is a structured error type with context.
type WachtError struct {
	Type        ErrorType
	Code        string
	Message     string
	Cause       error
	Context     map[string]interface{}
	Recoverable bool
}

// Error implements the error interface.
func (e *WachtError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *WachtError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison on type and code.
func (e *WachtError) Is(target error) bool {
	var t *WachtError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithContext adds context information to the error.
func (e *WachtError) WithContext(key string, value interface{}) *WachtError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// Well-known error codes.
const (
	CodeSourceUnavailable      = "source_unavailable"
	CodeInsufficientVocabulary = "insufficient_vocabulary"
	CodeCacheCorruption        = "cache_corruption"
)

// Error creation functions

// NewConfigError creates a configuration error. Configuration errors are
// fatal and must surface before any generation attempt.
func NewConfigError(code, message string) *WachtError {
	return &WachtError{
		Type:        ErrorTypeConfig,
		Code:        code,
		Message:     message,
		Recoverable: false,
	}
}

// NewSourceError creates a word-source error.
func NewSourceError(code, message string, cause error) *WachtError {
	return &WachtError{
		Type:        ErrorTypeSource,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: true,
	}
}

// NewVocabularyError creates a vocabulary error.
func NewVocabularyError(code, message string) *WachtError {
	return &WachtError{
		Type:        ErrorTypeVocabulary,
		Code:        code,
		Message:     message,
		Recoverable: true,
	}
}

// NewCacheError creates a cache error.
func NewCacheError(code, message string, cause error) *WachtError {
	return &WachtError{
		Type:        ErrorTypeCache,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: true,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(code, message string, cause error) *WachtError {
	return &WachtError{
		Type:        ErrorTypeInternal,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: false,
	}
}

// IsSourceUnavailable reports whether err means both the cache and the
// remote fetch failed.
func IsSourceUnavailable(err error) bool {
	return errors.Is(err, &WachtError{Type: ErrorTypeSource, Code: CodeSourceUnavailable})
}

// IsInsufficientVocabulary reports whether err means fewer distinct words
// were available than the constraints require.
func IsInsufficientVocabulary(err error) bool {
	return errors.Is(err, &WachtError{Type: ErrorTypeVocabulary, Code: CodeInsufficientVocabulary})
}

// IsCacheCorruption reports whether err is a cache integrity failure.
func IsCacheCorruption(err error) bool {
	return errors.Is(err, &WachtError{Type: ErrorTypeCache, Code: CodeCacheCorruption})
}

// IsRecoverable determines if an error is recoverable.
func IsRecoverable(err error) bool {
	var wachtErr *WachtError
	if errors.As(err, &wachtErr) {
		return wachtErr.Recoverable
	}

	return false
}
