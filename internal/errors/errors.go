// Package errors defines the error codes reported by spritesplit.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode classifies a failure for reporting and exit handling.
type ErrorCode string

const (
	// Raised before any extraction work starts.
	ErrorUsage  ErrorCode = "USAGE"
	ErrorConfig ErrorCode = "CONFIG"
	ErrorDecode ErrorCode = "DECODE"

	// Raised by the background-removal collaborator, before extraction.
	ErrorBackgroundRemoval ErrorCode = "BACKGROUND_REMOVAL"

	// Raised while writing sprites.
	ErrorExport ErrorCode = "EXPORT"
)

// SplitError is a classified error with an optional cause.
type SplitError struct {
	Code    ErrorCode
	Message string
	Path    string
	Cause   error
}

func (e *SplitError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

func (e *SplitError) Unwrap() error {
	return e.Cause
}

// CodeOf returns the code of the first SplitError in err's chain, or "".
func CodeOf(err error) ErrorCode {
	var se *SplitError
	if stderrors.As(err, &se) {
		return se.Code
	}
	return ""
}

// IsUsage reports whether err is a command-line usage error.
func IsUsage(err error) bool {
	return CodeOf(err) == ErrorUsage
}

func NewUsageError(format string, args ...interface{}) *SplitError {
	return &SplitError{
		Code:    ErrorUsage,
		Message: fmt.Sprintf(format, args...),
	}
}

func NewConfigError(path string, cause error) *SplitError {
	return &SplitError{
		Code:    ErrorConfig,
		Message: "invalid configuration",
		Path:    path,
		Cause:   cause,
	}
}

func NewDecodeError(path string, cause error) *SplitError {
	return &SplitError{
		Code:    ErrorDecode,
		Message: "cannot read image",
		Path:    path,
		Cause:   cause,
	}
}

func NewBackgroundRemovalError(method string, cause error) *SplitError {
	return &SplitError{
		Code:    ErrorBackgroundRemoval,
		Message: fmt.Sprintf("background removal failed (%s)", method),
		Cause:   cause,
	}
}

func NewExportError(path string, cause error) *SplitError {
	return &SplitError{
		Code:    ErrorExport,
		Message: "cannot write sprite",
		Path:    path,
		Cause:   cause,
	}
}
