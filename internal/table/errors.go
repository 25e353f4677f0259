package table

import (
	"errors"
	"fmt"
	"strings"
)

// LoadErrorCode categorizes source-loading failures.
type LoadErrorCode string

const (
	// ErrCodeSourceNotFound indicates the source path is missing or unreadable.
	ErrCodeSourceNotFound LoadErrorCode = "SOURCE_NOT_FOUND"

	// ErrCodeSourceFormat indicates the file is malformed or required
	// columns are absent.
	ErrCodeSourceFormat LoadErrorCode = "SOURCE_FORMAT"
)

// LoadError is a structured source-loading error. Both codes are fatal
// to a batch run: without a loadable source no order can be resolved.
type LoadError struct {
	Code    LoadErrorCode
	Path    string
	Message string

	// Missing lists required columns that were not found (SOURCE_FORMAT only).
	Missing []string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if len(e.Missing) > 0 {
		msg += fmt.Sprintf(" (missing columns: %s)", strings.Join(e.Missing, ", "))
	}
	if e.Path != "" {
		msg += fmt.Sprintf(" [%s]", e.Path)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a SOURCE_NOT_FOUND load error.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	var le *LoadError
	return errors.As(err, &le) && le.Code == ErrCodeSourceNotFound
}

// IsFormat reports whether err is a SOURCE_FORMAT load error.
func IsFormat(err error) bool {
	var le *LoadError
	return errors.As(err, &le) && le.Code == ErrCodeSourceFormat
}

func notFoundError(path, message string, err error) *LoadError {
	return &LoadError{Code: ErrCodeSourceNotFound, Path: path, Message: message, Err: err}
}

func formatError(path, message string, err error) *LoadError {
	return &LoadError{Code: ErrCodeSourceFormat, Path: path, Message: message, Err: err}
}
