// Package reuseerrors provides structured error handling for the reuse
// toolkit with error categorization, key-value context and stack traces.
//
// # Basic Usage
//
//	// Create a new error
//	err := reuseerrors.New(reuseerrors.ErrorTypeValidation, "factory must not be nil")
//
//	// Add context
//	err = err.WithDetail("pool", "particles")
//
//	// Wrap existing errors
//	if err := config.Load(path, &cfg); err != nil {
//	    return reuseerrors.Wrap(err, reuseerrors.ErrorTypeConfig, "loading scenario file").
//	        WithDetail("path", path)
//	}
//
// # Error Types
//
// Errors are categorized by type, which drives handling strategies and
// keeps failure reporting consistent across the toolkit. The toolkit is
// a synchronous, single-attempt system: nothing here is retryable, so
// the taxonomy carries no retry semantics.
//
// # Thread Safety
//
// Error instances are not safe for concurrent modification. Finish
// WithDetail calls before sharing an error across goroutines.
package reuseerrors

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrorType represents the category of error.
type ErrorType string

const (
	// ErrorTypeInternal represents internal invariant violations.
	ErrorTypeInternal ErrorType = "internal"
	// ErrorTypeValidation represents invalid arguments or construction inputs.
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeConfig represents configuration errors.
	ErrorTypeConfig ErrorType = "config"
	// ErrorTypeCapability represents unsupported-operation errors.
	ErrorTypeCapability ErrorType = "capability"
)

// Error is a structured error with a category, a human-readable message,
// an optional cause, key-value details and the call stack captured at
// the point of creation.
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Details map[string]interface{}
	Stack   []StackFrame
}

// StackFrame represents a single frame in the call stack.
type StackFrame struct {
	Function string // Fully qualified function name
	File     string // Source file path
	Line     int    // Line number in source file
}

// Error implements the error interface, returning a formatted message
// that includes the error type, message, and cause (if present).
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// over the error chain.
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail adds a key-value detail to the error. It returns the error
// so calls can be chained.
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// New creates a new error with the given type and message, capturing the
// call stack at the point of creation.
func New(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Stack:   captureStack(2),
	}
}

// Wrap wraps an existing error with additional context, preserving the
// original as the cause. If the error is already a structured Error its
// stack trace is preserved. Returns nil when err is nil.
func Wrap(err error, errType ErrorType, message string) *Error {
	if err == nil {
		return nil
	}

	var existing *Error
	if errors.As(err, &existing) {
		return &Error{
			Type:    errType,
			Message: message,
			Cause:   err,
			Stack:   existing.Stack,
		}
	}

	return &Error{
		Type:    errType,
		Message: message,
		Cause:   err,
		Stack:   captureStack(2),
	}
}

// IsType reports whether err (or anything in its chain) is a structured
// Error of the given type.
func IsType(err error, errType ErrorType) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Type == errType
}

// captureStack captures the current call stack up to maxFrames deep,
// skipping the given number of frames from the top.
func captureStack(skip int) []StackFrame {
	const maxFrames = 32
	frames := make([]StackFrame, 0, maxFrames)

	for i := skip; i < maxFrames+skip; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}

		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}

		frames = append(frames, StackFrame{
			Function: fn.Name(),
			File:     file,
			Line:     line,
		})
	}

	return frames
}
