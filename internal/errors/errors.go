// Package errors provides structured error types and exit codes for Simflow.
package errors

import (
	"fmt"
)

// Exit codes returned by the simflow process.
const (
	ExitSuccess          = 0 // All requested tests passed
	ExitRuntimeError     = 1 // Runtime error (stage failed, test failed, etc.)
	ExitConfigError      = 2 // Configuration error (invalid config, etc.)
	ExitEnvironmentError = 3 // Environment error (toolchain not found, spawn failure, etc.)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindNotFound
	KindValidation
	KindEnvironment
)

// SimflowError is the base error type for Simflow.
type SimflowError struct {
	Kind    ErrorKind
	Message string
	Stage   string // Pipeline stage name if applicable (compile, elaborate, simulate)
	Test    string // Test name if applicable
	Cause   error  // Underlying error
}

func (e *SimflowError) Error() string {
	if e.Stage != "" && e.Test != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Stage, e.Test, e.Message)
	}
	if e.Stage != "" {
		return fmt.Sprintf("[%s] %s", e.Stage, e.Message)
	}
	return e.Message
}

func (e *SimflowError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *SimflowError) ExitCode() int {
	switch e.Kind {
	case KindConfig, KindValidation:
		return ExitConfigError
	case KindEnvironment:
		return ExitEnvironmentError
	default:
		return ExitRuntimeError
	}
}

// New creates a new runtime error.
func New(message string) *SimflowError {
	return &SimflowError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *SimflowError {
	return New(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string) *SimflowError {
	return &SimflowError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *SimflowError {
	return Config(fmt.Sprintf(format, args...))
}

// Environment creates a new environment error.
func Environment(message string) *SimflowError {
	return &SimflowError{
		Kind:    KindEnvironment,
		Message: message,
	}
}

// Environmentf creates a new environment error with formatting.
func Environmentf(format string, args ...interface{}) *SimflowError {
	return Environment(fmt.Sprintf(format, args...))
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *SimflowError {
	return &SimflowError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// StageError creates an error for a specific pipeline stage.
// Test may be empty for the shared compile and elaborate stages.
func StageError(stage, test, message string) *SimflowError {
	return &SimflowError{
		Kind:    KindRuntime,
		Stage:   stage,
		Test:    test,
		Message: message,
	}
}

// NotFound creates a not found error.
func NotFound(what, name string) *SimflowError {
	return &SimflowError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found: %s", what, name),
	}
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if se, ok := err.(*SimflowError); ok {
		return se.ExitCode()
	}
	return ExitRuntimeError
}
