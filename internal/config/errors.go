package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents the category of a configuration error
type ErrorType int

const (
	// ErrTypeIO indicates the configuration file could not be read or written
	ErrTypeIO ErrorType = iota
	// ErrTypeParse indicates malformed YAML or an unsupported schema version
	ErrTypeParse
	// ErrTypeValidation indicates a preset or preference with invalid values
	ErrTypeValidation
	// ErrTypeNotFound indicates an unknown preset name
	ErrTypeNotFound
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeIO:
		return "I/O Error"
	case ErrTypeParse:
		return "Parse Error"
	case ErrTypeValidation:
		return "Validation Error"
	case ErrTypeNotFound:
		return "Not Found"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// ConfigError represents an error loading, saving or resolving configuration
type ConfigError struct {
	Type    ErrorType // Category of error
	Message string    // Human-readable error message
	Path    string    // Configuration file involved (if any)
	Err     error     // Underlying error (if any)
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new I/O error
func NewIOError(path, message string, err error) *ConfigError {
	return &ConfigError{Type: ErrTypeIO, Message: message, Path: path, Err: err}
}

// NewParseError creates a new parse error
func NewParseError(path, message string, err error) *ConfigError {
	return &ConfigError{Type: ErrTypeParse, Message: message, Path: path, Err: err}
}

// NewValidationError creates a new validation error. All problems are joined
// into the wrapped error.
func NewValidationError(message string, problems []error) *ConfigError {
	return &ConfigError{Type: ErrTypeValidation, Message: message, Err: errors.Join(problems...)}
}

// NewNotFoundError creates a new error for an unknown preset
func NewNotFoundError(name string) *ConfigError {
	return &ConfigError{Type: ErrTypeNotFound, Message: fmt.Sprintf("preset %q not found", name)}
}

func hasType(err error, t ErrorType) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr) && cfgErr.Type == t
}

// IsIOError checks if an error is an I/O error
func IsIOError(err error) bool {
	return hasType(err, ErrTypeIO)
}

// IsParseError checks if an error is a parse error
func IsParseError(err error) bool {
	return hasType(err, ErrTypeParse)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return hasType(err, ErrTypeValidation)
}

// IsNotFoundError checks if an error is an unknown preset error
func IsNotFoundError(err error) bool {
	return hasType(err, ErrTypeNotFound)
}

// Hint returns user-friendly troubleshooting advice for an error
func Hint(err error) string {
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		return "An unexpected error occurred. Please try again."
	}

	switch cfgErr.Type {
	case ErrTypeIO:
		return strings.Join([]string{
			"The configuration file could not be accessed.",
			"Troubleshooting:",
			"  • Check the permissions of " + displayPath(cfgErr.Path),
			"  • Point --config at a writable location",
		}, "\n")

	case ErrTypeParse:
		return strings.Join([]string{
			"The configuration file is not valid YAML for this version.",
			"Troubleshooting:",
			"  • Check " + displayPath(cfgErr.Path) + " for indentation errors",
			"  • Make sure the file starts with \"version: 1\"",
			"  • Move the file away to start over with the built-in presets",
		}, "\n")

	case ErrTypeValidation:
		return strings.Join([]string{
			"A preset has invalid section settings.",
			"Troubleshooting:",
			"  • Every preset needs at least one section",
			"  • Minimum must not exceed maximum",
			"  • Run \"multispin presets show <name>\" to inspect it",
		}, "\n")

	case ErrTypeNotFound:
		return "Run \"multispin presets list\" to see the available presets."

	default:
		return "An error occurred. Please check the error message for details."
	}
}

func displayPath(path string) string {
	if path == "" {
		return "the configuration file"
	}
	return path
}
