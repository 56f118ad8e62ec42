package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrContract is matched by every ContractError through errors.Is.
var ErrContract = stdErrors.New("contract violation")

// ParseError represents a manifest or settings decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures manifest or settings validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ContractError reports a caller passing a value the operation never accepts,
// such as an unknown section id or a gallery index outside the list.
type ContractError struct {
	Op     string
	Detail string
}

// NewContractError constructs a ContractError for the named operation.
func NewContractError(op, format string, args ...any) error {
	return &ContractError{Op: op, Detail: fmt.Sprintf(format, args...)}
}

func (e *ContractError) Error() string {
	if e == nil {
		return ""
	}
	if e.Op != "" {
		return fmt.Sprintf("contract violation in %s: %s", e.Op, e.Detail)
	}
	return fmt.Sprintf("contract violation: %s", e.Detail)
}

// Is reports ErrContract as a match so callers can test the category.
func (e *ContractError) Is(target error) bool {
	return target == ErrContract
}
