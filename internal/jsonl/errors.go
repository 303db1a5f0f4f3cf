package jsonl

import (
	"errors"
	"fmt"
)

// Failure kinds. Every per-line failure unwraps to one of these.
var (
	ErrParse          = errors.New("invalid JSON")
	ErrMissingField   = errors.New("missing required field")
	ErrFieldType      = errors.New("unexpected field type")
	ErrMalformedNode  = errors.New("malformed node")
	ErrRecursionLimit = errors.New("node nesting exceeds limit")
)

// LineError reports a failure on one input line.
type LineError struct {
	Input string
	Line  int
	Err   error
}

// Error implements error.
func (e *LineError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("%s: line %d: %v", e.Input, e.Line, e.Err)
}

// Unwrap returns the underlying failure.
func (e *LineError) Unwrap() error {
	return e.Err
}

// MissingField returns an ErrMissingField naming the key.
func MissingField(key string) error {
	return fmt.Errorf("%w %q", ErrMissingField, key)
}

// FieldType returns an ErrFieldType naming the key and the wanted type.
func FieldType(key, want string) error {
	return fmt.Errorf("%w: %q must be %s", ErrFieldType, key, want)
}
