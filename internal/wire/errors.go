package wire

import (
	"encoding/json"
	"errors"
	"fmt"
)

// MalformedInputError means the payload was not parseable as JSON at all.
type MalformedInputError struct {
	Err error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input: %v", e.Err)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// TypeMismatchError means a field exists but holds the wrong JSON kind,
// e.g. a string where a boolean was expected.
type TypeMismatchError struct {
	Field    string
	Expected string
}

func (e *TypeMismatchError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("type mismatch: expected %s", e.Expected)
	}
	return fmt.Sprintf("type mismatch in field %q: expected %s", e.Field, e.Expected)
}

// MissingFieldError means a required field was absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// UnknownResponseTypeError means the responseType tag matched no known tag.
type UnknownResponseTypeError struct {
	Tag string
}

func (e *UnknownResponseTypeError) Error() string {
	return fmt.Sprintf("unknown response type %q", e.Tag)
}

// UnknownSymbolError means an enum wire label matched no known member.
// This is the expected path when a server adds a new failure reason the
// client does not yet know about, so it must stay distinguishable from
// structurally malformed input.
type UnknownSymbolError struct {
	Enum  string
	Label string
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown %s symbol %q", e.Enum, e.Label)
}

// EmptyEnvelopeError means none of an envelope's variant fields was
// populated when at least one was required.
type EmptyEnvelopeError struct {
	Context string
}

func (e *EmptyEnvelopeError) Error() string {
	return fmt.Sprintf("empty envelope: %s has no populated variant", e.Context)
}

// Classify maps an encoding/json error into the decode taxonomy.
// Syntax errors become MalformedInputError, type errors become
// TypeMismatchError; anything already typed passes through.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		return &MalformedInputError{Err: err}
	}

	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) {
		return &TypeMismatchError{Field: ute.Field, Expected: ute.Type.String()}
	}

	return err
}

// IsUnknownSymbol reports whether err is an UnknownSymbolError. Callers
// that want forward compatibility with server-added reasons check this
// before treating a decode failure as fatal.
func IsUnknownSymbol(err error) bool {
	var target *UnknownSymbolError
	return errors.As(err, &target)
}
