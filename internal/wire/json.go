package wire

import (
	"bytes"
	"encoding/json"
	"errors"
)

// DecodeObject parses raw as a JSON object keyed by field name. Unparseable
// input yields MalformedInputError; parseable input of another kind yields
// TypeMismatchError.
func DecodeObject(raw []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		var ute *json.UnmarshalTypeError
		if errors.As(err, &ute) {
			return nil, &TypeMismatchError{Field: ute.Field, Expected: "object"}
		}
		return nil, &MalformedInputError{Err: err}
	}
	return fields, nil
}

// IsNull reports whether a field value is absent or the JSON null literal.
func IsNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// DecodeString decodes a required string field.
func DecodeString(field string, raw json.RawMessage) (string, error) {
	if IsNull(raw) {
		return "", &MissingFieldError{Field: field}
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", &TypeMismatchError{Field: field, Expected: "string"}
	}
	return s, nil
}

// DecodeBool decodes a required boolean field.
func DecodeBool(field string, raw json.RawMessage) (bool, error) {
	if IsNull(raw) {
		return false, &MissingFieldError{Field: field}
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false, &TypeMismatchError{Field: field, Expected: "bool"}
	}
	return b, nil
}
