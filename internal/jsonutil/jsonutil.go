// Package jsonutil provides shared helpers for decoding XRPC payloads:
// context-wrapped errors and "$type" union probing.
package jsonutil

import (
	"encoding/json"
	"fmt"
	"io"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v any, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// DecodeWithContext reads a single JSON value from r into v and wraps any
// error with the provided context message.
func DecodeWithContext(r io.Reader, v any, context string) error {
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// TypeOf returns the "$type" discriminator of a JSON object.
// Returns an empty string if data is not an object or has no "$type".
func TypeOf(data []byte) string {
	var head struct {
		Type string `json:"$type"`
	}
	if json.Unmarshal(data, &head) != nil {
		return ""
	}
	return head.Type
}

// IsNull reports whether data is absent or the JSON literal null.
func IsNull(data []byte) bool {
	return len(data) == 0 || string(data) == "null"
}
