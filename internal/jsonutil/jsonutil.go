// Package jsonutil provides shared helpers for decoding JSON bodies with
// contextual errors.
package jsonutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrEmpty is returned when there is no JSON document to decode.
var ErrEmpty = errors.New("empty JSON body")

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v any, context string) error {
	if len(data) == 0 {
		return fmt.Errorf("%s: %w", context, ErrEmpty)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// ReadLimited reads at most limit bytes from r and unmarshals them into v.
// Bodies longer than limit are truncated and therefore fail to decode.
func ReadLimited(r io.Reader, limit int64, v any, context string) error {
	data, err := io.ReadAll(io.LimitReader(r, limit))
	if err != nil {
		return fmt.Errorf("%s: reading: %w", context, err)
	}
	return UnmarshalWithContext(data, v, context)
}
