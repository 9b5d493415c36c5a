package jsonutil

import (
	"errors"
	"strings"
	"testing"
)

func TestUnmarshalWithContext(t *testing.T) {
	type TestStruct struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{
			name:    "valid JSON",
			data:    []byte(`{"name":"test"}`),
			wantErr: false,
		},
		{
			name:    "invalid JSON",
			data:    []byte(`not json`),
			wantErr: true,
		},
		{
			name:    "empty",
			data:    nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v TestStruct
			err := UnmarshalWithContext(tt.data, &v, "test context")
			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalWithContext() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !strings.HasPrefix(err.Error(), "test context: ") {
				t.Errorf("error %q missing context prefix", err)
			}
			if !tt.wantErr && v.Name != "test" {
				t.Errorf("UnmarshalWithContext() v.Name = %q, want %q", v.Name, "test")
			}
		})
	}
}

func TestUnmarshalWithContext_EmptyIsErrEmpty(t *testing.T) {
	var v map[string]any
	err := UnmarshalWithContext([]byte{}, &v, "body")
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}

func TestReadLimited(t *testing.T) {
	var v struct {
		Error string `json:"error"`
	}
	if err := ReadLimited(strings.NewReader(`{"error":"nope"}`), 1024, &v, "body"); err != nil {
		t.Fatalf("ReadLimited: %v", err)
	}
	if v.Error != "nope" {
		t.Errorf("Error = %q, want %q", v.Error, "nope")
	}

	// Truncated by the limit: no longer valid JSON.
	if err := ReadLimited(strings.NewReader(`{"error":"nope"}`), 5, &v, "body"); err == nil {
		t.Error("expected error for truncated body")
	}
}
