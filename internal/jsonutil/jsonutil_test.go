package jsonutil

import (
	"errors"
	"io"
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
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v TestStruct
			err := UnmarshalWithContext(tt.data, &v, "test context")
			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalWithContext() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.HasPrefix(err.Error(), "test context: ") {
				t.Errorf("UnmarshalWithContext() error = %q, want context prefix", err)
			}
			if !tt.wantErr && v.Name != "test" {
				t.Errorf("UnmarshalWithContext() v.Name = %q, want %q", v.Name, "test")
			}
		})
	}
}

func TestDecodeWithContext(t *testing.T) {
	var v map[string]int
	if err := DecodeWithContext(strings.NewReader(`{"a":1}`), &v, "decode"); err != nil {
		t.Fatalf("DecodeWithContext() error = %v", err)
	}
	if v["a"] != 1 {
		t.Errorf("DecodeWithContext() v[a] = %d, want 1", v["a"])
	}

	err := DecodeWithContext(strings.NewReader(``), &v, "decode")
	if err == nil {
		t.Fatal("DecodeWithContext() on empty input should fail")
	}
	if !errors.Is(err, io.EOF) {
		t.Errorf("DecodeWithContext() error should wrap io.EOF, got %v", err)
	}
}

func TestTypeOf(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"object with type", `{"$type":"app.bsky.embed.images#view","images":[]}`, "app.bsky.embed.images#view"},
		{"object without type", `{"uri":"at://x"}`, ""},
		{"not an object", `[1,2]`, ""},
		{"invalid", `{`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TypeOf([]byte(tt.data)); got != tt.want {
				t.Errorf("TypeOf(%s) = %q, want %q", tt.data, got, tt.want)
			}
		})
	}
}

func TestIsNull(t *testing.T) {
	if !IsNull(nil) || !IsNull([]byte("null")) {
		t.Error("IsNull should accept nil and null")
	}
	if IsNull([]byte("{}")) {
		t.Error("IsNull({}) = true, want false")
	}
}
