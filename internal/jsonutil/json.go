// internal/jsonutil/json.go
package jsonutil

import (
	"io"

	"github.com/goccy/go-json"
)

// NewEncoder returns an encoder that leaves '<', '>' and '&' unescaped;
// locus descriptions contain them.
func NewEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc
}

// EncodePretty writes v as two-space indented JSON.
func EncodePretty(w io.Writer, v any) error {
	enc := NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// EncodeLine writes v as one compact JSON line.
func EncodeLine(w io.Writer, v any) error { return NewEncoder(w).Encode(v) }
