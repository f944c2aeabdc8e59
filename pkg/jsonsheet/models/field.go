// Package models defines data structures for JSON-to-sheet conversion.
package models

import "encoding/json"

// Field is one named entry of an input document.
type Field struct {
	// Value is the raw JSON value (nil if absent).
	Value json.RawMessage `json:"value"`
	// Confidence is the raw JSON confidence (nil if absent).
	Confidence json.RawMessage `json:"confidence"`
}

// Document maps field name to Field, keeping the key order of the source.
type Document struct {
	// Keys lists field names in document order.
	Keys []string
	// Fields maps field name to its entry.
	Fields map[string]Field
}
