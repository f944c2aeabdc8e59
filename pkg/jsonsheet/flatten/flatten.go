// Package flatten converts field/value/confidence JSON documents into rows.
package flatten

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/ukaji3/jsonsheet-go/pkg/jsonsheet/models"
)

// TimestampLayout is the layout of the Processed_Timestamp cell.
const TimestampLayout = "2006-01-02 15:04:05"

// DefaultMissing is rendered for an absent or null value/confidence.
const DefaultMissing = "None"

// Options configures flattening.
type Options struct {
	// Missing replaces an absent or null value/confidence.
	Missing string
}

// DefaultOptions returns default flattening options.
func DefaultOptions() Options {
	return Options{Missing: DefaultMissing}
}

// Flatten turns one document into a row of "<value>,<confidence>" cells
// followed by the Processed_Timestamp cell.
func Flatten(data []byte, now time.Time, opts Options) (models.Row, error) {
	doc, err := Decode(data)
	if err != nil {
		return models.Row{}, err
	}

	row := models.NewRow()
	for _, key := range doc.Keys {
		f := doc.Fields[key]
		row.Set(key, render(f.Value, opts.Missing)+","+render(f.Confidence, opts.Missing))
	}
	row.Set(models.TimestampColumn, now.Format(TimestampLayout))
	return row, nil
}

// Decode parses a document, keeping the order of its top-level keys.
func Decode(data []byte) (*models.Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, &ParseError{Err: fmt.Errorf("top level is %s, want object", describe(tok))}
	}

	doc := &models.Document{Fields: make(map[string]models.Field)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, &ParseError{Err: err}
		}
		key := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, &ParseError{Err: err}
		}
		if !isObject(raw) {
			return nil, &ShapeError{Field: key, Got: kind(raw)}
		}
		var f models.Field
		if err := json.Unmarshal(raw, &f); err != nil {
			return nil, &ParseError{Err: err}
		}

		if _, dup := doc.Fields[key]; !dup {
			doc.Keys = append(doc.Keys, key)
		}
		doc.Fields[key] = f
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, &ParseError{Err: err}
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &ParseError{Err: fmt.Errorf("unexpected data after top-level object")}
	}
	return doc, nil
}

// render returns the text of a raw JSON value. Booleans are written
// True/False to match the None placeholder.
func render(raw json.RawMessage, missing string) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return missing
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err == nil {
			return buf.String()
		}
	case 't':
		return "True"
	case 'f':
		return "False"
	default:
		return formatNumber(string(raw))
	}
	return string(raw)
}

func isObject(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '{'
}

func kind(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "empty"
	}
	switch raw[0] {
	case '[':
		return "array"
	case '"':
		return "string"
	case 'n':
		return "null"
	case 't', 'f':
		return "boolean"
	}
	return "number"
}

func describe(tok json.Token) string {
	switch tok.(type) {
	case json.Delim:
		return "array"
	case string:
		return "string"
	case nil:
		return "null"
	case bool:
		return "boolean"
	}
	return "number"
}
