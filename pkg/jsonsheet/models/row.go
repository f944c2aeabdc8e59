package models

import "fmt"

// TimestampColumn is the synthetic column stamped on every row.
const TimestampColumn = "Processed_Timestamp"

// Row is one flattened document or one row read back from the output table.
type Row struct {
	// Keys lists column names in insertion order.
	Keys []string
	// Cells maps column name to cell value: string, int64, float64 or bool.
	Cells map[string]interface{}
}

// NewRow returns an empty Row.
func NewRow() Row {
	return Row{Cells: make(map[string]interface{})}
}

// Set assigns a cell, recording the key on first use.
func (r *Row) Set(key string, value interface{}) {
	if r.Cells == nil {
		r.Cells = make(map[string]interface{})
	}
	if _, ok := r.Cells[key]; !ok {
		r.Keys = append(r.Keys, key)
	}
	r.Cells[key] = value
}

// Value returns the typed cell value for key, or nil.
func (r Row) Value(key string) interface{} {
	return r.Cells[key]
}

// Get returns the cell text for key, or "" when the row has no such column.
func (r Row) Get(key string) string {
	switch v := r.Cells[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
