package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func row(kv ...string) Row {
	r := NewRow()
	for i := 0; i+1 < len(kv); i += 2 {
		r.Set(kv[i], kv[i+1])
	}
	return r
}

func TestRowSet(t *testing.T) {
	var r Row
	r.Set("b", "1")
	r.Set("a", "2")
	r.Set("b", "3")

	assert.Equal(t, []string{"b", "a"}, r.Keys)
	assert.Equal(t, "3", r.Get("b"))
	assert.Equal(t, "", r.Get("missing"))
}

func TestTableColumnsFirstAppearance(t *testing.T) {
	table := NewTable(
		row("x", "1", TimestampColumn, "t1"),
		row("y", "2", TimestampColumn, "t2"),
		row("x", "3", "z", "4"),
	)

	assert.Equal(t, []string{"x", TimestampColumn, "y", "z"}, table.Columns)
	assert.Equal(t, 3, table.Len())
}

func TestConcat(t *testing.T) {
	prior := NewTable(row("a", "1", "b", "2"))
	prior.AddColumn("unused")
	next := NewTable(row("b", "3", "c", "4"), row("d", "5"))

	got := Concat(prior, next)

	assert.Equal(t, []string{"a", "b", "unused", "c", "d"}, got.Columns)
	assert.Equal(t, 3, got.Len())
	assert.Equal(t, "1", got.Rows[0].Get("a"))
	assert.Equal(t, "", got.Rows[0].Get("c"))
	assert.Equal(t, "", got.Rows[1].Get("a"))
	assert.Equal(t, "4", got.Rows[1].Get("c"))
	assert.Equal(t, "5", got.Rows[2].Get("d"))

	// inputs are left as they were
	assert.Equal(t, []string{"a", "b", "unused"}, prior.Columns)
	assert.Equal(t, 2, next.Len())
}

func TestConcatNil(t *testing.T) {
	next := NewTable(row("a", "1"))
	got := Concat(nil, next)
	assert.Equal(t, []string{"a"}, got.Columns)
	assert.Equal(t, 1, got.Len())
}
