package models

// Table is an ordered collection of rows sharing a column set.
type Table struct {
	// Columns is the union of row keys in first-appearance order.
	Columns []string
	// Rows holds rows in append order.
	Rows []Row

	seen map[string]bool
}

// NewTable builds a table from rows.
func NewTable(rows ...Row) *Table {
	t := &Table{}
	t.Append(rows...)
	return t
}

// Append adds rows, extending Columns with keys not seen before.
func (t *Table) Append(rows ...Row) {
	if t.seen == nil {
		t.seen = make(map[string]bool, len(t.Columns))
		for _, c := range t.Columns {
			t.seen[c] = true
		}
	}
	for _, row := range rows {
		for _, k := range row.Keys {
			if !t.seen[k] {
				t.seen[k] = true
				t.Columns = append(t.Columns, k)
			}
		}
		t.Rows = append(t.Rows, row)
	}
}

// AddColumn registers a column even if no row carries it.
func (t *Table) AddColumn(name string) {
	t.Append()
	if !t.seen[name] {
		t.seen[name] = true
		t.Columns = append(t.Columns, name)
	}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Concat returns prior's rows followed by next's rows.
// Columns are prior's columns followed by next's unseen columns.
func Concat(prior, next *Table) *Table {
	out := &Table{}
	if prior != nil {
		for _, c := range prior.Columns {
			out.AddColumn(c)
		}
		out.Append(prior.Rows...)
	}
	if next != nil {
		for _, c := range next.Columns {
			out.AddColumn(c)
		}
		out.Append(next.Rows...)
	}
	return out
}
