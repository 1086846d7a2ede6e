// Package table flattens typed dataset records into a named grid of
// string cells, the shape shared by the report, the CSV writer and the
// HTTP API.
package table

import "slices"

// Record is a typed row that knows its schema.
type Record interface {
	Columns() []string
	Values() []string
}

// Table is a named, flattened dataset.
type Table struct {
	Name    string     `json:"name"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// From flattens records into a table. An empty slice still carries the
// schema of R's zero value.
func From[R Record](name string, records []R) Table {
	var zero R
	t := Table{
		Name:    name,
		Columns: append([]string(nil), zero.Columns()...),
		Rows:    make([][]string, len(records)),
	}
	for i, r := range records {
		t.Rows[i] = r.Values()
	}
	return t
}

// NumRows returns the row count.
func (t Table) NumRows() int { return len(t.Rows) }

// NumCols returns the column count.
func (t Table) NumCols() int { return len(t.Columns) }

// Head returns a deep copy of the table limited to its first n rows, so
// callers may edit it without touching t. A negative n keeps every row.
func (t Table) Head(n int) Table {
	if n < 0 || n >= len(t.Rows) {
		n = len(t.Rows)
	}
	rows := make([][]string, n)
	for i := range rows {
		rows[i] = slices.Clone(t.Rows[i])
	}
	return Table{Name: t.Name, Columns: slices.Clone(t.Columns), Rows: rows}
}

// Column returns the cells of the named column and whether it exists.
func (t Table) Column(name string) ([]string, bool) {
	idx := -1
	for i, c := range t.Columns {
		if c == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, false
	}
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[idx]
	}
	return out, true
}
