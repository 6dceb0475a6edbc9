package table

import (
	"fmt"
)

// Table is an ordered collection of named columns. Every cell is held as a
// string; readers coerce non-string values before insertion. A Table handed
// to the anonymizer is never mutated in place, callers always get a copy
// back.
type Table struct {
	columnNames []string
	columns     map[string][]string
}

func NewTable(columnNames []string) *Table {
	t := &Table{
		columnNames: make([]string, len(columnNames)),
		columns:     make(map[string][]string),
	}
	copy(t.columnNames, columnNames)
	for _, name := range columnNames {
		t.columns[name] = []string{}
	}
	return t
}

func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columnNames))
	copy(names, t.columnNames)
	return names
}

func (t *Table) HasColumn(name string) bool {
	_, ok := t.columns[name]
	return ok
}

func (t *Table) RowCount() int {
	if len(t.columnNames) == 0 {
		return 0
	}
	return len(t.columns[t.columnNames[0]])
}

// AddRow appends one cell per column, in column order.
func (t *Table) AddRow(values []string) error {
	if len(values) != len(t.columnNames) {
		return fmt.Errorf("row has %d values, table has %d columns", len(values), len(t.columnNames))
	}
	for i, name := range t.columnNames {
		t.columns[name] = append(t.columns[name], values[i])
	}
	return nil
}

// Row returns the cells of row i in column order.
func (t *Table) Row(i int) []string {
	row := make([]string, len(t.columnNames))
	for j, name := range t.columnNames {
		row[j] = t.columns[name][i]
	}
	return row
}

// Column returns a copy of the named column's cells.
func (t *Table) Column(name string) ([]string, error) {
	cells, ok := t.columns[name]
	if !ok {
		return nil, fmt.Errorf("no such column %q", name)
	}
	out := make([]string, len(cells))
	copy(out, cells)
	return out, nil
}

// SetColumn replaces the named column's cells. The row count must match.
func (t *Table) SetColumn(name string, cells []string) error {
	existing, ok := t.columns[name]
	if !ok {
		return fmt.Errorf("no such column %q", name)
	}
	if len(cells) != len(existing) {
		return fmt.Errorf("column %q has %d rows, got %d cells", name, len(existing), len(cells))
	}
	out := make([]string, len(cells))
	copy(out, cells)
	t.columns[name] = out
	return nil
}

// Copy returns a deep copy of the table.
func (t *Table) Copy() *Table {
	c := NewTable(t.columnNames)
	for name, cells := range t.columns {
		dup := make([]string, len(cells))
		copy(dup, cells)
		c.columns[name] = dup
	}
	return c
}
