package model

// Cell is a single table value: nil, string, float64, int or time.Time.
type Cell = any

// Column is a named, ordered sequence of cells.
type Column struct {
	Name  string `json:"name"`
	Cells []Cell `json:"cells"`
}

// Table is an ordered list of equal-length named columns. It backs both the
// per-sheet typed tables and the merged master tables.
type Table struct {
	Columns []Column `json:"columns"`
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{}
}

// RowCount returns the number of rows (length of the first column).
func (t *Table) RowCount() int {
	if t == nil || len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Cells)
}

// ColumnNames returns the column names in order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the column with the given name, or nil.
func (t *Table) Column(name string) *Column {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i]
		}
	}
	return nil
}

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool {
	return t.Column(name) != nil
}

// SetColumn replaces the named column's cells, appending the column if absent.
func (t *Table) SetColumn(name string, cells []Cell) {
	if col := t.Column(name); col != nil {
		col.Cells = cells
		return
	}
	t.Columns = append(t.Columns, Column{Name: name, Cells: cells})
}

// AddNullColumn appends an all-null column sized to the given row count.
func (t *Table) AddNullColumn(name string, rows int) {
	t.SetColumn(name, make([]Cell, rows))
}

// Project returns a new table with exactly the given columns in the given
// order. Missing columns become all-null; rows are never filtered.
func (t *Table) Project(schema []string) *Table {
	rows := t.RowCount()
	out := NewTable()
	for _, name := range schema {
		if col := t.Column(name); col != nil {
			out.Columns = append(out.Columns, Column{Name: name, Cells: col.Cells})
		} else {
			out.AddNullColumn(name, rows)
		}
	}
	return out
}

// Row returns the cells of a single row in column order.
func (t *Table) Row(i int) []Cell {
	row := make([]Cell, len(t.Columns))
	for j := range t.Columns {
		if i < len(t.Columns[j].Cells) {
			row[j] = t.Columns[j].Cells[i]
		}
	}
	return row
}
