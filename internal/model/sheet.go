package model

// RawSheet is one uploaded sheet's tabular data before classification.
// Headers and rows are read once and never mutated by the pipeline.
type RawSheet struct {
	Name     string   `json:"name"`     // sheet name inside the workbook
	Filename string   `json:"filename"` // source file name, used as a classification hint
	Headers  []string `json:"headers"`
	Rows     [][]Cell `json:"rows"` // row-major, ragged rows allowed (short rows read as null)
}

// RowCount returns the number of data rows.
func (s *RawSheet) RowCount() int {
	return len(s.Rows)
}

// ColumnCells returns the cells of one source column, padding short rows with nil.
func (s *RawSheet) ColumnCells(idx int) []Cell {
	cells := make([]Cell, len(s.Rows))
	for i, row := range s.Rows {
		if idx < len(row) {
			cells[i] = row[idx]
		}
	}
	return cells
}

// ColumnByHeader returns the cells of the column whose header equals name
// exactly, or nil when no such header exists. Duplicated headers resolve to
// the first occurrence.
func (s *RawSheet) ColumnByHeader(name string) []Cell {
	for i, h := range s.Headers {
		if h == name {
			return s.ColumnCells(i)
		}
	}
	return nil
}

// SheetInfo is the lightweight listing returned for an uploaded workbook.
type SheetInfo struct {
	Name     string `json:"name"`
	RowCount int    `json:"rowCount"`
}
