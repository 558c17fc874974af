package parser

import (
	"fmt"

	"github.com/fazi9228/cs-data-processor/internal/model"
)

// TransformSheet converts one classified sheet into its family's canonical
// table: resolve the column mapping, coerce every field to its semantic
// type, apply the per-type rules and compute the derived calendar fields.
// The returned table always has exactly the sheet's row count; a mismatch
// is a bug and surfaces as an error, never as silent truncation.
func TransformSheet(cs ClassifiedSheet) (*model.Table, []string, error) {
	family, ok := cs.Type.Family()
	if !ok {
		return nil, nil, fmt.Errorf("sheet %q: record type %s maps to no master table", cs.Sheet.Name, cs.Type)
	}

	mapping := MapColumns(cs.Sheet.Headers, cs.Type)
	warnings := ValidateMapping(cs.Sheet, cs.Type, mapping)

	var table *model.Table
	switch family {
	case model.FamilyChat:
		table = transformChat(cs.Sheet, cs.Type, mapping)
	case model.FamilyCase:
		table = transformCase(cs.Sheet)
	case model.FamilyRating:
		table = transformRating(cs.Sheet, mapping)
	}

	if got, want := table.RowCount(), cs.Sheet.RowCount(); got != want {
		return nil, warnings, fmt.Errorf("sheet %q: transform produced %d rows, source has %d", cs.Sheet.Name, got, want)
	}
	return table, warnings, nil
}

// canonicalCells resolves one canonical field's source cells: a mapped
// constant, the mapped source column, a source column with the exact
// canonical name, or all-null when the sheet has nothing for it.
func canonicalCells(sheet *model.RawSheet, field string, mapping FieldMapping, rows int) []model.Cell {
	if src, ok := mapping[field]; ok {
		if src.Constant != "" {
			cells := make([]model.Cell, rows)
			for i := range cells {
				cells[i] = src.Constant
			}
			return cells
		}
		if cells := sheet.ColumnByHeader(src.Column); cells != nil {
			return cells
		}
	}
	if cells := sheet.ColumnByHeader(field); cells != nil {
		return cells
	}
	return make([]model.Cell, rows)
}
