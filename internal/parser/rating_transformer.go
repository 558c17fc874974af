package parser

import "github.com/fazi9228/cs-data-processor/internal/model"

// transformRating builds the canonical rating table. Ratings carry their
// calendar fields in the export itself, so nothing is derived here; the
// per-source constants (Reason, Source) arrive through the mapping.
func transformRating(sheet *model.RawSheet, mapping FieldMapping) *model.Table {
	rows := sheet.RowCount()
	out := model.NewTable()

	for _, field := range model.RatingSchema {
		cells := canonicalCells(sheet, field, mapping, rows)
		out.SetColumn(field, CoerceCells(cells, model.FieldTypeOf(model.FamilyRating, field)))
	}

	return out
}
