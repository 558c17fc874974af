package parser

import "github.com/fazi9228/cs-data-processor/internal/model"

// transformCase builds the canonical case table. Case exports already use
// the canonical header names, so every field resolves by exact name and
// absent columns stay null.
func transformCase(sheet *model.RawSheet) *model.Table {
	rows := sheet.RowCount()
	out := model.NewTable()

	for _, field := range model.CaseSchema {
		cells := sheet.ColumnByHeader(field)
		if cells == nil {
			cells = make([]model.Cell, rows)
		}
		out.SetColumn(field, CoerceCells(cells, model.FieldTypeOf(model.FamilyCase, field)))
	}

	if dates := primaryDateCells(out, model.CasePrimaryDateColumns); dates != nil {
		out.SetColumn("case_created_date", deriveCells(dates, dateOnly))
		out.SetColumn("Month", deriveCells(dates, monthLabel))
		out.SetColumn("Week", deriveCells(dates, isoWeek))
		out.SetColumn("Day", deriveCells(dates, weekdayName))
		out.SetColumn("Hours only", deriveCells(dates, hourOfDay))
		out.SetColumn("Hours Range", deriveCells(dates, hourRange))
	}

	return out
}
