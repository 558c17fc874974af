package parser

import (
	"strings"

	"github.com/fazi9228/cs-data-processor/internal/model"
)

// transformChat builds the canonical chat table for one chat-like sheet.
func transformChat(sheet *model.RawSheet, rt model.RecordType, mapping FieldMapping) *model.Table {
	rows := sheet.RowCount()
	out := model.NewTable()

	for _, field := range model.ChatSchema {
		cells := canonicalCells(sheet, field, mapping, rows)
		out.SetColumn(field, CoerceCells(cells, model.FieldTypeOf(model.FamilyChat, field)))
	}

	if rt == model.RecordTypeMessaging {
		// Messaging sessions report no queue wait, and the handle time comes
		// in minutes only.
		out.AddNullColumn("Wait Time", rows)
		if minutes := columnByHeaderFold(sheet, "Duration (Minutes)"); minutes != nil {
			secs := make([]model.Cell, rows)
			for i, c := range CoerceCells(minutes, model.FieldNumber) {
				if f, ok := c.(float64); ok {
					secs[i] = f * 60
				}
			}
			out.SetColumn("Chat Duration (sec)", secs)
		}
	} else {
		// Request Date / Close Date exist only on messaging sessions.
		out.AddNullColumn("Request Date", rows)
		out.AddNullColumn("Close Date", rows)
	}

	if dates := primaryDateCells(out, model.ChatPrimaryDateColumns); dates != nil {
		out.SetColumn("Month", deriveCells(dates, monthLabel))
		out.SetColumn("Week", deriveCells(dates, isoWeek))
		out.SetColumn("Day", deriveCells(dates, weekdayName))
		out.SetColumn("Hours", deriveCells(dates, hourRange))
	}

	return out
}

// columnByHeaderFold looks a source column up by case-insensitive header.
func columnByHeaderFold(sheet *model.RawSheet, name string) []model.Cell {
	for i, h := range sheet.Headers {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return sheet.ColumnCells(i)
		}
	}
	return nil
}
