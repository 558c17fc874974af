package parser

import (
	"time"

	"github.com/fazi9228/cs-data-processor/internal/model"
)

// Calendar derivations computed from each family's primary date column.
// Every helper takes a coerced date cell and returns nil for non-dates, so
// rows with unparseable dates keep null derived fields instead of dropping.

func monthLabel(c model.Cell) model.Cell {
	if t, ok := c.(time.Time); ok {
		return t.Format("January 2006")
	}
	return nil
}

func isoWeek(c model.Cell) model.Cell {
	if t, ok := c.(time.Time); ok {
		_, week := t.ISOWeek()
		return float64(week)
	}
	return nil
}

func weekdayName(c model.Cell) model.Cell {
	if t, ok := c.(time.Time); ok {
		return t.Format("Monday")
	}
	return nil
}

func hourOfDay(c model.Cell) model.Cell {
	if t, ok := c.(time.Time); ok {
		return float64(t.Hour())
	}
	return nil
}

// hourRange renders the hour bucket, e.g. "3 PM - 4 PM".
func hourRange(c model.Cell) model.Cell {
	if t, ok := c.(time.Time); ok {
		return t.Format("3 PM") + " - " + t.Add(time.Hour).Format("3 PM")
	}
	return nil
}

// dateOnly truncates a date cell to midnight.
func dateOnly(c model.Cell) model.Cell {
	if t, ok := c.(time.Time); ok {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}
	return nil
}

// deriveCells maps a derivation over a date column.
func deriveCells(dates []model.Cell, fn func(model.Cell) model.Cell) []model.Cell {
	out := make([]model.Cell, len(dates))
	for i, c := range dates {
		out[i] = fn(c)
	}
	return out
}

// primaryDateCells returns the first preferred column that exists in the
// table with at least one non-null cell. A table with no usable date column
// yields nil and the derived fields stay null.
func primaryDateCells(t *model.Table, preference []string) []model.Cell {
	for _, name := range preference {
		col := t.Column(name)
		if col == nil {
			continue
		}
		for _, c := range col.Cells {
			if c != nil {
				return col.Cells
			}
		}
	}
	return nil
}
