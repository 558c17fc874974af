package parser

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/fazi9228/cs-data-processor/internal/model"
)

// serialEpoch is the spreadsheet day-serial epoch: serial 1 is 1899-12-31,
// matching the historical Lotus offset used by Excel exports.
var serialEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

// CoerceDate converts a raw cell into a timestamp. Numbers are day-count
// serials; strings are parsed day-first, then month-first, then with a
// permissive layout set. Unparseable values become nil; it never fails.
func CoerceDate(v model.Cell) model.Cell {
	switch val := v.(type) {
	case nil:
		return nil
	case time.Time:
		return val
	case float64:
		return serialToTime(val)
	case int:
		return serialToTime(float64(val))
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return nil
		}
		if serial, err := strconv.ParseFloat(s, 64); err == nil {
			return serialToTime(serial)
		}
		if t, ok := parseDateString(s); ok {
			return t
		}
		return nil
	}
	return nil
}

// serialToTime converts a day-count serial (fractional part = time of day).
func serialToTime(serial float64) time.Time {
	seconds := math.Round(serial * 86400)
	return serialEpoch.Add(time.Duration(seconds) * time.Second)
}

// Layout groups tried in order: day-first wins on ambiguous values like
// 05/03/2021, month-first is the fallback, then permissive ISO-ish forms.
var dayFirstLayouts = []string{
	"2/1/2006 15:04:05",
	"2/1/2006 15:04",
	"2/1/2006",
}

var monthFirstLayouts = []string{
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006",
}

var permissiveLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/1/2 15:04:05",
	"2006/1/2",
	"2-Jan-2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

func parseDateString(s string) (time.Time, bool) {
	for _, layouts := range [][]string{dayFirstLayouts, monthFirstLayouts, permissiveLayouts} {
		for _, layout := range layouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// CoerceNumber parses a raw cell as a float. Idempotent: an already-numeric
// value passes through untouched. Anything unparseable, including blank-ish
// strings, becomes nil.
func CoerceNumber(v model.Cell) model.Cell {
	switch val := v.(type) {
	case nil:
		return nil
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return nil
		}
		s = strings.ReplaceAll(s, ",", "") // thousands separators
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
		return nil
	}
	return nil
}

// Placeholder tokens produced by upstream tooling for missing values. Only
// these exact strings collapse to nil; every other string is preserved
// byte-for-byte, including values that happen to look numeric.
var nullTokens = map[string]bool{
	"":     true,
	"nan":  true,
	"NaT":  true,
	"None": true,
}

// CoerceText renders a raw cell as a normalized string. Lossless for
// genuine text and idempotent.
func CoerceText(v model.Cell) model.Cell {
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		if nullTokens[val] {
			return nil
		}
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case time.Time:
		return val.Format("2006-01-02 15:04:05")
	case bool:
		return strconv.FormatBool(val)
	}
	return nil
}

// CoerceCells applies the field-type coercer to every cell of a column.
func CoerceCells(cells []model.Cell, ft model.FieldType) []model.Cell {
	out := make([]model.Cell, len(cells))
	for i, c := range cells {
		switch ft {
		case model.FieldDate:
			out[i] = CoerceDate(c)
		case model.FieldNumber:
			out[i] = CoerceNumber(c)
		default:
			out[i] = CoerceText(c)
		}
	}
	return out
}
