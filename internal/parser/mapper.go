package parser

import (
	"fmt"
	"strings"

	"github.com/fazi9228/cs-data-processor/internal/model"
)

// MapColumns resolves each canonical field of the record type to a source
// column via its ordered fallback patterns, then injects the per-type
// constants (Channel for chat-likes, Reason/Source for ratings). Given the
// same headers and type, the result is always identical; unmatched fields
// are simply absent.
func MapColumns(headers []string, rt model.RecordType) FieldMapping {
	normalized := normalizeHeaders(headers)
	mapping := make(FieldMapping)

	for _, fp := range fieldPatternsFor(rt) {
		for _, p := range fp.Patterns {
			if idx := matchHeader(normalized, p); idx >= 0 {
				mapping[fp.Field] = FieldSource{Column: headers[idx]}
				break
			}
		}
	}

	if channel, ok := chatChannels[rt]; ok {
		mapping["Channel"] = FieldSource{Constant: channel}
	}
	for field, value := range ratingConstants[rt] {
		mapping[field] = FieldSource{Constant: value}
	}

	return mapping
}

// matchHeader returns the index of the first header matching the pattern,
// or -1.
func matchHeader(normalized []string, p Pattern) int {
	for i, h := range normalized {
		if p.Exact {
			if h == p.Text {
				return i
			}
		} else if strings.Contains(h, p.Text) {
			return i
		}
	}
	return -1
}

// lowNonNullRatio flags mapped columns that are almost entirely empty.
const lowNonNullRatio = 0.10

// ValidateMapping returns advisory data-quality warnings for a resolved
// mapping. Warnings never block processing.
func ValidateMapping(sheet *model.RawSheet, rt model.RecordType, mapping FieldMapping) []string {
	var warnings []string

	if rt.IsChat() {
		for _, field := range []string{"Agent", "Chat Key"} {
			if _, ok := mapping[field]; !ok {
				warnings = append(warnings, fmt.Sprintf("sheet %q: no source column mapped to %q", sheet.Name, field))
			}
		}
	}

	rows := sheet.RowCount()
	if rows == 0 {
		return warnings
	}
	for field, src := range mapping {
		if src.Column == "" {
			continue
		}
		cells := sheet.ColumnByHeader(src.Column)
		nonNull := 0
		for _, c := range cells {
			if !isBlankCell(c) {
				nonNull++
			}
		}
		if ratio := float64(nonNull) / float64(rows); ratio < lowNonNullRatio {
			warnings = append(warnings, fmt.Sprintf("sheet %q: column %q mapped to %q is %.0f%% empty",
				sheet.Name, src.Column, field, (1-ratio)*100))
		}
	}

	return warnings
}

func isBlankCell(c model.Cell) bool {
	if c == nil {
		return true
	}
	if s, ok := c.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}
