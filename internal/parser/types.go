package parser

import "github.com/fazi9228/cs-data-processor/internal/model"

// Signature is the detection rule set for one record type. Fragments are
// lowercase and matched as substrings against normalized headers.
type Signature struct {
	Type          model.RecordType `json:"type"`
	Required      []string         `json:"required"`
	Strong        []string         `json:"strong"`
	Channel       []string         `json:"channel"`
	MinConfidence float64          `json:"minConfidence"`
}

// TypeScore is one candidate's score with the indicators that matched,
// kept for audit display in the preview UI.
type TypeScore struct {
	Type       model.RecordType `json:"type"`
	Confidence float64          `json:"confidence"`
	Indicators []string         `json:"indicators"`
}

// ClassificationResult is the outcome of classifying one sheet.
type ClassificationResult struct {
	Type       model.RecordType `json:"type"`
	Confidence float64          `json:"confidence"`
	Indicators []string         `json:"indicators"`
	Scores     []TypeScore      `json:"scores"`
}

// Pattern is one candidate source-header pattern. Exact patterns must equal
// the normalized header; the rest match as substrings.
type Pattern struct {
	Text  string
	Exact bool
}

// FieldPatterns is the ordered fallback chain for one canonical field.
// Earlier patterns win; evaluation stops at the first header match.
type FieldPatterns struct {
	Field    string
	Patterns []Pattern
}

// FieldSource resolves one canonical field: either a source column (by its
// original header text) or an injected constant.
type FieldSource struct {
	Column   string `json:"column,omitempty"`
	Constant string `json:"constant,omitempty"`
}

// FieldMapping maps canonical field names to their resolved sources for one
// (sheet, record type) pair. Unmatched canonical fields are absent.
type FieldMapping map[string]FieldSource

// ClassifiedSheet pairs a raw sheet with its (detected or overridden) type.
type ClassifiedSheet struct {
	Sheet *model.RawSheet
	Type  model.RecordType
}
