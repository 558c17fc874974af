package model

import "testing"

func TestSchemaShapes(t *testing.T) {
	t.Parallel()

	if got := len(ChatSchema); got != 55 {
		t.Fatalf("chat schema length: got=%d want=55", got)
	}
	if got := len(CaseSchema); got != 37 {
		t.Fatalf("case schema length: got=%d want=37", got)
	}
	if got := len(RatingSchema); got != 15 {
		t.Fatalf("rating schema length: got=%d want=15", got)
	}

	// The chat schema carries both "Week" and the legacy "Week " with a
	// trailing space; they are distinct columns.
	var week, weekSpace bool
	for _, name := range ChatSchema {
		switch name {
		case "Week":
			week = true
		case "Week ":
			weekSpace = true
		}
	}
	if !week || !weekSpace {
		t.Fatalf("chat schema week columns: plain=%v trailing=%v", week, weekSpace)
	}

	for _, schema := range [][]string{ChatSchema, CaseSchema, RatingSchema} {
		seen := make(map[string]bool, len(schema))
		for _, name := range schema {
			if seen[name] {
				t.Fatalf("duplicate column %q", name)
			}
			seen[name] = true
		}
	}
}

func TestFieldTypeOf(t *testing.T) {
	t.Parallel()

	if FieldTypeOf(FamilyChat, "Start Time") != FieldDate {
		t.Fatalf("Start Time must be a date")
	}
	if FieldTypeOf(FamilyChat, "Wait Time") != FieldNumber {
		t.Fatalf("Wait Time must be a number")
	}
	if FieldTypeOf(FamilyChat, "Agent") != FieldText {
		t.Fatalf("Agent must default to text")
	}
	if FieldTypeOf(FamilyCase, "case_created_date") != FieldDate {
		t.Fatalf("case_created_date must be a date")
	}
	if FieldTypeOf(FamilyRating, "Rating") != FieldNumber {
		t.Fatalf("Rating must be a number")
	}
	// Unknown family falls back to text.
	if FieldTypeOf(Family("bogus"), "anything") != FieldText {
		t.Fatalf("unknown family must default to text")
	}
}

func TestTableProjectConservesRows(t *testing.T) {
	t.Parallel()

	tbl := NewTable()
	tbl.SetColumn("Agent", []Cell{"Ana", "Ben", nil})
	tbl.SetColumn("Extra", []Cell{1, 2, 3})

	out := tbl.Project([]string{"Agent", "Chat Key"})
	if out.RowCount() != 3 {
		t.Fatalf("row count: got=%d want=3", out.RowCount())
	}
	if len(out.Columns) != 2 {
		t.Fatalf("columns: got=%d want=2", len(out.Columns))
	}
	for i, c := range out.Column("Chat Key").Cells {
		if c != nil {
			t.Fatalf("Chat Key[%d]: got=%v want=nil", i, c)
		}
	}
	if out.HasColumn("Extra") {
		t.Fatalf("projection kept a column outside the schema")
	}
}
