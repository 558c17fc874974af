package parser

import (
	"testing"
	"time"

	"github.com/fazi9228/cs-data-processor/internal/model"
)

func cellsOf(t *testing.T, table *model.Table, name string) []model.Cell {
	t.Helper()
	col := table.Column(name)
	if col == nil {
		t.Fatalf("column %q missing", name)
	}
	return col.Cells
}

func TestTransformSheet_LiveChat(t *testing.T) {
	t.Parallel()

	sheet := &model.RawSheet{
		Name:     "chats",
		Filename: "SF_live.xlsx",
		Headers:  []string{"Chat Key", "Agent", "Start Time", "Created By: Full Name", "Wait Time"},
		Rows: [][]model.Cell{
			{"k1", "Ana", "05/03/2021 14:30", "Importer", "12"},
			{"k2", "Ben", "not a date", "Importer", ""},
		},
	}
	table, _, err := TransformSheet(ClassifiedSheet{Sheet: sheet, Type: model.RecordTypeLiveChat})
	if err != nil {
		t.Fatalf("transform: %v", err)
	}

	if got, want := table.RowCount(), 2; got != want {
		t.Fatalf("row count: got=%d want=%d", got, want)
	}

	start := cellsOf(t, table, "Start Time")
	if start[0] != time.Date(2021, 3, 5, 14, 30, 0, 0, time.UTC) {
		t.Fatalf("Start Time[0]: got=%v", start[0])
	}
	if start[1] != nil {
		t.Fatalf("Start Time[1]: got=%v want=nil", start[1])
	}

	// Derived calendar fields follow the primary date; rows with a bad date
	// keep nulls instead of disappearing.
	if got := cellsOf(t, table, "Month")[0]; got != "March 2021" {
		t.Fatalf("Month: got=%v", got)
	}
	if got := cellsOf(t, table, "Week")[0]; got != 9.0 {
		t.Fatalf("Week: got=%v", got)
	}
	if got := cellsOf(t, table, "Day")[0]; got != "Friday" {
		t.Fatalf("Day: got=%v", got)
	}
	if got := cellsOf(t, table, "Hours")[0]; got != "2 PM - 3 PM" {
		t.Fatalf("Hours: got=%v", got)
	}
	if got := cellsOf(t, table, "Month")[1]; got != nil {
		t.Fatalf("Month[1]: got=%v want=nil", got)
	}

	// Exact-name passthrough for canonical columns without a pattern.
	if got := cellsOf(t, table, "Created By: Full Name")[0]; got != "Importer" {
		t.Fatalf("Created By: got=%v", got)
	}

	// Request/Close Date are messaging-only.
	for _, name := range []string{"Request Date", "Close Date"} {
		for i, c := range cellsOf(t, table, name) {
			if c != nil {
				t.Fatalf("%s[%d]: got=%v want=nil", name, i, c)
			}
		}
	}
	if got := cellsOf(t, table, "Channel")[0]; got != "SF" {
		t.Fatalf("Channel: got=%v", got)
	}
}

func TestTransformSheet_MessagingRules(t *testing.T) {
	t.Parallel()

	sheet := &model.RawSheet{
		Name:    "sessions",
		Headers: []string{"Messaging Session Name", "Session Owner: Full Name", "Wait Time", "Duration (Minutes)", "Request Date"},
		Rows: [][]model.Cell{
			{"s1", "Ana", "30", "2.5", "05/03/2021"},
			{"s2", "Ben", "45", "", "06/03/2021"},
		},
	}
	table, _, err := TransformSheet(ClassifiedSheet{Sheet: sheet, Type: model.RecordTypeMessaging})
	if err != nil {
		t.Fatalf("transform: %v", err)
	}

	// Wait Time is nulled even when the source column has values.
	for i, c := range cellsOf(t, table, "Wait Time") {
		if c != nil {
			t.Fatalf("Wait Time[%d]: got=%v want=nil", i, c)
		}
	}

	secs := cellsOf(t, table, "Chat Duration (sec)")
	if secs[0] != 150.0 {
		t.Fatalf("Chat Duration (sec)[0]: got=%v want=150", secs[0])
	}
	if secs[1] != nil {
		t.Fatalf("Chat Duration (sec)[1]: got=%v want=nil", secs[1])
	}

	// Messaging keeps its Request Date.
	if got := cellsOf(t, table, "Request Date")[0]; got != time.Date(2021, 3, 5, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("Request Date: got=%v", got)
	}
	if got := cellsOf(t, table, "Channel")[0]; got != "Messaging" {
		t.Fatalf("Channel: got=%v", got)
	}
}

func TestTransformSheet_Case(t *testing.T) {
	t.Parallel()

	sheet := &model.RawSheet{
		Name:    "cases",
		Headers: []string{"Case Number", "Case Owner", "Case: Created Date/Time", "Age"},
		Rows: [][]model.Cell{
			{"00123", "Ana", "05/03/2021 14:30", "3"},
			{"00124", "Ben", nil, "abc"},
		},
	}
	table, _, err := TransformSheet(ClassifiedSheet{Sheet: sheet, Type: model.RecordTypeCaseData})
	if err != nil {
		t.Fatalf("transform: %v", err)
	}

	if got, want := table.RowCount(), 2; got != want {
		t.Fatalf("row count: got=%d want=%d", got, want)
	}
	if got := cellsOf(t, table, "case_created_date")[0]; got != time.Date(2021, 3, 5, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("case_created_date: got=%v", got)
	}
	if got := cellsOf(t, table, "Hours only")[0]; got != 14.0 {
		t.Fatalf("Hours only: got=%v", got)
	}
	if got := cellsOf(t, table, "Hours Range")[0]; got != "2 PM - 3 PM" {
		t.Fatalf("Hours Range: got=%v", got)
	}
	if got := cellsOf(t, table, "Age")[1]; got != nil {
		t.Fatalf("Age[1]: got=%v want=nil", got)
	}
	// Case numbers are text: leading zeros survive.
	if got := cellsOf(t, table, "Case Number")[0]; got != "00123" {
		t.Fatalf("Case Number: got=%v", got)
	}
}

func TestTransformSheet_ChatRating(t *testing.T) {
	t.Parallel()

	sheet := &model.RawSheet{
		Name:    "feedback",
		Headers: []string{"GetFeedback Response: Created Date", "Post-Chat Rating", "ChatKey", "Chat Transcript Name"},
		Rows: [][]model.Cell{
			{"05/03/2021", "4", "ck-1", "CT-0001"},
		},
	}
	table, _, err := TransformSheet(ClassifiedSheet{Sheet: sheet, Type: model.RecordTypeChatRating})
	if err != nil {
		t.Fatalf("transform: %v", err)
	}

	if got := cellsOf(t, table, "Rating")[0]; got != 4.0 {
		t.Fatalf("Rating: got=%v", got)
	}
	if got := cellsOf(t, table, "chat_case_id")[0]; got != "ck-1" {
		t.Fatalf("chat_case_id: got=%v", got)
	}
	if got := cellsOf(t, table, "chat_case_number")[0]; got != "CT-0001" {
		t.Fatalf("chat_case_number: got=%v", got)
	}
	if got := cellsOf(t, table, "Reason")[0]; got != "Chat Feedback" {
		t.Fatalf("Reason: got=%v", got)
	}
	if got := cellsOf(t, table, "Source")[0]; got != "Chat" {
		t.Fatalf("Source: got=%v", got)
	}
}

func TestTransformSheet_UnknownTypeFails(t *testing.T) {
	t.Parallel()

	sheet := &model.RawSheet{Name: "x", Headers: []string{"a"}, Rows: [][]model.Cell{{"1"}}}
	if _, _, err := TransformSheet(ClassifiedSheet{Sheet: sheet, Type: model.RecordTypeUnknown}); err == nil {
		t.Fatalf("expected error for unknown record type")
	}
}
