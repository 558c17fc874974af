package parser

import (
	"reflect"
	"testing"

	"github.com/fazi9228/cs-data-processor/internal/model"
)

func TestBuildMaster_Empty(t *testing.T) {
	t.Parallel()

	master, err := BuildMaster(model.FamilyChat, nil)
	if err != nil {
		t.Fatalf("empty input: %v", err)
	}
	if master != nil {
		t.Fatalf("empty input must yield nil master, got %d columns", len(master.Columns))
	}
}

func TestBuildMaster_RowConservationAndOrder(t *testing.T) {
	t.Parallel()

	a := model.NewTable()
	a.SetColumn("Agent", []model.Cell{"Ana", "Ben"})
	a.SetColumn("Chat Key", []model.Cell{"k1", "k2"})

	b := model.NewTable()
	b.SetColumn("Chat Key", []model.Cell{"k3"})

	master, err := BuildMaster(model.FamilyChat, []*model.Table{a, b})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if got, want := master.RowCount(), 3; got != want {
		t.Fatalf("row count: got=%d want=%d", got, want)
	}
	if !reflect.DeepEqual(master.ColumnNames(), model.ChatSchema) {
		t.Fatalf("column order diverges from canonical schema")
	}

	agents := master.Column("Agent").Cells
	if agents[0] != "Ana" || agents[1] != "Ben" || agents[2] != nil {
		t.Fatalf("Agent cells: %v", agents)
	}
	keys := master.Column("Chat Key").Cells
	if keys[2] != "k3" {
		t.Fatalf("Chat Key cells: %v", keys)
	}

	// Columns neither table had are all-null, never dropped.
	for i, c := range master.Column("Visitor IP Address").Cells {
		if c != nil {
			t.Fatalf("Visitor IP Address[%d]: got=%v want=nil", i, c)
		}
	}
}

func TestBuildMasterTable_SkipsOtherFamilies(t *testing.T) {
	t.Parallel()

	chatSheet := &model.RawSheet{
		Name:    "chats",
		Headers: []string{"Chat Key", "Agent"},
		Rows:    [][]model.Cell{{"k1", "Ana"}},
	}
	caseSheet := &model.RawSheet{
		Name:    "cases",
		Headers: []string{"Case Number", "Case Owner"},
		Rows:    [][]model.Cell{{"001", "Ben"}, {"002", "Cho"}},
	}
	unknownSheet := &model.RawSheet{
		Name:    "misc",
		Headers: []string{"whatever"},
		Rows:    [][]model.Cell{{"x"}},
	}

	sheets := []ClassifiedSheet{
		{Sheet: chatSheet, Type: model.RecordTypeLiveChat},
		{Sheet: caseSheet, Type: model.RecordTypeCaseData},
		{Sheet: unknownSheet, Type: model.RecordTypeUnknown},
	}

	chatMaster, _, err := BuildMasterTable(model.FamilyChat, sheets)
	if err != nil {
		t.Fatalf("chat master: %v", err)
	}
	if got, want := chatMaster.RowCount(), 1; got != want {
		t.Fatalf("chat rows: got=%d want=%d", got, want)
	}

	caseMaster, _, err := BuildMasterTable(model.FamilyCase, sheets)
	if err != nil {
		t.Fatalf("case master: %v", err)
	}
	if got, want := caseMaster.RowCount(), 2; got != want {
		t.Fatalf("case rows: got=%d want=%d", got, want)
	}

	ratingMaster, _, err := BuildMasterTable(model.FamilyRating, sheets)
	if err != nil {
		t.Fatalf("rating master: %v", err)
	}
	if ratingMaster != nil {
		t.Fatalf("rating master must be nil when no rating sheets exist")
	}
}
