package exporter

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/fazi9228/cs-data-processor/internal/model"
)

func TestExporter_WorkbookRoundTrip(t *testing.T) {
	t.Parallel()

	table := model.NewTable()
	table.SetColumn("Agent", []model.Cell{"Ana", "Ben"})
	table.SetColumn("Chat Key", []model.Cell{"k1", "k2"})
	table.SetColumn("Start Time", []model.Cell{
		time.Date(2021, 3, 5, 14, 30, 0, 0, time.UTC), nil,
	})
	table.SetColumn("Post-Chat Rating", []model.Cell{4.0, nil})
	master := table.Project(model.ChatSchema)

	e := NewExporter("", "")
	path := filepath.Join(t.TempDir(), "chat_master.xlsx")
	if err := e.ExportMaster(model.FamilyChat, master, path); err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open exported workbook: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })

	rows, err := f.GetRows("Chat Master")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	// Header plus both data rows; merging never drops rows.
	if len(rows) != 3 {
		t.Fatalf("rows: got=%d want=3", len(rows))
	}
	if rows[0][0] != model.ChatSchema[0] {
		t.Fatalf("header[0]: got=%q want=%q", rows[0][0], model.ChatSchema[0])
	}

	v, err := f.GetCellValue("Chat Master", "A2")
	if err != nil {
		t.Fatalf("read A2: %v", err)
	}
	if v != "Ana" {
		t.Fatalf("A2: got=%q want=Ana", v)
	}
}

func TestExporter_UnknownFamilyFails(t *testing.T) {
	t.Parallel()

	e := NewExporter("", "")
	if _, err := e.Workbook(model.Family("bogus"), model.NewTable()); err == nil {
		t.Fatalf("expected error for unknown family")
	}
}
