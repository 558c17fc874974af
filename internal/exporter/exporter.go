package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/fazi9228/cs-data-processor/internal/model"
)

// Exporter writes master tables to xlsx workbooks. Output formatting is
// fixed per column type so downstream reports read dates and numbers
// consistently regardless of how the source exports formatted them.
type Exporter struct {
	dateFormat   string
	numberFormat string
}

// NewExporter creates an exporter with the given cell formats.
func NewExporter(dateFormat, numberFormat string) *Exporter {
	if dateFormat == "" {
		dateFormat = "mm/dd/yyyy hh:mm:ss"
	}
	if numberFormat == "" {
		numberFormat = "0.00"
	}
	return &Exporter{dateFormat: dateFormat, numberFormat: numberFormat}
}

// sheetNames maps a family to its output sheet name.
var sheetNames = map[model.Family]string{
	model.FamilyChat:   "Chat Master",
	model.FamilyCase:   "Case Master",
	model.FamilyRating: "Rating Master",
}

// Workbook builds an in-memory workbook holding one master table.
func (e *Exporter) Workbook(family model.Family, table *model.Table) (*excelize.File, error) {
	sheetName, ok := sheetNames[family]
	if !ok {
		return nil, fmt.Errorf("no output sheet for family %s", family)
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	if err := e.writeTable(f, sheetName, family, table); err != nil {
		_ = f.Close()
		return nil, err
	}
	f.SetActiveSheet(0)
	return f, nil
}

// ExportMaster writes one master table to path.
func (e *Exporter) ExportMaster(family model.Family, table *model.Table, path string) error {
	f, err := e.Workbook(family, table)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func (e *Exporter) writeTable(f *excelize.File, sheetName string, family model.Family, table *model.Table) error {
	headers := table.ColumnNames()
	headerRow := make([]interface{}, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &headerRow); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#DDEBF7"}},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return fmt.Errorf("failed to resolve last column: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header row: %w", err)
	}

	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &e.dateFormat})
	if err != nil {
		return fmt.Errorf("failed to create date style: %w", err)
	}
	numberStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &e.numberFormat})
	if err != nil {
		return fmt.Errorf("failed to create number style: %w", err)
	}

	rows := table.RowCount()
	for i := 0; i < rows; i++ {
		row := make([]interface{}, len(table.Columns))
		for j := range table.Columns {
			row[j] = table.Columns[j].Cells[i]
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to resolve row cell: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	for j, name := range headers {
		colName, err := excelize.ColumnNumberToName(j + 1)
		if err != nil {
			return fmt.Errorf("failed to resolve column name: %w", err)
		}
		width := 18.0
		switch model.FieldTypeOf(family, name) {
		case model.FieldDate:
			width = 22.0
			if rows > 0 {
				if err := f.SetCellStyle(sheetName, colName+"2", fmt.Sprintf("%s%d", colName, rows+1), dateStyle); err != nil {
					return fmt.Errorf("failed to style date column %s: %w", name, err)
				}
			}
		case model.FieldNumber:
			if rows > 0 {
				if err := f.SetCellStyle(sheetName, colName+"2", fmt.Sprintf("%s%d", colName, rows+1), numberStyle); err != nil {
					return fmt.Errorf("failed to style number column %s: %w", name, err)
				}
			}
		}
		if err := f.SetColWidth(sheetName, colName, colName, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	return nil
}
