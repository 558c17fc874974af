package importer

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/fazi9228/cs-data-processor/internal/exporter"
	"github.com/fazi9228/cs-data-processor/internal/model"
	"github.com/fazi9228/cs-data-processor/internal/parser"
	"github.com/fazi9228/cs-data-processor/internal/store"
)

// Coordinator drives a full processing run: read workbooks, classify each
// sheet, transform and merge into the three master tables, export them and
// write the audit trail.
type Coordinator struct {
	store     *store.Store
	exporter  *exporter.Exporter
	exportDir string
}

// NewCoordinator creates a processing coordinator. store may be nil, in
// which case no audit records are written.
func NewCoordinator(st *store.Store, exp *exporter.Exporter, exportDir string) *Coordinator {
	return &Coordinator{
		store:     st,
		exporter:  exp,
		exportDir: exportDir,
	}
}

// ProcessOptions selects the inputs of one run.
type ProcessOptions struct {
	// FilePaths are the uploaded workbooks, processed in order.
	FilePaths []string
	// TypeOverrides pins a record type per sheet, keyed by
	// "filename::sheet". An override always beats classification.
	TypeOverrides map[string]model.RecordType
}

// OverrideKey builds the TypeOverrides key for a sheet.
func OverrideKey(filename, sheetName string) string {
	return filename + "::" + sheetName
}

// ProgressEvent is one progress message streamed to the client.
// Type is one of start/info/warning/sheet_start/sheet_done/error/done.
type ProgressEvent struct {
	Type      string      `json:"type"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// SheetResult is the outcome for one source sheet.
type SheetResult struct {
	Filename   string           `json:"filename"`
	SheetName  string           `json:"sheetName"`
	RecordType model.RecordType `json:"recordType"`
	Confidence float64          `json:"confidence"`
	RowCount   int              `json:"rowCount"`
	Status     string           `json:"status"` // processed/skipped/error
	Warnings   []string         `json:"warnings,omitempty"`
	Errors     []string         `json:"errors,omitempty"`
}

// ProcessReport summarizes a finished run.
type ProcessReport struct {
	RunID           string                  `json:"runId"`
	TotalSheets     int                     `json:"totalSheets"`
	ProcessedSheets int                     `json:"processedSheets"`
	SkippedSheets   int                     `json:"skippedSheets"`
	ChatRows        int                     `json:"chatRows"`
	CaseRows        int                     `json:"caseRows"`
	RatingRows      int                     `json:"ratingRows"`
	Sheets          []SheetResult           `json:"sheets"`
	Outputs         map[model.Family]string `json:"outputs"`
	Duration        time.Duration           `json:"duration"`
}

// Process runs asynchronously and returns the progress channel. The channel
// closes when the run finishes; the final event is either done (with the
// report as data) or error.
func (c *Coordinator) Process(opts ProcessOptions) <-chan ProgressEvent {
	progressChan := make(chan ProgressEvent, 100)

	go func() {
		defer close(progressChan)
		c.doProcess(opts, progressChan)
	}()

	return progressChan
}

// Run executes a full run synchronously, draining progress internally.
func (c *Coordinator) Run(opts ProcessOptions) (*ProcessReport, error) {
	var report *ProcessReport
	var runErr error
	for ev := range c.Process(opts) {
		switch ev.Type {
		case "done":
			if r, ok := ev.Data.(*ProcessReport); ok {
				report = r
			}
		case "error":
			runErr = fmt.Errorf("%s", ev.Message)
		}
	}
	if runErr != nil {
		return nil, runErr
	}
	if report == nil {
		return nil, fmt.Errorf("run produced no report")
	}
	return report, nil
}

func (c *Coordinator) doProcess(opts ProcessOptions, progressChan chan ProgressEvent) {
	startTime := time.Now()
	runID := uuid.New().String()

	names := make([]string, len(opts.FilePaths))
	for i, p := range opts.FilePaths {
		names[i] = filepath.Base(p)
	}

	c.sendProgress(progressChan, ProgressEvent{
		Type:      "start",
		Message:   fmt.Sprintf("Processing %d file(s)", len(opts.FilePaths)),
		Data:      map[string]interface{}{"run_id": runID, "files": names},
		Timestamp: time.Now(),
	})

	if c.store != nil {
		if err := c.store.CreateRun(runID, strings.Join(names, ";")); err != nil {
			c.sendProgress(progressChan, ProgressEvent{
				Type:      "warning",
				Message:   fmt.Sprintf("Failed to record run: %v", err),
				Timestamp: time.Now(),
			})
		}
	}

	report := &ProcessReport{
		RunID:   runID,
		Outputs: make(map[model.Family]string),
	}

	var classified []parser.ClassifiedSheet
	for _, path := range opts.FilePaths {
		sheets, err := ReadWorkbook(path)
		if err != nil {
			c.failRun(progressChan, report, fmt.Sprintf("Failed to read %s: %v", filepath.Base(path), err))
			return
		}
		for _, sheet := range sheets {
			report.TotalSheets++
			cs, result := c.classifySheet(sheet, opts.TypeOverrides, progressChan)
			report.Sheets = append(report.Sheets, result)
			if cs != nil {
				classified = append(classified, *cs)
			} else {
				report.SkippedSheets++
			}
			c.recordSheet(progressChan, runID, result)
		}
	}

	if err := c.buildAndExport(report, classified, progressChan); err != nil {
		c.failRun(progressChan, report, err.Error())
		return
	}

	report.ProcessedSheets = report.TotalSheets - report.SkippedSheets
	report.Duration = time.Since(startTime)

	if c.store != nil {
		if err := c.store.CompleteRun(runID, "completed", store.RunCounts{
			TotalSheets:     report.TotalSheets,
			ProcessedSheets: report.ProcessedSheets,
			SkippedSheets:   report.SkippedSheets,
			ChatRows:        report.ChatRows,
			CaseRows:        report.CaseRows,
			RatingRows:      report.RatingRows,
		}, ""); err != nil {
			c.sendProgress(progressChan, ProgressEvent{
				Type:      "warning",
				Message:   fmt.Sprintf("Failed to finalize run record: %v", err),
				Timestamp: time.Now(),
			})
		}
	}

	c.sendProgress(progressChan, ProgressEvent{
		Type:      "done",
		Message:   "Processing complete",
		Data:      report,
		Timestamp: time.Now(),
	})
}

// classifySheet resolves the record type for one sheet, preferring a manual
// override. It returns nil when the sheet is skipped.
func (c *Coordinator) classifySheet(sheet *model.RawSheet, overrides map[string]model.RecordType, progressChan chan ProgressEvent) (*parser.ClassifiedSheet, SheetResult) {
	c.sendProgress(progressChan, ProgressEvent{
		Type:      "sheet_start",
		Message:   fmt.Sprintf("Classifying sheet %q from %s", sheet.Name, sheet.Filename),
		Data:      map[string]string{"sheet_name": sheet.Name, "filename": sheet.Filename},
		Timestamp: time.Now(),
	})

	result := SheetResult{
		Filename:  sheet.Filename,
		SheetName: sheet.Name,
		RowCount:  sheet.RowCount(),
	}

	if rt, ok := overrides[OverrideKey(sheet.Filename, sheet.Name)]; ok && rt.Valid() {
		result.RecordType = rt
		result.Confidence = 1.0
		result.Status = "processed"
		c.sendProgress(progressChan, ProgressEvent{
			Type:      "info",
			Message:   fmt.Sprintf("Sheet %q pinned to %s by override", sheet.Name, rt),
			Timestamp: time.Now(),
		})
		return &parser.ClassifiedSheet{Sheet: sheet, Type: rt}, result
	}

	res := parser.Classify(sheet.Headers, sheet.Filename)
	result.RecordType = res.Type
	result.Confidence = res.Confidence

	if res.Type == model.RecordTypeUnknown {
		result.Status = "skipped"
		result.Warnings = append(result.Warnings, "record type not recognized")
		c.sendProgress(progressChan, ProgressEvent{
			Type:      "warning",
			Message:   fmt.Sprintf("Sheet %q not recognized, skipping", sheet.Name),
			Data:      map[string]interface{}{"sheet_name": sheet.Name, "scores": res.Scores},
			Timestamp: time.Now(),
		})
		return nil, result
	}

	result.Status = "processed"
	c.sendProgress(progressChan, ProgressEvent{
		Type:    "info",
		Message: fmt.Sprintf("Sheet %q recognized as %s (confidence %.2f)", sheet.Name, res.Type, res.Confidence),
		Data: map[string]interface{}{
			"sheet_name": sheet.Name,
			"type":       res.Type,
			"confidence": res.Confidence,
			"indicators": res.Indicators,
		},
		Timestamp: time.Now(),
	})
	return &parser.ClassifiedSheet{Sheet: sheet, Type: res.Type}, result
}

// failRun marks the run failed in the audit log and emits the error event.
func (c *Coordinator) failRun(progressChan chan ProgressEvent, report *ProcessReport, message string) {
	if c.store != nil {
		_ = c.store.CompleteRun(report.RunID, "failed", store.RunCounts{
			TotalSheets:   report.TotalSheets,
			SkippedSheets: report.SkippedSheets,
		}, message)
	}
	c.sendProgress(progressChan, ProgressEvent{
		Type:      "error",
		Message:   message,
		Timestamp: time.Now(),
	})
}

// recordSheet persists one sheet outcome and streams it.
func (c *Coordinator) recordSheet(progressChan chan ProgressEvent, runID string, result SheetResult) {
	if c.store != nil {
		if err := c.store.AddRunSheet(store.RunSheet{
			RunID:      runID,
			Filename:   result.Filename,
			SheetName:  result.SheetName,
			RecordType: string(result.RecordType),
			Confidence: result.Confidence,
			RowCount:   result.RowCount,
			Status:     result.Status,
			Warnings:   strings.Join(result.Warnings, "; "),
		}); err != nil {
			c.sendProgress(progressChan, ProgressEvent{
				Type:      "warning",
				Message:   fmt.Sprintf("Failed to record sheet %q: %v", result.SheetName, err),
				Timestamp: time.Now(),
			})
		}
	}
}

// buildAndExport merges the classified sheets into master tables and writes
// the output workbooks.
func (c *Coordinator) buildAndExport(report *ProcessReport, classified []parser.ClassifiedSheet, progressChan chan ProgressEvent) error {
	stamp := time.Now().Format("20060102_150405")

	for _, family := range []model.Family{model.FamilyChat, model.FamilyCase, model.FamilyRating} {
		master, warnings, err := parser.BuildMasterTable(family, classified)
		for _, w := range warnings {
			c.sendProgress(progressChan, ProgressEvent{
				Type:      "warning",
				Message:   w,
				Timestamp: time.Now(),
			})
		}
		if err != nil {
			return fmt.Errorf("failed to build %s master: %w", family, err)
		}
		if master == nil {
			continue
		}

		switch family {
		case model.FamilyChat:
			report.ChatRows = master.RowCount()
		case model.FamilyCase:
			report.CaseRows = master.RowCount()
		case model.FamilyRating:
			report.RatingRows = master.RowCount()
		}

		filename := fmt.Sprintf("%s_master_%s.xlsx", family, stamp)
		path := filepath.Join(c.exportDir, filename)
		if err := c.exporter.ExportMaster(family, master, path); err != nil {
			return fmt.Errorf("failed to export %s master: %w", family, err)
		}
		report.Outputs[family] = path

		c.sendProgress(progressChan, ProgressEvent{
			Type:    "sheet_done",
			Message: fmt.Sprintf("%s master: %d rows", family, master.RowCount()),
			Data: map[string]interface{}{
				"family": family,
				"rows":   master.RowCount(),
				"file":   filename,
			},
			Timestamp: time.Now(),
		})
	}
	return nil
}

// ReadWorkbook loads every sheet of an xlsx file into raw sheets.
func ReadWorkbook(path string) ([]*model.RawSheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	filename := filepath.Base(path)
	var sheets []*model.RawSheet
	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
		}
		if len(rows) == 0 {
			continue
		}
		raw := &model.RawSheet{
			Name:     sheetName,
			Filename: filename,
			Headers:  rows[0],
		}
		for _, r := range rows[1:] {
			cells := make([]model.Cell, len(r))
			for i, v := range r {
				cells[i] = v
			}
			raw.Rows = append(raw.Rows, cells)
		}
		sheets = append(sheets, raw)
	}
	return sheets, nil
}

// sendProgress delivers an event without blocking; a full channel drops it.
func (c *Coordinator) sendProgress(ch chan ProgressEvent, event ProgressEvent) {
	select {
	case ch <- event:
	default:
	}
}
