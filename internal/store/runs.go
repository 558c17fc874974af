package store

import (
	"fmt"
	"time"
)

// ProcessRun is one processing run's audit record.
type ProcessRun struct {
	ID              string     `json:"id"`
	StartedAt       time.Time  `json:"startedAt"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
	Status          string     `json:"status"`
	SourceFiles     string     `json:"sourceFiles"`
	TotalSheets     int        `json:"totalSheets"`
	ProcessedSheets int        `json:"processedSheets"`
	SkippedSheets   int        `json:"skippedSheets"`
	ChatRows        int        `json:"chatRows"`
	CaseRows        int        `json:"caseRows"`
	RatingRows      int        `json:"ratingRows"`
	ErrorMessage    string     `json:"errorMessage,omitempty"`
}

// RunSheet is the per-sheet classification outcome within a run.
type RunSheet struct {
	RunID      string  `json:"runId"`
	Filename   string  `json:"filename"`
	SheetName  string  `json:"sheetName"`
	RecordType string  `json:"recordType"`
	Confidence float64 `json:"confidence"`
	RowCount   int     `json:"rowCount"`
	Status     string  `json:"status"`
	Warnings   string  `json:"warnings,omitempty"`
}

// RunCounts summarizes a finished run.
type RunCounts struct {
	TotalSheets     int
	ProcessedSheets int
	SkippedSheets   int
	ChatRows        int
	CaseRows        int
	RatingRows      int
}

// CreateRun records the start of a processing run.
func (s *Store) CreateRun(id, sourceFiles string) error {
	_, err := s.db.Exec(`
		INSERT INTO process_runs (id, source_files, status)
		VALUES (?, ?, 'processing')
	`, id, sourceFiles)
	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}
	return nil
}

// CompleteRun finalizes a run with its status and counters.
func (s *Store) CompleteRun(id, status string, counts RunCounts, errorMessage string) error {
	_, err := s.db.Exec(`
		UPDATE process_runs SET
			total_sheets = ?,
			processed_sheets = ?,
			skipped_sheets = ?,
			chat_rows = ?,
			case_rows = ?,
			rating_rows = ?,
			status = ?,
			error_message = ?,
			completed_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, counts.TotalSheets, counts.ProcessedSheets, counts.SkippedSheets,
		counts.ChatRows, counts.CaseRows, counts.RatingRows, status, errorMessage, id)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// AddRunSheet records one sheet's classification outcome.
func (s *Store) AddRunSheet(sheet RunSheet) error {
	_, err := s.db.Exec(`
		INSERT INTO run_sheets (run_id, filename, sheet_name, record_type, confidence, row_count, status, warnings)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, sheet.RunID, sheet.Filename, sheet.SheetName, sheet.RecordType, sheet.Confidence, sheet.RowCount, sheet.Status, sheet.Warnings)
	if err != nil {
		return fmt.Errorf("failed to add run sheet: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(limit int) ([]ProcessRun, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`
		SELECT id, started_at, completed_at, status, source_files,
			total_sheets, processed_sheets, skipped_sheets,
			chat_rows, case_rows, rating_rows, error_message
		FROM process_runs
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []ProcessRun
	for rows.Next() {
		var r ProcessRun
		if err := rows.Scan(&r.ID, &r.StartedAt, &r.CompletedAt, &r.Status, &r.SourceFiles,
			&r.TotalSheets, &r.ProcessedSheets, &r.SkippedSheets,
			&r.ChatRows, &r.CaseRows, &r.RatingRows, &r.ErrorMessage); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// RunSheets returns the per-sheet records of one run in insertion order.
func (s *Store) RunSheets(runID string) ([]RunSheet, error) {
	rows, err := s.db.Query(`
		SELECT run_id, filename, sheet_name, record_type, confidence, row_count, status, warnings
		FROM run_sheets
		WHERE run_id = ?
		ORDER BY id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query run sheets: %w", err)
	}
	defer rows.Close()

	var sheets []RunSheet
	for rows.Next() {
		var sh RunSheet
		if err := rows.Scan(&sh.RunID, &sh.Filename, &sh.SheetName, &sh.RecordType,
			&sh.Confidence, &sh.RowCount, &sh.Status, &sh.Warnings); err != nil {
			return nil, fmt.Errorf("failed to scan run sheet: %w", err)
		}
		sheets = append(sheets, sh)
	}
	return sheets, rows.Err()
}
