package model

import "time"

// Batch status values.
const (
	BatchStatusInProgress = "in_progress"
	BatchStatusCompleted  = "completed"
)

// BatchTypeMultiSheet labels a batch whose sheets carry more than one
// distinct sheet type.
const BatchTypeMultiSheet = "multi-sheet"

// SheetStats aggregates the row outcomes of one populated sheet.
type SheetStats struct {
	Type     SheetType `json:"type"`
	Rows     int       `json:"rows"`
	Success  int       `json:"success"`
	Warnings int       `json:"warnings"`
	Errors   int       `json:"errors"`
}

// ImportBatch is the persisted manifest of one import call.
type ImportBatch struct {
	BatchID     string                `json:"batchId"`
	FileName    string                `json:"fileName"`
	SheetType   string                `json:"sheetType"`
	TotalRows   int                   `json:"totalRows"`
	Status      string                `json:"status"`
	PerSheet    map[string]SheetStats `json:"perSheet"`
	CreatedAt   time.Time             `json:"createdAt"`
	CompletedAt *time.Time            `json:"completedAt,omitempty"`
}

// ImportTotals are the whole-batch counters.
type ImportTotals struct {
	Total    int `json:"total"`
	Success  int `json:"success"`
	Warnings int `json:"warnings"`
	Errors   int `json:"errors"`
}

// RowDetail is one entry of the capped per-row detail list returned to the
// caller for warning and error rows.
type RowDetail struct {
	Sheet      string   `json:"sheet"`
	RowNumber  int      `json:"rowNumber"`
	Status     string   `json:"status"`
	Message    string   `json:"message"`
	Violations []string `json:"violations,omitempty"`
}

// ImportSummary is the structured result of one import call.
type ImportSummary struct {
	BatchID    string                `json:"batchId"`
	FileName   string                `json:"fileName"`
	SheetCount int                   `json:"sheetCount"`
	SheetNames []string              `json:"sheetNames"`
	Totals     ImportTotals          `json:"totals"`
	PerSheet   map[string]SheetStats `json:"perSheet"`
	Details    []RowDetail           `json:"details"`
}
