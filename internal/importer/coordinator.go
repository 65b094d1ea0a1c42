package importer

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/mamynavalonar-dev/FLEETPROJECT/internal/model"
	"github.com/mamynavalonar-dev/FLEETPROJECT/internal/parser"
	"github.com/mamynavalonar-dev/FLEETPROJECT/internal/rules"
	"github.com/mamynavalonar-dev/FLEETPROJECT/internal/store"
)

// ErrBadWorkbook marks client-side failures: an unreadable payload or a
// workbook with no sheets. Nothing is persisted in that case.
var ErrBadWorkbook = errors.New("invalid workbook")

// maxDetailEntries caps the per-row detail list returned to the caller.
const maxDetailEntries = 50

// Coordinator drives the sheet-by-sheet, row-by-row import pipeline and owns
// the one transaction that spans the whole workbook.
type Coordinator struct {
	store  *store.Store
	engine *rules.Engine
}

// NewCoordinator creates an import coordinator.
func NewCoordinator(st *store.Store, engine *rules.Engine) *Coordinator {
	return &Coordinator{store: st, engine: engine}
}

// rowOutcome is the result of one processed row after persistence.
type rowOutcome int

const (
	rowSuccess rowOutcome = iota
	rowWarning
	rowError
)

// ImportWorkbook runs the full pipeline over one uploaded workbook. The
// caller receives either a complete summary (possibly containing many
// warnings and errors) or a single error with nothing persisted; a partially
// committed batch is never visible.
func (c *Coordinator) ImportWorkbook(data []byte, fileName string) (*model.ImportSummary, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadWorkbook, err)
	}
	defer f.Close()

	sheetNames := f.GetSheetList()
	if len(sheetNames) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrBadWorkbook)
	}

	batchID := uuid.NewString()
	log.Printf("import started: file=%q batch=%s sheets=%d", fileName, batchID, len(sheetNames))

	tx, err := c.store.BeginTx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	batch := &model.ImportBatch{
		BatchID:  batchID,
		FileName: fileName,
		Status:   model.BatchStatusInProgress,
		PerSheet: map[string]model.SheetStats{},
	}
	if err := c.store.InsertBatchTx(tx, batch); err != nil {
		return nil, err
	}

	summary := &model.ImportSummary{
		BatchID:    batchID,
		FileName:   fileName,
		SheetCount: len(sheetNames),
		SheetNames: sheetNames,
		PerSheet:   map[string]model.SheetStats{},
		Details:    []model.RowDetail{},
	}

	seenTypes := map[model.SheetType]bool{}

	for _, sheetName := range sheetNames {
		sheetRows, err := f.GetRows(sheetName)
		if err != nil {
			log.Printf("import %s: cannot read sheet %q, skipping: %v", batchID, sheetName, err)
			continue
		}
		if len(sheetRows) < 2 {
			// Listed in sheetNames but contributes no manifest entry and no
			// counters.
			log.Printf("import %s: sheet %q is empty, skipping", batchID, sheetName)
			continue
		}

		mappings := parser.MapColumns(sheetRows[0])
		sheetType := parser.RecognizeSheet(sheetName, mappings)
		seenTypes[sheetType] = true

		stats := c.processSheet(tx, summary, mappings, sheetRows, sheetType, sheetName, batchID)
		summary.PerSheet[sheetName] = stats
		batch.PerSheet[sheetName] = stats

		summary.Totals.Success += stats.Success
		summary.Totals.Warnings += stats.Warnings
		summary.Totals.Errors += stats.Errors
	}

	summary.Totals.Total = summary.Totals.Success + summary.Totals.Warnings + summary.Totals.Errors

	batch.SheetType = batchTypeLabel(seenTypes)
	batch.TotalRows = summary.Totals.Total
	batch.Status = model.BatchStatusCompleted
	if err := c.store.FinalizeBatchTx(tx, batch); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit batch: %w", err)
	}

	log.Printf("import completed: batch=%s total=%d success=%d warnings=%d errors=%d",
		batchID, summary.Totals.Total, summary.Totals.Success, summary.Totals.Warnings, summary.Totals.Errors)
	return summary, nil
}

// processSheet folds every data row of one sheet into the sheet tally.
func (c *Coordinator) processSheet(tx *sql.Tx, summary *model.ImportSummary, mappings []parser.ColumnMapping, sheetRows [][]string, sheetType model.SheetType, sheetName, batchID string) model.SheetStats {
	stats := model.SheetStats{Type: sheetType}

	for i := 1; i < len(sheetRows); i++ {
		rowNo := i + 1 // workbook numbering, header is row 1

		rec, ok := c.evaluateRow(mappings, sheetRows[i], sheetType, sheetName, rowNo)
		if !ok {
			continue
		}
		rec.BatchID = batchID

		stats.Rows++
		switch outcome, reason := c.persistRow(tx, rec); outcome {
		case rowSuccess:
			stats.Success++
		case rowWarning:
			stats.Warnings++
			appendDetail(summary, model.RowDetail{
				Sheet:      sheetName,
				RowNumber:  rowNo,
				Status:     "warning",
				Message:    "imported with warnings",
				Violations: rec.Violations,
			})
		case rowError:
			stats.Errors++
			appendDetail(summary, model.RowDetail{
				Sheet:      sheetName,
				RowNumber:  rowNo,
				Status:     "error",
				Message:    "row not imported",
				Violations: []string{reason},
			})
		}
	}

	return stats
}

// evaluateRow is the pure pipeline step: normalize, filter, derive,
// validate. ok is false for rows that are not operations — a blank or totals
// line without a positive litre amount; those rows are excluded from every
// counter and never persisted.
func (c *Coordinator) evaluateRow(mappings []parser.ColumnMapping, cells []string, sheetType model.SheetType, sheetName string, rowNo int) (*model.FuelRecord, bool) {
	rec := parser.NormalizeRow(mappings, cells, sheetType, sheetName, rowNo)
	if rec.Liters == nil || *rec.Liters <= 0 {
		return nil, false
	}
	rec.Violations = c.engine.Evaluate(rec)
	return rec, true
}

// persistRow writes the record and its violations. A rejection is local to
// the row: it is reported as an error outcome and the batch continues.
func (c *Coordinator) persistRow(tx *sql.Tx, rec *model.FuelRecord) (rowOutcome, string) {
	id, err := c.store.InsertRecordTx(tx, rec)
	if err != nil {
		return rowError, err.Error()
	}
	for _, msg := range rec.Violations {
		if err := c.store.InsertAlertTx(tx, id, "warning", msg); err != nil {
			return rowError, err.Error()
		}
	}
	if len(rec.Violations) > 0 {
		return rowWarning, ""
	}
	return rowSuccess, ""
}

func appendDetail(summary *model.ImportSummary, d model.RowDetail) {
	if len(summary.Details) >= maxDetailEntries {
		return
	}
	summary.Details = append(summary.Details, d)
}

// batchTypeLabel reduces the set of detected sheet types to the manifest
// label.
func batchTypeLabel(seen map[model.SheetType]bool) string {
	if len(seen) > 1 {
		return model.BatchTypeMultiSheet
	}
	for t := range seen {
		return string(t)
	}
	return "empty"
}
