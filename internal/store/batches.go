package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mamynavalonar-dev/FLEETPROJECT/internal/model"
)

// ErrBatchNotFound is returned when a batch id does not exist.
var ErrBatchNotFound = errors.New("batch not found")

// InsertBatchTx creates the manifest row for a starting batch.
func (s *Store) InsertBatchTx(tx *sql.Tx, b *model.ImportBatch) error {
	perSheet, err := json.Marshal(b.PerSheet)
	if err != nil {
		return fmt.Errorf("failed to encode per-sheet breakdown: %w", err)
	}

	_, err = tx.Exec(`
		INSERT INTO import_batches (batch_id, file_name, sheet_type, total_rows, status, per_sheet)
		VALUES (?, ?, ?, ?, ?, ?)
	`, b.BatchID, b.FileName, b.SheetType, b.TotalRows, b.Status, string(perSheet))
	if err != nil {
		return fmt.Errorf("failed to insert batch manifest: %w", err)
	}
	return nil
}

// FinalizeBatchTx marks the batch completed with its aggregated counters and
// per-sheet breakdown. Runs inside the same transaction that persisted the
// batch's records; the manifest is never touched again afterward.
func (s *Store) FinalizeBatchTx(tx *sql.Tx, b *model.ImportBatch) error {
	perSheet, err := json.Marshal(b.PerSheet)
	if err != nil {
		return fmt.Errorf("failed to encode per-sheet breakdown: %w", err)
	}

	_, err = tx.Exec(`
		UPDATE import_batches SET
			sheet_type = ?,
			total_rows = ?,
			status = ?,
			per_sheet = ?,
			completed_at = CURRENT_TIMESTAMP
		WHERE batch_id = ?
	`, b.SheetType, b.TotalRows, model.BatchStatusCompleted, string(perSheet), b.BatchID)
	if err != nil {
		return fmt.Errorf("failed to finalize batch manifest: %w", err)
	}
	return nil
}

// ListBatches returns the most recent batch manifests, newest first.
func (s *Store) ListBatches(limit int) ([]*model.ImportBatch, error) {
	rows, err := s.db.Query(`
		SELECT batch_id, file_name, sheet_type, total_rows, status, per_sheet, created_at, completed_at
		FROM import_batches
		ORDER BY created_at DESC, batch_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query batches: %w", err)
	}
	defer rows.Close()

	var batches []*model.ImportBatch
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

// GetBatch fetches one batch manifest by id.
func (s *Store) GetBatch(batchID string) (*model.ImportBatch, error) {
	row := s.db.QueryRow(`
		SELECT batch_id, file_name, sheet_type, total_rows, status, per_sheet, created_at, completed_at
		FROM import_batches
		WHERE batch_id = ?
	`, batchID)

	b, err := scanBatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBatchNotFound
	}
	return b, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBatch(r rowScanner) (*model.ImportBatch, error) {
	b := &model.ImportBatch{}
	var perSheet string
	var completedAt sql.NullTime

	err := r.Scan(&b.BatchID, &b.FileName, &b.SheetType, &b.TotalRows, &b.Status, &perSheet, &b.CreatedAt, &completedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(perSheet), &b.PerSheet); err != nil {
		return nil, fmt.Errorf("failed to decode per-sheet breakdown: %w", err)
	}
	if completedAt.Valid {
		b.CompletedAt = &completedAt.Time
	}
	return b, nil
}
