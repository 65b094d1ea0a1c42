package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/mamynavalonar-dev/FLEETPROJECT/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := New(filepath.Join(t.TempDir(), "fleet.db"))
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func insertTestBatch(t *testing.T, st *Store, batchID string, records []*model.FuelRecord) {
	t.Helper()

	tx, err := st.BeginTx()
	if err != nil {
		t.Fatalf("begin: %v", err)
	}

	batch := &model.ImportBatch{
		BatchID:  batchID,
		FileName: "suivi.xlsx",
		Status:   model.BatchStatusInProgress,
		PerSheet: map[string]model.SheetStats{},
	}
	if err := st.InsertBatchTx(tx, batch); err != nil {
		t.Fatalf("insert batch: %v", err)
	}

	for _, rec := range records {
		rec.BatchID = batchID
		id, err := st.InsertRecordTx(tx, rec)
		if err != nil {
			t.Fatalf("insert record: %v", err)
		}
		for _, msg := range rec.Violations {
			if err := st.InsertAlertTx(tx, id, "warning", msg); err != nil {
				t.Fatalf("insert alert: %v", err)
			}
		}
	}

	batch.TotalRows = len(records)
	batch.SheetType = string(model.SheetTypeVehicleFuel)
	if err := st.FinalizeBatchTx(tx, batch); err != nil {
		t.Fatalf("finalize batch: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
}

func strp(s string) *string { return &s }

func fp(v float64) *float64 { return &v }

func dp(t time.Time) *time.Time { return &t }

func TestGetBatch_NotFound(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	if _, err := st.GetBatch("missing"); !errors.Is(err, ErrBatchNotFound) {
		t.Fatalf("want ErrBatchNotFound, got %v", err)
	}
}

func TestBatchLifecycle(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	insertTestBatch(t, st, "batch-1", []*model.FuelRecord{
		{
			SheetName:     "Suivi carburant",
			RowNo:         2,
			SheetType:     model.SheetTypeVehicleFuel,
			OperationDate: dp(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)),
			Plate:         strp("12345 WWT"),
			Liters:        fp(40),
			RawRow:        `{"Litres":"40"}`,
			Violations:    []string{"consumption below expected range"},
		},
	})

	batch, err := st.GetBatch("batch-1")
	if err != nil {
		t.Fatalf("get batch: %v", err)
	}
	if batch.Status != model.BatchStatusCompleted || batch.TotalRows != 1 {
		t.Fatalf("unexpected batch: %+v", batch)
	}

	batches, err := st.ListBatches(50)
	if err != nil || len(batches) != 1 {
		t.Fatalf("list: %v (%d)", err, len(batches))
	}

	records, err := st.RecordsByBatch("batch-1")
	if err != nil || len(records) != 1 {
		t.Fatalf("records: %v (%d)", err, len(records))
	}
	rec := records[0]
	if rec.Plate == nil || *rec.Plate != "12345 WWT" {
		t.Fatalf("plate lost: %+v", rec)
	}
	if len(rec.Violations) != 1 || rec.Violations[0] != "consumption below expected range" {
		t.Fatalf("violations lost: %v", rec.Violations)
	}
	// Unset optionals come back nil, never zero.
	if rec.Amount != nil || rec.KmDaily != nil || rec.IsRefill != nil {
		t.Fatalf("absent fields must stay nil: %+v", rec)
	}
}

func TestRecordsByIdentifier_CaseInsensitive(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	insertTestBatch(t, st, "batch-1", []*model.FuelRecord{
		{
			SheetName: "Suivi carburant",
			RowNo:     2,
			SheetType: model.SheetTypeVehicleFuel,
			Plate:     strp("12345 wwt"),
			Liters:    fp(35),
			RawRow:    `{}`,
		},
		{
			SheetName:   "Groupe électrogène",
			RowNo:       2,
			SheetType:   model.SheetTypeGenerator,
			EquipmentNo: strp("GE-01"),
			Liters:      fp(20),
			RawRow:      `{}`,
		},
	})

	records, err := st.RecordsByIdentifier("12345 WWT")
	if err != nil || len(records) != 1 {
		t.Fatalf("plate lookup: %v (%d)", err, len(records))
	}

	records, err = st.RecordsByIdentifier("ge-01")
	if err != nil || len(records) != 1 {
		t.Fatalf("equipment lookup: %v (%d)", err, len(records))
	}
}

func TestRecordsByDateRange(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	insertTestBatch(t, st, "batch-1", []*model.FuelRecord{
		{
			SheetName:     "Suivi carburant",
			RowNo:         2,
			SheetType:     model.SheetTypeVehicleFuel,
			OperationDate: dp(time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)),
			Liters:        fp(30),
			RawRow:        `{}`,
		},
		{
			SheetName:     "Suivi carburant",
			RowNo:         3,
			SheetType:     model.SheetTypeVehicleFuel,
			OperationDate: dp(time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)),
			Liters:        fp(30),
			RawRow:        `{}`,
		},
	})

	records, err := st.RecordsByDateRange(
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("date range: %v", err)
	}
	if len(records) != 1 || records[0].RowNo != 2 {
		t.Fatalf("unexpected range result: %d", len(records))
	}
}
