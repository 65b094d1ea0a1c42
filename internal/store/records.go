package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mamynavalonar-dev/FLEETPROJECT/internal/model"
)

const recordColumns = `
	id, batch_id, sheet_name, row_no, sheet_type,
	date_operation, immatriculation, numero_equipement, marque, modele,
	type_carburant, montant, prix_unitaire, quantite_litres,
	km_depart, km_arrivee, km_journalier,
	compteur_actuel, compteur_precedent, km_entre_repleins,
	consommation_aux_100, est_replein, heures_fonctionnement,
	commentaire, donnees_brutes, created_at`

// InsertRecordTx persists one canonical record inside the batch transaction
// and returns its id. A constraint rejection here is a row-level error for
// the coordinator, not a batch failure.
func (s *Store) InsertRecordTx(tx *sql.Tx, r *model.FuelRecord) (int64, error) {
	res, err := tx.Exec(`
		INSERT INTO fuel_records (
			batch_id, sheet_name, row_no, sheet_type,
			date_operation, immatriculation, numero_equipement, marque, modele,
			type_carburant, montant, prix_unitaire, quantite_litres,
			km_depart, km_arrivee, km_journalier,
			compteur_actuel, compteur_precedent, km_entre_repleins,
			consommation_aux_100, est_replein, heures_fonctionnement,
			commentaire, donnees_brutes
		) VALUES (
			?, ?, ?, ?,
			?, ?, ?, ?, ?,
			?, ?, ?, ?,
			?, ?, ?,
			?, ?, ?,
			?, ?, ?,
			?, ?
		)
	`,
		r.BatchID, r.SheetName, r.RowNo, string(r.SheetType),
		r.OperationDate, r.Plate, r.EquipmentNo, r.Brand, r.Model,
		r.FuelType, r.Amount, r.UnitPrice, r.Liters,
		r.KmStart, r.KmEnd, r.KmDaily,
		r.OdometerCurrent, r.OdometerPrevious, r.KmSinceRefill,
		r.ConsumptionPer100, r.IsRefill, r.OperatingHours,
		r.Comment, r.RawRow,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get record id: %w", err)
	}
	return id, nil
}

// InsertAlertTx attaches one violation message to a persisted record.
func (s *Store) InsertAlertTx(tx *sql.Tx, recordID int64, severity, message string) error {
	_, err := tx.Exec(`
		INSERT INTO fuel_alerts (record_id, severity, message)
		VALUES (?, ?, ?)
	`, recordID, severity, message)
	if err != nil {
		return fmt.Errorf("failed to insert alert: %w", err)
	}
	return nil
}

// RecordsByBatch returns all records of a batch in insertion order, each
// with its violation messages attached.
func (s *Store) RecordsByBatch(batchID string) ([]*model.FuelRecord, error) {
	records, err := s.queryRecords(`
		SELECT `+recordColumns+`
		FROM fuel_records
		WHERE batch_id = ?
		ORDER BY id
	`, batchID)
	if err != nil {
		return nil, err
	}
	if err := s.attachAlerts(records); err != nil {
		return nil, err
	}
	return records, nil
}

// RecordsByIdentifier returns records matching a plate or an equipment
// number, case-insensitive, newest operation first.
func (s *Store) RecordsByIdentifier(identifier string) ([]*model.FuelRecord, error) {
	return s.queryRecords(`
		SELECT `+recordColumns+`
		FROM fuel_records
		WHERE immatriculation = ? COLLATE NOCASE
		   OR numero_equipement = ? COLLATE NOCASE
		ORDER BY date_operation DESC, id DESC
	`, identifier, identifier)
}

// RecordsByDateRange returns records whose operation date falls in
// [from, to], newest first.
func (s *Store) RecordsByDateRange(from, to time.Time) ([]*model.FuelRecord, error) {
	return s.queryRecords(`
		SELECT `+recordColumns+`
		FROM fuel_records
		WHERE date_operation >= ? AND date_operation <= ?
		ORDER BY date_operation DESC, id DESC
	`, from, to)
}

func (s *Store) queryRecords(query string, args ...any) ([]*model.FuelRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []*model.FuelRecord
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *Store) attachAlerts(records []*model.FuelRecord) error {
	byID := make(map[int64]*model.FuelRecord, len(records))
	for _, r := range records {
		byID[r.ID] = r
	}
	if len(byID) == 0 {
		return nil
	}

	rows, err := s.db.Query(`
		SELECT a.record_id, a.message
		FROM fuel_alerts a
		JOIN fuel_records r ON r.id = a.record_id
		WHERE r.batch_id = ?
		ORDER BY a.id
	`, records[0].BatchID)
	if err != nil {
		return fmt.Errorf("failed to query alerts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var recordID int64
		var message string
		if err := rows.Scan(&recordID, &message); err != nil {
			return err
		}
		if r, ok := byID[recordID]; ok {
			r.Violations = append(r.Violations, message)
		}
	}
	return rows.Err()
}

func scanRecord(r rowScanner) (*model.FuelRecord, error) {
	rec := &model.FuelRecord{}
	var sheetType string
	var (
		date                     sql.NullTime
		plate, equipment         sql.NullString
		brand, mdl, fuel         sql.NullString
		comment                  sql.NullString
		amount, unitPrice        sql.NullFloat64
		liters                   sql.NullFloat64
		kmStart, kmEnd, kmDaily  sql.NullFloat64
		odoCur, odoPrev, kmSince sql.NullFloat64
		consumption, hours       sql.NullFloat64
		refill                   sql.NullBool
	)

	err := r.Scan(
		&rec.ID, &rec.BatchID, &rec.SheetName, &rec.RowNo, &sheetType,
		&date, &plate, &equipment, &brand, &mdl,
		&fuel, &amount, &unitPrice, &liters,
		&kmStart, &kmEnd, &kmDaily,
		&odoCur, &odoPrev, &kmSince,
		&consumption, &refill, &hours,
		&comment, &rec.RawRow, &rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	rec.SheetType = model.SheetType(sheetType)
	if date.Valid {
		rec.OperationDate = &date.Time
	}
	rec.Plate = nullString(plate)
	rec.EquipmentNo = nullString(equipment)
	rec.Brand = nullString(brand)
	rec.Model = nullString(mdl)
	rec.FuelType = nullString(fuel)
	rec.Comment = nullString(comment)
	rec.Amount = nullFloat(amount)
	rec.UnitPrice = nullFloat(unitPrice)
	rec.Liters = nullFloat(liters)
	rec.KmStart = nullFloat(kmStart)
	rec.KmEnd = nullFloat(kmEnd)
	rec.KmDaily = nullFloat(kmDaily)
	rec.OdometerCurrent = nullFloat(odoCur)
	rec.OdometerPrevious = nullFloat(odoPrev)
	rec.KmSinceRefill = nullFloat(kmSince)
	rec.ConsumptionPer100 = nullFloat(consumption)
	rec.OperatingHours = nullFloat(hours)
	if refill.Valid {
		rec.IsRefill = &refill.Bool
	}

	return rec, nil
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}
