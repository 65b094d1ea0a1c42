package model

import "time"

// SheetType is the record category inferred for an entire workbook sheet.
type SheetType string

const (
	SheetTypeVehicleFuel SheetType = "suivi_carburant"
	SheetTypeGenerator   SheetType = "groupe_electrogene"
	SheetTypeOtherFuel   SheetType = "autres_carburants"
)

// FuelRecord is the normalized representation of one spreadsheet row after
// classification, coercion and derivation. Optional fields are pointers;
// nil means the value was absent or could not be coerced, never zero.
type FuelRecord struct {
	ID        int64     `json:"id"`
	BatchID   string    `json:"batchId"`
	SheetName string    `json:"sheetName"`
	RowNo     int       `json:"rowNo"`
	SheetType SheetType `json:"sheetType"`

	OperationDate     *time.Time `json:"operationDate,omitempty"`
	Plate             *string    `json:"plate,omitempty"`
	EquipmentNo       *string    `json:"equipmentNo,omitempty"`
	Brand             *string    `json:"brand,omitempty"`
	Model             *string    `json:"model,omitempty"`
	FuelType          *string    `json:"fuelType,omitempty"`
	Amount            *float64   `json:"amount,omitempty"`
	UnitPrice         *float64   `json:"unitPrice,omitempty"`
	Liters            *float64   `json:"liters,omitempty"`
	KmStart           *float64   `json:"kmStart,omitempty"`
	KmEnd             *float64   `json:"kmEnd,omitempty"`
	KmDaily           *float64   `json:"kmDaily,omitempty"`
	OdometerCurrent   *float64   `json:"odometerCurrent,omitempty"`
	OdometerPrevious  *float64   `json:"odometerPrevious,omitempty"`
	KmSinceRefill     *float64   `json:"kmSinceRefill,omitempty"`
	ConsumptionPer100 *float64   `json:"consumptionPer100,omitempty"`
	IsRefill          *bool      `json:"isRefill,omitempty"`
	OperatingHours    *float64   `json:"operatingHours,omitempty"`
	Comment           *string    `json:"comment,omitempty"`

	// RawRow is the original header/value pairs of the source row, serialized
	// before any coercion. Retained verbatim for audit.
	RawRow string `json:"rawRow"`

	Violations []string `json:"violations,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
