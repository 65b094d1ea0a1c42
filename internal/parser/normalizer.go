package parser

import (
	"encoding/json"
	"strings"

	"github.com/mamynavalonar-dev/FLEETPROJECT/internal/model"
)

// NormalizeRow turns one raw sheet row into a canonical record skeleton.
// Absent cells are skipped, classified cells are coerced to their field's
// kind, and the original header/value pairs are serialized verbatim into the
// audit payload. This step never fails: uncoercible values are simply absent
// from the skeleton.
func NormalizeRow(mappings []ColumnMapping, cells []string, sheetType model.SheetType, sheetName string, rowNo int) *model.FuelRecord {
	rec := &model.FuelRecord{
		SheetName: sheetName,
		RowNo:     rowNo,
		SheetType: sheetType,
	}

	raw := make(map[string]string, len(mappings))
	for _, m := range mappings {
		if m.Index >= len(cells) {
			continue
		}
		value := cells[m.Index]
		if strings.TrimSpace(value) == "" {
			continue
		}
		raw[m.Label] = value
		if !m.Known {
			continue
		}
		setField(rec, m.Field, value)
	}

	// The payload serializes cleanly: keys are workbook headers, values are
	// the pre-coercion cell strings.
	payload, _ := json.Marshal(raw)
	rec.RawRow = string(payload)

	return rec
}

// setField coerces value to the field's kind and stores it under the
// canonical name.
func setField(rec *model.FuelRecord, field Field, value string) {
	switch field.Kind() {
	case KindDate:
		rec.OperationDate = CoerceDate(value)

	case KindNumber:
		n := CoerceNumber(value)
		if n == nil {
			return
		}
		switch field {
		case FieldAmount:
			rec.Amount = n
		case FieldUnitPrice:
			rec.UnitPrice = n
		case FieldLiters:
			rec.Liters = n
		case FieldKmStart:
			rec.KmStart = n
		case FieldKmEnd:
			rec.KmEnd = n
		case FieldKmDaily:
			rec.KmDaily = n
		case FieldOdometerCurrent:
			rec.OdometerCurrent = n
		case FieldOdometerPrevious:
			rec.OdometerPrevious = n
		case FieldConsumptionPer100:
			rec.ConsumptionPer100 = n
		case FieldOperatingHours:
			rec.OperatingHours = n
		}

	default:
		t := CoerceText(value)
		if t == nil {
			return
		}
		switch field {
		case FieldPlate:
			rec.Plate = t
		case FieldEquipmentNo:
			rec.EquipmentNo = t
		case FieldBrand:
			rec.Brand = t
		case FieldModel:
			rec.Model = t
		case FieldFuelType:
			rec.FuelType = t
		case FieldComment:
			rec.Comment = t
		}
	}
}
