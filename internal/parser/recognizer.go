package parser

import (
	"strings"

	"github.com/mamynavalonar-dev/FLEETPROJECT/internal/model"
)

// RecognizeSheet decides which record category a sheet holds. The sheet name
// is the strongest signal when the operators followed their naming
// conventions; column shape is the fallback for anonymous sheets. The
// decision order matters: it selects which validation rules apply.
func RecognizeSheet(sheetName string, mappings []ColumnMapping) model.SheetType {
	name := strings.ToLower(sheetName)

	if strings.Contains(name, "groupe") && ContainsAny(name, "electro", "électro") {
		return model.SheetTypeGenerator
	}
	if strings.Contains(name, "suivi") && strings.Contains(name, "carburant") {
		return model.SheetTypeVehicleFuel
	}
	if strings.Contains(name, "autre") && strings.Contains(name, "carburant") {
		return model.SheetTypeOtherFuel
	}

	fields := make(map[Field]bool, len(mappings))
	for _, m := range mappings {
		if m.Known {
			fields[m.Field] = true
		}
	}

	if fields[FieldEquipmentNo] || fields[FieldOperatingHours] {
		return model.SheetTypeGenerator
	}
	if fields[FieldPlate] && fields[FieldKmStart] {
		return model.SheetTypeVehicleFuel
	}

	return model.SheetTypeVehicleFuel
}
