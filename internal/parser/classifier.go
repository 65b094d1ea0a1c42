package parser

// columnSynonyms maps normalized header labels to canonical fields. Matching
// is exact after normalization; accented spellings are listed explicitly.
// The vocabulary comes from the fuel log workbooks the fleet operators fill
// in by hand, so abbreviations and spelling variants are expected.
var columnSynonyms = map[string]Field{
	"date":           FieldOperationDate,
	"date operation": FieldOperationDate,
	"date opération": FieldOperationDate,
	"date_operation": FieldOperationDate,

	"immat":           FieldPlate,
	"immatriculation": FieldPlate,
	"plaque":          FieldPlate,

	"montant":       FieldAmount,
	"montant total": FieldAmount,
	"montant_total": FieldAmount,

	"prix":          FieldUnitPrice,
	"prix unitaire": FieldUnitPrice,
	"prix_unitaire": FieldUnitPrice,

	"litre":           FieldLiters,
	"litres":          FieldLiters,
	"quantite":        FieldLiters,
	"quantité":        FieldLiters,
	"quantite litres": FieldLiters,
	"quantite_litres": FieldLiters,

	"km depart":     FieldKmStart,
	"km départ":     FieldKmStart,
	"km_depart":     FieldKmStart,
	"km de depart":  FieldKmStart,
	"km de départ":  FieldKmStart,
	"km arrivee":    FieldKmEnd,
	"km arrivée":    FieldKmEnd,
	"km_arrivee":    FieldKmEnd,
	"km d'arrivee":  FieldKmEnd,
	"km d'arrivée":  FieldKmEnd,
	"km journalier": FieldKmDaily,
	"km_journalier": FieldKmDaily,

	"compteur":           FieldOdometerCurrent,
	"compteur actuel":    FieldOdometerCurrent,
	"compteur precedent": FieldOdometerPrevious,
	"compteur précédent": FieldOdometerPrevious,

	"consommation":         FieldConsumptionPer100,
	"conso":                FieldConsumptionPer100,
	"consommation aux 100": FieldConsumptionPer100,

	"carburant":      FieldFuelType,
	"type carburant": FieldFuelType,
	"type_carburant": FieldFuelType,

	"marque": FieldBrand,
	"modele": FieldModel,
	"modèle": FieldModel,

	"commentaire":  FieldComment,
	"observation":  FieldComment,
	"observations": FieldComment,

	"numero groupe":     FieldEquipmentNo,
	"numéro groupe":     FieldEquipmentNo,
	"numero equipement": FieldEquipmentNo,
	"numéro équipement": FieldEquipmentNo,
	"numero_equipement": FieldEquipmentNo,

	"heures fonctionnement":    FieldOperatingHours,
	"heures de fonctionnement": FieldOperatingHours,
	"heures_fonctionnement":    FieldOperatingHours,
}

// ClassifyColumn maps a raw header label to a canonical field. When the
// label is not in the synonym table the returned field is a slug of the
// normalized label and ok is false; such columns survive only in the raw
// payload and take no part in derivation or validation.
func ClassifyColumn(label string) (field Field, ok bool) {
	norm := NormalizeLabel(label)
	if f, found := columnSynonyms[norm]; found {
		return f, true
	}
	return Field(Slug(norm)), false
}

// MapColumns classifies every header of a sheet once; the result is reused
// for all of the sheet's rows. Blank headers are dropped.
func MapColumns(headers []string) []ColumnMapping {
	mappings := make([]ColumnMapping, 0, len(headers))
	for idx, label := range headers {
		if NormalizeLabel(label) == "" {
			continue
		}
		field, known := ClassifyColumn(label)
		mappings = append(mappings, ColumnMapping{
			Index: idx,
			Label: label,
			Field: field,
			Known: known,
		})
	}
	return mappings
}
