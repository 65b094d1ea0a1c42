package parser

// Field is a canonical field name a classified column maps to.
type Field string

const (
	FieldOperationDate     Field = "date_operation"
	FieldPlate             Field = "immatriculation"
	FieldEquipmentNo       Field = "numero_equipement"
	FieldBrand             Field = "marque"
	FieldModel             Field = "modele"
	FieldAmount            Field = "montant"
	FieldUnitPrice         Field = "prix_unitaire"
	FieldLiters            Field = "quantite_litres"
	FieldFuelType          Field = "type_carburant"
	FieldKmStart           Field = "km_depart"
	FieldKmEnd             Field = "km_arrivee"
	FieldKmDaily           Field = "km_journalier"
	FieldOdometerCurrent   Field = "compteur_actuel"
	FieldOdometerPrevious  Field = "compteur_precedent"
	FieldConsumptionPer100 Field = "consommation_aux_100"
	FieldOperatingHours    Field = "heures_fonctionnement"
	FieldComment           Field = "commentaire"
)

// FieldKind is the coercion target of a canonical field.
type FieldKind int

const (
	KindText FieldKind = iota
	KindNumber
	KindDate
)

// Kind returns the coercion kind for a canonical field. Unclassified fields
// default to text, though they never reach coercion.
func (f Field) Kind() FieldKind {
	switch f {
	case FieldOperationDate:
		return KindDate
	case FieldAmount, FieldUnitPrice, FieldLiters,
		FieldKmStart, FieldKmEnd, FieldKmDaily,
		FieldOdometerCurrent, FieldOdometerPrevious,
		FieldConsumptionPer100, FieldOperatingHours:
		return KindNumber
	default:
		return KindText
	}
}

// ColumnMapping binds one sheet column to its canonical field. Known is
// false when the header was not in the synonym table; Field then carries the
// slug of the normalized label and the column is kept only in the raw
// payload.
type ColumnMapping struct {
	Index int    `json:"index"`
	Label string `json:"label"`
	Field Field  `json:"field"`
	Known bool   `json:"known"`
}
