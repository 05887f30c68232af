package record

import "fmt"

// Field identifies a record field by its canonical (snake_case) name.
type Field string

const (
	FieldRefDate         Field = "ref_date"
	FieldGeo             Field = "geo"
	FieldDGUID           Field = "dguid"
	FieldMeasurementType Field = "measurement_type"
	FieldUOM             Field = "uom"
	FieldUOMID           Field = "uom_id"
	FieldScalarFactor    Field = "scalar_factor"
	FieldScalarID        Field = "scalar_id"
	FieldVector          Field = "vector"
	FieldCoordinate      Field = "coordinate"
	FieldValue           Field = "value"
	FieldStatus          Field = "status"
	FieldSymbol          Field = "symbol"
	FieldTerminated      Field = "terminated"
	FieldDecimals        Field = "decimals"
)

// ErrUnknownField indicates a field name that is not part of the schema.
type ErrUnknownField struct {
	Field Field
}

func (e *ErrUnknownField) Error() string {
	return fmt.Sprintf("unknown field: %q", string(e.Field))
}

// Fields returns all schema fields in CSV column order.
func Fields() []Field {
	return []Field{
		FieldRefDate, FieldGeo, FieldDGUID, FieldMeasurementType,
		FieldUOM, FieldUOMID, FieldScalarFactor, FieldScalarID,
		FieldVector, FieldCoordinate, FieldValue, FieldStatus,
		FieldSymbol, FieldTerminated, FieldDecimals,
	}
}

var getters = map[Field]func(*Record) string{
	FieldRefDate:         func(r *Record) string { return r.RefDate },
	FieldGeo:             func(r *Record) string { return r.Geo },
	FieldDGUID:           func(r *Record) string { return r.DGUID },
	FieldMeasurementType: func(r *Record) string { return r.MeasurementType },
	FieldUOM:             func(r *Record) string { return r.UOM },
	FieldUOMID:           func(r *Record) string { return r.UOMID },
	FieldScalarFactor:    func(r *Record) string { return r.ScalarFactor },
	FieldScalarID:        func(r *Record) string { return r.ScalarID },
	FieldVector:          func(r *Record) string { return r.Vector },
	FieldCoordinate:      func(r *Record) string { return r.Coordinate },
	FieldValue:           func(r *Record) string { return r.Value },
	FieldStatus:          func(r *Record) string { return r.Status },
	FieldSymbol:          func(r *Record) string { return r.Symbol },
	FieldTerminated:      func(r *Record) string { return r.Terminated },
	FieldDecimals:        func(r *Record) string { return r.Decimals },
}

var setters = map[Field]func(*Record, string){
	FieldRefDate:         func(r *Record, v string) { r.RefDate = v },
	FieldGeo:             func(r *Record, v string) { r.Geo = v },
	FieldDGUID:           func(r *Record, v string) { r.DGUID = v },
	FieldMeasurementType: func(r *Record, v string) { r.MeasurementType = v },
	FieldUOM:             func(r *Record, v string) { r.UOM = v },
	FieldUOMID:           func(r *Record, v string) { r.UOMID = v },
	FieldScalarFactor:    func(r *Record, v string) { r.ScalarFactor = v },
	FieldScalarID:        func(r *Record, v string) { r.ScalarID = v },
	FieldVector:          func(r *Record, v string) { r.Vector = v },
	FieldCoordinate:      func(r *Record, v string) { r.Coordinate = v },
	FieldValue:           func(r *Record, v string) { r.Value = v },
	FieldStatus:          func(r *Record, v string) { r.Status = v },
	FieldSymbol:          func(r *Record, v string) { r.Symbol = v },
	FieldTerminated:      func(r *Record, v string) { r.Terminated = v },
	FieldDecimals:        func(r *Record, v string) { r.Decimals = v },
}

// numericFields are the fields conventionally interpreted as numbers at
// query time. Everything else is text.
var numericFields = map[Field]struct{}{
	FieldRefDate:    {},
	FieldUOMID:      {},
	FieldScalarID:   {},
	FieldCoordinate: {},
	FieldValue:      {},
	FieldDecimals:   {},
}

// Valid reports whether f is part of the schema.
func Valid(f Field) bool {
	_, ok := getters[f]
	return ok
}

// Numeric reports whether f is conventionally interpreted as numeric.
func Numeric(f Field) bool {
	_, ok := numericFields[f]
	return ok
}

// Get returns the value of field f.
func Get(r *Record, f Field) (string, error) {
	get, ok := getters[f]
	if !ok {
		return "", &ErrUnknownField{Field: f}
	}
	return get(r), nil
}

// Set assigns v to field f.
func Set(r *Record, f Field, v string) error {
	set, ok := setters[f]
	if !ok {
		return &ErrUnknownField{Field: f}
	}
	set(r, v)
	return nil
}

// headers maps schema fields to the column names used by the source dataset.
var headers = map[Field]string{
	FieldRefDate:         "REF_DATE",
	FieldGeo:             "GEO",
	FieldDGUID:           "DGUID",
	FieldMeasurementType: "Area, production and farm value of potatoes",
	FieldUOM:             "UOM",
	FieldUOMID:           "UOM_ID",
	FieldScalarFactor:    "SCALAR_FACTOR",
	FieldScalarID:        "SCALAR_ID",
	FieldVector:          "VECTOR",
	FieldCoordinate:      "COORDINATE",
	FieldValue:           "VALUE",
	FieldStatus:          "STATUS",
	FieldSymbol:          "SYMBOL",
	FieldTerminated:      "TERMINATED",
	FieldDecimals:        "DECIMALS",
}

// Header returns the CSV column name for field f.
func Header(f Field) string {
	return headers[f]
}

// FieldForHeader resolves a CSV column name back to its schema field.
func FieldForHeader(h string) (Field, bool) {
	for f, name := range headers {
		if name == h {
			return f, true
		}
	}
	return "", false
}
