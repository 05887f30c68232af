package record

import "fmt"

// Record is a single farm-production data entry.
//
// All fields are stored as text, mirroring the source CSV. The field set is
// fixed at load time and identical across every record in a collection.
type Record struct {
	RefDate         string
	Geo             string
	DGUID           string
	MeasurementType string
	UOM             string
	UOMID           string
	ScalarFactor    string
	ScalarID        string
	Vector          string
	Coordinate      string
	Value           string
	Status          string
	Symbol          string
	Terminated      string
	Decimals        string
}

// String returns a short human-readable summary of the record.
func (r Record) String() string {
	return fmt.Sprintf("Record{year=%s geo=%s type=%s value=%s %s vector=%s}",
		r.RefDate, r.Geo, r.MeasurementType, r.Value, r.UOM, r.Vector)
}
