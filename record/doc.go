// Package record defines the farm-production record entity and its schema.
//
// A Record is one row of the source CSV held entirely as text; numeric
// interpretation happens at query time, not at load time. The Schema maps
// runtime-supplied field names to explicit accessors and mutators so that an
// unknown field is a named error instead of a reflection failure.
package record
