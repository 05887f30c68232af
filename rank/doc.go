// Package rank orders record collections and extracts top-N views.
//
// Sorting is stable and deterministic: records compare on a composite key of
// (chosen field, ref_date) so equal primary keys still order predictably,
// and records equal on the full composite key keep their original relative
// order. Descending order reverses the comparator, never the output list.
package rank
