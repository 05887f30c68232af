// Package query implements the record search engine.
//
// A Condition is a single column-level predicate; a Query combines an ordered
// list of conditions with one boolean operator applied uniformly. Evaluation
// produces one roaring-bitmap mask per condition; masks are combined with
// And/Or and the matching subset is materialized as a fresh slice that
// preserves the original record order.
//
// Malformed data values degrade gracefully: a record field that cannot be
// converted to the type an operator expects is a non-match for ordering
// operators and a raw string comparison for equality. Malformed conditions
// (unknown column, invalid regular expression) fail the whole query.
package query
