package query

import "github.com/agrigo/farmstore/record"

// Operator represents a comparison operator for a single condition.
type Operator string

const (
	// OpEqual represents the equality operator.
	OpEqual Operator = "eq"
	// OpNotEqual represents the inequality operator.
	OpNotEqual Operator = "ne"
	// OpGreaterThan represents the greater than operator.
	OpGreaterThan Operator = "gt"
	// OpGreaterEqual represents the greater than or equal operator.
	OpGreaterEqual Operator = "gte"
	// OpLessThan represents the less than operator.
	OpLessThan Operator = "lt"
	// OpLessEqual represents the less than or equal operator.
	OpLessEqual Operator = "lte"
	// OpContains represents the substring operator.
	OpContains Operator = "contains"
	// OpStartsWith represents the prefix operator.
	OpStartsWith Operator = "startswith"
	// OpEndsWith represents the suffix operator.
	OpEndsWith Operator = "endswith"
	// OpRegex represents the regular-expression search operator.
	OpRegex Operator = "regex"
)

// BoolOperator combines the conditions of a query.
type BoolOperator string

const (
	// BoolAnd matches records satisfying every condition.
	BoolAnd BoolOperator = "and"
	// BoolOr matches records satisfying at least one condition.
	BoolOr BoolOperator = "or"
)

// Condition is a single immutable predicate: column, operator, operand.
//
// The operand is always text; numeric interpretation follows the column's
// conventional type at evaluation time.
type Condition struct {
	Column   record.Field
	Operator Operator
	Value    string
}

// Query is an ordered list of conditions combined by one boolean operator.
// There is no grouping or mixed precedence.
type Query struct {
	Conditions []Condition
	Operator   BoolOperator
}

// And builds a conjunctive query from the given conditions.
func And(conditions ...Condition) Query {
	return Query{Conditions: conditions, Operator: BoolAnd}
}

// Or builds a disjunctive query from the given conditions.
func Or(conditions ...Condition) Query {
	return Query{Conditions: conditions, Operator: BoolOr}
}
