package query

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/agrigo/farmstore/record"
)

// evaluator is a single condition prepared for evaluation: the operand is
// parsed and the pattern compiled exactly once per condition.
type evaluator struct {
	cond      Condition
	numeric   bool
	operand   float64
	operandOK bool
	re        *regexp.Regexp
}

func newEvaluator(cond Condition) (*evaluator, error) {
	if !record.Valid(cond.Column) {
		return nil, &ErrUnknownColumn{Column: cond.Column}
	}

	e := &evaluator{
		cond:    cond,
		numeric: record.Numeric(cond.Column),
	}

	switch cond.Operator {
	case OpRegex:
		re, err := regexp.Compile(cond.Value)
		if err != nil {
			return nil, &ErrInvalidPattern{Pattern: cond.Value, cause: err}
		}
		e.re = re
	case OpEqual, OpNotEqual, OpGreaterThan, OpGreaterEqual, OpLessThan, OpLessEqual:
		if e.numeric {
			e.operand, e.operandOK = parseFloat(cond.Value)
		}
	}

	return e, nil
}

// match evaluates the prepared condition against one record.
// It is pure: no side effects, no errors. Value-level conversion failures
// degrade per the documented fallback instead of aborting the query.
func (e *evaluator) match(r *record.Record) bool {
	fv, err := record.Get(r, e.cond.Column)
	if err != nil {
		return false
	}

	switch e.cond.Operator {
	case OpContains:
		return strings.Contains(fv, e.cond.Value)
	case OpStartsWith:
		return strings.HasPrefix(fv, e.cond.Value)
	case OpEndsWith:
		return strings.HasSuffix(fv, e.cond.Value)
	case OpRegex:
		return e.re.MatchString(fv)
	case OpEqual:
		return e.compareEqual(fv)
	case OpNotEqual:
		return !e.compareEqual(fv)
	case OpGreaterThan:
		return e.compareOrdered(fv, func(c int) bool { return c > 0 })
	case OpGreaterEqual:
		return e.compareOrdered(fv, func(c int) bool { return c >= 0 })
	case OpLessThan:
		return e.compareOrdered(fv, func(c int) bool { return c < 0 })
	case OpLessEqual:
		return e.compareOrdered(fv, func(c int) bool { return c <= 0 })
	default:
		return false
	}
}

// compareEqual compares numerically on numeric columns when both sides
// convert, falling back to a raw case-sensitive string comparison.
func (e *evaluator) compareEqual(fv string) bool {
	if e.numeric && e.operandOK {
		if n, ok := parseFloat(fv); ok {
			return n == e.operand
		}
	}
	return fv == e.cond.Value
}

// compareOrdered applies an ordering operator. Numeric columns compare by
// converted value; a side that fails conversion is a non-match. Text columns
// compare lexicographically, case-sensitive.
func (e *evaluator) compareOrdered(fv string, accept func(int) bool) bool {
	if e.numeric {
		if !e.operandOK {
			return false
		}
		n, ok := parseFloat(fv)
		if !ok {
			return false
		}
		switch {
		case n > e.operand:
			return accept(1)
		case n < e.operand:
			return accept(-1)
		default:
			return accept(0)
		}
	}
	return accept(strings.Compare(fv, e.cond.Value))
}

// Evaluate builds the boolean mask of one condition over a collection.
// The mask has one bit per record position; a set bit means "matches".
func Evaluate(records []record.Record, cond Condition) (*Bitmap, error) {
	e, err := newEvaluator(cond)
	if err != nil {
		return nil, err
	}

	mask := NewBitmap()
	for i := range records {
		if e.match(&records[i]) {
			mask.Add(i)
		}
	}
	return mask, nil
}

func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
