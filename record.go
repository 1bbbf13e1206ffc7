package expression

import (
	"fmt"
)

// Record pairs a target value with an expression claimed to equal it.
// Whether the claim holds is up to whoever built the record; this package
// only formats it.
type Record struct {
	// Value is the target the expression is supposed to reach.
	Value fmt.Stringer
	// Expr is the expression claimed to evaluate to Value.
	Expr *Expr
}

// String renders the record as "<value> == <expression>".
func (r Record) String() string {
	return r.Value.String() + " == " + r.Expr.String()
}

// Describe returns the record's structural form. Both fields appear as
// their rendered text; the expression is not expanded into its own
// structural dump.
func (r Record) Describe() string {
	return "Record { expression: " + r.Expr.String() + ", value: " + r.Value.String() + " }"
}
