package expression

import (
	"strings"
)

// Describe returns a fully explicit structural dump of the expression for
// diagnostics. Precedence plays no part: every non-leaf node shows its
// variant name and its children as labeled fields, so nesting is always
// visible. Leaves print their text form, same as String. The output is not
// meant to be parsed back.
func (e *Expr) Describe() string {
	var b strings.Builder
	e.describe(&b)
	return b.String()
}

func (e *Expr) describe(b *strings.Builder) {
	switch e.kind {
	case kindAtomic:
		b.WriteString(e.num.String())
	case kindNegative:
		b.WriteString("Negative { lhs: ")
		e.left.describe(b)
		b.WriteString(" }")
	case kindConcat, kindPlus, kindMinus, kindTimes, kindDivide:
		b.WriteString(e.kind.String())
		b.WriteString(" { lhs: ")
		e.left.describe(b)
		b.WriteString(", rhs: ")
		e.right.describe(b)
		b.WriteString(" }")
	default:
		panic("expression: invalid kind " + e.kind.String() + " after writing " + b.String())
	}
}
