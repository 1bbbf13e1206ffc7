package expression

import (
	"strings"
)

// String renders the expression with the fewest parentheses that keep its
// meaning under standard precedence: unary minus over × and ÷ over + and -,
// with juxtaposition binding tightest. Multiplication chains render flat;
// compound divisors always keep their parentheses.
func (e *Expr) String() string {
	var b strings.Builder
	e.render(&b)
	return b.String()
}

func (e *Expr) render(b *strings.Builder) {
	switch e.kind {
	case kindAtomic:
		b.WriteString(e.num.String())
	case kindNegative:
		b.WriteByte('-')
		e.left.renderWrapped(b, e.left.looserThanProduct())
	case kindConcat:
		e.left.render(b)
		e.right.render(b)
	case kindPlus:
		e.left.render(b)
		b.WriteByte('+')
		e.right.render(b)
	case kindMinus:
		e.left.render(b)
		b.WriteByte('-')
		e.right.renderWrapped(b, e.right.looserThanProduct())
	case kindTimes:
		e.left.renderWrapped(b, e.left.looserThanProduct())
		b.WriteRune('×')
		e.right.renderWrapped(b, e.right.looserThanProduct())
	case kindDivide:
		e.left.renderWrapped(b, e.left.looserThanProduct())
		b.WriteRune('÷')
		// Any compound divisor keeps its parentheses, a times chain
		// included: 6÷(2×3) is not 6÷2×3.
		e.right.renderWrapped(b, !e.right.isLeaf())
	default:
		panic("expression: invalid kind " + e.kind.String() + " after writing " + b.String())
	}
}

// renderWrapped renders e into b, parenthesized when parens is set.
func (e *Expr) renderWrapped(b *strings.Builder, parens bool) {
	if parens {
		b.WriteByte('(')
		defer b.WriteByte(')')
	}
	e.render(b)
}
