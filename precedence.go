package expression

// isLeaf reports whether e is an atomic number, the tightest-binding unit.
// Only a leaf may stand unparenthesized as a divisor.
func (e *Expr) isLeaf() bool {
	return e.kind == kindAtomic
}

// looserThanProduct reports whether e binds more loosely than
// multiplication, so that it needs parentheses as an operand of ×, ÷, or
// unary minus. Times is excluded: multiplication chains may render flat
// because reassociating a product does not change its value. Divide is
// included because division reassociates to a different value.
//
// Both predicates look at the node's own operator only, never at children.
func (e *Expr) looserThanProduct() bool {
	switch e.kind {
	case kindPlus, kindMinus, kindDivide:
		return true
	}
	return false
}
