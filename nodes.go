package expression

import (
	"fmt"
	"strconv"
)

// Expr is a node in an arithmetic expression tree. The zero value is not a
// valid expression; build trees with the constructors in this package. Trees
// are immutable once built, so the same Expr may be formatted from any
// number of goroutines.
type Expr struct {
	kind kind

	// num is the leaf payload; set only when kind is kindAtomic.
	num fmt.Stringer

	left  *Expr
	right *Expr
}

type kind int8

const (
	kindNone kind = iota

	kindAtomic   // leaf number
	kindNegative // negate left
	kindConcat   // juxtapose left and right, e.g. digits of a longer numeral
	kindPlus     // left + right
	kindMinus    // left - right
	kindTimes    // left × right
	kindDivide   // left ÷ right
)

var kindNames = [...]string{
	kindNone:     "None",
	kindAtomic:   "Atomic",
	kindNegative: "Negative",
	kindConcat:   "Concat",
	kindPlus:     "Plus",
	kindMinus:    "Minus",
	kindTimes:    "Times",
	kindDivide:   "Divide",
}

func (k kind) String() string {
	if 0 <= int(k) && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.FormatInt(int64(k), 10) + ")"
}

// Atomic returns a leaf holding num. The value is opaque to this package;
// it only needs a text form.
func Atomic(num fmt.Stringer) *Expr {
	return &Expr{kind: kindAtomic, num: num}
}

// Negative returns the negation of base.
func Negative(base *Expr) *Expr {
	return &Expr{kind: kindNegative, left: base}
}

// Concat juxtaposes lhs and rhs with no operator between them, the way two
// digits concatenate into a two-digit numeral.
func Concat(lhs, rhs *Expr) *Expr {
	return &Expr{kind: kindConcat, left: lhs, right: rhs}
}

// Plus returns the sum of lhs and rhs.
func Plus(lhs, rhs *Expr) *Expr {
	return &Expr{kind: kindPlus, left: lhs, right: rhs}
}

// Minus returns the difference of lhs and rhs.
func Minus(lhs, rhs *Expr) *Expr {
	return &Expr{kind: kindMinus, left: lhs, right: rhs}
}

// Times returns the product of lhs and rhs.
func Times(lhs, rhs *Expr) *Expr {
	return &Expr{kind: kindTimes, left: lhs, right: rhs}
}

// Divide returns the quotient of lhs and rhs.
func Divide(lhs, rhs *Expr) *Expr {
	return &Expr{kind: kindDivide, left: lhs, right: rhs}
}

// Int is a ready-made integer leaf value.
type Int int64

func (i Int) String() string {
	return strconv.FormatInt(int64(i), 10)
}
