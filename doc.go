// Package expression formats arithmetic expression trees as compact text.
//
// Trees are built from numeric leaves, unary negation, digit concatenation,
// and the four arithmetic operators, and render with as few parentheses as
// standard precedence allows: "1+2×3" needs none, "6÷(2×3)" keeps the one
// that matters. A second, structural form spells out the full nesting for
// diagnostics. A Record couples a target value with an expression claimed
// to equal it and renders as "24 == 6×4".
//
// The package never evaluates anything. Leaf values only need a text form,
// so any fmt.Stringer works as a number.
package expression
