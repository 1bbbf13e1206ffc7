package expression_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	expression "github.com/oovm/calculate-100"
)

// buildExpr interprets prog as a postfix program: digits push leaves, 'n'
// negates the top of the stack, and 'c', '+', '-', '*', '/' combine the top
// two nodes. Bytes that cannot apply are skipped, so any input yields
// either a well-formed tree or nothing.
func buildExpr(prog []byte) *expression.Expr {
	var stack []*expression.Expr
	for _, op := range prog {
		switch op {
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			stack = append(stack, expression.Atomic(expression.Int(op-'0')))
		case 'n':
			if len(stack) < 1 {
				continue
			}
			stack[len(stack)-1] = expression.Negative(stack[len(stack)-1])
		case 'c', '+', '-', '*', '/':
			if len(stack) < 2 {
				continue
			}
			lhs, rhs := stack[len(stack)-2], stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			switch op {
			case 'c':
				stack[len(stack)-1] = expression.Concat(lhs, rhs)
			case '+':
				stack[len(stack)-1] = expression.Plus(lhs, rhs)
			case '-':
				stack[len(stack)-1] = expression.Minus(lhs, rhs)
			case '*':
				stack[len(stack)-1] = expression.Times(lhs, rhs)
			case '/':
				stack[len(stack)-1] = expression.Divide(lhs, rhs)
			}
		}
	}
	if len(stack) == 0 {
		return nil
	}
	return stack[len(stack)-1]
}

func FuzzString(f *testing.F) {
	f.Add([]byte("12+"))
	f.Add([]byte("623*/"))
	f.Add([]byte("12+n34c-"))
	f.Add([]byte("84/2/n"))
	f.Fuzz(func(t *testing.T, prog []byte) {
		e := buildExpr(prog)
		if e == nil {
			return
		}
		s := e.String()
		require.Equal(t, s, e.String(), "String must be idempotent")
		depth := 0
		for _, r := range s {
			switch r {
			case '(':
				depth++
			case ')':
				depth--
				require.GreaterOrEqual(t, depth, 0, "unbalanced parens in %q", s)
			}
		}
		require.Zero(t, depth, "unbalanced parens in %q", s)
		require.NotContains(t, s, "()", "empty group in %q", s)
		d := e.Describe()
		require.Equal(t, d, e.Describe(), "Describe must be idempotent")
		// Leaves are single digits, so structure is the only possible
		// source of parentheses and Describe never emits any.
		require.NotContains(t, d, "(")
	})
}
