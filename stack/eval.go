package stack

import (
	"errors"
	"fmt"
)

// Sentinel errors for infix evaluation.
var (
	// ErrSyntax indicates a malformed expression.
	ErrSyntax = errors.New("stack: syntax error")

	// ErrDivideByZero indicates division or modulo by zero.
	ErrDivideByZero = errors.New("stack: divide by zero")
)

// term terminates both the expression and the operator stack; it has the
// lowest priority on both tables so evaluation drains everything pending.
const term = '='

// isp is the in-stack priority of an operator, icp the incoming priority.
// '(' binds loosely once stacked but tightly as it arrives, which is what
// makes parenthesized subexpressions evaluate in isolation.
func isp(op byte) int {
	switch op {
	case term:
		return 0
	case '(':
		return 1
	case '+', '-':
		return 3
	case '*', '/', '%':
		return 5
	case ')':
		return 6
	default:
		return -1
	}
}

func icp(op byte) int {
	switch op {
	case term:
		return 0
	case ')':
		return 1
	case '+', '-':
		return 2
	case '*', '/', '%':
		return 4
	case '(':
		return 6
	default:
		return -1
	}
}

func isOp(c byte) bool {
	switch c {
	case '+', '-', '*', '/', '%', '(', ')', term:
		return true
	default:
		return false
	}
}

// applyOp computes a1 op a2 with truncating integer division.
func applyOp(a1, a2 int64, op byte) (int64, error) {
	switch op {
	case '+':
		return a1 + a2, nil
	case '-':
		return a1 - a2, nil
	case '*':
		return a1 * a2, nil
	case '/':
		if a2 == 0 {
			return 0, ErrDivideByZero
		}

		return a1 / a2, nil
	case '%':
		if a2 == 0 {
			return 0, ErrDivideByZero
		}

		return a1 % a2, nil
	default:
		return 0, fmt.Errorf("%w: unknown operator %q", ErrSyntax, op)
	}
}

// EvalInfix evaluates an integer infix expression with the operators
// + - * / % and parentheses, using the classic two-stack method: an
// operand stack and an operator stack driven by the isp/icp priority
// tables. Whitespace is ignored; numbers are non-negative decimal
// literals (negation is out of the course's grammar).
//
// Complexity: Time O(n), Space O(n).
func EvalInfix(expr string) (int64, error) {
	var (
		opnd Stack[int64]
		optr Stack[byte]
	)
	optr.Push(term)
	// A trailing terminator pairs with the stacked one to end evaluation.
	s := expr + string(term)

	i := 0
	for {
		// Skip whitespace before the next token.
		for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
			i++
		}
		var c byte = term
		if i < len(s) {
			c = s[i]
		}

		// Operand: read a decimal literal onto the operand stack.
		if !isOp(c) {
			if c < '0' || c > '9' {
				return 0, fmt.Errorf("%w: unexpected %q at position %d", ErrSyntax, c, i)
			}
			var val int64
			for i < len(s) && s[i] >= '0' && s[i] <= '9' {
				val = val*10 + int64(s[i]-'0')
				i++
			}
			opnd.Push(val)

			continue
		}

		top, err := optr.Top()
		if err != nil {
			return 0, fmt.Errorf("%w: operator stack underflow", ErrSyntax)
		}
		if top == term && c == term {
			break
		}

		switch inStack, incoming := isp(top), icp(c); {
		case inStack < incoming:
			// Incoming operator binds tighter: stack it and advance.
			optr.Push(c)
			i++
		case inStack > incoming:
			// Stacked operator binds tighter: reduce once.
			theta, _ := optr.Pop()
			a2, err2 := opnd.Pop()
			a1, err1 := opnd.Pop()
			if err1 != nil || err2 != nil {
				return 0, fmt.Errorf("%w: missing operand", ErrSyntax)
			}
			r, opErr := applyOp(a1, a2, theta)
			if opErr != nil {
				return 0, opErr
			}
			opnd.Push(r)
		default:
			// Equal priority only pairs '(' with ')'.
			if c != ')' {
				return 0, fmt.Errorf("%w: unbalanced expression at position %d", ErrSyntax, i)
			}
			if left, _ := optr.Pop(); left != '(' {
				return 0, fmt.Errorf("%w: unmatched %q at position %d", ErrSyntax, c, i)
			}
			i++
		}
	}

	out, err := opnd.Pop()
	if err != nil || !opnd.Empty() {
		return 0, fmt.Errorf("%w: incomplete expression", ErrSyntax)
	}

	return out, nil
}
