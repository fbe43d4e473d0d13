package stack_test

import (
	"fmt"

	"github.com/dastralib/dastra/stack"
)

// ExampleEvalInfix evaluates an expression with the two-stack method.
func ExampleEvalInfix() {
	v, _ := stack.EvalInfix("3 * (7 - 2)")
	fmt.Println(v)
	// Output:
	// 15
}

// ExampleMatchBrackets reports the first bracket that breaks nesting.
func ExampleMatchBrackets() {
	fmt.Println(stack.MatchBrackets("{[()]}"))
	fmt.Println(stack.MatchBrackets("([)]"))
	// Output:
	// <nil>
	// stack: expected ']' but found ')' at position 2
}
