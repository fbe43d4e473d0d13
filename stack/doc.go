// Package stack provides LIFO containers and the two classic stack
// applications of the course: bracket matching and infix expression
// evaluation.
//
// Containers:
//
//   - Stack[T]       - growable slice-backed stack, the default choice.
//   - LinkedStack[T] - singly linked stack; no amortized growth cost.
//   - DualStack[T]   - two stacks sharing one fixed array, growing toward
//     each other from opposite ends; Push fails with ErrFull when the
//     cursors meet.
//
// All container operations are O(1) (amortized for Stack.Push).
//
// Applications:
//
//   - MatchBrackets validates ()/[]/{} nesting and reports the byte
//     position of the first violation.
//   - EvalInfix evaluates an integer infix expression with + - * / % and
//     parentheses using the operand/operator two-stack method driven by
//     in-stack and incoming priority tables.
package stack
