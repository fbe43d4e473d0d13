package stack

import "fmt"

// BracketError describes the first nesting violation found by
// MatchBrackets. Pos is a 0-based byte offset into the input; for an
// unclosed opener it points at that opener.
type BracketError struct {
	Pos  int
	Want byte // expected closer, 0 when the closer had no opener
	Got  byte // offending byte, 0 when input ended with openers pending
}

// Error implements error.
func (e *BracketError) Error() string {
	switch {
	case e.Got == 0:
		return fmt.Sprintf("stack: unclosed %q at position %d", e.Want, e.Pos)
	case e.Want == 0:
		return fmt.Sprintf("stack: unexpected %q at position %d", e.Got, e.Pos)
	default:
		return fmt.Sprintf("stack: expected %q but found %q at position %d", e.Want, e.Got, e.Pos)
	}
}

// closerFor maps an opening bracket to its closer.
func closerFor(open byte) byte {
	switch open {
	case '(':
		return ')'
	case '[':
		return ']'
	default:
		return '}'
	}
}

// MatchBrackets validates the nesting of (), [] and {} in s. Every other
// byte is ignored. On the first violation it returns a *BracketError; nil
// means the brackets balance.
//
// Complexity: Time O(n), Space O(n) worst case.
func MatchBrackets(s string) error {
	type opener struct {
		ch  byte
		pos int
	}
	var st Stack[opener]
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '(', '[', '{':
			st.Push(opener{ch: c, pos: i})
		case ')', ']', '}':
			top, err := st.Pop()
			if err != nil {
				return &BracketError{Pos: i, Got: c}
			}
			if closerFor(top.ch) != c {
				return &BracketError{Pos: i, Want: closerFor(top.ch), Got: c}
			}
		}
	}
	if top, err := st.Top(); err == nil {
		return &BracketError{Pos: top.pos, Want: closerFor(top.ch)}
	}

	return nil
}
