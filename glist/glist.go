package glist

import (
	"errors"
	"fmt"
	"strings"
)

// ErrParse indicates malformed generalized-list text.
var ErrParse = errors.New("glist: parse error")

// Elem is one element of a List: either an atom or a sublist.
type Elem struct {
	Atom rune  // valid when Sub == nil
	Sub  *List // non-nil for a sublist element
}

// IsAtom reports whether the element is an atom.
func (e Elem) IsAtom() bool { return e.Sub == nil }

// List is a generalized list. The zero value is the empty list.
type List struct {
	elems []Elem
}

// NewAtom returns an atom element.
func NewAtom(r rune) Elem { return Elem{Atom: r} }

// NewSub returns a sublist element.
func NewSub(l *List) Elem {
	if l == nil {
		l = &List{}
	}

	return Elem{Sub: l}
}

// Append adds an element at the end of the list.
func (l *List) Append(e Elem) { l.elems = append(l.elems, e) }

// Len reports the number of top-level elements.
func (l *List) Len() int { return len(l.elems) }

// Elems returns the top-level elements in order.
func (l *List) Elems() []Elem {
	out := make([]Elem, len(l.elems))
	copy(out, l.elems)

	return out
}

// Depth reports the nesting depth: 1 for the empty or atom-only list,
// otherwise 1 + the maximum sublist depth.
func (l *List) Depth() int {
	maxSub := 0
	for _, e := range l.elems {
		if e.Sub != nil {
			if d := e.Sub.Depth(); d > maxSub {
				maxSub = d
			}
		}
	}

	return maxSub + 1
}

// Atoms reports the total number of atoms at every level.
func (l *List) Atoms() int {
	n := 0
	for _, e := range l.elems {
		if e.Sub == nil {
			n++
		} else {
			n += e.Sub.Atoms()
		}
	}

	return n
}

// Clone returns a deep copy sharing no structure with l.
func (l *List) Clone() *List {
	out := &List{elems: make([]Elem, 0, len(l.elems))}
	for _, e := range l.elems {
		if e.Sub == nil {
			out.elems = append(out.elems, e)
		} else {
			out.elems = append(out.elems, Elem{Sub: e.Sub.Clone()})
		}
	}

	return out
}

// String renders the canonical textual form, e.g. "(a,(b,c),d)".
func (l *List) String() string {
	var sb strings.Builder
	l.write(&sb)

	return sb.String()
}

func (l *List) write(sb *strings.Builder) {
	sb.WriteByte('(')
	for i, e := range l.elems {
		if i > 0 {
			sb.WriteByte(',')
		}
		if e.Sub == nil {
			sb.WriteRune(e.Atom)
		} else {
			e.Sub.write(sb)
		}
	}
	sb.WriteByte(')')
}

// Parse reads a generalized list from its textual form. Whitespace
// between tokens is ignored. The whole input must be consumed.
func Parse(s string) (*List, error) {
	p := &parser{in: []rune(s)}
	l, err := p.parseList()
	if err != nil {
		return nil, err
	}
	p.skipSpaces()
	if p.pos != len(p.in) {
		return nil, fmt.Errorf("%w: trailing input at %d", ErrParse, p.pos)
	}

	return l, nil
}

// parser is a recursive-descent reader over the input runes.
type parser struct {
	in  []rune
	pos int
}

func (p *parser) skipSpaces() {
	for p.pos < len(p.in) && (p.in[p.pos] == ' ' || p.in[p.pos] == '\t') {
		p.pos++
	}
}

// peek returns the next significant rune without consuming it, or -1 at
// end of input.
func (p *parser) peek() rune {
	p.skipSpaces()
	if p.pos >= len(p.in) {
		return -1
	}

	return p.in[p.pos]
}

func (p *parser) expect(r rune) error {
	if p.peek() != r {
		return fmt.Errorf("%w: expected %q at %d", ErrParse, r, p.pos)
	}
	p.pos++

	return nil
}

// parseList reads "(" [element {"," element}] ")".
func (p *parser) parseList() (*List, error) {
	if err := p.expect('('); err != nil {
		return nil, err
	}
	l := &List{}
	if p.peek() == ')' {
		p.pos++

		return l, nil
	}
	for {
		e, err := p.parseElem()
		if err != nil {
			return nil, err
		}
		l.Append(e)
		switch p.peek() {
		case ',':
			p.pos++
		case ')':
			p.pos++

			return l, nil
		default:
			return nil, fmt.Errorf("%w: expected ',' or ')' at %d", ErrParse, p.pos)
		}
	}
}

// parseElem reads either a sublist or a single-rune atom.
func (p *parser) parseElem() (Elem, error) {
	switch r := p.peek(); r {
	case '(':
		sub, err := p.parseList()
		if err != nil {
			return Elem{}, err
		}

		return Elem{Sub: sub}, nil
	case ')', ',', -1:
		return Elem{}, fmt.Errorf("%w: expected atom or '(' at %d", ErrParse, p.pos)
	default:
		p.pos++

		return Elem{Atom: r}, nil
	}
}
