package editor

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/dastralib/dastra/list"
	"github.com/dastralib/dastra/strmatch"
)

// Sentinel errors for buffer operations.
var (
	// ErrLineRange indicates a line number outside 1..Len (or 1..Len+1
	// for Insert).
	ErrLineRange = errors.New("editor: line number out of range")

	// ErrNotFound indicates a search pattern that occurs nowhere in the
	// buffer.
	ErrNotFound = errors.New("editor: pattern not found")
)

// Pos addresses one character of the buffer: 1-based line, 0-based byte
// column within that line.
type Pos struct {
	Line int
	Col  int
}

// Buffer is a line-oriented text buffer. The zero value is not usable;
// construct with NewBuffer.
type Buffer struct {
	lines *list.DoublyList[string]
}

// NewBuffer returns an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{lines: list.NewDoubly[string]()}
}

// Len reports the number of lines.
func (b *Buffer) Len() int { return b.lines.Len() }

// Line returns line n (1-based).
func (b *Buffer) Line(n int) (string, error) {
	s, err := b.lines.Get(n - 1)
	if err != nil {
		return "", fmt.Errorf("%w: %d", ErrLineRange, n)
	}

	return s, nil
}

// Insert places line before the current line n, so the new text becomes
// line n. n may be Len+1 to insert at the end.
func (b *Buffer) Insert(n int, line string) error {
	if err := b.lines.Insert(n-1, line); err != nil {
		return fmt.Errorf("%w: %d", ErrLineRange, n)
	}

	return nil
}

// Append places line after the last line. O(1).
func (b *Buffer) Append(line string) { b.lines.PushBack(line) }

// Delete removes line n and returns its text.
func (b *Buffer) Delete(n int) (string, error) {
	s, err := b.lines.Delete(n - 1)
	if err != nil {
		return "", fmt.Errorf("%w: %d", ErrLineRange, n)
	}

	return s, nil
}

// Replace overwrites line n with the given text.
func (b *Buffer) Replace(n int, line string) error {
	if err := b.lines.Set(n-1, line); err != nil {
		return fmt.Errorf("%w: %d", ErrLineRange, n)
	}

	return nil
}

// Find reports the first position of pat in the buffer, scanning lines
// top to bottom with KMP. Patterns do not match across line boundaries.
func (b *Buffer) Find(pat string) (Pos, error) {
	return b.FindFrom(Pos{Line: 1, Col: 0}, pat)
}

// FindFrom behaves like Find but starts at the given position, which
// makes "find next" a loop over FindFrom with Col advanced by one.
func (b *Buffer) FindFrom(from Pos, pat string) (Pos, error) {
	if pat == "" {
		return Pos{}, ErrNotFound
	}
	startLine := from.Line
	if startLine < 1 {
		startLine = 1
	}
	for n := startLine; n <= b.Len(); n++ {
		line, err := b.Line(n)
		if err != nil {
			return Pos{}, err
		}
		col := 0
		if n == from.Line {
			col = from.Col
			if col > len(line) {
				continue
			}
		}
		if i := strmatch.IndexKMP(line[col:], pat); i >= 0 {
			return Pos{Line: n, Col: col + i}, nil
		}
	}

	return Pos{}, fmt.Errorf("%w: %q", ErrNotFound, pat)
}

// Count reports how many times pat occurs in the buffer, overlapping
// occurrences included, never spanning lines.
func (b *Buffer) Count(pat string) int {
	if pat == "" {
		return 0
	}
	total := 0
	for n := 1; n <= b.Len(); n++ {
		line, _ := b.Line(n)
		total += len(strmatch.FindAll(line, pat))
	}

	return total
}

// Read replaces the buffer contents with the lines of r. A trailing
// newline does not produce an empty final line.
func (b *Buffer) Read(r io.Reader) error {
	fresh := list.NewDoubly[string]()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		fresh.PushBack(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("editor: read: %w", err)
	}
	b.lines = fresh

	return nil
}

// WriteTo writes every line followed by a newline and reports the total
// bytes written. It implements io.WriterTo.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for n := 1; n <= b.Len(); n++ {
		line, _ := b.Line(n)
		wrote, err := fmt.Fprintln(w, line)
		total += int64(wrote)
		if err != nil {
			return total, fmt.Errorf("editor: write: %w", err)
		}
	}

	return total, nil
}
