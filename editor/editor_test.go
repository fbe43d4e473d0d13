package editor_test

import (
	"strings"
	"testing"

	"github.com/dastralib/dastra/editor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBuffer builds a buffer from lines without going through Read.
func newBuffer(lines ...string) *editor.Buffer {
	b := editor.NewBuffer()
	for _, l := range lines {
		b.Append(l)
	}

	return b
}

// TestBuffer_LineOps covers 1-based insert/delete/replace and the range
// sentinel.
func TestBuffer_LineOps(t *testing.T) {
	b := newBuffer("alpha", "gamma")

	require.NoError(t, b.Insert(2, "beta"))
	assert.Equal(t, 3, b.Len())

	line, err := b.Line(2)
	require.NoError(t, err)
	assert.Equal(t, "beta", line)

	// Insert at Len+1 appends.
	require.NoError(t, b.Insert(4, "delta"))
	line, err = b.Line(4)
	require.NoError(t, err)
	assert.Equal(t, "delta", line)

	require.NoError(t, b.Replace(1, "ALPHA"))
	line, err = b.Line(1)
	require.NoError(t, err)
	assert.Equal(t, "ALPHA", line)

	got, err := b.Delete(3)
	require.NoError(t, err)
	assert.Equal(t, "gamma", got)
	assert.Equal(t, 3, b.Len())

	_, err = b.Line(0)
	assert.ErrorIs(t, err, editor.ErrLineRange)
	_, err = b.Line(4)
	assert.ErrorIs(t, err, editor.ErrLineRange)
	assert.ErrorIs(t, b.Insert(6, "x"), editor.ErrLineRange)
	assert.ErrorIs(t, b.Replace(0, "x"), editor.ErrLineRange)
	_, err = b.Delete(9)
	assert.ErrorIs(t, err, editor.ErrLineRange)
}

// TestBuffer_Find locates patterns across lines and continues from a
// position.
func TestBuffer_Find(t *testing.T) {
	b := newBuffer(
		"the quick brown fox",
		"jumps over the lazy dog",
		"the end",
	)

	pos, err := b.Find("the")
	require.NoError(t, err)
	assert.Equal(t, editor.Pos{Line: 1, Col: 0}, pos)

	pos, err = b.FindFrom(editor.Pos{Line: pos.Line, Col: pos.Col + 1}, "the")
	require.NoError(t, err)
	assert.Equal(t, editor.Pos{Line: 2, Col: 11}, pos)

	pos, err = b.FindFrom(editor.Pos{Line: 2, Col: 12}, "the")
	require.NoError(t, err)
	assert.Equal(t, editor.Pos{Line: 3, Col: 0}, pos)

	_, err = b.FindFrom(editor.Pos{Line: 3, Col: 1}, "the")
	assert.ErrorIs(t, err, editor.ErrNotFound)

	_, err = b.Find("zebra")
	assert.ErrorIs(t, err, editor.ErrNotFound)
	_, err = b.Find("")
	assert.ErrorIs(t, err, editor.ErrNotFound)

	assert.Equal(t, 3, b.Count("the"))
	assert.Equal(t, 0, b.Count(""))
}

// TestBuffer_ReadWrite round-trips text through the buffer.
func TestBuffer_ReadWrite(t *testing.T) {
	const text = "one\ntwo\nthree\n"

	b := editor.NewBuffer()
	require.NoError(t, b.Read(strings.NewReader(text)))
	assert.Equal(t, 3, b.Len(), "trailing newline adds no empty line")

	var out strings.Builder
	n, err := b.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, text, out.String())
	assert.Equal(t, int64(len(text)), n)

	// Read replaces previous contents entirely.
	require.NoError(t, b.Read(strings.NewReader("solo")))
	assert.Equal(t, 1, b.Len())
	line, err := b.Line(1)
	require.NoError(t, err)
	assert.Equal(t, "solo", line)
}
