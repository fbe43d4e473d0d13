package huffman

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_DeterministicCodes(t *testing.T) {
	tree, err := Build(map[rune]int{'a': 1, 'b': 2, 'c': 3, 'd': 4})
	require.NoError(t, err)

	want := map[rune]string{'d': "0", 'c': "10", 'a': "110", 'b': "111"}
	assert.Equal(t, want, tree.Codes())
	assert.Equal(t, 19, tree.WPL())
}

func TestBuild_CourseWPL(t *testing.T) {
	freq := map[rune]int{
		'a': 5, 'b': 29, 'c': 7, 'd': 8,
		'e': 14, 'f': 23, 'g': 3, 'h': 11,
	}
	tree, err := Build(freq)
	require.NoError(t, err)
	assert.Equal(t, 271, tree.WPL())
}

func TestCodes_PrefixFree(t *testing.T) {
	tree, err := Build(map[rune]int{
		'a': 5, 'b': 29, 'c': 7, 'd': 8,
		'e': 14, 'f': 23, 'g': 3, 'h': 11,
	})
	require.NoError(t, err)

	codes := tree.Codes()
	for r1, c1 := range codes {
		for r2, c2 := range codes {
			if r1 == r2 {
				continue
			}
			assert.False(t, strings.HasPrefix(c1, c2),
				"%q=%s is prefixed by %q=%s", r1, c1, r2, c2)
		}
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	tree, err := Build(map[rune]int{'a': 7, 'b': 5, 'c': 2, 'd': 4, ' ': 9})
	require.NoError(t, err)

	for _, msg := range []string{"", "a", "abcd dcba", "aaaa bbb cc d"} {
		bits, err := tree.Encode(msg)
		require.NoError(t, err)
		got, err := tree.Decode(bits)
		require.NoError(t, err)
		assert.Equal(t, msg, got, "round trip of %q", msg)
	}
}

func TestSingleSymbol(t *testing.T) {
	tree, err := Build(map[rune]int{'x': 42})
	require.NoError(t, err)

	c, err := tree.Code('x')
	require.NoError(t, err)
	assert.Equal(t, "0", c)
	assert.Equal(t, 0, tree.WPL())

	bits, err := tree.Encode("xxx")
	require.NoError(t, err)
	assert.Equal(t, "000", bits)

	got, err := tree.Decode("000")
	require.NoError(t, err)
	assert.Equal(t, "xxx", got)

	_, err = tree.Decode("010")
	assert.ErrorIs(t, err, ErrBadBit)
}

func TestBuild_Errors(t *testing.T) {
	_, err := Build(nil)
	assert.ErrorIs(t, err, ErrNoSymbols)

	_, err = Build(map[rune]int{'a': 3, 'b': 0})
	assert.ErrorIs(t, err, ErrBadWeight)

	_, err = Build(map[rune]int{'a': -1})
	assert.ErrorIs(t, err, ErrBadWeight)
}

func TestEncode_UnknownRune(t *testing.T) {
	tree, err := Build(map[rune]int{'a': 1, 'b': 2})
	require.NoError(t, err)

	_, err = tree.Encode("abz")
	assert.ErrorIs(t, err, ErrUnknownRune)

	_, err = tree.Code('z')
	assert.ErrorIs(t, err, ErrUnknownRune)
}

func TestDecode_Errors(t *testing.T) {
	tree, err := Build(map[rune]int{'a': 1, 'b': 2, 'c': 4})
	require.NoError(t, err)

	_, err = tree.Decode("01x")
	assert.ErrorIs(t, err, ErrBadBit)

	// A lone prefix of a longer code is truncated input.
	bits, err := tree.Encode("a")
	require.NoError(t, err)
	require.Greater(t, len(bits), 1)
	_, err = tree.Decode(bits[:len(bits)-1])
	assert.ErrorIs(t, err, ErrTruncated)
}
