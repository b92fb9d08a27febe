package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferLineGeometry(t *testing.T) {
	b := NewBufferFromBytes([]byte("one\ntwo\n\nfour"))

	require.Equal(t, 13, b.Len())
	require.Equal(t, 4, b.LineCount())

	assert.Equal(t, "one", b.Line(0))
	assert.Equal(t, "two", b.Line(1))
	assert.Equal(t, "", b.Line(2))
	assert.Equal(t, "four", b.Line(3))

	assert.Equal(t, 0, b.LineStart(0))
	assert.Equal(t, 4, b.LineStart(1))
	assert.Equal(t, 8, b.LineStart(2))
	assert.Equal(t, 9, b.LineStart(3))

	assert.Equal(t, 3, b.LineLen(0))
	assert.Equal(t, 0, b.LineLen(2))
	assert.Equal(t, 4, b.LineLen(3))
}

func TestBufferPositionRoundTrip(t *testing.T) {
	b := NewBufferFromBytes([]byte("one\ntwo\n\nfour"))

	row, col := b.PositionAt(5)
	assert.Equal(t, 1, row)
	assert.Equal(t, 1, col)

	// Offset sitting on a newline belongs to the line it terminates
	row, col = b.PositionAt(3)
	assert.Equal(t, 0, row)
	assert.Equal(t, 3, col)

	assert.Equal(t, 5, b.OffsetAt(1, 1))
	assert.Equal(t, 13, b.OffsetAt(3, 4))

	// Out-of-range coordinates clamp instead of failing
	assert.Equal(t, 3, b.OffsetAt(0, 99))
	assert.Equal(t, 9, b.OffsetAt(99, 0))
	assert.Equal(t, 0, b.OffsetAt(-1, -1))
}

func TestBufferFindForward(t *testing.T) {
	b := NewBufferFromBytes([]byte("cat dog cat fish cat"))

	m, ok := b.Find("cat", 0, false)
	require.True(t, ok)
	assert.Equal(t, Match{Start: 0, End: 3}, m)

	m, ok = b.Find("cat", 3, false)
	require.True(t, ok)
	assert.Equal(t, Match{Start: 8, End: 11}, m)

	_, ok = b.Find("cat", 18, false)
	assert.False(t, ok)

	_, ok = b.Find("zebra", 0, false)
	assert.False(t, ok)

	_, ok = b.Find("", 0, false)
	assert.False(t, ok)
}

func TestBufferFindBackward(t *testing.T) {
	b := NewBufferFromBytes([]byte("cat dog cat fish cat"))

	m, ok := b.Find("cat", b.Len(), true)
	require.True(t, ok)
	assert.Equal(t, Match{Start: 17, End: 20}, m)

	// Backward finds the last occurrence ending at or before from
	m, ok = b.Find("cat", 17, true)
	require.True(t, ok)
	assert.Equal(t, Match{Start: 8, End: 11}, m)

	_, ok = b.Find("cat", 2, true)
	assert.False(t, ok)
}

func TestBufferFindSpansLines(t *testing.T) {
	b := NewBufferFromBytes([]byte("first\nsecond\nthird"))

	m, ok := b.Find("nd\nth", 0, false)
	require.True(t, ok)
	assert.Equal(t, "nd\nth", b.Slice(m.Start, m.End))
}

func TestBufferGraphemeSteps(t *testing.T) {
	// "e" followed by a combining acute is a single two-rune cluster
	b := NewBufferFromBytes([]byte("ae\u0301b"))

	require.Equal(t, 4, b.Len())
	assert.Equal(t, 1, b.NextGrapheme(0))
	assert.Equal(t, 3, b.NextGrapheme(1))
	assert.Equal(t, 4, b.NextGrapheme(3))
	assert.Equal(t, 4, b.NextGrapheme(4))

	assert.Equal(t, 3, b.PrevGrapheme(4))
	assert.Equal(t, 1, b.PrevGrapheme(3))
	assert.Equal(t, 0, b.PrevGrapheme(1))
	assert.Equal(t, 0, b.PrevGrapheme(0))
}

func TestBufferWordBoundaries(t *testing.T) {
	b := NewBufferFromBytes([]byte("one two,  three\nfour"))

	// Word -> skip word then whitespace
	assert.Equal(t, 4, b.NextWordStart(0))
	// Punctuation run is a word of its own
	assert.Equal(t, 7, b.NextWordStart(4))
	assert.Equal(t, 10, b.NextWordStart(7))
	// Newlines behave like whitespace
	assert.Equal(t, 16, b.NextWordStart(10))
	assert.Equal(t, 20, b.NextWordStart(16))
	assert.Equal(t, 20, b.NextWordStart(20))

	assert.Equal(t, 16, b.PrevWordStart(20))
	assert.Equal(t, 10, b.PrevWordStart(16))
	assert.Equal(t, 7, b.PrevWordStart(10))
	assert.Equal(t, 4, b.PrevWordStart(7))
	assert.Equal(t, 0, b.PrevWordStart(4))
	assert.Equal(t, 0, b.PrevWordStart(0))

	// From inside a word, backward lands on the word's own start
	assert.Equal(t, 10, b.PrevWordStart(12))
}

func TestBufferEmpty(t *testing.T) {
	b := NewBuffer()

	assert.True(t, b.IsEmpty())
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 1, b.LineCount())
	assert.Equal(t, 0, b.NextGrapheme(0))
	assert.Equal(t, 0, b.PrevGrapheme(0))
	assert.Equal(t, 0, b.NextWordStart(0))
	assert.Equal(t, 0, b.PrevWordStart(0))

	_, ok := b.Find("x", 0, false)
	assert.False(t, ok)
}
