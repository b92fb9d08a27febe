package core

import (
	"bytes"
	"sort"
	"unicode"

	"github.com/rivo/uniseg"
)

// Buffer represents the immutable text a viewer navigates (Using Runes).
// All offsets are rune offsets in [0, Len()]; the buffer is replaced
// wholesale when a new document is loaded and never mutated in between.
type Buffer interface {
	// Content access
	Len() int                    // Total rune count, including newlines
	Content() string             // Entire buffer content as a string
	Slice(start, end int) string // Content between two offsets
	IsEmpty() bool

	// Line geometry
	LineCount() int
	Line(row int) string   // Line content without the trailing newline
	LineStart(row int) int // Offset of the first rune of the line
	LineLen(row int) int   // Rune count of the line, newline excluded
	PositionAt(offset int) (row, col int)
	OffsetAt(row, col int) int
	Clamp(offset int) int

	// Search primitive: direction-aware, cursor-relative, case sensitive.
	// Forward finds the first occurrence starting at or after from;
	// backward finds the last occurrence ending at or before from.
	Find(pattern string, from int, backwards bool) (Match, bool)

	// Text boundaries
	NextGrapheme(offset int) int
	PrevGrapheme(offset int) int
	NextWordStart(offset int) int
	PrevWordStart(offset int) int
}

// Match holds the offsets of a found pattern occurrence: [Start, End).
type Match struct {
	Start int
	End   int
}

// textBuffer implementation using a flat rune slice plus a line index
type textBuffer struct {
	runes      []rune
	lineStarts []int // offset of the first rune of each line
}

// NewBuffer creates a new empty buffer
func NewBuffer() Buffer {
	return NewBufferFromBytes(nil)
}

// NewBufferFromBytes creates a buffer holding the given content
func NewBufferFromBytes(content []byte) Buffer {
	b := &textBuffer{runes: bytes.Runes(content)}
	b.reindex()
	return b
}

func (b *textBuffer) reindex() {
	b.lineStarts = []int{0}
	for i, r := range b.runes {
		if r == '\n' {
			b.lineStarts = append(b.lineStarts, i+1)
		}
	}
}

func (b *textBuffer) Len() int {
	return len(b.runes)
}

func (b *textBuffer) IsEmpty() bool {
	return len(b.runes) == 0
}

func (b *textBuffer) Content() string {
	return string(b.runes)
}

func (b *textBuffer) Slice(start, end int) string {
	start = b.Clamp(start)
	end = b.Clamp(end)
	if end < start {
		start, end = end, start
	}
	return string(b.runes[start:end])
}

func (b *textBuffer) LineCount() int {
	return len(b.lineStarts)
}

func (b *textBuffer) Line(row int) string {
	if row < 0 || row >= len(b.lineStarts) {
		return ""
	}
	return string(b.runes[b.lineStarts[row] : b.lineStarts[row]+b.LineLen(row)])
}

func (b *textBuffer) LineStart(row int) int {
	if row < 0 {
		return 0
	}
	if row >= len(b.lineStarts) {
		return len(b.runes)
	}
	return b.lineStarts[row]
}

func (b *textBuffer) LineLen(row int) int {
	if row < 0 || row >= len(b.lineStarts) {
		return 0
	}
	end := len(b.runes)
	if row+1 < len(b.lineStarts) {
		end = b.lineStarts[row+1] - 1 // Exclude the newline
	}
	return end - b.lineStarts[row]
}

// PositionAt maps a flat offset to its (row, col) coordinates
func (b *textBuffer) PositionAt(offset int) (row, col int) {
	offset = b.Clamp(offset)
	row = sort.Search(len(b.lineStarts), func(i int) bool {
		return b.lineStarts[i] > offset
	}) - 1
	col = offset - b.lineStarts[row]
	return row, col
}

// OffsetAt maps (row, col) coordinates back to a flat offset, clamping both
func (b *textBuffer) OffsetAt(row, col int) int {
	if row < 0 {
		row = 0
	}
	if row >= len(b.lineStarts) {
		row = len(b.lineStarts) - 1
	}
	lineLen := b.LineLen(row)
	if col < 0 {
		col = 0
	}
	if col > lineLen {
		// Allow the cursor to sit one position past the last character
		col = lineLen
	}
	return b.lineStarts[row] + col
}

func (b *textBuffer) Clamp(offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > len(b.runes) {
		return len(b.runes)
	}
	return offset
}

// Find searches forward or backward for the next occurrence of pattern.
// Returns the match and true if found, or false otherwise.
func (b *textBuffer) Find(pattern string, from int, backwards bool) (Match, bool) {
	searchRunes := []rune(pattern)
	searchLen := len(searchRunes)
	if searchLen == 0 {
		return Match{}, false
	}

	from = b.Clamp(from)

	if backwards {
		// Last occurrence ending at or before from
		start := from - searchLen
		if start > len(b.runes)-searchLen {
			start = len(b.runes) - searchLen
		}
		for s := start; s >= 0; s-- {
			if b.matchAt(s, searchRunes) {
				return Match{Start: s, End: s + searchLen}, true
			}
		}
		return Match{}, false
	}

	// First occurrence starting at or after from
	for s := from; s+searchLen <= len(b.runes); s++ {
		if b.matchAt(s, searchRunes) {
			return Match{Start: s, End: s + searchLen}, true
		}
	}
	return Match{}, false
}

func (b *textBuffer) matchAt(offset int, pattern []rune) bool {
	for i, r := range pattern {
		if b.runes[offset+i] != r {
			return false
		}
	}
	return true
}

// --- Text boundaries (graphemes and words) ---

// graphemeWindow bounds the text handed to the segmenter per step; no
// grapheme cluster comes close to this many runes.
const graphemeWindow = 256

// NextGrapheme returns the offset just past the grapheme cluster at offset
func (b *textBuffer) NextGrapheme(offset int) int {
	offset = b.Clamp(offset)
	if offset >= len(b.runes) {
		return len(b.runes)
	}
	end := min(offset+graphemeWindow, len(b.runes))
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(string(b.runes[offset:end]), -1)
	if cluster == "" {
		return offset + 1
	}
	return offset + len([]rune(cluster))
}

// PrevGrapheme returns the offset of the grapheme cluster ending at offset
func (b *textBuffer) PrevGrapheme(offset int) int {
	offset = b.Clamp(offset)
	if offset == 0 {
		return 0
	}
	start := max(0, offset-graphemeWindow)

	// Re-segment forward from the window start and keep the start of the
	// last cluster before offset
	rest := string(b.runes[start:offset])
	state := -1
	pos := start
	last := start
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if cluster == "" {
			break
		}
		last = pos
		pos += len([]rune(cluster))
	}
	return last
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}

func isWhiteSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// NextWordStart moves forward to the start of the next word. Punctuation
// runs count as words of their own.
func (b *textBuffer) NextWordStart(offset int) int {
	pos := b.Clamp(offset)
	n := len(b.runes)
	if pos >= n {
		return n
	}

	switch {
	case isWordChar(b.runes[pos]):
		for pos < n && isWordChar(b.runes[pos]) {
			pos++
		}
	case isWhiteSpace(b.runes[pos]):
		// Fall through to the whitespace skip below
	default:
		for pos < n && !isWordChar(b.runes[pos]) && !isWhiteSpace(b.runes[pos]) {
			pos++
		}
	}
	for pos < n && isWhiteSpace(b.runes[pos]) {
		pos++
	}
	return pos
}

// PrevWordStart moves backward to the start of the current or previous word
func (b *textBuffer) PrevWordStart(offset int) int {
	pos := b.Clamp(offset)
	if pos == 0 {
		return 0
	}
	pos--

	for pos >= 0 && isWhiteSpace(b.runes[pos]) {
		pos--
	}
	if pos < 0 {
		return 0
	}

	if isWordChar(b.runes[pos]) {
		for pos >= 0 && isWordChar(b.runes[pos]) {
			pos--
		}
	} else {
		for pos >= 0 && !isWordChar(b.runes[pos]) && !isWhiteSpace(b.runes[pos]) {
			pos--
		}
	}
	return pos + 1
}
