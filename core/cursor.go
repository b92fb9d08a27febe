package core

// Cursor represents the current position for navigation operations.
// Position is the live end most operations move; Anchor is the end
// selection growth pivots around. Both are rune offsets in [0, Len].
type Cursor struct {
	Position  int
	Anchor    int
	Preferred int // Preferred column for vertical movement (sticky column)
}

// Selection is the derived, normalized span of a cursor
type Selection struct {
	Start int
	End   int
}

// Selection returns the normalized (start, end) span; Start <= End always.
func (c Cursor) Selection() Selection {
	if c.Anchor <= c.Position {
		return Selection{Start: c.Anchor, End: c.Position}
	}
	return Selection{Start: c.Position, End: c.Anchor}
}

// HasSelection reports whether the cursor spans any text
func (c Cursor) HasSelection() bool {
	return c.Position != c.Anchor
}

// Collapsed returns a cursor with both ends at offset
func Collapsed(offset int) Cursor {
	return Cursor{Position: offset, Anchor: offset}
}

// MoveOp identifies a text-boundary move applied during selection extension
type MoveOp int

const (
	NextChar MoveOp = iota
	PrevChar
	NextWord
	PrevWord
	Up
	Down
	StartOfDocument
	EndOfDocument
)

func (op MoveOp) String() string {
	switch op {
	case NextChar:
		return "next-char"
	case PrevChar:
		return "prev-char"
	case NextWord:
		return "next-word"
	case PrevWord:
		return "prev-word"
	case Up:
		return "up"
	case Down:
		return "down"
	case StartOfDocument:
		return "start-of-document"
	case EndOfDocument:
		return "end-of-document"
	}
	return "unknown"
}

// Forward reports whether the op moves toward the end of the buffer
func (op MoveOp) Forward() bool {
	switch op {
	case NextChar, NextWord, Down, EndOfDocument:
		return true
	}
	return false
}

// Backward reports whether the op moves toward the start of the buffer
func (op MoveOp) Backward() bool {
	switch op {
	case PrevChar, PrevWord, Up, StartOfDocument:
		return true
	}
	return false
}

// SelectionSide identifies which semantic boundary an extension call
// targets; SideCursor means ordinary caret-relative extension.
type SelectionSide int

const (
	SideCursor SelectionSide = iota
	SideLeft
	SideRight
)

func (s SelectionSide) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "cursor"
}

// Direction selects forward or backward search
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// applyMove shifts a single offset by a text-boundary move and returns the
// new offset together with the new preferred column. Offsets never leave
// [0, buffer.Len()]; moves at a buffer boundary stay put.
func applyMove(buffer Buffer, offset, preferred int, op MoveOp) (int, int) {
	switch op {
	case NextChar:
		offset = buffer.NextGrapheme(offset)
	case PrevChar:
		offset = buffer.PrevGrapheme(offset)
	case NextWord:
		offset = buffer.NextWordStart(offset)
	case PrevWord:
		offset = buffer.PrevWordStart(offset)
	case StartOfDocument:
		offset = 0
	case EndOfDocument:
		offset = buffer.Len()
	case Up, Down:
		row, col := buffer.PositionAt(offset)
		target := row - 1
		if op == Down {
			target = row + 1
		}
		if target < 0 || target >= buffer.LineCount() {
			// First or last line: vertical moves stay put
			return offset, preferred
		}
		if preferred < col {
			preferred = col
		}
		return buffer.OffsetAt(target, preferred), preferred
	}

	_, col := buffer.PositionAt(offset)
	return offset, col
}
