package core

// ExtendSelection grows or shrinks a selection by one text-boundary move.
// It is a pure function of the cursor, the move and the targeted side; the
// second return value reports whether anything changed.
//
// SideCursor applies the move to the live end directly. SideLeft/SideRight
// move the physical boundary on that side while the opposite boundary stays
// fixed; which of Position/Anchor holds which boundary is preserved, so the
// caller's notion of the anchor survives the call.
func ExtendSelection(buffer Buffer, cursor Cursor, op MoveOp, side SelectionSide) (Cursor, bool) {
	if side == SideCursor {
		pos, pref := applyMove(buffer, cursor.Position, cursor.Preferred, op)
		if pos == cursor.Position {
			return cursor, false
		}
		return Cursor{Position: pos, Anchor: cursor.Anchor, Preferred: pref}, true
	}

	if !cursor.HasSelection() {
		// Starting a selection inverted relative to the requested side is
		// refused outright.
		if side == SideRight && op.Backward() {
			return cursor, false
		}
		if side == SideLeft && op.Forward() {
			return cursor, false
		}
	}

	// The boundary further in the requested direction moves; the other end
	// is the pivot.
	moveAnchor := (side == SideRight && cursor.Anchor > cursor.Position) ||
		(side == SideLeft && cursor.Anchor < cursor.Position)

	moving := cursor.Position
	pivot := cursor.Anchor
	if moveAnchor {
		moving, pivot = pivot, moving
	}

	moved, pref := applyMove(buffer, moving, cursor.Preferred, op)

	// Shrinking past the pivot would invert the selection; stop at the pivot
	if side == SideLeft && moved > pivot {
		moved = pivot
	}
	if side == SideRight && moved < pivot {
		moved = pivot
	}

	if moved == moving {
		return cursor, false
	}

	next := cursor
	next.Preferred = pref
	if moveAnchor {
		next.Anchor = moved
	} else {
		next.Position = moved
	}
	return next, true
}
