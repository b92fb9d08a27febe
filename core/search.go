package core

// Search looks for pattern in the requested direction and moves the cursor
// to straddle the hit. It returns true iff the cursor moved.
//
// The starting point is the last match (or the last user-driven selection
// change); when that point has scrolled out of the visible region the
// search restarts from the edge of what the user can currently see. A
// failed attempt retries once from the opposite extreme of the buffer, so
// a search never scans the document more than twice.
func (v *viewer) Search(pattern string, direction Direction) bool {
	if pattern == "" {
		return false
	}

	v.FocusView()

	last := v.nav.LastMatch
	if v.geometry != nil {
		viewTop, viewBottom := v.geometry.VisibleRange()
		if last.Position < viewTop || last.Position >= viewBottom {
			if direction == Backward {
				last = Collapsed(viewBottom)
			} else {
				last = Collapsed(viewTop)
			}
		}
	}

	// Forward resumes after the last hit's selection, backward before it,
	// so repeated searches in either direction make strict progress.
	backwards := direction == Backward
	from := last.Selection().End
	if backwards {
		from = last.Selection().Start
	}

	match, found := v.buffer.Find(pattern, from, backwards)
	if !found {
		// Wrap around: retry once from the buffer's absolute extreme
		restart := 0
		if backwards {
			restart = v.buffer.Len()
		}
		match, found = v.buffer.Find(pattern, restart, backwards)
	}
	if !found {
		v.DispatchSignal(SearchMissSignal{pattern: pattern})
		return false
	}

	// Straddle the match so the next search in the same direction makes
	// strict progress: forward leaves the live end at the match end,
	// backward at the match start.
	cursor := Cursor{Position: match.End, Anchor: match.Start}
	if backwards {
		cursor = Cursor{Position: match.Start, Anchor: match.End}
	}
	_, cursor.Preferred = v.buffer.PositionAt(cursor.Position)

	v.setCursor(cursor)
	v.DispatchSignal(SearchHitSignal{match: match, direction: direction})

	if v.geometry != nil {
		v.geometry.EnsureCaretVisible()
	}

	return true
}

// SearchForward searches for the current pattern toward the end of the
// document.
func (v *viewer) SearchForward() bool {
	return v.Search(v.pattern, Forward)
}

// SearchBackward searches for the current pattern toward the start of the
// document.
func (v *viewer) SearchBackward() bool {
	return v.Search(v.pattern, Backward)
}
