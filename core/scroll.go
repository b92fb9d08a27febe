package core

// Rect is a vertical extent in the geometry collaborator's screen
// coordinates. For terminal adapters the unit is one text row.
type Rect struct {
	Top    int
	Bottom int
}

func (r Rect) Height() int {
	return r.Bottom - r.Top
}

// Geometry is the rendering collaborator the engine scrolls through. The
// engine only ever issues discrete steps; the collaborator owns the actual
// view state and clamps at document boundaries.
type Geometry interface {
	CaretRect() Rect              // Caret extent in screen coordinates
	ViewRect() Rect               // Viewport extent in screen coordinates
	VisibleRange() (top, bot int) // Visible buffer offsets, [top, bot)
	EnsureCaretVisible()

	ScrollLineUp()   // One step toward the start of the document
	ScrollLineDown() // One step toward the end of the document
	ScrollPageUp()
	ScrollPageDown()
	ScrollToStart()
	ScrollToEnd()
}

// CyclePhase is the caret's target vertical screen position, persisted
// across invocations of the caret-height cycle.
type CyclePhase int

const (
	PhaseCenter CyclePhase = iota
	PhaseTop
	PhaseBottom
)

func (p CyclePhase) String() string {
	switch p {
	case PhaseTop:
		return "top"
	case PhaseBottom:
		return "bottom"
	}
	return "center"
}

// AnchorSide selects which caret edge scrollToTarget positions
type AnchorSide int

const (
	AnchorTop AnchorSide = iota
	AnchorBottom
)

// NavState is the carry-over state between key dispatches: the cursor of
// the most recent search hit or selection change, plus the caret-height
// cycle bookkeeping. Nothing else persists between dispatches.
type NavState struct {
	LastMatch        Cursor
	CyclePhase       CyclePhase
	LastCursorOffset int
}

// CyclePosition re-scrolls so the caret lands on the next position of the
// fixed Center -> Top -> Bottom cycle. A target can be unreachable when the
// caret is pinned at a document boundary; in that case the next phases are
// tried, at most three in total.
func (v *viewer) CyclePosition() {
	if v.geometry == nil {
		v.DispatchError(ErrNoGeometryId, ErrNoGeometry)
		return
	}

	top := v.geometry.CaretRect().Top
	for range 3 {
		v.cyclePositionOnce()
		if v.geometry.CaretRect().Top != top {
			return
		}
	}
}

func (v *viewer) cyclePositionOnce() {
	v.geometry.EnsureCaretVisible()

	view := v.geometry.ViewRect()
	center := (view.Top + view.Bottom) / 2

	var target CyclePhase
	if v.cursor.Position != v.nav.LastCursorOffset {
		// The caret moved since the previous invocation: restart the cycle
		target = PhaseCenter
		v.nav.LastCursorOffset = v.cursor.Position
	} else {
		target = (v.nav.CyclePhase + 1) % 3
	}

	switch target {
	case PhaseCenter:
		v.scrollToTarget(center, AnchorBottom)
	case PhaseTop:
		v.scrollToTarget(view.Top, AnchorTop)
	case PhaseBottom:
		v.scrollToTarget(view.Bottom, AnchorBottom)
	}
	v.nav.CyclePhase = target
}

// scrollToTarget issues single-line scroll steps until the chosen caret
// edge reaches the target coordinate. Each step must change the coordinate
// for the loop to continue, so the scroll limit terminates it. Returns
// whether any net scrolling occurred.
func (v *viewer) scrollToTarget(target int, side AnchorSide) bool {
	lineHeight := v.geometry.CaretRect().Height()
	pos := v.caretEdge(side)
	initial := pos

	if pos <= target-lineHeight {
		// Scroll up, ie move the caret down on the screen
		for {
			prev := pos
			v.geometry.ScrollLineUp()
			pos = v.caretEdge(side)
			if pos == prev || pos > target-lineHeight {
				break
			}
		}
		return pos != initial
	}

	if pos >= target+lineHeight {
		// Scroll down, ie move the caret up on the screen
		for {
			prev := pos
			v.geometry.ScrollLineDown()
			pos = v.caretEdge(side)
			if pos == prev || pos < target+lineHeight {
				break
			}
		}
		return pos != initial
	}

	return false
}

func (v *viewer) caretEdge(side AnchorSide) int {
	if side == AnchorTop {
		return v.geometry.CaretRect().Top
	}
	return v.geometry.CaretRect().Bottom
}
