package core

// Viewer is the navigation engine behind a read-only text viewport. It owns
// the buffer, the cursor/selection and the carry-over navigation state;
// rendering and scrolling are delegated to an attached Geometry.
type Viewer interface {
	// Buffer access
	Load(content []byte) // Replace the document, reset cursor and last match
	Buffer() Buffer

	// Cursor/selection
	Cursor() Cursor
	SetCursor(Cursor)                     // Clamped; counts as a user-driven selection change
	CurrentSelection() (start, end int)
	SelectedText() string

	// Event handling
	HandleKey(key KeyEvent) bool // Route a key press; false = not consumed
	Execute(cmd Command) bool    // Run an already-resolved command

	// Operations
	Search(pattern string, direction Direction) bool
	SearchForward() bool
	SearchBackward() bool
	Extend(op MoveOp, side SelectionSide) bool
	CyclePosition()

	// Search-entry surface
	SetPattern(pattern string)
	Pattern() string
	HasPattern() bool

	// Focus
	Focus() Focus
	FocusView()
	FocusSearch()

	// Collaborators
	SetGeometry(Geometry)
	GetUpdateSignalChan() <-chan Signal
	DispatchSignal(signal Signal)
	DispatchError(id ErrorId, err error)

	// Introspection (used by adapters and tests)
	NavState() NavState
}

type viewer struct {
	buffer   Buffer
	cursor   Cursor
	nav      NavState
	pattern  string
	focus    Focus
	geometry Geometry

	updateSignal chan Signal
}

// New creates a viewer holding an empty document
func New() Viewer {
	return &viewer{
		buffer:       NewBuffer(),
		updateSignal: make(chan Signal, 100), // Buffered channel for updates
	}
}

// Load replaces the buffer wholesale. The cursor and the last match reset
// to the buffer start; the previous document's state does not leak into the
// new one.
func (v *viewer) Load(content []byte) {
	v.buffer = NewBufferFromBytes(content)
	v.cursor = Collapsed(0)
	v.nav = NavState{}
	v.DispatchSignal(LoadSignal{length: v.buffer.Len()})
	v.DispatchSignal(PatternChangedSignal{hasPattern: v.pattern != ""})
}

func (v *viewer) Buffer() Buffer {
	return v.buffer
}

func (v *viewer) Cursor() Cursor {
	return v.cursor
}

// SetCursor clamps and applies a cursor, mirroring it into the last-match
// state the way the original selection-change hook does.
func (v *viewer) SetCursor(cursor Cursor) {
	cursor.Position = v.buffer.Clamp(cursor.Position)
	cursor.Anchor = v.buffer.Clamp(cursor.Anchor)
	v.setCursor(cursor)
}

// setCursor is the single write path for the cursor: every user-driven
// selection change also becomes the next search's starting point.
func (v *viewer) setCursor(cursor Cursor) {
	v.cursor = cursor
	v.nav.LastMatch = cursor
	sel := cursor.Selection()
	v.DispatchSignal(SelectionChangedSignal{start: sel.Start, end: sel.End})
}

func (v *viewer) CurrentSelection() (start, end int) {
	sel := v.cursor.Selection()
	return sel.Start, sel.End
}

func (v *viewer) SelectedText() string {
	sel := v.cursor.Selection()
	return v.buffer.Slice(sel.Start, sel.End)
}

// Extend applies a directional selection move; degenerate requests are
// silent no-ops. Returns whether the selection changed.
func (v *viewer) Extend(op MoveOp, side SelectionSide) bool {
	next, changed := ExtendSelection(v.buffer, v.cursor, op, side)
	if !changed {
		return false
	}
	v.setCursor(next)
	if v.geometry != nil {
		v.geometry.EnsureCaretVisible()
	}
	return true
}

// HandleKey routes a key press through the chord table and executes the
// resolved command. Unmatched keys return false so the host view can apply
// its default behavior.
func (v *viewer) HandleKey(key KeyEvent) bool {
	cmd, ok := RouteKey(key, v.focus)
	if !ok {
		return false
	}
	return v.Execute(cmd)
}

// Execute runs a resolved command. Scroll commands require an attached
// geometry and degrade to no-ops without one.
func (v *viewer) Execute(cmd Command) bool {
	switch cmd.Kind {
	case CmdExtend:
		v.Extend(cmd.Op, cmd.Side)
	case CmdCyclePosition:
		v.CyclePosition()
	case CmdSearchForward:
		v.SearchForward()
	case CmdSearchBackward:
		v.SearchBackward()
	case CmdFocusSearch:
		v.FocusSearch()
	case CmdScrollLineUp, CmdScrollLineDown, CmdScrollPageUp, CmdScrollPageDown,
		CmdScrollToStart, CmdScrollToEnd:
		if v.geometry == nil {
			v.DispatchError(ErrNoGeometryId, ErrNoGeometry)
			return true
		}
		switch cmd.Kind {
		case CmdScrollLineUp:
			v.geometry.ScrollLineUp()
		case CmdScrollLineDown:
			v.geometry.ScrollLineDown()
		case CmdScrollPageUp:
			v.geometry.ScrollPageUp()
		case CmdScrollPageDown:
			v.geometry.ScrollPageDown()
		case CmdScrollToStart:
			v.geometry.ScrollToStart()
		case CmdScrollToEnd:
			v.geometry.ScrollToEnd()
		}
	default:
		return false
	}
	return true
}

// SetPattern records the current search-entry text. It only gates the
// search affordances; the cursor and last match are untouched.
func (v *viewer) SetPattern(pattern string) {
	if v.pattern == pattern {
		return
	}
	v.pattern = pattern
	v.DispatchSignal(PatternChangedSignal{hasPattern: pattern != ""})
}

func (v *viewer) Pattern() string {
	return v.pattern
}

func (v *viewer) HasPattern() bool {
	return v.pattern != ""
}

func (v *viewer) Focus() Focus {
	return v.focus
}

func (v *viewer) FocusView() {
	if v.focus == FocusView {
		return
	}
	v.focus = FocusView
	v.DispatchSignal(FocusSignal{focus: FocusView})
}

func (v *viewer) FocusSearch() {
	if v.focus == FocusSearch {
		return
	}
	v.focus = FocusSearch
	v.DispatchSignal(FocusSignal{focus: FocusSearch})
}

func (v *viewer) SetGeometry(geometry Geometry) {
	v.geometry = geometry
}

func (v *viewer) GetUpdateSignalChan() <-chan Signal {
	return v.updateSignal // Return the read-only channel
}

func (v *viewer) NavState() NavState {
	return v.nav
}
