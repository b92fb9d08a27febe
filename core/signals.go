package core

type Signal any

// SelectionChangedSignal is emitted whenever the cursor or selection moves.
type SelectionChangedSignal struct {
	start int
	end   int
}

func (s SelectionChangedSignal) Value() (start, end int) {
	start = s.start
	end = s.end

	return start, end
}

// SearchHitSignal is emitted when a search lands on a match.
type SearchHitSignal struct {
	match     Match
	direction Direction
}

func (s SearchHitSignal) Value() (match Match, direction Direction) {
	match = s.match
	direction = s.direction

	return match, direction
}

// SearchMissSignal is emitted when a search fails even after wrapping.
type SearchMissSignal struct {
	pattern string
}

func (s SearchMissSignal) Value() string {
	return s.pattern
}

// FocusSignal is emitted when focus moves between the viewport and the
// search field.
type FocusSignal struct {
	focus Focus
}

func (f FocusSignal) Value() Focus {
	return f.focus
}

// PatternChangedSignal reflects whether the search affordances should be
// enabled.
type PatternChangedSignal struct {
	hasPattern bool
}

func (p PatternChangedSignal) Value() bool {
	return p.hasPattern
}

// LoadSignal is emitted when a new document replaces the buffer.
type LoadSignal struct {
	length int
}

func (l LoadSignal) Value() int {
	return l.length
}

type ErrorSignal Error

func (e ErrorSignal) Value() (id ErrorId, err error) {
	id = e.id
	err = e.err

	return id, err
}

func (v *viewer) DispatchSignal(signal Signal) {
	select {
	case v.updateSignal <- signal:
	default: // Ignore if the channel is full
	}
}
