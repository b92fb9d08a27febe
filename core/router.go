package core

// Focus identifies which surface currently receives keys
type Focus int

const (
	FocusView Focus = iota
	FocusSearch
)

func (f Focus) String() string {
	if f == FocusSearch {
		return "search"
	}
	return "view"
}

// CommandKind enumerates the operations the router can resolve a chord to
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdScrollLineUp
	CmdScrollLineDown
	CmdScrollPageUp
	CmdScrollPageDown
	CmdScrollToStart
	CmdScrollToEnd
	CmdCyclePosition
	CmdExtend
	CmdFocusSearch
	CmdSearchForward
	CmdSearchBackward
)

// Command is a resolved key chord. Op and Side are only meaningful for
// CmdExtend.
type Command struct {
	Kind CommandKind
	Op   MoveOp
	Side SelectionSide
}

func extend(op MoveOp, side SelectionSide) Command {
	return Command{Kind: CmdExtend, Op: op, Side: side}
}

type chordPredicate func(KeyEvent) bool

type binding struct {
	matches chordPredicate
	cmd     Command
}

func chord(mods KeyModifiers, r rune) chordPredicate {
	return func(k KeyEvent) bool {
		return k.Rune == r && k.Modifiers == mods
	}
}

func chordKey(mods KeyModifiers, code KeyCode) chordPredicate {
	return func(k KeyEvent) bool {
		return k.Rune == 0 && k.Key == code && k.Modifiers == mods
	}
}

func anyOf(preds ...chordPredicate) chordPredicate {
	return func(k KeyEvent) bool {
		for _, p := range preds {
			if p(k) {
				return true
			}
		}
		return false
	}
}

// navBindings is the shared chord table: the navigation operations reachable
// both from the viewport and (Ctrl-modified) from the search field. Entries
// are checked in order, so chords with more modifiers come before their
// plain counterparts.
var navBindings = []binding{
	{anyOf(chord(ModCtrl, 'j'), chord(ModCtrl, 'n'), chordKey(ModNone, KeyDown)), Command{Kind: CmdScrollLineDown}},
	{anyOf(chord(ModCtrl, 'k'), chord(ModCtrl, 'p'), chordKey(ModNone, KeyUp)), Command{Kind: CmdScrollLineUp}},
	{anyOf(chord(ModCtrl, 'd'), chordKey(ModNone, KeyPageDown)), Command{Kind: CmdScrollPageDown}},
	{anyOf(chord(ModCtrl, 'u'), chordKey(ModNone, KeyPageUp)), Command{Kind: CmdScrollPageUp}},
	{anyOf(chordKey(ModNone, KeyEnd), chordKey(ModCtrl, KeyEnd)), Command{Kind: CmdScrollToEnd}},
	{anyOf(chordKey(ModNone, KeyHome), chordKey(ModCtrl, KeyHome)), Command{Kind: CmdScrollToStart}},

	{chord(ModCtrl, 'l'), Command{Kind: CmdCyclePosition}},

	// Bracket-style chords grow/shrink a specific side: Ctrl for characters,
	// plain for words; braces target the left side, brackets the right.
	{chord(ModCtrl, ']'), extend(NextChar, SideRight)},
	{chord(ModCtrl, '['), extend(PrevChar, SideRight)},
	{chord(ModCtrl, '}'), extend(NextChar, SideLeft)},
	{chord(ModCtrl, '{'), extend(PrevChar, SideLeft)},
	{chord(ModNone, ']'), extend(NextWord, SideRight)},
	{chord(ModNone, '['), extend(PrevWord, SideRight)},
	{chord(ModNone, '}'), extend(NextWord, SideLeft)},
	{chord(ModNone, '{'), extend(PrevWord, SideLeft)},

	// Platform shift-select chords: ordinary caret-relative extension
	{chordKey(ModCtrl|ModShift, KeyRight), extend(NextWord, SideCursor)},
	{chordKey(ModCtrl|ModShift, KeyLeft), extend(PrevWord, SideCursor)},
	{chordKey(ModShift, KeyRight), extend(NextChar, SideCursor)},
	{chordKey(ModShift, KeyLeft), extend(PrevChar, SideCursor)},
	{chordKey(ModShift, KeyDown), extend(Down, SideCursor)},
	{chordKey(ModShift, KeyUp), extend(Up, SideCursor)},

	// The viewer is read-only; the paste chord historically extends the
	// selection to the end of the document instead. Kept as is.
	{chord(ModCtrl, 'v'), extend(EndOfDocument, SideCursor)},
}

// RouteKey resolves a key chord to a command given the focused surface.
// The router is stateless and replayable; unmatched chords report false and
// fall through to the host view's default behavior.
func RouteKey(key KeyEvent, focus Focus) (Command, bool) {
	if focus == FocusSearch {
		// The search field gets first refusal: Enter triggers searches and
		// Ctrl-modified navigation chords are routed without stealing its
		// focus. Everything else is typed into the field.
		switch {
		case key.Key == KeyEnter && key.Modifiers&ModShift != 0:
			return Command{Kind: CmdSearchBackward}, true
		case key.Key == KeyEnter:
			return Command{Kind: CmdSearchForward}, true
		}
		if key.Modifiers&ModCtrl == 0 {
			return Command{}, false
		}
		for _, b := range navBindings {
			if b.matches(key) {
				return b.cmd, true
			}
		}
		return Command{}, false
	}

	switch {
	case chord(ModCtrl, 'f')(key) || chord(ModNone, '/')(key):
		return Command{Kind: CmdFocusSearch}, true
	case key.Key == KeyEnter && key.Modifiers&ModShift != 0:
		return Command{Kind: CmdSearchBackward}, true
	case key.Key == KeyEnter:
		return Command{Kind: CmdSearchForward}, true
	}

	for _, b := range navBindings {
		if b.matches(key) {
			return b.cmd, true
		}
	}
	return Command{}, false
}
