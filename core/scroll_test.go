package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCyclePositionCentersTopBottom(t *testing.T) {
	v := New().(*viewer)
	v.Load(numberedLines(100))
	g := newFakeGeometry(v, 10)
	v.SetGeometry(g)

	v.SetCursor(Collapsed(v.Buffer().LineStart(50)))

	// The caret moved since the last invocation, so the cycle restarts at
	// center; subsequent presses walk top, bottom, center again.
	wantTops := []int{4, 0, 9, 4}
	for i, want := range wantTops {
		v.CyclePosition()
		assert.Equal(t, want, g.CaretRect().Top, "press %d", i+1)
	}
	assert.Equal(t, PhaseCenter, v.NavState().CyclePhase)
}

func TestCyclePositionRestartsAfterCaretMove(t *testing.T) {
	v := New().(*viewer)
	v.Load(numberedLines(100))
	g := newFakeGeometry(v, 10)
	v.SetGeometry(g)

	v.SetCursor(Collapsed(v.Buffer().LineStart(50)))
	v.CyclePosition()
	v.CyclePosition()
	require.Equal(t, PhaseTop, v.NavState().CyclePhase)

	// Any caret movement resets the cycle to center
	v.SetCursor(Collapsed(v.Buffer().LineStart(60)))
	v.CyclePosition()
	assert.Equal(t, PhaseCenter, v.NavState().CyclePhase)
	assert.Equal(t, 4, g.CaretRect().Top)
}

func TestCyclePositionAtDocumentStartTerminates(t *testing.T) {
	v := New().(*viewer)
	v.Load(numberedLines(100))
	g := newFakeGeometry(v, 10)
	v.SetGeometry(g)

	// The caret is pinned to the first row: no phase is reachable, but the
	// retries exhaust without scrolling anywhere.
	v.CyclePosition()
	assert.Equal(t, 0, g.CaretRect().Top)
	assert.Equal(t, 0, g.yOffset)
}

func TestCyclePositionShortDocument(t *testing.T) {
	v := New().(*viewer)
	v.Load(numberedLines(5))
	g := newFakeGeometry(v, 10)
	v.SetGeometry(g)

	// Everything fits on screen, so scrolling is clamped to a no-op
	v.SetCursor(Collapsed(v.Buffer().LineStart(3)))
	v.CyclePosition()
	assert.Equal(t, 3, g.CaretRect().Top)
	assert.Equal(t, 0, g.yOffset)
}

func TestCyclePositionWithoutGeometryReportsError(t *testing.T) {
	v := New().(*viewer)

	v.CyclePosition()

	select {
	case sig := <-v.GetUpdateSignalChan():
		errSig, ok := sig.(ErrorSignal)
		require.True(t, ok, "expected an error signal, got %T", sig)
		id, err := errSig.Value()
		assert.Equal(t, ErrNoGeometryId, id)
		assert.ErrorIs(t, err, ErrNoGeometry)
	default:
		t.Fatal("no signal dispatched")
	}
}

func TestScrollToTargetStopsAtScrollLimit(t *testing.T) {
	v := New().(*viewer)
	v.Load(numberedLines(100))
	g := newFakeGeometry(v, 10)
	v.SetGeometry(g)

	// Caret on the first row with the view already at the top: moving the
	// caret down the screen needs scrolling above the document, which the
	// geometry clamps away.
	assert.False(t, v.scrollToTarget(5, AnchorBottom))
	assert.Equal(t, 0, g.yOffset)

	// A reachable target reports the net movement
	v.SetCursor(Collapsed(v.Buffer().LineStart(50)))
	g.EnsureCaretVisible()
	assert.True(t, v.scrollToTarget(5, AnchorBottom))
	assert.Equal(t, 4, g.CaretRect().Top)
}
