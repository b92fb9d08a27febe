package core

import (
	"fmt"
	"strings"
)

// fakeGeometry is a scripted line-based geometry: one screen row per buffer
// line, scrolling by adjusting a clamped y-offset. It mirrors what the
// bubbletea adapter does with a real viewport.
type fakeGeometry struct {
	v       *viewer
	height  int
	yOffset int
}

func newFakeGeometry(v Viewer, height int) *fakeGeometry {
	return &fakeGeometry{v: v.(*viewer), height: height}
}

func (g *fakeGeometry) maxYOffset() int {
	lines := g.v.buffer.LineCount()
	if lines <= g.height {
		return 0
	}
	return lines - g.height
}

func (g *fakeGeometry) caretRow() int {
	row, _ := g.v.buffer.PositionAt(g.v.cursor.Position)
	return row
}

func (g *fakeGeometry) CaretRect() Rect {
	top := g.caretRow() - g.yOffset
	return Rect{Top: top, Bottom: top + 1}
}

func (g *fakeGeometry) ViewRect() Rect {
	return Rect{Top: 0, Bottom: g.height}
}

func (g *fakeGeometry) VisibleRange() (int, int) {
	return g.v.buffer.LineStart(g.yOffset), g.v.buffer.LineStart(g.yOffset + g.height)
}

func (g *fakeGeometry) EnsureCaretVisible() {
	row := g.caretRow()
	if row < g.yOffset {
		g.yOffset = row
	} else if row >= g.yOffset+g.height {
		g.yOffset = row - g.height + 1
	}
}

func (g *fakeGeometry) setYOffset(offset int) {
	if offset < 0 {
		offset = 0
	}
	if offset > g.maxYOffset() {
		offset = g.maxYOffset()
	}
	g.yOffset = offset
}

func (g *fakeGeometry) ScrollLineUp()   { g.setYOffset(g.yOffset - 1) }
func (g *fakeGeometry) ScrollLineDown() { g.setYOffset(g.yOffset + 1) }
func (g *fakeGeometry) ScrollPageUp()   { g.setYOffset(g.yOffset - g.height) }
func (g *fakeGeometry) ScrollPageDown() { g.setYOffset(g.yOffset + g.height) }
func (g *fakeGeometry) ScrollToStart()  { g.setYOffset(0) }
func (g *fakeGeometry) ScrollToEnd()    { g.setYOffset(g.maxYOffset()) }

// numberedLines builds an n-line document with predictable line contents
func numberedLines(n int) []byte {
	var sb strings.Builder
	for i := range n {
		fmt.Fprintf(&sb, "line %03d", i)
		if i < n-1 {
			sb.WriteByte('\n')
		}
	}
	return []byte(sb.String())
}
