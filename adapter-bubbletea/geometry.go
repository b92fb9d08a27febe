package bubble_adapter

import (
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/annotext/textview/core"
)

// viewportGeometry adapts a bubbles viewport to the engine's Geometry
// collaborator. One buffer line renders as one viewport row, so screen
// coordinates are buffer rows shifted by the scroll offset.
type viewportGeometry struct {
	viewer   core.Viewer
	viewport *viewport.Model
}

func (g *viewportGeometry) caretRow() int {
	row, _ := g.viewer.Buffer().PositionAt(g.viewer.Cursor().Position)
	return row
}

func (g *viewportGeometry) CaretRect() core.Rect {
	top := g.caretRow() - g.viewport.YOffset
	return core.Rect{Top: top, Bottom: top + 1}
}

func (g *viewportGeometry) ViewRect() core.Rect {
	return core.Rect{Top: 0, Bottom: g.viewport.Height}
}

func (g *viewportGeometry) VisibleRange() (int, int) {
	buffer := g.viewer.Buffer()
	top := buffer.LineStart(g.viewport.YOffset)
	bottom := buffer.LineStart(g.viewport.YOffset + g.viewport.Height)
	return top, bottom
}

func (g *viewportGeometry) EnsureCaretVisible() {
	row := g.caretRow()
	if row < g.viewport.YOffset {
		g.viewport.SetYOffset(row)
	} else if row >= g.viewport.YOffset+g.viewport.Height {
		g.viewport.SetYOffset(row - g.viewport.Height + 1)
	}
}

func (g *viewportGeometry) ScrollLineUp()   { g.viewport.ScrollUp(1) }
func (g *viewportGeometry) ScrollLineDown() { g.viewport.ScrollDown(1) }
func (g *viewportGeometry) ScrollPageUp()   { g.viewport.PageUp() }
func (g *viewportGeometry) ScrollPageDown() { g.viewport.PageDown() }
func (g *viewportGeometry) ScrollToStart()  { g.viewport.GotoTop() }
func (g *viewportGeometry) ScrollToEnd()    { g.viewport.GotoBottom() }
