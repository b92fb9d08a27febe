package bubble_adapter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/annotext/textview/adapter-bubbletea/highlighter"
	"github.com/annotext/textview/core"
)

// refreshContent rebuilds the viewport content from the buffer, painting
// the selection, the search matches and the caret. One buffer line is one
// viewport row; overflowing columns are cut at the viewport edge.
func (m *Model) refreshContent() {
	buffer := m.viewer.Buffer()
	cursor := m.viewer.Cursor()
	sel := cursor.Selection()
	caretRow, _ := buffer.PositionAt(cursor.Position)

	gutter := m.gutterWidth()
	width := m.viewport.Width - gutter
	if width <= 0 {
		width = 1
	}

	var sb strings.Builder
	for row := range buffer.LineCount() {
		if row > 0 {
			sb.WriteByte('\n')
		}

		if gutter > 0 {
			style := m.theme.LineNumberStyle
			if row == caretRow {
				style = m.theme.CurrentLineNumberStyle
			}
			sb.WriteString(style.Width(gutter-1).Render(strconv.Itoa(row+1)) + " ")
		}

		sb.WriteString(m.renderLine(row, sel, cursor.Position, width))
	}

	m.viewport.SetContent(sb.String())
}

func (m *Model) renderLine(row int, sel core.Selection, caret, width int) string {
	buffer := m.viewer.Buffer()
	lineStart := buffer.LineStart(row)
	runes := []rune(buffer.Line(row))

	var spans []highlighter.Span
	if m.highlighter != nil {
		spans = m.highlighter.SpansForLine(row, m.plainLines)
	}
	matches := matchSpans(runes, m.viewer.Pattern())

	var sb strings.Builder
	used := 0
	for col, r := range runes {
		w := runewidth.RuneWidth(r)
		if used+w > width {
			return sb.String()
		}
		used += w

		style := m.styleAt(lineStart+col, col, sel, caret, spans, matches)
		sb.WriteString(style.Render(string(r)))
	}

	// The caret past the last character renders as a block on the newline
	if caret == lineStart+len(runes) && used < width && m.viewer.Focus() == core.FocusView {
		sb.WriteString(m.theme.CursorStyle.Render(" "))
	}

	return sb.String()
}

// styleAt resolves the style of a single cell. The caret wins over the
// selection, the selection over search matches, matches over syntax.
func (m *Model) styleAt(offset, col int, sel core.Selection, caret int, spans []highlighter.Span, matches [][2]int) lipgloss.Style {
	if offset == caret && m.viewer.Focus() == core.FocusView {
		return m.theme.CursorStyle
	}
	if sel.Start <= offset && offset < sel.End {
		return m.theme.SelectionStyle
	}
	for _, match := range matches {
		if match[0] <= col && col < match[1] {
			return m.theme.MatchStyle
		}
	}
	for _, span := range spans {
		if span.StartCol <= col && col < span.EndCol {
			return span.Style
		}
	}
	return lipgloss.NewStyle()
}

// matchSpans finds the pattern occurrences within a single line, as rune
// column spans. Matches spanning a newline are painted by the selection
// when they are the current hit.
func matchSpans(line []rune, pattern string) [][2]int {
	if pattern == "" {
		return nil
	}

	pat := []rune(pattern)
	if len(pat) > len(line) {
		return nil
	}

	var spans [][2]int
	for i := 0; i+len(pat) <= len(line); {
		if !runesEqual(line[i:i+len(pat)], pat) {
			i++
			continue
		}
		spans = append(spans, [2]int{i, i + len(pat)})
		i += len(pat)
	}
	return spans
}

func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (m *Model) gutterWidth() int {
	if !m.showLineNumbers {
		return 0
	}
	digits := len(strconv.Itoa(max(1, m.viewer.Buffer().LineCount())))
	return min(max(4, digits)+1, 10)
}

// cursorInfo is the status line's position readout; the column is the
// display width of the line prefix, so wide runes count double.
func (m *Model) cursorInfo() string {
	buffer := m.viewer.Buffer()
	row, col := buffer.PositionAt(m.viewer.Cursor().Position)

	line := []rune(buffer.Line(row))
	if col > len(line) {
		col = len(line)
	}
	displayCol := runewidth.StringWidth(string(line[:col]))

	return fmt.Sprintf("%d:%d ", row+1, displayCol+1)
}
