package bubble_adapter

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/annotext/textview/adapter-bubbletea/highlighter"
	"github.com/annotext/textview/core"
)

type Theme struct {
	ViewFocusStyle         lipgloss.Style
	SearchFocusStyle       lipgloss.Style
	StatusLineStyle        lipgloss.Style
	MessageStyle           lipgloss.Style
	ErrorStyle             lipgloss.Style
	LineNumberStyle        lipgloss.Style
	CurrentLineNumberStyle lipgloss.Style
	SelectionStyle         lipgloss.Style
	MatchStyle             lipgloss.Style
	CursorStyle            lipgloss.Style
}

var DefaultTheme = Theme{
	ViewFocusStyle:         lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("255")),
	SearchFocusStyle:       lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("255")),
	StatusLineStyle:        lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("255")),
	MessageStyle:           lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	ErrorStyle:             lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	LineNumberStyle:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Width(4).Align(lipgloss.Right),
	CurrentLineNumberStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Width(4).Align(lipgloss.Right),
	SelectionStyle:         lipgloss.NewStyle().Background(lipgloss.Color("237")),
	MatchStyle:             lipgloss.NewStyle().Background(lipgloss.Color("58")),
	CursorStyle:            lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("0")),
}

// Model wires the navigation engine to a bubbletea terminal: a viewport
// for the document, a textinput for the search field, and key conversion
// between the two key vocabularies.
type Model struct {
	viewer          core.Viewer
	viewport        *viewport.Model
	search          textinput.Model
	highlighter     *highlighter.Highlighter
	plainLines      []string
	width           int
	height          int
	showLineNumbers bool
	showStatusLine  bool
	theme           Theme
	StatusLineFunc  func() string
	err             error
	message         string
	isFocused       bool
}

// SearchHitMsg is published when a search lands on a match.
type SearchHitMsg struct {
	Match     core.Match
	Direction core.Direction
}

// SearchMissMsg is published when a search fails even after wrapping.
type SearchMissMsg struct {
	Pattern string
}

// CopyMsg is published after the current selection was written to the
// system clipboard.
type CopyMsg struct {
	Text string
}

type signalMsg struct {
	signal core.Signal
}

type messageMsg string

type errMsg error

type clearMsg struct{}

// DispatchMessage shows a transient message on the status line.
func (m *Model) DispatchMessage(message string) tea.Cmd {
	return func() tea.Msg {
		return messageMsg(message)
	}
}

// DispatchError shows a transient error on the status line.
func (m *Model) DispatchError(err error) tea.Cmd {
	return func() tea.Msg {
		return errMsg(err)
	}
}

func (m *Model) dispatchClearMsg() tea.Cmd {
	return tea.Tick(time.Second*3, func(t time.Time) tea.Msg {
		return clearMsg{}
	})
}

func New(width, height int) Model {
	v := core.New()

	vp := viewport.New(width, height-2)

	search := textinput.New()
	search.Prompt = "/"
	search.Placeholder = "search"
	search.CharLimit = 256

	m := Model{
		viewer:          v,
		viewport:        &vp,
		search:          search,
		showLineNumbers: true,
		showStatusLine:  true,
		theme:           DefaultTheme,
	}

	v.SetGeometry(&viewportGeometry{viewer: v, viewport: m.viewport})

	m.SetSize(width, height)

	return m
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	chrome := 1 // Search bar
	if m.showStatusLine {
		chrome++
	}

	m.viewport.Width = width
	m.viewport.Height = max(1, height-chrome)
	m.search.Width = max(1, width-lipgloss.Width(m.search.Prompt)-1)

	m.refreshContent()
}

// SetContent replaces the viewed document.
func (m *Model) SetContent(content []byte) {
	m.viewer.Load(content)

	buffer := m.viewer.Buffer()
	lines := make([]string, buffer.LineCount())
	for i := range lines {
		lines[i] = buffer.Line(i)
	}
	m.plainLines = lines

	if m.highlighter != nil {
		m.highlighter.Invalidate()
	}

	m.refreshContent()
}

// SetLanguage enables syntax highlighting with the given chroma language
// and style names.
func (m *Model) SetLanguage(language, theme string) {
	m.highlighter = highlighter.New(language, theme)
	m.refreshContent()
}

// WithTheme allows setting a custom theme for the viewer.
func (m *Model) WithTheme(theme Theme) {
	m.theme = theme
}

// HideLineNumbers controls whether to show line numbers in the viewport.
func (m *Model) HideLineNumbers(hide bool) {
	m.showLineNumbers = !hide
}

// HideStatusLine controls whether to show the status line at the bottom
// of the viewport.
func (m *Model) HideStatusLine(hide bool) {
	m.showStatusLine = !hide
	m.SetSize(m.width, m.height)
}

// GetViewer returns the underlying navigation engine.
func (m *Model) GetViewer() core.Viewer {
	return m.viewer
}

// SelectedText returns the currently selected text.
func (m *Model) SelectedText() string {
	return m.viewer.SelectedText()
}

// Focus sets the viewer to focused state.
func (m *Model) Focus() {
	m.isFocused = true
}

// Blur sets the viewer to unfocused state.
func (m *Model) Blur() {
	m.isFocused = false
}

// IsFocused returns whether the viewer is currently focused.
func (m *Model) IsFocused() bool {
	return m.isFocused
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.listenForViewerUpdate())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.IsFocused() {
			break
		}

		key := convertBubbleKey(msg)
		if m.viewer.HandleKey(key) {
			m.syncSearchFocus()
			break
		}

		if m.viewer.Focus() == core.FocusSearch {
			if key.Key == core.KeyEscape {
				m.viewer.FocusView()
				m.syncSearchFocus()
				break
			}

			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			cmds = append(cmds, cmd)
			m.viewer.SetPattern(m.search.Value())
			break
		}

		if key.Rune == 'y' && key.Modifiers == core.ModNone {
			cmds = append(cmds, m.copySelection())
		}

	case signalMsg:
		cmds = append(cmds, m.listenForViewerUpdate())

		switch signal := msg.signal.(type) {
		case core.SearchHitSignal:
			match, direction := signal.Value()
			cmds = append(cmds, func() tea.Msg {
				return SearchHitMsg{Match: match, Direction: direction}
			})

		case core.SearchMissSignal:
			pattern := signal.Value()
			cmds = append(cmds, func() tea.Msg {
				return SearchMissMsg{Pattern: pattern}
			})

		case core.FocusSignal:
			m.syncSearchFocus()

		case core.ErrorSignal:
			_, err := signal.Value()
			cmds = append(cmds, func() tea.Msg {
				return errMsg(err)
			})
		}

	case SearchMissMsg:
		m.message = ""
		m.err = fmt.Errorf("pattern not found: %s", msg.Pattern)
		cmds = append(cmds, m.dispatchClearMsg())

	case CopyMsg:
		m.message = fmt.Sprintf("%d characters copied", utf8.RuneCountInString(msg.Text))
		m.err = nil
		cmds = append(cmds, m.dispatchClearMsg())

	case messageMsg:
		m.message = string(msg)
		m.err = nil
		cmds = append(cmds, m.dispatchClearMsg())

	case errMsg:
		m.message = ""
		m.err = msg
		cmds = append(cmds, m.dispatchClearMsg())

	case clearMsg:
		m.message = ""
		m.err = nil
	}

	// Non-key messages (mouse wheel, frame ticks) go to the viewport; key
	// handling is owned by the engine's router.
	if _, isKey := msg.(tea.KeyMsg); !isKey {
		vp, cmd := m.viewport.Update(msg)
		*m.viewport = vp
		cmds = append(cmds, cmd)
	}

	m.refreshContent()

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	content := m.viewport.View()

	searchLine := m.search.View()
	paddingWidth := m.width - lipgloss.Width(searchLine)
	if paddingWidth > 0 {
		searchLine += strings.Repeat(" ", paddingWidth)
	}

	if !m.showStatusLine {
		return lipgloss.JoinVertical(lipgloss.Left, content, searchLine)
	}

	statusLine := m.getStatusLine()
	paddingWidth = m.width - lipgloss.Width(statusLine)
	if paddingWidth > 0 {
		statusLine += m.theme.StatusLineStyle.Render(strings.Repeat(" ", paddingWidth))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		statusLine,
		searchLine,
	)
}

func (m *Model) getStatusLine() string {
	if m.StatusLineFunc != nil {
		return m.StatusLineFunc()
	}

	var statusLine string
	if m.viewer.Focus() == core.FocusSearch {
		statusLine = m.theme.SearchFocusStyle.Render(" SEARCH ")
	} else {
		statusLine = m.theme.ViewFocusStyle.Render(" VIEW ")
	}

	var middle string
	if m.message != "" {
		middle = " " + m.theme.MessageStyle.Render(m.message)
	}
	if m.err != nil {
		middle = " " + m.theme.ErrorStyle.Render(m.err.Error())
	}
	statusLine += middle

	cursorInfo := m.cursorInfo()

	width := m.width - (lipgloss.Width(cursorInfo) + lipgloss.Width(statusLine))
	gap := strings.Repeat(" ", max(0, width))

	statusLine += m.theme.StatusLineStyle.Render(gap + cursorInfo)

	return statusLine
}

// syncSearchFocus mirrors the engine's focus into the textinput widget.
func (m *Model) syncSearchFocus() {
	if m.viewer.Focus() == core.FocusSearch {
		if !m.search.Focused() {
			m.search.Focus()
			m.search.CursorEnd()
		}
		return
	}
	m.search.Blur()
}

func (m *Model) copySelection() tea.Cmd {
	text := m.viewer.SelectedText()
	if text == "" {
		return nil
	}

	if err := clipboard.WriteAll(text); err != nil {
		return func() tea.Msg {
			return errMsg(fmt.Errorf("%w: %v", core.ErrCopyFailed, err))
		}
	}

	return func() tea.Msg {
		return CopyMsg{Text: text}
	}
}

func (m Model) listenForViewerUpdate() tea.Cmd {
	return func() tea.Msg {
		return signalMsg{signal: <-m.viewer.GetUpdateSignalChan()}
	}
}

// Convert a bubbletea key to the engine's KeyEvent. The string form
// carries the modifiers ("ctrl+shift+right"), so it is parsed instead of
// switching over every key type constant.
func convertBubbleKey(msg tea.KeyMsg) core.KeyEvent {
	var key core.KeyEvent

	s := msg.String()
	name := s
	if i := strings.LastIndex(s, "+"); i >= 0 && i+1 < len(s) {
		name = s[i+1:]
		for _, mod := range strings.Split(s[:i], "+") {
			switch mod {
			case "ctrl":
				key.Modifiers |= core.ModCtrl
			case "alt":
				key.Modifiers |= core.ModAlt
			case "shift":
				key.Modifiers |= core.ModShift
			}
		}
	}

	switch name {
	case "enter":
		key.Key = core.KeyEnter
	case "tab":
		key.Key = core.KeyTab
		key.Rune = '\t'
	case "backspace":
		key.Key = core.KeyBackspace
	case "esc":
		key.Key = core.KeyEscape
	case " ", "space":
		key.Key = core.KeySpace
		key.Rune = ' '
	case "up":
		key.Key = core.KeyUp
	case "down":
		key.Key = core.KeyDown
	case "left":
		key.Key = core.KeyLeft
	case "right":
		key.Key = core.KeyRight
	case "home":
		key.Key = core.KeyHome
	case "end":
		key.Key = core.KeyEnd
	case "pgup":
		key.Key = core.KeyPageUp
	case "pgdown":
		key.Key = core.KeyPageDown
	case "delete":
		key.Key = core.KeyDelete
	case "insert":
		key.Key = core.KeyInsert
	default:
		runes := []rune(name)
		if len(runes) == 1 {
			key.Rune = runes[0]
		}
	}

	return key
}
