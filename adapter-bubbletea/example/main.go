package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	viewer "github.com/annotext/textview/adapter-bubbletea"
)

type Model struct {
	viewer viewer.Model
	file   string
}

func (m Model) Init() tea.Cmd {
	return m.viewer.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewer.SetSize(msg.Width-4, msg.Height-2)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case viewer.SearchMissMsg:
		log.Printf("no match for %q in %s", msg.Pattern, m.file)
	}

	viewerModel, cmd := m.viewer.Update(msg)
	m.viewer = viewerModel.(viewer.Model)

	return m, cmd
}

func (m Model) View() string {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(m.viewer.View())
}

func languageFor(file string) string {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".go":
		return "go"
	case ".md":
		return "markdown"
	case ".sql":
		return "sql"
	case ".json":
		return "json"
	}
	return "plaintext"
}

func main() {
	file := "test.md"
	if len(os.Args) > 1 {
		file = os.Args[1]
	}

	textViewer := viewer.New(80, 20)
	textViewer.Focus()
	textViewer.SetLanguage(languageFor(file), "catppuccin-mocha")

	if content, err := os.ReadFile(file); err == nil {
		textViewer.SetContent(content)
	}

	m := Model{
		viewer: textViewer,
		file:   file,
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running Bubble Tea program: %v", err)
	}
}
