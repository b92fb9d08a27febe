package highlighter

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// Highlighter maps document lines to styled column spans using chroma.
// Tokens are cached per line and rebuilt lazily after Invalidate; the
// whole document is tokenized at once so multi-line constructs survive.
type Highlighter struct {
	lexer      chroma.Lexer
	style      *chroma.Style
	tokens     map[int][]chroma.Token
	styleCache map[chroma.TokenType]lipgloss.Style
	tokenized  bool
	mu         sync.Mutex
}

// Span is a styled run of columns within a single line. Columns count
// runes; EndCol is exclusive.
type Span struct {
	StartCol int
	EndCol   int
	Style    lipgloss.Style
}

// New creates a highlighter for the given chroma language and style names.
// Unknown names fall back to plain text and the default style.
func New(language, theme string) *Highlighter {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}

	return &Highlighter{
		lexer:      chroma.Coalesce(lexer),
		style:      styles.Get(theme),
		tokens:     make(map[int][]chroma.Token),
		styleCache: make(map[chroma.TokenType]lipgloss.Style),
	}
}

// Invalidate drops the token cache; call when the document changes.
func (h *Highlighter) Invalidate() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.tokens = make(map[int][]chroma.Token)
	h.tokenized = false
}

// SpansForLine returns the styled spans covering lineNum. The first call
// after Invalidate tokenizes the whole document.
func (h *Highlighter) SpansForLine(lineNum int, lines []string) []Span {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.tokenized {
		h.tokenize(lines)
		h.tokenized = true
	}

	tokens := h.tokens[lineNum]
	if len(tokens) == 0 {
		return nil
	}

	spans := make([]Span, 0, len(tokens))
	col := 0
	for _, token := range tokens {
		n := utf8.RuneCountInString(token.Value)
		spans = append(spans, Span{
			StartCol: col,
			EndCol:   col + n,
			Style:    h.styleFor(token.Type),
		})
		col += n
	}
	return spans
}

// tokenize runs the lexer over the joined document and splits the token
// stream back into per-line slices. Caller holds the lock.
func (h *Highlighter) tokenize(lines []string) {
	content := strings.Join(lines, "\n")
	if content == "" {
		return
	}

	iterator, err := h.lexer.Tokenise(nil, content)
	if err != nil {
		return
	}

	lineNum := 0
	for _, token := range iterator.Tokens() {
		value := token.Value
		for strings.Contains(value, "\n") {
			before, after, _ := strings.Cut(value, "\n")
			if before != "" {
				h.tokens[lineNum] = append(h.tokens[lineNum], chroma.Token{Type: token.Type, Value: before})
			}
			lineNum++
			value = after
		}
		if value != "" {
			h.tokens[lineNum] = append(h.tokens[lineNum], chroma.Token{Type: token.Type, Value: value})
		}
	}
}

func (h *Highlighter) styleFor(tokenType chroma.TokenType) lipgloss.Style {
	if style, ok := h.styleCache[tokenType]; ok {
		return style
	}

	entry := h.style.Get(tokenType)

	style := lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		style = style.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}

	h.styleCache[tokenType] = style
	return style
}
