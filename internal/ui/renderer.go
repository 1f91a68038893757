package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/samdwyer/hangman/internal/gamedata"
)

// lineKind selects the theme color for a line of game output.
type lineKind int

const (
	kindMessage lineKind = iota
	kindTitle
	kindRevealed
	kindGallows
	kindPrompt
)

// gallowsLines is used to recognize drawing lines in the scrollback.
var gallowsLines = func() map[string]bool {
	m := make(map[string]bool, len(gallows))
	for _, line := range gallows {
		m[line] = true
	}
	return m
}()

// classify picks the kind of a line of game output.
func classify(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "Phrase: "):
		return kindRevealed
	case gallowsLines[line]:
		return kindGallows
	case line == Banner()[0]:
		return kindTitle
	case strings.HasPrefix(line, Prompt):
		return kindPrompt
	default:
		return kindMessage
	}
}

// Renderer handles drawing the scrollback and input line to the screen.
type Renderer struct {
	screen *Screen
	styles map[lineKind]tcell.Style
}

// NewRenderer creates a new renderer for the given screen and theme.
func NewRenderer(screen *Screen, theme gamedata.Theme) *Renderer {
	return &Renderer{
		screen: screen,
		styles: map[lineKind]tcell.Style{
			kindMessage:  theme.Style(theme.Message),
			kindTitle:    theme.Style(theme.Title).Bold(true),
			kindRevealed: theme.Style(theme.Revealed).Bold(true),
			kindGallows:  theme.Style(theme.Gallows),
			kindPrompt:   theme.Style(theme.Prompt),
		},
	}
}

// Render draws as much of the scrollback as fits above the prompt, then the
// prompt and the pending input with the cursor after it.
func (r *Renderer) Render(history []string, prompt, input string) {
	r.screen.Clear()

	_, height := r.screen.Size()
	rows := height - 2
	if rows < 0 {
		rows = 0
	}
	if len(history) > rows {
		history = history[len(history)-rows:]
	}

	for y, line := range history {
		r.screen.DrawText(0, y, line, r.styles[classify(line)])
	}

	promptY := height - 2
	if promptY < 0 {
		promptY = 0
	}
	r.screen.DrawText(0, promptY, prompt, r.styles[kindPrompt])
	x := r.screen.DrawText(0, promptY+1, "> ", r.styles[kindPrompt])
	r.screen.DrawText(x, promptY+1, input, r.styles[kindPrompt])
	r.screen.ShowCursor(x+uniseg.StringWidth(input), promptY+1)

	r.screen.Show()
}
