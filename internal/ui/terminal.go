package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/hangman/internal/gamedata"
)

// ErrQuit is returned by Terminal.ReadGuess when the player presses Esc or Ctrl-C.
var ErrQuit = errors.New("player quit")

const (
	maxHistory  = 500
	maxInputLen = 64
)

// Terminal is a full-screen frontend. Output scrolls above a fixed prompt
// and the guess is edited in place until Enter is pressed.
type Terminal struct {
	screen   *Screen
	renderer *Renderer
	history  []string
	editor   lineEditor
}

// NewTerminal takes over the terminal with a tcell screen styled by theme.
func NewTerminal(theme gamedata.Theme) (*Terminal, error) {
	screen, err := NewScreen(theme.Style(theme.Message))
	if err != nil {
		return nil, err
	}
	return NewTerminalOn(screen, theme), nil
}

// NewTerminalOn creates a terminal frontend drawing on screen.
func NewTerminalOn(screen *Screen, theme gamedata.Theme) *Terminal {
	return &Terminal{
		screen:   screen,
		renderer: NewRenderer(screen, theme),
	}
}

// Show appends lines to the scrollback and redraws.
func (t *Terminal) Show(lines ...string) error {
	t.history = append(t.history, lines...)
	if len(t.history) > maxHistory {
		t.history = t.history[len(t.history)-maxHistory:]
	}
	t.renderer.Render(t.history, "", t.editor.String())
	return nil
}

// ReadGuess edits one line of input under prompt and returns it trimmed when
// Enter is pressed.
func (t *Terminal) ReadGuess(ctx context.Context, prompt string) (string, error) {
	t.editor.Reset()

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		t.renderer.Render(t.history, prompt, t.editor.String())

		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return "", ErrQuit
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return "", ErrQuit
			case tcell.KeyEnter:
				guess := strings.TrimSpace(t.editor.String())
				t.history = append(t.history, prompt+guess)
				t.editor.Reset()
				return guess, nil
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				t.editor.Backspace()
			case tcell.KeyCtrlU:
				t.editor.Reset()
			case tcell.KeyRune:
				t.editor.Insert(ev.Rune())
			}
		}
	}
}

// Close restores the terminal.
func (t *Terminal) Close() error {
	t.screen.Close()
	return nil
}

// lineEditor holds the pending input line.
type lineEditor struct {
	runes []rune
}

// Insert appends r unless the line is full or r is a control character.
func (e *lineEditor) Insert(r rune) {
	if r < ' ' || r == 0x7f || len(e.runes) >= maxInputLen {
		return
	}
	e.runes = append(e.runes, r)
}

// Backspace removes the last rune, if any.
func (e *lineEditor) Backspace() {
	if len(e.runes) > 0 {
		e.runes = e.runes[:len(e.runes)-1]
	}
}

// Reset clears the line.
func (e *lineEditor) Reset() {
	e.runes = e.runes[:0]
}

func (e *lineEditor) String() string {
	return string(e.runes)
}
