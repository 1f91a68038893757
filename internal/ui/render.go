package ui

import (
	"fmt"
	"strings"

	"github.com/samdwyer/hangman/internal/hangman"
)

// Prompt is printed before each guess is read.
const Prompt = "Next round - Please input your guess: "

// gallows is the complete drawing, top to bottom.
var gallows = []string{
	"+---------+",
	"|   |    ,|",
	"| , (),",
	`|  \|/`,
	"|   ^",
	"|  | |",
}

// Banner returns the lines printed when a game starts.
func Banner() []string {
	return []string{
		"Welcome to Hangman!",
		" Let's play one quick game... ",
		"",
	}
}

// Render returns the status lines for g. It reads g only.
//
// The gallows is included only right after a miss.
func Render(g hangman.Game) []string {
	lines := []string{
		"Phrase: " + g.Revealed(),
		"Used letters: " + strings.Join(g.GuessedSorted(), ""),
		fmt.Sprintf("Failed attempts: %d", g.Failed()),
	}
	if g.JustFailed() {
		lines = append(lines, Gallows(g.Failed(), g.MaxFailures())...)
	}
	return lines
}

// Gallows returns the part of the drawing shown after failed misses.
//
// Below the limit the drawing grows from the bottom: the last failed lines
// are returned bottom line first. At or above the limit the whole drawing is
// returned top to bottom.
func Gallows(failed, maxFailures int) []string {
	if failed <= 0 {
		return nil
	}
	if failed >= maxFailures {
		return append([]string(nil), gallows...)
	}

	out := make([]string, 0, failed)
	for i := len(gallows) - 1; i >= 0 && len(out) < failed; i-- {
		out = append(out, gallows[i])
	}
	return out
}

// Summary returns the closing lines for a finished game, or nil while it is
// still being played.
func Summary(g hangman.Game) []string {
	switch g.State() {
	case hangman.StateWon:
		return []string{fmt.Sprintf("You win! The answer was %s!", g.Secret())}
	case hangman.StateLost:
		return []string{
			"Game over!",
			"The answer was " + g.Secret(),
			" versus your answer: " + g.Revealed(),
			fmt.Sprintf("You were missing %d character(s) and %d unique character(s)", g.Missing(), g.UniqueMissing()),
		}
	default:
		return nil
	}
}

// Message returns player feedback for a rejected guess, or "" if the guess
// was accepted.
func Message(turn hangman.Turn) string {
	switch turn.Outcome {
	case hangman.OutcomeInvalid:
		return "Not a letter from a to z. Not that it's a problem... You just won't win with it..."
	case hangman.OutcomeRepeat:
		return fmt.Sprintf("Already guessed %s!", turn.Guess)
	case hangman.OutcomeFinished:
		return "The game is already over."
	default:
		return ""
	}
}
