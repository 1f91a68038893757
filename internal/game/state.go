// Package game runs one Hangman game: it picks the secret, drives the
// prompt/guess loop through a frontend and reports how the game ended.
package game

import "github.com/samdwyer/hangman/internal/hangman"

// Result describes a finished (or abandoned) game.
type Result struct {
	ID    string        // Session identifier, also attached to spans
	State hangman.State // Playing if the game was abandoned
	Final hangman.Game  // Last game state
	Turns int           // Guesses read, including rejected ones
}

// Won reports whether the game ended in a win.
func (r Result) Won() bool {
	return r.State == hangman.StateWon
}
