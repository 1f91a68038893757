package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/hangman/internal/hangman"
)

func playGame(t *testing.T, secret string, guesses ...string) hangman.Game {
	t.Helper()
	g, err := hangman.New(secret)
	require.NoError(t, err)
	for _, guess := range guesses {
		g, _ = g.ApplyGuess(guess)
	}
	return g
}

func TestGallowsGolden(t *testing.T) {
	tests := []struct {
		failed   int
		expected []string
	}{
		{0, nil},
		{1, []string{
			"|  | |",
		}},
		{2, []string{
			"|  | |",
			"|   ^",
		}},
		{3, []string{
			"|  | |",
			"|   ^",
			`|  \|/`,
		}},
		{4, []string{
			"|  | |",
			"|   ^",
			`|  \|/`,
			"| , (),",
		}},
		{5, []string{
			"+---------+",
			"|   |    ,|",
			"| , (),",
			`|  \|/`,
			"|   ^",
			"|  | |",
		}},
	}

	for _, tt := range tests {
		got := Gallows(tt.failed, hangman.DefaultMaxFailures)
		assert.Equal(t, tt.expected, got, "Gallows(%d)", tt.failed)
	}
}

func TestGallowsReturnsCopy(t *testing.T) {
	full := Gallows(5, 5)
	full[0] = "changed"
	assert.Equal(t, "+---------+", Gallows(5, 5)[0])
}

func TestRenderFresh(t *testing.T) {
	g := playGame(t, "cat")

	assert.Equal(t, []string{
		"Phrase: ---",
		"Used letters: ",
		"Failed attempts: 0",
	}, Render(g))
}

func TestRenderAfterHit(t *testing.T) {
	g := playGame(t, "cat", "x", "t", "c")

	assert.Equal(t, []string{
		"Phrase: c-t",
		"Used letters: ctx",
		"Failed attempts: 1",
	}, Render(g), "no gallows unless the last guess missed")
}

func TestRenderAfterMiss(t *testing.T) {
	g := playGame(t, "cat", "c", "z", "y")

	assert.Equal(t, []string{
		"Phrase: c--",
		"Used letters: cyz",
		"Failed attempts: 2",
		"|  | |",
		"|   ^",
	}, Render(g))
}

func TestRenderAfterLoss(t *testing.T) {
	g := playGame(t, "cat", "x", "y", "z", "q", "w")

	assert.Equal(t, []string{
		"Phrase: ---",
		"Used letters: qwxyz",
		"Failed attempts: 5",
		"+---------+",
		"|   |    ,|",
		"| , (),",
		`|  \|/`,
		"|   ^",
		"|  | |",
	}, Render(g))
}

func TestRenderInvalidAfterMissHidesGallows(t *testing.T) {
	g := playGame(t, "cat", "x", "!")

	assert.Len(t, Render(g), 3)
}

func TestRenderIsPure(t *testing.T) {
	g := playGame(t, "banana", "n", "x", "q")

	first := Render(g)
	second := Render(g)

	assert.Equal(t, first, second)
	assert.Equal(t, "--n-n-", g.Revealed(), "render must not change the game")
}

func TestSummary(t *testing.T) {
	assert.Nil(t, Summary(playGame(t, "cat", "c")))

	assert.Equal(t, []string{
		"You win! The answer was cat!",
	}, Summary(playGame(t, "cat", "c", "a", "t")))

	assert.Equal(t, []string{
		"Game over!",
		"The answer was cat",
		" versus your answer: ---",
		"You were missing 3 character(s) and 1 unique character(s)",
	}, Summary(playGame(t, "cat", "x", "y", "z", "q", "w")))

	assert.Equal(t, []string{
		"Game over!",
		"The answer was banana",
		" versus your answer: -a-a-a",
		"You were missing 3 character(s) and 1 unique character(s)",
	}, Summary(playGame(t, "banana", "a", "v", "w", "x", "y", "z")))
}

func TestMessage(t *testing.T) {
	tests := []struct {
		turn     hangman.Turn
		expected string
	}{
		{hangman.Turn{Guess: "c", Outcome: hangman.OutcomeHit}, ""},
		{hangman.Turn{Guess: "x", Outcome: hangman.OutcomeMiss}, ""},
		{hangman.Turn{Guess: "ca", Outcome: hangman.OutcomeContained}, ""},
		{hangman.Turn{Guess: "c", Outcome: hangman.OutcomeRepeat}, "Already guessed c!"},
		{hangman.Turn{Guess: "5", Outcome: hangman.OutcomeInvalid}, "Not a letter from a to z. Not that it's a problem... You just won't win with it..."},
		{hangman.Turn{Guess: "c", Outcome: hangman.OutcomeFinished}, "The game is already over."},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Message(tt.turn), "outcome %s", tt.turn.Outcome)
	}
}
