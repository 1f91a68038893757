package hangman

import "strings"

// Outcome classifies what a single guess did.
type Outcome int

const (
	// OutcomeHit revealed one or more positions.
	OutcomeHit Outcome = iota
	// OutcomeContained is a multi-letter guess found in the secret. It is
	// recorded and is not a miss, but reveals nothing: positions are only
	// ever matched one letter at a time.
	OutcomeContained
	// OutcomeMiss did not occur in the secret and cost one attempt.
	OutcomeMiss
	// OutcomeInvalid contained something other than the letters a-z.
	OutcomeInvalid
	// OutcomeRepeat was already guessed.
	OutcomeRepeat
	// OutcomeFinished was made after the game had ended.
	OutcomeFinished
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeHit:
		return "hit"
	case OutcomeContained:
		return "contained"
	case OutcomeMiss:
		return "miss"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeRepeat:
		return "repeat"
	case OutcomeFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Rejected reports whether the guess was turned away without being recorded.
func (o Outcome) Rejected() bool {
	return o == OutcomeInvalid || o == OutcomeRepeat || o == OutcomeFinished
}

// Turn describes the effect of one guess.
type Turn struct {
	Guess    string  // Normalized guess
	Outcome  Outcome // What happened
	Revealed int     // Positions revealed by this guess
}

// ApplyGuess applies one raw guess and returns the next game state.
//
// The guess is lowercased. Guesses containing anything but a-z, and guesses
// already made, leave the game unchanged apart from clearing JustFailed.
// Otherwise the guess is recorded and either reveals every matching
// position or, if it does not occur in the secret, counts as a miss.
func (g Game) ApplyGuess(raw string) (Game, Turn) {
	guess := normalize(raw)
	turn := Turn{Guess: guess}

	if g.State().Terminal() {
		turn.Outcome = OutcomeFinished
		return g, turn
	}

	next := g.clone()
	next.justFailed = false

	if !guessable(guess) {
		turn.Outcome = OutcomeInvalid
		return next, turn
	}
	if next.HasGuessed(guess) {
		turn.Outcome = OutcomeRepeat
		return next, turn
	}

	next.guessed = append(next.guessed, guess)

	if strings.Contains(string(next.secret), guess) {
		for i, r := range next.secret {
			if string(r) == guess {
				next.revealed[i] = r
				turn.Revealed++
			}
		}
		if turn.Revealed > 0 {
			turn.Outcome = OutcomeHit
		} else {
			turn.Outcome = OutcomeContained
		}
		return next, turn
	}

	next.failed++
	next.justFailed = true
	if next.failed >= next.maxFailures {
		next.alive = false
	}
	turn.Outcome = OutcomeMiss
	return next, turn
}
