// Package hangman holds the state of a single Hangman game and the rules
// that apply one guess to it.
//
// A Game is a value. ApplyGuess never mutates its receiver; it returns the
// next Game along with a Turn describing what the guess did.
package hangman

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

const (
	// DefaultMaxFailures is the number of misses that ends a game.
	DefaultMaxFailures = 5

	// Placeholder marks a secret position that has not been revealed.
	Placeholder = '-'
)

// State is the coarse status of a game.
type State int

const (
	// StatePlaying means the game accepts more guesses.
	StatePlaying State = iota
	// StateWon means every position of the secret has been revealed.
	StateWon
	// StateLost means the failure limit was reached.
	StateLost
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further guesses are accepted.
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost
}

// Game is the state of one Hangman game.
type Game struct {
	secret      []rune
	revealed    []rune
	guessed     []string // insertion order
	failed      int
	maxFailures int
	alive       bool
	justFailed  bool
}

// New starts a game for secret with the default failure limit.
func New(secret string) (Game, error) {
	return NewWithLimit(secret, DefaultMaxFailures)
}

// NewWithLimit starts a game for secret that is lost after maxFailures misses.
// The secret is lowercased and must then consist of the letters a-z.
func NewWithLimit(secret string, maxFailures int) (Game, error) {
	if secret == "" {
		return Game{}, errors.New("secret must not be empty")
	}
	secret = normalize(secret)
	if !guessable(secret) {
		return Game{}, fmt.Errorf("secret %q is not made of letters a-z", secret)
	}
	if maxFailures < 1 {
		return Game{}, fmt.Errorf("max failures must be positive, got %d", maxFailures)
	}

	s := []rune(secret)
	revealed := make([]rune, len(s))
	for i := range revealed {
		revealed[i] = Placeholder
	}

	return Game{
		secret:      s,
		revealed:    revealed,
		guessed:     []string{},
		maxFailures: maxFailures,
		alive:       true,
	}, nil
}

// Secret returns the word being guessed.
func (g Game) Secret() string { return string(g.secret) }

// Revealed returns the revealed pattern, with Placeholder at hidden positions.
func (g Game) Revealed() string { return string(g.revealed) }

// Failed returns the number of missed guesses so far.
func (g Game) Failed() int { return g.failed }

// MaxFailures returns the failure limit.
func (g Game) MaxFailures() int { return g.maxFailures }

// Alive reports whether the failure limit has not been reached.
func (g Game) Alive() bool { return g.alive }

// JustFailed reports whether the most recent guess was a miss.
func (g Game) JustFailed() bool { return g.justFailed }

// Guessed returns the accepted guesses in the order they were made.
func (g Game) Guessed() []string {
	out := make([]string, len(g.guessed))
	copy(out, g.guessed)
	return out
}

// GuessedSorted returns the accepted guesses sorted lexicographically.
func (g Game) GuessedSorted() []string {
	out := g.Guessed()
	sort.Strings(out)
	return out
}

// HasGuessed reports whether token was already accepted as a guess.
func (g Game) HasGuessed(token string) bool {
	for _, t := range g.guessed {
		if t == token {
			return true
		}
	}
	return false
}

// State classifies the game. A fully revealed secret wins even if the
// failure limit has also been reached.
func (g Game) State() State {
	if string(g.revealed) == string(g.secret) {
		return StateWon
	}
	if g.failed >= g.maxFailures {
		return StateLost
	}
	return StatePlaying
}

// Missing returns the number of positions still hidden.
func (g Game) Missing() int {
	n := 0
	for _, r := range g.revealed {
		if r == Placeholder {
			n++
		}
	}
	return n
}

// UniqueMissing returns the number of distinct characters among the hidden
// positions of the revealed pattern. The placeholder is counted once.
func (g Game) UniqueMissing() int {
	seen := map[rune]struct{}{}
	for _, r := range g.revealed {
		if r == Placeholder {
			seen[r] = struct{}{}
		}
	}
	return len(seen)
}

// Validate checks the invariants that every reachable Game satisfies.
func (g Game) Validate() error {
	if len(g.revealed) != len(g.secret) {
		return fmt.Errorf("revealed length %d does not match secret length %d", len(g.revealed), len(g.secret))
	}
	for i, r := range g.revealed {
		if r != Placeholder && r != g.secret[i] {
			return fmt.Errorf("position %d reveals %q but secret has %q", i, r, g.secret[i])
		}
	}

	seen := make(map[string]struct{}, len(g.guessed))
	for _, t := range g.guessed {
		if _, dup := seen[t]; dup {
			return fmt.Errorf("guess %q recorded twice", t)
		}
		seen[t] = struct{}{}
	}

	if g.failed < 0 || g.failed > g.maxFailures {
		return fmt.Errorf("failed attempts %d outside [0, %d]", g.failed, g.maxFailures)
	}
	if g.alive != (g.failed < g.maxFailures) {
		return fmt.Errorf("alive=%t with %d of %d failures", g.alive, g.failed, g.maxFailures)
	}
	return nil
}

// clone returns a deep copy so that updates never alias the receiver.
func (g Game) clone() Game {
	next := g
	next.revealed = append([]rune(nil), g.revealed...)
	next.guessed = append([]string(nil), g.guessed...)
	return next
}

// normalize lowercases a raw guess.
func normalize(raw string) string {
	return strings.ToLower(raw)
}

// guessable reports whether token is non-empty and made of the letters a-z.
func guessable(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
