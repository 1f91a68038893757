package game

import (
	"github.com/samdwyer/hangman/internal/gamedata"
	"github.com/samdwyer/hangman/internal/random"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible secret choice.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// WordsPath is a catalog file to read. Empty means the embedded catalog.
	WordsPath string

	// UseTUI selects the full-screen terminal frontend over plain console lines.
	UseTUI bool

	// LogLevel is a zerolog level name; empty means warn.
	LogLevel string
}

// LoadCatalog reads the catalog the configuration points at.
func (c Config) LoadCatalog() (*gamedata.Catalog, error) {
	if c.WordsPath == "" {
		return gamedata.LoadEmbedded()
	}
	return gamedata.LoadFile(c.WordsPath)
}

// Random returns the random source for choosing the secret.
func (c Config) Random() *random.Seeded {
	return random.NewSeeded(c.Seed)
}
