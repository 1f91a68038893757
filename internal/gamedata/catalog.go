package gamedata

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samdwyer/hangman/internal/random"
)

// catalogFilename is the embedded default catalog.
const catalogFilename = "words.json"

// catalogFile represents the structure of a catalog document.
// A nil Data means the field was absent or null.
type catalogFile struct {
	Data *[]string `json:"data"`
}

// Catalog is an ordered, read-only collection of candidate secrets.
type Catalog struct {
	words []string
}

// NewCatalog creates a catalog from an in-memory word list.
// Words are trimmed and lowercased; each must be made of the letters a-z.
func NewCatalog(words []string) (*Catalog, error) {
	return newCatalog("memory", words)
}

// Parse decodes a catalog document from r.
func Parse(r io.Reader) (*Catalog, error) {
	return parse("reader", r)
}

// LoadFile reads a catalog document from the file at path.
// The file is closed as soon as it has been read.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, catalogError(path, KindRead, err)
	}
	defer f.Close()

	return parse(path, f)
}

// LoadEmbedded reads the catalog embedded at build time.
func LoadEmbedded() (*Catalog, error) {
	file, kind, err := load[catalogFile](catalogFilename)
	if err != nil {
		return nil, catalogError(embeddedSource, kind, err)
	}
	return fromFile(embeddedSource, file)
}

func parse(source string, r io.Reader) (*Catalog, error) {
	file, kind, err := decode[catalogFile](r)
	if err != nil {
		return nil, catalogError(source, kind, err)
	}
	return fromFile(source, file)
}

func fromFile(source string, file catalogFile) (*Catalog, error) {
	if file.Data == nil {
		return nil, catalogError(source, KindShape, errors.New(`missing top-level "data" array`))
	}
	return newCatalog(source, *file.Data)
}

func newCatalog(source string, words []string) (*Catalog, error) {
	cleaned := make([]string, 0, len(words))
	for i, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if !isLetters(w) {
			return nil, catalogError(source, KindShape, fmt.Errorf("entry %d (%q) is not made of letters a-z", i, w))
		}
		cleaned = append(cleaned, w)
	}
	if len(cleaned) == 0 {
		return nil, catalogError(source, KindEmpty, ErrEmptyCatalog)
	}
	return &Catalog{words: cleaned}, nil
}

// ChooseSecret selects a word uniformly at random.
func (c *Catalog) ChooseSecret(rng random.Random) string {
	return c.words[rng.Intn(len(c.words))]
}

// Words returns a copy of all catalog entries in order.
func (c *Catalog) Words() []string {
	out := make([]string, len(c.words))
	copy(out, c.words)
	return out
}

// Count returns the number of words in the catalog.
func (c *Catalog) Count() int {
	return len(c.words)
}

// isLetters reports whether s is all lowercase ASCII letters.
func isLetters(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
