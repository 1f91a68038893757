package gamedata

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a catalog could not be loaded.
type ErrorKind string

const (
	// KindRead means the backing data could not be opened or read.
	KindRead ErrorKind = "read"
	// KindParse means the data is not valid JSON.
	KindParse ErrorKind = "parse"
	// KindShape means the JSON does not have the {"data": [strings]} shape.
	KindShape ErrorKind = "shape"
	// KindEmpty means the catalog holds no words.
	KindEmpty ErrorKind = "empty"
)

// ErrEmptyCatalog is wrapped by CatalogError when a catalog has no words.
var ErrEmptyCatalog = errors.New("catalog has no words")

// CatalogError is returned when a word catalog cannot be loaded.
type CatalogError struct {
	Source string    // File path, or "embedded"
	Kind   ErrorKind // What went wrong
	Err    error     // Underlying cause
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("word catalog %s: %s error: %v", e.Source, e.Kind, e.Err)
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

func catalogError(source string, kind ErrorKind, err error) *CatalogError {
	return &CatalogError{Source: source, Kind: kind, Err: err}
}
