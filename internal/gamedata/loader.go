package gamedata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// load reads filename from the embedded filesystem and decodes it strictly.
// On failure the returned kind tells read errors apart from decode errors.
func load[T any](filename string) (T, ErrorKind, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, KindRead, err
	}
	return decode[T](bytes.NewReader(content))
}

// decode reads exactly one JSON document from r into a T. Unknown fields
// and anything after the document are rejected.
func decode[T any](r io.Reader) (T, ErrorKind, error) {
	var result T

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&result); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return result, KindParse, err
		}
		// Type mismatches and unknown fields
		return result, KindShape, err
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected second JSON value")
		}
		return result, KindParse, fmt.Errorf("trailing data after document: %w", err)
	}

	return result, "", nil
}
