// Package ui renders game state as text and provides the console and
// full-screen terminal frontends the game is played through.
package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Console is a line-oriented frontend: one prompt, one line of input.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole creates a console frontend reading from in and writing to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Show prints each line followed by a newline.
func (c *Console) Show(lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(c.out, line); err != nil {
			return err
		}
	}
	return nil
}

// ReadGuess prints prompt and blocks for one line of input, returned with
// surrounding whitespace trimmed. Lines have no length limit. A final line
// without a newline is still returned; io.EOF follows once input is exhausted.
func (c *Console) ReadGuess(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := fmt.Fprintln(c.out, prompt); err != nil {
		return "", err
	}

	line, err := c.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Close is a no-op; the console does not own its streams.
func (c *Console) Close() error {
	return nil
}
