package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/samdwyer/hangman/internal/game"
)

// Environment variables that provide flag defaults.
const (
	envWords    = "HANGMAN_WORDS"
	envSeed     = "HANGMAN_SEED"
	envTUI      = "HANGMAN_TUI"
	envLogLevel = "LOG_LEVEL"
)

// envFlags maps each environment variable to the flag that overrides it.
var envFlags = map[string]string{
	envWords:    "words",
	envSeed:     "seed",
	envTUI:      "tui",
	envLogLevel: "log-level",
}

// EnvError reports an environment variable that could not be parsed.
type EnvError struct {
	Name  string
	Value string
	Err   error
}

func (e *EnvError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Name, e.Value, e.Err)
}

func (e *EnvError) Unwrap() error {
	return e.Err
}

// DefaultConfig returns a Config populated from the environment. Every
// variable that fails to parse is reported as an *EnvError, joined together.
func DefaultConfig() (game.Config, error) {
	cfg := game.Config{
		WordsPath: os.Getenv(envWords),
		LogLevel:  os.Getenv(envLogLevel),
	}

	var errs []error
	if v := os.Getenv(envSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, &EnvError{Name: envSeed, Value: v, Err: err})
		}
		cfg.Seed = seed
	}

	if v := os.Getenv(envTUI); v != "" {
		tui, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, &EnvError{Name: envTUI, Value: v, Err: err})
		}
		cfg.UseTUI = tui
	}

	return cfg, errors.Join(errs...)
}

// unresolvedEnvErrors drops the errors of variables whose flag was set on the
// command line, since the flag value replaces them.
func unresolvedEnvErrors(err error, changed func(flag string) bool) error {
	if err == nil {
		return nil
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return err
	}

	var remaining []error
	for _, e := range joined.Unwrap() {
		var envErr *EnvError
		if errors.As(e, &envErr) && changed(envFlags[envErr.Name]) {
			continue
		}
		remaining = append(remaining, e)
	}
	return errors.Join(remaining...)
}
