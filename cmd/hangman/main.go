// Package main is the entry point for hangman.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/samdwyer/hangman/internal/cli"
	"github.com/samdwyer/hangman/internal/telemetry"
)

func main() {
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	// Load .env file for local development; env vars may also be set directly
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg(".env file not loaded")
	}

	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "hangman: %v\n", err)
		os.Exit(1)
	}
}

// run executes the command with tracing set up, flushing spans on return.
func run(ctx context.Context) error {
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		// Not fatal - the game still works without tracing
		log.Warn().Err(err).Msg("telemetry setup failed")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Warn().Err(err).Msg("telemetry shutdown failed")
			}
		}()
	}

	return cli.Execute(ctx)
}
