// Package cli wires configuration, logging and a frontend into the
// hangman command.
package cli

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/samdwyer/hangman/internal/game"
	"github.com/samdwyer/hangman/internal/gamedata"
	"github.com/samdwyer/hangman/internal/logging"
	"github.com/samdwyer/hangman/internal/ui"
)

// frontend is a game frontend that owns resources to release.
type frontend interface {
	game.Frontend
	Close() error
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg, envErr := DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "hangman",
		Short: "Play one game of Hangman in the terminal",
		Long: `hangman picks a secret word at random and lets you guess it one letter
at a time. Five wrong guesses and the game is lost.

With no flags the built-in word list is used and the game is played on
plain console lines.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return unresolvedEnvErrors(envErr, cmd.Flags().Changed)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&cfg.WordsPath, "words", cfg.WordsPath, "Word catalog JSON file (env: HANGMAN_WORDS)")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed, 0 for a time based seed (env: HANGMAN_SEED)")
	flags.BoolVar(&cfg.UseTUI, "tui", cfg.UseTUI, "Use the full-screen terminal interface (env: HANGMAN_TUI)")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level for stderr: debug, info, warn, error (env: LOG_LEVEL)")

	return rootCmd
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// run plays one game with the resolved configuration.
func run(ctx context.Context, in io.Reader, out, errOut io.Writer, cfg game.Config) error {
	logger, err := logging.New(errOut, cfg.LogLevel)
	if err != nil {
		return err
	}

	catalog, err := cfg.LoadCatalog()
	if err != nil {
		return err
	}

	rng := cfg.Random()
	logger.Debug().
		Int64("seed", rng.Seed()).
		Int("words", catalog.Count()).
		Bool("tui", cfg.UseTUI).
		Msg("configuration loaded")

	var fe frontend
	if cfg.UseTUI {
		fe, err = ui.NewTerminal(gamedata.DefaultTheme())
		if err != nil {
			return err
		}
	} else {
		fe = ui.NewConsole(in, out)
	}

	result, err := game.New(fe, catalog, rng, game.WithLogger(logger)).Run(ctx)
	if closeErr := fe.Close(); closeErr != nil {
		logger.Warn().Err(closeErr).Msg("closing frontend")
	}
	if errors.Is(err, ui.ErrQuit) {
		return nil
	}
	if err != nil {
		return err
	}

	// The full-screen frontend is gone once closed; leave the result behind.
	if cfg.UseTUI {
		return ui.NewConsole(in, out).Show(ui.Summary(result.Final)...)
	}
	return nil
}
