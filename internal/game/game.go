package game

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/hangman/internal/gamedata"
	"github.com/samdwyer/hangman/internal/hangman"
	"github.com/samdwyer/hangman/internal/random"
	"github.com/samdwyer/hangman/internal/telemetry"
	"github.com/samdwyer/hangman/internal/ui"
)

// ErrInputClosed is returned when input runs out before the game ends.
var ErrInputClosed = errors.New("input closed before the game ended")

// Frontend is where the game shows its output and reads guesses from.
type Frontend interface {
	Show(lines ...string) error
	ReadGuess(ctx context.Context, prompt string) (string, error)
}

// Game drives a single Hangman game.
type Game struct {
	frontend Frontend
	catalog  *gamedata.Catalog
	rng      random.Random
	logger   zerolog.Logger
	tracer   trace.Tracer
	id       string
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(g *Game) { g.logger = logger }
}

// WithTracer sets the tracer. The default uses the global provider.
func WithTracer(tracer trace.Tracer) Option {
	return func(g *Game) { g.tracer = tracer }
}

// New creates a game that draws its secret from catalog using rng.
func New(frontend Frontend, catalog *gamedata.Catalog, rng random.Random, opts ...Option) *Game {
	g := &Game{
		frontend: frontend,
		catalog:  catalog,
		rng:      rng,
		logger:   zerolog.Nop(),
		tracer:   telemetry.Tracer("game"),
		id:       uuid.NewString(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.With().Str("session", g.id).Logger()
	return g
}

// ID returns the session identifier.
func (g *Game) ID() string {
	return g.id
}

// Run plays one game to completion: it loops reading guesses until the
// secret is revealed or the failure limit is reached, then prints a summary.
func (g *Game) Run(ctx context.Context) (Result, error) {
	round, err := g.start(ctx)
	if err != nil {
		return Result{ID: g.id}, err
	}

	result := Result{ID: g.id, State: round.State(), Final: round}
	ctx, span := g.tracer.Start(ctx, "game.play",
		trace.WithAttributes(attribute.String("session.id", g.id)))
	defer func() {
		span.SetAttributes(
			attribute.String("game.state", result.State.String()),
			attribute.Int("game.turns", result.Turns),
			attribute.Int("game.failed", result.Final.Failed()),
		)
		span.End()
	}()

	if err := g.frontend.Show(ui.Banner()...); err != nil {
		return result, err
	}

	for {
		raw, err := g.frontend.ReadGuess(ctx, ui.Prompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = ErrInputClosed
			}
			span.RecordError(err)
			span.SetStatus(codes.Error, "game abandoned")
			g.logger.Warn().Err(err).Int("turns", result.Turns).Msg("game abandoned")
			return result, fmt.Errorf("reading guess: %w", err)
		}

		next, turn, err := g.turn(ctx, round, raw)
		if err != nil {
			return result, err
		}
		round = next
		result.Turns++
		result.Final = round
		result.State = round.State()

		if msg := ui.Message(turn); msg != "" {
			if err := g.frontend.Show(msg); err != nil {
				return result, err
			}
		}

		// A win ends the game before the status is shown; a loss shows the
		// final status, full gallows included, then the summary.
		if result.State == hangman.StateWon {
			return result, g.finish(round)
		}
		if err := g.frontend.Show(ui.Render(round)...); err != nil {
			return result, err
		}
		if result.State == hangman.StateLost {
			return result, g.finish(round)
		}
	}
}

// start chooses the secret and creates the initial game state.
func (g *Game) start(ctx context.Context) (hangman.Game, error) {
	_, span := g.tracer.Start(ctx, "game.init")
	defer span.End()

	secret := g.catalog.ChooseSecret(g.rng)
	round, err := hangman.New(secret)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid secret")
		return hangman.Game{}, fmt.Errorf("starting game: %w", err)
	}

	span.SetAttributes(
		attribute.String("session.id", g.id),
		attribute.Int("catalog.size", g.catalog.Count()),
		attribute.Int("secret.length", len(secret)),
		attribute.Int("game.max_failures", round.MaxFailures()),
	)
	g.logger.Debug().
		Int("catalog_size", g.catalog.Count()).
		Int("secret_length", len(secret)).
		Msg("game started")

	return round, nil
}

// turn applies one guess and checks the resulting state.
func (g *Game) turn(ctx context.Context, round hangman.Game, raw string) (hangman.Game, hangman.Turn, error) {
	_, span := g.tracer.Start(ctx, "game.turn")
	defer span.End()

	next, turn := round.ApplyGuess(raw)

	span.SetAttributes(
		attribute.String("turn.guess", turn.Guess),
		attribute.String("turn.outcome", turn.Outcome.String()),
		attribute.Int("turn.revealed", turn.Revealed),
		attribute.Int("game.failed", next.Failed()),
		attribute.String("game.state", next.State().String()),
	)

	if err := next.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invariant violated")
		g.logger.Error().Err(err).Str("guess", turn.Guess).Msg("game state invalid after turn")
		return round, turn, fmt.Errorf("applying guess %q: %w", turn.Guess, err)
	}

	g.logger.Debug().
		Str("guess", turn.Guess).
		Stringer("outcome", turn.Outcome).
		Int("revealed", turn.Revealed).
		Int("failed", next.Failed()).
		Msg("turn")

	return next, turn, nil
}

// finish prints the closing summary.
func (g *Game) finish(round hangman.Game) error {
	g.logger.Info().
		Stringer("state", round.State()).
		Int("failed", round.Failed()).
		Msg("game over")
	return g.frontend.Show(ui.Summary(round)...)
}
