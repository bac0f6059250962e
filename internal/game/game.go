// Package game wraps the agent into a stepped environment that produces one
// Env snapshot per action and decides when the game is over.
package game

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"pizzacut/internal/agent"
	"pizzacut/internal/logging"
	"pizzacut/internal/pizza"
)

// ErrGameOver is returned by Step once the game is done.
var ErrGameOver = errors.New("game: game is over")

// Observer is notified about every snapshot the game produces.
type Observer interface {
	ObserveEnv(env Env)
	ObserveInvalid(token string)
}

// Option customises a Game.
type Option func(*Game)

// WithLogger sets the logger used for lifecycle and step records.
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithObserver registers an observer. It sees the initial snapshot too.
func WithObserver(o Observer) Option {
	return func(g *Game) { g.observers = append(g.observers, o) }
}

// WithID replaces the generated game id.
func WithID(id string) Option {
	return func(g *Game) { g.id = id }
}

// Game is a single play-through over one puzzle.
type Game struct {
	cfg    Config
	agent  *agent.Agent
	id     string
	step   int
	env    Env
	unique []string

	logger    *slog.Logger
	observers []Observer
}

// New validates both configurations, builds the board and records the
// initial snapshot (step 0, action "none").
func New(cfg Config, puzzle pizza.Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a, err := agent.New(puzzle, cfg.Rewards)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	g := &Game{
		cfg:    cfg,
		agent:  a,
		id:     uuid.NewString(),
		unique: a.Ingredients().Unique(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = logging.OrDiscard(g.logger).With("game_id", g.id)

	g.env = g.snapshot("none", 0, false)
	size := a.Grid().Size()
	g.logger.Info("game started",
		"rows", size.Rows, "cols", size.Cols,
		"min_each", puzzle.L, "max_cells", puzzle.H,
		"max_steps", cfg.MaxSteps)
	g.notify()
	return g, nil
}

// Step applies one action. Unrecognised actions return an error wrapping
// agent.ErrInvalidAction and neither advance the step counter nor change the
// snapshot.
func (g *Game) Step(action string) (Env, error) {
	if g.env.Done {
		return g.env, ErrGameOver
	}
	reward, err := g.agent.Do(action)
	if err != nil {
		g.logger.Debug("invalid action", "action", action)
		for _, o := range g.observers {
			o.ObserveInvalid(action)
		}
		return g.env, err
	}
	g.step++
	done := g.agent.Stuck() || g.step >= g.cfg.MaxSteps
	g.env = g.snapshot(action, reward, done)

	g.logger.Debug("step", "step", g.step, "action", action, "reward", reward, "score", g.agent.Score())
	if done {
		g.logger.Info("game over", "steps", g.step, "score", g.agent.Score(), "slices", len(g.env.Information.Slices))
	}
	g.notify()
	return g.env, nil
}

// Env returns the latest snapshot.
func (g *Game) Env() Env { return g.env }

// Done reports whether the game is over.
func (g *Game) Done() bool { return g.env.Done }

// ID returns the game id.
func (g *Game) ID() string { return g.id }

// Agent exposes the underlying agent, mainly for policies.
func (g *Game) Agent() *agent.Agent { return g.agent }

func (g *Game) notify() {
	for _, o := range g.observers {
		o.ObserveEnv(g.env)
	}
}

func (g *Game) snapshot(action string, reward float64, done bool) Env {
	a := g.agent
	valid := a.ValidSlices()
	tuples := make([][4]int, len(valid))
	for i, s := range valid {
		tuples[i] = s.Tuple()
	}
	cursor := a.Cursor()
	return Env{
		State: State{
			IngredientsMap: a.Ingredients().Map(),
			SlicesMap:      a.Grid().OwnersMap(),
			CursorPosition: [2]int{cursor.R, cursor.C},
			SliceMode:      a.SliceMode(),
			MinEach:        a.MinEach(),
			MaxCells:       a.MaxCells(),
		},
		Reward: reward,
		Done:   done,
		Information: Information{
			Step:              g.step,
			Action:            action,
			UniqueIngredients: g.unique,
			Score:             a.Score(),
			Slices:            tuples,
			GameID:            g.id,
		},
	}
}
