// Package store persists game snapshots: as env files in a directory, as
// records in a badger database, and as the final slices listing.
package store

import (
	"errors"
	"log/slog"

	"pizzacut/internal/game"
	"pizzacut/internal/logging"
)

// Sink receives every snapshot of a game and the final one once more when
// the game ends.
type Sink interface {
	Put(env game.Env) error
	Finish(env game.Env) error
	Close() error
}

type multi []Sink

// Multi fans snapshots out to several sinks. Every sink is tried; the errors
// are joined.
func Multi(sinks ...Sink) Sink { return multi(sinks) }

func (m multi) Put(env game.Env) error {
	var errs []error
	for _, s := range m {
		errs = append(errs, s.Put(env))
	}
	return errors.Join(errs...)
}

func (m multi) Finish(env game.Env) error {
	var errs []error
	for _, s := range m {
		errs = append(errs, s.Finish(env))
	}
	return errors.Join(errs...)
}

func (m multi) Close() error {
	var errs []error
	for _, s := range m {
		errs = append(errs, s.Close())
	}
	return errors.Join(errs...)
}

// Recorder adapts a Sink to game.Observer. Write failures are logged and do
// not stop the game.
type Recorder struct {
	sink   Sink
	logger *slog.Logger
}

// NewRecorder wraps sink.
func NewRecorder(sink Sink, logger *slog.Logger) *Recorder {
	return &Recorder{sink: sink, logger: logging.OrDiscard(logger)}
}

// ObserveEnv stores env.
func (r *Recorder) ObserveEnv(env game.Env) {
	if err := r.sink.Put(env); err != nil {
		r.logger.Warn("store snapshot", "step", env.Information.Step, "error", err)
	}
}

// ObserveInvalid ignores invalid actions; they produce no snapshot.
func (r *Recorder) ObserveInvalid(string) {}

var _ game.Observer = (*Recorder)(nil)
