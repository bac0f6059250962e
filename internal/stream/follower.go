// Package stream follows a game directory written by a running game and
// yields its snapshots in step order.
package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/tidwall/gjson"

	"pizzacut/internal/game"
	"pizzacut/internal/logging"
	"pizzacut/internal/store"
)

// DefaultRefresh is the polling interval used next to file system events.
const DefaultRefresh = 200 * time.Millisecond

// Option customises a Follower.
type Option func(*Follower)

// WithRefresh sets the polling interval. Non-positive values select
// DefaultRefresh.
func WithRefresh(d time.Duration) Option {
	return func(f *Follower) {
		if d > 0 {
			f.refresh = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(f *Follower) { f.logger = l }
}

// Follower reads <step>_env.json files one after another and stops once
// ready_pizza_env.json exists and no further step file does.
type Follower struct {
	dir     string
	refresh time.Duration
	logger  *slog.Logger
	watcher *fsnotify.Watcher
	next    int
}

// NewFollower watches dir, which must exist. When file system notifications
// are unavailable the follower polls.
func NewFollower(dir string, opts ...Option) (*Follower, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("game directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("game directory %s: not a directory", dir)
	}
	f := &Follower{dir: dir, refresh: DefaultRefresh}
	for _, opt := range opts {
		opt(f)
	}
	f.logger = logging.OrDiscard(f.logger)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		f.logger.Debug("file notifications unavailable, polling", "error", err)
		return f, nil
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		f.logger.Debug("cannot watch game directory, polling", "error", err)
		return f, nil
	}
	f.watcher = w
	return f, nil
}

// Close releases the watcher.
func (f *Follower) Close() error {
	if f.watcher == nil {
		return nil
	}
	return f.watcher.Close()
}

// Next blocks until the next snapshot is available. It returns io.EOF once
// the game has ended and every step file was delivered.
func (f *Follower) Next(ctx context.Context) (game.Env, error) {
	path := filepath.Join(f.dir, store.EnvFileName(f.next))
	final := filepath.Join(f.dir, store.FinalEnvFile)
	for {
		env, ok, err := f.read(path)
		if err != nil {
			return game.Env{}, err
		}
		if ok {
			f.next++
			return env, nil
		}
		if exists(final) {
			// the step file may have landed between the two checks
			if env, ok, err := f.read(path); err != nil || ok {
				if ok {
					f.next++
				}
				return env, err
			}
			return game.Env{}, io.EOF
		}
		if err := f.wait(ctx); err != nil {
			return game.Env{}, err
		}
	}
}

// Run delivers every snapshot to fn until the game ends, fn fails or ctx is
// cancelled. Reaching the end of the game is not an error.
func (f *Follower) Run(ctx context.Context, fn func(game.Env) error) error {
	for {
		env, err := f.Next(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(env); err != nil {
			return err
		}
	}
}

// read reports ok=false for missing or partially written files.
func (f *Follower) read(path string) (game.Env, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return game.Env{}, false, nil
	}
	if err != nil {
		return game.Env{}, false, err
	}
	if _, ok := PeekStep(data); !ok {
		f.logger.Debug("skipping partial snapshot", "path", path, "bytes", len(data))
		return game.Env{}, false, nil
	}
	var env game.Env
	if err := json.Unmarshal(data, &env); err != nil {
		return game.Env{}, false, fmt.Errorf("decode %s: %w", path, err)
	}
	return env, true, nil
}

func (f *Follower) wait(ctx context.Context) error {
	timer := time.NewTimer(f.refresh)
	defer timer.Stop()

	var events <-chan fsnotify.Event
	var errs <-chan error
	if f.watcher != nil {
		events, errs = f.watcher.Events, f.watcher.Errors
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	case <-events:
	case err := <-errs:
		if err != nil {
			f.logger.Debug("watch error", "error", err)
		}
	}
	return nil
}

// PeekStep returns information.step from a complete snapshot document.
func PeekStep(data []byte) (int, bool) {
	if !gjson.ValidBytes(data) {
		return 0, false
	}
	step := gjson.GetBytes(data, "information.step")
	if !step.Exists() {
		return 0, false
	}
	return int(step.Int()), true
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
