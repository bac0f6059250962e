package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"pizzacut/internal/game"
)

// BadgerConfig selects where snapshots are kept.
type BadgerConfig struct {
	Path     string
	InMemory bool
	Logger   *slog.Logger
}

type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// OpenBadger opens (or creates) the snapshot database.
func OpenBadger(cfg BadgerConfig) (*badger.DB, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("store: path is required for a persistent database")
	}
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("create database directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}
	return db, nil
}

func stepKey(id string, step int) []byte { return fmt.Appendf(nil, "env/%s/%08d", id, step) }
func finalKey(id string) []byte         { return fmt.Appendf(nil, "env/%s/final", id) }
func gamePrefix(id string) []byte       { return fmt.Appendf(nil, "env/%s/", id) }

// BadgerSink stores snapshots under env/<game id>/<step> and the final one
// under env/<game id>/final.
type BadgerSink struct {
	db   *badger.DB
	owns bool
}

// NewBadgerSink writes into db. Close leaves db open.
func NewBadgerSink(db *badger.DB) *BadgerSink { return &BadgerSink{db: db} }

// OpenBadgerSink opens a database that the sink closes on Close.
func OpenBadgerSink(cfg BadgerConfig) (*BadgerSink, error) {
	db, err := OpenBadger(cfg)
	if err != nil {
		return nil, err
	}
	return &BadgerSink{db: db, owns: true}, nil
}

// DB returns the underlying database.
func (s *BadgerSink) DB() *badger.DB { return s.db }

func (s *BadgerSink) Put(env game.Env) error {
	return s.set(stepKey(env.Information.GameID, env.Information.Step), env)
}

func (s *BadgerSink) Finish(env game.Env) error {
	return s.set(finalKey(env.Information.GameID), env)
}

func (s *BadgerSink) set(key []byte, env game.Env) error {
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	}); err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	return nil
}

func (s *BadgerSink) Close() error {
	if !s.owns {
		return nil
	}
	return s.db.Close()
}

// LoadEnvs returns the per-step snapshots of a game in step order.
func LoadEnvs(db *badger.DB, id string) ([]game.Env, error) {
	var envs []game.Env
	prefix := gamePrefix(id)
	final := string(finalKey(id))
	err := db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			if string(item.Key()) == final {
				continue
			}
			var env game.Env
			if err := item.Value(func(v []byte) error { return json.Unmarshal(v, &env) }); err != nil {
				return fmt.Errorf("decode %s: %w", item.Key(), err)
			}
			envs = append(envs, env)
		}
		return nil
	})
	return envs, err
}

// LoadFinal returns the final snapshot of a game. It wraps
// badger.ErrKeyNotFound when the game has not finished.
func LoadFinal(db *badger.DB, id string) (game.Env, error) {
	var env game.Env
	err := db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(finalKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error { return json.Unmarshal(v, &env) })
	})
	if err != nil {
		return game.Env{}, fmt.Errorf("load final snapshot of %s: %w", id, err)
	}
	return env, nil
}
