package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"pizzacut/internal/game"
)

// FinalEnvFile is written once the game ends. Its presence marks a finished
// game directory.
const FinalEnvFile = "ready_pizza_env.json"

// EnvFileName returns the file name of the snapshot for step.
func EnvFileName(step int) string { return strconv.Itoa(step) + "_env.json" }

// ParseEnvFileName extracts the step from a snapshot file name.
func ParseEnvFileName(name string) (int, bool) {
	num, ok := strings.CutSuffix(name, "_env.json")
	if !ok {
		return 0, false
	}
	step, err := strconv.Atoi(num)
	if err != nil || step < 0 {
		return 0, false
	}
	return step, true
}

// DirSink writes one JSON file per snapshot into a directory. Existing files
// are overwritten.
type DirSink struct {
	dir string
}

// NewDirSink creates dir if needed.
func NewDirSink(dir string) (*DirSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create game directory: %w", err)
	}
	return &DirSink{dir: dir}, nil
}

// Dir returns the target directory.
func (s *DirSink) Dir() string { return s.dir }

// Put writes <step>_env.json.
func (s *DirSink) Put(env game.Env) error {
	return writeJSON(filepath.Join(s.dir, EnvFileName(env.Information.Step)), env)
}

// Finish writes ready_pizza_env.json.
func (s *DirSink) Finish(env game.Env) error {
	return writeJSON(filepath.Join(s.dir, FinalEnvFile), env)
}

// Close is a no-op; every write is complete when Put returns.
func (s *DirSink) Close() error { return nil }

// writeJSON renames a temporary file into place so followers never see a
// half-written snapshot.
func writeJSON(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReadEnv loads one snapshot file.
func ReadEnv(path string) (game.Env, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return game.Env{}, err
	}
	var env game.Env
	if err := json.Unmarshal(data, &env); err != nil {
		return game.Env{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return env, nil
}
