package store

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzacut/internal/game"
	"pizzacut/internal/pizza"
)

func playExample(t *testing.T, obs ...game.Observer) *game.Game {
	t.Helper()
	var opts []game.Option
	for _, o := range obs {
		opts = append(opts, game.WithObserver(o))
	}
	opts = append(opts, game.WithID("test-game"))
	g, err := game.New(game.DefaultConfig(), pizza.Config{Lines: []string{"TMTTM", "MMTTT", "TTTMT"}, L: 1, H: 6}, opts...)
	require.NoError(t, err)
	for _, a := range []string{"toggle", "right", "right"} {
		_, err := g.Step(a)
		require.NoError(t, err)
	}
	return g
}

func TestDirSink(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "game")
	sink, err := NewDirSink(dir)
	require.NoError(t, err)

	g := playExample(t, NewRecorder(sink, nil))
	require.NoError(t, sink.Finish(g.Env()))

	for step := 0; step <= 3; step++ {
		assert.FileExists(t, filepath.Join(dir, EnvFileName(step)))
	}
	final, err := ReadEnv(filepath.Join(dir, FinalEnvFile))
	require.NoError(t, err)
	assert.Equal(t, g.Env(), final)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 5, "no temporary files may be left behind")
}

func TestParseEnvFileName(t *testing.T) {
	step, ok := ParseEnvFileName("12_env.json")
	assert.True(t, ok)
	assert.Equal(t, 12, step)

	for _, name := range []string{FinalEnvFile, "x_env.json", "-1_env.json", "3.json"} {
		_, ok := ParseEnvFileName(name)
		assert.False(t, ok, name)
	}
}

func TestBadgerSink(t *testing.T) {
	db, err := OpenBadger(BadgerConfig{InMemory: true})
	require.NoError(t, err)
	defer db.Close()

	sink := NewBadgerSink(db)
	g := playExample(t, NewRecorder(sink, nil))

	_, err = LoadFinal(db, g.ID())
	assert.ErrorIs(t, err, badger.ErrKeyNotFound)

	require.NoError(t, sink.Finish(g.Env()))
	require.NoError(t, sink.Close())

	envs, err := LoadEnvs(db, g.ID())
	require.NoError(t, err)
	require.Len(t, envs, 4)
	for i, env := range envs {
		assert.Equal(t, i, env.Information.Step)
	}
	final, err := LoadFinal(db, g.ID())
	require.NoError(t, err)
	assert.Equal(t, 3, final.Information.Score)

	other, err := LoadEnvs(db, "other")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestOpenBadgerRequiresPath(t *testing.T) {
	_, err := OpenBadger(BadgerConfig{})
	assert.Error(t, err)
}

func TestWriteSlices(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSlices(&buf, [][4]int{{0, 0, 0, 2}, {1, 0, 2, 1}}))
	assert.Equal(t, "2\n0 0 0 2\n1 0 2 1\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteSlices(&buf, nil))
	assert.Equal(t, "0\n", buf.String())

	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, WriteSlicesFile(path, [][4]int{{0, 0, 0, 1}}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1\n0 0 0 1\n", string(data))
}

type failSink struct{ err error }

func (f failSink) Put(game.Env) error    { return f.err }
func (f failSink) Finish(game.Env) error { return f.err }
func (f failSink) Close() error          { return nil }

func TestMultiTriesEverySink(t *testing.T) {
	boom := errors.New("boom")
	dir := t.TempDir()
	ds, err := NewDirSink(dir)
	require.NoError(t, err)

	g := playExample(t)
	m := Multi(failSink{err: boom}, ds)
	assert.ErrorIs(t, m.Put(g.Env()), boom)
	assert.FileExists(t, filepath.Join(dir, EnvFileName(3)))
	assert.NoError(t, m.Close())
}
