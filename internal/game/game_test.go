package game

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzacut/internal/agent"
	"pizzacut/internal/pizza"
)

func examplePuzzle() pizza.Config {
	return pizza.Config{Lines: []string{"TMTTM", "MMTTT", "TTTMT"}, L: 1, H: 6}
}

type recorder struct {
	envs    []Env
	invalid []string
}

func (r *recorder) ObserveEnv(env Env)          { r.envs = append(r.envs, env) }
func (r *recorder) ObserveInvalid(token string) { r.invalid = append(r.invalid, token) }

func TestNewInitialEnv(t *testing.T) {
	rec := &recorder{}
	g, err := New(DefaultConfig(), examplePuzzle(), WithObserver(rec), WithID("g1"))
	require.NoError(t, err)

	env := g.Env()
	assert.Equal(t, 0, env.Information.Step)
	assert.Equal(t, "none", env.Information.Action)
	assert.Equal(t, []string{"M", "T"}, env.Information.UniqueIngredients)
	assert.Equal(t, "g1", env.Information.GameID)
	assert.False(t, env.Done)
	assert.Equal(t, [][]int{{1, 0, 1, 1, 0}, {0, 0, 1, 1, 1}, {1, 1, 1, 0, 1}}, env.State.IngredientsMap)
	assert.Equal(t, -1, env.State.SlicesMap[2][4])
	require.Len(t, rec.envs, 1)
}

func TestStepSequence(t *testing.T) {
	g, err := New(DefaultConfig(), examplePuzzle())
	require.NoError(t, err)

	_, err = g.Step("toggle")
	require.NoError(t, err)
	env, err := g.Step("right")
	require.NoError(t, err)
	assert.Equal(t, 2.0, env.Reward)
	assert.Equal(t, 2, env.Information.Step)
	assert.Equal(t, [][4]int{{0, 0, 0, 1}}, env.Information.Slices)
	assert.Equal(t, []int{0, 0, -1, -1, -1}, env.State.SlicesMap[0])
	assert.True(t, env.State.SliceMode)
}

func TestInvalidActionDoesNotAdvance(t *testing.T) {
	rec := &recorder{}
	g, err := New(DefaultConfig(), examplePuzzle(), WithObserver(rec))
	require.NoError(t, err)

	env, err := g.Step("jump")
	require.ErrorIs(t, err, agent.ErrInvalidAction)
	assert.Equal(t, 0, env.Information.Step)
	assert.Equal(t, []string{"jump"}, rec.invalid)
	assert.Len(t, rec.envs, 1)
}

func TestMaxStepsEndsGame(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxSteps = 3
	g, err := New(cfg, examplePuzzle())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := g.Step("down")
		require.NoError(t, err)
	}
	assert.True(t, g.Done())
	_, err = g.Step("down")
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestStuckBoardEndsGame(t *testing.T) {
	g, err := New(DefaultConfig(), pizza.Config{Lines: []string{"TM"}, L: 1, H: 2})
	require.NoError(t, err)

	_, err = g.Step("toggle")
	require.NoError(t, err)
	env, err := g.Step("right")
	require.NoError(t, err)
	assert.True(t, env.Done)
	assert.Equal(t, 2, env.Information.Score)
}

func TestNewRejectsBadPuzzle(t *testing.T) {
	_, err := New(DefaultConfig(), pizza.Config{Lines: []string{"TM"}, L: 0, H: 2})
	var cerr *pizza.ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.ErrorIs(t, err, pizza.ErrOutOfRange)
}

func TestEnvJSONLayout(t *testing.T) {
	g, err := New(DefaultConfig(), examplePuzzle(), WithID("abc"))
	require.NoError(t, err)

	data, err := json.Marshal(g.Env())
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, 0.0, raw["reward"])
	assert.Equal(t, false, raw["done"])
	state, ok := raw["state"].(map[string]any)
	require.True(t, ok, "state is %T", raw["state"])
	info, ok := raw["information"].(map[string]any)
	require.True(t, ok, "information is %T", raw["information"])

	assert.Contains(t, state, "ingredients_map")
	assert.Contains(t, state, "slices_map")
	assert.Contains(t, state, "min_each_ingredient_per_slice")
	assert.Contains(t, state, "max_ingredients_per_slice")
	assert.Equal(t, false, state["slice_mode"])
	assert.Equal(t, []any{0.0, 0.0}, state["cursor_position"])
	assert.Equal(t, 0.0, info["step"])
	assert.Equal(t, "none", info["action"])
	assert.Equal(t, []any{}, info["slices"])
	assert.Equal(t, "abc", info["game_id"])
}

func TestEnvParameters(t *testing.T) {
	g, err := New(DefaultConfig(), examplePuzzle())
	require.NoError(t, err)

	params := g.Env().Parameters()
	p, ok := params.Lookup("columns")
	require.True(t, ok)
	assert.Equal(t, "5", p.Value)
	p, ok = params.Lookup("slice_mode")
	require.True(t, ok)
	assert.Equal(t, "off", p.Value)
	assert.Equal(t, len("Min each ingredient per slice:"), params.LabelWidth())
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{"max_steps": "7", "negative": "-1", "positive": "x"})
	assert.Equal(t, 7, cfg.MaxSteps)
	assert.Equal(t, -1.0, cfg.Rewards.Negative)
	assert.Equal(t, 1.0, cfg.Rewards.Positive)
	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_steps: 12\nrewards:\n  positive: 2\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.MaxSteps)
	assert.Equal(t, 2.0, cfg.Rewards.Positive)
	assert.Equal(t, -0.1, cfg.Rewards.Negative)

	t.Setenv(EnvMaxSteps, "40")
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.MaxSteps)

	t.Setenv(EnvMaxSteps, "0")
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
