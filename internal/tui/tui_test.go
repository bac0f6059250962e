package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzacut/internal/game"
	"pizzacut/internal/pizza"
	"pizzacut/internal/render"
)

func newModel(t *testing.T, lines ...string) Model {
	t.Helper()
	g, err := game.New(game.DefaultConfig(), pizza.Config{Lines: lines, L: 1, H: 6})
	require.NoError(t, err)
	return New(g, render.NewRenderer(true), render.Options{})
}

func press(m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestWASDMovesCursor(t *testing.T) {
	m := newModel(t, "TMT", "MTM")
	m, _ = press(m, runes("d"))
	m, _ = press(m, runes("s"))
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyLeft})

	env := m.game.Env()
	assert.Equal(t, [2]int{1, 0}, env.State.CursorPosition)
	assert.Equal(t, 3, env.Information.Step)
}

func TestSpaceTogglesAndGrows(t *testing.T) {
	m := newModel(t, "TMT", "MTM")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	require.True(t, m.game.Env().State.SliceMode)

	m, _ = press(m, runes("D"))
	assert.Equal(t, 2, m.game.Env().Information.Score)
	assert.Contains(t, m.View(), "<T>")
}

func TestUnknownKeyIgnored(t *testing.T) {
	m := newModel(t, "TM")
	m, cmd := press(m, runes("x"))
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.game.Env().Information.Step)
}

func TestQuitKey(t *testing.T) {
	m := newModel(t, "TM")
	m, cmd := press(m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Quitting())
	assert.NotContains(t, m.View(), "quit")
}

func TestGameOverQuits(t *testing.T) {
	g, err := game.New(game.DefaultConfig(), pizza.Config{Lines: []string{"TM"}, L: 1, H: 2})
	require.NoError(t, err)
	m := New(g, render.NewRenderer(true), render.Options{})
	m, _ = press(m, runes(" "))
	m, cmd := press(m, runes("d"))
	require.NotNil(t, cmd)
	assert.True(t, m.Quitting())
	assert.True(t, g.Done())
}
