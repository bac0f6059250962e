// Package tui runs an interactive game in the terminal: WASD or the arrow
// keys move or grow, space toggles slice mode and q quits.
package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"pizzacut/internal/game"
	"pizzacut/internal/input"
	"pizzacut/internal/render"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("w", "up"), key.WithHelp("w/↑", "up")),
		Down:   key.NewBinding(key.WithKeys("s", "down"), key.WithHelp("s/↓", "down")),
		Left:   key.NewBinding(key.WithKeys("a", "left"), key.WithHelp("a/←", "left")),
		Right:  key.NewBinding(key.WithKeys("d", "right"), key.WithHelp("d/→", "right")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "slice mode")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Toggle, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

// action maps a key press to a game action.
func (k keyMap) action(msg tea.KeyMsg) (string, bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return input.KeyQuit, true
	case key.Matches(msg, k.Up):
		return "up", true
	case key.Matches(msg, k.Down):
		return "down", true
	case key.Matches(msg, k.Left):
		return "left", true
	case key.Matches(msg, k.Right):
		return "right", true
	case key.Matches(msg, k.Toggle):
		return "toggle", true
	}
	// upper-case WASD and the like
	return input.KeyAction(msg.String())
}

// Model is the bubbletea model of one game.
type Model struct {
	game     *game.Game
	renderer *render.Renderer
	opts     render.Options
	keys     keyMap
	help     help.Model

	status   string
	quitting bool
}

// New returns a model playing g.
func New(g *game.Game, r *render.Renderer, opts render.Options) Model {
	return Model{game: g, renderer: r, opts: opts, keys: defaultKeyMap(), help: help.New()}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		action, ok := m.keys.action(msg)
		if !ok {
			return m, nil
		}
		if action == input.KeyQuit {
			m.quitting = true
			return m, tea.Quit
		}
		_, err := m.game.Step(action)
		switch {
		case errors.Is(err, game.ErrGameOver):
			m.quitting = true
			return m, tea.Quit
		case err != nil:
			m.status = err.Error()
		default:
			m.status = ""
		}
		if m.game.Done() {
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderer.Frame(m.game.Env(), m.opts))
	if m.status != "" {
		b.WriteString("  " + m.status + "\n")
	}
	if !m.quitting {
		b.WriteString("\n  " + m.help.View(m.keys) + "\n")
	}
	return b.String()
}

// Quitting reports whether the model asked the program to exit.
func (m Model) Quitting() bool { return m.quitting }

// Run plays g interactively until the game ends or the player quits. Extra
// program options are passed to bubbletea.
func Run(g *game.Game, r *render.Renderer, opts render.Options, progOpts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(New(g, r, opts), progOpts...).Run()
	return err
}
