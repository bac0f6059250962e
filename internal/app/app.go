//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pizzacut/internal/core"
	"pizzacut/internal/game"
	"pizzacut/internal/render"
	"pizzacut/internal/ui"
)

const maxRate = 240

// Game adapts a followed game directory to the ebiten.Game interface.
type Game struct {
	envs    <-chan game.Env
	replay  *replay
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	timer   *core.FixedStep

	size     core.Size
	rate     int
	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
}

// New constructs a viewer showing first and then every snapshot received on
// envs, at cfg.Rate snapshots per second.
func New(first game.Env, envs <-chan game.Env, cfg *Config) *Game {
	size := first.Size()
	return &Game{
		envs:     envs,
		replay:   newReplay(first),
		painter:  render.NewGridPainter(size, nil),
		overlay:  ui.NewOverlay(cfg.Scale),
		hud:      ui.NewHUD(cfg.HUDWidth, "pizza cutting"),
		timer:    core.NewFixedStep(max(cfg.Rate, 1)),
		size:     size,
		rate:     max(cfg.Rate, 1),
		scale:    cfg.Scale,
		hudWidth: cfg.HUDWidth,
	}
}

// Update handles per-frame logic and advances the replay.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.timer.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.rate = min(g.rate*2, maxRate)
		g.timer.SetTPS(g.rate)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.rate = max(g.rate/2, 1)
		g.timer.SetTPS(g.rate)
	}

	g.overlay.Update()
	g.replay.drain(g.envs)
	if (!g.paused && g.timer.ShouldStep()) || g.tickOnce {
		g.replay.advance()
		g.tickOnce = false
	}
	g.hud.Update(g.replay.current)
	return nil
}

// Draw renders the current snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	env := g.replay.current
	g.painter.Blit(screen, env, g.scale)
	g.overlay.Draw(screen, env)
	g.hud.Draw(screen, g.size.Cols*g.scale, g.size.Rows*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size.Cols*g.scale + g.hudWidth, g.size.Rows * g.scale
}

// Finished reports whether the final snapshot is on screen.
func (g *Game) Finished() bool { return g.replay.finished() }
