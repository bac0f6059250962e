//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"pizzacut/internal/game"
	"pizzacut/internal/render"
)

var (
	sliceColor      = color.RGBA{R: 250, G: 250, B: 250, A: 230}
	cursorColor     = color.RGBA{R: 60, G: 220, B: 240, A: 255}
	sliceModeColor  = color.RGBA{R: 255, G: 120, B: 40, A: 255}
	validSliceColor = color.RGBA{R: 120, G: 230, B: 120, A: 255}
)

// Overlay draws slice outlines and the cursor on top of the board.
// Key 1 toggles the outlines, key 2 the cursor.
type Overlay struct {
	scale      int
	showSlices bool
	showCursor bool
}

// NewOverlay constructs an overlay with everything visible.
func NewOverlay(scale int) *Overlay {
	return &Overlay{scale: max(scale, 1), showSlices: true, showCursor: true}
}

// Update handles the toggle keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showSlices = !o.showSlices
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showCursor = !o.showCursor
	}
}

// Draw renders the overlay for env.
func (o *Overlay) Draw(screen *ebiten.Image, env game.Env) {
	size := env.Size()
	if size.Cells() == 0 {
		return
	}
	scale := float32(o.scale)
	if o.showSlices {
		valid := map[[4]int]bool{}
		for _, s := range env.Information.Slices {
			valid[s] = true
		}
		stroke := max(scale/4, 1)
		for _, s := range render.SlicesFromMap(env.State.SlicesMap) {
			col := sliceColor
			if valid[s] {
				col = validSliceColor
			}
			x, y := float32(s[1])*scale, float32(s[0])*scale
			w, h := float32(s[3]-s[1]+1)*scale, float32(s[2]-s[0]+1)*scale
			vector.StrokeRect(screen, x, y, w, h, stroke, col, false)
		}
	}
	if o.showCursor {
		cur := env.Cursor()
		if !size.Contains(cur) {
			return
		}
		col := cursorColor
		if env.State.SliceMode {
			col = sliceModeColor
		}
		inset := scale / 6
		vector.StrokeRect(screen, float32(cur.C)*scale+inset, float32(cur.R)*scale+inset,
			scale-2*inset, scale-2*inset, max(scale/8, 1), col, false)
	}
}
