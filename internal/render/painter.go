//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"pizzacut/internal/core"
	"pizzacut/internal/game"
)

// GridPainter keeps one pixel per grid cell in an ebiten image.
type GridPainter struct {
	size    core.Size
	img     *ebiten.Image
	buf     []byte
	palette []color.RGBA
}

// NewGridPainter allocates a painter for a grid of the given size.
func NewGridPainter(size core.Size, palette []color.RGBA) *GridPainter {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return &GridPainter{
		size:    size,
		img:     ebiten.NewImage(size.Cols, size.Rows),
		buf:     make([]byte, 4*size.Cells()),
		palette: palette,
	}
}

// Blit uploads env into the painter image and draws it scaled.
func (gp *GridPainter) Blit(dst *ebiten.Image, env game.Env, scale int) {
	if env.Size() != gp.size || !FillEnvRGBA(gp.buf, env, gp.palette) {
		return
	}
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the grid size the painter was built for.
func (gp *GridPainter) Size() core.Size { return gp.size }
