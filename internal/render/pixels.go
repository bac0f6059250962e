package render

import (
	"image/color"

	"pizzacut/internal/game"
)

// DefaultPalette colours ingredient types in the GUI viewer.
var DefaultPalette = []color.RGBA{
	{R: 214, G: 69, B: 65, A: 255},
	{R: 240, G: 200, B: 90, A: 255},
	{R: 110, G: 180, B: 100, A: 255},
	{R: 90, G: 150, B: 220, A: 255},
	{R: 180, G: 120, B: 210, A: 255},
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}
	last := len(palette) - 1
	for i, c := range cells {
		col := palette[min(int(c), last)]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// dimUnassigned halves the brightness of every cell no slice owns, so cut
// slices stand out.
func dimUnassigned(buf []byte, owners []int) {
	for i, id := range owners {
		if id >= 0 {
			continue
		}
		base := i * 4
		buf[base+0] /= 2
		buf[base+1] /= 2
		buf[base+2] /= 2
	}
}

// FillEnvRGBA writes one RGBA pixel per grid cell of env into buf, which must
// hold 4*rows*cols bytes. It reports false when the sizes disagree.
func FillEnvRGBA(buf []byte, env game.Env, palette []color.RGBA) bool {
	size := env.Size()
	if len(buf) != 4*size.Cells() || len(env.State.SlicesMap) != size.Rows {
		return false
	}
	cells := make([]uint8, 0, size.Cells())
	owners := make([]int, 0, size.Cells())
	for r := range size.Rows {
		if len(env.State.IngredientsMap[r]) != size.Cols || len(env.State.SlicesMap[r]) != size.Cols {
			return false
		}
		for c := range size.Cols {
			cells = append(cells, uint8(env.State.IngredientsMap[r][c]))
			owners = append(owners, env.State.SlicesMap[r][c])
		}
	}
	fillPaletteRGBA(buf, cells, palette)
	dimUnassigned(buf, owners)
	return true
}
