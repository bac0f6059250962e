//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"pizzacut/internal/core"
)

const (
	panelPadding = 10
	lineHeight   = 16
	groupGap     = 8
)

var (
	panelColor = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	valueColor = color.RGBA{R: 235, G: 235, B: 240, A: 255}
)

// HUD renders the information panel to the right of the board.
type HUD struct {
	width      int
	title      string
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
}

// NewHUD constructs a HUD of the given panel width.
func NewHUD(width int, title string) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width, title: title}
}

// Update refreshes the cached parameters.
func (h *HUD) Update(v core.Viewable) {
	if h == nil || v == nil {
		return
	}
	h.snapshot = v.Parameters()
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	y := panelPadding + 12
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)
	y += lineHeight + groupGap

	valueX := panelPadding + (h.snapshot.LabelWidth()+1)*7
	for _, group := range h.snapshot.Groups {
		for _, p := range group.Params {
			text.Draw(h.panel, p.Label, face, panelPadding, y, labelColor)
			text.Draw(h.panel, p.Value, face, valueX, y, valueColor)
			y += lineHeight
		}
		y += groupGap
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
