//go:build ebiten

package ui

import (
	"image/color"

	"conway-ca/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay highlights the cell under the mouse cursor while the sim is paused.
type Overlay struct {
	sim   core.Sim
	scale int
	pixel *ebiten.Image

	hoverX, hoverY int
	hover          bool
	visible        bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update tracks the cursor position. The highlight is only drawn when visible.
func (o *Overlay) Update(visible bool) {
	o.visible = visible
	mx, my := ebiten.CursorPosition()
	o.hoverX, o.hoverY, o.hover = CellAt(mx, my, o.scale, o.sim.Size())
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible || !o.hover {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(o.hoverX*scale), float64(o.hoverY*scale))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 90, G: 160, B: 255, A: 160})
	screen.DrawImage(o.pixel, op)
}
