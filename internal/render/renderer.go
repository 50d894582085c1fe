//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// GridPainter draws a binary cell buffer as one scaled image, recolouring
// live and dead cells with a fixed CellColors pair.
type GridPainter struct {
	w, h    int
	on, off [4]byte
	img     *ebiten.Image
	buf     []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, colors CellColors) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.on, gp.off = colors.pixels()
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads cells and draws them onto dst at the given scale. Buffers of
// the wrong length are ignored.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	fillBinaryRGBA(gp.buf, cells, gp.on, gp.off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
