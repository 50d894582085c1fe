package render

import "image/color"

// CellColors selects the pixel colours for live and dead cells.
type CellColors struct {
	On  color.Color
	Off color.Color
}

// LifeColors draws live cells white on a black board.
func LifeColors() CellColors {
	return CellColors{On: color.White, Off: color.Black}
}

// pixels resolves both colours to straight RGBA bytes once per painter.
func (c CellColors) pixels() (on, off [4]byte) {
	return rgbaBytes(c.On), rgbaBytes(c.Off)
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off [4]byte) {
	for i, c := range cells {
		px := off
		if c != 0 {
			px = on
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}

func rgbaBytes(c color.Color) [4]byte {
	if c == nil {
		return [4]byte{}
	}
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
