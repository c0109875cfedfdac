package render

import "image/color"

// fillSolid paints every RGBA pixel in buf with c.
func fillSolid(buf []byte, c color.NRGBA) {
	for base := 0; base+3 < len(buf); base += 4 {
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
}
