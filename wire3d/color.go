package wire3d

import "image/color"

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color     { return Color{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// Std converts c to the image/color representation.
func (c Color) Std() color.RGBA { return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A} }

// RGB565 packs c into 16 bits (rrrrrggggggbbbbb).
func (c Color) RGB565() uint16 {
	return uint16((uint16(c.R>>3)&0x1F)<<11 | (uint16(c.G>>2)&0x3F)<<5 | (uint16(c.B>>3) & 0x1F))
}

var (
	White = RGB(0xFF, 0xFF, 0xFF)
	Black = RGB(0, 0, 0)
)
