package app

import (
	"image/color"

	"threedee/fonts/font5x7"
	"threedee/wire3d"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

type hud struct {
	d          targetDisplayer
	font       tinyfont.Fonter
	fontWidth  int16
	fontHeight int16
}

func newHUD(t wire3d.Target) *hud {
	h := &hud{
		d:          targetDisplayer{t: t},
		font:       font5x7.Font,
		fontHeight: int16(font5x7.Font.GetYAdvance()),
	}
	_, outboxWidth := tinyfont.LineWidth(h.font, "0")
	h.fontWidth = int16(outboxWidth)
	return h
}

// drawText writes s with its cell's top-left corner at (x, y).
func (h *hud) drawText(x, y int, s string, c wire3d.Color) {
	if h == nil || h.d.t == nil {
		return
	}
	tinyfont.WriteLine(h.d, h.font, int16(x), int16(y)+h.fontHeight, s, c.Std())
}

// targetDisplayer lets tinyfont draw into a wire3d.Target.
type targetDisplayer struct {
	t wire3d.Target
}

var _ drivers.Displayer = targetDisplayer{}

func (d targetDisplayer) Size() (x, y int16) {
	if d.t == nil {
		return 0, 0
	}
	w, h := d.t.Size()
	return int16(w), int16(h)
}

func (d targetDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.t == nil {
		return
	}
	d.t.SetPixel(int(x), int(y), wire3d.RGBA(c.R, c.G, c.B, c.A))
}

func (d targetDisplayer) Display() error { return nil }
