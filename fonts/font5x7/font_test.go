package font5x7

import (
	"image/color"
	"testing"

	"tinygo.org/x/tinyfont"
)

type pixels struct {
	w, h int16
	set  map[[2]int16]bool
}

func newPixels(w, h int16) *pixels { return &pixels{w: w, h: h, set: map[[2]int16]bool{}} }

func (p *pixels) Size() (x, y int16)                { return p.w, p.h }
func (p *pixels) SetPixel(x, y int16, _ color.RGBA) { p.set[[2]int16{x, y}] = true }
func (p *pixels) Display() error                    { return nil }

func TestGlyphDrawsInsideCell(t *testing.T) {
	d := newPixels(32, 16)
	Font.GetGlyph('8').Draw(d, 2, 10, color.RGBA{A: 0xFF})
	if len(d.set) == 0 {
		t.Fatalf("glyph drew nothing")
	}
	for p := range d.set {
		if p[0] < 2 || p[0] > 6 || p[1] < 3 || p[1] > 9 {
			t.Fatalf("pixel %v outside the 5x7 cell", p)
		}
	}
}

func TestLowercaseMatchesUppercase(t *testing.T) {
	lo := newPixels(8, 8)
	up := newPixels(8, 8)
	Font.GetGlyph('f').Draw(lo, 0, 7, color.RGBA{})
	Font.GetGlyph('F').Draw(up, 0, 7, color.RGBA{})
	if len(lo.set) != len(up.set) {
		t.Fatalf("'f' and 'F' differ")
	}
	for p := range up.set {
		if !lo.set[p] {
			t.Fatalf("'f' missing pixel %v", p)
		}
	}
}

func TestUnknownRuneFallsBack(t *testing.T) {
	a := newPixels(8, 8)
	b := newPixels(8, 8)
	Font.GetGlyph('€').Draw(a, 0, 7, color.RGBA{})
	Font.GetGlyph('?').Draw(b, 0, 7, color.RGBA{})
	if len(a.set) == 0 || len(a.set) != len(b.set) {
		t.Fatalf("unknown rune did not render as '?'")
	}
	sp := newPixels(8, 8)
	Font.GetGlyph(' ').Draw(sp, 0, 7, color.RGBA{})
	if len(sp.set) != 0 {
		t.Fatalf("space drew %d pixels", len(sp.set))
	}
}

func TestLineWidth(t *testing.T) {
	_, outbox := tinyfont.LineWidth(Font, "FPS 30")
	if outbox != 6*cellWidth {
		t.Fatalf("outbox width = %d, want %d", outbox, 6*cellWidth)
	}
	if Font.GetYAdvance() != cellHeight {
		t.Fatalf("y advance = %d", Font.GetYAdvance())
	}
}
