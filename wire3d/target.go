package wire3d

import "image/draw"

// Target is a minimal pixel target for software rendering.
//
// Implementations must ignore out-of-bounds coordinates; the pipeline does
// not clip.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}

// RGB565Target renders into a little-endian RGB565 buffer.
//
// Callers provide the backing buffer and its layout (stride in bytes).
type RGB565Target struct {
	Buf    []byte
	Stride int
	W      int
	H      int
}

func (t *RGB565Target) Size() (w, h int) { return t.W, t.H }

func (t *RGB565Target) Clear(c Color) {
	if t == nil || t.Buf == nil || t.Stride <= 0 || t.W <= 0 || t.H <= 0 {
		return
	}
	p := c.RGB565()
	lo := byte(p)
	hi := byte(p >> 8)
	for y := 0; y < t.H; y++ {
		row := y * t.Stride
		for x := 0; x < t.W; x++ {
			off := row + x*2
			if off < 0 || off+1 >= len(t.Buf) {
				continue
			}
			t.Buf[off] = lo
			t.Buf[off+1] = hi
		}
	}
}

func (t *RGB565Target) SetPixel(x, y int, c Color) {
	if t == nil || t.Buf == nil || t.Stride <= 0 {
		return
	}
	if x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	off := y*t.Stride + x*2
	if off < 0 || off+1 >= len(t.Buf) {
		return
	}
	p := c.RGB565()
	t.Buf[off] = byte(p)
	t.Buf[off+1] = byte(p >> 8)
}

// ImageTarget adapts any draw.Image (for example *image.RGBA) to Target.
type ImageTarget struct {
	Img draw.Image
}

func (t ImageTarget) Size() (w, h int) {
	if t.Img == nil {
		return 0, 0
	}
	b := t.Img.Bounds()
	return b.Dx(), b.Dy()
}

func (t ImageTarget) SetPixel(x, y int, c Color) {
	if t.Img == nil {
		return
	}
	b := t.Img.Bounds()
	x += b.Min.X
	y += b.Min.Y
	if x < b.Min.X || y < b.Min.Y || x >= b.Max.X || y >= b.Max.Y {
		return
	}
	t.Img.Set(x, y, c.Std())
}

func (t ImageTarget) Clear(c Color) {
	if t.Img == nil {
		return
	}
	b := t.Img.Bounds()
	sc := c.Std()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			t.Img.Set(x, y, sc)
		}
	}
}
