package wire3d

import "math"

// DrawLine plots every pixel from (x0,y0) to (x1,y1) inclusive with the
// integer Bresenham algorithm. All octants are handled; a zero-length line
// plots one pixel.
func DrawLine(t Target, x0, y0, x1, y1 int, c Color) {
	dx := AbsInt(x1 - x0)
	dy := AbsInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		// Strict comparisons: on a tie the minor axis waits one step.
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawMeshWireframe draws the edges a-b, a-c and b-c of every face using the
// cached projections in m.Proj, truncated to integers. Shared edges are drawn
// once per face.
//
// m must have been projected in the current frame. Face indices are trusted.
func DrawMeshWireframe(t Target, m *Mesh, c Color) {
	if t == nil || m == nil {
		return
	}
	for _, f := range m.Faces {
		ax, ay := pixel(m.Proj[f.A])
		bx, by := pixel(m.Proj[f.B])
		cx, cy := pixel(m.Proj[f.C])

		DrawLine(t, ax, ay, bx, by, c)
		DrawLine(t, ax, ay, cx, cy, c)
		DrawLine(t, bx, by, cx, cy, c)
	}
}

// pixelLimit keeps truncated coordinates inside int range so that a
// non-finite projection degrades into an off-screen line.
const pixelLimit = 1 << 15

func pixel(p Vec2) (x, y int) {
	return truncPixel(p.X), truncPixel(p.Y)
}

func truncPixel(v Scalar) int {
	switch {
	case math.IsNaN(float64(v)):
		return -pixelLimit
	case v > pixelLimit:
		return pixelLimit
	case v < -pixelLimit:
		return -pixelLimit
	}
	return int(v)
}
