package wire3d

import (
	"math"
	"testing"
)

const (
	testW = 144
	testH = 168
)

func testCamera() Camera {
	return Camera{Position: V3(0, 0, 15), Target: Zero3}
}

func TestProjectOriginToCenter(t *testing.T) {
	tests := []struct {
		name string
		cam  Camera
		pos  Vec3
	}{
		{"origin", testCamera(), Zero3},
		{"offset target", Camera{Position: V3(1, 2, 18), Target: V3(1, 2, 3)}, V3(1, 2, 3)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := NewMesh([]Vec3{Zero3}, nil)
			if err != nil {
				t.Fatal(err)
			}
			m.Position = tc.pos

			fc := NewFrameContext(tc.cam)
			fc.Prepare(testW, testH)
			fc.ProjectMesh(m)

			if got := m.Proj[0]; !approx(got.X, testW/2, 1e-3) || !approx(got.Y, testH/2, 1e-3) {
				t.Fatalf("projected to %v, want (%d,%d)", got, testW/2, testH/2)
			}
		})
	}
}

func TestEndToEndCuboid(t *testing.T) {
	cube := NewCuboid(2.0)
	fc := NewFrameContext(testCamera())
	fc.Prepare(testW, testH)
	fc.ProjectMesh(cube)

	seen := map[Vec2]bool{}
	var sumX, sumY Scalar
	for i, p := range cube.Proj {
		if !finite(p.X) || !finite(p.Y) {
			t.Fatalf("vertex %d projected to non-finite %v", i, p)
		}
		if p.X < 0 || p.Y < 0 || p.X >= testW || p.Y >= testH {
			t.Fatalf("vertex %d projected outside the viewport: %v", i, p)
		}
		if seen[p] {
			t.Fatalf("vertex %d duplicates projection %v", i, p)
		}
		seen[p] = true
		sumX += p.X
		sumY += p.Y
	}
	if cx, cy := sumX/8, sumY/8; !approx(cx, testW/2, 1) || !approx(cy, testH/2, 1) {
		t.Fatalf("projection centroid %v,%v is off-center", cx, cy)
	}

	r := newRecordTarget(testW, testH)
	DrawMeshWireframe(r, cube, White)
	if len(r.plots) == 0 {
		t.Fatalf("nothing plotted")
	}

	minX, minY, maxX, maxY := testW, testH, -1, -1
	for p := range r.counts {
		minX, maxX = min(minX, p.x), max(maxX, p.x)
		minY, maxY = min(minY, p.y), max(maxY, p.y)
	}
	midX := float64(minX+maxX) / 2
	midY := float64(minY+maxY) / 2
	if math.Abs(midX-testW/2) > 1.5 || math.Abs(midY-testH/2) > 1.5 {
		t.Fatalf("wireframe bounds x[%d,%d] y[%d,%d] not symmetric about the center", minX, maxX, minY, maxY)
	}
	if w, h := maxX-minX, maxY-minY; AbsInt(w-h) > 2 {
		t.Fatalf("front face is not square on screen: %dx%d", w, h)
	}
}

func TestFrameContextMatchesFreeFunctions(t *testing.T) {
	a := NewCuboid(1.2)
	a.Position = V3(1.3, 1.85, 0)
	a.Rotation = V3(0.4, -1.1, 2.2)
	b := NewCuboid(1.2)
	b.Position = a.Position
	b.Rotation = a.Rotation

	fc := NewFrameContext(testCamera())
	fc.Prepare(testW, testH)
	fc.ProjectMesh(a)

	view, proj := PrepareFrame(testCamera(), testW, testH, ProjectionScale(DefaultFOV), DefaultNear, DefaultFar)
	if view != fc.View || proj != fc.Projection {
		t.Fatalf("PrepareFrame disagrees with FrameContext.Prepare")
	}
	ProjectMesh(b, view, proj, testW, testH)
	for i := range a.Proj {
		if a.Proj[i] != b.Proj[i] {
			t.Fatalf("vertex %d: %v vs %v", i, a.Proj[i], b.Proj[i])
		}
	}
	if w, h := fc.Size(); w != testW || h != testH {
		t.Fatalf("Size() = %d,%d", w, h)
	}
}

func TestLegacyProjection(t *testing.T) {
	fc := NewFrameContext(testCamera())
	fc.LegacyProjection = true
	fc.Prepare(testW, testH)
	aspect := Scalar(testW) / Scalar(testH)
	if got := fc.Projection[0]; got != LegacyProjectionScale/aspect {
		t.Fatalf("m11 = %v, want %v", got, LegacyProjectionScale/aspect)
	}
	if got := fc.Projection[5]; got != LegacyProjectionScale {
		t.Fatalf("m22 = %v, want %v", got, LegacyProjectionScale)
	}

	fc.LegacyProjection = false
	fc.FOV = 0
	fc.Prepare(testW, testH)
	if got := fc.Projection[5]; got != ProjectionScale(DefaultFOV) {
		t.Fatalf("zero FOV not defaulted: m22 = %v", got)
	}
}

func TestProjectMeshNormalizesRotation(t *testing.T) {
	drifted := NewCuboid(2)
	drifted.Rotation = V3(10*Pi+0.1, 0, 0)
	clean := NewCuboid(2)
	clean.Rotation = V3(0.1, 0, 0)

	fc := NewFrameContext(testCamera())
	fc.Prepare(testW, testH)
	fc.ProjectMesh(drifted)
	fc.ProjectMesh(clean)

	if !approx(drifted.Rotation.X, 0.1, 1e-4) {
		t.Fatalf("rotation not normalized: %v", drifted.Rotation.X)
	}
	for i := range clean.Proj {
		d, c := drifted.Proj[i], clean.Proj[i]
		if !approx(d.X, c.X, 0.01) || !approx(d.Y, c.Y, 0.01) {
			t.Fatalf("vertex %d: %v vs %v", i, d, c)
		}
	}
}

func TestProjectMeshOverwritesCache(t *testing.T) {
	m := NewCuboid(2)
	fc := NewFrameContext(testCamera())
	fc.Prepare(testW, testH)
	fc.ProjectMesh(m)
	first := append([]Vec2(nil), m.Proj...)

	m.Position = V3(2, 0, 0)
	fc.ProjectMesh(m)
	for i := range first {
		if m.Proj[i] == first[i] {
			t.Fatalf("vertex %d projection not refreshed", i)
		}
	}
}

func TestRender(t *testing.T) {
	a := NewCuboid(2)
	a.Position = V3(0, -1, 0)
	b := NewCuboid(1.2)
	b.Position = V3(1.3, 1.85, 0)

	r := newRecordTarget(testW, testH)
	fc := NewFrameContext(testCamera())
	fc.Render(r, White, a, nil, b)
	if len(r.plots) == 0 {
		t.Fatalf("nothing plotted")
	}

	only := newRecordTarget(testW, testH)
	fc.Render(only, White, a)
	if len(only.plots) >= len(r.plots) {
		t.Fatalf("second mesh not drawn: %d vs %d", len(only.plots), len(r.plots))
	}

	empty := newRecordTarget(0, 0)
	fc.Render(empty, White, a)
	if len(empty.plots) != 0 {
		t.Fatalf("zero-size target drawn into")
	}
}
