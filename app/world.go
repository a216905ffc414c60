package app

import "threedee/wire3d"

// Body is a mesh plus the rotation it gains on every update step.
type Body struct {
	Mesh *wire3d.Mesh
	Spin wire3d.Vec3
}

// World is everything the update and draw steps operate on.
type World struct {
	Camera wire3d.Camera
	Bodies []Body
}

// DefaultWorld returns the three-cube demo: one large cube below two small
// ones, viewed from 15 units down +Z.
func DefaultWorld() *World {
	top := wire3d.NewCuboid(2.0)
	top.Position = wire3d.V3(0, -1, 0)

	left := wire3d.NewCuboid(1.2)
	left.Position = wire3d.V3(1.3, 1.85, 0)

	right := wire3d.NewCuboid(1.2)
	right.Position = wire3d.V3(-1.3, 1.85, 0)

	return &World{
		Camera: wire3d.Camera{Position: wire3d.V3(0, 0, 15), Target: wire3d.Zero3},
		Bodies: []Body{
			{Mesh: top, Spin: wire3d.V3(0.05, 0.05, 0)},
			{Mesh: left, Spin: wire3d.V3(-0.06, -0.07, 0)},
			{Mesh: right, Spin: wire3d.V3(0.02, 0, -0.04)},
		},
	}
}

// Step advances every body by its spin.
func (w *World) Step() {
	if w == nil {
		return
	}
	for _, b := range w.Bodies {
		if b.Mesh == nil {
			continue
		}
		b.Mesh.Rotate(b.Spin)
	}
}

// Meshes returns the body meshes in draw order.
func (w *World) Meshes() []*wire3d.Mesh {
	if w == nil {
		return nil
	}
	out := make([]*wire3d.Mesh, 0, len(w.Bodies))
	for _, b := range w.Bodies {
		if b.Mesh != nil {
			out = append(out, b.Mesh)
		}
	}
	return out
}
