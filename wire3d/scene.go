package wire3d

import (
	"errors"
	"fmt"
	"math"
)

// MaxVertices bounds the vertex count so that every index fits a Triangle field.
const MaxVertices = 1<<16 - 1

var (
	ErrNoVertices      = errors.New("wire3d: mesh has no vertices")
	ErrTooManyVertices = errors.New("wire3d: too many vertices")
	ErrFaceIndex       = errors.New("wire3d: face index out of range")
)

// Camera describes the viewing transform. Up is fixed to +Y.
type Camera struct {
	Position Vec3
	Target   Vec3
}

// Triangle holds three indices into a mesh vertex list.
type Triangle struct {
	A, B, C uint16
}

// Mesh is a triangle mesh drawn as a wireframe.
//
// Vertices, Faces and Proj are sized once at construction. Proj caches the
// pixel position of each vertex and is rewritten by every ProjectMesh call.
type Mesh struct {
	Position Vec3
	Rotation Vec3 // yaw (X), pitch (Y), roll (Z) in radians

	Vertices []Vec3
	Faces    []Triangle
	Proj     []Vec2
}

// NewMesh copies the given buffers into a new mesh and checks that every
// face references an existing vertex.
func NewMesh(vertices []Vec3, faces []Triangle) (*Mesh, error) {
	if len(vertices) == 0 {
		return nil, ErrNoVertices
	}
	if len(vertices) > MaxVertices {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyVertices, len(vertices), MaxVertices)
	}
	n := uint16(len(vertices))
	for i, f := range faces {
		if f.A >= n || f.B >= n || f.C >= n {
			return nil, fmt.Errorf("%w: face %d (%d,%d,%d) with %d vertices", ErrFaceIndex, i, f.A, f.B, f.C, n)
		}
	}
	m := &Mesh{
		Vertices: make([]Vec3, len(vertices)),
		Faces:    make([]Triangle, len(faces)),
		Proj:     make([]Vec2, len(vertices)),
	}
	copy(m.Vertices, vertices)
	copy(m.Faces, faces)
	return m, nil
}

// cuboidFaces splits each of the six sides into two triangles over the
// corner layout used by NewCuboid.
var cuboidFaces = [12]Triangle{
	{0, 1, 2}, {1, 2, 3}, // front (+z)
	{1, 3, 6}, {1, 5, 6}, // right (+x)
	{0, 1, 4}, {1, 4, 5}, // top (+y)
	{2, 3, 7}, {3, 6, 7}, // bottom (-y)
	{0, 2, 7}, {0, 4, 7}, // left (-x)
	{4, 5, 6}, {4, 6, 7}, // back (-z)
}

// NewCuboid returns an axis-aligned cube centered at the origin with 8
// vertices and 12 triangles.
func NewCuboid(side Scalar) *Mesh {
	h := side * 0.5
	m := &Mesh{
		Vertices: []Vec3{
			{-h, h, h},
			{h, h, h},
			{-h, -h, h},
			{h, -h, h},
			{-h, h, -h},
			{h, h, -h},
			{h, -h, -h},
			{-h, -h, -h},
		},
		Faces: make([]Triangle, len(cuboidFaces)),
		Proj:  make([]Vec2, 8),
	}
	copy(m.Faces, cuboidFaces[:])
	return m
}

// NormalizeRotation wraps every rotation angle into [-Pi, Pi].
func (m *Mesh) NormalizeRotation() {
	m.Rotation.X = wrapAngle(m.Rotation.X)
	m.Rotation.Y = wrapAngle(m.Rotation.Y)
	m.Rotation.Z = wrapAngle(m.Rotation.Z)
}

// Rotate adds a per-axis increment to the mesh rotation.
func (m *Mesh) Rotate(delta Vec3) {
	m.Rotation = m.Rotation.Add(delta)
}

// maxWrapSteps bounds the ±2Pi loop; angles further out are reduced with
// math.Remainder first.
const maxWrapSteps = 64

func wrapAngle(a Scalar) Scalar {
	if math.IsNaN(float64(a)) {
		return 0
	}
	if AbsFloat(a) > maxWrapSteps*TwoPi {
		r := math.Remainder(float64(a), 2*math.Pi)
		if math.IsNaN(r) {
			return 0
		}
		a = Scalar(r)
	}
	for a < -Pi {
		a += TwoPi
	}
	for a > Pi {
		a -= TwoPi
	}
	return a
}
