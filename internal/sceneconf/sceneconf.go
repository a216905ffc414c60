// Package sceneconf loads scene descriptions from YAML files.
//
// A scene names a camera and a list of meshes. Each mesh is either a cube
// (cuboid: side length) or an explicit vertex and face list:
//
//	camera: {position: [0, 0, 15], target: [0, 0, 0]}
//	meshes:
//	  - cuboid: 2.0
//	    position: [0, -1, 0]
//	    spin: [0.05, 0.05, 0]
//	  - vertices: [[0, 0, 0], [1, 0, 0], [0, 1, 0]]
//	    faces: [[0, 1, 2]]
package sceneconf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"threedee/app"
	"threedee/wire3d"

	"gopkg.in/yaml.v3"
)

// MaxFileSize bounds scene files read by Load.
const MaxFileSize = 4 << 20

var (
	ErrTooLarge   = errors.New("sceneconf: file too large")
	ErrNoMeshes   = errors.New("sceneconf: no meshes")
	ErrMeshShape  = errors.New("sceneconf: mesh needs either a positive cuboid or vertices")
	ErrNotFinite  = errors.New("sceneconf: value is not finite")
	ErrBadCamera  = errors.New("sceneconf: camera position equals target")
	defaultCamera = wire3d.Camera{Position: wire3d.V3(0, 0, 15), Target: wire3d.Zero3}
)

// Vec is an [x, y, z] triple.
type Vec [3]float32

func (v Vec) vec3() wire3d.Vec3 { return wire3d.V3(v[0], v[1], v[2]) }

func (v Vec) finite() bool {
	for _, c := range v {
		if math.IsNaN(float64(c)) || math.IsInf(float64(c), 0) {
			return false
		}
	}
	return true
}

// File is the document layout of a scene file.
type File struct {
	Camera *CameraSpec `yaml:"camera,omitempty"`
	Meshes []MeshSpec  `yaml:"meshes"`
}

// CameraSpec places the camera. Omitted fields keep their defaults
// (position [0, 0, 15], target at the origin).
type CameraSpec struct {
	Position *Vec `yaml:"position,omitempty"`
	Target   *Vec `yaml:"target,omitempty"`
}

// MeshSpec describes one mesh of the scene.
type MeshSpec struct {
	Name string `yaml:"name,omitempty"`

	// Cuboid is the side length of a generated cube; zero means the mesh
	// is given by Vertices and Faces.
	Cuboid   float32  `yaml:"cuboid,omitempty"`
	Vertices []Vec    `yaml:"vertices,omitempty"`
	Faces    [][3]int `yaml:"faces,omitempty"`

	Position Vec `yaml:"position"`
	Rotation Vec `yaml:"rotation"`
	// Spin is added to Rotation on every update step.
	Spin Vec `yaml:"spin"`
}

func (m *MeshSpec) label(i int) string {
	if m.Name != "" {
		return fmt.Sprintf("mesh %d (%s)", i, m.Name)
	}
	return fmt.Sprintf("mesh %d", i)
}

// Parse decodes and validates a scene document. Unknown keys are errors.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoMeshes
		}
		return nil, fmt.Errorf("sceneconf: parse: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks the scene against the limits of the renderer.
func (f *File) Validate() error {
	if _, err := f.camera(); err != nil {
		return err
	}
	if len(f.Meshes) == 0 {
		return ErrNoMeshes
	}
	for i := range f.Meshes {
		if err := f.Meshes[i].validate(); err != nil {
			return fmt.Errorf("%s: %w", f.Meshes[i].label(i), err)
		}
	}
	return nil
}

func (f *File) camera() (wire3d.Camera, error) {
	cam := defaultCamera
	if f.Camera == nil {
		return cam, nil
	}
	if p := f.Camera.Position; p != nil {
		if !p.finite() {
			return cam, fmt.Errorf("camera position: %w", ErrNotFinite)
		}
		cam.Position = p.vec3()
	}
	if t := f.Camera.Target; t != nil {
		if !t.finite() {
			return cam, fmt.Errorf("camera target: %w", ErrNotFinite)
		}
		cam.Target = t.vec3()
	}
	if cam.Position == cam.Target {
		return cam, ErrBadCamera
	}
	return cam, nil
}

func (m *MeshSpec) validate() error {
	for _, f := range []struct {
		name string
		v    Vec
	}{{"position", m.Position}, {"rotation", m.Rotation}, {"spin", m.Spin}} {
		if !f.v.finite() {
			return fmt.Errorf("%s: %w", f.name, ErrNotFinite)
		}
	}

	switch {
	case m.Cuboid < 0 || math.IsNaN(float64(m.Cuboid)) || math.IsInf(float64(m.Cuboid), 0):
		return fmt.Errorf("cuboid %v: %w", m.Cuboid, ErrMeshShape)
	case m.Cuboid > 0 && (len(m.Vertices) > 0 || len(m.Faces) > 0):
		return fmt.Errorf("cuboid with explicit vertices or faces: %w", ErrMeshShape)
	case m.Cuboid > 0:
		return nil
	case len(m.Vertices) == 0:
		return fmt.Errorf("%w: %w", ErrMeshShape, wire3d.ErrNoVertices)
	case len(m.Vertices) > wire3d.MaxVertices:
		return fmt.Errorf("%w: %d > %d", wire3d.ErrTooManyVertices, len(m.Vertices), wire3d.MaxVertices)
	}

	for i, v := range m.Vertices {
		if !v.finite() {
			return fmt.Errorf("vertex %d: %w", i, ErrNotFinite)
		}
	}
	n := len(m.Vertices)
	for i, face := range m.Faces {
		for _, idx := range face {
			if idx < 0 || idx >= n {
				return fmt.Errorf("face %d: index %d with %d vertices: %w", i, idx, n, wire3d.ErrFaceIndex)
			}
		}
	}
	return nil
}

func (m *MeshSpec) mesh() (*wire3d.Mesh, error) {
	var mesh *wire3d.Mesh
	if m.Cuboid > 0 {
		mesh = wire3d.NewCuboid(m.Cuboid)
	} else {
		verts := make([]wire3d.Vec3, len(m.Vertices))
		for i, v := range m.Vertices {
			verts[i] = v.vec3()
		}
		faces := make([]wire3d.Triangle, len(m.Faces))
		for i, f := range m.Faces {
			faces[i] = wire3d.Triangle{A: uint16(f[0]), B: uint16(f[1]), C: uint16(f[2])}
		}
		var err error
		mesh, err = wire3d.NewMesh(verts, faces)
		if err != nil {
			return nil, err
		}
	}
	mesh.Position = m.Position.vec3()
	mesh.Rotation = m.Rotation.vec3()
	return mesh, nil
}

// World builds the renderable world described by f.
func (f *File) World() (*app.World, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	cam, err := f.camera()
	if err != nil {
		return nil, err
	}
	w := &app.World{Camera: cam, Bodies: make([]app.Body, 0, len(f.Meshes))}
	for i := range f.Meshes {
		mesh, err := f.Meshes[i].mesh()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.Meshes[i].label(i), err)
		}
		w.Bodies = append(w.Bodies, app.Body{Mesh: mesh, Spin: f.Meshes[i].Spin.vec3()})
	}
	return w, nil
}

// Load reads a scene file and builds its world.
func Load(path string) (*app.World, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("sceneconf: %w", err)
	}
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrTooLarge, path, info.Size())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sceneconf: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f.World()
}
