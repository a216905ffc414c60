package wire3d

// Projection defaults shared by every frame.
const (
	DefaultFOV  Scalar = 0.78
	DefaultNear Scalar = 0.01
	DefaultFar  Scalar = 1.0
)

// FrameContext owns the camera and the working matrices used while drawing
// one frame. Create it once and reuse it; it is not safe for concurrent use.
type FrameContext struct {
	Camera Camera

	FOV  Scalar
	Near Scalar
	Far  Scalar

	// LegacyProjection ignores FOV and uses LegacyProjectionScale.
	LegacyProjection bool

	View       Mat4
	Projection Mat4

	width  int
	height int

	world     Mat4
	translate Mat4
	transform Mat4
}

// NewFrameContext returns a context with the default projection constants.
func NewFrameContext(cam Camera) *FrameContext {
	return &FrameContext{
		Camera:     cam,
		FOV:        DefaultFOV,
		Near:       DefaultNear,
		Far:        DefaultFar,
		View:       Mat4Identity(),
		Projection: Mat4Identity(),
	}
}

// Size returns the viewport passed to the last Prepare call.
func (fc *FrameContext) Size() (w, h int) { return fc.width, fc.height }

// Prepare derives the view and projection matrices for a viewport. Call it
// once per frame, before any ProjectMesh.
func (fc *FrameContext) Prepare(w, h int) {
	fc.width, fc.height = w, h
	fc.View, fc.Projection = PrepareFrame(fc.Camera, w, h, fc.projectionScale(), fc.Near, fc.Far)
}

func (fc *FrameContext) projectionScale() Scalar {
	if fc.LegacyProjection {
		return LegacyProjectionScale
	}
	fov := fc.FOV
	if fov <= 0 || fov >= TwoPi {
		fov = DefaultFOV
	}
	return ProjectionScale(fov)
}

// ProjectMesh fills m.Proj with the pixel position of every vertex using the
// matrices from the last Prepare call.
func (fc *FrameContext) ProjectMesh(m *Mesh) {
	if m == nil {
		return
	}
	fc.transform = fc.meshTransform(m)
	projectVertices(m, fc.transform, fc.width, fc.height)
}

func (fc *FrameContext) meshTransform(m *Mesh) Mat4 {
	m.NormalizeRotation()
	fc.world = Mat4RotationYawPitchRoll(m.Rotation.X, m.Rotation.Y, m.Rotation.Z)
	fc.translate = Mat4Translation(m.Position.X, m.Position.Y, m.Position.Z)
	return Mat4Mul(Mat4Mul(Mat4Mul(fc.world, fc.translate), fc.View), fc.Projection)
}

// Render runs one full pass: Prepare for the target size, then project and
// draw every mesh in order. The target is not cleared.
func (fc *FrameContext) Render(t Target, c Color, meshes ...*Mesh) {
	if t == nil {
		return
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	fc.Prepare(w, h)
	for _, m := range meshes {
		if m == nil {
			continue
		}
		fc.ProjectMesh(m)
		DrawMeshWireframe(t, m, c)
	}
}

// PrepareFrame builds the view matrix for cam (up = +Y) and a perspective
// projection with the given focal scale for a w×h viewport.
func PrepareFrame(cam Camera, w, h int, scale, zNear, zFar Scalar) (view, proj Mat4) {
	aspect := Scalar(1)
	if h != 0 {
		aspect = Scalar(w) / Scalar(h)
	}
	view = Mat4LookAtLH(cam.Position, cam.Target, Up3)
	proj = Mat4PerspectiveScaleLH(scale, aspect, zNear, zFar)
	return view, proj
}

// ProjectMesh composes world × translation × view × projection for m and
// writes the pixel position of every vertex into m.Proj. It normalizes the
// mesh rotation first.
func ProjectMesh(m *Mesh, view, proj Mat4, w, h int) {
	fc := FrameContext{View: view, Projection: proj, width: w, height: h}
	fc.ProjectMesh(m)
}

func projectVertices(m *Mesh, transform Mat4, w, h int) {
	if len(m.Proj) != len(m.Vertices) {
		m.Proj = make([]Vec2, len(m.Vertices))
	}
	fw, fh := Scalar(w), Scalar(h)
	for i, v := range m.Vertices {
		ndc := TransformCoordinates(v, transform)
		m.Proj[i] = ndcToPixel(ndc, fw, fh)
	}
}

// ndcToPixel maps NDC to pixels with the origin at the top-left and no Y flip.
func ndcToPixel(p Vec2, w, h Scalar) Vec2 {
	return Vec2{
		X: p.X*w + w*0.5,
		Y: p.Y*h + h*0.5,
	}
}
