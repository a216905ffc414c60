package wire3d

// Vec3 is a 3D vector. It also carries Euler angle triples (Mesh.Rotation).
type Vec3 struct {
	X, Y, Z Scalar
}

// Vec2 is a 2D vector in normalized device or pixel space.
type Vec2 struct {
	X, Y Scalar
}

var (
	Zero3 = Vec3{}
	Up3   = Vec3{X: 0, Y: 1, Z: 0}
)

func V3(x, y, z Scalar) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3   { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3   { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(s Scalar) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Sub returns a - b.
func Sub(a, b Vec3) Vec3 { return a.Sub(b) }

func Dot(a, b Vec3) Scalar { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func Cross(a, b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the Euclidean length using SqrtFast.
func Len(v Vec3) Scalar {
	return SqrtFast(Dot(v, v))
}

// Normalize scales v by 1/Len(v).
//
// There is no zero guard: a zero vector produces non-finite components.
func Normalize(v Vec3) Vec3 {
	return v.Mul(1 / Len(v))
}
