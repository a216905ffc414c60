package wire3d

// MaxOrbitPitch keeps the orbit camera off the poles, where the view
// direction would be parallel to the fixed up vector.
const MaxOrbitPitch Scalar = 1.5

// OrbitController places a camera on a sphere around a target.
//
// It does not depend on any input system.
type OrbitController struct {
	Target Vec3
	Yaw    Scalar
	Pitch  Scalar
	Radius Scalar

	MinRadius Scalar
	MaxRadius Scalar
}

// Apply writes the orbit position and target into cam. Yaw 0 and pitch 0
// put the camera on the +Z axis.
func (c *OrbitController) Apply(cam *Camera) {
	if cam == nil {
		return
	}
	r := c.clampRadius(c.Radius)
	if r == 0 {
		r = 15
	}
	c.Yaw = wrapAngle(c.Yaw)
	c.Pitch = clampPitch(c.Pitch)

	cp := CosFast(c.Pitch)
	offset := V3(r*cp*SinFast(c.Yaw), r*SinFast(c.Pitch), r*cp*CosFast(c.Yaw))

	cam.Position = c.Target.Add(offset)
	cam.Target = c.Target
}

func (c *OrbitController) Rotate(deltaYaw, deltaPitch Scalar) {
	c.Yaw = wrapAngle(c.Yaw + deltaYaw)
	c.Pitch = clampPitch(c.Pitch + deltaPitch)
}

func (c *OrbitController) Zoom(delta Scalar) {
	c.Radius = c.clampRadius(c.Radius + delta)
}

func (c *OrbitController) clampRadius(r Scalar) Scalar {
	if c.MinRadius != 0 && r < c.MinRadius {
		r = c.MinRadius
	}
	if c.MaxRadius != 0 && r > c.MaxRadius {
		r = c.MaxRadius
	}
	return r
}

func clampPitch(p Scalar) Scalar {
	if p > MaxOrbitPitch {
		return MaxOrbitPitch
	}
	if p < -MaxOrbitPitch {
		return -MaxOrbitPitch
	}
	return p
}
