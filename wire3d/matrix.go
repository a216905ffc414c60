package wire3d

// Mat4 is a row-major 4x4 matrix: m[row*4+col].
//
// Vectors are rows multiplied on the left (v' = v · M), so translations live
// in the fourth row.
type Mat4 [16]Scalar

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4Mul returns a · b.
func Mat4Mul(a, b Mat4) Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[row*4+col] =
				a[row*4+0]*b[0*4+col] +
					a[row*4+1]*b[1*4+col] +
					a[row*4+2]*b[2*4+col] +
					a[row*4+3]*b[3*4+col]
		}
	}
	return out
}

func Mat4Translation(x, y, z Scalar) Mat4 {
	m := Mat4Identity()
	m[12] = x
	m[13] = y
	m[14] = z
	return m
}

// Mat4LookAtLH builds a left-handed view matrix.
//
// Undefined when target-eye is parallel to up or eye == target.
func Mat4LookAtLH(eye, target, up Vec3) Mat4 {
	z := Normalize(Sub(target, eye))
	x := Normalize(Cross(up, z))
	y := Normalize(Cross(z, x))

	return Mat4{
		x.X, y.X, z.X, 0,
		x.Y, y.Y, z.Y, 0,
		x.Z, y.Z, z.Z, 0,
		-Dot(x, eye), -Dot(y, eye), -Dot(z, eye), 1,
	}
}

// LegacyProjectionScale is the fixed focal scale of earlier three_dee
// releases, applied regardless of the requested field of view.
const LegacyProjectionScale Scalar = 2.56

// ProjectionScale returns cot(fov/2) computed with the fast trig.
//
// fov must lie in (0, 2Pi) so that fov/2 stays inside the SinFast range.
func ProjectionScale(fov Scalar) Scalar {
	half := fov * 0.5
	return CosFast(half) / SinFast(half)
}

// Mat4PerspectiveLH builds a left-handed perspective projection from a field
// of view in radians.
func Mat4PerspectiveLH(fov, aspect, zNear, zFar Scalar) Mat4 {
	return Mat4PerspectiveScaleLH(ProjectionScale(fov), aspect, zNear, zFar)
}

// Mat4PerspectiveScaleLH builds a left-handed perspective projection from an
// explicit focal scale (cot(fov/2)).
func Mat4PerspectiveScaleLH(scale, aspect, zNear, zFar Scalar) Mat4 {
	if aspect == 0 {
		aspect = 1
	}
	return Mat4{
		scale / aspect, 0, 0, 0,
		0, scale, 0, 0,
		0, 0, -zFar / (zNear - zFar), 1,
		0, 0, (zNear * zFar) / (zNear - zFar), 0,
	}
}

// Mat4RotationYawPitchRoll builds a rotation matrix through a unit quaternion.
//
// Half angles are fed to SinFast/CosFast, so each angle must lie in
// [-2Pi, 2Pi]; normalized mesh rotations always do.
func Mat4RotationYawPitchRoll(yaw, pitch, roll Scalar) Mat4 {
	halfRoll := roll * 0.5
	halfPitch := pitch * 0.5
	halfYaw := yaw * 0.5

	sinRoll, cosRoll := SinFast(halfRoll), CosFast(halfRoll)
	sinPitch, cosPitch := SinFast(halfPitch), CosFast(halfPitch)
	sinYaw, cosYaw := SinFast(halfYaw), CosFast(halfYaw)

	x := cosYaw*sinPitch*cosRoll + sinYaw*cosPitch*sinRoll
	y := sinYaw*cosPitch*cosRoll - cosYaw*sinPitch*sinRoll
	z := cosYaw*cosPitch*sinRoll - sinYaw*sinPitch*cosRoll
	w := cosYaw*cosPitch*cosRoll + sinYaw*sinPitch*sinRoll

	xx, yy, zz := x*x, y*y, z*z
	xy, zw, zx := x*y, z*w, z*x
	yw, yz, xw := y*w, y*z, x*w

	return Mat4{
		1 - 2*(yy+zz), 2 * (xy + zw), 2 * (zx - yw), 0,
		2 * (xy - zw), 1 - 2*(zz+xx), 2 * (yz + xw), 0,
		2 * (zx + yw), 2 * (yz - xw), 1 - 2*(yy+xx), 0,
		0, 0, 0, 1,
	}
}

// TransformCoordinates applies m to the point (v, 1) and divides x and y by
// the homogeneous w. There is no guard for w == 0.
func TransformCoordinates(v Vec3, m Mat4) Vec2 {
	x := v.X*m[0] + v.Y*m[4] + v.Z*m[8] + m[12]
	y := v.X*m[1] + v.Y*m[5] + v.Z*m[9] + m[13]
	w := v.X*m[3] + v.Y*m[7] + v.Z*m[11] + m[15]
	return Vec2{X: x / w, Y: y / w}
}
