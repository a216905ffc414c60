package wire3d

import "math"

// Scalar is the numeric type used by wire3d math operations.
type Scalar = float32

const (
	Pi     Scalar = 3.14159265
	TwoPi  Scalar = 6.28318531
	HalfPi Scalar = 1.57079632
)

// SinFast approximates sin(x) with a corrected parabola.
//
// The result is only meaningful for x in [-Pi, Pi]. Inputs outside that range
// are shifted by a single 2Pi; angles that drifted further must be normalized
// by the caller first (see Mesh.NormalizeRotation).
func SinFast(x Scalar) Scalar {
	if x < -Pi {
		x += TwoPi
	}
	if x > Pi {
		x -= TwoPi
	}

	var s Scalar
	if x < 0 {
		s = 1.2732395*x + 0.40528473*x*x
	} else {
		s = 1.2732395*x - 0.40528473*x*x
	}
	if s < 0 {
		return 0.225*(s*-s-s) + s
	}
	return 0.225*(s*s-s) + s
}

// CosFast approximates cos(x) as SinFast(x + Pi/2). Same range rules apply.
func CosFast(x Scalar) Scalar {
	return SinFast(x + HalfPi)
}

const sqrtMagic = 0x5f3759df

// SqrtFast approximates sqrt(x) for x > 0.
//
// It computes the fast inverse square root (bit-level guess plus one Newton
// step) and multiplies by x. The result for x <= 0 is unspecified.
func SqrtFast(x Scalar) Scalar {
	i := math.Float32bits(x)
	y := math.Float32frombits(sqrtMagic - (i >> 1))
	return x * y * (1.5 - 0.5*x*y*y)
}

func AbsInt(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

func AbsFloat(v Scalar) Scalar {
	if v < 0 {
		return -v
	}
	return v
}
