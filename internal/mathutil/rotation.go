package mathutil

import "math"

// RotX returns a 3×3 rotation matrix around the X axis. Angle in radians.
func RotX(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// RotY returns a 3×3 rotation matrix around the Y axis.
func RotY(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// RotZ returns a 3×3 rotation matrix around the Z axis.
func RotZ(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// RotAxis returns the Rodrigues rotation of angle radians about axis.
// The axis need not be unit length, but it must not be zero.
func RotAxis(axis Vec3, angle float64) (Mat3, error) {
	n, err := axis.Normalized()
	if err != nil {
		return Mat3Identity(), err
	}
	x, y, z := n[0], n[1], n[2]
	c, s := math.Cos(angle), math.Sin(angle)
	t := 1 - c

	xy, xz, yz := x*y*t, x*z*t, y*z*t
	xs, ys, zs := x*s, y*s, z*s

	return Mat3{
		x*x*t + c, xy - zs, xz + ys,
		xy + zs, y*y*t + c, yz - xs,
		xz - ys, yz + xs, z*z*t + c,
	}, nil
}
