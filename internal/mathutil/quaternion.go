package mathutil

import "math"

// Quat represents a quaternion (x, y, z, w). Rotations are kept near unit
// length; callers that accumulate products should Normalize occasionally.
type Quat [4]float64

// QuatIdentity returns the rotation that leaves every vector unchanged.
func QuatIdentity() Quat {
	return Quat{0, 0, 0, 1}
}

func (q *Quat) SetIdentity() { *q = QuatIdentity() }

func (q Quat) Len() float64 { return vlen(q) }

// Normalize scales q to unit length. A zero quaternion, or one with
// non-finite components, is left as is.
func (q *Quat) Normalize() {
	if n, err := vnormalized(*q); err == nil {
		*q = n
	}
}

// Negate flips every component. q and -q describe the same rotation.
func (q *Quat) Negate() {
	for i := range q {
		q[i] = -q[i]
	}
}

// Mul returns the Hamilton product q × r: r is applied first, then q.
func (q Quat) Mul(r Quat) Quat {
	return Quat{
		q[0]*r[3] + q[3]*r[0] + q[1]*r[2] - q[2]*r[1],
		q[1]*r[3] + q[3]*r[1] + q[2]*r[0] - q[0]*r[2],
		q[2]*r[3] + q[3]*r[2] + q[0]*r[1] - q[1]*r[0],
		q[3]*r[3] - q[0]*r[0] - q[1]*r[1] - q[2]*r[2],
	}
}

// EulerToQuat converts Euler XYZ (radians) to a quaternion.
func EulerToQuat(rx, ry, rz float64) Quat {
	cx, sx := math.Cos(rx*0.5), math.Sin(rx*0.5)
	cy, sy := math.Cos(ry*0.5), math.Sin(ry*0.5)
	cz, sz := math.Cos(rz*0.5), math.Sin(rz*0.5)

	return Quat{
		sx*cy*cz - cx*sy*sz, // x
		cx*sy*cz + sx*cy*sz, // y
		cx*cy*sz - sx*sy*cz, // z
		cx*cy*cz + sx*sy*sz, // w
	}
}

// Mat3 converts the quaternion to a 3×3 rotation matrix.
func (q Quat) Mat3() Mat3 {
	x, y, z, w := q[0], q[1], q[2], q[3]
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	xw, yw, zw := x*w, y*w, z*w

	return Mat3{
		1 - 2*(yy+zz), 2 * (xy - zw), 2 * (xz + yw),
		2 * (xy + zw), 1 - 2*(xx+zz), 2 * (yz - xw),
		2 * (xz - yw), 2 * (yz + xw), 1 - 2*(xx+yy),
	}
}

// Mat4 converts the quaternion to a pure rotation: no translation, and the
// last row and column are those of the identity.
func (q Quat) Mat4() Mat4 {
	return Mat4FromMat3Translation(q.Mat3(), Vec3{})
}

// SetMat4 sets q from the rotation held in the upper-left 3×3 block of m.
//
// When the trace is non-negative the direct formula is used. Otherwise the
// branch for the largest diagonal element is taken (m00 wins ties, then m11),
// which keeps the square root argument positive near 180° rotations.
func (q *Quat) SetMat4(m Mat4) {
	m00, m01, m02 := m[0], m[1], m[2]
	m10, m11, m12 := m[4], m[5], m[6]
	m20, m21, m22 := m[8], m[9], m[10]

	tr := m00 + m11 + m22
	if tr >= 0 {
		s := math.Sqrt(tr + 1)
		q[3] = s * 0.5
		s = 0.5 / s
		q[0] = (m21 - m12) * s
		q[1] = (m02 - m20) * s
		q[2] = (m10 - m01) * s
		return
	}

	big := math.Max(math.Max(m00, m11), m22)
	switch big {
	case m00:
		s := math.Sqrt(m00 - (m11 + m22) + 1)
		q[0] = s * 0.5
		s = 0.5 / s
		q[1] = (m01 + m10) * s
		q[2] = (m20 + m02) * s
		q[3] = (m21 - m12) * s
	case m11:
		s := math.Sqrt(m11 - (m22 + m00) + 1)
		q[1] = s * 0.5
		s = 0.5 / s
		q[2] = (m12 + m21) * s
		q[0] = (m01 + m10) * s
		q[3] = (m02 - m20) * s
	default:
		s := math.Sqrt(m22 - (m00 + m11) + 1)
		q[2] = s * 0.5
		s = 0.5 / s
		q[0] = (m20 + m02) * s
		q[1] = (m12 + m21) * s
		q[3] = (m10 - m01) * s
	}
}

// QuatFromMat4 returns the quaternion for the rotation block of m.
func QuatFromMat4(m Mat4) Quat {
	var q Quat
	q.SetMat4(m)
	return q
}

// SetAxisAngle sets q to a rotation of angle radians about axis. The
// rotation is built as a matrix and converted, then normalized. A zero axis
// leaves q unchanged and returns ErrDivideByZero.
func (q *Quat) SetAxisAngle(axis Vec3, angle float64) error {
	r, err := RotAxis(axis, angle)
	if err != nil {
		return err
	}
	q.SetMat4(Mat4FromMat3Translation(r, Vec3{}))
	q.Normalize()
	return nil
}

// Slerp blends a towards b by t. If the two lie in opposite hemispheres b is
// negated so the blend takes the short way round. The result is a linear
// blend renormalized to unit length, not a constant-velocity great-circle
// interpolation.
func Slerp(a, b Quat, t float64) Quat {
	dot := a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
	if dot < 0 {
		b.Negate()
	}
	it := 1 - t
	r := Quat{
		it*a[0] + t*b[0],
		it*a[1] + t*b[1],
		it*a[2] + t*b[2],
		it*a[3] + t*b[3],
	}
	r.Normalize()
	return r
}

// LookRotation sets q to the rotation whose basis columns are (right, up,
// forward): it maps +Z onto forward and +Y onto up. right is up × forward,
// and up is rebuilt as forward × right so the basis is orthonormal even when
// the inputs are not perpendicular. Note the cross product order: taking
// right as forward × up would give a reflection, not a rotation.
func (q *Quat) LookRotation(forward, up Vec3) error {
	f, err := forward.Normalized()
	if err != nil {
		return err
	}
	if _, err := up.Normalized(); err != nil {
		return err
	}
	r, err := up.Cross(f).Normalized()
	if err != nil {
		return ErrDegenerate
	}
	u := f.Cross(r)

	q.SetMat4(Mat4FromMat3Translation(Mat3{
		r[0], u[0], f[0],
		r[1], u[1], f[1],
		r[2], u[2], f[2],
	}, Vec3{}))
	q.Normalize()
	return nil
}

// Rotate3 rotates v through the matrix form of q.
func (q Quat) Rotate3(v Vec3) Vec3 {
	return q.Mat4().MulDir(v)
}

// Rotate4 transforms v by the matrix form of q.
func (q Quat) Rotate4(v Vec4) Vec4 {
	return q.Mat4().MulVec(v)
}
