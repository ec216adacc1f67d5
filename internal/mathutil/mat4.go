package mathutil

// Mat4 is a 4×4 matrix stored row-major. Points are column vectors, so the
// translation lives in the last column (indices 3, 7, 11).
type Mat4 [16]float64

func Mat4Identity() Mat4 {
	return identity[Mat4]()
}

func (m Mat4) Add(n Mat4) Mat4 { return madd(m, n) }
func (m Mat4) Sub(n Mat4) Mat4 { return msub(m, n) }

// Mul returns m × n. Applied to a point, n acts first and m second.
func (m Mat4) Mul(n Mat4) Mat4 { return mmul(m, n) }

// MulVec returns M × v for a homogeneous vector.
func (m Mat4) MulVec(v Vec4) Vec4 { return mulvec(m, v) }

// MulPoint transforms a 3D point (w=1) by the 4×4 matrix.
func (m Mat4) MulPoint(v Vec3) Vec3 {
	return m.MulVec(v.Vec4(1)).Vec3()
}

// MulDir transforms a direction (w=0); translation does not apply.
func (m Mat4) MulDir(v Vec3) Vec3 {
	return m.MulVec(v.Vec4(0)).Vec3()
}

// minor returns the determinant of the 3×3 matrix left after deleting
// row r and column c.
func (m Mat4) minor(r, c int) float64 {
	var s Mat3
	k := 0
	for i := 0; i < 4; i++ {
		if i == r {
			continue
		}
		for j := 0; j < 4; j++ {
			if j == c {
				continue
			}
			s[k] = m[i*4+j]
			k++
		}
	}
	return s.Det()
}

func cofactorSign(r, c int) float64 {
	if (r+c)%2 == 0 {
		return 1
	}
	return -1
}

// Det expands along the first row using the 3×3 minors.
func (m Mat4) Det() float64 {
	var d float64
	for c := 0; c < 4; c++ {
		if m[c] == 0 {
			continue
		}
		d += cofactorSign(0, c) * m[c] * m.minor(0, c)
	}
	return d
}

// Inverse returns the inverse of m computed from its adjugate. A singular
// matrix is returned unchanged with ok == false.
func (m Mat4) Inverse() (Mat4, bool) {
	d := m.Det()
	if d == 0 {
		return m, false
	}
	invD := 1.0 / d
	var inv Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			inv[c*4+r] = cofactorSign(r, c) * m.minor(r, c) * invD
		}
	}
	return inv, true
}

func (m *Mat4) SetIdentity() { *m = Mat4Identity() }
func (m *Mat4) SetZero()     { *m = Mat4{} }
func (m *Mat4) Negate()      { *m = mneg(*m) }
func (m *Mat4) Transpose()   { *m = mtranspose(*m) }

// Invert replaces m with its inverse. When det(m) == 0 the matrix is left
// unchanged and Invert reports false.
func (m *Mat4) Invert() bool {
	inv, ok := m.Inverse()
	*m = inv
	return ok
}

// Scale returns m × S where S scales x, y and z by v. Each column of the
// linear block is multiplied by the matching axis factor, so the scale is
// applied to points before the transform already held in m.
func (m Mat4) Scale(v Vec3) Mat4 {
	return m.Mul(Mat4FromMat3Translation(Mat3Diag(v[0], v[1], v[2]), Vec3{}))
}

// Rotate returns m × R where R rotates by angle radians about axis
// (right-hand rule). The axis is normalized first; a zero axis leaves m
// unchanged. The translation column of m is not affected.
func (m Mat4) Rotate(axis Vec3, angle float64) Mat4 {
	r, err := RotAxis(axis, angle)
	if err != nil {
		return m
	}
	return m.Mul(Mat4FromMat3Translation(r, Vec3{}))
}

// Translate returns m × T where T moves points by v. The offset is expressed
// in the basis already established by m: the translation column becomes
// col3 + L·v, with L the linear block of m.
func (m Mat4) Translate(v Vec3) Mat4 {
	t := Mat4Identity()
	t[3], t[7], t[11] = v[0], v[1], v[2]
	return m.Mul(t)
}

// Linear returns the upper-left 3×3 block.
func (m Mat4) Linear() Mat3 {
	return Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// Mat4FromMat3Translation builds a 4×4 affine matrix from a 3×3 rotation and translation.
func Mat4FromMat3Translation(r Mat3, t Vec3) Mat4 {
	return Mat4{
		r[0], r[1], r[2], t[0],
		r[3], r[4], r[5], t[1],
		r[6], r[7], r[8], t[2],
		0, 0, 0, 1,
	}
}

// IsIdentity checks if the matrix is approximately identity.
func (m Mat4) IsIdentity() bool {
	id := Mat4Identity()
	for i := 0; i < 16; i++ {
		d := m[i] - id[i]
		if d > 1e-8 || d < -1e-8 {
			return false
		}
	}
	return true
}
