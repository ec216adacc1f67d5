package mathutil

// Mat3 is a 3×3 matrix stored row-major: [r0c0, r0c1, r0c2, r1c0, ...].
// Value type for zero heap allocation.
type Mat3 [9]float64

func Mat3Identity() Mat3 {
	return identity[Mat3]()
}

func Mat3Diag(x, y, z float64) Mat3 {
	return Mat3{x, 0, 0, 0, y, 0, 0, 0, z}
}

func (m Mat3) Add(n Mat3) Mat3 { return madd(m, n) }
func (m Mat3) Sub(n Mat3) Mat3 { return msub(m, n) }

// Mul returns m × n.
func (m Mat3) Mul(n Mat3) Mat3 { return mmul(m, n) }

// MulVec returns M × v.
func (m Mat3) MulVec(v Vec3) Vec3 { return mulvec(m, v) }

func (m Mat3) Det() float64 {
	return det3(m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

func det3(a, b, c, d, e, f, g, h, i float64) float64 {
	return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
}

// Inverse returns the inverse of m. A singular matrix is returned unchanged
// with ok == false.
func (m Mat3) Inverse() (Mat3, bool) {
	d := m.Det()
	if d == 0 {
		return m, false
	}
	invD := 1.0 / d
	return Mat3{
		(m[4]*m[8] - m[5]*m[7]) * invD,
		(m[2]*m[7] - m[1]*m[8]) * invD,
		(m[1]*m[5] - m[2]*m[4]) * invD,
		(m[5]*m[6] - m[3]*m[8]) * invD,
		(m[0]*m[8] - m[2]*m[6]) * invD,
		(m[2]*m[3] - m[0]*m[5]) * invD,
		(m[3]*m[7] - m[4]*m[6]) * invD,
		(m[1]*m[6] - m[0]*m[7]) * invD,
		(m[0]*m[4] - m[1]*m[3]) * invD,
	}, true
}

func (m *Mat3) SetIdentity() { *m = Mat3Identity() }
func (m *Mat3) SetZero()     { *m = Mat3{} }
func (m *Mat3) Negate()      { *m = mneg(*m) }
func (m *Mat3) Transpose()   { *m = mtranspose(*m) }

// Invert replaces m with its inverse. When det(m) == 0 the matrix is left
// unchanged and Invert reports false.
func (m *Mat3) Invert() bool {
	inv, ok := m.Inverse()
	*m = inv
	return ok
}
