package mathutil

// Mat2 is a 2×2 matrix stored row-major: [r0c0, r0c1, r1c0, r1c1].
type Mat2 [4]float64

func Mat2Identity() Mat2 {
	return identity[Mat2]()
}

func (m Mat2) Add(n Mat2) Mat2 { return madd(m, n) }
func (m Mat2) Sub(n Mat2) Mat2 { return msub(m, n) }

// Mul returns m × n.
func (m Mat2) Mul(n Mat2) Mat2 { return mmul(m, n) }

// MulVec returns M × v.
func (m Mat2) MulVec(v Vec2) Vec2 { return mulvec(m, v) }

func (m Mat2) Det() float64 {
	return m[0]*m[3] - m[1]*m[2]
}

// Inverse returns the inverse of m. A singular matrix is returned unchanged
// with ok == false.
func (m Mat2) Inverse() (Mat2, bool) {
	d := m.Det()
	if d == 0 {
		return m, false
	}
	invD := 1.0 / d
	return Mat2{
		m[3] * invD, -m[1] * invD,
		-m[2] * invD, m[0] * invD,
	}, true
}

func (m *Mat2) SetIdentity() { *m = Mat2Identity() }
func (m *Mat2) SetZero()     { *m = Mat2{} }
func (m *Mat2) Negate()      { *m = mneg(*m) }
func (m *Mat2) Transpose()   { *m = mtranspose(*m) }

// Invert replaces m with its inverse. When det(m) == 0 the matrix is left
// unchanged and Invert reports false.
func (m *Mat2) Invert() bool {
	inv, ok := m.Inverse()
	*m = inv
	return ok
}
