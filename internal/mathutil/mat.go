package mathutil

// matrix is the set of square matrix layouts (2×2, 3×3, 4×4), all stored
// row-major: element (r, c) of an n×n matrix lives at index r*n+c.
type matrix interface {
	~[4]float64 | ~[9]float64 | ~[16]float64
}

func order[M matrix](m M) int {
	switch len(m) {
	case 4:
		return 2
	case 9:
		return 3
	}
	return 4
}

func identity[M matrix]() (m M) {
	n := order(m)
	for i := 0; i < n; i++ {
		m[i*n+i] = 1
	}
	return
}

func madd[M matrix](a, b M) (m M) {
	for i := 0; i < len(m); i++ {
		m[i] = a[i] + b[i]
	}
	return
}

func msub[M matrix](a, b M) (m M) {
	for i := 0; i < len(m); i++ {
		m[i] = a[i] - b[i]
	}
	return
}

// mmul returns a × b. Applied to a column vector, b acts first.
func mmul[M matrix](a, b M) (m M) {
	n := order(m)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			var s float64
			for k := 0; k < n; k++ {
				s += a[r*n+k] * b[k*n+c]
			}
			m[r*n+c] = s
		}
	}
	return
}

// mulvec returns m × v. The caller pairs each matrix type with the vector
// of matching dimension.
func mulvec[M matrix, V vector](m M, v V) (u V) {
	n := len(u)
	for r := 0; r < n; r++ {
		var s float64
		for c := 0; c < n; c++ {
			s += m[r*n+c] * v[c]
		}
		u[r] = s
	}
	return
}

func mneg[M matrix](a M) (m M) {
	for i := 0; i < len(m); i++ {
		m[i] = -a[i]
	}
	return
}

func mtranspose[M matrix](a M) (m M) {
	n := order(m)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			m[r*n+c] = a[c*n+r]
		}
	}
	return
}

// Matrix is the operation set shared by Mat2, Mat3 and Mat4; V is the
// vector type of matching dimension.
type Matrix[M, V any] interface {
	Add(M) M
	Sub(M) M
	Mul(M) M
	MulVec(V) V
	Det() float64
	Inverse() (M, bool)
	SetIdentity()
	SetZero()
	Negate()
	Transpose()
	Invert() bool
}

var (
	_ Matrix[Mat2, Vec2] = (*Mat2)(nil)
	_ Matrix[Mat3, Vec3] = (*Mat3)(nil)
	_ Matrix[Mat4, Vec4] = (*Mat4)(nil)
)
