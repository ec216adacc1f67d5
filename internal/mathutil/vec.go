// Package mathutil implements the linear algebra used by the rasterization
// pipeline: fixed-size vectors, square matrices and quaternions, all float64.
//
// Vectors and matrices are value types (fixed-size arrays) so arithmetic never
// allocates. The few operations that mutate in place take a pointer receiver.
package mathutil

import "math"

// vector is the set of fixed-size component arrays the generic helpers work on.
// Every arity shares the same code path; the concrete types only forward.
type vector interface {
	~[2]float64 | ~[3]float64 | ~[4]float64
}

func vadd[V vector](a, b V) (u V) {
	for i := 0; i < len(u); i++ {
		u[i] = a[i] + b[i]
	}
	return
}

func vsub[V vector](a, b V) (u V) {
	for i := 0; i < len(u); i++ {
		u[i] = a[i] - b[i]
	}
	return
}

func vmul[V vector](a, b V) (u V) {
	for i := 0; i < len(u); i++ {
		u[i] = a[i] * b[i]
	}
	return
}

func vscale[V vector](a V, s float64) (u V) {
	for i := 0; i < len(u); i++ {
		u[i] = a[i] * s
	}
	return
}

// vlerp returns a + (b-a)*t. t is not clamped, so values outside [0,1]
// extrapolate along the line.
func vlerp[V vector](a, b V, t float64) (u V) {
	for i := 0; i < len(u); i++ {
		u[i] = Interpolate(a[i], b[i], t)
	}
	return
}

func vdot[V vector](a, b V) (d float64) {
	for i := 0; i < len(a); i++ {
		d += a[i] * b[i]
	}
	return
}

// vmaxabs returns the largest component magnitude. A NaN component makes
// the result NaN.
func vmaxabs[V vector](a V) (m float64) {
	for i := 0; i < len(a); i++ {
		m = math.Max(m, math.Abs(a[i]))
	}
	return
}

// vlen scales the components by the largest magnitude before squaring, so
// the sum neither overflows for huge vectors nor underflows for tiny ones.
func vlen[V vector](a V) float64 {
	m := vmaxabs(a)
	if m == 0 || math.IsInf(m, 0) || math.IsNaN(m) {
		return m
	}
	var s float64
	for i := 0; i < len(a); i++ {
		x := a[i] / m
		s += x * x
	}
	return m * math.Sqrt(s)
}

func vdist[V vector](a, b V) float64 {
	return vlen(vsub(a, b))
}

// vangle returns the angle in radians between a and b. Both are normalized
// first and the cosine is clamped to [-1, 1] so rounding never pushes acos
// out of its domain.
func vangle[V vector](a, b V) (float64, error) {
	na, err := vnormalized(a)
	if err != nil {
		return 0, ErrDegenerate
	}
	nb, err := vnormalized(b)
	if err != nil {
		return 0, ErrDegenerate
	}
	return math.Acos(Clamp(vdot(na, nb), -1, 1)), nil
}

// vnormalized returns a scaled to unit length. A zero vector has no
// direction; it is returned unchanged together with ErrDivideByZero.
// Infinite or NaN components give ErrDegenerate.
func vnormalized[V vector](a V) (V, error) {
	m := vmaxabs(a)
	switch {
	case m == 0:
		return a, ErrDivideByZero
	case math.IsInf(m, 0) || math.IsNaN(m):
		return a, ErrDegenerate
	}
	var u V
	for i := 0; i < len(u); i++ {
		u[i] = a[i] / m
	}
	return vscale(u, 1/vlen(u)), nil
}

// Vec2 is a 2-component vector (value type, stack-allocated).
type Vec2 [2]float64

func (v Vec2) Add(w Vec2) Vec2               { return vadd(v, w) }
func (v Vec2) Sub(w Vec2) Vec2               { return vsub(v, w) }
func (v Vec2) Mul(w Vec2) Vec2               { return vmul(v, w) }
func (v Vec2) Lerp(w Vec2, t float64) Vec2   { return vlerp(v, w, t) }
func (v Vec2) Dot(w Vec2) float64            { return vdot(v, w) }
func (v Vec2) Dist(w Vec2) float64           { return vdist(v, w) }
func (v Vec2) Angle(w Vec2) (float64, error) { return vangle(v, w) }
func (v Vec2) Len() float64                  { return vlen(v) }
func (v Vec2) Scaled(s float64) Vec2         { return vscale(v, s) }
func (v Vec2) Normalized() (Vec2, error)     { return vnormalized(v) }
func (v *Vec2) Scale(s float64)              { *v = vscale(*v, s) }

// Normalize scales v to unit length in place. A zero vector is left
// unchanged and ErrDivideByZero is returned; infinite or NaN components
// give ErrDegenerate.
func (v *Vec2) Normalize() error {
	n, err := vnormalized(*v)
	*v = n
	return err
}

// Vec3 is a 3-component vector (value type, stack-allocated).
type Vec3 [3]float64

func (v Vec3) Add(w Vec3) Vec3               { return vadd(v, w) }
func (v Vec3) Sub(w Vec3) Vec3               { return vsub(v, w) }
func (v Vec3) Mul(w Vec3) Vec3               { return vmul(v, w) }
func (v Vec3) Lerp(w Vec3, t float64) Vec3   { return vlerp(v, w, t) }
func (v Vec3) Dot(w Vec3) float64            { return vdot(v, w) }
func (v Vec3) Dist(w Vec3) float64           { return vdist(v, w) }
func (v Vec3) Angle(w Vec3) (float64, error) { return vangle(v, w) }
func (v Vec3) Len() float64                  { return vlen(v) }
func (v Vec3) Scaled(s float64) Vec3         { return vscale(v, s) }
func (v Vec3) Normalized() (Vec3, error)     { return vnormalized(v) }
func (v *Vec3) Scale(s float64)              { *v = vscale(*v, s) }

// Normalize scales v to unit length in place. A zero vector is left
// unchanged and ErrDivideByZero is returned; infinite or NaN components
// give ErrDegenerate.
func (v *Vec3) Normalize() error {
	n, err := vnormalized(*v)
	*v = n
	return err
}

// Cross returns v × w (right-hand rule).
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// Vec4 returns v extended with the given w component.
func (v Vec3) Vec4(w float64) Vec4 {
	return Vec4{v[0], v[1], v[2], w}
}

// Vec4 is a 4-component (homogeneous) vector.
type Vec4 [4]float64

func (v Vec4) Add(w Vec4) Vec4               { return vadd(v, w) }
func (v Vec4) Sub(w Vec4) Vec4               { return vsub(v, w) }
func (v Vec4) Mul(w Vec4) Vec4               { return vmul(v, w) }
func (v Vec4) Lerp(w Vec4, t float64) Vec4   { return vlerp(v, w, t) }
func (v Vec4) Dot(w Vec4) float64            { return vdot(v, w) }
func (v Vec4) Dist(w Vec4) float64           { return vdist(v, w) }
func (v Vec4) Angle(w Vec4) (float64, error) { return vangle(v, w) }
func (v Vec4) Len() float64                  { return vlen(v) }
func (v Vec4) Scaled(s float64) Vec4         { return vscale(v, s) }
func (v Vec4) Normalized() (Vec4, error)     { return vnormalized(v) }
func (v *Vec4) Scale(s float64)              { *v = vscale(*v, s) }

// Normalize scales v to unit length in place. A zero vector is left
// unchanged and ErrDivideByZero is returned; infinite or NaN components
// give ErrDegenerate.
func (v *Vec4) Normalize() error {
	n, err := vnormalized(*v)
	*v = n
	return err
}

// Vec3 drops the w component.
func (v Vec4) Vec3() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// Vector is the operation set shared by Vec2, Vec3 and Vec4.
type Vector[V any] interface {
	Add(V) V
	Sub(V) V
	Mul(V) V
	Lerp(V, float64) V
	Dot(V) float64
	Dist(V) float64
	Angle(V) (float64, error)
	Len() float64
	Scaled(float64) V
	Normalized() (V, error)
	Scale(float64)
	Normalize() error
}

var (
	_ Vector[Vec2] = (*Vec2)(nil)
	_ Vector[Vec3] = (*Vec3)(nil)
	_ Vector[Vec4] = (*Vec4)(nil)
)
