// Package scene turns a declarative list of transform steps into the single
// 4×4 matrix consumed by the rasterization pipeline.
package scene

import (
	"fmt"

	"glyphraster/internal/mathutil"
)

// Step is one entry of a transform list.
//
//	{"op": "scale",     "vec": [x, y, z]}
//	{"op": "rotate",    "axis": [x, y, z], "degrees": a}
//	{"op": "translate", "vec": [x, y, z]}
//	{"op": "euler",     "vec": [rx, ry, rz]}            degrees, XYZ order
//	{"op": "quat",      "quat": [x, y, z, w]}
//	{"op": "look",      "forward": [x, y, z], "up": [x, y, z]}
type Step struct {
	Op      string        `json:"op"`
	Vec     mathutil.Vec3 `json:"vec"`
	Axis    mathutil.Vec3 `json:"axis"`
	Degrees float64       `json:"degrees,omitempty"`
	Quat    mathutil.Quat `json:"quat"`
	Forward mathutil.Vec3 `json:"forward"`
	Up      mathutil.Vec3 `json:"up"`
}

// Build composes steps into one matrix, starting from the identity.
//
// Each step right-multiplies the matrix built so far, exactly like chaining
// the Mat4 builders: the first step is the outermost transform and the last
// step is applied to vertices first. [translate(0,20,0), scale(4,1,1)]
// therefore scales a vertex, then moves it up by 20.
func Build(steps []Step) (mathutil.Mat4, error) {
	m := mathutil.Mat4Identity()
	for i, s := range steps {
		var err error
		m, err = apply(m, s)
		if err != nil {
			return mathutil.Mat4Identity(), fmt.Errorf("scene: step %d (%s): %w", i, s.Op, err)
		}
	}
	return m, nil
}

func apply(m mathutil.Mat4, s Step) (mathutil.Mat4, error) {
	switch s.Op {
	case "scale":
		return m.Scale(s.Vec), nil
	case "translate":
		return m.Translate(s.Vec), nil
	case "rotate":
		if _, err := mathutil.RotAxis(s.Axis, 0); err != nil {
			return m, err
		}
		return m.Rotate(s.Axis, mathutil.Deg2Rad(s.Degrees)), nil
	case "euler":
		q := mathutil.EulerToQuat(
			mathutil.Deg2Rad(s.Vec[0]),
			mathutil.Deg2Rad(s.Vec[1]),
			mathutil.Deg2Rad(s.Vec[2]),
		)
		return m.Mul(q.Mat4()), nil
	case "quat":
		q := s.Quat
		if q.Len() == 0 {
			return m, mathutil.ErrDivideByZero
		}
		q.Normalize()
		return m.Mul(q.Mat4()), nil
	case "look":
		var q mathutil.Quat
		if err := q.LookRotation(s.Forward, s.Up); err != nil {
			return m, err
		}
		return m.Mul(q.Mat4()), nil
	}
	return m, fmt.Errorf("unknown op %q", s.Op)
}

// Spin returns the rotation of degrees about axis, built through a
// quaternion.
func Spin(axis mathutil.Vec3, degrees float64) (mathutil.Mat4, error) {
	q := mathutil.QuatIdentity()
	if err := q.SetAxisAngle(axis, mathutil.Deg2Rad(degrees)); err != nil {
		return mathutil.Mat4Identity(), fmt.Errorf("scene: spin: %w", err)
	}
	return q.Mat4(), nil
}

// SpinBetween returns the rotation part-way (t in [0,1]) from one
// orientation to another, blended with Slerp.
func SpinBetween(from, to mathutil.Quat, t float64) mathutil.Mat4 {
	return mathutil.Slerp(from, to, t).Mat4()
}
