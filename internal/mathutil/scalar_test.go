package mathutil

import (
	"math"
	"testing"
)

func TestScalar(t *testing.T) {
	if v := Interpolate(2.0, 4.0, 0.5); v != 3 {
		t.Fatalf("Interpolate\nhave %v\nwant 3", v)
	}
	if v := Interpolate(float32(0), 10, 1.5); v != 15 {
		t.Fatalf("Interpolate(float32)\nhave %v\nwant 15", v)
	}
	if v := Clamp(5, 0, 3); v != 3 {
		t.Fatalf("Clamp\nhave %v\nwant 3", v)
	}
	if v := Clamp(-1.5, -1, 1); v != -1 {
		t.Fatalf("Clamp\nhave %v\nwant -1", v)
	}
	if v := Deg2Rad(180.0); math.Abs(v-math.Pi) > tol {
		t.Fatalf("Deg2Rad\nhave %v\nwant %v", v, math.Pi)
	}
	if v := Rad2Deg(math.Pi / 2); math.Abs(v-90) > tol {
		t.Fatalf("Rad2Deg\nhave %v\nwant 90", v)
	}
}
