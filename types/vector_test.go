package types

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	v := XYZ(3, 0, 4).Normalize()
	if math.Abs(v.Len()-1) > 1e-12 {
		t.Fatalf("expected normalized vector to have unit length; got %f", v.Len())
	}

	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Fatalf("expected zero vector to normalize to zero; got %v", z)
	}
}

func TestMinMaxVec3(t *testing.T) {
	a := XYZ(1, -2, 3)
	b := XYZ(-1, 2, 3)

	if got := MinVec3(a, b); got != XYZ(-1, -2, 3) {
		t.Fatalf("expected min to be (-1, -2, 3); got %v", got)
	}
	if got := MaxVec3(a, b); got != XYZ(1, 2, 3) {
		t.Fatalf("expected max to be (1, 2, 3); got %v", got)
	}
}

func TestRayAt(t *testing.T) {
	r := NewRay(XYZ(1, 1, 1), XYZ(0, 0, 10))
	if r.Dir != XYZ(0, 0, 1) {
		t.Fatalf("expected ray direction to be normalized; got %v", r.Dir)
	}
	if p := r.At(2); p != XYZ(1, 1, 3) {
		t.Fatalf("expected point (1, 1, 3); got %v", p)
	}
}
