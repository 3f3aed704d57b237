package math

import (
	"testing"
)

func approxEq(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func TestIdentityMul(t *testing.T) {
	id := Identity()
	m := Perspective(1.0, 1.5, 0.1, 1000)
	got := id.Mul(m)
	if got != m {
		t.Errorf("Identity().Mul(m) = %v, want %v", got, m)
	}
}

func TestMulVec4Identity(t *testing.T) {
	id := Identity()
	v := Vec4{1, 2, 3, 1}
	got := id.MulVec4(v)
	if got != v {
		t.Errorf("Identity().MulVec4(v) = %v, want %v", got, v)
	}
}

func TestInverseRoundTrip(t *testing.T) {
	view := LookAt(Vec3{10, 20, 30}, Vec3{0, 0, 0}, Vec3{0, 1, 0})
	inv := view.Inverse()
	prod := view.Mul(inv)
	id := Identity()
	for i := range prod {
		if !approxEq(prod[i], id[i], 1e-4) {
			t.Fatalf("view*inverse[%d] = %v, want %v", i, prod[i], id[i])
		}
	}
}

func TestInverseSingular(t *testing.T) {
	var zero Mat4
	got := zero.Inverse()
	if got != Identity() {
		t.Errorf("singular Inverse() = %v, want identity", got)
	}
}

func TestTransformPoint(t *testing.T) {
	view := LookAt(Vec3{0, 0, 10}, Vec3{0, 0, 0}, Vec3{0, 1, 0})
	p := view.TransformPoint([3]float32{0, 0, 0})
	// Origin should land 10 units in front of the camera (negative Z in view space).
	if !approxEq(p[2], -10, 1e-4) {
		t.Errorf("TransformPoint().Z = %v, want -10", p[2])
	}
}
