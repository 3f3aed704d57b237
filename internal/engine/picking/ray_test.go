package picking

import (
	"testing"

	"github.com/Faultbox/terrasculpt/pkg/math"
)

func TestIntersectPlaneY(t *testing.T) {
	r := Ray{Origin: [3]float32{0, 10, 0}, Direction: [3]float32{0, -1, 0}}

	x, z, ok := r.IntersectPlaneY(0)
	if !ok {
		t.Fatal("straight-down ray should hit the ground plane")
	}
	if x != 0 || z != 0 {
		t.Errorf("hit at (%v, %v), want (0, 0)", x, z)
	}
}

func TestIntersectPlaneYAngled(t *testing.T) {
	// 45 degrees down along +X from height 10 lands at x = 10.
	d := float32(0.70710678)
	r := Ray{Origin: [3]float32{0, 10, 0}, Direction: [3]float32{d, -d, 0}}

	x, z, ok := r.IntersectPlaneY(0)
	if !ok {
		t.Fatal("angled ray should hit the ground plane")
	}
	if x < 9.99 || x > 10.01 || z != 0 {
		t.Errorf("hit at (%v, %v), want (10, 0)", x, z)
	}
}

func TestIntersectPlaneYParallel(t *testing.T) {
	r := Ray{Origin: [3]float32{0, 10, 0}, Direction: [3]float32{1, 0, 0}}
	if _, _, ok := r.IntersectPlaneY(0); ok {
		t.Error("horizontal ray should not hit the plane")
	}
}

func TestIntersectPlaneYBehind(t *testing.T) {
	r := Ray{Origin: [3]float32{0, 10, 0}, Direction: [3]float32{0, 1, 0}}
	if _, _, ok := r.IntersectPlaneY(0); ok {
		t.Error("upward ray should not hit a plane below the origin")
	}
}

func TestScreenCenterRay(t *testing.T) {
	view := math.LookAt(
		math.Vec3{X: 0, Y: 50, Z: 50},
		math.Vec3{X: 0, Y: 0, Z: 0},
		math.Vec3{X: 0, Y: 1, Z: 0},
	)
	proj := math.Perspective(0.785398, 1, 0.1, 1000)
	inv := proj.Mul(view).Inverse()

	r := ScreenToRay(400, 300, 800, 600, inv)

	// Screen center looks at the orbit target, so the ray must cross
	// the ground plane near the origin.
	x, z, ok := r.IntersectPlaneY(0)
	if !ok {
		t.Fatal("center ray should hit the ground plane")
	}
	if x < -0.5 || x > 0.5 || z < -0.5 || z > 0.5 {
		t.Errorf("center ray hit at (%v, %v), want near origin", x, z)
	}
}
