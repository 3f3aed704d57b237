package camera

import "testing"

func TestHandleDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera()

	c.HandleDrag(0, 10000)
	if c.RotationX != c.MaxPitch {
		t.Errorf("pitch = %v, want clamped to %v", c.RotationX, c.MaxPitch)
	}

	c.HandleDrag(0, -20000)
	if c.RotationX != c.MinPitch {
		t.Errorf("pitch = %v, want clamped to %v", c.RotationX, c.MinPitch)
	}
}

func TestHandleZoomClampsDistance(t *testing.T) {
	c := NewOrbitCamera()

	for i := 0; i < 100; i++ {
		c.HandleZoom(10)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("distance = %v, want clamped to %v", c.Distance, c.MinDistance)
	}

	for i := 0; i < 100; i++ {
		c.HandleZoom(-10)
	}
	if c.Distance != c.MaxDistance {
		t.Errorf("distance = %v, want clamped to %v", c.Distance, c.MaxDistance)
	}
}

func TestPositionRespectsDistance(t *testing.T) {
	c := NewOrbitCamera()
	c.FitToTerrain(100)

	pos := c.Position()
	d := pos.Length()
	if d < c.Distance-0.01 || d > c.Distance+0.01 {
		t.Errorf("camera at distance %v from origin, want %v", d, c.Distance)
	}
	if pos.Y <= 0 {
		t.Errorf("camera Y = %v, want above the terrain", pos.Y)
	}
}
