package lighting

import "testing"

func TestSunDirectionNormalized(t *testing.T) {
	s := NewSun()
	d := s.Direction()

	l := d.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("direction length = %v, want 1", l)
	}
}

func TestSunDirectionPointsDown(t *testing.T) {
	s := NewSun()
	if d := s.Direction(); d.Y >= 0 {
		t.Errorf("direction Y = %v, want negative (light falls onto the terrain)", d.Y)
	}
}

func TestSunOverhead(t *testing.T) {
	s := &Sun{Latitude: 90}
	d := s.Direction()
	if d.Y > -0.999 {
		t.Errorf("overhead sun direction = %+v, want straight down", d)
	}
}
