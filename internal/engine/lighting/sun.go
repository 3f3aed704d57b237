// Package lighting provides the directional sun light for terrain
// shading.
package lighting

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/terrasculpt/pkg/math"
)

// Sun is a directional light described by its sky position.
type Sun struct {
	Longitude float32 // rotation around the Y axis, degrees
	Latitude  float32 // elevation from the horizon, degrees
	Ambient   [3]float32
	Diffuse   [3]float32
}

// NewSun returns a late-morning sun with neutral colors.
func NewSun() *Sun {
	return &Sun{
		Longitude: 45,
		Latitude:  55,
		Ambient:   [3]float32{0.35, 0.35, 0.38},
		Diffuse:   [3]float32{0.85, 0.82, 0.75},
	}
}

// Direction returns the normalized light direction, pointing from the
// sun toward the scene.
func (s *Sun) Direction() math.Vec3 {
	lonRad := s.Longitude * math32.Pi / 180.0
	latRad := s.Latitude * math32.Pi / 180.0

	// Spherical to Cartesian, negated so the vector points down at the
	// terrain rather than up at the sun.
	return math.Vec3{
		X: -math32.Cos(latRad) * math32.Sin(lonRad),
		Y: -math32.Sin(latRad),
		Z: -math32.Cos(latRad) * math32.Cos(lonRad),
	}
}
