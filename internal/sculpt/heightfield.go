// Package sculpt implements GPU height-field sculpting. Brush edits
// accumulate in a two-texture ping-pong chain via fragment passes; a
// composite pass merges the accumulated edits with a static base layer
// into the height texture the display mesh samples.
package sculpt

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/terrasculpt/pkg/math"
)

// HeightField describes the logical height data: texture resolution,
// world-space extent, and the mapping between the two. Resolution and
// world size are immutable; changing them means rebuilding every GPU
// resource, so callers construct a new pipeline instead.
type HeightField struct {
	resolution int
	worldSize  float32
}

// NewHeightField creates a height field description.
func NewHeightField(resolution int, worldSize float32) (*HeightField, error) {
	if resolution < 1 {
		return nil, fmt.Errorf("%w: resolution %d", ErrConfiguration, resolution)
	}
	if worldSize <= 0 {
		return nil, fmt.Errorf("%w: world size %f", ErrConfiguration, worldSize)
	}
	return &HeightField{resolution: resolution, worldSize: worldSize}, nil
}

// Resolution returns the texels per side of the (square) height texture.
func (hf *HeightField) Resolution() int {
	return hf.resolution
}

// WorldSize returns the world-space edge length.
func (hf *HeightField) WorldSize() float32 {
	return hf.worldSize
}

// GridSize returns the world-space size of one texel.
func (hf *HeightField) GridSize() float32 {
	return hf.worldSize / float32(hf.resolution)
}

// TexelSize returns the UV-space size of one texel.
func (hf *HeightField) TexelSize() float32 {
	return 1.0 / float32(hf.resolution)
}

// WorldToUV maps a world-space X/Z position onto the height texture.
// The terrain is centered on the origin, so the world range
// [-worldSize/2, worldSize/2] maps to UV [0, 1].
func (hf *HeightField) WorldToUV(x, z float32) math.Vec2 {
	return math.Vec2{
		X: (x + hf.worldSize/2) / hf.worldSize,
		Y: (z + hf.worldSize/2) / hf.worldSize,
	}
}

// NormalizeRadius converts a world-space brush radius to the normalized
// form the sculpt shader expects.
func (hf *HeightField) NormalizeRadius(worldRadius float32) float32 {
	return worldRadius / (hf.worldSize * 2)
}

// NormalizeHeightBytes converts byte-level image samples to float
// heights. Each byte maps to [0,1]; with midGreyIsLowest the value is
// folded around 0.5 so mid grey becomes the floor and both black and
// white become peaks. The result is scaled by amount and then shifted
// down by its minimum so the lowest sample is exactly zero.
func (hf *HeightField) NormalizeHeightBytes(data []byte, amount float32, midGreyIsLowest bool) ([]float32, error) {
	want := hf.resolution * hf.resolution
	if len(data) != want {
		return nil, fmt.Errorf("height data length %d, want %d (%dx%d)", len(data), want, hf.resolution, hf.resolution)
	}

	out := make([]float32, want)
	min := float32(math32.MaxFloat32)
	for i, b := range data {
		h := float32(b) / 255.0
		if midGreyIsLowest {
			h = math32.Abs(h - 0.5)
		}
		h *= amount
		out[i] = h
		if h < min {
			min = h
		}
	}

	// Shift so the floor sits at zero.
	for i := range out {
		out[i] -= min
	}

	return out, nil
}
