package sculpt

import (
	"errors"
	"testing"
)

func TestNewHeightFieldValidation(t *testing.T) {
	cases := []struct {
		name       string
		resolution int
		worldSize  float32
	}{
		{"zero resolution", 0, 100},
		{"negative resolution", -4, 100},
		{"zero world size", 256, 0},
		{"negative world size", 256, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewHeightField(tc.resolution, tc.worldSize)
			if !errors.Is(err, ErrConfiguration) {
				t.Errorf("got %v, want ErrConfiguration", err)
			}
		})
	}
}

func TestWorldToUV(t *testing.T) {
	hf, err := NewHeightField(256, 100)
	if err != nil {
		t.Fatalf("NewHeightField: %v", err)
	}

	cases := []struct {
		x, z   float32
		u, v   float32
	}{
		{0, 0, 0.5, 0.5},
		{-50, -50, 0, 0},
		{50, 50, 1, 1},
		{25, -25, 0.75, 0.25},
	}
	for _, tc := range cases {
		uv := hf.WorldToUV(tc.x, tc.z)
		if uv.X != tc.u || uv.Y != tc.v {
			t.Errorf("WorldToUV(%v, %v) = (%v, %v), want (%v, %v)",
				tc.x, tc.z, uv.X, uv.Y, tc.u, tc.v)
		}
	}
}

func TestNormalizeRadius(t *testing.T) {
	hf, _ := NewHeightField(256, 100)
	if got := hf.NormalizeRadius(10); got != 0.05 {
		t.Errorf("NormalizeRadius(10) = %v, want 0.05", got)
	}
}

func TestGridAndTexelSize(t *testing.T) {
	hf, _ := NewHeightField(200, 100)
	if got := hf.GridSize(); got != 0.5 {
		t.Errorf("GridSize() = %v, want 0.5", got)
	}
	if got := hf.TexelSize(); got != 1.0/200.0 {
		t.Errorf("TexelSize() = %v, want %v", got, 1.0/200.0)
	}
}

func TestNormalizeHeightBytesLength(t *testing.T) {
	hf, _ := NewHeightField(4, 100)
	if _, err := hf.NormalizeHeightBytes(make([]byte, 15), 1, false); err == nil {
		t.Error("expected error for wrong data length")
	}
}

func TestNormalizeHeightBytesFloorIsZero(t *testing.T) {
	hf, _ := NewHeightField(2, 100)
	out, err := hf.NormalizeHeightBytes([]byte{40, 80, 120, 200}, 10, false)
	if err != nil {
		t.Fatalf("NormalizeHeightBytes: %v", err)
	}

	min := out[0]
	for _, h := range out {
		if h < min {
			min = h
		}
	}
	if min != 0 {
		t.Errorf("minimum height = %v, want 0", min)
	}
	// Relative ordering of the input bytes must survive.
	if !(out[0] < out[1] && out[1] < out[2] && out[2] < out[3]) {
		t.Errorf("heights not monotonic over increasing bytes: %v", out)
	}
}

func TestNormalizeHeightBytesScaling(t *testing.T) {
	hf, _ := NewHeightField(2, 100)
	out, err := hf.NormalizeHeightBytes([]byte{0, 255, 0, 255}, 10, false)
	if err != nil {
		t.Fatalf("NormalizeHeightBytes: %v", err)
	}
	// 0 -> 0, 255 -> 10 after scaling; min is already zero.
	if out[0] != 0 || approxDiff(out[1], 10) > 1e-5 {
		t.Errorf("got %v, want [0 10 0 10]", out)
	}
}

func TestNormalizeHeightBytesMidGreyFold(t *testing.T) {
	hf, _ := NewHeightField(2, 100)
	// 128 is (closest to) mid grey, 0 and 255 are extremes. With the
	// fold, mid grey becomes the floor and both extremes become peaks.
	out, err := hf.NormalizeHeightBytes([]byte{0, 128, 255, 128}, 1, true)
	if err != nil {
		t.Fatalf("NormalizeHeightBytes: %v", err)
	}
	if out[1] >= out[0] || out[1] >= out[2] {
		t.Errorf("mid grey should be lowest: %v", out)
	}
	if approxDiff(out[0], out[2]) > 0.01 {
		t.Errorf("black and white should fold to near-equal peaks: %v", out)
	}
}

func approxDiff(a, b float32) float32 {
	d := a - b
	if d < 0 {
		return -d
	}
	return d
}
