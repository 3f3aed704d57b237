package debug

import (
	"image/png"
	"os"
	"testing"
)

func TestCaptureFromPixels(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(dir, "shot")

	pixels := make([]byte, 4*4*4)
	// Mark the GL-bottom-left pixel red; it must land at image
	// bottom-left after the vertical flip.
	pixels[0] = 255
	pixels[3] = 255

	name, err := sc.CaptureFromPixels(pixels, 4, 4)
	if err != nil {
		t.Fatalf("CaptureFromPixels: %v", err)
	}

	f, err := os.Open(name)
	if err != nil {
		t.Fatalf("open %s: %v", name, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	r, _, _, _ := img.At(0, 3).RGBA()
	if r != 0xffff {
		t.Error("bottom-left pixel should be red after flip")
	}
}

func TestCaptureFromPixelsSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "shot")
	if _, err := sc.CaptureFromPixels(make([]byte, 10), 4, 4); err == nil {
		t.Error("expected error for wrong pixel buffer size")
	}
}

func TestExportHeights(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(dir, "shot")

	heights := []float32{0, 1, 2, 3}
	name, err := sc.ExportHeights(heights, 2)
	if err != nil {
		t.Fatalf("ExportHeights: %v", err)
	}

	f, err := os.Open(name)
	if err != nil {
		t.Fatalf("open %s: %v", name, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	// Min maps to black, max to white.
	r0, _, _, _ := img.At(0, 0).RGBA()
	r3, _, _, _ := img.At(1, 1).RGBA()
	if r0 != 0 {
		t.Errorf("lowest height = %v, want 0", r0)
	}
	if r3 != 0xffff {
		t.Errorf("highest height = %v, want 0xffff", r3)
	}
}

func TestExportHeightsSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "shot")
	if _, err := sc.ExportHeights(make([]float32, 3), 2); err == nil {
		t.Error("expected error for wrong height buffer size")
	}
}
