package debug

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"
)

// ExportHeights writes a height field to a 16-bit grayscale PNG the
// heightmap loader can read back. Heights are normalized over their own
// range, so a flat field exports as all black.
func (sc *ScreenshotCapture) ExportHeights(heights []float32, resolution int) (string, error) {
	if len(heights) != resolution*resolution {
		return "", fmt.Errorf("height data size mismatch: expected %d, got %d", resolution*resolution, len(heights))
	}

	min, max := heights[0], heights[0]
	for _, h := range heights {
		if h < min {
			min = h
		}
		if h > max {
			max = h
		}
	}
	scale := float32(0)
	if max > min {
		scale = 65535 / (max - min)
	}

	img := image.NewGray16(image.Rect(0, 0, resolution, resolution))
	for y := 0; y < resolution; y++ {
		for x := 0; x < resolution; x++ {
			v := uint16((heights[y*resolution+x] - min) * scale)
			i := img.PixOffset(x, y)
			img.Pix[i] = byte(v >> 8)
			img.Pix[i+1] = byte(v)
		}
	}

	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("heightmap_%s.png", timestamp)
	if sc.outputDir != "" {
		filename = filepath.Join(sc.outputDir, filename)
	}

	if err := writePNG(filename, img); err != nil {
		return "", err
	}
	return filename, nil
}
