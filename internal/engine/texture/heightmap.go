package texture

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"strings"

	// Registered decoders for image.Decode.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// DecodeHeightmap decodes image data into grayscale bytes resampled to
// resolution x resolution, row-major. PNG, JPEG, BMP, TIFF, and TGA are
// accepted; name is only used to spot the TGA extension, which has no
// magic bytes for image.Decode to sniff.
func DecodeHeightmap(data []byte, name string, resolution int) ([]byte, error) {
	var img image.Image
	var err error

	if strings.HasSuffix(strings.ToLower(name), ".tga") {
		img, err = DecodeTGA(data)
	} else {
		img, _, err = image.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("decode heightmap %s: %w", name, err)
	}

	return resampleGray(img, resolution), nil
}

// LoadHeightmap reads and decodes a heightmap file.
func LoadHeightmap(path string, resolution int) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read heightmap: %w", err)
	}
	return DecodeHeightmap(data, path, resolution)
}

// resampleGray converts to 8-bit luminance and nearest-neighbor
// resamples to resolution x resolution. Heightmaps are smooth, so
// nearest is good enough and keeps the extremes intact.
func resampleGray(img image.Image, resolution int) []byte {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	out := make([]byte, resolution*resolution)
	for y := 0; y < resolution; y++ {
		srcY := bounds.Min.Y + y*h/resolution
		for x := 0; x < resolution; x++ {
			srcX := bounds.Min.X + x*w/resolution
			r, g, b, _ := img.At(srcX, srcY).RGBA()
			// Rec. 601 luma, on 16-bit channel values.
			lum := (299*r + 587*g + 114*b) / 1000
			out[y*resolution+x] = byte(lum >> 8)
		}
	}
	return out
}
