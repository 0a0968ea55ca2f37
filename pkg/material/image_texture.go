package material

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"github.com/mveron/gotracer/pkg/core"
)

// ImageTexture maps an image onto a surface via its texture coordinates
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major, top row first
}

// NewImageTexture creates an image texture from a pixel array. Panics if the
// pixel count doesn't match the dimensions.
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	if len(pixels) != width*height {
		panic("material: image texture pixel count mismatch")
	}
	return &ImageTexture{Width: width, Height: height, Pixels: pixels}
}

// LoadImageTexture loads a PNG or JPEG image file into an image texture
func LoadImageTexture(filename string) (*ImageTexture, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Auto-detects PNG/JPEG from the file header
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return NewImageTexture(width, height, pixels), nil
}

// ColorAt looks up the pixel under the texture coordinates, clamping indices
// to the image bounds. v is flipped: v=0 maps to the bottom image row.
func (t *ImageTexture) ColorAt(u, v float64, point core.Vec3) core.Vec3 {
	i := int(u * float64(t.Width))
	j := int(v * float64(t.Height))
	if i < 0 {
		i = 0
	}
	if j < 0 {
		j = 0
	}
	if i >= t.Width {
		i = t.Width - 1
	}
	if j >= t.Height {
		j = t.Height - 1
	}
	j = t.Height - 1 - j

	return t.Pixels[j*t.Width+i]
}
