package renderer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrMissingAsset marks a background image that could not be used. It is a
// warning: the surface falls back to Placeholder.
var ErrMissingAsset = errors.New("missing asset")

// Placeholder size and colour used when the map image is unavailable
const PlaceholderSize = 400

var PlaceholderColor = color.RGBA{R: 0xd3, G: 0xd3, B: 0xd3, A: 0xff}

// LoadBackground decodes the map image at path. Any failure wraps
// ErrMissingAsset.
func LoadBackground(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingAsset, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrMissingAsset, path, err)
	}

	return img, nil
}

// Placeholder returns the light grey square drawn instead of a missing map
func Placeholder() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, PlaceholderSize, PlaceholderSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: PlaceholderColor}, image.Point{}, draw.Src)
	return img
}

// BackgroundOrPlaceholder loads path and falls back to Placeholder. The
// returned error is non-nil only for the warning case.
func BackgroundOrPlaceholder(path string) (image.Image, error) {
	img, err := LoadBackground(path)
	if err != nil {
		return Placeholder(), err
	}
	return img, nil
}
