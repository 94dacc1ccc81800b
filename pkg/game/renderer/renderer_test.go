package renderer

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBackground(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 12, 8))))
	require.NoError(t, f.Close())

	img, err := LoadBackground(path)
	require.NoError(t, err)
	assert.Equal(t, 12, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())
}

func TestLoadBackgroundMissing(t *testing.T) {
	_, err := LoadBackground(filepath.Join(t.TempDir(), "nope.gif"))
	assert.ErrorIs(t, err, ErrMissingAsset)
}

func TestLoadBackgroundUndecodable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.gif")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o600))

	_, err := LoadBackground(path)
	assert.ErrorIs(t, err, ErrMissingAsset)
}

func TestBackgroundOrPlaceholder(t *testing.T) {
	img, err := BackgroundOrPlaceholder(filepath.Join(t.TempDir(), "nope.gif"))
	assert.ErrorIs(t, err, ErrMissingAsset)
	require.NotNil(t, img)

	assert.Equal(t, PlaceholderSize, img.Bounds().Dx())
	r, g, b, _ := img.At(10, 10).RGBA()
	wr, wg, wb, _ := PlaceholderColor.RGBA()
	assert.Equal(t, []uint32{wr, wg, wb}, []uint32{r, g, b})
}
