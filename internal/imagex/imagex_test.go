package imagex

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestJPEG(t *testing.T, w, h int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), "photo.jpg")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, jpeg.Encode(f, img, nil))
	return path
}

func TestEncodePNG_ReencodesJPEG(t *testing.T) {
	path := writeTestJPEG(t, 64, 48)

	data, name, err := EncodePNG(path)
	require.NoError(t, err)
	assert.Equal(t, "photo.jpg", name)

	decoded, format, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 64, decoded.Bounds().Dx())
	assert.Equal(t, 48, decoded.Bounds().Dy())
}

func TestEncodePNG_ClampsOversizedImages(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, MaxDimension*2, MaxDimension))
	path := filepath.Join(t.TempDir(), "big.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	data, _, err := EncodePNG(path)
	require.NoError(t, err)

	decoded, _, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, MaxDimension, decoded.Bounds().Dx())
	assert.Equal(t, MaxDimension/2, decoded.Bounds().Dy())
}

func TestEncodePNG_MissingFile(t *testing.T) {
	_, _, err := EncodePNG(filepath.Join(t.TempDir(), "absent.png"))
	assert.Error(t, err)
}

func TestEncodePNG_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0o600))

	_, _, err := EncodePNG(path)
	assert.ErrorContains(t, err, "decode image")
}
