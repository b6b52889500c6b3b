// Package imagex resolves an image reference (a file path on this platform)
// to raw bytes and re-encodes it as a lossless PNG payload for upload.
// Decoders for the common gallery formats are registered via blank imports.
package imagex

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	_ "image/gif"
	_ "image/jpeg"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/bmp"  // BMP decode support
	_ "golang.org/x/image/tiff" // TIFF decode support
	_ "golang.org/x/image/webp" // WebP decode support
)

// MaxDimension caps either side of an uploaded image. Larger images are
// scaled down preserving aspect ratio before encoding.
const MaxDimension = 2048

// EncodePNG reads the image at path, decodes it in whatever format it is
// stored, and returns PNG bytes plus the original base file name. Decode and
// I/O failures propagate to the caller unhandled.
func EncodePNG(path string) ([]byte, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("decode image %s: %w", filepath.Base(path), err)
	}

	img = clampSize(img)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, "", fmt.Errorf("encode png: %w", err)
	}

	return buf.Bytes(), filepath.Base(path), nil
}

// clampSize scales img down so that neither side exceeds MaxDimension.
// Images already inside the limit are returned unchanged.
func clampSize(img image.Image) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= MaxDimension && h <= MaxDimension {
		return img
	}

	scale := float64(MaxDimension) / float64(w)
	if h > w {
		scale = float64(MaxDimension) / float64(h)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
