// Package preview renders small JPEG thumbnails for image uploads so the
// dashboard can show previews without fetching full-size blobs.
package preview

import (
	"bytes"

	"github.com/disintegration/imaging"
)

// DefaultSize is the bounding box for generated thumbnails, in pixels.
const DefaultSize = 240

// Supported reports whether a thumbnail can be rendered for the given
// lowercase extension. webp is excluded: no decoder is registered for it.
func Supported(ext string) bool {
	switch ext {
	case "jpg", "jpeg", "png":
		return true
	}
	return false
}

// Thumbnail decodes data and renders a JPEG fitted within size×size,
// preserving aspect ratio.
func Thumbnail(data []byte, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}
	fitted := imaging.Fit(img, size, size, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, fitted, imaging.JPEG, imaging.JPEGQuality(80)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
