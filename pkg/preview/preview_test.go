package preview

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestSupported(t *testing.T) {
	for _, ext := range []string{"jpg", "jpeg", "png"} {
		if !Supported(ext) {
			t.Errorf("%s should be supported", ext)
		}
	}
	for _, ext := range []string{"pdf", "docx", "webp", ""} {
		if Supported(ext) {
			t.Errorf("%s should not be supported", ext)
		}
	}
}

func TestThumbnailFitsBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 800, 400))
	for x := 0; x < 800; x += 10 {
		src.Set(x, 200, color.RGBA{R: 255, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}

	out, err := Thumbnail(buf.Bytes(), 240)
	if err != nil {
		t.Fatalf("Thumbnail: %v", err)
	}
	thumb, _, err := image.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode thumbnail: %v", err)
	}
	b := thumb.Bounds()
	if b.Dx() > 240 || b.Dy() > 240 {
		t.Fatalf("thumbnail exceeds bounds: %dx%d", b.Dx(), b.Dy())
	}
	// aspect ratio preserved: 800x400 fits to 240x120
	if b.Dx() != 240 || b.Dy() != 120 {
		t.Fatalf("unexpected dimensions: %dx%d", b.Dx(), b.Dy())
	}
}

func TestThumbnailRejectsGarbage(t *testing.T) {
	if _, err := Thumbnail([]byte("not an image"), 240); err == nil {
		t.Fatal("expected decode error")
	}
}
