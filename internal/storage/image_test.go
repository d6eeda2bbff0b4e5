package storage

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chai2010/webp"

	"github.com/BruksfildServices01/salon-manager/internal/httperr"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestProductImageResizesToWebP(t *testing.T) {
	out, err := ProductImage(pngBytes(t, 1600, 400))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	img, err := webp.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not webp: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 200 {
		t.Errorf("size = %dx%d, want 800x200", b.Dx(), b.Dy())
	}
}

func TestProductImageRejectsNonImages(t *testing.T) {
	if _, err := ProductImage([]byte("not an image at all")); !httperr.IsBusiness(err, "invalid_image") {
		t.Errorf("expected invalid_image, got %v", err)
	}
	if _, err := ProductImage(nil); !httperr.IsBusiness(err, "invalid_image") {
		t.Errorf("expected invalid_image for empty body, got %v", err)
	}
}

func TestFit(t *testing.T) {
	tests := []struct{ w, h, ww, wh int }{
		{100, 50, 100, 50},
		{1600, 800, 800, 400},
		{400, 1600, 200, 800},
	}
	for _, tt := range tests {
		if w, h := fit(tt.w, tt.h, 800); w != tt.ww || h != tt.wh {
			t.Errorf("fit(%d,%d) = %d,%d", tt.w, tt.h, w, h)
		}
	}
}

func TestDisabledStoreRefusesUploads(t *testing.T) {
	s := &S3Store{}
	if err := s.Put(context.Background(), "k", []byte("x"), "text/plain"); !httperr.IsBusiness(err, "storage_disabled") {
		t.Errorf("expected storage_disabled, got %v", err)
	}
}
