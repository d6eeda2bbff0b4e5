package storage

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"

	"github.com/BruksfildServices01/salon-manager/internal/httperr"
)

const (
	MaxImageBytes = 8 << 20
	maxImageSide  = 800
	webpQuality   = 80
)

// ProductImage reduz a imagem para no máximo 800px no maior lado e devolve
// os bytes em webp.
func ProductImage(raw []byte) ([]byte, error) {
	if len(raw) == 0 || len(raw) > MaxImageBytes {
		return nil, httperr.ErrBusiness("invalid_image")
	}

	switch http.DetectContentType(raw) {
	case "image/png", "image/jpeg", "image/webp":
	default:
		return nil, httperr.ErrBusiness("invalid_image")
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		decoded, webpErr := webp.Decode(bytes.NewReader(raw))
		if webpErr != nil {
			return nil, httperr.ErrBusiness("invalid_image")
		}
		img = decoded
	}

	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, httperr.ErrBusiness("invalid_image")
	}

	w, h := fit(b.Dx(), b.Dy(), maxImageSide)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)

	var out bytes.Buffer
	if err := webp.Encode(&out, dst, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func fit(w, h, max int) (int, int) {
	if w <= max && h <= max {
		return w, h
	}
	if w >= h {
		return max, h * max / w
	}
	return w * max / h, max
}
