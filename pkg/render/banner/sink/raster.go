package sink

import (
	"bytes"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// RasterOption configures [RenderPNG] and [RenderJPEG].
type RasterOption func(*rasterRenderer)

type rasterRenderer struct {
	scale   float64
	quality int
}

// WithScale resizes the image by s before encoding (default 1).
func WithScale(s float64) RasterOption {
	return func(r *rasterRenderer) { r.scale = s }
}

// WithQuality sets the JPEG quality in [1, 100] (default 90).
func WithQuality(q int) RasterOption {
	return func(r *rasterRenderer) { r.quality = q }
}

func newRasterRenderer(opts []RasterOption) rasterRenderer {
	r := rasterRenderer{scale: 1, quality: 90}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderPNG encodes img as PNG.
func RenderPNG(img image.Image, opts ...RasterOption) ([]byte, error) {
	r := newRasterRenderer(opts)
	return encode(scaled(img, r.scale), imaging.PNG)
}

// RenderJPEG encodes img as JPEG.
func RenderJPEG(img image.Image, opts ...RasterOption) ([]byte, error) {
	r := newRasterRenderer(opts)
	q := max(1, min(r.quality, 100))
	return encode(scaled(img, r.scale), imaging.JPEG, imaging.JPEGQuality(q))
}

func encode(img image.Image, f imaging.Format, opts ...imaging.EncodeOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, f, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func scaled(img image.Image, s float64) image.Image {
	if s <= 0 || s == 1 {
		return img
	}
	w := int(math.Round(float64(img.Bounds().Dx()) * s))
	h := int(math.Round(float64(img.Bounds().Dy()) * s))
	return imaging.Resize(img, max(w, 1), max(h, 1), imaging.Lanczos)
}
