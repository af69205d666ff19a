//go:build !gocv
// +build !gocv

package vision

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"golang.org/x/image/draw"

	"vision-speech/internal/domain/entity"
)

// Prepare масштабирует изображение через CatmullRom и кодирует в JPEG.
func (p *Preparer) Prepare(img entity.Image) ([]byte, error) {
	if err := p.check(img); err != nil {
		return nil, err
	}

	src := img.Bitmap
	bounds := src.Bounds()
	w, h := scaledSize(bounds.Dx(), bounds.Dy(), p.MaxSide)

	var out image.Image = src
	if w != bounds.Dx() || h != bounds.Dy() {
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
		out = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, out, &jpeg.Options{Quality: p.Quality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
