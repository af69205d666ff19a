//go:build gocv
// +build gocv

package vision

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"vision-speech/internal/domain/entity"
)

// Prepare масштабирует изображение средствами OpenCV (InterpolationArea) и кодирует в JPEG.
func (p *Preparer) Prepare(img entity.Image) ([]byte, error) {
	if err := p.check(img); err != nil {
		return nil, err
	}

	mat, err := gocv.ImageToMatRGB(img.Bitmap)
	if err != nil {
		return nil, fmt.Errorf("convert to mat: %w", err)
	}
	defer func() { mat.Close() }()

	if mat.Empty() {
		return nil, errors.New("empty image")
	}

	// Приводим изображение к размеру входа модели.
	newW, newH := scaledSize(mat.Cols(), mat.Rows(), p.MaxSide)
	if newW != mat.Cols() || newH != mat.Rows() {
		resized := gocv.NewMat()
		gocv.Resize(mat, &resized, image.Pt(newW, newH), 0, 0, gocv.InterpolationArea)
		mat.Close()
		mat = resized
	}

	buf, err := gocv.IMEncodeWithParams(gocv.JPEGFileExt, mat, []int{gocv.IMWriteJpegQuality, p.Quality})
	if err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	defer buf.Close()

	return bytes.Clone(buf.GetBytes()), nil
}
