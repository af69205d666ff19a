package entity

import "image"

// Image декодированное изображение, которым владеет один запуск конвейера.
type Image struct {
	Bitmap image.Image // декодированный растр
	Format string      // формат исходного файла (jpeg, png, webp, ...)
	Size   int         // размер исходного файла в байтах
}

// Width возвращает ширину изображения в пикселях
func (i Image) Width() int {
	if i.Bitmap == nil {
		return 0
	}
	return i.Bitmap.Bounds().Dx()
}

// Height возвращает высоту изображения в пикселях
func (i Image) Height() int {
	if i.Bitmap == nil {
		return 0
	}
	return i.Bitmap.Bounds().Dy()
}

// Validate проверяет, что в изображении есть хотя бы один пиксель.
func (i Image) Validate() error {
	if i.Width() <= 0 || i.Height() <= 0 {
		return ErrEmptyImage
	}
	return nil
}
