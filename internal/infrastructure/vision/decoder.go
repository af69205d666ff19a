package vision

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"vision-speech/internal/domain/entity"
	"vision-speech/internal/domain/port"
)

// DefaultMaxPixels ограничение на размер растра до декодирования (около 40 мегапикселей)
const DefaultMaxPixels = 40_000_000

// Decoder декодирует JPEG, PNG, GIF, WebP и BMP.
type Decoder struct {
	MaxPixels int
}

// NewDecoder создаёт декодер с ограничением по умолчанию.
func NewDecoder() *Decoder {
	return &Decoder{MaxPixels: DefaultMaxPixels}
}

// Decode сначала читает только заголовок, чтобы не распаковывать огромные растры.
func (d *Decoder) Decode(data []byte) (entity.Image, error) {
	if len(data) == 0 {
		return entity.Image{}, entity.ErrEmptyImage
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return entity.Image{}, fmt.Errorf("%w: %v", entity.ErrUnsupportedImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return entity.Image{}, entity.ErrEmptyImage
	}
	if d.MaxPixels > 0 && cfg.Width*cfg.Height > d.MaxPixels {
		return entity.Image{}, fmt.Errorf("%w (%dx%d, max %d pixels)", entity.ErrImageTooLarge, cfg.Width, cfg.Height, d.MaxPixels)
	}

	bitmap, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return entity.Image{}, fmt.Errorf("%w: %v", entity.ErrUnsupportedImage, err)
	}

	img := entity.Image{Bitmap: bitmap, Format: format, Size: len(data)}
	if err := img.Validate(); err != nil {
		return entity.Image{}, err
	}
	return img, nil
}

// Проверка реализации интерфейса
var _ port.ImageDecoder = (*Decoder)(nil)
