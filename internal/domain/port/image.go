package port

import "vision-speech/internal/domain/entity"

// ImageDecoder превращает байты файла в декодированное изображение
type ImageDecoder interface {
	Decode(data []byte) (entity.Image, error)
}

// ImagePreparer готовит изображение к отправке в модель: масштабирует и кодирует в JPEG
type ImagePreparer interface {
	Prepare(img entity.Image) ([]byte, error)
}
