package port

import (
	"context"

	"vision-speech/internal/domain/entity"
)

// Captioner интерфейс модели, описывающей изображение
type Captioner interface {
	// Caption возвращает короткую подпись к изображению.
	// Пустое или повреждённое изображение приводит к ошибке, а не к пустой подписи.
	Caption(ctx context.Context, img entity.Image) (string, error)
}
