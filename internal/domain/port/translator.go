package port

import "context"

// Translator интерфейс модели перевода с фиксированной парой языков
type Translator interface {
	// Translate переводит непустой текст
	Translate(ctx context.Context, text string) (string, error)
}
