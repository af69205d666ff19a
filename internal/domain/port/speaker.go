package port

import "context"

// Speaker интерфейс синтеза речи
type Speaker interface {
	// Speak синтезирует речь, записывает MP3 и возвращает путь к файлу
	Speak(ctx context.Context, text string) (string, error)
}
