package port

import (
	"context"
	"time"

	"vision-speech/internal/domain/entity"
)

// AudioStore выдаёт уникальные пути для синтезированных файлов
type AudioStore interface {
	// NewPath возвращает новый идентификатор и путь к ещё не существующему файлу
	NewPath() (id string, path string, err error)

	// Path проверяет имя файла и возвращает полный путь к нему
	Path(name string) (string, error)

	// Remove удаляет файл; отсутствие файла ошибкой не считается
	Remove(path string) error

	// Sweep удаляет файлы, изменённые раньше before, и возвращает их количество
	Sweep(before time.Time) (int, error)
}

// ResultRepository интерфейс хранилища результатов
type ResultRepository interface {
	// Get возвращает результат по ID
	Get(ctx context.Context, id string) (*entity.Result, error)

	// Save сохраняет результат
	Save(ctx context.Context, result *entity.Result) error

	// Delete удаляет результат
	Delete(ctx context.Context, id string) error

	// Expired возвращает результаты, созданные раньше before
	Expired(ctx context.Context, before time.Time) ([]*entity.Result, error)
}
