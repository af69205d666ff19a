package entity

import (
	"path/filepath"
	"strings"
	"time"
)

// AudioExt расширение синтезированных файлов
const AudioExt = ".mp3"

// Result хранит три артефакта одного запуска конвейера.
type Result struct {
	ID          string        // совпадает с именем аудиофайла без расширения
	Caption     string        // подпись на английском
	Translation string        // перевод на арабский
	AudioPath   string        // путь к MP3
	CreatedAt   time.Time     // время завершения
	Elapsed     time.Duration // длительность всех трёх стадий
}

// NewResult собирает результат; ID берётся из имени аудиофайла.
func NewResult(caption, translation, audioPath string, createdAt time.Time, elapsed time.Duration) *Result {
	return &Result{
		ID:          strings.TrimSuffix(filepath.Base(audioPath), AudioExt),
		Caption:     caption,
		Translation: translation,
		AudioPath:   audioPath,
		CreatedAt:   createdAt,
		Elapsed:     elapsed,
	}
}

// AudioName возвращает имя аудиофайла без каталога
func (r *Result) AudioName() string {
	return filepath.Base(r.AudioPath)
}

// ExpiredAt сообщает, старше ли результат указанного момента
func (r *Result) ExpiredAt(before time.Time) bool {
	return r.CreatedAt.Before(before)
}
