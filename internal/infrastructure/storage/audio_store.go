package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"vision-speech/internal/domain/entity"
	"vision-speech/internal/domain/port"
)

// FileAudioStore раздаёт уникальные имена MP3 внутри одного каталога.
// Каждый запуск получает свой файл, поэтому параллельные запуски не пересекаются.
type FileAudioStore struct {
	dir string
}

// NewFileAudioStore создаёт каталог, если его ещё нет
func NewFileAudioStore(dir string) (*FileAudioStore, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve output dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &FileAudioStore{dir: abs}, nil
}

// Dir возвращает абсолютный путь каталога
func (s *FileAudioStore) Dir() string {
	return s.dir
}

// NewPath возвращает <dir>/<uuid>.mp3
func (s *FileAudioStore) NewPath() (string, string, error) {
	id := uuid.NewString()
	return id, filepath.Join(s.dir, id+entity.AudioExt), nil
}

// Path принимает только имена вида <uuid>.mp3 и только существующие файлы
func (s *FileAudioStore) Path(name string) (string, error) {
	if !validName(name) {
		return "", entity.ErrAudioNotFound
	}

	path := filepath.Join(s.dir, name)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", entity.ErrAudioNotFound
		}
		return "", fmt.Errorf("stat audio: %w", err)
	}
	if !info.Mode().IsRegular() {
		return "", entity.ErrAudioNotFound
	}

	return path, nil
}

// Remove удаляет файл внутри каталога
func (s *FileAudioStore) Remove(path string) error {
	if filepath.Dir(path) != s.dir {
		return fmt.Errorf("refusing to remove %q outside of %q", path, s.dir)
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove audio: %w", err)
	}
	return nil
}

// Sweep удаляет аудиофайлы, изменённые раньше before. Чужие файлы в каталоге не трогает.
func (s *FileAudioStore) Sweep(before time.Time) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("read output dir: %w", err)
	}

	removed := 0
	for _, e := range entries {
		if e.IsDir() || !validName(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if !info.ModTime().Before(before) {
			continue
		}
		if err := s.Remove(filepath.Join(s.dir, e.Name())); err != nil {
			return removed, err
		}
		removed++
	}

	return removed, nil
}

func validName(name string) bool {
	if name != filepath.Base(name) || !strings.HasSuffix(name, entity.AudioExt) {
		return false
	}
	_, err := uuid.Parse(strings.TrimSuffix(name, entity.AudioExt))
	return err == nil
}

// Проверка реализации интерфейса
var _ port.AudioStore = (*FileAudioStore)(nil)
