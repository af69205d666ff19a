package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyImage входные данные пусты или изображение не содержит пикселей
	ErrEmptyImage = errors.New("empty image")

	// ErrUnsupportedImage формат не распознан или файл повреждён
	ErrUnsupportedImage = errors.New("unsupported or corrupt image")

	// ErrImageTooSmall изображение меньше минимального размера для модели
	ErrImageTooSmall = errors.New("image is too small")

	// ErrImageTooLarge растр превышает допустимое число пикселей
	ErrImageTooLarge = errors.New("image dimensions are too large")

	// ErrEmptyText на вход перевода или синтеза пришла пустая строка
	ErrEmptyText = errors.New("text cannot be empty")

	// ErrEmptyCaption модель подписи вернула пустой результат
	ErrEmptyCaption = errors.New("captioning model returned an empty caption")

	// ErrEmptyTranslation модель перевода вернула пустой результат
	ErrEmptyTranslation = errors.New("translation model returned an empty translation")

	// ErrUnsupportedLanguage код языка не поддерживается бэкендом
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrResultNotFound результат с таким ID не найден или уже удалён
	ErrResultNotFound = errors.New("result not found")

	// ErrAudioNotFound аудиофайл не найден или имя файла некорректно
	ErrAudioNotFound = errors.New("audio file not found")
)

// BackendError ошибка обращения к внешней модели.
// Status равен нулю, если ответ не был получен вовсе.
type BackendError struct {
	Service string // caption, translate, speech
	Status  int    // HTTP-статус ответа
	Body    string // начало тела ответа
	Err     error  // транспортная ошибка
}

func (e *BackendError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s backend unavailable: %v", e.Service, e.Err)
	}
	return fmt.Sprintf("%s backend error %d: %s", e.Service, e.Status, e.Body)
}

// Unwrap возвращает транспортную ошибку
func (e *BackendError) Unwrap() error {
	return e.Err
}

// IsBackendError сообщает, произошла ли ошибка на стороне внешней модели.
func IsBackendError(err error) bool {
	var be *BackendError
	return errors.As(err, &be)
}
