package app

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"vision-speech/internal/domain/entity"
	"vision-speech/internal/domain/port"
)

// Frontend связывает внешние интерфейсы (веб, Telegram, CLI) с общим конвейером.
type Frontend struct {
	decoder  port.ImageDecoder
	pipeline *Pipeline
	results  port.ResultRepository
	logger   *log.Logger
}

// NewFrontend создаёт адаптер поверх уже собранного конвейера.
func NewFrontend(decoder port.ImageDecoder, pipeline *Pipeline, results port.ResultRepository, logger *log.Logger) *Frontend {
	if logger == nil {
		logger = log.Default()
	}
	return &Frontend{
		decoder:  decoder,
		pipeline: pipeline,
		results:  results,
		logger:   logger.WithPrefix("frontend"),
	}
}

// ProcessFile читает изображение с диска и прогоняет его через конвейер.
func (f *Frontend) ProcessFile(ctx context.Context, path string) (*entity.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	return f.ProcessBytes(ctx, data)
}

// ProcessBytes декодирует изображение, запускает конвейер и сохраняет результат.
func (f *Frontend) ProcessBytes(ctx context.Context, data []byte) (*entity.Result, error) {
	img, err := f.decoder.Decode(data)
	if err != nil {
		f.logger.Warn("decode failed", "size", humanize.Bytes(uint64(len(data))), "err", err)
		return nil, err
	}
	f.logger.Debug("image decoded", "format", img.Format, "width", img.Width(), "height", img.Height(), "size", humanize.Bytes(uint64(img.Size)))

	result, err := f.pipeline.Process(ctx, img)
	if err != nil {
		return nil, err
	}

	if err := f.results.Save(ctx, result); err != nil {
		return nil, fmt.Errorf("save result: %w", err)
	}
	return result, nil
}

// Result возвращает сохранённый результат по ID
func (f *Frontend) Result(ctx context.Context, id string) (*entity.Result, error) {
	return f.results.Get(ctx, id)
}
