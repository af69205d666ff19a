package app

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"vision-speech/internal/domain/entity"
	"vision-speech/internal/domain/port"
)

// Pipeline последовательно вызывает модели: подпись → перевод → синтез речи.
// Создаётся один раз и разделяется всеми обработчиками запросов.
type Pipeline struct {
	captioner  port.Captioner
	translator port.Translator
	speaker    port.Speaker
	logger     *log.Logger
	now        func() time.Time
}

// NewPipeline создаёт конвейер из трёх моделей.
func NewPipeline(captioner port.Captioner, translator port.Translator, speaker port.Speaker, logger *log.Logger) *Pipeline {
	if logger == nil {
		logger = log.Default()
	}
	return &Pipeline{
		captioner:  captioner,
		translator: translator,
		speaker:    speaker,
		logger:     logger.WithPrefix("pipeline"),
		now:        time.Now,
	}
}

// Process возвращает подпись, перевод и путь к аудио.
// Ошибка любой стадии возвращается без изменений, следующие стадии не вызываются.
func (p *Pipeline) Process(ctx context.Context, img entity.Image) (*entity.Result, error) {
	if p.captioner == nil || p.translator == nil || p.speaker == nil {
		return nil, errors.New("pipeline is not configured")
	}

	started := p.now()

	caption, err := p.captioner.Caption(ctx, img)
	if err != nil {
		p.logger.Error("caption failed", "err", err)
		return nil, err
	}
	p.logger.Debug("caption ready", "caption", caption, "took", p.now().Sub(started))

	stage := p.now()
	translation, err := p.translator.Translate(ctx, caption)
	if err != nil {
		p.logger.Error("translation failed", "err", err)
		return nil, err
	}
	p.logger.Debug("translation ready", "translation", translation, "took", p.now().Sub(stage))

	stage = p.now()
	audioPath, err := p.speaker.Speak(ctx, translation)
	if err != nil {
		p.logger.Error("speech failed", "err", err)
		return nil, err
	}
	p.logger.Debug("speech ready", "path", audioPath, "took", p.now().Sub(stage))

	finished := p.now()
	result := entity.NewResult(caption, translation, audioPath, finished, finished.Sub(started))
	p.logger.Info("image processed", "id", result.ID, "elapsed", result.Elapsed)

	return result, nil
}
