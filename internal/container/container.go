package container

import (
	"fmt"

	"github.com/charmbracelet/log"

	"vision-speech/config"
	app "vision-speech/internal/application"
	"vision-speech/internal/domain/entity"
	"vision-speech/internal/domain/port"
	"vision-speech/internal/infrastructure/caption"
	"vision-speech/internal/infrastructure/speech"
	"vision-speech/internal/infrastructure/storage"
	"vision-speech/internal/infrastructure/translate"
	"vision-speech/internal/infrastructure/vision"
)

type Container struct {
	Pipeline   *app.Pipeline
	Frontend   *app.Frontend
	Janitor    *app.Janitor
	AudioStore port.AudioStore
}

// Deps внешние зависимости, из которых собираются сервисы
type Deps struct {
	Decoder    port.ImageDecoder
	Captioner  port.Captioner
	Translator port.Translator
	Speaker    port.Speaker
	AudioStore port.AudioStore
	Results    port.ResultRepository
}

// New собирает сервисы приложения; конвейер создаётся один раз.
func New(deps Deps, cfg *config.Config, logger *log.Logger) *Container {
	pipeline := app.NewPipeline(deps.Captioner, deps.Translator, deps.Speaker, logger)
	frontend := app.NewFrontend(deps.Decoder, pipeline, deps.Results, logger)
	janitor := app.NewJanitor(deps.Results, deps.AudioStore, cfg.AudioTTL, logger)

	return &Container{
		Pipeline:   pipeline,
		Frontend:   frontend,
		Janitor:    janitor,
		AudioStore: deps.AudioStore,
	}
}

// Build создаёт клиенты моделей и хранилища по конфигурации.
func Build(cfg *config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	store, err := storage.NewFileAudioStore(cfg.OutputDir)
	if err != nil {
		return nil, err
	}

	preparer := vision.NewPreparer(cfg.CaptionMaxSide, cfg.CaptionMinSide)

	captioner := caption.NewClient(caption.Config{
		URL:     cfg.CaptionURL,
		Token:   cfg.HFToken,
		Timeout: cfg.HTTPTimeout,
	}, preparer, logger)

	translator, err := translate.NewClient(translate.Config{
		URL:     cfg.TranslateURL,
		Token:   cfg.HFToken,
		Timeout: cfg.HTTPTimeout,
		Pair:    entity.LanguagePair{Source: cfg.SourceLang, Target: cfg.TargetLang},
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("translator: %w", err)
	}

	speaker, err := speech.New(speech.Config{
		Engine:            cfg.SpeechEngine,
		Language:          cfg.SpeechLang,
		Slow:              cfg.SpeechSlow,
		URL:               cfg.SpeechURL,
		Binary:            cfg.SpeechBinary,
		RequestsPerMinute: cfg.SpeechRequestsPerMinute,
		Timeout:           cfg.HTTPTimeout,
	}, store, logger)
	if err != nil {
		return nil, fmt.Errorf("speaker: %w", err)
	}

	logger.Info("models configured",
		"translate", translator.Pair(),
		"speech", cfg.SpeechEngine,
		"output", store.Dir(),
	)

	return New(Deps{
		Decoder:    vision.NewDecoder(),
		Captioner:  captioner,
		Translator: translator,
		Speaker:    speaker,
		AudioStore: store,
		Results:    storage.NewMemoryResultRepository(),
	}, cfg, logger), nil
}
