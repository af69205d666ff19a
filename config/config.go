package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr      string `env:"HTTP_ADDR" envDefault:":7860"`
	TelegramToken string `env:"TELEGRAM_TOKEN"`

	// Модели
	HFToken      string `env:"HF_TOKEN"`
	CaptionURL   string `env:"CAPTION_URL"`
	TranslateURL string `env:"TRANSLATE_URL"`
	SourceLang   string `env:"SOURCE_LANG" envDefault:"en_XX"`
	TargetLang   string `env:"TARGET_LANG" envDefault:"ar_AR"`

	// Синтез речи
	SpeechEngine            string `env:"SPEECH_ENGINE" envDefault:"google"`
	SpeechLang              string `env:"SPEECH_LANG" envDefault:"ar"`
	SpeechSlow              bool   `env:"SPEECH_SLOW" envDefault:"false"`
	SpeechURL               string `env:"SPEECH_URL"`
	SpeechBinary            string `env:"SPEECH_BINARY" envDefault:"gtts-cli"`
	SpeechRequestsPerMinute int    `env:"SPEECH_REQUESTS_PER_MINUTE" envDefault:"50"`

	// Хранилище и ограничения
	OutputDir      string        `env:"OUTPUT_DIR" envDefault:"./output"`
	AudioTTL       time.Duration `env:"AUDIO_TTL" envDefault:"1h"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"2m"`
	HTTPTimeout    time.Duration `env:"HTTP_TIMEOUT" envDefault:"60s"`
	MaxUploadBytes int64         `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"`
	CaptionMaxSide int           `env:"CAPTION_MAX_SIDE" envDefault:"384"`
	CaptionMinSide int           `env:"CAPTION_MIN_SIDE" envDefault:"1"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate проверяет значения, которые env не может проверить сам
func (c *Config) Validate() error {
	var errs []error

	switch c.SpeechEngine {
	case "google", "gtts-cli", "gtts":
	default:
		errs = append(errs, fmt.Errorf("SPEECH_ENGINE must be google or gtts-cli, got %q", c.SpeechEngine))
	}

	durations := map[string]time.Duration{
		"AUDIO_TTL":       c.AudioTTL,
		"REQUEST_TIMEOUT": c.RequestTimeout,
		"HTTP_TIMEOUT":    c.HTTPTimeout,
	}
	for name, d := range durations {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %s", name, d))
		}
	}

	if c.MaxUploadBytes <= 0 {
		errs = append(errs, fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", c.MaxUploadBytes))
	}
	if c.CaptionMaxSide <= 0 || c.CaptionMinSide <= 0 || c.CaptionMinSide > c.CaptionMaxSide {
		errs = append(errs, fmt.Errorf("invalid caption sides: min %d, max %d", c.CaptionMinSide, c.CaptionMaxSide))
	}
	if c.SpeechRequestsPerMinute <= 0 {
		errs = append(errs, fmt.Errorf("SPEECH_REQUESTS_PER_MINUTE must be positive, got %d", c.SpeechRequestsPerMinute))
	}
	if c.OutputDir == "" {
		errs = append(errs, errors.New("OUTPUT_DIR is required"))
	}

	return errors.Join(errs...)
}
