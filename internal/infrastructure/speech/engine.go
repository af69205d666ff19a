// Package speech превращает текст в MP3 через Google Translate TTS.
package speech

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"vision-speech/internal/domain/port"
)

// Имена движков
const (
	EngineGoogle = "google"
	EngineCLI    = "gtts-cli"
)

// ErrInvalidEngine указан неизвестный движок
var ErrInvalidEngine = errors.New("invalid speech engine")

// Config общие параметры движков синтеза
type Config struct {
	Engine            string        // google или gtts-cli
	Language          string        // код языка gTTS, по умолчанию ar
	Slow              bool          // медленная речь
	URL               string        // эндпоинт для движка google
	Binary            string        // путь к gtts-cli
	RequestsPerMinute int           // ограничение частоты запросов
	Timeout           time.Duration // таймаут одного запроса
}

func (c Config) withDefaults() Config {
	if c.Engine == "" {
		c.Engine = EngineGoogle
	}
	if c.Language == "" {
		c.Language = "ar"
	}
	if c.URL == "" {
		c.URL = DefaultGoogleURL
	}
	if c.Binary == "" {
		c.Binary = "gtts-cli"
	}
	if c.RequestsPerMinute <= 0 {
		c.RequestsPerMinute = 50
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	return c
}

// New выбирает движок по имени.
func New(cfg Config, store port.AudioStore, logger *log.Logger) (port.Speaker, error) {
	cfg = cfg.withDefaults()
	switch cfg.Engine {
	case EngineGoogle:
		return NewGoogleEngine(cfg, store, logger)
	case EngineCLI, "gtts":
		return NewCLIEngine(cfg, store, logger)
	default:
		return nil, fmt.Errorf("%w: %s (supported: %s, %s)", ErrInvalidEngine, cfg.Engine, EngineGoogle, EngineCLI)
	}
}
