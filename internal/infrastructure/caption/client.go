// Package caption обращается к модели BLIP, которая описывает изображение одной фразой.
package caption

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"vision-speech/internal/domain/entity"
	"vision-speech/internal/domain/port"
	"vision-speech/internal/infrastructure/inference"
)

// DefaultURL модель Salesforce/blip-image-captioning-base в Hugging Face Inference API
const DefaultURL = "https://api-inference.huggingface.co/models/Salesforce/blip-image-captioning-base"

// Config параметры клиента подписи
type Config struct {
	URL     string
	Token   string
	Timeout time.Duration
}

// Client реализует port.Captioner поверх HTTP.
type Client struct {
	api      *inference.Client
	preparer port.ImagePreparer
	logger   *log.Logger
}

type captionResponse []struct {
	GeneratedText string `json:"generated_text"`
}

// NewClient создаёт клиент подписи.
func NewClient(cfg Config, preparer port.ImagePreparer, logger *log.Logger) *Client {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		api:      inference.NewClient("caption", cfg.URL, cfg.Token, cfg.Timeout),
		preparer: preparer,
		logger:   logger.WithPrefix("caption"),
	}
}

// Caption отправляет подготовленный JPEG и возвращает сгенерированную подпись.
func (c *Client) Caption(ctx context.Context, img entity.Image) (string, error) {
	if err := img.Validate(); err != nil {
		return "", err
	}

	payload, err := c.preparer.Prepare(img)
	if err != nil {
		return "", err
	}
	c.logger.Debug("sending image", "format", img.Format, "width", img.Width(), "height", img.Height(), "payload", humanize.Bytes(uint64(len(payload))))

	var out captionResponse
	if err := c.api.Post(ctx, "image/jpeg", bytes.NewReader(payload), &out); err != nil {
		return "", err
	}

	if len(out) == 0 {
		return "", entity.ErrEmptyCaption
	}
	caption := strings.TrimSpace(out[0].GeneratedText)
	if caption == "" {
		return "", entity.ErrEmptyCaption
	}

	return caption, nil
}

// Проверка реализации интерфейса
var _ port.Captioner = (*Client)(nil)
