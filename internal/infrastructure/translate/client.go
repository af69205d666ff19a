// Package translate обращается к многоязычной модели mBART-50.
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"vision-speech/internal/domain/entity"
	"vision-speech/internal/domain/port"
	"vision-speech/internal/infrastructure/inference"
)

// DefaultURL модель facebook/mbart-large-50-many-to-many-mmt
const DefaultURL = "https://api-inference.huggingface.co/models/facebook/mbart-large-50-many-to-many-mmt"

// Config параметры клиента перевода
type Config struct {
	URL     string
	Token   string
	Timeout time.Duration
	Pair    entity.LanguagePair
}

// Client реализует port.Translator; пара языков фиксируется при создании.
type Client struct {
	api    *inference.Client
	pair   entity.LanguagePair
	logger *log.Logger
}

type translateRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters translateParameters `json:"parameters"`
}

type translateParameters struct {
	SrcLang string `json:"src_lang"`
	TgtLang string `json:"tgt_lang"`
}

type translateResponse []struct {
	TranslationText string `json:"translation_text"`
}

// NewClient создаёт клиент перевода.
func NewClient(cfg Config, logger *log.Logger) (*Client, error) {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.Pair == (entity.LanguagePair{}) {
		cfg.Pair = entity.DefaultLanguagePair
	}
	if err := cfg.Pair.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		api:    inference.NewClient("translate", cfg.URL, cfg.Token, cfg.Timeout),
		pair:   cfg.Pair,
		logger: logger.WithPrefix("translate"),
	}, nil
}

// Pair возвращает пару языков клиента
func (c *Client) Pair() entity.LanguagePair {
	return c.pair
}

// Translate переводит текст с исходного языка на целевой.
func (c *Client) Translate(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", entity.ErrEmptyText
	}

	payload, err := json.Marshal(translateRequest{
		Inputs: text,
		Parameters: translateParameters{
			SrcLang: c.pair.Source,
			TgtLang: c.pair.Target,
		},
	})
	if err != nil {
		return "", fmt.Errorf("encode translate request: %w", err)
	}
	c.logger.Debug("translating", "pair", c.pair, "chars", len([]rune(text)))

	var out translateResponse
	if err := c.api.Post(ctx, "application/json", bytes.NewReader(payload), &out); err != nil {
		return "", err
	}

	if len(out) == 0 {
		return "", entity.ErrEmptyTranslation
	}
	translated := strings.TrimSpace(out[0].TranslationText)
	if translated == "" {
		return "", entity.ErrEmptyTranslation
	}

	return translated, nil
}

// Проверка реализации интерфейса
var _ port.Translator = (*Client)(nil)
