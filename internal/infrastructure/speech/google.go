package speech

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"golang.org/x/time/rate"

	"vision-speech/internal/domain/entity"
	"vision-speech/internal/domain/port"
	"vision-speech/internal/infrastructure/inference"
)

// DefaultGoogleURL эндпоинт Google Translate TTS, которым пользуется gTTS
const DefaultGoogleURL = "https://translate.google.com/translate_tts"

// userAgent без заголовка User-Agent Google отвечает 403
const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// GoogleEngine синтезирует MP3 напрямую через Google Translate TTS, без gtts-cli.
type GoogleEngine struct {
	url      string
	language string
	slow     bool

	client      *http.Client
	rateLimiter *rate.Limiter
	store       port.AudioStore
	logger      *log.Logger
}

// NewGoogleEngine создаёт движок; неподдерживаемый язык отклоняется сразу.
func NewGoogleEngine(cfg Config, store port.AudioStore, logger *log.Logger) (*GoogleEngine, error) {
	cfg = cfg.withDefaults()
	if err := ValidateLanguage(cfg.Language); err != nil {
		return nil, err
	}
	if store == nil {
		return nil, errors.New("audio store is not configured")
	}
	if logger == nil {
		logger = log.Default()
	}

	return &GoogleEngine{
		url:         cfg.URL,
		language:    cfg.Language,
		slow:        cfg.Slow,
		client:      &http.Client{Timeout: cfg.Timeout},
		rateLimiter: newLimiter(cfg.RequestsPerMinute),
		store:       store,
		logger:      logger.WithPrefix("speech"),
	}, nil
}

// Speak режет текст на куски, получает MP3 для каждого и склеивает их в один файл.
// При ошибке недописанный файл удаляется.
func (e *GoogleEngine) Speak(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", entity.ErrEmptyText
	}

	chunks := splitText(text, maxChunkRunes)

	_, path, err := e.store.NewPath()
	if err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create audio file: %w", err)
	}

	var written int64
	for i, chunk := range chunks {
		n, err := e.fetchChunk(ctx, f, chunk, i, len(chunks))
		if err != nil {
			f.Close()
			_ = e.store.Remove(path)
			return "", err
		}
		written += n
	}

	if err := f.Close(); err != nil {
		_ = e.store.Remove(path)
		return "", fmt.Errorf("failed to write audio file: %w", err)
	}

	e.logger.Debug("audio written", "chunks", len(chunks), "size", humanize.Bytes(uint64(written)), "path", path)
	return path, nil
}

// fetchChunk загружает MP3 для одного куска текста и дописывает его в w.
func (e *GoogleEngine) fetchChunk(ctx context.Context, w io.Writer, chunk string, idx, total int) (int64, error) {
	// Ограничиваем частоту, чтобы Google не заблокировал
	if err := e.rateLimiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("rate limit wait cancelled: %w", err)
	}

	speed := "1"
	if e.slow {
		speed = "0.3"
	}
	query := url.Values{
		"ie":       {"UTF-8"},
		"client":   {"tw-ob"},
		"tl":       {e.language},
		"q":        {chunk},
		"total":    {strconv.Itoa(total)},
		"idx":      {strconv.Itoa(idx)},
		"textlen":  {strconv.Itoa(utf8.RuneCountInString(chunk))},
		"ttsspeed": {speed},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.url+"?"+query.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create speech request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Referer", "https://translate.google.com/")

	resp, err := e.client.Do(req)
	if err != nil {
		return 0, &entity.BackendError{Service: "speech", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, inference.ResponseError("speech", resp)
	}

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return n, fmt.Errorf("failed to read speech chunk %d: %w", idx, err)
	}
	if n == 0 {
		return 0, &entity.BackendError{Service: "speech", Status: resp.StatusCode, Body: fmt.Sprintf("no audio for chunk %d", idx)}
	}
	return n, nil
}

func newLimiter(requestsPerMinute int) *rate.Limiter {
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), 1)
}

// Проверка реализации интерфейса
var _ port.Speaker = (*GoogleEngine)(nil)
