package speech

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"golang.org/x/time/rate"

	"vision-speech/internal/domain/entity"
	"vision-speech/internal/domain/port"
)

// CLIEngine синтезирует речь через gtts-cli (pip install gtts).
type CLIEngine struct {
	binary   string
	language string
	slow     bool
	timeout  time.Duration

	rateLimiter *rate.Limiter
	store       port.AudioStore
	logger      *log.Logger
}

// NewCLIEngine проверяет, что gtts-cli доступен, и создаёт движок.
func NewCLIEngine(cfg Config, store port.AudioStore, logger *log.Logger) (*CLIEngine, error) {
	cfg = cfg.withDefaults()
	if err := ValidateLanguage(cfg.Language); err != nil {
		return nil, err
	}
	if store == nil {
		return nil, errors.New("audio store is not configured")
	}

	binary, err := exec.LookPath(cfg.Binary)
	if err != nil {
		return nil, fmt.Errorf("%s not found in PATH: %w (install with: pip install gtts)", cfg.Binary, err)
	}
	if logger == nil {
		logger = log.Default()
	}

	return &CLIEngine{
		binary:      binary,
		language:    cfg.Language,
		slow:        cfg.Slow,
		timeout:     cfg.Timeout,
		rateLimiter: newLimiter(cfg.RequestsPerMinute),
		store:       store,
		logger:      logger.WithPrefix("speech"),
	}, nil
}

// Speak запускает gtts-cli с записью прямо в новый файл хранилища.
func (e *CLIEngine) Speak(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", entity.ErrEmptyText
	}

	if err := e.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait cancelled: %w", err)
	}

	_, path, err := e.store.NewPath()
	if err != nil {
		return "", err
	}

	// текст после "--": ведущий "-" не должен читаться как флаг
	args := []string{"-l", e.language, "-o", path}
	if e.slow {
		args = append(args, "--slow")
	}
	args = append(args, "--", text)

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, e.binary, args...)
	cmd.Stdin = strings.NewReader("")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		_ = e.store.Remove(path)
		if ctx.Err() != nil {
			return "", fmt.Errorf("gTTS synthesis timeout after %s: %w", e.timeout, ctx.Err())
		}
		return "", &entity.BackendError{
			Service: "speech",
			Body:    strings.TrimSpace(stderr.String()),
			Err:     fmt.Errorf("gtts-cli failed: %w", err),
		}
	}

	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		_ = e.store.Remove(path)
		return "", fmt.Errorf("gtts-cli produced no MP3 output, stderr: %s", stderr.String())
	}

	e.logger.Debug("audio written", "size", humanize.Bytes(uint64(info.Size())), "path", path)
	return path, nil
}

// Проверка реализации интерфейса
var _ port.Speaker = (*CLIEngine)(nil)
