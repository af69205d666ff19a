package app

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"vision-speech/internal/domain/port"
)

// Janitor удаляет устаревшие результаты и их аудиофайлы.
type Janitor struct {
	results port.ResultRepository
	store   port.AudioStore
	ttl     time.Duration
	logger  *log.Logger
	now     func() time.Time
}

// NewJanitor создаёт уборщик с временем жизни ttl.
func NewJanitor(results port.ResultRepository, store port.AudioStore, ttl time.Duration, logger *log.Logger) *Janitor {
	if logger == nil {
		logger = log.Default()
	}
	return &Janitor{
		results: results,
		store:   store,
		ttl:     ttl,
		logger:  logger.WithPrefix("janitor"),
		now:     time.Now,
	}
}

// Run запускает уборку каждые ttl/2 до отмены контекста.
func (j *Janitor) Run(ctx context.Context) {
	interval := j.ttl / 2
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := j.Sweep(ctx); err != nil {
				j.logger.Error("sweep failed", "err", err)
			}
		}
	}
}

// Sweep выполняет один проход: сначала записи, затем файлы без записей.
// Возвращает количество удалённых файлов.
func (j *Janitor) Sweep(ctx context.Context) (int, error) {
	before := j.now().Add(-j.ttl)

	expired, err := j.results.Expired(ctx, before)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, result := range expired {
		if err := j.store.Remove(result.AudioPath); err != nil {
			j.logger.Warn("remove audio failed", "id", result.ID, "err", err)
		} else {
			removed++
		}
		if err := j.results.Delete(ctx, result.ID); err != nil {
			return removed, err
		}
	}

	orphans, err := j.store.Sweep(before)
	if err != nil {
		return removed, err
	}

	if len(expired) > 0 || orphans > 0 {
		j.logger.Info("expired results removed", "results", len(expired), "orphan_files", orphans)
	}
	return removed + orphans, nil
}
