package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"vision-speech/internal/domain/entity"
	"vision-speech/internal/domain/port"
)

// MemoryResultRepository in-memory хранилище результатов
type MemoryResultRepository struct {
	mu      sync.RWMutex
	results map[string]*entity.Result
}

// NewMemoryResultRepository создаёт новое in-memory хранилище
func NewMemoryResultRepository() *MemoryResultRepository {
	return &MemoryResultRepository{
		results: make(map[string]*entity.Result),
	}
}

// Get возвращает копию результата по ID
func (r *MemoryResultRepository) Get(ctx context.Context, id string) (*entity.Result, error) {
	r.mu.RLock()
	result, exists := r.results[id]
	r.mu.RUnlock()

	if !exists {
		return nil, entity.ErrResultNotFound
	}

	copied := *result
	return &copied, nil
}

// Save сохраняет результат
func (r *MemoryResultRepository) Save(ctx context.Context, result *entity.Result) error {
	copied := *result

	r.mu.Lock()
	r.results[result.ID] = &copied
	r.mu.Unlock()

	return nil
}

// Delete удаляет результат; отсутствие записи ошибкой не считается
func (r *MemoryResultRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	delete(r.results, id)
	r.mu.Unlock()

	return nil
}

// Expired возвращает результаты старше before, от самых старых к новым
func (r *MemoryResultRepository) Expired(ctx context.Context, before time.Time) ([]*entity.Result, error) {
	r.mu.RLock()
	expired := make([]*entity.Result, 0)
	for _, result := range r.results {
		if result.ExpiredAt(before) {
			copied := *result
			expired = append(expired, &copied)
		}
	}
	r.mu.RUnlock()

	sort.Slice(expired, func(i, j int) bool {
		return expired[i].CreatedAt.Before(expired[j].CreatedAt)
	})

	return expired, nil
}

// Проверка реализации интерфейса
var _ port.ResultRepository = (*MemoryResultRepository)(nil)
