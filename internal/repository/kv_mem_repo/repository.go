package kv_mem_repo

import (
	"context"
	"sync"

	"moodcasino/internal/repository"
)

// Реализация key-value хранилища в памяти.
// Используется в тестах и как фолбек при запуске без базы:
// состояние живёт только в рамках процесса
type repo struct {
	mtx    sync.RWMutex
	values map[string]string
}

func NewStateRepository() repository.StateRepository {
	return &repo{
		values: make(map[string]string),
	}
}

func (r *repo) Get(_ context.Context, key string) (string, bool, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	value, found := r.values[key]
	return value, found, nil
}

func (r *repo) Set(_ context.Context, key string, value string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.values[key] = value
	return nil
}
