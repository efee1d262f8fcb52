// Package memory — хранилище в памяти процесса. Используется в тестах
// и как запасной вариант, если файл SQLite открыть не удалось.
package memory

import (
	"context"
	"sync"

	"diarykeeper/internal/infrastructure/storage"
)

type Storage struct {
	mu     sync.RWMutex
	values map[string]string
}

func New() *Storage {
	return &Storage{values: make(map[string]string)}
}

func (s *Storage) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return "", storage.ErrNotFound
	}
	return v, nil
}

func (s *Storage) Put(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

func (s *Storage) Close() error {
	return nil
}
