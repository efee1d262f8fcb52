package storage

import (
	"context"
	"errors"
)

// Ключи, под которыми лежат сущности дневника.
const (
	KeyUser      = "diaryUser"
	KeyNotes     = "diaryNotes"
	KeyReminders = "diaryReminders"
)

var ErrNotFound = errors.New("key not found")

// Storage — постоянное хранилище ключ–значение. Значение перезаписывается целиком.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Close() error
}
