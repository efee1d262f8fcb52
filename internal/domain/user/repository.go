package user

import (
	"context"
)

// Repository хранит профиль целиком под одним ключом.
// Load возвращает nil без ошибки, если профиль ещё не создан.
type Repository interface {
	Load(ctx context.Context) (*Profile, error)
	Save(ctx context.Context, profile Profile) error
}
