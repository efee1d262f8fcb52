package reminder

import (
	"context"
)

// Repository сохраняет коллекцию напоминаний целиком при каждом изменении.
type Repository interface {
	Load(ctx context.Context) ([]Reminder, error)
	Save(ctx context.Context, reminders []Reminder) error
}
