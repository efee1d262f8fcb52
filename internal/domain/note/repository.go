package note

import (
	"context"
)

// Repository сохраняет коллекцию записей целиком при каждом изменении.
type Repository interface {
	Load(ctx context.Context) ([]Note, error)
	Save(ctx context.Context, notes []Note) error
}
