package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"diarykeeper/internal/infrastructure/migration"
	"diarykeeper/internal/infrastructure/storage"
)

const table = "kv"

type Storage struct {
	db  *sql.DB
	now func() time.Time
}

// New применяет миграции и открывает файл базы по пути path.
func New(path string, engine migration.MigrationEngine) (*Storage, error) {
	if err := migration.NewMigration(path, engine).Up(); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия базы данных: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ошибка подключения к базе данных: %w", err)
	}

	return &Storage{db: db, now: time.Now}, nil
}

func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	query, args, err := squirrel.
		Select("value").
		From(table).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build query: %w", err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", storage.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get %s: %w", key, err)
	}

	return value, nil
}

func (s *Storage) Put(ctx context.Context, key, value string) error {
	query, args, err := squirrel.
		Insert(table).
		Columns("key", "value", "updated_at").
		Values(key, value, s.now().UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to put %s: %w", key, err)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}
