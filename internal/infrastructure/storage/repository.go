package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"diarykeeper/internal/domain/note"
	"diarykeeper/internal/domain/reminder"
	"diarykeeper/internal/domain/user"
)

// document хранит одно значение типа T в JSON под ключом key.
type document[T any] struct {
	store Storage
	key   string
}

func (d document[T]) load(ctx context.Context) (T, bool, error) {
	var v T

	raw, err := d.store.Get(ctx, d.key)
	if errors.Is(err, ErrNotFound) {
		return v, false, nil
	}
	if err != nil {
		return v, false, fmt.Errorf("get %s: %w", d.key, err)
	}

	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return v, false, fmt.Errorf("decode %s: %w", d.key, err)
	}
	return v, true, nil
}

func (d document[T]) save(ctx context.Context, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", d.key, err)
	}
	if err := d.store.Put(ctx, d.key, string(raw)); err != nil {
		return fmt.Errorf("put %s: %w", d.key, err)
	}
	return nil
}

type UserRepository struct {
	doc document[*user.Profile]
}

func NewUserRepository(s Storage) *UserRepository {
	return &UserRepository{doc: document[*user.Profile]{store: s, key: KeyUser}}
}

func (r *UserRepository) Load(ctx context.Context) (*user.Profile, error) {
	p, _, err := r.doc.load(ctx)
	return p, err
}

func (r *UserRepository) Save(ctx context.Context, profile user.Profile) error {
	return r.doc.save(ctx, &profile)
}

type NoteRepository struct {
	doc document[[]note.Note]
}

func NewNoteRepository(s Storage) *NoteRepository {
	return &NoteRepository{doc: document[[]note.Note]{store: s, key: KeyNotes}}
}

func (r *NoteRepository) Load(ctx context.Context) ([]note.Note, error) {
	notes, _, err := r.doc.load(ctx)
	return notes, err
}

func (r *NoteRepository) Save(ctx context.Context, notes []note.Note) error {
	return r.doc.save(ctx, notes)
}

type ReminderRepository struct {
	doc document[[]reminder.Reminder]
}

func NewReminderRepository(s Storage) *ReminderRepository {
	return &ReminderRepository{doc: document[[]reminder.Reminder]{store: s, key: KeyReminders}}
}

func (r *ReminderRepository) Load(ctx context.Context) ([]reminder.Reminder, error) {
	reminders, _, err := r.doc.load(ctx)
	return reminders, err
}

func (r *ReminderRepository) Save(ctx context.Context, reminders []reminder.Reminder) error {
	return r.doc.save(ctx, reminders)
}
