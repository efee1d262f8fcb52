package reminder

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	Load(ctx context.Context) error
	Create(ctx context.Context, draft Draft) (Reminder, error)
	Delete(ctx context.Context, id string) (bool, error)
	Find(part string) (Reminder, error)
	List() []Reminder
	Len() int
	Replace(ctx context.Context, reminders []Reminder) error
}

type Option func(*Service)

func WithIDGenerator(newID func() (string, error)) Option {
	return func(s *Service) {
		s.newID = newID
	}
}

// Service держит напоминания в памяти; изменять можно только созданием и удалением.
type Service struct {
	repo  Repository
	log   *slog.Logger
	newID func() (string, error)

	mu        sync.RWMutex
	reminders []Reminder
}

func NewService(repo Repository, log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		repo:  repo,
		log:   log,
		newID: newUUID,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func newUUID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (s *Service) Load(ctx context.Context) error {
	reminders, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load reminders: %w", err)
	}

	s.mu.Lock()
	s.reminders = reminders
	s.mu.Unlock()

	s.log.Debug("reminders loaded", "count", len(reminders))
	return nil
}

func validate(d Draft) error {
	if d.Date.IsZero() {
		return fmt.Errorf("%w: date is not selected", ErrValidation)
	}
	if d.Time == "" {
		return fmt.Errorf("%w: time is empty", ErrValidation)
	}
	if _, err := time.Parse(TimeLayout, d.Time); err != nil {
		return fmt.Errorf("%w: time %q is not HH:MM", ErrValidation, d.Time)
	}
	if strings.TrimSpace(d.Description) == "" {
		return fmt.Errorf("%w: description is empty", ErrValidation)
	}
	return nil
}

// normalizeTime приводит "9:05" к "09:05". Время уже проверено validate.
func normalizeTime(v string) string {
	t, err := time.Parse(TimeLayout, v)
	if err != nil {
		return v
	}
	return t.Format(TimeLayout)
}

func (s *Service) Create(ctx context.Context, draft Draft) (Reminder, error) {
	if err := validate(draft); err != nil {
		return Reminder{}, err
	}

	id, err := s.newID()
	if err != nil {
		return Reminder{}, fmt.Errorf("generate reminder id: %w", err)
	}

	r := Reminder{
		ID:          id,
		Date:        StartOfDay(draft.Date),
		Time:        normalizeTime(draft.Time),
		Description: draft.Description,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := append(slices.Clip(s.reminders), r)
	if err := s.persist(ctx, next); err != nil {
		return Reminder{}, err
	}

	s.log.Debug("reminder created", "id", r.ID, "date", r.Date.Format(DateLayout))
	return r, nil
}

// Delete удаляет напоминание, если оно есть. Повторное удаление не ошибка.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := slices.DeleteFunc(slices.Clone(s.reminders), func(r Reminder) bool {
		return r.ID == id
	})
	removed := len(next) != len(s.reminders)

	if err := s.persist(ctx, next); err != nil {
		return false, err
	}

	s.log.Debug("reminder delete", "id", id, "removed", removed)
	return removed, nil
}

// Find ищет напоминание по id, его однозначному началу или концу.
func (s *Service) Find(part string) (Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found []Reminder
	for _, r := range s.reminders {
		if r.ID == part {
			return r, nil
		}
		if part != "" && (strings.HasPrefix(r.ID, part) || strings.HasSuffix(r.ID, part)) {
			found = append(found, r)
		}
	}

	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return Reminder{}, fmt.Errorf("%w: %s", ErrNotFound, part)
	default:
		return Reminder{}, fmt.Errorf("ambiguous reminder id part %q matches %d reminders", part, len(found))
	}
}

func (s *Service) List() []Reminder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Reminder, len(s.reminders))
	copy(out, s.reminders)
	return out
}

func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reminders)
}

func (s *Service) Replace(ctx context.Context, reminders []Reminder) error {
	next := make([]Reminder, len(reminders))
	copy(next, reminders)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(ctx, next); err != nil {
		return err
	}

	s.log.Debug("reminders replaced", "count", len(next))
	return nil
}

func (s *Service) persist(ctx context.Context, next []Reminder) error {
	if next == nil {
		next = []Reminder{}
	}
	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("save reminders: %w", err)
	}
	s.reminders = next
	return nil
}
