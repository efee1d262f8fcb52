package note

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
	Create(ctx context.Context, draft Draft) (Note, error)
	Update(ctx context.Context, id string, draft Draft) (Note, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Get(id string) (Note, error)
	Find(part string) (Note, error)
	List() []Note
	Len() int
	Replace(ctx context.Context, notes []Note) error
}

type Option func(*Service)

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithIDGenerator подменяет генератор идентификаторов.
func WithIDGenerator(newID func() (string, error)) Option {
	return func(s *Service) {
		s.newID = newID
	}
}

func WithTitlePolicy(policy TitlePolicy) Option {
	return func(s *Service) {
		s.policy = policy
	}
}

// Service держит коллекцию записей в памяти и сбрасывает её в репозиторий
// после каждого изменения.
type Service struct {
	repo   Repository
	log    *slog.Logger
	policy TitlePolicy
	now    func() time.Time
	newID  func() (string, error)

	mu    sync.RWMutex
	notes []Note
}

func NewService(repo Repository, log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		log:    log,
		policy: TitleExplicit,
		now:    time.Now,
		newID:  newUUID,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// newUUID возвращает UUIDv7: идентификатор упорядочен по времени создания.
func newUUID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (s *Service) Load(ctx context.Context) error {
	notes, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load notes: %w", err)
	}

	s.mu.Lock()
	s.notes = notes
	s.mu.Unlock()

	s.log.Debug("notes loaded", "count", len(notes))
	return nil
}

func (s *Service) Create(ctx context.Context, draft Draft) (Note, error) {
	title, err := s.policy.apply(draft)
	if err != nil {
		return Note{}, err
	}

	id, err := s.newID()
	if err != nil {
		return Note{}, fmt.Errorf("generate note id: %w", err)
	}

	n := Note{
		ID:      id,
		Date:    s.now(),
		Title:   title,
		Content: draft.Content,
		Image:   draft.Image,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(id) >= 0 {
		return Note{}, fmt.Errorf("generate note id: duplicate %s", id)
	}

	next := append(slices.Clip(s.notes), n)
	if err := s.persist(ctx, next); err != nil {
		return Note{}, err
	}

	s.log.Debug("note created", "id", n.ID)
	return n, nil
}

// Update заменяет заголовок, текст и картинку записи, сохраняя id и дату.
// Неизвестный id или пустые поля молча игнорируются: applied == false.
func (s *Service) Update(ctx context.Context, id string, draft Draft) (Note, bool, error) {
	title, err := s.policy.apply(draft)
	if err != nil {
		s.log.Debug("note update ignored", "id", id, "reason", err)
		return Note{}, false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		s.log.Debug("note update ignored", "id", id, "reason", ErrNotFound)
		return Note{}, false, nil
	}

	next := slices.Clone(s.notes)
	next[i].Title = title
	next[i].Content = draft.Content
	next[i].Image = draft.Image

	if err := s.persist(ctx, next); err != nil {
		return Note{}, false, err
	}

	s.log.Debug("note updated", "id", id)
	return next[i], true, nil
}

// Delete удаляет запись, если она есть. Повторное удаление не ошибка.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := slices.DeleteFunc(slices.Clone(s.notes), func(n Note) bool {
		return n.ID == id
	})
	removed := len(next) != len(s.notes)

	if err := s.persist(ctx, next); err != nil {
		return false, err
	}

	s.log.Debug("note delete", "id", id, "removed", removed)
	return removed, nil
}

func (s *Service) Get(id string) (Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.notes[i], nil
	}
	return Note{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Find ищет запись по id, его однозначному началу или концу.
func (s *Service) Find(part string) (Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found []Note
	for _, n := range s.notes {
		if n.ID == part {
			return n, nil
		}
		if part != "" && (strings.HasPrefix(n.ID, part) || strings.HasSuffix(n.ID, part)) {
			found = append(found, n)
		}
	}

	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return Note{}, fmt.Errorf("%w: %s", ErrNotFound, part)
	default:
		return Note{}, fmt.Errorf("ambiguous note id part %q matches %d notes", part, len(found))
	}
}

// List возвращает копию коллекции в порядке добавления.
func (s *Service) List() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Note, len(s.notes))
	copy(out, s.notes)
	return out
}

func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}

// Replace целиком заменяет коллекцию (импорт резервной копии).
func (s *Service) Replace(ctx context.Context, notes []Note) error {
	next := make([]Note, len(notes))
	copy(next, notes)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(ctx, next); err != nil {
		return err
	}

	s.log.Debug("notes replaced", "count", len(next))
	return nil
}

// persist сохраняет next и только после успеха делает его текущим состоянием.
func (s *Service) persist(ctx context.Context, next []Note) error {
	if next == nil {
		next = []Note{}
	}
	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("save notes: %w", err)
	}
	s.notes = next
	return nil
}

func (s *Service) indexOf(id string) int {
	return slices.IndexFunc(s.notes, func(n Note) bool {
		return n.ID == id
	})
}
