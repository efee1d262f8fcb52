package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/exp/slog"

	"diarykeeper/internal/domain/note"
	"diarykeeper/internal/domain/reminder"
	"diarykeeper/internal/domain/user"
)

// ProfileSource отдаёт профиль для включения в экспорт.
type ProfileSource interface {
	Profile() (user.Profile, bool)
}

type Servicer interface {
	Export(w io.Writer) error
	Import(ctx context.Context, r io.Reader) (Result, error)
}

type Service struct {
	notes     note.Servicer
	reminders reminder.Servicer
	profile   ProfileSource
	log       *slog.Logger
}

func NewService(notes note.Servicer, reminders reminder.Servicer, profile ProfileSource, log *slog.Logger) *Service {
	return &Service{
		notes:     notes,
		reminders: reminders,
		profile:   profile,
		log:       log,
	}
}

// Export пишет документ с отступом в два пробела.
func (s *Service) Export(w io.Writer) error {
	doc := Document{
		Notes:     s.notes.List(),
		Reminders: s.reminders.List(),
	}
	if doc.Notes == nil {
		doc.Notes = []note.Note{}
	}
	if doc.Reminders == nil {
		doc.Reminders = []reminder.Reminder{}
	}
	if p, ok := s.profile.Profile(); ok {
		doc.User = &p
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode backup: %w", err)
	}

	s.log.Debug("backup exported", "notes", len(doc.Notes), "reminders", len(doc.Reminders))
	return nil
}

// Import заменяет коллекции, присутствующие в документе. Поле user игнорируется.
// Оба поля декодируются до того, как что-либо будет заменено.
func (s *Service) Import(ctx context.Context, r io.Reader) (Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Result{}, fmt.Errorf("read backup: %w", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return Result{}, malformed(err)
	}

	var (
		res       Result
		notes     []note.Note
		reminders []reminder.Reminder
	)

	if raw, ok := present(fields, "notes"); ok {
		if err := json.Unmarshal(raw, &notes); err != nil {
			return Result{}, malformed(fmt.Errorf("notes: %w", err))
		}
		res.NotesReplaced = true
		res.NotesImported = len(notes)
	}
	if raw, ok := present(fields, "reminders"); ok {
		if err := json.Unmarshal(raw, &reminders); err != nil {
			return Result{}, malformed(fmt.Errorf("reminders: %w", err))
		}
		res.RemindersReplaced = true
		res.RemindersImported = len(reminders)
	}

	if res.NotesReplaced {
		if err := s.notes.Replace(ctx, notes); err != nil {
			return Result{}, err
		}
	}
	if res.RemindersReplaced {
		if err := s.reminders.Replace(ctx, reminders); err != nil {
			return res, err
		}
	}

	s.log.Info("backup imported",
		"notes", res.NotesImported, "notes_replaced", res.NotesReplaced,
		"reminders", res.RemindersImported, "reminders_replaced", res.RemindersReplaced,
	)
	return res, nil
}

// present сообщает, задано ли поле. null, false, 0 и "" считаются отсутствующими.
func present(fields map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	raw, ok := fields[key]
	if !ok || falsy(raw) {
		return nil, false
	}
	return raw, true
}

func falsy(raw json.RawMessage) bool {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return !x
	case float64:
		return x == 0
	case string:
		return x == ""
	}
	return false
}

func malformed(err error) error {
	if err == nil {
		return ErrMalformedDocument
	}
	return fmt.Errorf("%w: %v", ErrMalformedDocument, err)
}
