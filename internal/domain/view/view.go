// Package view содержит производные представления над записями и напоминаниями.
// Функции чистые: входные срезы не изменяются, результат считается заново при каждом вызове.
package view

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"diarykeeper/internal/domain/note"
	"diarykeeper/internal/domain/reminder"
)

type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case "", Desc:
		return Desc, nil
	case Asc:
		return Asc, nil
	default:
		return "", fmt.Errorf("unknown sort order %q (want asc or desc)", s)
	}
}

// Toggle переключает порядок сортировки.
func (o SortOrder) Toggle() SortOrder {
	if o == Asc {
		return Desc
	}
	return Asc
}

// SameDay сравнивает календарные дни: a приводится к зоне b.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.In(b.Location()).Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func TodayNotes(notes []note.Note, now time.Time) []note.Note {
	return filter(notes, func(n note.Note) bool {
		return SameDay(n.Date, now)
	})
}

func TodayReminders(reminders []reminder.Reminder, now time.Time) []reminder.Reminder {
	return RemindersForDate(reminders, now)
}

func RemindersForDate(reminders []reminder.Reminder, day time.Time) []reminder.Reminder {
	return filter(reminders, func(r reminder.Reminder) bool {
		return SameDay(r.Date, day)
	})
}

// SortedNotes возвращает отсортированную по дате копию. Сортировка устойчивая.
func SortedNotes(notes []note.Note, order SortOrder) []note.Note {
	out := slices.Clone(notes)
	slices.SortStableFunc(out, func(a, b note.Note) int {
		if order == Asc {
			return a.Date.Compare(b.Date)
		}
		return b.Date.Compare(a.Date)
	})
	return out
}

// Stats — счётчики для раздела экспорта.
type Stats struct {
	Notes     int `json:"notes" yaml:"notes"`
	Reminders int `json:"reminders" yaml:"reminders"`
}

func Count(notes []note.Note, reminders []reminder.Reminder) Stats {
	return Stats{Notes: len(notes), Reminders: len(reminders)}
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
