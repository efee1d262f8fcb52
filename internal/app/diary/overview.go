package diary

import (
	"time"

	"diarykeeper/internal/domain/note"
	"diarykeeper/internal/domain/reminder"
	"diarykeeper/internal/domain/view"
)

// Overview — содержимое главного экрана.
type Overview struct {
	Name      string              `json:"name" yaml:"name"`
	Date      time.Time           `json:"date" yaml:"date"`
	Reminders []reminder.Reminder `json:"reminders" yaml:"reminders"`
	Notes     []note.Note         `json:"notes" yaml:"notes"`
}

func (a *App) Overview() (Overview, error) {
	if err := a.unlocked(); err != nil {
		return Overview{}, err
	}

	now := a.now()
	profile, _ := a.session.Profile()

	return Overview{
		Name:      profile.Name,
		Date:      now,
		Reminders: view.TodayReminders(a.reminders.List(), now),
		Notes:     view.TodayNotes(a.notes.List(), now),
	}, nil
}

// Stats — счётчики записей и напоминаний.
func (a *App) Stats() (view.Stats, error) {
	if err := a.unlocked(); err != nil {
		return view.Stats{}, err
	}
	return view.Count(a.notes.List(), a.reminders.List()), nil
}
