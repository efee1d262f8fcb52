package diary

import (
	"context"
	"errors"
	"time"

	"diarykeeper/internal/domain/reminder"
	"diarykeeper/internal/domain/view"
)

func (a *App) CreateReminder(ctx context.Context, draft reminder.Draft) (reminder.Reminder, error) {
	if err := a.unlocked(); err != nil {
		return reminder.Reminder{}, err
	}
	return a.reminders.Create(ctx, draft)
}

func (a *App) DeleteReminder(ctx context.Context, id string) (bool, error) {
	if err := a.unlocked(); err != nil {
		return false, err
	}

	r, err := a.reminders.Find(id)
	switch {
	case err == nil:
		id = r.ID
	case !errors.Is(err, reminder.ErrNotFound):
		return false, err
	}
	return a.reminders.Delete(ctx, id)
}

// Reminders возвращает напоминания в порядке добавления.
func (a *App) Reminders() ([]reminder.Reminder, error) {
	if err := a.unlocked(); err != nil {
		return nil, err
	}
	return a.reminders.List(), nil
}

func (a *App) RemindersForDate(day time.Time) ([]reminder.Reminder, error) {
	if err := a.unlocked(); err != nil {
		return nil, err
	}
	return view.RemindersForDate(a.reminders.List(), day), nil
}

func (a *App) TodayReminders() ([]reminder.Reminder, error) {
	if err := a.unlocked(); err != nil {
		return nil, err
	}
	return view.TodayReminders(a.reminders.List(), a.now()), nil
}

// Today — начало текущего дня по часам приложения.
func (a *App) Today() time.Time {
	return reminder.StartOfDay(a.now())
}
