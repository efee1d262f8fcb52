package backup

import (
	"diarykeeper/internal/domain/note"
	"diarykeeper/internal/domain/reminder"
	"diarykeeper/internal/domain/user"
)

// DefaultFileName — имя файла экспорта по умолчанию.
const DefaultFileName = "diary-backup.json"

// Document — формат файла резервной копии.
type Document struct {
	Notes     []note.Note         `json:"notes"`
	Reminders []reminder.Reminder `json:"reminders"`
	User      *user.Profile       `json:"user"`
}

// Result описывает, что именно заменил импорт.
type Result struct {
	NotesImported     int
	RemindersImported int
	NotesReplaced     bool
	RemindersReplaced bool
}
