package reminder

import "time"

// TimeLayout — формат поля Time.
const TimeLayout = "15:04"

// DateLayout — формат выбора даты в календаре.
const DateLayout = "2006-01-02"

// Reminder привязан к календарному дню; Date хранит полночь выбранного дня.
type Reminder struct {
	ID          string    `json:"id" yaml:"id"`
	Date        time.Time `json:"date" yaml:"date"`
	Time        string    `json:"time" yaml:"time"`
	Description string    `json:"description" yaml:"description"`
}

type Draft struct {
	Date        time.Time
	Time        string
	Description string
}

// ParseDate разбирает дату календаря в заданной зоне.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, loc)
}

// StartOfDay отбрасывает время суток в зоне t.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
