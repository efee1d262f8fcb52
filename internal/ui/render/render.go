// Package render печатает записи, напоминания и сводки в одном из форматов вывода.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"diarykeeper/internal/domain/note"
	"diarykeeper/internal/domain/reminder"
	"diarykeeper/internal/domain/view"
	"diarykeeper/internal/utils/ident"
)

type Format string

const (
	Simple Format = "simple"
	Table  Format = "table"
	JSON   Format = "json"
	YAML   Format = "yaml"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
	titleWidth     = 30
	previewWidth   = 60
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return Simple, nil
	case Simple, Table, JSON, YAML:
		return f, nil
	default:
		return "", fmt.Errorf("неизвестный формат вывода %q (simple, table, json, yaml)", s)
	}
}

type Renderer struct {
	w      io.Writer
	format Format
}

func New(w io.Writer, format Format) *Renderer {
	return &Renderer{w: w, format: format}
}

func (r *Renderer) Notes(notes []note.Note) error {
	switch r.format {
	case JSON, YAML:
		if notes == nil {
			notes = []note.Note{}
		}
		return r.encode(notes)
	case Table:
		return r.notesTable(notes)
	default:
		return r.notesSimple(notes)
	}
}

func (r *Renderer) notesSimple(notes []note.Note) error {
	if len(notes) == 0 {
		fmt.Fprintln(r.w, "Записи не найдены")
		return nil
	}

	fmt.Fprintf(r.w, "Найдено записей: %d\n\n", len(notes))
	for i, n := range notes {
		photo := ""
		if n.HasImage() {
			photo = " [фото]"
		}
		fmt.Fprintf(r.w, "%d. %s%s\n", i+1, n.Title, photo)
		fmt.Fprintf(r.w, "   ID: %s | %s\n", ident.Short(n.ID), n.Date.Local().Format(dateTimeLayout))
		fmt.Fprintf(r.w, "   %s\n\n", truncate(oneLine(n.Content), previewWidth))
	}
	return nil
}

func (r *Renderer) notesTable(notes []note.Note) error {
	if len(notes) == 0 {
		fmt.Fprintln(r.w, "Записи не найдены")
		return nil
	}

	w := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tДата\tЗаголовок\tФото\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t\n")
	for _, n := range notes {
		photo := "-"
		if n.HasImage() {
			photo = "да"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n",
			ident.Short(n.ID),
			n.Date.Local().Format(dateTimeLayout),
			truncate(n.Title, titleWidth),
			photo,
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(r.w, "\nВсего записей: %d\n", len(notes))
	return nil
}

// Note печатает запись целиком.
func (r *Renderer) Note(n note.Note) error {
	if r.Structured() {
		return r.encode(n)
	}

	fmt.Fprintf(r.w, "ID:        %s\n", n.ID)
	fmt.Fprintf(r.w, "Дата:      %s\n", n.Date.Local().Format(dateTimeLayout))
	fmt.Fprintf(r.w, "Заголовок: %s\n", n.Title)
	if n.HasImage() {
		fmt.Fprintf(r.w, "Фото:      %d байт в data URI\n", len(n.Image))
	}
	fmt.Fprintf(r.w, "\n%s\n", n.Content)
	return nil
}

func (r *Renderer) Reminders(reminders []reminder.Reminder) error {
	switch r.format {
	case JSON, YAML:
		if reminders == nil {
			reminders = []reminder.Reminder{}
		}
		return r.encode(reminders)
	case Table:
		return r.remindersTable(reminders)
	default:
		return r.remindersSimple(reminders)
	}
}

func (r *Renderer) remindersSimple(reminders []reminder.Reminder) error {
	if len(reminders) == 0 {
		fmt.Fprintln(r.w, "Напоминаний нет")
		return nil
	}

	for _, rem := range reminders {
		fmt.Fprintf(r.w, "• %s %s  %s (%s)\n",
			rem.Date.Local().Format(dateLayout), rem.Time, rem.Description, ident.Short(rem.ID))
	}
	return nil
}

func (r *Renderer) remindersTable(reminders []reminder.Reminder) error {
	if len(reminders) == 0 {
		fmt.Fprintln(r.w, "Напоминаний нет")
		return nil
	}

	w := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tДата\tВремя\tОписание\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t\n")
	for _, rem := range reminders {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n",
			ident.Short(rem.ID),
			rem.Date.Local().Format(dateLayout),
			rem.Time,
			truncate(rem.Description, previewWidth),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(r.w, "\nВсего напоминаний: %d\n", len(reminders))
	return nil
}

func (r *Renderer) Stats(stats view.Stats) error {
	if r.Structured() {
		return r.encode(stats)
	}

	fmt.Fprintf(r.w, "Записей:      %d\n", stats.Notes)
	fmt.Fprintf(r.w, "Напоминаний:  %d\n", stats.Reminders)
	return nil
}

// Structured сообщает, что вывод машиночитаемый (json или yaml).
func (r *Renderer) Structured() bool {
	return r.format == JSON || r.format == YAML
}

// Value печатает произвольное значение в JSON или YAML; для текстовых
// форматов используется JSON.
func (r *Renderer) Value(v any) error {
	return r.encode(v)
}

func (r *Renderer) encode(v any) error {
	if r.format == YAML {
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, length int) string {
	if utf8.RuneCountInString(s) <= length {
		return s
	}
	runes := []rune(s)
	return string(runes[:length-3]) + "..."
}
