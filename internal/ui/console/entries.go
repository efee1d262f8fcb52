package console

import (
	"context"
	"fmt"
	"strings"
	"time"

	"diarykeeper/internal/domain/note"
	"diarykeeper/internal/domain/reminder"
	"diarykeeper/internal/ui/render"
	"diarykeeper/internal/utils/ident"
)

const removeImage = "-"

func (c *Console) note(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("использование: note show|add|edit|rm")
	}

	switch args[0] {
	case "add":
		return c.addNote(ctx)
	case "show", "edit", "rm":
		if len(args) < 2 {
			return fmt.Errorf("укажите id записи: note %s <id>", args[0])
		}
	default:
		return fmt.Errorf("неизвестное действие %q", args[0])
	}

	id := args[1]
	switch args[0] {
	case "show":
		n, err := c.app.Note(id)
		if err != nil {
			return err
		}
		return render.New(c.out, render.Simple).Note(n)
	case "edit":
		return c.editNote(ctx, id)
	default:
		removed, err := c.app.DeleteNote(ctx, id)
		if err != nil {
			return err
		}
		if removed {
			c.okf("Запись удалена")
		}
		return nil
	}
}

func (c *Console) addNote(ctx context.Context) error {
	title, err := c.promptLine("Заголовок: ")
	if err != nil {
		return err
	}
	content, err := c.promptText("Текст (пустая строка завершает ввод):")
	if err != nil {
		return err
	}
	image, err := c.promptImage("Фото (путь к файлу, Enter пропустить): ", "")
	if err != nil {
		return err
	}

	n, err := c.app.CreateNote(ctx, note.Draft{Title: title, Content: content, Image: image})
	if err != nil {
		return err
	}
	c.okf("Запись сохранена (%s)", ident.Short(n.ID))
	return nil
}

// editNote показывает текущие значения; пустой ввод оставляет поле без изменений.
func (c *Console) editNote(ctx context.Context, id string) error {
	current, err := c.app.Note(id)
	if err != nil {
		return err
	}

	title, err := c.promptLine(fmt.Sprintf("Заголовок [%s]: ", current.Title))
	if err != nil {
		return err
	}
	if title == "" {
		title = current.Title
	}

	content, err := c.promptText("Текст (пустой ввод оставит прежний):")
	if err != nil {
		return err
	}
	if content == "" {
		content = current.Content
	}

	hint := "Фото (путь к файлу, Enter оставить): "
	if current.HasImage() {
		hint = "Фото (путь к файлу, '-' удалить, Enter оставить): "
	}
	image, err := c.promptImage(hint, current.Image)
	if err != nil {
		return err
	}

	_, applied, err := c.app.UpdateNote(ctx, current.ID, note.Draft{Title: title, Content: content, Image: image})
	if err != nil {
		return err
	}
	if applied {
		c.okf("Запись обновлена")
	}
	return nil
}

func (c *Console) promptText(prompt string) (string, error) {
	fmt.Fprintln(c.out, prompt)

	var lines []string
	for {
		line, err := c.promptLine("")
		if err != nil {
			return "", err
		}
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

func (c *Console) promptImage(prompt, current string) (string, error) {
	path, err := c.promptLine(prompt)
	if err != nil {
		return "", err
	}

	switch path {
	case "":
		return current, nil
	case removeImage:
		return "", nil
	}

	uri, err := c.app.LoadImage(path)
	if err != nil {
		c.failf("%v", err)
		return current, nil
	}
	return uri, nil
}

func (c *Console) remind(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("использование: remind add [ГГГГ-ММ-ДД] | remind rm <id>")
	}

	switch args[0] {
	case "add":
		return c.addReminder(ctx, args[1:])
	case "rm":
		if len(args) < 2 {
			return fmt.Errorf("укажите id напоминания: remind rm <id>")
		}
		removed, err := c.app.DeleteReminder(ctx, args[1])
		if err != nil {
			return err
		}
		if removed {
			c.okf("Напоминание удалено")
		}
		return nil
	default:
		return fmt.Errorf("неизвестное действие %q", args[0])
	}
}

func (c *Console) addReminder(ctx context.Context, args []string) error {
	if len(args) == 0 && c.selected != "" {
		args = []string{c.selected}
	}
	day, err := c.dayArg(args)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Дата: %s\n", day.Format(reminder.DateLayout))
	at, err := c.promptLine("Время (ЧЧ:ММ): ")
	if err != nil {
		return err
	}
	description, err := c.promptLine("Описание: ")
	if err != nil {
		return err
	}

	r, err := c.app.CreateReminder(ctx, reminder.Draft{Date: day, Time: at, Description: description})
	if err != nil {
		return err
	}
	c.okf("Напоминание добавлено (%s)", ident.Short(r.ID))
	return nil
}

// dayArg разбирает дату из первого аргумента; без аргумента — сегодня.
func (c *Console) dayArg(args []string) (time.Time, error) {
	if len(args) == 0 {
		return c.app.Today(), nil
	}
	day, err := reminder.ParseDate(args[0], c.app.Today().Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("дата должна быть в формате ГГГГ-ММ-ДД: %w", err)
	}
	return day, nil
}
