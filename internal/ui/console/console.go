// Package console — интерактивный режим дневника: приветствие, регистрация
// или вход по PIN и главный экран с разделами.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/exp/slog"

	"diarykeeper/internal/app/diary"
	"diarykeeper/internal/domain/reminder"
	"diarykeeper/internal/domain/session"
	"diarykeeper/internal/domain/user"
	"diarykeeper/internal/domain/view"
	"diarykeeper/internal/ui/render"
)

var errQuit = errors.New("quit")

// PinReader читает PIN; терминальная реализация скрывает ввод.
type PinReader func(prompt string) (string, error)

type Console struct {
	app      *diary.App
	log      *slog.Logger
	in       *bufio.Scanner
	out      io.Writer
	readPin  PinReader
	order    view.SortOrder
	selected string

	ok   *color.Color
	fail *color.Color
	head *color.Color
}

type Option func(*Console)

func WithPinReader(r PinReader) Option {
	return func(c *Console) {
		c.readPin = r
	}
}

func New(app *diary.App, in io.Reader, out io.Writer, log *slog.Logger, opts ...Option) *Console {
	c := &Console{
		app:   app,
		log:   log,
		in:    bufio.NewScanner(in),
		out:   out,
		order: view.Desc,
		ok:    color.New(color.FgGreen),
		fail:  color.New(color.FgRed),
		head:  color.New(color.FgCyan, color.Bold),
	}
	c.readPin = c.promptLine

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run ведёт сессию до команды quit или конца ввода.
func (c *Console) Run(ctx context.Context) error {
	c.head.Fprintln(c.out, "📔 Мой дневник")
	fmt.Fprintln(c.out, "Загрузка...")

	if c.app.Session().Phase() == session.PhaseWelcome {
		if _, err := c.app.Welcome(ctx); err != nil {
			return err
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var err error
		switch c.app.Session().Phase() {
		case session.PhaseRegister:
			err = c.register(ctx)
		case session.PhaseLogin:
			err = c.login()
		case session.PhaseDashboard:
			err = c.dashboard(ctx)
		default:
			return fmt.Errorf("unexpected phase %s", c.app.Session().Phase())
		}

		if errors.Is(err, io.EOF) || errors.Is(err, errQuit) {
			fmt.Fprintln(c.out, "До встречи!")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) register(ctx context.Context) error {
	flow := c.app.Session()

	c.head.Fprintln(c.out, "\nСоздайте профиль")
	name := flow.Name()
	if name == "" {
		var err error
		if name, err = c.promptLine("Имя: "); err != nil {
			return err
		}
		if err := flow.SetName(name); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(c.out, "Имя: %s\n", name)
	}

	pin, err := c.readPin("PIN из 4 цифр ('<' стирает): ")
	if err != nil {
		return err
	}
	if err := flow.EnterPin(pin); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "PIN: %s\n", flow.PinMask())

	if err := flow.Register(ctx); err != nil {
		if errors.Is(err, user.ErrValidation) {
			c.failf("%v", err)
			if strings.TrimSpace(flow.Name()) == "" {
				_ = flow.SetName("")
			}
			return nil
		}
		return err
	}

	profile, _ := flow.Profile()
	c.okf("Добро пожаловать, %s!", profile.Name)
	return c.home()
}

func (c *Console) login() error {
	flow := c.app.Session()

	profile, _ := flow.Profile()
	c.head.Fprintf(c.out, "\nС возвращением, %s\n", profile.Name)

	pin, err := c.readPin("Введите PIN: ")
	if err != nil {
		return err
	}
	if err := flow.EnterPin(pin); err != nil {
		return err
	}

	if err := flow.Login(); err != nil {
		if errors.Is(err, user.ErrInvalidPin) {
			c.failf("Неверный PIN")
			return nil
		}
		return err
	}

	c.okf("Добро пожаловать, %s!", profile.Name)
	return c.home()
}

func (c *Console) dashboard(ctx context.Context) error {
	line, err := c.promptLine("\n> ")
	if err != nil {
		return err
	}

	args := strings.Fields(line)
	if len(args) == 0 {
		return nil
	}

	err = c.dispatch(ctx, args[0], args[1:])
	if errors.Is(err, errQuit) {
		return err
	}
	if err != nil {
		c.failf("%v", err)
	}
	return nil
}

func (c *Console) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "help", "?":
		c.help()
		return nil
	case "home":
		return c.home()
	case "notes":
		return c.notes(args)
	case "sort":
		c.order = c.order.Toggle()
		return c.notes(nil)
	case "note":
		return c.note(ctx, args)
	case "calendar", "cal":
		return c.calendar(args)
	case "remind":
		return c.remind(ctx, args)
	case "export":
		return c.export(args)
	case "import":
		return c.importFile(ctx, args)
	case "stats":
		return c.stats()
	case "logout":
		if err := c.app.Logout(); err != nil {
			return err
		}
		c.okf("Дневник заблокирован")
		return nil
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("неизвестная команда %q, введите help", cmd)
	}
}

func (c *Console) help() {
	fmt.Fprint(c.out, `Команды:
  home                     сегодняшние напоминания и записи
  notes [asc|desc]         все записи
  sort                     сменить порядок сортировки записей
  note show <id>           показать запись
  note add                 новая запись
  note edit <id>           редактировать запись
  note rm <id>             удалить запись
  calendar [ГГГГ-ММ-ДД]    напоминания на дату
  remind add [ГГГГ-ММ-ДД]  новое напоминание на выбранную дату
  remind rm <id>           удалить напоминание
  export [файл]            сохранить резервную копию
  import <файл>            загрузить резервную копию
  stats                    количество записей и напоминаний
  logout                   заблокировать дневник
  quit                     выход
`)
}

func (c *Console) home() error {
	overview, err := c.app.Overview()
	if err != nil {
		return err
	}

	r := render.New(c.out, render.Simple)

	c.head.Fprintf(c.out, "\n%s\n", overview.Date.Format("Monday, 2 January 2006"))
	c.head.Fprintln(c.out, "Напоминания на сегодня")
	if err := r.Reminders(overview.Reminders); err != nil {
		return err
	}
	c.head.Fprintln(c.out, "Записи за сегодня")
	return r.Notes(overview.Notes)
}

func (c *Console) notes(args []string) error {
	if len(args) > 0 {
		order, err := view.ParseSortOrder(args[0])
		if err != nil {
			return err
		}
		c.order = order
	}

	notes, err := c.app.Notes(c.order)
	if err != nil {
		return err
	}

	label := "сначала новые"
	if c.order == view.Asc {
		label = "сначала старые"
	}
	c.head.Fprintf(c.out, "Все записи (%s)\n", label)
	return render.New(c.out, render.Simple).Notes(notes)
}

func (c *Console) calendar(args []string) error {
	day, err := c.dayArg(args)
	if err != nil {
		return err
	}
	c.selected = day.Format(reminder.DateLayout)

	list, err := c.app.RemindersForDate(day)
	if err != nil {
		return err
	}

	c.head.Fprintf(c.out, "Напоминания на %s\n", c.selected)
	return render.New(c.out, render.Simple).Reminders(list)
}

func (c *Console) export(args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	path, err := c.app.ExportFile(path)
	if err != nil {
		return err
	}
	c.okf("Резервная копия сохранена в %s", path)
	return nil
}

func (c *Console) importFile(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("укажите файл: import <файл>")
	}

	res, err := c.app.ImportFile(ctx, args[0])
	if err != nil {
		return fmt.Errorf("не удалось импортировать данные: %w", err)
	}

	c.okf("Данные импортированы: записей %d, напоминаний %d", res.NotesImported, res.RemindersImported)
	return nil
}

func (c *Console) stats() error {
	stats, err := c.app.Stats()
	if err != nil {
		return err
	}
	return render.New(c.out, render.Simple).Stats(stats)
}

func (c *Console) promptLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Console) okf(format string, args ...any) {
	c.ok.Fprintf(c.out, "✓ "+format+"\n", args...)
}

func (c *Console) failf(format string, args ...any) {
	c.fail.Fprintf(c.out, "✗ "+format+"\n", args...)
}
