package diary

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/exp/slog"

	"diarykeeper/internal/app/diary/config"
	"diarykeeper/internal/domain/backup"
	"diarykeeper/internal/domain/note"
	"diarykeeper/internal/domain/reminder"
	"diarykeeper/internal/domain/session"
	"diarykeeper/internal/domain/user"
	"diarykeeper/internal/infrastructure/migration"
	"diarykeeper/internal/infrastructure/storage"
	"diarykeeper/internal/infrastructure/storage/memory"
	"diarykeeper/internal/infrastructure/storage/sqlite"
)

// App — состояние приложения: сессия, коллекции и хранилище.
// Операции с данными доступны только в разблокированной сессии.
type App struct {
	config    *config.Config
	log       *slog.Logger
	storage   storage.Storage
	driver    string
	validator user.Validator
	session   *session.Flow
	notes     note.Servicer
	reminders reminder.Servicer
	backup    backup.Servicer
	now       func() time.Time
}

type Option func(*options)

type options struct {
	now   func() time.Time
	newID func() (string, error)
}

// WithClock подменяет часы приложения (даты записей и «сегодня»).
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithIDGenerator подменяет генератор идентификаторов записей и напоминаний.
func WithIDGenerator(newID func() (string, error)) Option {
	return func(o *options) {
		o.newID = newID
	}
}

// New открывает хранилище из конфигурации и загружает данные.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger, opts ...Option) (*App, error) {
	st, driver := openStorage(cfg, log)
	app, err := NewWithStorage(ctx, cfg, st, log, opts...)
	if err != nil {
		_ = st.Close()
		return nil, err
	}
	app.driver = driver
	return app, nil
}

// openStorage возвращает хранилище и имя фактически открытого драйвера.
func openStorage(cfg *config.Config, log *slog.Logger) (storage.Storage, string) {
	if cfg.StorageDriver == config.DriverMemory {
		log.Debug("используется хранилище в памяти")
		return memory.New(), config.DriverMemory
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DataPath), 0o700); err != nil {
		log.Warn("Не удалось создать каталог данных, используем память", "error", err)
		return memory.New(), config.DriverMemory
	}

	sqliteStorage, err := sqlite.New(cfg.DataPath, migration.DefaultEngine)
	if err != nil {
		log.Warn("Не удалось инициализировать SQLite, используем память", "error", err)
		return memory.New(), config.DriverMemory
	}

	log.Debug("хранилище SQLite открыто", "path", cfg.DataPath)
	return sqliteStorage, config.DriverSQLite
}

// NewWithStorage собирает приложение поверх готового хранилища.
func NewWithStorage(ctx context.Context, cfg *config.Config, st storage.Storage, log *slog.Logger, opts ...Option) (*App, error) {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	policy, err := note.ParseTitlePolicy(cfg.TitlePolicy)
	if err != nil {
		return nil, err
	}

	noteOpts := []note.Option{note.WithClock(o.now), note.WithTitlePolicy(policy)}
	var reminderOpts []reminder.Option
	if o.newID != nil {
		noteOpts = append(noteOpts, note.WithIDGenerator(o.newID))
		reminderOpts = append(reminderOpts, reminder.WithIDGenerator(o.newID))
	}

	validator := user.NewPinValidator()
	users := user.NewService(storage.NewUserRepository(st), validator, log)
	flow := session.NewFlow(users, log)
	notes := note.NewService(storage.NewNoteRepository(st), log, noteOpts...)
	reminders := reminder.NewService(storage.NewReminderRepository(st), log, reminderOpts...)

	if err := flow.Load(ctx); err != nil {
		return nil, err
	}
	if err := notes.Load(ctx); err != nil {
		return nil, err
	}
	if err := reminders.Load(ctx); err != nil {
		return nil, err
	}

	return &App{
		config:    cfg,
		log:       log,
		storage:   st,
		driver:    cfg.StorageDriver,
		validator: validator,
		session:   flow,
		notes:     notes,
		reminders: reminders,
		backup:    backup.NewService(notes, reminders, flow, log),
		now:       o.now,
	}, nil
}

func (a *App) Config() *config.Config {
	return a.config
}

// Driver — драйвер хранилища, с которым реально работает приложение.
func (a *App) Driver() string {
	return a.driver
}

// Volatile сообщает, что SQLite не открылась и данные живут только в памяти процесса.
func (a *App) Volatile() bool {
	return a.config.StorageDriver == config.DriverSQLite && a.driver == config.DriverMemory
}

// Session отдаёт машину состояний для интерактивного режима.
func (a *App) Session() *session.Flow {
	return a.session
}

// Welcome выдерживает паузу приветствия из конфигурации.
func (a *App) Welcome(ctx context.Context) (session.Phase, error) {
	return a.session.Welcome(ctx, a.config.WelcomeDwell)
}

// Register регистрирует профиль без интерактивного ввода.
func (a *App) Register(ctx context.Context, name, pin string) (user.Profile, error) {
	if err := a.skipWelcome(ctx); err != nil {
		return user.Profile{}, err
	}
	if a.session.Phase() != session.PhaseRegister {
		return user.Profile{}, user.ErrAlreadyRegistered
	}
	if err := a.validator.ValidateRegister(name, pin); err != nil {
		return user.Profile{}, err
	}

	if err := a.session.SetName(name); err != nil {
		return user.Profile{}, err
	}
	if err := a.session.EnterPin(pin); err != nil {
		return user.Profile{}, err
	}
	if err := a.session.Register(ctx); err != nil {
		return user.Profile{}, err
	}

	profile, _ := a.session.Profile()
	return profile, nil
}

// Unlock входит в дневник по PIN без интерактивного ввода.
func (a *App) Unlock(ctx context.Context, pin string) error {
	if a.session.Phase() == session.PhaseDashboard {
		return nil
	}
	if err := a.skipWelcome(ctx); err != nil {
		return err
	}
	if a.session.Phase() == session.PhaseRegister {
		return user.ErrNotRegistered
	}
	if err := a.validator.ValidatePin(pin); err != nil {
		return fmt.Errorf("%w: %v", user.ErrInvalidPin, err)
	}

	if err := a.session.EnterPin(pin); err != nil {
		return err
	}
	return a.session.Login()
}

func (a *App) skipWelcome(ctx context.Context) error {
	if a.session.Phase() != session.PhaseWelcome {
		return nil
	}
	_, err := a.session.Welcome(ctx, 0)
	return err
}

func (a *App) Logout() error {
	return a.session.Logout()
}

func (a *App) unlocked() error {
	return a.session.RequireDashboard()
}

func (a *App) Close() error {
	return a.storage.Close()
}
