package console

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"diarykeeper/internal/app/diary"
	"diarykeeper/internal/app/diary/config"
	"diarykeeper/internal/domain/note"
	"diarykeeper/internal/domain/session"
	"diarykeeper/internal/domain/view"
	"diarykeeper/internal/infrastructure/storage/memory"
)

var testNow = time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)

func newTestApp(t *testing.T) *diary.App {
	t.Helper()
	color.NoColor = true

	dir := t.TempDir()
	cfg := &config.Config{
		Env:           config.EnvLocal,
		DataDir:       dir,
		StorageDriver: config.DriverMemory,
		BackupFile:    filepath.Join(dir, "diary-backup.json"),
		MaxImageBytes: 5 << 20,
		TitlePolicy:   "explicit",
	}

	app, err := diary.NewWithStorage(context.Background(), cfg, memory.New(), slog.Default(),
		diary.WithClock(func() time.Time { return testNow }),
		diary.WithIDGenerator(sequentialIDs()))
	require.NoError(t, err)
	return app
}

func sequentialIDs() func() (string, error) {
	n := 0
	return func() (string, error) {
		n++
		return fmt.Sprintf("id-%04d", n), nil
	}
}

func run(t *testing.T, app *diary.App, script ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(script, "\n") + "\n")

	err := New(app, in, &out, slog.Default()).Run(context.Background())
	require.NoError(t, err)
	return out.String()
}

func TestConsole_RegisterWriteLogout(t *testing.T) {
	app := newTestApp(t)

	out := run(t, app,
		"Anna",
		"12",
		"1234",
		"note add",
		"Day one",
		"Hello",
		"",
		"",
		"notes",
		"stats",
		"logout",
		"1111",
		"1234",
		"quit",
	)

	assert.Contains(t, out, "pin must contain exactly 4 digits")
	assert.Contains(t, out, "Имя: Anna")
	assert.Contains(t, out, "Добро пожаловать, Anna!")
	assert.Contains(t, out, "Запись сохранена")
	assert.Contains(t, out, "1. Day one")
	assert.Contains(t, out, "Записей:      1")
	assert.Contains(t, out, "Дневник заблокирован")
	assert.Contains(t, out, "Неверный PIN")
	assert.Contains(t, out, "До встречи!")

	notes, err := app.Notes(view.Desc)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Hello", notes[0].Content)
}

func TestConsole_EndOfInput(t *testing.T) {
	app := newTestApp(t)

	out := run(t, app, "Anna")

	assert.Contains(t, out, "До встречи!")
	assert.Equal(t, session.PhaseRegister, app.Session().Phase())
}

func TestConsole_Reminders(t *testing.T) {
	app := newTestApp(t)
	_, err := app.Register(context.Background(), "Anna", "1234")
	require.NoError(t, err)

	out := run(t, app,
		"calendar 2024-05-01",
		"remind add",
		"09:00",
		"Call mom",
		"remind add 2024-05-02",
		"9am",
		"Dentist",
		"calendar 2024-05-01",
		"home",
		"quit",
	)

	assert.Contains(t, out, "Напоминание добавлено")
	assert.Contains(t, out, "• 2024-05-01 09:00  Call mom")
	assert.Contains(t, out, "✗")

	all, err := app.Reminders()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Call mom", all[0].Description)
}

func TestConsole_ExportImport(t *testing.T) {
	app := newTestApp(t)
	_, err := app.Register(context.Background(), "Anna", "1234")
	require.NoError(t, err)

	backupPath := filepath.Join(t.TempDir(), "backup.json")
	doc := `{"notes": [{"id": "n1", "date": "2024-05-01T08:00:00Z", "title": "Imported", "content": "From file"}]}`
	require.NoError(t, os.WriteFile(backupPath, []byte(doc), 0o600))

	broken := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte("{oops"), 0o600))

	exported := filepath.Join(t.TempDir(), "out.json")

	out := run(t, app,
		"import "+broken,
		"import "+backupPath,
		"note show n1",
		"export "+exported,
		"bogus",
		"quit",
	)

	assert.Contains(t, out, "не удалось импортировать данные")
	assert.Contains(t, out, "Данные импортированы: записей 1, напоминаний 0")
	assert.Contains(t, out, "Заголовок: Imported")
	assert.Contains(t, out, "Резервная копия сохранена в "+exported)
	assert.Contains(t, out, `неизвестная команда "bogus"`)
	assert.FileExists(t, exported)
}

func TestConsole_EditNote(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)
	_, err := app.Register(ctx, "Anna", "1234")
	require.NoError(t, err)

	imgPath := filepath.Join(t.TempDir(), "photo.png")
	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 16)...)
	require.NoError(t, os.WriteFile(imgPath, png, 0o600))

	out := run(t, app,
		"note add",
		"Day one",
		"Hello",
		"",
		imgPath,
		"note edit id-0001",
		"",
		"Hello again",
		"",
		"-",
		"sort",
		"note rm id-0001",
		"quit",
	)

	assert.Contains(t, out, "Заголовок [Day one]")
	assert.Contains(t, out, "'-' удалить")
	assert.Contains(t, out, "Запись обновлена")
	assert.Contains(t, out, "сначала старые")
	assert.Contains(t, out, "Запись удалена")

	notes, err := app.Notes(view.Desc)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestConsole_EditKeepsImage(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)
	_, err := app.Register(ctx, "Anna", "1234")
	require.NoError(t, err)

	_, err = app.CreateNote(ctx, note.Draft{Title: "Beach", Content: "Sun", Image: "data:image/png;base64,AA=="})
	require.NoError(t, err)

	run(t, app,
		"note edit id-0001",
		"Sea",
		"",
		"",
		"quit",
	)

	n, err := app.Note("id-0001")
	require.NoError(t, err)
	assert.Equal(t, "Sea", n.Title)
	assert.Equal(t, "Sun", n.Content)
	assert.Equal(t, "data:image/png;base64,AA==", n.Image)
}
