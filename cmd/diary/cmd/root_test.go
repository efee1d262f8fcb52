package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diarykeeper/internal/domain/note"
	"diarykeeper/internal/domain/user"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		_ = closeApp(rootCmd, nil)
	}
	return out.String(), err
}

func setupEnv(t *testing.T) string {
	t.Helper()
	color.NoColor = true

	dir := t.TempDir()
	t.Setenv("DATA_DIR", dir)
	t.Setenv("APP_ENV", "prod")
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("DIARY_PIN", "")
	return dir
}

func TestCLI_RegisterAndNotes(t *testing.T) {
	dir := setupEnv(t)

	out, err := execute(t, "auth", "register", "--name", "Anna", "--pin", "1234")
	require.NoError(t, err)
	assert.Contains(t, out, "Добро пожаловать, Anna!")

	_, err = execute(t, "auth", "register", "--name", "Bob", "--pin", "0000")
	assert.ErrorIs(t, err, user.ErrAlreadyRegistered)

	_, err = execute(t, "note", "list", "--pin", "1111")
	assert.ErrorIs(t, err, user.ErrInvalidPin)

	out, err = execute(t, "note", "create", "--pin", "1234", "--title", "Day one", "--content", "Hello")
	require.NoError(t, err)
	assert.Contains(t, out, "Запись сохранена")

	out, err = execute(t, "note", "list", "--pin", "1234", "-o", "json")
	require.NoError(t, err)

	var notes []note.Note
	require.NoError(t, json.Unmarshal([]byte(out), &notes))
	require.Len(t, notes, 1)
	assert.Equal(t, "Day one", notes[0].Title)

	backupPath := filepath.Join(dir, "backup.json")
	out, err = execute(t, "backup", "export", "--pin", "1234", "--out", backupPath)
	require.NoError(t, err)
	assert.Contains(t, out, backupPath)
	assert.FileExists(t, backupPath)

	out, err = execute(t, "auth", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Профиль:   Anna")
}

func TestCLI_Reminders(t *testing.T) {
	setupEnv(t)
	t.Setenv("DIARY_PIN", "1234")

	_, err := execute(t, "auth", "register", "--name", "Anna", "--pin", "1234")
	require.NoError(t, err)

	out, err := execute(t, "reminder", "create", "--pin", "", "--date", "2024-05-01", "--time", "09:00", "--text", "Call mom")
	require.NoError(t, err)
	assert.Contains(t, out, "Напоминание на 2024-05-01 09:00 добавлено")

	_, err = execute(t, "reminder", "create", "--date", "2024-05-01", "--time", "25:00", "--text", "Late")
	assert.Error(t, err)

	out, err = execute(t, "reminder", "list", "--date", "2024-05-01")
	require.NoError(t, err)
	assert.Contains(t, out, "Call mom")

	out, err = execute(t, "reminder", "list", "--date", "2024-05-02")
	require.NoError(t, err)
	assert.Contains(t, out, "Напоминаний нет")

	out, err = execute(t, "backup", "stats", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"notes": 0, "reminders": 1}`, out)
}

func TestCLI_ImportMalformed(t *testing.T) {
	dir := setupEnv(t)

	_, err := execute(t, "auth", "register", "--name", "Anna", "--pin", "1234")
	require.NoError(t, err)

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte("not json"), 0o600))

	_, err = execute(t, "backup", "import", broken, "--pin", "1234")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "не удалось импортировать данные")
}

func TestCLI_SQLiteFallbackWarns(t *testing.T) {
	dir := setupEnv(t)
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))
	t.Setenv("DATA_PATH", filepath.Join(blocker, "diary.db"))

	out, err := execute(t, "auth", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "изменения не сохранятся после выхода")
	assert.Contains(t, out, "Хранилище: memory")
	assert.Contains(t, out, "данные не сохраняются")
}
