// cmd/diary/cmd/types/types.go
package types

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"diarykeeper/internal/app/diary"
	"diarykeeper/internal/ui/render"
)

type contextKey string

// ClientAppKey — ключ контекста команды, под которым лежит *diary.App.
const ClientAppKey contextKey = "app"

// PinFlag — имя глобального флага с PIN.
const PinFlag = "pin"

var stdin = bufio.NewReader(os.Stdin)

// App достаёт приложение из контекста команды.
func App(cmd *cobra.Command) (*diary.App, error) {
	app, ok := cmd.Context().Value(ClientAppKey).(*diary.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	return app, nil
}

// Unlocked возвращает приложение с разблокированной сессией.
// PIN берётся из флага --pin, затем из DIARY_PIN, затем спрашивается в терминале.
func Unlocked(cmd *cobra.Command) (*diary.App, error) {
	app, err := App(cmd)
	if err != nil {
		return nil, err
	}

	pin := PinFromFlags(cmd, app)
	if pin == "" {
		if pin, err = ReadPin("PIN: "); err != nil {
			return nil, err
		}
	}

	if err := app.Unlock(cmd.Context(), pin); err != nil {
		return nil, fmt.Errorf("не удалось открыть дневник: %w", err)
	}
	return app, nil
}

// PinFromFlags возвращает PIN из флага --pin или из конфигурации.
func PinFromFlags(cmd *cobra.Command, app *diary.App) string {
	pin := ""
	if f := cmd.Flag(PinFlag); f != nil {
		pin = f.Value.String()
	}
	if pin == "" {
		pin = app.Config().Pin
	}
	return pin
}

// ReadPin читает PIN без эха, если stdin — терминал.
func ReadPin(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, prompt)
		pin, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("ошибка чтения PIN: %w", err)
		}
		return strings.TrimSpace(string(pin)), nil
	}
	return ReadLine(prompt)
}

// ReadLine читает строку из stdin.
func ReadLine(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	line, err := stdin.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("ошибка чтения ввода: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Renderer создаёт печать в stdout команды в формате из флага -o.
func Renderer(cmd *cobra.Command, output string) (*render.Renderer, error) {
	format, err := render.ParseFormat(output)
	if err != nil {
		return nil, err
	}
	return render.New(cmd.OutOrStdout(), format), nil
}

// AddOutputFlag регистрирует флаг -o/--output.
func AddOutputFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "output", "o", string(render.Simple), "формат вывода (simple, table, json, yaml)")
}

func Success(cmd *cobra.Command, format string, args ...any) {
	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ "+format+"\n", args...)
}

// Warn печатает предупреждение в stderr, чтобы не смешивать его с выводом команды.
func Warn(cmd *cobra.Command, format string, args ...any) {
	color.New(color.FgYellow).Fprintf(cmd.ErrOrStderr(), "! "+format+"\n", args...)
}
