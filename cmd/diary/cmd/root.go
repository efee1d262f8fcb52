// cmd/diary/cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"
	"golang.org/x/term"

	"diarykeeper/cmd/diary/cmd/auth"
	"diarykeeper/cmd/diary/cmd/backup"
	"diarykeeper/cmd/diary/cmd/note"
	"diarykeeper/cmd/diary/cmd/reminder"
	"diarykeeper/cmd/diary/cmd/types"
	"diarykeeper/internal/app/diary"
	"diarykeeper/internal/app/diary/config"
	"diarykeeper/internal/ui/console"
	"diarykeeper/internal/utils/logger"
)

var (
	cfgFile string
	debug   bool
	pin     string
	log     *slog.Logger
	app     *diary.App
)

var rootCmd = &cobra.Command{
	Use:   "diary",
	Short: "Diary - личный дневник с PIN-кодом",
	Long: `Diary — личный дневник: записи с фото, напоминания по датам
и резервная копия в JSON.

Без подкоманды запускается интерактивный режим. Данные хранятся
локально в SQLite (~/.diary/diary.db).`,
	PersistentPreRunE:  setupApp,
	PersistentPostRunE: closeApp,
	RunE:               runConsole,
	SilenceUsage:       true,
	SilenceErrors:      true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if app != nil {
			_ = app.Close()
		}
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(viper.New(), cfgFile)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	level := cfg.LogLevel
	if debug {
		level = "debug"
	}
	log = logger.NewWithLevel(cfg.Env, level)

	app, err = diary.New(cmd.Context(), cfg, log)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	if app.Volatile() {
		types.Warn(cmd, "SQLite недоступна (%s): изменения не сохранятся после выхода", cfg.DataPath)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))
	return nil
}

func closeApp(_ *cobra.Command, _ []string) error {
	if app == nil {
		return nil
	}
	err := app.Close()
	app = nil
	return err
}

func runConsole(cmd *cobra.Command, _ []string) error {
	var opts []console.Option
	if term.IsTerminal(int(os.Stdin.Fd())) {
		opts = append(opts, console.WithPinReader(types.ReadPin))
	}

	return console.New(app, cmd.InOrStdin(), cmd.OutOrStdout(), log, opts...).Run(cmd.Context())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл (по умолчанию ~/.diary/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().StringVar(&pin, types.PinFlag, "", "PIN для неинтерактивных команд (или DIARY_PIN)")

	rootCmd.AddCommand(homeCmd)
	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(note.NoteCmd)
	rootCmd.AddCommand(reminder.ReminderCmd)
	rootCmd.AddCommand(backup.BackupCmd)
}
