// cmd/diary/cmd/backup/backup.go
package backup

import (
	"fmt"

	"github.com/spf13/cobra"

	"diarykeeper/cmd/diary/cmd/types"
)

var (
	exportOut   string
	statsOutput string
)

// BackupCmd - родительская команда для резервного копирования
var BackupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Резервная копия",
	Long: `Экспорт и импорт всех записей и напоминаний в JSON.

Импорт заменяет коллекции, которые есть в файле; профиль из файла
не восстанавливается.`,
}

var ExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Сохранить резервную копию",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.Unlocked(cmd)
		if err != nil {
			return err
		}

		path, err := app.ExportFile(exportOut)
		if err != nil {
			return fmt.Errorf("ошибка экспорта: %w", err)
		}

		types.Success(cmd, "Резервная копия сохранена в %s", path)
		return nil
	},
}

var ImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Загрузить резервную копию",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.Unlocked(cmd)
		if err != nil {
			return err
		}

		res, err := app.ImportFile(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("не удалось импортировать данные: %w", err)
		}

		out := cmd.OutOrStdout()
		if res.NotesReplaced {
			fmt.Fprintf(out, "Записей загружено: %d\n", res.NotesImported)
		}
		if res.RemindersReplaced {
			fmt.Fprintf(out, "Напоминаний загружено: %d\n", res.RemindersImported)
		}
		types.Success(cmd, "Данные импортированы")
		return nil
	},
}

var StatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Количество записей и напоминаний",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.Unlocked(cmd)
		if err != nil {
			return err
		}

		stats, err := app.Stats()
		if err != nil {
			return err
		}

		r, err := types.Renderer(cmd, statsOutput)
		if err != nil {
			return err
		}
		return r.Stats(stats)
	},
}

func init() {
	ExportCmd.Flags().StringVar(&exportOut, "out", "", "файл резервной копии (по умолчанию diary-backup.json)")
	types.AddOutputFlag(StatsCmd, &statsOutput)

	BackupCmd.AddCommand(ExportCmd)
	BackupCmd.AddCommand(ImportCmd)
	BackupCmd.AddCommand(StatsCmd)
}
