// cmd/diary/cmd/reminder/delete.go
package reminder

import (
	"fmt"

	"github.com/spf13/cobra"

	"diarykeeper/cmd/diary/cmd/types"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Удалить напоминание",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.Unlocked(cmd)
		if err != nil {
			return err
		}

		removed, err := app.DeleteReminder(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("ошибка удаления напоминания: %w", err)
		}
		if !removed {
			fmt.Fprintln(cmd.OutOrStdout(), "Напоминание не найдено")
			return nil
		}

		types.Success(cmd, "Напоминание удалено")
		return nil
	},
}
