// cmd/diary/cmd/note/delete.go
package note

import (
	"fmt"

	"github.com/spf13/cobra"

	"diarykeeper/cmd/diary/cmd/types"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Удалить запись",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.Unlocked(cmd)
		if err != nil {
			return err
		}

		removed, err := app.DeleteNote(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("ошибка удаления записи: %w", err)
		}
		if !removed {
			fmt.Fprintln(cmd.OutOrStdout(), "Запись не найдена")
			return nil
		}

		types.Success(cmd, "Запись удалена")
		return nil
	},
}
