// cmd/diary/cmd/note/get.go
package note

import (
	"fmt"

	"github.com/spf13/cobra"

	"diarykeeper/cmd/diary/cmd/types"
)

var getOutput string

var GetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Просмотреть запись",
	Long: `Просмотр записи по ID. Достаточно однозначного начала или конца ID,
например восьми символов из списка записей.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.Unlocked(cmd)
		if err != nil {
			return err
		}

		n, err := app.Note(args[0])
		if err != nil {
			return fmt.Errorf("ошибка получения записи: %w", err)
		}

		r, err := types.Renderer(cmd, getOutput)
		if err != nil {
			return err
		}
		return r.Note(n)
	},
}

func init() {
	types.AddOutputFlag(GetCmd, &getOutput)
}
