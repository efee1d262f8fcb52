// cmd/diary/cmd/home.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"diarykeeper/cmd/diary/cmd/types"
)

var homeOutput string

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Главный экран: сегодняшние напоминания и записи",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.Unlocked(cmd)
		if err != nil {
			return err
		}

		overview, err := app.Overview()
		if err != nil {
			return err
		}

		r, err := types.Renderer(cmd, homeOutput)
		if err != nil {
			return err
		}
		if r.Structured() {
			return r.Value(overview)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Привет, %s! Сегодня %s\n\n", overview.Name, overview.Date.Format("2006-01-02"))
		fmt.Fprintln(out, "Напоминания на сегодня:")
		if err := r.Reminders(overview.Reminders); err != nil {
			return err
		}
		fmt.Fprintln(out, "\nЗаписи за сегодня:")
		return r.Notes(overview.Notes)
	},
}

func init() {
	types.AddOutputFlag(homeCmd, &homeOutput)
}
