// cmd/diary/cmd/auth/status.go
package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"diarykeeper/cmd/diary/cmd/types"
	"diarykeeper/internal/app/diary/config"
)

var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Состояние дневника",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		cfg := app.Config()

		if profile, ok := app.Session().Profile(); ok {
			fmt.Fprintf(out, "Профиль:   %s\n", profile.Name)
		} else {
			fmt.Fprintln(out, "Профиль:   не создан (diary auth register)")
		}

		fmt.Fprintf(out, "Хранилище: %s\n", app.Driver())
		if app.Volatile() {
			fmt.Fprintln(out, "           SQLite недоступна, данные не сохраняются")
		}
		if app.Driver() == config.DriverSQLite {
			fmt.Fprintf(out, "База:      %s\n", cfg.DataPath)
		}
		fmt.Fprintf(out, "Окружение: %s\n", cfg.Env)
		return nil
	},
}
