// cmd/diary/cmd/auth/login.go
package auth

import (
	"github.com/spf13/cobra"

	"diarykeeper/cmd/diary/cmd/types"
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Проверить PIN",
	Long:  `Проверка PIN: команда завершается ошибкой, если PIN неверный.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.Unlocked(cmd)
		if err != nil {
			return err
		}

		profile, _ := app.Session().Profile()
		types.Success(cmd, "С возвращением, %s!", profile.Name)
		return nil
	},
}
