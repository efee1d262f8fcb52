// cmd/diary/cmd/auth/register.go
package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"diarykeeper/cmd/diary/cmd/types"
)

var registerName string

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Создать профиль",
	Long: `Создание профиля дневника: имя и PIN из 4 цифр.

Профиль создаётся один раз; PIN хранится локально и защищает
дневник от случайного взгляда, а не от злоумышленника.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		name := registerName
		if name == "" {
			if name, err = types.ReadLine("Имя: "); err != nil {
				return err
			}
		}

		pin := types.PinFromFlags(cmd, app)
		if pin == "" {
			if pin, err = types.ReadPin("PIN (4 цифры): "); err != nil {
				return err
			}
			confirm, err := types.ReadPin("Повторите PIN: ")
			if err != nil {
				return err
			}
			if pin != confirm {
				return fmt.Errorf("PIN-коды не совпадают")
			}
		}

		profile, err := app.Register(cmd.Context(), name, pin)
		if err != nil {
			return fmt.Errorf("ошибка регистрации: %w", err)
		}

		types.Success(cmd, "Добро пожаловать, %s!", profile.Name)
		return nil
	},
}

func init() {
	RegisterCmd.Flags().StringVar(&registerName, "name", "", "имя владельца дневника")
}
