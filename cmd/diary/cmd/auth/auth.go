package auth

import (
	"github.com/spf13/cobra"
)

// AuthCmd - родительская команда для регистрации и входа по PIN
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Управление профилем",
	Long:  `Регистрация профиля, проверка PIN и состояние дневника.`,
}

func init() {
	AuthCmd.AddCommand(RegisterCmd)
	AuthCmd.AddCommand(LoginCmd)
	AuthCmd.AddCommand(StatusCmd)
}
