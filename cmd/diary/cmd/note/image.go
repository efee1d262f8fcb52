// cmd/diary/cmd/note/image.go
package note

import (
	"fmt"

	"github.com/spf13/cobra"

	"diarykeeper/cmd/diary/cmd/types"
)

var imageOut string

var ImageCmd = &cobra.Command{
	Use:   "image [id]",
	Short: "Сохранить картинку записи в файл",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.Unlocked(cmd)
		if err != nil {
			return err
		}

		path, err := app.SaveImage(args[0], imageOut)
		if err != nil {
			return fmt.Errorf("ошибка сохранения картинки: %w", err)
		}

		types.Success(cmd, "Картинка сохранена в %s", path)
		return nil
	},
}

func init() {
	ImageCmd.Flags().StringVar(&imageOut, "out", "", "путь к файлу (по умолчанию <id>.<расширение>)")
}
