// cmd/diary/cmd/note/create.go
package note

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"diarykeeper/cmd/diary/cmd/types"
	"diarykeeper/internal/domain/note"
	"diarykeeper/internal/utils/ident"
)

var (
	createTitle   string
	createContent string
	createImage   string
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Новая запись",
	Long: `Создание записи с текущей датой.

Текст берётся из --content; значение "-" читает текст из stdin.
К записи можно прикрепить картинку до 5 МБ (--image).`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.Unlocked(cmd)
		if err != nil {
			return err
		}

		content, err := readContent(cmd, createContent)
		if err != nil {
			return err
		}

		var image string
		if createImage != "" {
			if image, err = app.LoadImage(createImage); err != nil {
				return fmt.Errorf("ошибка загрузки фото: %w", err)
			}
		}

		n, err := app.CreateNote(cmd.Context(), note.Draft{
			Title:   createTitle,
			Content: content,
			Image:   image,
		})
		if err != nil {
			return fmt.Errorf("ошибка создания записи: %w", err)
		}

		types.Success(cmd, "Запись сохранена (ID: %s)", ident.Short(n.ID))
		return nil
	},
}

// readContent подставляет stdin вместо "-".
func readContent(cmd *cobra.Command, content string) (string, error) {
	if content != "-" {
		return content, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("ошибка чтения текста: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func init() {
	CreateCmd.Flags().StringVarP(&createTitle, "title", "t", "", "заголовок записи")
	CreateCmd.Flags().StringVarP(&createContent, "content", "c", "", "текст записи ('-' читает stdin)")
	CreateCmd.Flags().StringVarP(&createImage, "image", "i", "", "путь к картинке")
}
