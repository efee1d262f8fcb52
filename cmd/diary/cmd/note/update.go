// cmd/diary/cmd/note/update.go
package note

import (
	"fmt"

	"github.com/spf13/cobra"

	"diarykeeper/cmd/diary/cmd/types"
	"diarykeeper/internal/domain/note"
)

var (
	updateTitle       string
	updateContent     string
	updateImage       string
	updateRemoveImage bool
)

var UpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Редактировать запись",
	Long: `Редактирование записи: не указанные флаги оставляют поля как есть.

Дата и ID записи не меняются.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.Unlocked(cmd)
		if err != nil {
			return err
		}

		if updateImage != "" && updateRemoveImage {
			return fmt.Errorf("флаги --image и --remove-image несовместимы")
		}

		current, err := app.Note(args[0])
		if err != nil {
			return fmt.Errorf("ошибка получения записи: %w", err)
		}

		draft := note.Draft{Title: current.Title, Content: current.Content, Image: current.Image}
		if cmd.Flags().Changed("title") {
			draft.Title = updateTitle
		}
		if cmd.Flags().Changed("content") {
			if draft.Content, err = readContent(cmd, updateContent); err != nil {
				return err
			}
		}
		switch {
		case updateRemoveImage:
			draft.Image = ""
		case updateImage != "":
			if draft.Image, err = app.LoadImage(updateImage); err != nil {
				return fmt.Errorf("ошибка загрузки фото: %w", err)
			}
		}

		_, applied, err := app.UpdateNote(cmd.Context(), current.ID, draft)
		if err != nil {
			return fmt.Errorf("ошибка обновления записи: %w", err)
		}
		if !applied {
			fmt.Fprintln(cmd.OutOrStdout(), "Запись не изменена: заголовок и текст не могут быть пустыми")
			return nil
		}

		types.Success(cmd, "Запись обновлена")
		return nil
	},
}

func init() {
	UpdateCmd.Flags().StringVarP(&updateTitle, "title", "t", "", "новый заголовок")
	UpdateCmd.Flags().StringVarP(&updateContent, "content", "c", "", "новый текст ('-' читает stdin)")
	UpdateCmd.Flags().StringVarP(&updateImage, "image", "i", "", "заменить картинку")
	UpdateCmd.Flags().BoolVar(&updateRemoveImage, "remove-image", false, "удалить картинку")
}
