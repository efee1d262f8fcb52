// cmd/diary/cmd/reminder/create.go
package reminder

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"diarykeeper/cmd/diary/cmd/types"
	"diarykeeper/internal/app/diary"
	"diarykeeper/internal/domain/reminder"
	"diarykeeper/internal/utils/ident"
)

var (
	createDate string
	createTime string
	createText string
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Новое напоминание",
	Long: `Создание напоминания на дату (ГГГГ-ММ-ДД, по умолчанию сегодня)
и время ЧЧ:ММ.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.Unlocked(cmd)
		if err != nil {
			return err
		}

		day, err := parseDay(app, createDate)
		if err != nil {
			return err
		}

		r, err := app.CreateReminder(cmd.Context(), reminder.Draft{
			Date:        day,
			Time:        createTime,
			Description: createText,
		})
		if err != nil {
			return fmt.Errorf("ошибка создания напоминания: %w", err)
		}

		types.Success(cmd, "Напоминание на %s %s добавлено (ID: %s)",
			r.Date.Local().Format(reminder.DateLayout), r.Time, ident.Short(r.ID))
		return nil
	},
}

// parseDay разбирает дату; пустая строка означает сегодня.
func parseDay(app *diary.App, s string) (time.Time, error) {
	today := app.Today()
	if s == "" {
		return today, nil
	}
	day, err := reminder.ParseDate(s, today.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("дата должна быть в формате ГГГГ-ММ-ДД: %w", err)
	}
	return day, nil
}

func init() {
	CreateCmd.Flags().StringVarP(&createDate, "date", "d", "", "дата ГГГГ-ММ-ДД (по умолчанию сегодня)")
	CreateCmd.Flags().StringVarP(&createTime, "time", "t", "", "время ЧЧ:ММ")
	CreateCmd.Flags().StringVarP(&createText, "text", "m", "", "описание")
}
