// cmd/diary/cmd/reminder/list.go
package reminder

import (
	"fmt"

	"github.com/spf13/cobra"

	"diarykeeper/cmd/diary/cmd/types"
	"diarykeeper/internal/domain/reminder"
)

var (
	listDate    string
	listOutput  string
	todayOutput string
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список напоминаний",
	Long:  `Все напоминания или только напоминания на дату --date.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.Unlocked(cmd)
		if err != nil {
			return err
		}

		var reminders []reminder.Reminder
		if listDate == "" {
			reminders, err = app.Reminders()
		} else {
			day, perr := parseDay(app, listDate)
			if perr != nil {
				return perr
			}
			reminders, err = app.RemindersForDate(day)
		}
		if err != nil {
			return fmt.Errorf("ошибка получения напоминаний: %w", err)
		}

		r, err := types.Renderer(cmd, listOutput)
		if err != nil {
			return err
		}
		return r.Reminders(reminders)
	},
}

var TodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Напоминания на сегодня",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.Unlocked(cmd)
		if err != nil {
			return err
		}

		reminders, err := app.TodayReminders()
		if err != nil {
			return err
		}

		r, err := types.Renderer(cmd, todayOutput)
		if err != nil {
			return err
		}
		return r.Reminders(reminders)
	},
}

func init() {
	ListCmd.Flags().StringVarP(&listDate, "date", "d", "", "дата ГГГГ-ММ-ДД")
	types.AddOutputFlag(ListCmd, &listOutput)
	types.AddOutputFlag(TodayCmd, &todayOutput)
}
