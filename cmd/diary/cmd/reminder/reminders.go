package reminder

import (
	"github.com/spf13/cobra"
)

// ReminderCmd - родительская команда для напоминаний
var ReminderCmd = &cobra.Command{
	Use:   "reminder",
	Short: "Напоминания",
	Long:  `Напоминания привязаны к календарной дате и времени ЧЧ:ММ.`,
}

func init() {
	ReminderCmd.AddCommand(CreateCmd)
	ReminderCmd.AddCommand(DeleteCmd)
	ReminderCmd.AddCommand(ListCmd)
	ReminderCmd.AddCommand(TodayCmd)
}
