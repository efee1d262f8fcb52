// cmd/diary/cmd/note/list.go
package note

import (
	"fmt"

	"github.com/spf13/cobra"

	"diarykeeper/cmd/diary/cmd/types"
	"diarykeeper/internal/domain/view"
)

var (
	listOrder   string
	listOutput  string
	todayOutput string
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список записей",
	Long:  `Все записи, отсортированные по дате: desc (сначала новые) или asc.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.Unlocked(cmd)
		if err != nil {
			return err
		}

		order, err := view.ParseSortOrder(listOrder)
		if err != nil {
			return err
		}

		notes, err := app.Notes(order)
		if err != nil {
			return fmt.Errorf("ошибка получения списка записей: %w", err)
		}

		r, err := types.Renderer(cmd, listOutput)
		if err != nil {
			return err
		}
		return r.Notes(notes)
	},
}

var TodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Записи за сегодня",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.Unlocked(cmd)
		if err != nil {
			return err
		}

		notes, err := app.TodayNotes()
		if err != nil {
			return err
		}

		r, err := types.Renderer(cmd, todayOutput)
		if err != nil {
			return err
		}
		return r.Notes(notes)
	},
}

func init() {
	ListCmd.Flags().StringVar(&listOrder, "order", string(view.Desc), "порядок сортировки (asc, desc)")
	types.AddOutputFlag(ListCmd, &listOutput)
	types.AddOutputFlag(TodayCmd, &todayOutput)
}
