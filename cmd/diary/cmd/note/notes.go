package note

import (
	"github.com/spf13/cobra"
)

// NoteCmd - родительская команда для всех операций с записями дневника
var NoteCmd = &cobra.Command{
	Use:   "note",
	Short: "Записи дневника",
	Long:  `Создание, просмотр, редактирование и удаление записей.`,
}

func init() {
	NoteCmd.AddCommand(CreateCmd)
	NoteCmd.AddCommand(UpdateCmd)
	NoteCmd.AddCommand(DeleteCmd)
	NoteCmd.AddCommand(GetCmd)
	NoteCmd.AddCommand(ListCmd)
	NoteCmd.AddCommand(TodayCmd)
	NoteCmd.AddCommand(ImageCmd)
}
