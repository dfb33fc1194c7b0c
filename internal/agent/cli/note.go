package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewNoteCmd создаёт группу CLI-команд для работы с заметками.
//
// Подкоманды:
//   - add:  создать заметку (--content, --type);
//   - list: показать все заметки пользователя.
//
// Примеры использования:
//
//	famhealth note add --content "записаться к врачу" --type reminder
//	famhealth note list
func NewNoteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Заметки: add / list",
	}

	var content, noteType string
	add := &cobra.Command{
		Use:   "add",
		Short: "Создать заметку",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken(app)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			n, err := c.AddNote(optFlag(cmd, "content", content), optFlag(cmd, "type", noteType), token)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "note created: id=%s\n", n.ID)
			return nil
		},
	}
	add.Flags().StringVar(&content, "content", "", "note content")
	add.Flags().StringVar(&noteType, "type", "", "note type")

	list := &cobra.Command{
		Use:   "list",
		Short: "Показать все заметки",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken(app)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			notes, err := c.ListNotes(token)
			if err != nil {
				return err
			}

			if len(notes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no notes")
				return nil
			}
			for _, n := range notes {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", n.ID, strValue(n.Content))
			}
			return nil
		},
	}

	cmd.AddCommand(add, list)
	return cmd
}
