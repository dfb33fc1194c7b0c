package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// NewFamilyCmd создаёт CLI-команду для просмотра семьи пользователя.
//
// Семья создаётся сервером лениво при первом обращении, поэтому команда
// всегда возвращает семью для залогиненного пользователя.
//
// Пример использования:
//
//	famhealth family
func NewFamilyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "family",
		Short: "Показать семью (создаётся при первом запросе)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.AccessToken == "" {
				return errors.New("not logged in; run: famhealth login")
			}

			c := NewAPIClient(app.ServerURL)
			f, err := c.Family(app.Creds.AccessToken)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "id=%s\nname=%s\n", f.ID, f.Name)
			return nil
		},
	}
}
