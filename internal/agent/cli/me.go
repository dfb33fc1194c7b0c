package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// NewMeCmd создаёт CLI-команду для просмотра профиля текущего пользователя.
//
// Команда требует предварительного логина: access токен берётся
// из локального конфигурационного файла.
//
// Пример использования:
//
//	famhealth me
func NewMeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Профиль текущего пользователя",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.AccessToken == "" {
				return errors.New("not logged in; run: famhealth login")
			}

			c := NewAPIClient(app.ServerURL)
			u, err := c.Me(app.Creds.AccessToken)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "id=%s\nemail=%s\nname=%s\ncreated_at=%s\n",
				u.ID, u.Email, u.Name, u.CreatedAt)
			return nil
		},
	}
}
