package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ekorolkova/famhealth/internal/agent/config"
)

// NewLoginCmd создаёт CLI-команду для входа пользователя в систему.
//
// Команда выполняет аутентификацию пользователя на сервере FamHealth,
// получает access токен и сохраняет его в локальный конфигурационный файл.
//
// Пароль можно передать флагом --password, прочитать из stdin
// (--password-stdin) или ввести интерактивно со скрытым вводом.
//
// Пример использования:
//
//	famhealth login --email test@example.com
//
// В случае успешного выполнения токен сохраняется локально, а пользователю
// выводится сообщение об успешном входе.
func NewLoginCmd(app *App) *cobra.Command {
	var email, password string
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Логин пользователя (получить access токен)",
		Long: `Логин пользователя.

Пример:
  famhealth login --email test@example.com
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := resolvePassword(cmd, password, passwordStdin)
			if err != nil {
				return err
			}

			// создаём API-клиент для общения с сервером
			c := NewAPIClient(app.ServerURL)
			// выполняем логин пользователя
			resp, err := c.Login(email, pw)
			if err != nil {
				return err
			}

			// сохраняем полученный токен в состоянии приложения
			app.Creds.AccessToken = resp.AccessToken

			// сохраняем токен в локальный конфигурационный файл
			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "login ok (token saved)")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email for login")
	cmd.Flags().StringVar(&password, "password", "", "password (omit to enter interactively)")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read password from stdin")
	cmd.MarkFlagRequired("email")

	return cmd
}
