package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ekorolkova/famhealth/internal/agent/config"
)

// NewRegisterCmd создаёт CLI-команду для регистрации нового пользователя.
//
// Команда регистрирует пользователя на сервере FamHealth по email, паролю
// и имени. Сервер сразу возвращает access токен, который сохраняется
// в локальный конфигурационный файл — отдельный login не требуется.
//
// Пароль можно передать флагом --password, прочитать из stdin
// (--password-stdin) или ввести интерактивно со скрытым вводом.
//
// Пример использования:
//
//	famhealth register --email test@example.com --name "Test User"
func NewRegisterCmd(app *App) *cobra.Command {
	var email, password, name string
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Регистрация нового пользователя",
		Long: `Регистрация нового пользователя на сервере.

Пример:
  famhealth register --email test@example.com --name "Test User"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := resolvePassword(cmd, password, passwordStdin)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			// выполняет добавление нового пользователя в бд
			resp, err := c.Register(email, pw, name)
			if err != nil {
				return err
			}

			// регистрация сразу возвращает токен — сохраняем его
			app.Creds.AccessToken = resp.AccessToken
			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "registration successful (token saved)")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email for registration")
	cmd.Flags().StringVar(&password, "password", "", "password (omit to enter interactively)")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read password from stdin")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.MarkFlagRequired("email")

	return cmd
}
