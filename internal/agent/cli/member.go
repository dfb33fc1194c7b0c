package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// strValue разворачивает опциональное строковое поле для вывода.
//
// Отсутствующие поля сервер отдаёт как null; в терминале показываем "-".
func strValue(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

// optFlag возвращает указатель на значение флага, если флаг был задан,
// и nil в противном случае. Незаданные поля не отправляются на сервер.
func optFlag(cmd *cobra.Command, name, value string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}

// requireToken проверяет, что пользователь залогинен, и возвращает access токен.
func requireToken(app *App) (string, error) {
	if app.Creds == nil || app.Creds.AccessToken == "" {
		return "", errors.New("not logged in; run: famhealth login")
	}
	return app.Creds.AccessToken, nil
}

// NewMemberCmd создаёт группу CLI-команд для работы с членами семьи.
//
// Подкоманды:
//   - add:  добавить члена семьи (--name, --relationship);
//   - list: показать всех членов семьи;
//   - rm:   удалить члена семьи по id.
//
// Примеры использования:
//
//	famhealth member add --name "Бабушка" --relationship "grandmother"
//	famhealth member list
//	famhealth member rm 507f1f77bcf86cd799439011
func NewMemberCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Члены семьи: add / list / rm",
	}

	var name, relationship string
	add := &cobra.Command{
		Use:   "add",
		Short: "Добавить члена семьи",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken(app)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			m, err := c.AddMember(optFlag(cmd, "name", name), optFlag(cmd, "relationship", relationship), token)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "member added: id=%s name=%s\n", m.ID, strValue(m.Name))
			return nil
		},
	}
	add.Flags().StringVar(&name, "name", "", "member name")
	add.Flags().StringVar(&relationship, "relationship", "", "relationship to the user")

	list := &cobra.Command{
		Use:   "list",
		Short: "Показать всех членов семьи",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken(app)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			members, err := c.ListMembers(token)
			if err != nil {
				return err
			}

			if len(members) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no members")
				return nil
			}
			for _, m := range members {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", m.ID, strValue(m.Name), strValue(m.Relationship))
			}
			return nil
		},
	}

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Удалить члена семьи",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken(app)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			if err := c.DeleteMember(args[0], token); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "member deleted")
			return nil
		},
	}

	cmd.AddCommand(add, list, rm)
	return cmd
}
