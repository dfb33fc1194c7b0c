package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCheckCmd создаёт группу CLI-команд для работы с проверками здоровья.
//
// Записи append-only: их можно добавлять и просматривать, но не менять.
//
// Подкоманды:
//   - add:  записать проверку (--member, --status, --note);
//   - list: показать проверки указанного члена семьи.
//
// Примеры использования:
//
//	famhealth check add --member 507f1f77bcf86cd799439011 --status ok
//	famhealth check list 507f1f77bcf86cd799439011
func NewCheckCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Проверки здоровья: add / list",
	}

	var member, status, note string
	add := &cobra.Command{
		Use:   "add",
		Short: "Записать проверку здоровья",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken(app)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			hc, err := c.AddHealthCheck(
				optFlag(cmd, "member", member),
				optFlag(cmd, "status", status),
				optFlag(cmd, "note", note),
				token,
			)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "health check recorded: id=%s\n", hc.ID)
			return nil
		},
	}
	add.Flags().StringVar(&member, "member", "", "member id")
	add.Flags().StringVar(&status, "status", "", "check status")
	add.Flags().StringVar(&note, "note", "", "free-form note")

	list := &cobra.Command{
		Use:   "list <memberId>",
		Short: "Показать проверки здоровья члена семьи",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken(app)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			checks, err := c.ListHealthChecks(args[0], token)
			if err != nil {
				return err
			}

			if len(checks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no health checks")
				return nil
			}
			for _, hc := range checks {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", hc.ID, strValue(hc.Status))
			}
			return nil
		},
	}

	cmd.AddCommand(add, list)
	return cmd
}
