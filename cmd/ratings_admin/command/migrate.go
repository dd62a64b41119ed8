package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			applied, err := a.migrate(a.cfg.DatabaseURL, a.logger)
			if err != nil {
				return err
			}
			if applied {
				fmt.Fprintln(cmd.OutOrStdout(), "✓ Migrations applied")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Schema is already up to date")
			}
			return nil
		},
	}
}
