package application

import (
	"github.com/spf13/cobra"
)

// ApplicationCmd returns the application parent command
func ApplicationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "application",
		Aliases: []string{"app"},
		Short:   "Move and inspect applications",
	}

	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(ShowCmd())

	return cmd
}
