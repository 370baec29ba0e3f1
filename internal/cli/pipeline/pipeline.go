package pipeline

import (
	"github.com/spf13/cobra"
)

// PipelineCmd returns the pipeline parent command
func PipelineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pipeline",
		Short: "Inspect a vacancy's application pipeline",
	}

	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(ListCmd())

	return cmd
}
