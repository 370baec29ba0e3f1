package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hirepaso/internal/cli/application"
	"github.com/thenoetrevino/hirepaso/internal/cli/auth"
	"github.com/thenoetrevino/hirepaso/internal/cli/pipeline"
	"github.com/thenoetrevino/hirepaso/internal/config"
	"github.com/thenoetrevino/hirepaso/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "hirepaso",
	Short: "hirepaso - A terminal kanban board for recruiting pipelines",
	Long: `hirepaso shows a vacancy's applications as a kanban board, one column per
stage, and moves applications between stages on the recruiting service.

Run without a subcommand to open the board for the last vacancy you used.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runBoard,
}

func init() {
	rootCmd.AddCommand(
		boardCmd(),
		pipeline.PipelineCmd(),
		application.ApplicationCmd(),
		auth.SessionCmd(),
	)
}

// setup loads .env and the config file, then points logging at the log file
func setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := logging.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	return nil
}

func Execute() error {
	return rootCmd.Execute()
}
