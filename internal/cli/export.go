package cli

import (
	"github.com/runoshun/procrastinot/internal/app"
	"github.com/runoshun/procrastinot/internal/infra/snapshot"
	"github.com/runoshun/procrastinot/internal/usecase"
	"github.com/spf13/cobra"
)

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print a snapshot of all tasks and lists",
		Long: `Print a read-only snapshot of every task, deleted ones included,
as a tree in creation order followed by the lists.

Examples:
  export
  export --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ExportUseCase().Execute(cmd.Context(), usecase.ExportInput{Format: format})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out.Data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", snapshot.FormatYAML, "Output format (yaml, json)")
	return cmd
}
