// Package cli provides the command-line interface for procrastinot.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/runoshun/procrastinot/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupTask  = "task"
	groupView  = "view"
	groupSetup = "setup"
)

// viewVerbs are the verbs listed under the view group.
var viewVerbs = map[string]bool{
	"show": true, "list": true, "todo": true, "find": true, "upcoming": true,
	"before": true, "between": true, "tagged-with": true, "duplicates": true, "export": true,
}

// NewRootCommand creates the root command for procrastinot.
// It receives the container for dependency injection and version for display.
// Without a subcommand the root runs the interactive shell.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var (
		script     string
		configPath string
	)

	root := &cobra.Command{
		Use:   "procrastinot",
		Short: "Hierarchical in-memory task tracker",
		Long: `procrastinot keeps tasks with priorities, due dates and tags in a
tree, groups them into named lists and prints filtered views.

Without a subcommand it reads one command per line from standard input
(or from --script) until "quit" or end of input. All state lives in
memory for the duration of the session.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, closeIn, err := openScript(cmd, script)
			if err != nil {
				return err
			}
			defer closeIn()
			return NewShell(c, cmd.OutOrStdout(), cmd.ErrOrStderr()).Run(cmd.Context(), in)
		},
	}

	root.PersistentFlags().StringVar(&script, "script", "", "Read commands from a file instead of standard input")
	// Read by main before the container is built; declared here for help output.
	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to the local config file")

	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Commands:"},
		&cobra.Group{ID: groupView, Title: "View Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	for _, cmd := range verbCommands(c) {
		cmd.GroupID = groupTask
		if viewVerbs[cmd.Name()] {
			cmd.GroupID = groupView
		}
		root.AddCommand(cmd)
	}

	browseCmd := newBrowseCommand(c, &script)
	browseCmd.GroupID = groupView
	root.AddCommand(browseCmd)

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup
	root.AddCommand(configCmd)

	return root
}

// openScript returns the script file, or the command's input when path is empty.
func openScript(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open script: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
