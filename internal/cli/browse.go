package cli

import (
	"io"

	"github.com/runoshun/procrastinot/internal/app"
	"github.com/runoshun/procrastinot/internal/domain"
	"github.com/runoshun/procrastinot/internal/tui"
	"github.com/spf13/cobra"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = tui.Run

// newBrowseCommand creates the browse command. The script given by --script
// is replayed silently before the browser opens.
func newBrowseCommand(c *app.Container, script *string) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse tasks in an interactive terminal view",
		Long: `Replay the commands of --script, then open a read-only browser
with the todo view, every task, and one tab per list.

Examples:
  procrastinot browse --script week.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if *script != "" {
				in, closeIn, err := openScript(cmd, *script)
				if err != nil {
					return err
				}
				err = NewShell(c, io.Discard, io.Discard).Run(cmd.Context(), in)
				closeIn()
				if err != nil {
					return err
				}
			}
			return launchTUIFunc(browseViews(c.Registry))
		},
	}
}

// browseViews renders the tabs shown by the browser.
func browseViews(r *domain.Registry) []tui.View {
	todo, _ := r.Todo()
	views := []tui.View{
		{Title: "todo", Lines: todo},
		{Title: "all", Lines: allTasks(r)},
	}
	for _, l := range r.Lists() {
		lines, _ := r.PrintList(l.Name())
		views = append(views, tui.View{Title: l.Name(), Lines: lines})
	}
	return views
}

// allTasks prints every visible top-level task with its subtree.
func allTasks(r *domain.Registry) []domain.Line {
	var roots []*domain.Task
	for _, t := range r.Tasks() {
		if t.Visible() && !t.HasParent() {
			roots = append(roots, t)
		}
	}
	var lines []domain.Line
	for _, t := range domain.SortByPriority(roots) {
		lines = append(lines, r.PrintTask(t, 0)...)
	}
	return lines
}
