package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/procrastinot/internal/app"
	"github.com/spf13/cobra"
)

const quitVerb = "quit"

// verbCommands returns a fresh set of the commands reachable from the shell.
func verbCommands(c *app.Container) []*cobra.Command {
	return []*cobra.Command{
		newAddCommand(c),
		newAddListCommand(c),
		newTagCommand(c),
		newAssignCommand(c),
		newChangeDateCommand(c),
		newChangePriorityCommand(c),
		newDeleteCommand(c),
		newRestoreCommand(c),
		newToggleCommand(c),
		newShowCommand(c),
		newListCommand(c),
		newTodoCommand(c),
		newFindCommand(c),
		newUpcomingCommand(c),
		newBeforeCommand(c),
		newBetweenCommand(c),
		newTaggedWithCommand(c),
		newDuplicatesCommand(c),
		newExportCommand(c),
	}
}

// newShellRoot builds the command tree used to dispatch one shell line.
func newShellRoot(c *app.Container) *cobra.Command {
	root := &cobra.Command{
		Use:           "procrastinot",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
	root.AddCommand(verbCommands(c)...)
	return root
}

// Shell reads commands line by line and dispatches them against one container.
// Fields are ordered to minimize memory padding.
type Shell struct {
	c        *app.Container
	out      io.Writer
	errOut   io.Writer
	verbs    map[string]bool
	errStyle lipgloss.Style
	prompt   string
	color    bool
}

// NewShell creates a shell writing results to out and errors to errOut.
func NewShell(c *app.Container, out, errOut io.Writer) *Shell {
	verbs := make(map[string]bool)
	for _, cmd := range verbCommands(c) {
		verbs[cmd.Name()] = true
	}
	return &Shell{
		c:        c,
		out:      out,
		errOut:   errOut,
		verbs:    verbs,
		errStyle: lipgloss.NewRenderer(errOut).NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true),
		prompt:   c.AppConfig.Shell.Prompt,
		color:    c.AppConfig.Shell.Color,
	}
}

// Run executes every line of in until quit or end of input.
// Lines may be of any length.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	reader := bufio.NewReader(in)
	for {
		if s.prompt != "" {
			_, _ = io.WriteString(s.out, s.prompt)
		}
		line, err := reader.ReadString('\n')
		if line != "" && s.Execute(ctx, strings.TrimRight(line, "\r\n")) {
			return nil
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Execute dispatches a single line and reports whether the shell should stop.
// Blank lines are ignored.
func (s *Shell) Execute(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	verb := fields[0]

	if verb == quitVerb {
		if len(fields) > 1 {
			s.fail(verb, errQuitArgs)
			return false
		}
		return true
	}
	if !s.verbs[verb] {
		s.fail(verb, fmt.Errorf("Command '%s' not found", verb)) //nolint:staticcheck // Shell output.
		return false
	}

	if s.c.TaskLogger != nil {
		s.c.TaskLogger.Debug(0, verb, line)
	}

	root := newShellRoot(s.c)
	root.SetArgs(fields)
	root.SetOut(s.out)
	root.SetErr(s.errOut)
	if err := root.ExecuteContext(ctx); err != nil {
		s.fail(verb, err)
	}
	return false
}

func (s *Shell) fail(verb string, err error) {
	msg := UserMessage(err)
	if s.c.TaskLogger != nil {
		s.c.TaskLogger.Warn(0, verb, msg)
	}
	line := "ERROR: " + msg
	if s.color {
		line = s.errStyle.Render(line)
	}
	_, _ = fmt.Fprintln(s.errOut, line)
}
