package cli

import (
	"errors"
	"fmt"

	"github.com/runoshun/procrastinot/internal/app"
	"github.com/runoshun/procrastinot/internal/domain"
	"github.com/runoshun/procrastinot/internal/usecase"
	"github.com/spf13/cobra"
)

// newAddCommand creates the add command.
func newAddCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:                "add <name> [HI|MD|LO] [yyyy-mm-dd]",
		Short:              "Add a task",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := parseAddArgs(args)
			if err != nil {
				return err
			}
			out, err := c.AddTaskUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %d: %s\n", out.Task.ID(), out.Task.Name())
			return nil
		},
	}
}

// parseAddArgs accepts a name followed by at most one priority and a date.
// A date directly after the name cannot be followed by a third argument.
func parseAddArgs(args []string) (usecase.AddTaskInput, error) {
	var in usecase.AddTaskInput
	if len(args) < 1 || len(args) > 3 {
		return in, errInvalidArguments
	}
	name, err := parseName(args[0])
	if err != nil {
		return in, err
	}
	in.Name = name

	hasPriority := false
	for _, arg := range args[1:] {
		switch {
		case priorityPattern.MatchString(arg) && !hasPriority:
			if in.Priority, err = parsePriority(arg); err != nil {
				return in, err
			}
			hasPriority = true
		case datePattern.MatchString(arg):
			if in.Due, err = parseDate(arg); err != nil {
				return in, err
			}
		default:
			return in, errInvalidArguments
		}
	}
	if len(args) == 3 && datePattern.MatchString(args[1]) {
		return in, errInvalidArguments
	}
	return in, nil
}

// newAddListCommand creates the add-list command.
func newAddListCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:                "add-list <name>",
		Short:              "Add a named list",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkArgs(args, 1); err != nil {
				return err
			}
			name, err := parseList(args[0])
			if err != nil {
				return err
			}
			out, err := c.AddListUseCase().Execute(cmd.Context(), usecase.AddListInput{Name: name})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s\n", out.List.Name())
			return nil
		},
	}
}

// newTagCommand creates the tag command.
func newTagCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:                "tag <id|list> <tag>",
		Short:              "Tag a task or a list",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkArgs(args, 2); err != nil {
				return err
			}
			if !tagPattern.MatchString(args[1]) {
				return errInvalidArguments
			}
			in := usecase.TagInput{Tag: args[1]}
			switch {
			case idPattern.MatchString(args[0]):
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				in.TaskID = id
			case listPattern.MatchString(args[0]):
				in.List = args[0]
			default:
				return errInvalidArguments
			}
			out, err := c.TagUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "tagged %s with %s\n", out.Name, in.Tag)
			return nil
		},
	}
}

// newAssignCommand creates the assign command.
func newAssignCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:                "assign <id> <id|list>",
		Short:              "Assign a task to a parent task or a list",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkArgs(args, 2); err != nil {
				return err
			}
			if !idPattern.MatchString(args[0]) {
				return errInvalidArguments
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			in := usecase.AssignInput{TaskID: id}
			switch {
			case idPattern.MatchString(args[1]):
				if in.ParentID, err = parseID(args[1]); err != nil {
					return err
				}
			case listPattern.MatchString(args[1]):
				in.List = args[1]
			default:
				return errInvalidArguments
			}
			out, err := c.AssignUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "assigned %s to %s\n", out.Name, out.Target)
			return nil
		},
	}
}

// newChangeDateCommand creates the change-date command.
func newChangeDateCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:                "change-date <id> <yyyy-mm-dd>",
		Short:              "Change the due date of a task",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkArgs(args, 2); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			due, err := parseDate(args[1])
			if err != nil {
				return err
			}
			out, err := c.ChangeDateUseCase().Execute(cmd.Context(), usecase.ChangeDateInput{TaskID: id, Due: due})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "changed %s to %s\n", out.Task.Name(), due.Format(domain.DateLayout))
			return nil
		},
	}
}

// newChangePriorityCommand creates the change-priority command.
// Omitting the priority clears it.
func newChangePriorityCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:                "change-priority <id> [HI|MD|LO]",
		Short:              "Change or clear the priority of a task",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				if err := checkArgs(args, 2); err != nil {
					return err
				}
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			priority := domain.PriorityNone
			if len(args) == 2 {
				if priority, err = parsePriority(args[1]); err != nil {
					return err
				}
			}
			out, err := c.ChangePriorityUseCase().Execute(cmd.Context(), usecase.ChangePriorityInput{TaskID: id, Priority: priority})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "changed %s to %s\n", out.Task.Name(), priority)
			return nil
		},
	}
}

// newDeleteCommand creates the delete command.
func newDeleteCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:                "delete <id>",
		Short:              "Delete a task and its subtasks",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := singleID(args)
			if err != nil {
				return err
			}
			out, err := c.DeleteTaskUseCase().Execute(cmd.Context(), usecase.DeleteTaskInput{TaskID: id})
			if errors.Is(err, domain.ErrTaskDeleted) {
				return errAlreadyDeleted
			}
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s and %d subtasks\n", out.Task.Name(), out.Subtasks)
			return nil
		},
	}
}

// newRestoreCommand creates the restore command.
func newRestoreCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:                "restore <id>",
		Short:              "Restore a deleted task and its deleted subtasks",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := singleID(args)
			if err != nil {
				return err
			}
			out, err := c.RestoreTaskUseCase().Execute(cmd.Context(), usecase.RestoreTaskInput{TaskID: id})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "restored %s and %d subtasks\n", out.Task.Name(), out.Subtasks)
			return nil
		},
	}
}

// newToggleCommand creates the toggle command.
func newToggleCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:                "toggle <id>",
		Short:              "Toggle completion of a task and its subtasks",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := singleID(args)
			if err != nil {
				return err
			}
			out, err := c.ToggleTaskUseCase().Execute(cmd.Context(), usecase.ToggleTaskInput{TaskID: id})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "toggled %s and %d subtasks\n", out.Task.Name(), out.Subtasks)
			return nil
		},
	}
}

func singleID(args []string) (int, error) {
	if err := checkArgs(args, 1); err != nil {
		return 0, err
	}
	return parseID(args[0])
}
