package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/runoshun/procrastinot/internal/app"
	"github.com/runoshun/procrastinot/internal/domain"
	"github.com/runoshun/procrastinot/internal/usecase"
	"github.com/spf13/cobra"
)

// printLines writes rendered tree lines, or the empty marker on ErrNoTaskFound.
func printLines(w io.Writer, lines []domain.Line, err error) error {
	if errors.Is(err, domain.ErrNoTaskFound) {
		_, _ = fmt.Fprintln(w, UserMessage(err))
		return nil
	}
	if err != nil {
		return err
	}
	for _, l := range lines {
		_, _ = fmt.Fprintln(w, l.String())
	}
	return nil
}

// runView executes ListTasks and prints its result.
func runView(cmd *cobra.Command, c *app.Container, in usecase.ListTasksInput) error {
	out, err := c.ListTasksUseCase().Execute(cmd.Context(), in)
	if err != nil {
		return printLines(cmd.OutOrStdout(), nil, err)
	}
	return printLines(cmd.OutOrStdout(), out.Lines, nil)
}

// newShowCommand creates the show command.
func newShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:                "show <id>",
		Short:              "Show a task with its subtasks",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := singleID(args)
			if err != nil {
				return err
			}
			out, err := c.ShowTaskUseCase().Execute(cmd.Context(), usecase.ShowTaskInput{TaskID: id})
			if err != nil {
				return err
			}
			return printLines(cmd.OutOrStdout(), out.Lines, nil)
		},
	}
}

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:                "list <list>",
		Short:              "Show the tasks of a list",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkArgs(args, 1); err != nil {
				return err
			}
			name, err := parseList(args[0])
			if err != nil {
				return err
			}
			return runView(cmd, c, usecase.ListTasksInput{View: usecase.ViewList, Query: name})
		},
	}
}

// newTodoCommand creates the todo command.
func newTodoCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:                "todo",
		Short:              "Show open tasks",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkArgs(args, 0); err != nil {
				return err
			}
			return runView(cmd, c, usecase.ListTasksInput{View: usecase.ViewTodo})
		},
	}
}

// newFindCommand creates the find command.
func newFindCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:                "find <substring>",
		Short:              "Show tasks whose name contains a substring",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkArgs(args, 1); err != nil {
				return err
			}
			query, err := parseName(args[0])
			if err != nil {
				return err
			}
			return runView(cmd, c, usecase.ListTasksInput{View: usecase.ViewFind, Query: query})
		},
	}
}

// newTaggedWithCommand creates the tagged-with command.
func newTaggedWithCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:                "tagged-with <tag>",
		Short:              "Show tasks carrying a tag",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkArgs(args, 1); err != nil {
				return err
			}
			tag, err := parseTag(args[0])
			if err != nil {
				return err
			}
			return runView(cmd, c, usecase.ListTasksInput{View: usecase.ViewTagged, Query: tag})
		},
	}
}

// newUpcomingCommand creates the upcoming command.
// Without a date the window starts today.
func newUpcomingCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:                "upcoming [yyyy-mm-dd]",
		Short:              "Show tasks due in the coming days",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			from := domain.Today(c.Clock)
			switch len(args) {
			case 0:
			case 1:
				d, err := parseDate(args[0])
				if err != nil {
					return err
				}
				from = d
			default:
				return checkArgs(args, 1)
			}
			return runView(cmd, c, usecase.ListTasksInput{
				View: usecase.ViewUpcoming,
				From: from,
				Days: c.AppConfig.Views.UpcomingDays,
			})
		},
	}
}

// newBeforeCommand creates the before command.
func newBeforeCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:                "before <yyyy-mm-dd>",
		Short:              "Show tasks due on or before a date",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkArgs(args, 1); err != nil {
				return err
			}
			date, err := parseDate(args[0])
			if err != nil {
				return err
			}
			return runView(cmd, c, usecase.ListTasksInput{View: usecase.ViewBefore, From: date})
		},
	}
}

// newBetweenCommand creates the between command.
func newBetweenCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:                "between <yyyy-mm-dd> <yyyy-mm-dd>",
		Short:              "Show tasks due between two dates",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkArgs(args, 2); err != nil {
				return err
			}
			from, err := parseDate(args[0])
			if err != nil {
				return err
			}
			to, err := parseDate(args[1])
			if err != nil {
				return err
			}
			return runView(cmd, c, usecase.ListTasksInput{View: usecase.ViewBetween, From: from, To: to})
		},
	}
}

// newDuplicatesCommand creates the duplicates command.
func newDuplicatesCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:                "duplicates",
		Short:              "Report tasks that repeat an earlier name",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkArgs(args, 0); err != nil {
				return err
			}
			out, err := c.DuplicatesUseCase().Execute(cmd.Context(), usecase.DuplicatesInput{})
			if err != nil {
				return err
			}
			ids := make([]string, 0, len(out.IDs))
			for _, id := range out.IDs {
				ids = append(ids, strconv.Itoa(id))
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Found %d duplicates: %s\n", len(ids), strings.Join(ids, ", "))
			return nil
		},
	}
}
