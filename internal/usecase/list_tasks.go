package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/procrastinot/internal/domain"
)

// View selects which tasks ListTasks renders.
type View int

// Views.
const (
	ViewTodo     View = iota // open tasks and their open ancestors
	ViewList                 // members of a named list
	ViewFind                 // names containing Query
	ViewTagged               // tasks carrying tag Query
	ViewUpcoming             // due within Days after From
	ViewBefore               // due on or before From
	ViewBetween              // due between From and To
)

// String returns the command name of the view.
func (v View) String() string {
	switch v {
	case ViewTodo:
		return "todo"
	case ViewList:
		return "list"
	case ViewFind:
		return "find"
	case ViewTagged:
		return "tagged-with"
	case ViewUpcoming:
		return "upcoming"
	case ViewBefore:
		return "before"
	case ViewBetween:
		return "between"
	default:
		return "unknown"
	}
}

// ListTasksInput contains the parameters for listing tasks.
// Fields are ordered to minimize memory padding.
type ListTasksInput struct {
	From  time.Time // Start date (upcoming, before, between)
	To    time.Time // End date (between)
	Query string    // List name, substring or tag
	View  View      // Which view to render
	Days  int       // Window length for upcoming (0 = default)
}

// ListTasksOutput contains the rendered lines.
type ListTasksOutput struct {
	Lines []domain.Line
}

// ListTasks is the use case for the read-only tree views.
type ListTasks struct {
	registry *domain.Registry
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(registry *domain.Registry) *ListTasks {
	return &ListTasks{
		registry: registry,
	}
}

// Execute renders the selected view. An empty view returns
// domain.ErrNoTaskFound.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	var (
		lines []domain.Line
		err   error
	)
	switch in.View {
	case ViewTodo:
		lines, err = uc.registry.Todo()
	case ViewList:
		lines, err = uc.registry.PrintList(in.Query)
	case ViewFind:
		lines, err = uc.registry.Find(in.Query)
	case ViewTagged:
		lines, err = uc.registry.TaggedWith(in.Query)
	case ViewUpcoming:
		days := in.Days
		if days <= 0 {
			days = domain.UpcomingDays
		}
		lines, err = uc.registry.Upcoming(in.From, days)
	case ViewBefore:
		lines, err = uc.registry.Before(in.From)
	case ViewBetween:
		lines, err = uc.registry.Between(in.From, in.To)
	default:
		return nil, fmt.Errorf("unknown view %d", in.View)
	}
	if err != nil {
		return nil, err
	}
	return &ListTasksOutput{Lines: lines}, nil
}
