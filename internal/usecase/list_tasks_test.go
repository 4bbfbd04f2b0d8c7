package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/runoshun/procrastinot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newViewRegistry builds:
//
//	1 Pay [HI] due 2024-03-01, tagged money, in list Home
//	  2 Bills due 2024-03-05 (done)
//	3 Sleep [LO] due 2024-04-10
//	4 Eat
func newViewRegistry(t *testing.T) *domain.Registry {
	t.Helper()
	registry := domain.NewRegistry()
	registry.AddTask("Pay", domain.PriorityHigh, mustDate(t, "2024-03-01"))
	registry.AddTask("Bills", domain.PriorityNone, mustDate(t, "2024-03-05"))
	registry.AddTask("Sleep", domain.PriorityLow, mustDate(t, "2024-04-10"))
	registry.AddTask("Eat", domain.PriorityNone, time.Time{})
	_, _, err := registry.AssignTask(2, 1)
	require.NoError(t, err)
	_, err = registry.TagTask(1, "money")
	require.NoError(t, err)
	_, err = registry.AddList("Home")
	require.NoError(t, err)
	_, _, err = registry.AssignToList(1, "Home")
	require.NoError(t, err)
	_, _, err = registry.Toggle(2)
	require.NoError(t, err)
	return registry
}

func TestListTasks_Execute(t *testing.T) {
	tests := []struct {
		name string
		in   ListTasksInput
		want string
	}{
		{
			name: "todo",
			in:   ListTasksInput{View: ViewTodo},
			want: "- [ ] Pay [HI]: (money) --> 2024-03-01\n- [ ] Sleep [LO]: --> 2024-04-10\n- [ ] Eat",
		},
		{
			name: "list",
			in:   ListTasksInput{View: ViewList, Query: "Home"},
			want: "- [ ] Pay [HI]: (money) --> 2024-03-01\n  - [x] Bills: --> 2024-03-05",
		},
		{
			name: "find",
			in:   ListTasksInput{View: ViewFind, Query: "ill"},
			want: "- [x] Bills: --> 2024-03-05",
		},
		{
			name: "tagged",
			in:   ListTasksInput{View: ViewTagged, Query: "money"},
			want: "- [ ] Pay [HI]: (money) --> 2024-03-01\n  - [x] Bills: --> 2024-03-05",
		},
		{
			name: "upcoming uses default window",
			in:   ListTasksInput{View: ViewUpcoming, From: mustDate(t, "2024-02-28")},
			want: "- [ ] Pay [HI]: (money) --> 2024-03-01\n  - [x] Bills: --> 2024-03-05",
		},
		{
			name: "upcoming with custom window",
			in:   ListTasksInput{View: ViewUpcoming, From: mustDate(t, "2024-03-02"), Days: 3},
			want: "- [x] Bills: --> 2024-03-05",
		},
		{
			name: "before",
			in:   ListTasksInput{View: ViewBefore, From: mustDate(t, "2024-03-01")},
			want: "- [ ] Pay [HI]: (money) --> 2024-03-01\n  - [x] Bills: --> 2024-03-05",
		},
		{
			name: "between reversed bounds",
			in:   ListTasksInput{View: ViewBetween, From: mustDate(t, "2024-04-30"), To: mustDate(t, "2024-04-01")},
			want: "- [ ] Sleep [LO]: --> 2024-04-10",
		},
	}

	uc := NewListTasks(newViewRegistry(t))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.Execute(context.Background(), tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, render(out.Lines))
		})
	}
}

func TestListTasks_Execute_NoTaskFound(t *testing.T) {
	uc := NewListTasks(newViewRegistry(t))

	tests := []ListTasksInput{
		{View: ViewFind, Query: "Gym"},
		{View: ViewTagged, Query: "work"},
		{View: ViewBefore, From: mustDate(t, "2024-01-01")},
	}
	for _, in := range tests {
		t.Run(in.View.String(), func(t *testing.T) {
			_, err := uc.Execute(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrNoTaskFound)
		})
	}
}

func TestListTasks_Execute_ListNotFound(t *testing.T) {
	_, err := NewListTasks(domain.NewRegistry()).Execute(context.Background(), ListTasksInput{View: ViewList, Query: "Work"})

	assert.ErrorIs(t, err, domain.ErrListNotFound)
}

func TestShowTask_Execute(t *testing.T) {
	registry := newViewRegistry(t)
	uc := NewShowTask(registry)

	out, err := uc.Execute(context.Background(), ShowTaskInput{TaskID: 2})
	require.NoError(t, err)
	assert.Equal(t, "- [x] Bills: --> 2024-03-05", render(out.Lines))

	_, _, err = registry.Delete(2)
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), ShowTaskInput{TaskID: 2})
	assert.ErrorIs(t, err, domain.ErrTaskDeleted)
}

func TestDuplicates_Execute(t *testing.T) {
	registry := domain.NewRegistry()
	for _, name := range []string{"Eat", "Sleep", "Eat", "Sleep", "Eat"} {
		registry.AddTask(name, domain.PriorityNone, time.Time{})
	}

	out, err := NewDuplicates(registry).Execute(context.Background(), DuplicatesInput{})

	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 5}, out.IDs)
}
