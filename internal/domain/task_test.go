package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestTask_Line(t *testing.T) {
	tests := []struct {
		name string
		want string
		tags []string
		due  time.Time
		prio Priority
		done bool
	}{
		{
			name: "plain",
			prio: PriorityNone,
			want: "- [ ] Pay",
		},
		{
			name: "completed with priority",
			prio: PriorityHigh,
			done: true,
			want: "- [x] Pay [HI]",
		},
		{
			name: "tags only",
			prio: PriorityNone,
			tags: []string{"home", "money"},
			want: "- [ ] Pay: (home, money)",
		},
		{
			name: "date only",
			prio: PriorityLow,
			due:  date("2024-03-01"),
			want: "- [ ] Pay [LO]: --> 2024-03-01",
		},
		{
			name: "everything",
			prio: PriorityMedium,
			tags: []string{"home"},
			due:  date("2024-03-01"),
			done: true,
			want: "- [x] Pay [MD]: (home) --> 2024-03-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := newTask(1, "Pay", tt.prio, tt.due)
			task.completed = tt.done
			for _, tag := range tt.tags {
				require.NoError(t, task.AddTag(tag))
			}
			assert.Equal(t, tt.want, task.Line())
		})
	}
}

func TestTask_AddTag_Duplicate(t *testing.T) {
	task := newTask(1, "Pay", PriorityNone, time.Time{})
	require.NoError(t, task.AddTag("home"))

	err := task.AddTag("home")

	var tagErr *TagAlreadyUsedError
	require.ErrorAs(t, err, &tagErr)
	assert.Equal(t, "home", tagErr.Tag)
	assert.True(t, errors.Is(err, ErrTagAlreadyUsed))
	assert.Equal(t, []string{"home"}, task.Tags())
}

func TestTaskList_AddTag_IndependentOfTasks(t *testing.T) {
	r := NewRegistry()
	task := r.AddTask("Pay", PriorityNone, time.Time{})
	require.NoError(t, task.AddTag("home"))
	list, err := r.AddList("Chores")
	require.NoError(t, err)

	require.NoError(t, list.AddTag("home"))
	assert.ErrorIs(t, list.AddTag("home"), ErrTagAlreadyUsed)
}

func TestSortByPriority_Stable(t *testing.T) {
	r := NewRegistry()
	lo := r.AddTask("a", PriorityLow, time.Time{})
	hi1 := r.AddTask("b", PriorityHigh, time.Time{})
	md := r.AddTask("c", PriorityMedium, time.Time{})
	hi2 := r.AddTask("d", PriorityHigh, time.Time{})

	sorted := SortByPriority(r.Tasks())

	assert.Equal(t, []*Task{hi1, hi2, md, lo}, sorted)
	// Input is not reordered.
	assert.Equal(t, []*Task{lo, hi1, md, hi2}, r.Tasks())
}

func TestPriority_ZeroValueIsNone(t *testing.T) {
	var p Priority
	assert.Equal(t, PriorityNone, p)
	assert.Empty(t, p.String())

	r := NewRegistry()
	none := r.AddTask("Bills", p, time.Time{})
	lo := r.AddTask("Rent", PriorityLow, time.Time{})
	hi := r.AddTask("Pay", PriorityHigh, time.Time{})

	assert.Equal(t, "- [ ] Bills", none.Line())
	assert.Equal(t, []*Task{hi, lo, none}, SortByPriority(r.Tasks()))
	assert.Positive(t, PriorityNone.Compare(PriorityLow))
	assert.Negative(t, PriorityHigh.Compare(PriorityMedium))
	assert.Zero(t, PriorityMedium.Compare(PriorityMedium))
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in      string
		want    Priority
		wantErr bool
	}{
		{in: "HI", want: PriorityHigh},
		{in: "MD", want: PriorityMedium},
		{in: "LO", want: PriorityLow},
		{in: "", want: PriorityNone},
		{in: "hi", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePriority(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPriority)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTask_SetDue_TruncatesTime(t *testing.T) {
	task := newTask(1, "Pay", PriorityNone, time.Time{})
	task.SetDue(time.Date(2024, 5, 6, 17, 30, 0, 0, time.FixedZone("X", 3600)))

	due, ok := task.Due()
	require.True(t, ok)
	assert.Equal(t, date("2024-05-06"), due)

	task.SetDue(time.Time{})
	_, ok = task.Due()
	assert.False(t, ok)
}
