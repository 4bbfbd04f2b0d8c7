// Package domain contains the task forest, task lists and the registry that owns them.
package domain

import (
	"slices"
	"strings"
	"time"
)

// DateLayout is the calendar date format used for due dates.
const DateLayout = "2006-01-02"

// Task is a node in the task forest.
// Parent, children and list membership are ids/names resolved through the Registry.
// Fields are ordered to minimize memory padding.
type Task struct {
	due       time.Time // zero = no due date
	name      string
	tags      []string
	children  []int    // ordered child ids
	lists     []string // lists this task was explicitly assigned to
	id        int
	parent    int // 0 = top-level
	priority  Priority
	completed bool
	visible   bool
}

func newTask(id int, name string, priority Priority, due time.Time) *Task {
	return &Task{
		id:       id,
		name:     name,
		priority: priority,
		due:      truncateDate(due),
		visible:  true,
	}
}

// ID returns the immutable task id.
func (t *Task) ID() int { return t.id }

// Name returns the immutable task name.
func (t *Task) Name() string { return t.name }

// Priority returns the current priority.
func (t *Task) Priority() Priority { return t.priority }

// Due returns the due date and whether one is set.
func (t *Task) Due() (time.Time, bool) { return t.due, !t.due.IsZero() }

// Completed reports the completion state.
func (t *Task) Completed() bool { return t.completed }

// Visible reports false for soft-deleted tasks.
func (t *Task) Visible() bool { return t.visible }

// ParentID returns the parent id, or 0 for a top-level task.
func (t *Task) ParentID() int { return t.parent }

// HasParent returns true if the task is a subtask.
func (t *Task) HasParent() bool { return t.parent != 0 }

// Tags returns a copy of the tags in insertion order.
func (t *Task) Tags() []string { return slices.Clone(t.tags) }

// ChildIDs returns a copy of the ordered child ids.
func (t *Task) ChildIDs() []int { return slices.Clone(t.children) }

// Lists returns the names of the lists this task was assigned to.
func (t *Task) Lists() []string { return slices.Clone(t.lists) }

// HasTag returns true if the task carries the tag.
func (t *Task) HasTag(tag string) bool {
	return slices.Contains(t.tags, tag)
}

// AddTag appends a tag. A tag may appear only once per task.
func (t *Task) AddTag(tag string) error {
	if t.HasTag(tag) {
		return &TagAlreadyUsedError{Tag: tag}
	}
	t.tags = append(t.tags, tag)
	return nil
}

// SetPriority changes the priority.
func (t *Task) SetPriority(p Priority) {
	t.priority = p
}

// SetDue changes the due date. A zero time clears it.
func (t *Task) SetDue(due time.Time) {
	t.due = truncateDate(due)
}

func (t *Task) removeChild(id int) {
	t.children = slices.DeleteFunc(t.children, func(c int) bool { return c == id })
}

func (t *Task) moveChildToTail(id int) {
	t.removeChild(id)
	t.children = append(t.children, id)
}

// Line renders the task as a single line:
//
//	- [x] name [HI]: (tag1, tag2) --> 2024-01-31
//
// The priority, tag and date parts are omitted when absent; the colon
// appears only if tags or a date follow.
func (t *Task) Line() string {
	var sb strings.Builder
	sb.WriteString("- ")
	if t.completed {
		sb.WriteString("[x] ")
	} else {
		sb.WriteString("[ ] ")
	}
	sb.WriteString(t.name)
	if t.priority != PriorityNone {
		sb.WriteString(" [")
		sb.WriteString(t.priority.String())
		sb.WriteString("]")
	}
	if len(t.tags) > 0 || !t.due.IsZero() {
		sb.WriteString(":")
	}
	if len(t.tags) > 0 {
		sb.WriteString(" (")
		sb.WriteString(strings.Join(t.tags, ", "))
		sb.WriteString(")")
	}
	if !t.due.IsZero() {
		sb.WriteString(" --> ")
		sb.WriteString(t.due.Format(DateLayout))
	}
	return sb.String()
}

// ComparePriority orders tasks by priority only. Equal priorities compare as 0,
// so callers must sort stably.
func ComparePriority(a, b *Task) int {
	return a.priority.Compare(b.priority)
}

// SortByPriority returns a stably sorted copy of tasks.
func SortByPriority(tasks []*Task) []*Task {
	sorted := slices.Clone(tasks)
	slices.SortStableFunc(sorted, ComparePriority)
	return sorted
}

// ParseDate parses a yyyy-mm-dd calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// truncateDate drops the time of day and location.
func truncateDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
