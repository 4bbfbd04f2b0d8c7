package domain

import (
	"strings"
	"time"
)

// UpcomingDays is the length of the upcoming window after its first day.
const UpcomingDays = 6

// Line is one printed task at a tree depth.
type Line struct {
	Task  *Task
	Depth int
}

// String indents the rendered task by two spaces per depth level.
func (l Line) String() string {
	return strings.Repeat("  ", l.Depth) + l.Task.Line()
}

// Predicate selects tasks in filtered views.
type Predicate func(*Task) bool

// PrintTask renders t at the given depth followed by its visible subtree,
// children in priority order.
func (r *Registry) PrintTask(t *Task, depth int) []Line {
	return r.PrintTaskConditional(nil, t, depth)
}

// PrintTaskConditional is PrintTask where a visible child is only descended
// into if keep holds for it. t itself is always printed. A nil keep
// accepts every child.
func (r *Registry) PrintTaskConditional(keep Predicate, t *Task, depth int) []Line {
	lines := []Line{{Task: t, Depth: depth}}
	for _, child := range SortByPriority(r.Children(t)) {
		if !child.visible {
			continue
		}
		if keep != nil && !keep(child) {
			continue
		}
		lines = append(lines, r.PrintTaskConditional(keep, child, depth+1)...)
	}
	return lines
}

// Show prints a single visible task with its visible subtree.
func (r *Registry) Show(id int) ([]Line, error) {
	t, err := r.Task(id)
	if err != nil {
		return nil, err
	}
	if !t.visible {
		return nil, &TaskDeletedError{ID: id}
	}
	return r.PrintTask(t, 0), nil
}

// PrintList prints the visible members of a list in priority order, each
// with its visible subtree. A member already printed as part of another
// member's subtree is skipped.
func (r *Registry) PrintList(name string) ([]Line, error) {
	members, err := r.ListMembers(name)
	if err != nil {
		return nil, err
	}
	var lines []Line
	for _, t := range members {
		if !t.visible || r.reachedThroughMember(t, name) {
			continue
		}
		lines = append(lines, r.PrintTask(t, 0)...)
	}
	if len(lines) == 0 {
		return nil, ErrNoTaskFound
	}
	return lines, nil
}

// reachedThroughMember walks up the visible ancestors of t and reports
// whether one of them is a member of the list.
func (r *Registry) reachedThroughMember(t *Task, list string) bool {
	l, err := r.List(list)
	if err != nil {
		return false
	}
	for p := r.Parent(t); p != nil && p.visible; p = r.Parent(p) {
		if l.has(p.id) {
			return true
		}
	}
	return false
}

// Todo prints every visible top-level task that is incomplete or has an
// incomplete descendant, pruning fully completed branches below it.
func (r *Registry) Todo() ([]Line, error) {
	undone := func(t *Task) bool {
		return !t.completed || r.HasUndoneChild(t)
	}
	var lines []Line
	for _, t := range SortByPriority(r.tasks) {
		if !t.visible || t.HasParent() || !undone(t) {
			continue
		}
		lines = append(lines, r.PrintTaskConditional(undone, t, 0)...)
	}
	if len(lines) == 0 {
		return nil, ErrNoTaskFound
	}
	return lines, nil
}

// PrintFiltered prints the full visible subtree of every highest visible
// task matching match. Non-matching tasks are searched through but not
// printed. Only top-level tasks of the given slice are used as roots.
func (r *Registry) PrintFiltered(match Predicate, tasks []*Task) ([]Line, error) {
	var roots []*Task
	for _, t := range tasks {
		if t.visible && !t.HasParent() {
			roots = append(roots, t)
		}
	}
	lines := r.printFiltered(match, roots)
	if len(lines) == 0 {
		return nil, ErrNoTaskFound
	}
	return lines, nil
}

func (r *Registry) printFiltered(match Predicate, tasks []*Task) []Line {
	var lines []Line
	for _, t := range SortByPriority(tasks) {
		if !t.visible {
			continue
		}
		if match(t) {
			lines = append(lines, r.PrintTask(t, 0)...)
			continue
		}
		lines = append(lines, r.printFiltered(match, r.Children(t))...)
	}
	return lines
}

// Find prints tasks whose name contains the substring.
func (r *Registry) Find(substr string) ([]Line, error) {
	return r.PrintFiltered(NameContains(substr), r.tasks)
}

// TaggedWith prints tasks carrying the tag.
func (r *Registry) TaggedWith(tag string) ([]Line, error) {
	return r.PrintFiltered(HasTag(tag), r.tasks)
}

// Upcoming prints tasks due within the window starting at from.
func (r *Registry) Upcoming(from time.Time, days int) ([]Line, error) {
	return r.PrintFiltered(DueWithin(from, days), r.tasks)
}

// Before prints tasks due on or before date.
func (r *Registry) Before(date time.Time) ([]Line, error) {
	return r.PrintFiltered(DueOnOrBefore(date), r.tasks)
}

// Between prints tasks due in the inclusive range; the bounds may be reversed.
func (r *Registry) Between(a, b time.Time) ([]Line, error) {
	return r.PrintFiltered(DueBetween(a, b), r.tasks)
}

// Duplicates returns, in ascending order, the id of every task whose name
// was already used by a task with a lower id. Visibility is ignored.
func (r *Registry) Duplicates() []int {
	seen := make(map[string]bool, len(r.tasks))
	var ids []int
	for _, t := range r.tasks {
		if seen[t.name] {
			ids = append(ids, t.id)
			continue
		}
		seen[t.name] = true
	}
	return ids
}

// NameContains matches tasks whose name contains substr.
func NameContains(substr string) Predicate {
	return func(t *Task) bool {
		return strings.Contains(t.name, substr)
	}
}

// HasTag matches tasks carrying tag.
func HasTag(tag string) Predicate {
	return func(t *Task) bool {
		return t.HasTag(tag)
	}
}

// DueWithin matches tasks due in [from, from+days].
func DueWithin(from time.Time, days int) Predicate {
	from = truncateDate(from)
	return DueBetween(from, from.AddDate(0, 0, days))
}

// DueOnOrBefore matches tasks due on or before date.
func DueOnOrBefore(date time.Time) Predicate {
	date = truncateDate(date)
	return func(t *Task) bool {
		return !t.due.IsZero() && !t.due.After(date)
	}
}

// DueBetween matches tasks due in the inclusive range between a and b,
// in either order.
func DueBetween(a, b time.Time) Predicate {
	lo, hi := truncateDate(a), truncateDate(b)
	if hi.Before(lo) {
		lo, hi = hi, lo
	}
	return func(t *Task) bool {
		return !t.due.IsZero() && !t.due.Before(lo) && !t.due.After(hi)
	}
}
