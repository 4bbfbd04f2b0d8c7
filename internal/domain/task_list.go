package domain

import "slices"

// TaskList is a named, ordered collection referencing tasks by id.
// Membership does not imply ownership.
type TaskList struct {
	name    string
	tags    []string
	members []int
}

func newTaskList(name string) *TaskList {
	return &TaskList{name: name}
}

// Name returns the list name.
func (l *TaskList) Name() string { return l.name }

// Tags returns a copy of the list's own tags.
func (l *TaskList) Tags() []string { return slices.Clone(l.tags) }

// MemberIDs returns a copy of the member ids in insertion order.
func (l *TaskList) MemberIDs() []int { return slices.Clone(l.members) }

// AddTag appends a tag. A tag may appear only once per list,
// independent of any task's tags.
func (l *TaskList) AddTag(tag string) error {
	if slices.Contains(l.tags, tag) {
		return &TagAlreadyUsedError{Tag: tag}
	}
	l.tags = append(l.tags, tag)
	return nil
}

func (l *TaskList) has(id int) bool {
	return slices.Contains(l.members, id)
}

func (l *TaskList) moveToTail(id int) {
	l.members = slices.DeleteFunc(l.members, func(m int) bool { return m == id })
	l.members = append(l.members, id)
}
