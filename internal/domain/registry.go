package domain

import "time"

// Registry owns every task ever created and every list.
// Task ids are positions in the task arena plus one and are never reused.
// A Registry is not safe for concurrent use.
type Registry struct {
	tasks []*Task
	lists []*TaskList
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// AddTask creates a top-level task with the next sequential id.
func (r *Registry) AddTask(name string, priority Priority, due time.Time) *Task {
	t := newTask(len(r.tasks)+1, name, priority, due)
	r.tasks = append(r.tasks, t)
	return t
}

// Task returns the task with the given id, visible or not.
func (r *Registry) Task(id int) (*Task, error) {
	if id < 1 || id > len(r.tasks) {
		return nil, &TaskNotFoundError{ID: id}
	}
	return r.tasks[id-1], nil
}

// Tasks returns all tasks in creation order.
func (r *Registry) Tasks() []*Task {
	out := make([]*Task, len(r.tasks))
	copy(out, r.tasks)
	return out
}

// Lists returns all lists in creation order.
func (r *Registry) Lists() []*TaskList {
	out := make([]*TaskList, len(r.lists))
	copy(out, r.lists)
	return out
}

// AddList creates a list. List names are unique.
func (r *Registry) AddList(name string) (*TaskList, error) {
	for _, l := range r.lists {
		if l.name == name {
			return nil, &IllegalAddListError{Name: name}
		}
	}
	l := newTaskList(name)
	r.lists = append(r.lists, l)
	return l, nil
}

// List returns the list with the given name.
func (r *Registry) List(name string) (*TaskList, error) {
	for _, l := range r.lists {
		if l.name == name {
			return l, nil
		}
	}
	return nil, &ListNotFoundError{Name: name}
}

// TagTask adds a tag to a task.
func (r *Registry) TagTask(id int, tag string) (*Task, error) {
	t, err := r.Task(id)
	if err != nil {
		return nil, err
	}
	if err := t.AddTag(tag); err != nil {
		return nil, err
	}
	return t, nil
}

// TagList adds a tag to a list.
func (r *Registry) TagList(name, tag string) (*TaskList, error) {
	l, err := r.List(name)
	if err != nil {
		return nil, err
	}
	if err := l.AddTag(tag); err != nil {
		return nil, err
	}
	return l, nil
}

// SetDue changes the due date of a task.
func (r *Registry) SetDue(id int, due time.Time) (*Task, error) {
	t, err := r.Task(id)
	if err != nil {
		return nil, err
	}
	t.SetDue(due)
	return t, nil
}

// SetPriority changes the priority of a task.
func (r *Registry) SetPriority(id int, p Priority) (*Task, error) {
	t, err := r.Task(id)
	if err != nil {
		return nil, err
	}
	t.SetPriority(p)
	return t, nil
}

// AssignTask moves the subtask under the parent task.
// Both tasks must be visible, distinct and unrelated by containment.
// A subtask that already has a parent is detached from it first.
func (r *Registry) AssignTask(subtaskID, parentID int) (sub, parent *Task, err error) {
	sub, err = r.Task(subtaskID)
	if err != nil {
		return nil, nil, err
	}
	parent, err = r.Task(parentID)
	if err != nil {
		return nil, nil, err
	}
	if !sub.visible {
		return nil, nil, &TaskDeletedError{ID: sub.id}
	}
	if !parent.visible {
		return nil, nil, &TaskDeletedError{ID: parent.id}
	}
	if subtaskID == parentID {
		return nil, nil, &IllegalAssignError{Reason: AssignSelf, ID: subtaskID}
	}
	if r.Contains(sub, parent) || r.Contains(parent, sub) {
		return nil, nil, &IllegalAssignError{Reason: AssignCycle}
	}

	if sub.parent != 0 {
		r.tasks[sub.parent-1].removeChild(sub.id)
	}
	parent.children = append(parent.children, sub.id)
	sub.parent = parent.id
	return sub, parent, nil
}

// AssignToList adds a task to a list.
// The assignment is refused when the task is already a member, when a
// member is an ancestor of the task, or when the task is an ancestor of a
// member. Membership is recorded on the task itself only.
func (r *Registry) AssignToList(id int, listName string) (*Task, *TaskList, error) {
	t, err := r.Task(id)
	if err != nil {
		return nil, nil, err
	}
	l, err := r.List(listName)
	if err != nil {
		return nil, nil, err
	}
	for _, memberID := range l.members {
		member := r.tasks[memberID-1]
		if member.id == t.id || r.Contains(member, t) || r.Contains(t, member) {
			return nil, nil, &IllegalAssignError{Reason: AssignInList, List: l.name}
		}
	}
	t.lists = append(t.lists, l.name)
	l.members = append(l.members, t.id)
	return t, l, nil
}

// ListMembers returns a priority-sorted snapshot of the list's members.
func (r *Registry) ListMembers(name string) ([]*Task, error) {
	l, err := r.List(name)
	if err != nil {
		return nil, err
	}
	return SortByPriority(r.resolve(l.members)), nil
}

// resolve maps ids to tasks. Ids always come from the registry itself.
func (r *Registry) resolve(ids []int) []*Task {
	out := make([]*Task, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.tasks[id-1])
	}
	return out
}

// Children returns the task's children in their current order.
func (r *Registry) Children(t *Task) []*Task {
	return r.resolve(t.children)
}

// Parent returns the parent task, or nil for a top-level task.
func (r *Registry) Parent(t *Task) *Task {
	if t.parent == 0 {
		return nil
	}
	return r.tasks[t.parent-1]
}
