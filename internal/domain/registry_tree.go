package domain

import "slices"

// Contains returns true if other is a direct or transitive child of t.
func (r *Registry) Contains(t, other *Task) bool {
	for _, childID := range t.children {
		if childID == other.id {
			return true
		}
		if r.Contains(r.tasks[childID-1], other) {
			return true
		}
	}
	return false
}

// HasUndoneChild returns true if any descendant, visible or not, is incomplete.
func (r *Registry) HasUndoneChild(t *Task) bool {
	for _, childID := range t.children {
		child := r.tasks[childID-1]
		if !child.completed || r.HasUndoneChild(child) {
			return true
		}
	}
	return false
}

// SubtaskCount returns the number of descendants at all depths.
// With visibleOnly, invisible descendants are not counted, but their
// children still are.
func (r *Registry) SubtaskCount(t *Task, visibleOnly bool) int {
	n := 0
	for _, childID := range t.children {
		child := r.tasks[childID-1]
		if !visibleOnly || child.visible {
			n++
		}
		n += r.SubtaskCount(child, visibleOnly)
	}
	return n
}

// Delete soft-deletes a task and its whole subtree.
// It returns the number of descendants that were visible before the call.
func (r *Registry) Delete(id int) (*Task, int, error) {
	t, err := r.Task(id)
	if err != nil {
		return nil, 0, err
	}
	if !t.visible {
		return nil, 0, &TaskDeletedError{ID: id}
	}
	count := r.SubtaskCount(t, true)
	r.hide(t)
	return t, count, nil
}

// hide clears visibility on every descendant regardless of its current state.
func (r *Registry) hide(t *Task) {
	t.visible = false
	for _, childID := range t.children {
		r.hide(r.tasks[childID-1])
	}
}

// Restore makes a soft-deleted task and its deleted descendants visible again.
// Each restored task moves to the tail of its parent's children and of
// every list it is a member of. It returns the number of descendants,
// visible or not.
func (r *Registry) Restore(id int) (*Task, int, error) {
	t, err := r.Task(id)
	if err != nil {
		return nil, 0, err
	}
	if t.visible {
		return nil, 0, &IllegalRestoreError{ID: id}
	}
	count := r.SubtaskCount(t, false)
	r.unhide(t)
	return t, count, nil
}

func (r *Registry) unhide(t *Task) {
	t.visible = true
	// Children reorder themselves inside t.children while we iterate.
	for _, childID := range slices.Clone(t.children) {
		child := r.tasks[childID-1]
		if !child.visible {
			r.unhide(child)
		}
	}
	if t.parent != 0 {
		r.tasks[t.parent-1].moveChildToTail(t.id)
	}
	for _, name := range t.lists {
		if l, err := r.List(name); err == nil {
			l.moveToTail(t.id)
		}
	}
}

// Toggle flips the completion state of a visible task and cascades the new
// state to every descendant. It returns the number of descendants.
func (r *Registry) Toggle(id int) (*Task, int, error) {
	t, err := r.Task(id)
	if err != nil {
		return nil, 0, err
	}
	if !t.visible {
		return nil, 0, &TaskDeletedError{ID: id}
	}
	r.SetCompleted(t, !t.completed)
	return t, r.SubtaskCount(t, false), nil
}

// SetCompleted sets the completion state on t and all its descendants,
// independent of visibility. Completion never propagates upwards.
func (r *Registry) SetCompleted(t *Task, completed bool) {
	t.completed = completed
	for _, childID := range t.children {
		r.SetCompleted(r.tasks[childID-1], completed)
	}
}
