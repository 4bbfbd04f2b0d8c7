package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func add(r *Registry, name string) *Task {
	return r.AddTask(name, PriorityNone, time.Time{})
}

func assign(t *testing.T, r *Registry, sub, parent int) {
	t.Helper()
	_, _, err := r.AssignTask(sub, parent)
	require.NoError(t, err)
}

func rendered(lines []Line) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.String())
	}
	return out
}

func TestRegistry_AddTask_SequentialIDs(t *testing.T) {
	r := NewRegistry()
	a := add(r, "a")
	b := add(r, "b")
	_, _, err := r.Delete(a.ID())
	require.NoError(t, err)
	c := add(r, "c")

	assert.Equal(t, 1, a.ID())
	assert.Equal(t, 2, b.ID())
	assert.Equal(t, 3, c.ID())
}

func TestRegistry_Task_NotFound(t *testing.T) {
	r := NewRegistry()
	add(r, "a")

	for _, id := range []int{0, 2, -1} {
		_, err := r.Task(id)
		var nf *TaskNotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, id, nf.ID)
	}
}

func TestRegistry_Task_FindsDeleted(t *testing.T) {
	r := NewRegistry()
	a := add(r, "a")
	_, _, err := r.Delete(a.ID())
	require.NoError(t, err)

	got, err := r.Task(a.ID())
	require.NoError(t, err)
	assert.False(t, got.Visible())
}

func TestRegistry_AddList(t *testing.T) {
	r := NewRegistry()
	_, err := r.AddList("Home")
	require.NoError(t, err)

	_, err = r.AddList("Home")
	var dup *IllegalAddListError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "Home", dup.Name)

	_, err = r.List("Work")
	assert.ErrorIs(t, err, ErrListNotFound)
}

func TestRegistry_AssignTask_Moves(t *testing.T) {
	r := NewRegistry()
	a := add(r, "a")
	b := add(r, "b")
	c := add(r, "c")

	assign(t, r, c.ID(), a.ID())
	assign(t, r, c.ID(), b.ID())

	assert.Empty(t, a.ChildIDs())
	assert.Equal(t, []int{c.ID()}, b.ChildIDs())
	assert.Equal(t, b.ID(), c.ParentID())
}

func TestRegistry_AssignTask_Errors(t *testing.T) {
	setup := func() *Registry {
		r := NewRegistry()
		for _, n := range []string{"a", "b", "c", "d"} {
			add(r, n)
		}
		// 1 -> 2 -> 3
		_, _, _ = r.AssignTask(2, 1)
		_, _, _ = r.AssignTask(3, 2)
		return r
	}

	tests := []struct {
		name       string
		prepare    func(r *Registry)
		sub        int
		parent     int
		wantReason AssignReason
		wantErr    error
	}{
		{name: "self", sub: 4, parent: 4, wantErr: ErrIllegalAssign, wantReason: AssignSelf},
		{name: "direct child becomes parent", sub: 1, parent: 2, wantErr: ErrIllegalAssign, wantReason: AssignCycle},
		{name: "grandchild becomes parent", sub: 1, parent: 3, wantErr: ErrIllegalAssign, wantReason: AssignCycle},
		{name: "already a descendant", sub: 3, parent: 1, wantErr: ErrIllegalAssign, wantReason: AssignCycle},
		{name: "missing subtask", sub: 9, parent: 1, wantErr: ErrTaskNotFound},
		{name: "missing parent", sub: 1, parent: 9, wantErr: ErrTaskNotFound},
		{
			name:    "deleted parent",
			prepare: func(r *Registry) { _, _, _ = r.Delete(4) },
			sub:     1, parent: 4,
			wantErr: ErrTaskDeleted,
		},
		{
			name:    "deleted subtask",
			prepare: func(r *Registry) { _, _, _ = r.Delete(4) },
			sub:     4, parent: 1,
			wantErr: ErrTaskDeleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setup()
			if tt.prepare != nil {
				tt.prepare(r)
			}
			_, _, err := r.AssignTask(tt.sub, tt.parent)
			require.ErrorIs(t, err, tt.wantErr)
			var ia *IllegalAssignError
			if tt.wantErr == ErrIllegalAssign {
				require.ErrorAs(t, err, &ia)
				assert.Equal(t, tt.wantReason, ia.Reason)
			}
		})
	}
}

func TestRegistry_Delete_CascadesAndFailsTwice(t *testing.T) {
	r := NewRegistry()
	a := add(r, "a")
	b := add(r, "b")
	c := add(r, "c")
	assign(t, r, b.ID(), a.ID())
	assign(t, r, c.ID(), b.ID())

	_, n, err := r.Delete(a.ID())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.False(t, a.Visible())
	assert.False(t, b.Visible())
	assert.False(t, c.Visible())

	_, _, err = r.Delete(a.ID())
	var deleted *TaskDeletedError
	require.ErrorAs(t, err, &deleted)
	assert.Equal(t, a.ID(), deleted.ID)
}

func TestRegistry_Delete_CountsVisibleRestoreCountsAll(t *testing.T) {
	r := NewRegistry()
	a := add(r, "a")
	b := add(r, "b")
	c := add(r, "c")
	assign(t, r, b.ID(), a.ID())
	assign(t, r, c.ID(), a.ID())

	_, n, err := r.Delete(b.ID())
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, n, err = r.Delete(a.ID())
	require.NoError(t, err)
	assert.Equal(t, 1, n, "b was already deleted")

	_, n, err = r.Restore(a.ID())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRegistry_Delete_KeepsCompletionAndMembership(t *testing.T) {
	r := NewRegistry()
	a := add(r, "a")
	b := add(r, "b")
	assign(t, r, b.ID(), a.ID())
	_, err := r.AddList("Home")
	require.NoError(t, err)
	_, _, err = r.AssignToList(a.ID(), "Home")
	require.NoError(t, err)
	_, _, err = r.Toggle(a.ID())
	require.NoError(t, err)

	_, _, err = r.Delete(a.ID())
	require.NoError(t, err)

	assert.True(t, a.Completed())
	assert.True(t, b.Completed())
	assert.Equal(t, a.ID(), b.ParentID())
	assert.Equal(t, []string{"Home"}, a.Lists())
}

func TestRegistry_Restore_RepositionsAtTail(t *testing.T) {
	r := NewRegistry()
	p := add(r, "p")
	x := add(r, "x")
	y := add(r, "y")
	z := add(r, "z")
	assign(t, r, x.ID(), p.ID())
	assign(t, r, y.ID(), p.ID())
	assign(t, r, z.ID(), p.ID())
	_, err := r.AddList("Home")
	require.NoError(t, err)
	other := add(r, "other")
	_, _, err = r.AssignToList(x.ID(), "Home")
	require.NoError(t, err)
	_, _, err = r.AssignToList(other.ID(), "Home")
	require.NoError(t, err)

	_, _, err = r.Delete(x.ID())
	require.NoError(t, err)
	_, _, err = r.Restore(x.ID())
	require.NoError(t, err)

	assert.True(t, x.Visible())
	assert.Equal(t, []int{y.ID(), z.ID(), x.ID()}, p.ChildIDs())
	list, err := r.List("Home")
	require.NoError(t, err)
	assert.Equal(t, []int{other.ID(), x.ID()}, list.MemberIDs())
}

func TestRegistry_Restore_CascadesToSubtree(t *testing.T) {
	r := NewRegistry()
	a := add(r, "a")
	b := add(r, "b")
	c := add(r, "c")
	d := add(r, "d")
	assign(t, r, b.ID(), a.ID())
	assign(t, r, c.ID(), a.ID())
	assign(t, r, d.ID(), b.ID())

	_, _, err := r.Delete(a.ID())
	require.NoError(t, err)
	_, _, err = r.Restore(a.ID())
	require.NoError(t, err)

	for _, task := range []*Task{a, b, c, d} {
		assert.True(t, task.Visible(), task.Name())
	}
	// Children restored in snapshot order keep their relative order.
	assert.Equal(t, []int{b.ID(), c.ID()}, a.ChildIDs())
}

func TestRegistry_Restore_SkipsVisibleDescendants(t *testing.T) {
	r := NewRegistry()
	a := add(r, "a")
	b := add(r, "b")
	c := add(r, "c")
	assign(t, r, b.ID(), a.ID())
	assign(t, r, c.ID(), a.ID())

	_, _, err := r.Delete(a.ID())
	require.NoError(t, err)
	_, _, err = r.Restore(b.ID())
	require.NoError(t, err)
	assert.Equal(t, []int{c.ID(), b.ID()}, a.ChildIDs())

	_, _, err = r.Restore(a.ID())
	require.NoError(t, err)
	assert.True(t, c.Visible())
	// b stays where it was, c moves behind it.
	assert.Equal(t, []int{b.ID(), c.ID()}, a.ChildIDs())
}

func TestRegistry_Restore_VisibleFails(t *testing.T) {
	r := NewRegistry()
	a := add(r, "a")

	_, _, err := r.Restore(a.ID())

	var ir *IllegalRestoreError
	require.ErrorAs(t, err, &ir)
	assert.Equal(t, a.ID(), ir.ID)
}

func TestRegistry_Toggle_CascadesDownOnly(t *testing.T) {
	r := NewRegistry()
	pay := r.AddTask("Pay", PriorityHigh, time.Time{})
	bills := add(r, "Bills")
	assign(t, r, bills.ID(), pay.ID())

	_, n, err := r.Toggle(pay.ID())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, pay.Completed())
	assert.True(t, bills.Completed())

	_, _, err = r.Toggle(bills.ID())
	require.NoError(t, err)
	assert.False(t, bills.Completed())
	assert.True(t, pay.Completed())
}

func TestRegistry_Toggle_DeletedFails(t *testing.T) {
	r := NewRegistry()
	a := add(r, "a")
	_, _, err := r.Delete(a.ID())
	require.NoError(t, err)

	_, _, err = r.Toggle(a.ID())
	assert.ErrorIs(t, err, ErrTaskDeleted)
}

func TestRegistry_HasUndoneChild(t *testing.T) {
	r := NewRegistry()
	a := add(r, "a")
	b := add(r, "b")
	c := add(r, "c")
	assign(t, r, b.ID(), a.ID())
	assign(t, r, c.ID(), b.ID())

	assert.True(t, r.HasUndoneChild(a))
	r.SetCompleted(a, true)
	assert.False(t, r.HasUndoneChild(a))

	r.SetCompleted(c, false)
	_, _, err := r.Delete(c.ID())
	require.NoError(t, err)
	assert.True(t, r.HasUndoneChild(a), "visibility is ignored")
}

func TestRegistry_AssignToList(t *testing.T) {
	r := NewRegistry()
	a := add(r, "a")
	b := add(r, "b")
	c := add(r, "c")
	d := add(r, "d")
	assign(t, r, b.ID(), a.ID())
	assign(t, r, c.ID(), b.ID())
	_, err := r.AddList("Home")
	require.NoError(t, err)

	_, _, err = r.AssignToList(b.ID(), "Home")
	require.NoError(t, err)

	tests := []struct {
		name string
		id   int
	}{
		{name: "literal member", id: b.ID()},
		{name: "descendant of member", id: c.ID()},
		{name: "ancestor of member", id: a.ID()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := r.AssignToList(tt.id, "Home")
			var ia *IllegalAssignError
			require.ErrorAs(t, err, &ia)
			assert.Equal(t, AssignInList, ia.Reason)
			assert.Equal(t, "Home", ia.List)
		})
	}

	_, _, err = r.AssignToList(d.ID(), "Home")
	require.NoError(t, err)
	assert.Equal(t, []string{"Home"}, b.Lists())
	assert.Empty(t, c.Lists(), "membership is not inherited")

	_, _, err = r.AssignToList(d.ID(), "Work")
	assert.ErrorIs(t, err, ErrListNotFound)
}

func TestRegistry_Contains(t *testing.T) {
	r := NewRegistry()
	a := add(r, "a")
	b := add(r, "b")
	c := add(r, "c")
	assign(t, r, b.ID(), a.ID())
	assign(t, r, c.ID(), b.ID())

	assert.True(t, r.Contains(a, b))
	assert.True(t, r.Contains(a, c))
	assert.False(t, r.Contains(c, a))
	assert.False(t, r.Contains(a, a))
}
