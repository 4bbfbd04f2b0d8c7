package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrListNotFound    = errors.New("list not found")
	ErrIllegalAddList  = errors.New("list already exists")
	ErrTagAlreadyUsed  = errors.New("tag already used")
	ErrIllegalAssign   = errors.New("illegal assignment")
	ErrTaskDeleted     = errors.New("task is deleted")
	ErrIllegalRestore  = errors.New("task is not deleted")
	ErrNoTaskFound     = errors.New("no tasks found")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrConfigExists    = errors.New("config file already exists")
)

// TaskNotFoundError reports a lookup miss by id.
type TaskNotFoundError struct {
	ID int
}

func (e *TaskNotFoundError) Error() string {
	return fmt.Sprintf("task %d not found", e.ID)
}

func (e *TaskNotFoundError) Unwrap() error { return ErrTaskNotFound }

// ListNotFoundError reports a lookup miss by list name.
type ListNotFoundError struct {
	Name string
}

func (e *ListNotFoundError) Error() string {
	return fmt.Sprintf("list %q not found", e.Name)
}

func (e *ListNotFoundError) Unwrap() error { return ErrListNotFound }

// IllegalAddListError reports a duplicate list name.
type IllegalAddListError struct {
	Name string
}

func (e *IllegalAddListError) Error() string {
	return fmt.Sprintf("list %q already exists", e.Name)
}

func (e *IllegalAddListError) Unwrap() error { return ErrIllegalAddList }

// TagAlreadyUsedError reports a duplicate tag on a task or a list.
type TagAlreadyUsedError struct {
	Tag string
}

func (e *TagAlreadyUsedError) Error() string {
	return fmt.Sprintf("tag %q already used", e.Tag)
}

func (e *TagAlreadyUsedError) Unwrap() error { return ErrTagAlreadyUsed }

// AssignReason tells why an assignment was refused.
type AssignReason int

const (
	AssignCycle  AssignReason = iota // one task contains the other
	AssignSelf                       // task assigned to itself
	AssignInList                     // task already covered by a list member
)

// IllegalAssignError reports a refused task or list assignment.
// ID is set for AssignSelf, List for AssignInList.
type IllegalAssignError struct {
	List   string
	Reason AssignReason
	ID     int
}

func (e *IllegalAssignError) Error() string {
	switch e.Reason {
	case AssignSelf:
		return fmt.Sprintf("cannot assign task %d to itself", e.ID)
	case AssignInList:
		return fmt.Sprintf("task already assigned in list %q", e.List)
	default:
		return "assignment would create a cycle"
	}
}

func (e *IllegalAssignError) Unwrap() error { return ErrIllegalAssign }

// TaskDeletedError reports an operation on a soft-deleted task.
type TaskDeletedError struct {
	ID int
}

func (e *TaskDeletedError) Error() string {
	return fmt.Sprintf("task %d is deleted", e.ID)
}

func (e *TaskDeletedError) Unwrap() error { return ErrTaskDeleted }

// IllegalRestoreError reports a restore of a task that is still visible.
type IllegalRestoreError struct {
	ID int
}

func (e *IllegalRestoreError) Error() string {
	return fmt.Sprintf("task %d is not deleted", e.ID)
}

func (e *IllegalRestoreError) Unwrap() error { return ErrIllegalRestore }
