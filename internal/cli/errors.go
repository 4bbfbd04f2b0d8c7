package cli

import (
	"errors"
	"fmt"

	"github.com/runoshun/procrastinot/internal/domain"
)

// UserMessage converts an error into the text shown after "ERROR: ".
func UserMessage(err error) string {
	var (
		taskNotFound *domain.TaskNotFoundError
		listNotFound *domain.ListNotFoundError
		addList      *domain.IllegalAddListError
		tagUsed      *domain.TagAlreadyUsedError
		assign       *domain.IllegalAssignError
		restore      *domain.IllegalRestoreError
	)
	switch {
	case errors.As(err, &taskNotFound):
		return fmt.Sprintf("Cannot find task with given task ID: %d", taskNotFound.ID)
	case errors.As(err, &listNotFound):
		return fmt.Sprintf("Cannot find list with given list name: %s", listNotFound.Name)
	case errors.As(err, &addList):
		return fmt.Sprintf("Cannot add a list with given name: %s", addList.Name)
	case errors.As(err, &tagUsed):
		return fmt.Sprintf("Given tag %s is already used.", tagUsed.Tag)
	case errors.As(err, &assign):
		switch assign.Reason {
		case domain.AssignSelf:
			return fmt.Sprintf("Cannot assign given task with ID: %d to itself.", assign.ID)
		case domain.AssignInList:
			return fmt.Sprintf("Given task is already assigned in list: %s", assign.List)
		default:
			return "Cannot assign given task."
		}
	case errors.Is(err, domain.ErrTaskDeleted):
		return "Given task is deleted."
	case errors.As(err, &restore):
		return fmt.Sprintf("Cannot restore given task with ID: %d", restore.ID)
	case errors.Is(err, domain.ErrNoTaskFound):
		return "No tasks found."
	default:
		return err.Error()
	}
}

// errAlreadyDeleted is returned by delete for a task that is already hidden.
//
//nolint:staticcheck // Shown to the user verbatim.
var errAlreadyDeleted = errors.New("Given task is already deleted.")
