package cli

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/runoshun/procrastinot/internal/domain"
)

// Argument patterns accepted by the shell verbs.
var (
	namePattern     = regexp.MustCompile(`^\S+$`)
	datePattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	priorityPattern = regexp.MustCompile(`^(HI|MD|LO)?$`)
	idPattern       = regexp.MustCompile(`^[1-9]\d*$`)
	tagPattern      = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	listPattern     = regexp.MustCompile(`^[A-Za-z]+$`)
)

// Argument errors. Their text is shown to the user verbatim.
//
//nolint:staticcheck // Capitalized sentences are part of the shell output.
var (
	errInvalidName      = errors.New("Given task name is invalid.")
	errInvalidDate      = errors.New("Given date is invalid.")
	errInvalidPriority  = errors.New("Given priority is invalid.")
	errInvalidID        = errors.New("Given ID is invalid.")
	errInvalidTag       = errors.New("Given tag is invalid.")
	errInvalidList      = errors.New("Given list name is invalid.")
	errInvalidArguments = errors.New("Given arguments are invalid.")
	errQuitArgs         = errors.New("quit does not allow args.")
)

// argCountError reports a wrong number of arguments.
type argCountError struct {
	want int
	got  int
}

func (e *argCountError) Error() string {
	return fmt.Sprintf("Expected %d arguments but got %d", e.want, e.got)
}

func checkArgs(args []string, want int) error {
	if len(args) != want {
		return &argCountError{want: want, got: len(args)}
	}
	return nil
}

func parseID(s string) (int, error) {
	if !idPattern.MatchString(s) {
		return 0, errInvalidID
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, errInvalidID
	}
	return id, nil
}

func parseDate(s string) (time.Time, error) {
	if !datePattern.MatchString(s) {
		return time.Time{}, errInvalidDate
	}
	d, err := domain.ParseDate(s)
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return d, nil
}

func parsePriority(s string) (domain.Priority, error) {
	if !priorityPattern.MatchString(s) {
		return domain.PriorityNone, errInvalidPriority
	}
	p, err := domain.ParsePriority(s)
	if err != nil {
		return domain.PriorityNone, errInvalidPriority
	}
	return p, nil
}

func parseName(s string) (string, error) {
	if !namePattern.MatchString(s) {
		return "", errInvalidName
	}
	return s, nil
}

func parseTag(s string) (string, error) {
	if !tagPattern.MatchString(s) {
		return "", errInvalidTag
	}
	return s, nil
}

func parseList(s string) (string, error) {
	if !listPattern.MatchString(s) {
		return "", errInvalidList
	}
	return s, nil
}
