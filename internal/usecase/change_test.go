package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/runoshun/procrastinot/internal/domain"
	"github.com/runoshun/procrastinot/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeDate_Execute(t *testing.T) {
	registry := domain.NewRegistry()
	registry.AddTask("Pay", domain.PriorityNone, time.Time{})
	logger := &testutil.MockLogger{}

	out, err := NewChangeDate(registry, logger).Execute(context.Background(), ChangeDateInput{
		TaskID: 1,
		Due:    mustDate(t, "2024-12-24"),
	})

	require.NoError(t, err)
	due, ok := out.Task.Due()
	assert.True(t, ok)
	assert.Equal(t, "2024-12-24", due.Format(domain.DateLayout))
	require.Len(t, logger.Entries, 1)
	assert.Equal(t, "due 2024-12-24", logger.Entries[0].Msg)
}

func TestChangeDate_Execute_NotFound(t *testing.T) {
	_, err := NewChangeDate(domain.NewRegistry(), nil).Execute(context.Background(), ChangeDateInput{TaskID: 1})

	var notFound *domain.TaskNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, 1, notFound.ID)
}

func TestChangePriority_Execute(t *testing.T) {
	registry := domain.NewRegistry()
	registry.AddTask("Pay", domain.PriorityLow, time.Time{})
	uc := NewChangePriority(registry, nil)

	out, err := uc.Execute(context.Background(), ChangePriorityInput{TaskID: 1, Priority: domain.PriorityHigh})
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityHigh, out.Task.Priority())

	out, err = uc.Execute(context.Background(), ChangePriorityInput{TaskID: 1, Priority: domain.PriorityNone})
	require.NoError(t, err)
	assert.Equal(t, "- [ ] Pay", out.Task.Line())
}
