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

func TestTag_Execute_Task(t *testing.T) {
	registry := domain.NewRegistry()
	registry.AddTask("Pay", domain.PriorityNone, time.Time{})
	logger := &testutil.MockLogger{}
	uc := NewTag(registry, logger)

	out, err := uc.Execute(context.Background(), TagInput{TaskID: 1, Tag: "money"})

	require.NoError(t, err)
	assert.Equal(t, "Pay", out.Name)
	task, err := registry.Task(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"money"}, task.Tags())
	require.Len(t, logger.Entries, 1)
	assert.Equal(t, 1, logger.Entries[0].TaskID)
}

func TestTag_Execute_List(t *testing.T) {
	registry := domain.NewRegistry()
	_, err := registry.AddList("Home")
	require.NoError(t, err)
	uc := NewTag(registry, nil)

	out, err := uc.Execute(context.Background(), TagInput{List: "Home", Tag: "chores"})

	require.NoError(t, err)
	assert.Equal(t, "Home", out.Name)
}

func TestTag_Execute_Errors(t *testing.T) {
	registry := domain.NewRegistry()
	registry.AddTask("Pay", domain.PriorityNone, time.Time{})
	_, err := registry.TagTask(1, "money")
	require.NoError(t, err)
	uc := NewTag(registry, nil)

	tests := []struct {
		name string
		in   TagInput
		want error
	}{
		{"duplicate tag", TagInput{TaskID: 1, Tag: "money"}, domain.ErrTagAlreadyUsed},
		{"missing task", TagInput{TaskID: 9, Tag: "money"}, domain.ErrTaskNotFound},
		{"missing list", TagInput{List: "Work", Tag: "x"}, domain.ErrListNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTag_Execute_DeletedTask(t *testing.T) {
	registry := domain.NewRegistry()
	registry.AddTask("Pay", domain.PriorityNone, time.Time{})
	_, _, err := registry.Delete(1)
	require.NoError(t, err)

	_, err = NewTag(registry, nil).Execute(context.Background(), TagInput{TaskID: 1, Tag: "late"})

	assert.NoError(t, err)
}
