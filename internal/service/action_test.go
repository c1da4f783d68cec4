package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bloom/internal/domain"
	"bloom/internal/repository"
)

func TestUpdateActionStatusAppendsLifecycle(t *testing.T) {
	svc := NewActionService(repository.NewActionRepository(), zap.NewNop())
	svc.now = func() time.Time {
		return time.Date(2026, time.August, 28, 10, 0, 0, 0, time.UTC)
	}

	before, err := svc.GetByID(context.Background(), "a1")
	require.NoError(t, err)
	historyLen := len(before.Lifecycle)

	action, err := svc.UpdateStatus(context.Background(), "a1", domain.UpdateActionStatusDTO{
		Status: domain.ActionStatusInReview,
		Note:   "Documents received",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.ActionStatusInReview, action.Status)
	require.Len(t, action.Lifecycle, historyLen+1)

	last := action.Lifecycle[len(action.Lifecycle)-1]
	assert.Equal(t, domain.ActionStatusInReview, last.Status)
	assert.Equal(t, "Documents received", last.Note)
	assert.Equal(t, "2026-08-28T10:00:00Z", last.Timestamp)
	assert.Empty(t, action.CompletedDate)
}

func TestUpdateActionStatusCompletedSetsDate(t *testing.T) {
	svc := NewActionService(repository.NewActionRepository(), zap.NewNop())
	svc.now = func() time.Time {
		return time.Date(2026, time.August, 28, 10, 0, 0, 0, time.UTC)
	}

	action, err := svc.UpdateStatus(context.Background(), "a1", domain.UpdateActionStatusDTO{
		Status: domain.ActionStatusCompleted,
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-08-28", action.CompletedDate)

	last := action.Lifecycle[len(action.Lifecycle)-1]
	assert.Equal(t, "Status updated to completed", last.Note)
}

func TestUpdateActionStatusUnknownAction(t *testing.T) {
	svc := NewActionService(repository.NewActionRepository(), zap.NewNop())

	_, err := svc.UpdateStatus(context.Background(), "missing", domain.UpdateActionStatusDTO{
		Status: domain.ActionStatusApproved,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrActionNotFound))
}
