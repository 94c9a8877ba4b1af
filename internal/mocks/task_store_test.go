package mocks

import (
	"context"
	"testing"
	"time"

	"github.com/phrazzld/taskpad/internal/domain"
	"github.com/phrazzld/taskpad/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockTaskStore_DefaultBehavior(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	m := NewMockTaskStore()
	m.Now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	first, err := m.Create(ctx, "first", "")
	require.NoError(t, err)
	second, err := m.Create(ctx, "second", "details")
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	recent, err := m.FindRecentIncomplete(ctx, 5)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "second", recent[0].Title)

	_, err = m.MarkCompleted(ctx, first.ID)
	require.NoError(t, err)
	_, err = m.MarkCompleted(ctx, first.ID)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	recent, err = m.FindRecentIncomplete(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, recent, 1)

	found, err := m.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, found.Completed)

	require.NoError(t, m.DeleteAll(ctx))
	assert.Equal(t, 0, m.Len())
}

func TestMockTaskStore_Overrides(t *testing.T) {
	t.Parallel()

	m := NewMockTaskStore()
	m.MarkCompletedFn = func(ctx context.Context, id int64) (*domain.Task, error) {
		return nil, assert.AnError
	}

	_, err := m.MarkCompleted(context.Background(), 1)
	assert.ErrorIs(t, err, assert.AnError)
}
