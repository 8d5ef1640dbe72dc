package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/dahiyakapil/task-tracker/backend/tasks-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// titleQuery matches everything and orders by title.
type titleQuery struct {
	status models.TaskStatus
}

func (q titleQuery) Filter() bson.D { return bson.D{} }
func (q titleQuery) Sort() bson.D   { return bson.D{{Key: "title", Value: 1}} }
func (q titleQuery) Match(t *models.Task) bool {
	return q.status == "" || t.Status == q.status
}
func (q titleQuery) Less(a, b *models.Task) bool { return a.Title < b.Title }

func fixedClock() func() time.Time {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		now = now.Add(time.Minute)
		return now
	}
}

func TestMemoryRepositoryCreateAssignsIDAndTimestamps(t *testing.T) {
	repo := NewMemoryTaskRepository().WithClock(fixedClock())
	ctx := context.Background()

	task := &models.Task{Title: "A", Priority: models.PriorityHigh, Status: models.StatusPending}
	require.NoError(t, repo.Create(ctx, task))

	assert.False(t, task.ID.IsZero())
	assert.Equal(t, time.Date(2025, 1, 1, 12, 1, 0, 0, time.UTC), task.CreatedAt)
	assert.Equal(t, task.CreatedAt, task.UpdatedAt)
	assert.Equal(t, 2, task.PriorityRank)

	assert.ErrorIs(t, repo.Create(ctx, task), models.ErrDuplicateKey)
	assert.Equal(t, 1, repo.Len())
}

func TestMemoryRepositoryReturnsCopies(t *testing.T) {
	repo := NewMemoryTaskRepository()
	ctx := context.Background()

	task := &models.Task{Title: "A", Status: models.StatusPending}
	require.NoError(t, repo.Create(ctx, task))

	task.Title = "changed outside"
	found, err := repo.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", found.Title)

	found.Title = "changed again"
	again, err := repo.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", again.Title)
}

func TestMemoryRepositoryFindAppliesQuery(t *testing.T) {
	repo := NewMemoryTaskRepository()
	ctx := context.Background()

	for _, task := range []*models.Task{
		{Title: "c", Status: models.StatusPending},
		{Title: "a", Status: models.StatusCompleted},
		{Title: "b", Status: models.StatusPending},
	} {
		require.NoError(t, repo.Create(ctx, task))
	}

	tasks, err := repo.Find(ctx, titleQuery{})
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "a", tasks[0].Title)
	assert.Equal(t, "c", tasks[2].Title)

	tasks, err = repo.Find(ctx, titleQuery{status: models.StatusPending})
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "b", tasks[0].Title)

	tasks, err = repo.Find(ctx, titleQuery{status: "Archived"})
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestMemoryRepositorySaveAndDelete(t *testing.T) {
	repo := NewMemoryTaskRepository().WithClock(fixedClock())
	ctx := context.Background()

	task := &models.Task{Title: "A", Priority: models.PriorityLow, Status: models.StatusPending}
	require.NoError(t, repo.Create(ctx, task))
	created := task.CreatedAt

	task.Priority = models.PriorityMedium
	require.NoError(t, repo.Save(ctx, task))
	assert.Equal(t, created, task.CreatedAt)
	assert.True(t, task.UpdatedAt.After(created))
	assert.Equal(t, 1, task.PriorityRank)

	assert.ErrorIs(t, repo.Save(ctx, &models.Task{ID: primitive.NewObjectID()}), models.ErrTaskNotFound)

	deleted, err := repo.FindByIDAndDelete(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, deleted.ID)
	assert.Equal(t, 0, repo.Len())

	_, err = repo.FindByIDAndDelete(ctx, task.ID)
	assert.ErrorIs(t, err, models.ErrTaskNotFound)
	_, err = repo.FindByID(ctx, task.ID)
	assert.ErrorIs(t, err, models.ErrTaskNotFound)
}
