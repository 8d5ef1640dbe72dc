package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dahiyakapil/task-tracker/backend/tasks-service/models"
	"github.com/dahiyakapil/task-tracker/backend/tasks-service/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type tickingClock struct {
	now time.Time
}

func (c *tickingClock) Now() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

func newTestService(t *testing.T) (*TaskService, *repositories.MemoryTaskRepository) {
	t.Helper()
	clock := &tickingClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	repo := repositories.NewMemoryTaskRepository().WithClock(clock.Now)
	return NewTaskService(repo), repo
}

func TestCreateTaskScenario(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, models.TaskInput{Title: "A", DueDate: "2025-01-01"})
	require.NoError(t, err)

	assert.False(t, task.ID.IsZero())
	assert.Equal(t, models.PriorityMedium, task.Priority)
	assert.Equal(t, models.StatusPending, task.Status)
	assert.False(t, task.CreatedAt.IsZero())
	assert.Equal(t, task.CreatedAt, task.UpdatedAt)

	got, err := svc.GetTask(ctx, task.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, task, got)
}

func TestCreateTaskMissingFieldsNeverStores(t *testing.T) {
	svc, repo := newTestService(t)

	for _, input := range []models.TaskInput{
		{DueDate: "2025-01-01"},
		{Title: "A"},
		{},
	} {
		_, err := svc.CreateTask(context.Background(), input)
		assert.ErrorIs(t, err, models.ErrMissingRequiredFields)
	}
	assert.Equal(t, 0, repo.Len())
}

func TestCreateTaskValidationErrorNeverStores(t *testing.T) {
	svc, repo := newTestService(t)

	_, err := svc.CreateTask(context.Background(), models.TaskInput{Title: "A", DueDate: "2025-01-01", Priority: "Urgent"})
	var verr *models.ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Equal(t, 0, repo.Len())
}

func TestListTasksByPriority(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, in := range []models.TaskInput{
		{Title: "high", Priority: models.PriorityHigh, DueDate: "2025-03-01"},
		{Title: "low", Priority: models.PriorityLow, DueDate: "2025-01-01"},
		{Title: "medium", Priority: models.PriorityMedium, DueDate: "2025-02-01"},
		{Title: "high-early", Priority: models.PriorityHigh, DueDate: "2025-01-15"},
	} {
		_, err := svc.CreateTask(ctx, in)
		require.NoError(t, err)
	}

	tasks, err := svc.ListTasks(ctx, models.TaskFilters{SortBy: "priority"})
	require.NoError(t, err)
	assert.Equal(t, []string{"high-early", "high", "medium", "low"}, titles(tasks))

	tasks, err = svc.ListTasks(ctx, models.TaskFilters{})
	require.NoError(t, err)
	assert.Equal(t, []string{"high-early", "medium", "low", "high"}, titles(tasks), "default is newest first")

	tasks, err = svc.ListTasks(ctx, models.TaskFilters{Priority: "High", SortBy: "dueDateDesc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"high", "high-early"}, titles(tasks))
}

func TestUpdateTaskOnlyStatus(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, models.TaskInput{Title: "A", Description: "desc", Priority: models.PriorityHigh, DueDate: "2025-04-01"})
	require.NoError(t, err)

	updated, err := svc.UpdateTask(ctx, created.ID.Hex(), models.TaskPatch{Status: models.Some(models.StatusCompleted)})
	require.NoError(t, err)

	assert.Equal(t, models.StatusCompleted, updated.Status)
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.Priority, updated.Priority)
	assert.Equal(t, created.DueDate, updated.DueDate)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	stored, err := svc.GetTask(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, updated, stored)
}

func TestUpdateTaskRejectsInvalidPatch(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, models.TaskInput{Title: "A", DueDate: "2025-04-01"})
	require.NoError(t, err)

	_, err = svc.UpdateTask(ctx, created.ID.Hex(), models.TaskPatch{Status: models.Some(models.TaskStatus("Archived"))})
	var verr *models.ValidationError
	require.True(t, errors.As(err, &verr))

	stored, err := svc.GetTask(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status)
}

func TestTaskNotFoundAndInvalidID(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateTask(ctx, models.TaskInput{Title: "keep", DueDate: "2025-04-01"})
	require.NoError(t, err)

	missing := primitive.NewObjectID().Hex()

	_, err = svc.GetTask(ctx, missing)
	assert.ErrorIs(t, err, models.ErrTaskNotFound)
	_, err = svc.UpdateTask(ctx, missing, models.TaskPatch{Title: models.Some("x")})
	assert.ErrorIs(t, err, models.ErrTaskNotFound)
	assert.ErrorIs(t, svc.DeleteTask(ctx, missing), models.ErrTaskNotFound)
	assert.Equal(t, 1, repo.Len())

	_, err = svc.GetTask(ctx, "not-an-id")
	assert.ErrorIs(t, err, models.ErrInvalidID)
	assert.ErrorIs(t, svc.DeleteTask(ctx, "123"), models.ErrInvalidID)
}

func TestDeleteTask(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, models.TaskInput{Title: "A", DueDate: "2025-04-01"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTask(ctx, created.ID.Hex()))
	assert.Equal(t, 0, repo.Len())

	_, err = svc.GetTask(ctx, created.ID.Hex())
	assert.ErrorIs(t, err, models.ErrTaskNotFound)
}
