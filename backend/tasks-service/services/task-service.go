package services

import (
	"context"
	"fmt"

	"github.com/dahiyakapil/task-tracker/backend/tasks-service/logging"
	"github.com/dahiyakapil/task-tracker/backend/tasks-service/models"
	"github.com/dahiyakapil/task-tracker/backend/tasks-service/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TaskService struct {
	repo repositories.TaskRepository
}

func NewTaskService(repo repositories.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// CreateTask checks the required fields before touching storage, then lets
// the schema layer apply defaults and field rules.
func (s *TaskService) CreateTask(ctx context.Context, input models.TaskInput) (*models.Task, error) {
	if input.Title == "" || input.DueDate == "" {
		return nil, models.ErrMissingRequiredFields
	}

	task, err := models.NewTask(input)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	logging.Logger.Infof("Event ID: TASK_CREATED, Description: Task %s created with priority %s", task.ID.Hex(), task.Priority)
	return task, nil
}

// ListTasks returns every task matching the filters, in the requested order.
func (s *TaskService) ListTasks(ctx context.Context, filters models.TaskFilters) ([]*models.Task, error) {
	query := NewTaskQuery(filters)
	tasks, err := s.repo.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	logging.Logger.Debugf("Event ID: TASKS_LISTED, Description: %d tasks matched status=%q priority=%q sortBy=%q", len(tasks), filters.Status, filters.Priority, query.SortBy())
	return tasks, nil
}

func (s *TaskService) GetTask(ctx context.Context, id string) (*models.Task, error) {
	objectID, err := ParseTaskID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, objectID)
}

// UpdateTask applies the present fields of the patch and saves the task.
func (s *TaskService) UpdateTask(ctx context.Context, id string, patch models.TaskPatch) (*models.Task, error) {
	objectID, err := ParseTaskID(id)
	if err != nil {
		return nil, err
	}

	task, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}

	if err := task.ApplyPatch(patch); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, task); err != nil {
		return nil, err
	}

	logging.Logger.Infof("Event ID: TASK_UPDATED, Description: Task %s updated", task.ID.Hex())
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	objectID, err := ParseTaskID(id)
	if err != nil {
		return err
	}

	if _, err := s.repo.FindByID(ctx, objectID); err != nil {
		return err
	}

	if _, err := s.repo.FindByIDAndDelete(ctx, objectID); err != nil {
		return err
	}

	logging.Logger.Infof("Event ID: TASK_DELETED, Description: Task %s deleted", objectID.Hex())
	return nil
}

// Ping reports whether the task store is reachable.
func (s *TaskService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

func ParseTaskID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", models.ErrInvalidID, id)
	}
	return objectID, nil
}
