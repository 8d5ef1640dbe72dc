package repositories

import (
	"context"

	"github.com/dahiyakapil/task-tracker/backend/tasks-service/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TaskQuery is a resolved list request. The Mongo repository uses the BSON
// form, the in-memory repository uses the predicate and comparator.
type TaskQuery interface {
	Filter() bson.D
	Sort() bson.D
	Match(task *models.Task) bool
	Less(a, b *models.Task) bool
}

// TaskRepository is the persistence gateway for tasks. FindByID, Save and
// FindByIDAndDelete return models.ErrTaskNotFound when no document matches.
type TaskRepository interface {
	Find(ctx context.Context, query TaskQuery) ([]*models.Task, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Task, error)
	Create(ctx context.Context, task *models.Task) error
	Save(ctx context.Context, task *models.Task) error
	FindByIDAndDelete(ctx context.Context, id primitive.ObjectID) (*models.Task, error)
	EnsureIndexes(ctx context.Context) error
	Ping(ctx context.Context) error
}
