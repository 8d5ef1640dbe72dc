package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dahiyakapil/task-tracker/backend/tasks-service/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type MongoTaskRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

func NewMongoTaskRepository(collection *mongo.Collection) *MongoTaskRepository {
	return &MongoTaskRepository{collection: collection, now: time.Now}
}

func (r *MongoTaskRepository) Find(ctx context.Context, query TaskQuery) ([]*models.Task, error) {
	cursor, err := r.collection.Find(ctx, query.Filter(), options.Find().SetSort(query.Sort()))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve tasks: %w", err)
	}
	defer cursor.Close(ctx)

	tasks := []*models.Task{}
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}
	return tasks, nil
}

func (r *MongoTaskRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Task, error) {
	var task models.Task
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&task)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve task %s: %w", id.Hex(), err)
	}
	return &task, nil
}

func (r *MongoTaskRepository) Create(ctx context.Context, task *models.Task) error {
	if task.ID.IsZero() {
		task.ID = primitive.NewObjectID()
	}
	now := r.timestamp()
	task.CreatedAt = now
	task.UpdatedAt = now
	task.PriorityRank = task.Priority.Rank()

	if _, err := r.collection.InsertOne(ctx, task); err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

func (r *MongoTaskRepository) Save(ctx context.Context, task *models.Task) error {
	task.UpdatedAt = r.timestamp()
	task.PriorityRank = task.Priority.Rank()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": task.ID}, task)
	if err != nil {
		return fmt.Errorf("failed to save task %s: %w", task.ID.Hex(), err)
	}
	if result.MatchedCount == 0 {
		return models.ErrTaskNotFound
	}
	return nil
}

func (r *MongoTaskRepository) FindByIDAndDelete(ctx context.Context, id primitive.ObjectID) (*models.Task, error) {
	var task models.Task
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&task)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete task %s: %w", id.Hex(), err)
	}
	return &task, nil
}

// EnsureIndexes creates the compound index used by filtered listings.
func (r *MongoTaskRepository) EnsureIndexes(ctx context.Context) error {
	indexModel := mongo.IndexModel{
		Keys: bson.D{{Key: "status", Value: 1}, {Key: "priority", Value: 1}, {Key: "dueDate", Value: 1}},
	}
	if _, err := r.collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		return fmt.Errorf("failed to create task index: %w", err)
	}
	return nil
}

func (r *MongoTaskRepository) Ping(ctx context.Context) error {
	return r.collection.Database().Client().Ping(ctx, readpref.Primary())
}

func (r *MongoTaskRepository) timestamp() time.Time {
	return r.now().UTC().Truncate(time.Millisecond)
}
