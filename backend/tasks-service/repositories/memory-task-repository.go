package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dahiyakapil/task-tracker/backend/tasks-service/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryTaskRepository keeps tasks in a map. Stored values are copies, so
// callers never share memory with the repository.
type MemoryTaskRepository struct {
	mu    sync.RWMutex
	tasks map[primitive.ObjectID]models.Task
	now   func() time.Time
}

func NewMemoryTaskRepository() *MemoryTaskRepository {
	return &MemoryTaskRepository{
		tasks: make(map[primitive.ObjectID]models.Task),
		now:   time.Now,
	}
}

// WithClock replaces the timestamp source. It is meant for tests.
func (r *MemoryTaskRepository) WithClock(now func() time.Time) *MemoryTaskRepository {
	r.now = now
	return r
}

func (r *MemoryTaskRepository) Find(_ context.Context, query TaskQuery) ([]*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := []*models.Task{}
	for _, stored := range r.tasks {
		task := stored
		if query.Match(&task) {
			tasks = append(tasks, &task)
		}
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return query.Less(tasks[i], tasks[j])
	})
	return tasks, nil
}

func (r *MemoryTaskRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, models.ErrTaskNotFound
	}
	return &task, nil
}

func (r *MemoryTaskRepository) Create(_ context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if task.ID.IsZero() {
		task.ID = primitive.NewObjectID()
	}
	if _, exists := r.tasks[task.ID]; exists {
		return models.ErrDuplicateKey
	}
	now := r.timestamp()
	task.CreatedAt = now
	task.UpdatedAt = now
	task.PriorityRank = task.Priority.Rank()
	r.tasks[task.ID] = *task
	return nil
}

func (r *MemoryTaskRepository) Save(_ context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tasks[task.ID]; !exists {
		return models.ErrTaskNotFound
	}
	task.UpdatedAt = r.timestamp()
	task.PriorityRank = task.Priority.Rank()
	r.tasks[task.ID] = *task
	return nil
}

func (r *MemoryTaskRepository) FindByIDAndDelete(_ context.Context, id primitive.ObjectID) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, models.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return &task, nil
}

func (r *MemoryTaskRepository) EnsureIndexes(context.Context) error { return nil }

func (r *MemoryTaskRepository) Ping(context.Context) error { return nil }

func (r *MemoryTaskRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tasks)
}

func (r *MemoryTaskRepository) timestamp() time.Time {
	return r.now().UTC().Truncate(time.Millisecond)
}
