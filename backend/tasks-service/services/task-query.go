package services

import (
	"bytes"

	"github.com/dahiyakapil/task-tracker/backend/tasks-service/models"

	"go.mongodb.org/mongo-driver/bson"
)

// TaskQuery is the resolved form of the list parameters. It only describes
// the query; repositories execute it.
type TaskQuery struct {
	status   string
	priority string
	sortBy   string
}

// NewTaskQuery resolves list parameters. Empty values impose no constraint
// and an unrecognized sortBy falls back to newest first.
func NewTaskQuery(filters models.TaskFilters) *TaskQuery {
	q := &TaskQuery{
		status:   filters.Status,
		priority: filters.Priority,
	}
	switch filters.SortBy {
	case models.SortDueDate, models.SortDueDateDesc, models.SortPriority:
		q.sortBy = filters.SortBy
	default:
		q.sortBy = models.SortNewest
	}
	return q
}

// SortBy returns the effective ordering after fallback.
func (q *TaskQuery) SortBy() string {
	return q.sortBy
}

func (q *TaskQuery) Filter() bson.D {
	filter := bson.D{}
	if q.status != "" {
		filter = append(filter, bson.E{Key: "status", Value: q.status})
	}
	if q.priority != "" {
		filter = append(filter, bson.E{Key: "priority", Value: q.priority})
	}
	return filter
}

// Sort orders by priorityRank rather than the priority text, which would
// sort alphabetically. _id is the final key so equal keys stay stable.
func (q *TaskQuery) Sort() bson.D {
	switch q.sortBy {
	case models.SortDueDate:
		return bson.D{{Key: "dueDate", Value: 1}, {Key: "_id", Value: 1}}
	case models.SortDueDateDesc:
		return bson.D{{Key: "dueDate", Value: -1}, {Key: "_id", Value: 1}}
	case models.SortPriority:
		return bson.D{{Key: "priorityRank", Value: -1}, {Key: "dueDate", Value: 1}, {Key: "_id", Value: 1}}
	default:
		return bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}
	}
}

func (q *TaskQuery) Match(task *models.Task) bool {
	if q.status != "" && string(task.Status) != q.status {
		return false
	}
	if q.priority != "" && string(task.Priority) != q.priority {
		return false
	}
	return true
}

func (q *TaskQuery) Less(a, b *models.Task) bool {
	idOrder := bytes.Compare(a.ID[:], b.ID[:])

	switch q.sortBy {
	case models.SortDueDate:
		if !a.DueDate.Equal(b.DueDate) {
			return a.DueDate.Before(b.DueDate)
		}
		return idOrder < 0
	case models.SortDueDateDesc:
		if !a.DueDate.Equal(b.DueDate) {
			return a.DueDate.After(b.DueDate)
		}
		return idOrder < 0
	case models.SortPriority:
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() > b.Priority.Rank()
		}
		if !a.DueDate.Equal(b.DueDate) {
			return a.DueDate.Before(b.DueDate)
		}
		return idOrder < 0
	default:
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return idOrder > 0
	}
}
