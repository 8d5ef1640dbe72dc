package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TaskStatus string

const (
	StatusPending   TaskStatus = "Pending"
	StatusCompleted TaskStatus = "Completed"
)

func (s TaskStatus) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Toggled returns the opposite status, used by the client status checkbox.
func (s TaskStatus) Toggled() TaskStatus {
	if s == StatusCompleted {
		return StatusPending
	}
	return StatusCompleted
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
)

func (p TaskPriority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Rank orders priorities High > Medium > Low. Unknown values rank below Low.
func (p TaskPriority) Rank() int {
	switch p {
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 0
	default:
		return -1
	}
}

type Task struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title        string             `json:"title" bson:"title" validate:"required,max=100"`
	Description  string             `json:"description" bson:"description" validate:"max=500"`
	Priority     TaskPriority       `json:"priority" bson:"priority" validate:"oneof=Low Medium High"`
	PriorityRank int                `json:"-" bson:"priorityRank"`
	DueDate      time.Time          `json:"dueDate" bson:"dueDate" validate:"required"`
	Status       TaskStatus         `json:"status" bson:"status" validate:"oneof=Pending Completed"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// TaskInput is the create request body. DueDate stays a string until the
// schema layer parses it so a bad value is reported as a field error.
type TaskInput struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Priority    TaskPriority `json:"priority,omitempty"`
	DueDate     string       `json:"dueDate"`
	Status      TaskStatus   `json:"status,omitempty"`
}

// NewTask builds a validated task from a create request, applying the
// schema defaults and trimming.
func NewTask(input TaskInput) (*Task, error) {
	task := &Task{
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Status:      input.Status,
	}
	if task.Priority == "" {
		task.Priority = PriorityMedium
	}
	if task.Status == "" {
		task.Status = StatusPending
	}

	verr := &ValidationError{}
	if input.DueDate != "" {
		dueDate, err := ParseDueDate(input.DueDate)
		if err != nil {
			verr.Add("dueDate", dueDateCastMessage(input.DueDate))
		} else {
			task.DueDate = dueDate
		}
	}

	if err := task.validate(verr); err != nil {
		return nil, err
	}
	return task, nil
}

// ApplyPatch copies every present field of the patch onto the task and
// re-validates the result. The task is left untouched when validation fails.
func (t *Task) ApplyPatch(patch TaskPatch) error {
	updated := *t
	verr := &ValidationError{}

	if patch.Title.Set {
		updated.Title = patch.Title.Value
	}
	if patch.Description.Set {
		updated.Description = patch.Description.Value
	}
	if patch.Priority.Set {
		updated.Priority = patch.Priority.Value
	}
	if patch.Status.Set {
		updated.Status = patch.Status.Value
	}
	if patch.DueDate.Set {
		if patch.DueDate.Value == "" {
			updated.DueDate = time.Time{}
		} else if dueDate, err := ParseDueDate(patch.DueDate.Value); err != nil {
			verr.Add("dueDate", dueDateCastMessage(patch.DueDate.Value))
		} else {
			updated.DueDate = dueDate
		}
	}

	if err := updated.validate(verr); err != nil {
		return err
	}
	*t = updated
	return nil
}

func (t *Task) validate(verr *ValidationError) error {
	t.Title = strings.TrimSpace(t.Title)
	t.Description = strings.TrimSpace(t.Description)
	t.PriorityRank = t.Priority.Rank()

	validateStruct(t, verr)
	if verr.HasErrors() {
		return verr
	}
	return nil
}

// IsOverdue reports whether the due day is before the day of now and the
// task is still open. Both sides are compared as calendar days in now's zone.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.Status == StatusCompleted {
		return false
	}
	due := t.DueDate.In(now.Location())
	dueDay := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dueDay.Before(today)
}
