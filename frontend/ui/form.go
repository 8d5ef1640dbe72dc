package ui

import (
	"strings"
	"unicode/utf8"

	"github.com/dahiyakapil/task-tracker/backend/tasks-service/models"
)

const dueDateLayout = "2006-01-02"

// TaskForm holds the create/edit form fields as the user typed them.
type TaskForm struct {
	Title       string
	Description string
	Priority    models.TaskPriority
	DueDate     string
	Status      models.TaskStatus
}

// NewTaskForm prefills the form from initial, or returns the blank create
// form when initial is nil.
func NewTaskForm(initial *models.Task) TaskForm {
	form := TaskForm{
		Priority: models.PriorityMedium,
		Status:   models.StatusPending,
	}
	if initial == nil {
		return form
	}

	form.Title = initial.Title
	form.Description = initial.Description
	if initial.Priority != "" {
		form.Priority = initial.Priority
	}
	if initial.Status != "" {
		form.Status = initial.Status
	}
	if !initial.DueDate.IsZero() {
		form.DueDate = initial.DueDate.UTC().Format(dueDateLayout)
	}
	return form
}

// Validate checks the fields the form checks before submitting. It returns
// nil when the form can be sent.
func (f TaskForm) Validate() *models.ValidationError {
	verr := &models.ValidationError{}

	if strings.TrimSpace(f.Title) == "" {
		verr.Add("title", "Task title is required")
	} else if utf8.RuneCountInString(f.Title) > 100 {
		verr.Add("title", "Title cannot exceed 100 characters")
	}
	if utf8.RuneCountInString(f.Description) > 500 {
		verr.Add("description", "Description cannot exceed 500 characters")
	}
	if f.DueDate == "" {
		verr.Add("dueDate", "Due date is required")
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

func (f TaskForm) Input() models.TaskInput {
	return models.TaskInput{
		Title:       f.Title,
		Description: f.Description,
		Priority:    f.Priority,
		DueDate:     f.DueDate,
		Status:      f.Status,
	}
}

// Patch sends every form field, as the edit form does.
func (f TaskForm) Patch() models.TaskPatch {
	return models.TaskPatch{
		Title:       models.Some(f.Title),
		Description: models.Some(f.Description),
		Priority:    models.Some(f.Priority),
		DueDate:     models.Some(f.DueDate),
		Status:      models.Some(f.Status),
	}
}
