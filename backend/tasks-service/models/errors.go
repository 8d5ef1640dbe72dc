package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTaskNotFound          = errors.New("task not found")
	ErrInvalidID             = errors.New("invalid task id")
	ErrMissingRequiredFields = errors.New("title and due date are required")
	ErrDuplicateKey          = errors.New("duplicate key")
)

// FieldError is a single schema violation on one task field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every field violation found on a write.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// Messages returns the per-field messages in the order they were found.
func (e *ValidationError) Messages() []string {
	messages := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		messages = append(messages, f.Message)
	}
	return messages
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "Task validation failed: " + strings.Join(parts, ", ")
}
