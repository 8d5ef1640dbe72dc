package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/dahiyakapil/task-tracker/backend/tasks-service/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestNormalizeError(t *testing.T) {
	verr := &models.ValidationError{}
	verr.Add("title", "Task title is required")
	verr.Add("dueDate", "Due date is required")

	dupErr := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}}}

	tests := []struct {
		name    string
		err     error
		status  int
		message string
		errors  []string
	}{
		{"missing fields", models.ErrMissingRequiredFields, http.StatusBadRequest, "Title and due date are required", nil},
		{"validation", fmt.Errorf("wrapped: %w", verr), http.StatusBadRequest, "Validation Error", []string{"Task title is required", "Due date is required"}},
		{"invalid id", fmt.Errorf("%w: %q", models.ErrInvalidID, "x"), http.StatusBadRequest, "Invalid ID format", nil},
		{"duplicate from mongo", fmt.Errorf("failed to create task: %w", dupErr), http.StatusBadRequest, "Duplicate entry", nil},
		{"duplicate from memory", models.ErrDuplicateKey, http.StatusBadRequest, "Duplicate entry", nil},
		{"bad payload", fmt.Errorf("%w: unexpected EOF", errInvalidPayload), http.StatusBadRequest, "Invalid request payload", nil},
		{"not found", models.ErrTaskNotFound, http.StatusNotFound, "Task not found", nil},
		{"unknown", errors.New("server selection timeout"), http.StatusInternalServerError, "server selection timeout", nil},
		{"empty message", errors.New(""), http.StatusInternalServerError, "Internal Server Error", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := normalizeError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.message, body.Message)
			assert.Equal(t, tt.errors, body.Errors)
		})
	}
}
