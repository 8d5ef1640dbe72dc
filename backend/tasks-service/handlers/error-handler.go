package handlers

import (
	"errors"
	"net/http"

	"github.com/dahiyakapil/task-tracker/backend/tasks-service/logging"
	"github.com/dahiyakapil/task-tracker/backend/tasks-service/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// errInvalidPayload marks a body that could not be decoded.
var errInvalidPayload = errors.New("invalid request payload")

// normalizeError maps a failure from any layer onto a status and envelope.
// Unrecognized errors become 500 with their own message.
func normalizeError(err error) (int, Response) {
	var verr *models.ValidationError

	switch {
	case errors.Is(err, models.ErrMissingRequiredFields):
		return http.StatusBadRequest, Response{Message: "Title and due date are required"}
	case errors.As(err, &verr):
		return http.StatusBadRequest, Response{Message: "Validation Error", Errors: verr.Messages()}
	case errors.Is(err, models.ErrInvalidID):
		return http.StatusBadRequest, Response{Message: "Invalid ID format"}
	case errors.Is(err, models.ErrDuplicateKey), mongo.IsDuplicateKeyError(err):
		return http.StatusBadRequest, Response{Message: "Duplicate entry"}
	case errors.Is(err, errInvalidPayload):
		return http.StatusBadRequest, Response{Message: "Invalid request payload"}
	case errors.Is(err, models.ErrTaskNotFound):
		return http.StatusNotFound, Response{Message: "Task not found"}
	}

	message := err.Error()
	if message == "" {
		message = "Internal Server Error"
	}
	return http.StatusInternalServerError, Response{Message: message}
}

// writeError logs the failure under eventID and writes the normalized envelope.
func writeError(w http.ResponseWriter, r *http.Request, eventID string, err error) {
	status, body := normalizeError(err)
	body.Success = false

	if status >= http.StatusInternalServerError {
		logging.Logger.Errorf("Event ID: %s, Description: %s %s failed: %v", eventID, r.Method, r.URL.Path, err)
	} else {
		logging.Logger.Warnf("Event ID: %s, Description: %s %s rejected: %v", eventID, r.Method, r.URL.Path, err)
	}

	writeJSON(w, status, body)
}
