package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dahiyakapil/task-tracker/backend/tasks-service/logging"
)

const APIVersion = "1.0.0"

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Data    any      `json:"data,omitempty"`
	Count   *int     `json:"count,omitempty"`
	Errors  []string `json:"errors,omitempty"`
	Version string   `json:"version,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Logger.Errorf("Event ID: RESPONSE_ENCODE_FAILED, Description: Failed to encode response: %v", err)
	}
}

// Root answers the service banner.
func Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Task Tracker API is running",
		Version: APIVersion,
	})
}

// NotFound answers every unmatched route, including known paths hit with
// an unsupported method.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, Response{
		Success: false,
		Message: "Route " + r.URL.RequestURI() + " not found",
	})
}
