package handlers

import (
	"net/http"

	"github.com/dahiyakapil/task-tracker/backend/tasks-service/middleware"

	"github.com/gorilla/mux"
)

// NewRouter wires the task routes under /api/tasks and wraps them in the
// CORS and access log middleware.
func NewRouter(taskHandler *TaskHandler, corsOrigin string) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/", Root).Methods(http.MethodGet)
	r.HandleFunc("/health", taskHandler.Health).Methods(http.MethodGet)

	r.HandleFunc("/api/tasks/create-task", taskHandler.CreateTask).Methods(http.MethodPost)
	r.HandleFunc("/api/tasks", taskHandler.GetAllTasks).Methods(http.MethodGet)
	r.HandleFunc("/api/tasks/", taskHandler.GetAllTasks).Methods(http.MethodGet)
	r.HandleFunc("/api/tasks/{id}", taskHandler.GetTaskByID).Methods(http.MethodGet)
	r.HandleFunc("/api/tasks/{id}", taskHandler.UpdateTask).Methods(http.MethodPut)
	r.HandleFunc("/api/tasks/{id}", taskHandler.DeleteTask).Methods(http.MethodDelete)

	r.NotFoundHandler = http.HandlerFunc(NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(NotFound)

	return middleware.RequestLogger(middleware.EnableCORS(corsOrigin)(r))
}
