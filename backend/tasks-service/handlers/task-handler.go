package handlers

import (
	"net/http"

	"github.com/dahiyakapil/task-tracker/backend/tasks-service/logging"
	"github.com/dahiyakapil/task-tracker/backend/tasks-service/models"
	"github.com/dahiyakapil/task-tracker/backend/tasks-service/services"

	"github.com/gorilla/mux"
)

type TaskHandler struct {
	service *services.TaskService
}

func NewTaskHandler(service *services.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var input models.TaskInput
	if err := decodeBody(w, r, &input); err != nil {
		writeError(w, r, "TASK_CREATE_INVALID_PAYLOAD", err)
		return
	}

	task, err := h.service.CreateTask(r.Context(), input)
	if err != nil {
		writeError(w, r, "TASK_CREATE_FAILED", err)
		return
	}

	writeJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Task created successfully",
		Data:    task,
	})
}

// GetAllTasks lists tasks filtered by the status and priority query
// parameters and ordered by sortBy.
func (h *TaskHandler) GetAllTasks(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filters := models.TaskFilters{
		Status:   query.Get("status"),
		Priority: query.Get("priority"),
		SortBy:   query.Get("sortBy"),
	}

	tasks, err := h.service.ListTasks(r.Context(), filters)
	if err != nil {
		writeError(w, r, "TASK_LIST_FAILED", err)
		return
	}

	count := len(tasks)
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Count:   &count,
		Data:    tasks,
	})
}

func (h *TaskHandler) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	task, err := h.service.GetTask(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, "TASK_GET_FAILED", err)
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    task,
	})
}

func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var patch models.TaskPatch
	if err := decodeBody(w, r, &patch); err != nil {
		writeError(w, r, "TASK_UPDATE_INVALID_PAYLOAD", err)
		return
	}

	task, err := h.service.UpdateTask(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		writeError(w, r, "TASK_UPDATE_FAILED", err)
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Task updated successfully",
		Data:    task,
	})
}

func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteTask(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, r, "TASK_DELETE_FAILED", err)
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Task deleted successfully",
	})
}

// Health pings the task store.
func (h *TaskHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Ping(r.Context()); err != nil {
		logging.Logger.Errorf("Event ID: HEALTH_CHECK_FAILED, Description: Task store unreachable: %v", err)
		writeJSON(w, http.StatusServiceUnavailable, Response{
			Success: false,
			Message: "Task store unreachable",
		})
		return
	}
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Tasks service is running",
	})
}
