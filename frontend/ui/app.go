package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dahiyakapil/task-tracker/backend/tasks-service/models"
	"github.com/dahiyakapil/task-tracker/frontend/api"

	"github.com/sirupsen/logrus"
)

const NotificationDuration = 3 * time.Second

const DeletePrompt = "Are you sure you want to delete this task?"

// TaskAPI is the subset of the tasks client the app drives.
type TaskAPI interface {
	ListTasks(ctx context.Context, filters models.TaskFilters) (*api.TaskList, error)
	CreateTask(ctx context.Context, input models.TaskInput) (*models.Task, error)
	UpdateTask(ctx context.Context, id string, patch models.TaskPatch) (*models.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

// App runs the side effects behind every user action and records the
// outcome in its Store. Every successful mutation re-fetches the list.
type App struct {
	client TaskAPI
	store  *Store
	log    logrus.FieldLogger

	// Confirm asks the user a yes/no question. Delete does nothing unless
	// it returns true.
	Confirm func(prompt string) bool

	afterFunc func(d time.Duration, fn func())
}

func NewApp(client TaskAPI, log logrus.FieldLogger) *App {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &App{
		client: client,
		store:  NewStore(InitialState()),
		log:    log,
		afterFunc: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
	}
}

// WithTimer replaces the scheduler used for notification auto-dismiss.
func (a *App) WithTimer(afterFunc func(d time.Duration, fn func())) *App {
	a.afterFunc = afterFunc
	return a
}

func (a *App) Store() *Store {
	return a.store
}

func (a *App) State() State {
	return a.store.State()
}

func (a *App) Mount(ctx context.Context) error {
	return a.fetchTasks(ctx)
}

func (a *App) SetFilters(ctx context.Context, filters models.TaskFilters) error {
	a.store.Dispatch(FiltersChanged{Filters: filters})
	return a.fetchTasks(ctx)
}

func (a *App) ClearFilters(ctx context.Context) error {
	a.store.Dispatch(FiltersCleared{})
	return a.fetchTasks(ctx)
}

func (a *App) OpenCreate() {
	a.store.Dispatch(CreateOpened{})
}

func (a *App) OpenEdit(task models.Task) {
	a.store.Dispatch(EditOpened{Task: task})
}

func (a *App) CloseModal() {
	a.store.Dispatch(ModalClosed{})
}

// Submit validates the form, then creates a task or updates the one being
// edited. An invalid form is returned as a *models.ValidationError without
// calling the API.
func (a *App) Submit(ctx context.Context, form TaskForm) error {
	if verr := form.Validate(); verr != nil {
		return verr
	}

	editing := a.store.State().Editing
	a.store.Dispatch(SubmitStarted{})

	var err error
	if editing != nil {
		_, err = a.client.UpdateTask(ctx, editing.ID.Hex(), form.Patch())
	} else {
		_, err = a.client.CreateTask(ctx, form.Input())
	}
	a.store.Dispatch(SubmitFinished{})

	if err != nil {
		if editing != nil {
			a.log.Errorf("Event ID: TASK_UPDATE_FAILED, Description: Failed to update task: %v", err)
			a.notify(api.Message(err, "Failed to update task"), KindError)
		} else {
			a.log.Errorf("Event ID: TASK_CREATE_FAILED, Description: Failed to create task: %v", err)
			a.notify(api.Message(err, "Failed to create task"), KindError)
		}
		return err
	}

	if editing != nil {
		a.notify("Task updated successfully!", KindSuccess)
	} else {
		a.notify("Task created successfully!", KindSuccess)
	}
	a.store.Dispatch(ModalClosed{})
	return a.fetchTasks(ctx)
}

// Delete removes the task after the user confirms.
func (a *App) Delete(ctx context.Context, id string) error {
	if a.Confirm == nil || !a.Confirm(DeletePrompt) {
		return nil
	}

	if err := a.client.DeleteTask(ctx, id); err != nil {
		a.log.Errorf("Event ID: TASK_DELETE_FAILED, Description: Failed to delete task: %v", err)
		a.notify(api.Message(err, "Failed to delete task"), KindError)
		return err
	}

	a.notify("Task deleted successfully!", KindSuccess)
	return a.fetchTasks(ctx)
}

// ToggleStatus flips a task between Pending and Completed.
func (a *App) ToggleStatus(ctx context.Context, task models.Task) error {
	status := task.Status.Toggled()

	if _, err := a.client.UpdateTask(ctx, task.ID.Hex(), models.TaskPatch{Status: models.Some(status)}); err != nil {
		a.log.Errorf("Event ID: TASK_STATUS_UPDATE_FAILED, Description: Failed to update task status: %v", err)
		a.notify(api.Message(err, "Failed to update status"), KindError)
		return err
	}

	a.notify(fmt.Sprintf("Task marked as %s!", strings.ToLower(string(status))), KindSuccess)
	return a.fetchTasks(ctx)
}

// DismissNotification hides the current notification.
func (a *App) DismissNotification() {
	a.store.Dispatch(NotificationDismissed{Seq: a.store.State().Notification.Seq})
}

func (a *App) fetchTasks(ctx context.Context) error {
	a.store.Dispatch(FetchStarted{})

	list, err := a.client.ListTasks(ctx, a.store.State().Filters)
	if err != nil {
		a.log.Errorf("Event ID: TASK_FETCH_FAILED, Description: Failed to fetch tasks: %v", err)
		a.store.Dispatch(FetchFailed{})
		a.notify(api.Message(err, "Failed to fetch tasks"), KindError)
		return err
	}

	a.store.Dispatch(FetchSucceeded{Tasks: list.Tasks})
	return nil
}

func (a *App) notify(message string, kind NotificationKind) {
	seq := a.store.Dispatch(Notified{Message: message, Kind: kind}).Notification.Seq
	a.afterFunc(NotificationDuration, func() {
		a.store.Dispatch(NotificationDismissed{Seq: seq})
	})
}
