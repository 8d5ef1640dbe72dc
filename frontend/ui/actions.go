package ui

import "github.com/dahiyakapil/task-tracker/backend/tasks-service/models"

// Action is a state transition applied by Reduce.
type Action interface {
	action()
}

type FetchStarted struct{}

type FetchSucceeded struct {
	Tasks []models.Task
}

type FetchFailed struct{}

type SubmitStarted struct{}

type SubmitFinished struct{}

type FiltersChanged struct {
	Filters models.TaskFilters
}

type FiltersCleared struct{}

type CreateOpened struct{}

type EditOpened struct {
	Task models.Task
}

type ModalClosed struct{}

type Notified struct {
	Message string
	Kind    NotificationKind
}

// NotificationDismissed hides the notification only if it is still the one
// numbered Seq.
type NotificationDismissed struct {
	Seq int
}

func (FetchStarted) action() {}
func (FetchSucceeded) action() {}
func (FetchFailed) action() {}
func (SubmitStarted) action() {}
func (SubmitFinished) action() {}
func (FiltersChanged) action() {}
func (FiltersCleared) action() {}
func (CreateOpened) action() {}
func (EditOpened) action() {}
func (ModalClosed) action() {}
func (Notified) action() {}
func (NotificationDismissed) action() {}

// Reduce returns the state after applying action. It does not modify s.
func Reduce(s State, action Action) State {
	switch a := action.(type) {
	case FetchStarted:
		s.Loading = true
	case FetchSucceeded:
		tasks := make([]models.Task, len(a.Tasks))
		copy(tasks, a.Tasks)
		s.Tasks = tasks
		s.Loading = false
	case FetchFailed:
		s.Loading = false
	case SubmitStarted:
		s.Submitting = true
	case SubmitFinished:
		s.Submitting = false
	case FiltersChanged:
		s.Filters = a.Filters
	case FiltersCleared:
		s.Filters = models.TaskFilters{}
	case CreateOpened:
		s.ModalOpen = true
		s.Editing = nil
	case EditOpened:
		task := a.Task
		s.ModalOpen = true
		s.Editing = &task
	case ModalClosed:
		s.ModalOpen = false
		s.Editing = nil
	case Notified:
		s.Notification = Notification{
			Show:    true,
			Message: a.Message,
			Kind:    a.Kind,
			Seq:     s.Notification.Seq + 1,
		}
	case NotificationDismissed:
		if a.Seq == s.Notification.Seq {
			s.Notification.Show = false
		}
	}
	return s
}
