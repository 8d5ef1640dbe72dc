package ui

import "github.com/dahiyakapil/task-tracker/backend/tasks-service/models"

type NotificationKind string

const (
	KindInfo    NotificationKind = "info"
	KindSuccess NotificationKind = "success"
	KindError   NotificationKind = "error"
)

// Notification is the single toast slot. Seq grows with every new message
// so a stale dismiss can be told apart from the current one.
type Notification struct {
	Show    bool
	Message string
	Kind    NotificationKind
	Seq     int
}

type State struct {
	Tasks        []models.Task
	Loading      bool
	Submitting   bool
	Filters      models.TaskFilters
	ModalOpen    bool
	Editing      *models.Task
	Notification Notification
}

func InitialState() State {
	return State{
		Tasks:        []models.Task{},
		Loading:      true,
		Notification: Notification{Kind: KindInfo},
	}
}

// Counts returns the number of pending and completed tasks in view.
func (s State) Counts() (pending, completed int) {
	for _, task := range s.Tasks {
		switch task.Status {
		case models.StatusPending:
			pending++
		case models.StatusCompleted:
			completed++
		}
	}
	return pending, completed
}
