package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/dahiyakapil/task-tracker/backend/tasks-service/models"
)

const cardDateLayout = "Jan 2, 2006"

var sortLabels = map[string]string{
	models.SortNewest:      "Newest First",
	models.SortDueDate:     "Due Date (Earliest)",
	models.SortDueDateDesc: "Due Date (Latest)",
	models.SortPriority:    "Priority (High to Low)",
}

// SortLabel names a sortBy value the way the filter bar shows it.
func SortLabel(sortBy string) string {
	if label, ok := sortLabels[sortBy]; ok {
		return label
	}
	return sortLabels[models.SortNewest]
}

func RenderHeader(s State) string {
	pending, completed := s.Counts()

	var b strings.Builder
	fmt.Fprintf(&b, "Task Tracker - Manage your tasks efficiently (%d Tasks)\n", len(s.Tasks))
	fmt.Fprintf(&b, "Your Tasks: %d pending, %d completed\n", pending, completed)
	return b.String()
}

func RenderFilters(f models.TaskFilters) string {
	status, priority := f.Status, f.Priority
	if status == "" {
		status = "All"
	}
	if priority == "" {
		priority = "All"
	}
	return fmt.Sprintf("Status: %s | Priority: %s | Sort By: %s\n", status, priority, SortLabel(f.SortBy))
}

// RenderTaskCard draws one task numbered n. The Overdue badge and due date
// use now's calendar day.
func RenderTaskCard(n int, task models.Task, now time.Time) string {
	var b strings.Builder

	box := "[ ]"
	if task.Status == models.StatusCompleted {
		box = "[x]"
	}
	fmt.Fprintf(&b, "%s %d. %s  [%s] [%s]", box, n, task.Title, task.Priority, task.Status)
	if task.IsOverdue(now) {
		b.WriteString(" [Overdue]")
	}
	b.WriteByte('\n')

	if task.Description != "" {
		fmt.Fprintf(&b, "    %s\n", task.Description)
	}
	fmt.Fprintf(&b, "    Due: %s\n", task.DueDate.In(now.Location()).Format(cardDateLayout))
	return b.String()
}

func RenderTaskList(s State, now time.Time) string {
	if s.Loading {
		return "Loading tasks...\n"
	}
	if len(s.Tasks) == 0 {
		return "No tasks found\nGet started by creating your first task!\n"
	}

	var b strings.Builder
	for i, task := range s.Tasks {
		b.WriteString(RenderTaskCard(i+1, task, now))
	}
	return b.String()
}

func RenderNotification(n Notification) string {
	if !n.Show {
		return ""
	}
	return fmt.Sprintf("[%s] %s\n", n.Kind, n.Message)
}

// ModalTitle is the heading of the create/edit form.
func ModalTitle(s State) string {
	if s.Editing != nil {
		return "Edit Task"
	}
	return "Create New Task"
}

// Render draws the whole screen.
func Render(s State, now time.Time) string {
	var b strings.Builder
	b.WriteString(RenderNotification(s.Notification))
	b.WriteString(RenderHeader(s))
	b.WriteString(RenderFilters(s.Filters))
	b.WriteString(RenderTaskList(s, now))
	return b.String()
}
