package main

import (
	"bufio"
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dahiyakapil/task-tracker/backend/tasks-service/handlers"
	"github.com/dahiyakapil/task-tracker/backend/tasks-service/models"
	"github.com/dahiyakapil/task-tracker/backend/tasks-service/repositories"
	"github.com/dahiyakapil/task-tracker/backend/tasks-service/services"
	"github.com/dahiyakapil/task-tracker/frontend/api"
	"github.com/dahiyakapil/task-tracker/frontend/ui"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runConsole(t *testing.T, input string) (string, *repositories.MemoryTaskRepository) {
	t.Helper()

	repo := repositories.NewMemoryTaskRepository()
	srv := httptest.NewServer(handlers.NewRouter(handlers.NewTaskHandler(services.NewTaskService(repo)), "*"))
	t.Cleanup(srv.Close)

	logger, _ := test.NewNullLogger()
	app := ui.NewApp(api.NewTaskClient(srv.URL+"/api", srv.Client(), logger), logger).
		WithTimer(func(time.Duration, func()) {})

	var out bytes.Buffer
	now := func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	c := newConsole(app, bufio.NewScanner(strings.NewReader(input)), &out, now)
	require.NoError(t, c.run(context.Background()))
	return out.String(), repo
}

func TestConsoleTaskLifecycle(t *testing.T) {
	input := strings.Join([]string{
		"add", "Write docs", "", "High", "2025-05-01", "",
		"toggle 1",
		"delete 1", "n",
		"delete 1", "y",
		"quit",
	}, "\n") + "\n"

	out, repo := runConsole(t, input)

	assert.Contains(t, out, "Create New Task")
	assert.Contains(t, out, "[success] Task created successfully!")
	assert.Contains(t, out, "[ ] 1. Write docs  [High] [Pending] [Overdue]")
	assert.Contains(t, out, "Due: May 1, 2025")
	assert.Contains(t, out, "[success] Task marked as completed!")
	assert.Contains(t, out, "[x] 1. Write docs  [High] [Completed]")
	assert.Contains(t, out, ui.DeletePrompt+" [y/N]: ")
	assert.Contains(t, out, "[success] Task deleted successfully!")
	assert.Contains(t, out, "No tasks found")
	assert.Equal(t, 0, repo.Len())
}

func TestConsoleEditKeepsBlankAnswers(t *testing.T) {
	input := strings.Join([]string{
		"add", "First", "notes", "", "2025-07-01", "",
		"edit 1", "Renamed", "", "Low", "", "",
		"show 1",
	}, "\n") + "\n"

	out, repo := runConsole(t, input)

	assert.Contains(t, out, "Edit Task")
	assert.Contains(t, out, "Task Title [First]: ")
	assert.Contains(t, out, "[success] Task updated successfully!")
	assert.Contains(t, out, "1. Renamed  [Low] [Pending]")
	assert.Contains(t, out, "    notes\n")
	assert.Contains(t, out, "    ID: ")
	assert.Equal(t, 1, repo.Len())
}

func TestConsoleFormAndUsageErrors(t *testing.T) {
	input := strings.Join([]string{
		"add", "", "", "", "", "",
		"edit 3",
		"filter color=red",
		"bogus",
		"help",
	}, "\n") + "\n"

	out, repo := runConsole(t, input)

	assert.Contains(t, out, "  Task title is required\n")
	assert.Contains(t, out, "  Due date is required\n")
	assert.Contains(t, out, "usage: no task 3, the list is empty")
	assert.Contains(t, out, `usage: unknown filter "color"`)
	assert.Contains(t, out, `usage: unknown command "bogus", type help`)
	assert.Contains(t, out, "Commands:")
	assert.Equal(t, 0, repo.Len())
}

func TestParseFilters(t *testing.T) {
	current := models.TaskFilters{Status: "Pending"}

	got, err := parseFilters(current, []string{"priority=High", "sort=dueDate"})
	require.NoError(t, err)
	assert.Equal(t, models.TaskFilters{Status: "Pending", Priority: "High", SortBy: models.SortDueDate}, got)

	got, err = parseFilters(got, []string{"status="})
	require.NoError(t, err)
	assert.Equal(t, "", got.Status)

	_, err = parseFilters(current, []string{"status"})
	assert.ErrorIs(t, err, errUsage)
	_, err = parseFilters(current, nil)
	assert.ErrorIs(t, err, errUsage)
}
