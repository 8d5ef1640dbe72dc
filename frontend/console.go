package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dahiyakapil/task-tracker/backend/tasks-service/models"
	"github.com/dahiyakapil/task-tracker/frontend/ui"
)

const helpText = `Commands:
  list                                   show tasks
  filter status=.. priority=.. sort=..   change filters (sort: dueDate, dueDateDesc, priority)
  clear                                  reset filters
  add                                    create a task
  edit <n>                               edit task n
  toggle <n>                             mark task n completed or pending
  delete <n>                             delete task n
  show <n>                               show task n in full
  help                                   show this help
  quit                                   exit
`

// console is the line-oriented front end over ui.App.
type console struct {
	app *ui.App
	in  *bufio.Scanner
	out io.Writer
	now func() time.Time
}

func newConsole(app *ui.App, in *bufio.Scanner, out io.Writer, now func() time.Time) *console {
	c := &console{app: app, in: in, out: out, now: now}
	app.Confirm = c.confirm
	return c
}

// run reads commands until quit, EOF or ctx is done.
func (c *console) run(ctx context.Context) error {
	_ = c.app.Mount(ctx)
	c.render()

	for {
		if ctx.Err() != nil {
			return nil
		}
		fmt.Fprint(c.out, "> ")
		line, ok := c.readLine()
		if !ok {
			return c.in.Err()
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd, args := strings.ToLower(fields[0]), fields[1:]

		if cmd == "quit" || cmd == "exit" {
			return nil
		}
		if err := c.dispatch(ctx, cmd, args); err != nil {
			var verr *models.ValidationError
			if errors.As(err, &verr) {
				for _, message := range verr.Messages() {
					fmt.Fprintf(c.out, "  %s\n", message)
				}
			} else if errors.Is(err, errUsage) {
				fmt.Fprintln(c.out, err)
			}
		}
	}
}

var errUsage = errors.New("usage")

func usage(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{errUsage}, args...)...)
}

func (c *console) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "list", "ls":
		err := c.app.Mount(ctx)
		c.render()
		return err
	case "filter":
		filters, err := parseFilters(c.app.State().Filters, args)
		if err != nil {
			return err
		}
		err = c.app.SetFilters(ctx, filters)
		c.render()
		return err
	case "clear":
		err := c.app.ClearFilters(ctx)
		c.render()
		return err
	case "add":
		c.app.OpenCreate()
		return c.submit(ctx, ui.NewTaskForm(nil))
	case "edit":
		task, err := c.task(args)
		if err != nil {
			return err
		}
		c.app.OpenEdit(task)
		return c.submit(ctx, ui.NewTaskForm(&task))
	case "toggle":
		task, err := c.task(args)
		if err != nil {
			return err
		}
		err = c.app.ToggleStatus(ctx, task)
		c.render()
		return err
	case "delete", "rm":
		task, err := c.task(args)
		if err != nil {
			return err
		}
		err = c.app.Delete(ctx, task.ID.Hex())
		c.render()
		return err
	case "show":
		task, err := c.task(args)
		if err != nil {
			return err
		}
		c.show(task)
		return nil
	case "help":
		fmt.Fprint(c.out, helpText)
		return nil
	default:
		return usage("unknown command %q, type help", cmd)
	}
}

// submit walks through the form fields. An empty answer keeps the shown value.
func (c *console) submit(ctx context.Context, form ui.TaskForm) error {
	fmt.Fprintln(c.out, ui.ModalTitle(c.app.State()))

	form.Title = c.ask("Task Title", form.Title)
	form.Description = c.ask("Description", form.Description)
	form.Priority = models.TaskPriority(c.ask("Priority (Low, Medium, High)", string(form.Priority)))
	form.DueDate = c.ask("Due Date (YYYY-MM-DD)", form.DueDate)
	form.Status = models.TaskStatus(c.ask("Status (Pending, Completed)", string(form.Status)))

	err := c.app.Submit(ctx, form)
	if err != nil {
		c.app.CloseModal()
	}
	c.render()
	return err
}

func (c *console) ask(label, current string) string {
	if current != "" {
		fmt.Fprintf(c.out, "%s [%s]: ", label, current)
	} else {
		fmt.Fprintf(c.out, "%s: ", label)
	}
	line, ok := c.readLine()
	if !ok || strings.TrimSpace(line) == "" {
		return current
	}
	return strings.TrimSpace(line)
}

func (c *console) confirm(prompt string) bool {
	fmt.Fprintf(c.out, "%s [y/N]: ", prompt)
	line, ok := c.readLine()
	if !ok {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func (c *console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func (c *console) task(args []string) (models.Task, error) {
	if len(args) != 1 {
		return models.Task{}, usage("expected a task number")
	}
	n, err := strconv.Atoi(args[0])
	tasks := c.app.State().Tasks
	if len(tasks) == 0 {
		return models.Task{}, usage("no task %s, the list is empty", args[0])
	}
	if err != nil || n < 1 || n > len(tasks) {
		return models.Task{}, usage("no task %s, pick 1-%d", args[0], len(tasks))
	}
	return tasks[n-1], nil
}

func (c *console) render() {
	fmt.Fprint(c.out, ui.Render(c.app.State(), c.now()))
}

func (c *console) show(task models.Task) {
	now := c.now()
	fmt.Fprint(c.out, ui.RenderTaskCard(1, task, now))
	fmt.Fprintf(c.out, "    ID: %s\n", task.ID.Hex())
	fmt.Fprintf(c.out, "    Created: %s\n", task.CreatedAt.In(now.Location()).Format(time.RFC1123))
	fmt.Fprintf(c.out, "    Updated: %s\n", task.UpdatedAt.In(now.Location()).Format(time.RFC1123))
}

// parseFilters applies key=value arguments on top of current.
func parseFilters(current models.TaskFilters, args []string) (models.TaskFilters, error) {
	if len(args) == 0 {
		return current, usage("filter status=.. priority=.. sort=..")
	}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return current, usage("filter argument %q is not key=value", arg)
		}
		switch strings.ToLower(key) {
		case "status":
			current.Status = value
		case "priority":
			current.Priority = value
		case "sort", "sortby":
			current.SortBy = value
		default:
			return current, usage("unknown filter %q", key)
		}
	}
	return current, nil
}
