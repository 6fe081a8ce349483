// Command taskctl is a terminal front end for the task API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/yukikurage/task-assignment-api/internal/client"
	"github.com/yukikurage/task-assignment-api/internal/dto"
	"github.com/yukikurage/task-assignment-api/internal/models"
)

const usage = `usage: taskctl [-url URL] <command> [flags]

commands:
  list   [-status S] [-priority P] [-since DATE]
  show   <id>
  create -title T -user ID [-description D] [-status S] [-priority P]
  update <id> [-title T] [-description D] [-status S] [-priority P] [-user ID]
  delete <id>
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet("taskctl", flag.ContinueOnError)
	global.SetOutput(stderr)
	global.Usage = func() { fmt.Fprint(stderr, usage) }
	baseURL := global.String("url", envOr("TASKS_API_URL", "http://localhost:3000"), "API base URL")
	if err := global.Parse(args); err != nil {
		return 2
	}

	rest := global.Args()
	if len(rest) == 0 {
		global.Usage()
		return 2
	}

	api := client.New(*baseURL, nil)
	var err error
	switch rest[0] {
	case "list":
		err = runList(ctx, api, rest[1:], stdout)
	case "show":
		err = runShow(ctx, api, rest[1:], stdout)
	case "create":
		err = runCreate(ctx, api, rest[1:], stdout)
	case "update":
		err = runUpdate(ctx, api, rest[1:], stdout)
	case "delete":
		err = runDelete(ctx, api, rest[1:], stdout)
	default:
		err = fmt.Errorf("unknown command %q", rest[0])
	}

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 2
		}
		var apiErr *client.Error
		if errors.As(err, &apiErr) {
			fmt.Fprintf(stderr, "error: %s (%d)\n", apiErr.Message, apiErr.StatusCode)
		} else {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
		return 1
	}
	return 0
}

func runList(ctx context.Context, api *client.Client, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	status := fs.String("status", "", "pending, in-progress or completed")
	priority := fs.String("priority", "", "low, medium or high")
	since := fs.String("since", "", "only tasks created at or after this date")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tasks, err := api.ListTasks(ctx, client.ListOptions{
		Status:    models.TaskStatus(*status),
		Priority:  models.TaskPriority(*priority),
		CreatedAt: *since,
	})
	if err != nil {
		return err
	}

	renderList(out, tasks)
	return nil
}

func runShow(ctx context.Context, api *client.Client, args []string, out io.Writer) error {
	id, _, err := parseID(args)
	if err != nil {
		return err
	}

	task, err := api.GetTask(ctx, id)
	if err != nil {
		return err
	}

	renderDetail(out, task)
	return nil
}

func runCreate(ctx context.Context, api *client.Client, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	title := fs.String("title", "", "task title")
	description := fs.String("description", "", "task description")
	status := fs.String("status", "", "pending, in-progress or completed")
	priority := fs.String("priority", "", "low, medium or high")
	user := fs.Uint64("user", 0, "assignee user id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := client.CreateTaskRequest{
		Title:    *title,
		Status:   models.TaskStatus(*status),
		Priority: models.TaskPriority(*priority),
		UserID:   *user,
	}
	if isSet(fs, "description") {
		req.Description = description
	}

	task, err := api.CreateTask(ctx, req)
	if err != nil {
		return err
	}

	renderDetail(out, task)
	return nil
}

func runUpdate(ctx context.Context, api *client.Client, args []string, out io.Writer) error {
	id, rest, err := parseID(args)
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	title := fs.String("title", "", "new title")
	description := fs.String("description", "", "new description")
	status := fs.String("status", "", "new status")
	priority := fs.String("priority", "", "new priority")
	user := fs.Uint64("user", 0, "new assignee user id")
	if err := fs.Parse(rest); err != nil {
		return err
	}

	var req client.UpdateTaskRequest
	if isSet(fs, "title") {
		req.Title = title
	}
	if isSet(fs, "description") {
		req.Description = description
	}
	if isSet(fs, "status") {
		s := models.TaskStatus(*status)
		req.Status = &s
	}
	if isSet(fs, "priority") {
		p := models.TaskPriority(*priority)
		req.Priority = &p
	}
	if isSet(fs, "user") {
		req.UserID = user
	}

	task, err := api.UpdateTask(ctx, id, req)
	if err != nil {
		return err
	}

	renderDetail(out, task)
	return nil
}

func runDelete(ctx context.Context, api *client.Client, args []string, out io.Writer) error {
	id, _, err := parseID(args)
	if err != nil {
		return err
	}

	if err := api.DeleteTask(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(out, "deleted task %d\n", id)
	return nil
}

func parseID(args []string) (uint64, []string, error) {
	if len(args) == 0 {
		return 0, nil, errors.New("task id is required")
	}
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return 0, nil, fmt.Errorf("invalid task id %q", args[0])
	}
	return id, args[1:], nil
}

func isSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func renderList(out io.Writer, tasks []dto.TaskDTO) {
	if len(tasks) == 0 {
		fmt.Fprintln(out, "no tasks")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tPRIORITY\tASSIGNEE\tCREATED")
	for _, t := range tasks {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Title, t.Status, t.Priority, t.Assignee.Name, t.CreatedAt.Format(time.DateOnly))
	}
	w.Flush()
}

func renderDetail(out io.Writer, t *dto.TaskDTO) {
	description := "-"
	if t.Description != nil && *t.Description != "" {
		description = *t.Description
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID:\t%d\n", t.ID)
	fmt.Fprintf(w, "Title:\t%s\n", t.Title)
	fmt.Fprintf(w, "Description:\t%s\n", description)
	fmt.Fprintf(w, "Status:\t%s\n", t.Status)
	fmt.Fprintf(w, "Priority:\t%s\n", t.Priority)
	fmt.Fprintf(w, "Assignee:\t%s <%s> (#%d)\n", t.Assignee.Name, t.Assignee.Email, t.Assignee.ID)
	fmt.Fprintf(w, "Created:\t%s\n", t.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Updated:\t%s\n", t.UpdatedAt.Format(time.RFC3339))
	w.Flush()
}
