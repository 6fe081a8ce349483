package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yukikurage/task-assignment-api/internal/dto"
	"github.com/yukikurage/task-assignment-api/internal/models"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", srv.Client())
}

func TestClient_ListTasks_SendsFilters(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/tasks", r.URL.Path)
		assert.Equal(t, "completed", r.URL.Query().Get("status"))
		assert.Equal(t, "high", r.URL.Query().Get("priority"))
		assert.Equal(t, "2024-05-01", r.URL.Query().Get("createdAt"))

		json.NewEncoder(w).Encode([]dto.TaskDTO{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}})
	})

	tasks, err := c.ListTasks(context.Background(), ListOptions{
		Status:    models.TaskStatusCompleted,
		Priority:  models.TaskPriorityHigh,
		CreatedAt: "2024-05-01",
	})
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "b", tasks[1].Title)
}

func TestClient_ListTasks_NoFilters(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		w.Write([]byte("[]"))
	})

	tasks, err := c.ListTasks(context.Background(), ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestClient_CreateTask(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"title":"Ship","priority":"low","userId":3}`, string(raw))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(dto.TaskDTO{
			ID: 9, Title: "Ship", Priority: models.TaskPriorityLow, UserID: 3,
			Assignee: dto.AssigneeDTO{ID: 3, Name: "Cy"},
		})
	})

	task, err := c.CreateTask(context.Background(), CreateTaskRequest{
		Title:    "Ship",
		Priority: models.TaskPriorityLow,
		UserID:   3,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(9), task.ID)
	assert.Equal(t, "Cy", task.Assignee.Name)
}

func TestClient_UpdateTask_SendsOnlySetFields(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/tasks/4", r.URL.Path)

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"status":"completed"}`, string(raw))

		json.NewEncoder(w).Encode(dto.TaskDTO{ID: 4, Status: models.TaskStatusCompleted})
	})

	status := models.TaskStatusCompleted
	task, err := c.UpdateTask(context.Background(), 4, UpdateTaskRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusCompleted, task.Status)
}

func TestClient_DeleteTask(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/tasks/4", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, c.DeleteTask(context.Background(), 4))
}

func TestClient_ErrorCarriesPlainTextBody(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("Task not found"))
	})

	_, err := c.GetTask(context.Background(), 42)
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Task not found", apiErr.Message)
	assert.Equal(t, "404 Not Found: Task not found", err.Error())
}
