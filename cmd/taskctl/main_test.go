package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yukikurage/task-assignment-api/internal/dto"
	"github.com/yukikurage/task-assignment-api/internal/models"
)

var sampleTask = dto.TaskDTO{
	ID:        7,
	Title:     "Write docs",
	Status:    models.TaskStatusPending,
	Priority:  models.TaskPriorityHigh,
	UserID:    1,
	CreatedAt: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	UpdatedAt: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	Assignee:  dto.AssigneeDTO{ID: 1, Name: "Alice", Email: "alice@example.com"},
}

func runCLI(t *testing.T, handler http.HandlerFunc, args ...string) (int, string, string) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), append([]string{"-url", srv.URL}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestList(t *testing.T) {
	code, out, _ := runCLI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "completed", r.URL.Query().Get("status"))
		json.NewEncoder(w).Encode([]dto.TaskDTO{sampleTask})
	}, "list", "-status", "completed")

	require.Equal(t, 0, code)
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "Write docs")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "2024-05-01")
}

func TestList_Empty(t *testing.T) {
	code, out, _ := runCLI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	}, "list")

	require.Equal(t, 0, code)
	assert.Equal(t, "no tasks\n", out)
}

func TestShow_NotFound(t *testing.T) {
	code, _, errOut := runCLI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tasks/99", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("Task not found"))
	}, "show", "99")

	assert.Equal(t, 1, code)
	assert.Equal(t, "error: Task not found (404)\n", errOut)
}

func TestCreate(t *testing.T) {
	code, out, _ := runCLI(t, func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"title":"Write docs","priority":"high","userId":1}`, string(raw))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(sampleTask)
	}, "create", "-title", "Write docs", "-priority", "high", "-user", "1")

	require.Equal(t, 0, code)
	assert.Contains(t, out, "Alice <alice@example.com> (#1)")
	assert.Contains(t, out, "Description:  -")
}

func TestUpdate_OnlySetFlags(t *testing.T) {
	code, _, _ := runCLI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/tasks/7", r.URL.Path)
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"status":"completed","description":""}`, string(raw))
		json.NewEncoder(w).Encode(sampleTask)
	}, "update", "7", "-status", "completed", "-description", "")

	assert.Equal(t, 0, code)
}

func TestDelete(t *testing.T) {
	code, out, _ := runCLI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}, "delete", "7")

	require.Equal(t, 0, code)
	assert.Equal(t, "deleted task 7\n", out)
}

func TestUsageErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run(context.Background(), nil, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "usage: taskctl")

	stderr.Reset()
	assert.Equal(t, 1, run(context.Background(), []string{"frobnicate"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), `unknown command "frobnicate"`)

	stderr.Reset()
	assert.Equal(t, 1, run(context.Background(), []string{"show", "abc"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), `invalid task id "abc"`)
}
