package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yukikurage/task-assignment-api/internal/models"
)

func TestToTaskDTO_JSONShape(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	task := models.Task{
		ID:        3,
		Title:     "Ship",
		Status:    models.TaskStatusPending,
		Priority:  models.TaskPriorityHigh,
		UserID:    7,
		CreatedAt: created,
		UpdatedAt: created,
		Assignee:  models.User{ID: 7, Name: "Ada", Email: "ada@example.com"},
	}

	raw, err := json.Marshal(ToTaskDTO(task))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))

	assert.Equal(t, float64(3), got["id"])
	assert.Equal(t, "Ship", got["title"])
	assert.Contains(t, got, "description")
	assert.Nil(t, got["description"])
	assert.Equal(t, "pending", got["status"])
	assert.Equal(t, "high", got["priority"])
	assert.Equal(t, float64(7), got["userId"])
	assert.Equal(t, "2024-05-01T10:00:00Z", got["createdAt"])
	assert.Equal(t, map[string]any{"id": float64(7), "name": "Ada", "email": "ada@example.com"}, got["assignee"])
}

func TestToTaskDTOs_EmptyIsNotNil(t *testing.T) {
	dtos := ToTaskDTOs(nil)
	require.NotNil(t, dtos)

	raw, err := json.Marshal(dtos)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(raw))
}
