package validation

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yukikurage/task-assignment-api/internal/models"
)

func requireIssues(t *testing.T, err error) *Error {
	t.Helper()
	vErr, ok := AsError(err)
	require.True(t, ok, "expected a validation error, got %v", err)
	return vErr
}

func TestValidateListQuery(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		q, err := ValidateListQuery(url.Values{})
		require.NoError(t, err)
		assert.Nil(t, q.Status)
		assert.Nil(t, q.Priority)
		assert.Nil(t, q.CreatedAt)
	})

	t.Run("all filters", func(t *testing.T) {
		q, err := ValidateListQuery(url.Values{
			"status":    {"in-progress"},
			"priority":  {"high"},
			"createdAt": {"2024-05-01"},
		})
		require.NoError(t, err)
		assert.Equal(t, models.TaskStatusInProgress, *q.Status)
		assert.Equal(t, models.TaskPriorityHigh, *q.Priority)
		assert.Equal(t, "2024-05-01", *q.CreatedAt)
	})

	t.Run("invalid enums reported in field order", func(t *testing.T) {
		_, err := ValidateListQuery(url.Values{
			"priority": {"urgent"},
			"status":   {"done"},
		})
		vErr := requireIssues(t, err)
		require.Len(t, vErr.Issues, 2)
		assert.Equal(t, "status", vErr.Issues[0].Field)
		assert.Equal(t, "priority", vErr.Issues[1].Field)
		assert.Equal(t,
			`Invalid option: expected one of "pending"|"in-progress"|"completed", Invalid option: expected one of "low"|"medium"|"high"`,
			err.Error())
	})

	t.Run("empty enum value", func(t *testing.T) {
		_, err := ValidateListQuery(url.Values{"status": {""}})
		requireIssues(t, err)
	})

	t.Run("repeated parameter", func(t *testing.T) {
		_, err := ValidateListQuery(url.Values{"status": {"pending", "completed"}})
		vErr := requireIssues(t, err)
		assert.Equal(t, "Invalid input: expected string, received array", vErr.Issues[0].Message)
	})
}

func TestValidateCreate(t *testing.T) {
	t.Run("minimal", func(t *testing.T) {
		p, err := ValidateCreate(map[string]any{"title": "Write docs", "userId": float64(1)})
		require.NoError(t, err)
		assert.Equal(t, "Write docs", *p.Title)
		assert.Nil(t, p.Description)
		assert.Nil(t, p.Status)
		assert.Nil(t, p.Priority)
	})

	t.Run("full", func(t *testing.T) {
		p, err := ValidateCreate(map[string]any{
			"title":       "Write docs",
			"description": "API reference",
			"status":      "completed",
			"priority":    "low",
		})
		require.NoError(t, err)
		assert.Equal(t, "API reference", *p.Description)
		assert.Equal(t, models.TaskStatusCompleted, *p.Status)
		assert.Equal(t, models.TaskPriorityLow, *p.Priority)
	})

	t.Run("empty title", func(t *testing.T) {
		_, err := ValidateCreate(map[string]any{"title": ""})
		assert.EqualError(t, err, "Title is required")
	})

	t.Run("missing title", func(t *testing.T) {
		_, err := ValidateCreate(map[string]any{})
		assert.EqualError(t, err, "Title is required")
	})

	t.Run("collects every issue", func(t *testing.T) {
		_, err := ValidateCreate(map[string]any{
			"title":       float64(12),
			"description": nil,
			"status":      "archived",
			"priority":    "urgent",
		})
		vErr := requireIssues(t, err)
		require.Len(t, vErr.Issues, 4)
		assert.Equal(t, "Invalid input: expected string, received number", vErr.Issues[0].Message)
		assert.Equal(t, "Invalid input: expected string, received null", vErr.Issues[1].Message)
		assert.Contains(t, vErr.Issues[2].Message, "Invalid option")
		assert.Contains(t, vErr.Issues[3].Message, "Invalid option")
	})
}

func TestValidateUpdate(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		p, err := ValidateUpdate(map[string]any{})
		require.NoError(t, err)
		assert.True(t, p.IsEmpty())
	})

	t.Run("partial", func(t *testing.T) {
		p, err := ValidateUpdate(map[string]any{"status": "completed"})
		require.NoError(t, err)
		assert.False(t, p.IsEmpty())
		assert.Nil(t, p.Title)
		assert.Equal(t, models.TaskStatusCompleted, *p.Status)
	})

	t.Run("empty description is allowed", func(t *testing.T) {
		p, err := ValidateUpdate(map[string]any{"description": ""})
		require.NoError(t, err)
		assert.Equal(t, "", *p.Description)
	})

	t.Run("empty title", func(t *testing.T) {
		_, err := ValidateUpdate(map[string]any{"title": ""})
		assert.EqualError(t, err, "Too small: expected string to have >=1 characters")
	})

	t.Run("invalid priority", func(t *testing.T) {
		_, err := ValidateUpdate(map[string]any{"priority": "invalid-priority"})
		assert.EqualError(t, err, `Invalid option: expected one of "low"|"medium"|"high"`)
	})

	t.Run("unknown fields are ignored", func(t *testing.T) {
		p, err := ValidateUpdate(map[string]any{"userId": float64(3), "color": "red"})
		require.NoError(t, err)
		assert.True(t, p.IsEmpty())
	})
}
