package validation

import (
	"net/url"

	"github.com/yukikurage/task-assignment-api/internal/models"
)

// ListQuery is the validated query string of GET /tasks.
type ListQuery struct {
	Status    *models.TaskStatus   `json:"status" validate:"omitempty,task_status"`
	Priority  *models.TaskPriority `json:"priority" validate:"omitempty,task_priority"`
	CreatedAt *string              `json:"createdAt"`
}

// CreateTaskPayload is the validated body of POST /tasks.
// The assignee is checked by the task service, not by this schema.
type CreateTaskPayload struct {
	Title       *string              `json:"title" validate:"required,min=1"`
	Description *string              `json:"description"`
	Status      *models.TaskStatus   `json:"status" validate:"omitempty,task_status"`
	Priority    *models.TaskPriority `json:"priority" validate:"omitempty,task_priority"`
}

// UpdateTaskPayload is the validated body of PUT /tasks/:id. Nil means "keep".
type UpdateTaskPayload struct {
	Title       *string              `json:"title" validate:"omitempty,min=1"`
	Description *string              `json:"description"`
	Status      *models.TaskStatus   `json:"status" validate:"omitempty,task_status"`
	Priority    *models.TaskPriority `json:"priority" validate:"omitempty,task_priority"`
}

var (
	listQueryOrder = []string{"status", "priority", "createdAt"}
	payloadOrder   = []string{"title", "description", "status", "priority"}

	createOverrides = map[string]string{
		"title.required": "Title is required",
		"title.min":      "Title is required",
	}
)

// ValidateListQuery checks the list filters.
func ValidateListQuery(values url.Values) (ListQuery, error) {
	c := newCollector()

	q := ListQuery{
		Status:    (*models.TaskStatus)(c.queryStr(values, "status")),
		Priority:  (*models.TaskPriority)(c.queryStr(values, "priority")),
		CreatedAt: c.queryStr(values, "createdAt"),
	}
	c.check(q, nil)

	if err := c.result(listQueryOrder); err != nil {
		return ListQuery{}, err
	}
	return q, nil
}

// ValidateCreate checks a create body.
func ValidateCreate(raw map[string]any) (CreateTaskPayload, error) {
	c := newCollector()

	p := CreateTaskPayload{
		Title:       c.str(raw, "title"),
		Description: c.str(raw, "description"),
		Status:      (*models.TaskStatus)(c.str(raw, "status")),
		Priority:    (*models.TaskPriority)(c.str(raw, "priority")),
	}
	c.check(p, createOverrides)

	if err := c.result(payloadOrder); err != nil {
		return CreateTaskPayload{}, err
	}
	return p, nil
}

// ValidateUpdate checks a partial update body. An empty body is valid.
func ValidateUpdate(raw map[string]any) (UpdateTaskPayload, error) {
	c := newCollector()

	p := UpdateTaskPayload{
		Title:       c.str(raw, "title"),
		Description: c.str(raw, "description"),
		Status:      (*models.TaskStatus)(c.str(raw, "status")),
		Priority:    (*models.TaskPriority)(c.str(raw, "priority")),
	}
	c.check(p, nil)

	if err := c.result(payloadOrder); err != nil {
		return UpdateTaskPayload{}, err
	}
	return p, nil
}

// IsEmpty reports whether the update changes nothing.
func (p UpdateTaskPayload) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil && p.Priority == nil
}
