package repository

import (
	"context"
	"time"

	"github.com/yukikurage/task-assignment-api/internal/models"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// List retrieves tasks matching every clause of the filter, with assignee
	List(ctx context.Context, filter TaskFilter) ([]models.Task, error)

	// FindByID finds a task by ID with optional preloading
	FindByID(ctx context.Context, id uint64, preload ...string) (*models.Task, error)

	// Create inserts a new task
	Create(ctx context.Context, task *models.Task) error

	// Update applies a partial update to a task
	Update(ctx context.Context, id uint64, patch TaskPatch) error

	// Delete permanently removes a task
	Delete(ctx context.Context, id uint64) error
}

// TaskFilter holds filtering options for listing tasks. Nil fields do not filter.
type TaskFilter struct {
	Status      *models.TaskStatus
	Priority    *models.TaskPriority
	CreatedFrom *time.Time
}

// IsEmpty reports whether the filter matches every task.
func (f TaskFilter) IsEmpty() bool {
	return f.Status == nil && f.Priority == nil && f.CreatedFrom == nil
}

// TaskPatch holds the columns of a partial update. Nil fields are left untouched.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *models.TaskStatus
	Priority    *models.TaskPriority
	UserID      *uint64
}

// IsEmpty reports whether the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil && p.Priority == nil && p.UserID == nil
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uint64) (*models.User, error)

	// Count returns the number of stored users
	Count(ctx context.Context) (int64, error)
}
