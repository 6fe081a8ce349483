package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yukikurage/task-assignment-api/internal/models"
)

// AssigneePreload is the relation every task read joins.
const AssigneePreload = "Assignee"

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// List retrieves tasks matching the filter. Order is whatever the store returns.
func (r *GormTaskRepository) List(ctx context.Context, filter TaskFilter) ([]models.Task, error) {
	tasks := []models.Task{}

	query := r.db.WithContext(ctx).Model(&models.Task{})

	// Apply filters
	if filter.Status != nil {
		query = query.Where("tasks.status = ?", *filter.Status)
	}
	if filter.Priority != nil {
		query = query.Where("tasks.priority = ?", *filter.Priority)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("tasks.created_at >= ?", *filter.CreatedFrom)
	}

	if err := query.Preload(AssigneePreload).Find(&tasks).Error; err != nil {
		return nil, err
	}

	return tasks, nil
}

// FindByID finds a task by ID with optional preloading
func (r *GormTaskRepository) FindByID(ctx context.Context, id uint64, preload ...string) (*models.Task, error) {
	var task models.Task
	query := r.db.WithContext(ctx)

	// Apply preloading if specified
	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.Where("tasks.id = ?", id).First(&task).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// Create inserts a new task
func (r *GormTaskRepository) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Omit(AssigneePreload).Create(task).Error
}

// Update writes only the columns present in the patch
func (r *GormTaskRepository) Update(ctx context.Context, id uint64, patch TaskPatch) error {
	columns := map[string]interface{}{}
	if patch.Title != nil {
		columns["title"] = *patch.Title
	}
	if patch.Description != nil {
		columns["description"] = *patch.Description
	}
	if patch.Status != nil {
		columns["status"] = *patch.Status
	}
	if patch.Priority != nil {
		columns["priority"] = *patch.Priority
	}
	if patch.UserID != nil {
		columns["user_id"] = *patch.UserID
	}
	if len(columns) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Model(&models.Task{}).
		Where("id = ?", id).
		Updates(columns).Error
}

// Delete permanently removes a task
func (r *GormTaskRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Task{}).Error
}
