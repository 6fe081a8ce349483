package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	apierrors "github.com/yukikurage/task-assignment-api/internal/errors"
	"github.com/yukikurage/task-assignment-api/internal/models"
	"github.com/yukikurage/task-assignment-api/internal/repository"
	"github.com/yukikurage/task-assignment-api/internal/validation"
)

var (
	ErrTaskIDRequired  = apierrors.BadRequest(apierrors.ErrCodeMissingField, "Task ID is required")
	ErrTaskIDNotNumber = apierrors.BadRequest(apierrors.ErrCodeInvalidFormat, "Task ID must be a number")
	ErrTitleRequired   = apierrors.BadRequest(apierrors.ErrCodeMissingField, "Title is required")
	ErrUserIDRequired  = apierrors.BadRequest(apierrors.ErrCodeMissingField, "User ID (assignee) is required")
	ErrUserIDNotNumber = apierrors.BadRequest(apierrors.ErrCodeInvalidFormat, "User ID (assignee) must be a number")
	ErrInvalidQuery    = apierrors.BadRequest(apierrors.ErrCodeInvalidInput, "Invalid query parameters")
	ErrTaskNotFound    = apierrors.NotFound("Task not found")
)

// TaskService runs every task operation: validate, normalize, persist, reload.
type TaskService struct {
	taskRepo repository.TaskRepository
	log      zerolog.Logger
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, log zerolog.Logger) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		log:      log.With().Str("component", "task_service").Logger(),
	}
}

// ListTasks returns the tasks matching the query string filters, each with its assignee.
func (s *TaskService) ListTasks(ctx context.Context, query url.Values) ([]models.Task, error) {
	q, err := validation.ValidateListQuery(query)
	if err != nil {
		return nil, ErrInvalidQuery
	}

	filter, err := BuildTaskFilter(q)
	if err != nil {
		return nil, ErrInvalidQuery
	}

	tasks, err := s.taskRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	s.log.Debug().Int("count", len(tasks)).Bool("filtered", !filter.IsEmpty()).Msg("tasks listed")
	return tasks, nil
}

// GetTask returns a task with its assignee
func (s *TaskService) GetTask(ctx context.Context, rawID string) (*models.Task, error) {
	id, err := ParseTaskID(rawID)
	if err != nil {
		return nil, err
	}

	return s.findTask(ctx, id, repository.AssigneePreload)
}

// CreateTask validates the body, applies defaults and stores a new task.
func (s *TaskService) CreateTask(ctx context.Context, body map[string]any) (*models.Task, error) {
	if !truthy(body["title"]) {
		return nil, ErrTitleRequired
	}
	if !truthy(body["userId"]) {
		return nil, ErrUserIDRequired
	}

	payload, err := validation.ValidateCreate(body)
	if err != nil {
		return nil, err
	}

	userID, err := CoerceUserID(body["userId"])
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		Title:       *payload.Title,
		Description: payload.Description,
		Status:      models.TaskStatusPending,
		Priority:    models.TaskPriorityMedium,
		UserID:      userID,
	}
	if payload.Status != nil {
		task.Status = *payload.Status
	}
	if payload.Priority != nil {
		task.Priority = *payload.Priority
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.log.Info().Uint64("task_id", task.ID).Uint64("user_id", task.UserID).Msg("task created")

	return s.reload(ctx, task.ID)
}

// UpdateTask applies the fields present in the body. userId, when present, reassigns the task.
func (s *TaskService) UpdateTask(ctx context.Context, rawID string, body map[string]any) (*models.Task, error) {
	id, err := ParseTaskID(rawID)
	if err != nil {
		return nil, err
	}

	payload, err := validation.ValidateUpdate(body)
	if err != nil {
		return nil, err
	}

	patch := repository.TaskPatch{
		Title:       payload.Title,
		Description: payload.Description,
		Status:      payload.Status,
		Priority:    payload.Priority,
	}
	if raw, ok := body["userId"]; ok && raw != nil {
		userID, err := CoerceUserID(raw)
		if err != nil {
			return nil, err
		}
		patch.UserID = &userID
	}

	if _, err := s.findTask(ctx, id); err != nil {
		return nil, err
	}

	if !patch.IsEmpty() {
		if err := s.taskRepo.Update(ctx, id, patch); err != nil {
			return nil, fmt.Errorf("failed to update task: %w", err)
		}
		s.log.Info().Uint64("task_id", id).Msg("task updated")
	}

	return s.reload(ctx, id)
}

// DeleteTask permanently removes a task
func (s *TaskService) DeleteTask(ctx context.Context, rawID string) error {
	id, err := ParseTaskID(rawID)
	if err != nil {
		return err
	}

	if _, err := s.findTask(ctx, id); err != nil {
		return err
	}

	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.log.Info().Uint64("task_id", id).Msg("task deleted")
	return nil
}

func (s *TaskService) findTask(ctx context.Context, id uint64, preload ...string) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, id, preload...)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// reload reads a task back after a write so the response carries the stored row and assignee.
func (s *TaskService) reload(ctx context.Context, id uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, id, repository.AssigneePreload)
	if err != nil {
		return nil, fmt.Errorf("failed to reload task: %w", err)
	}
	return task, nil
}
