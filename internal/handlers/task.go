package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/task-assignment-api/internal/dto"
	apierrors "github.com/yukikurage/task-assignment-api/internal/errors"
	"github.com/yukikurage/task-assignment-api/internal/services"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns every task matching the status, priority and createdAt filters
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskService.ListTasks(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// GetTask returns a specific task by ID
func (h *TaskHandler) GetTask(c *gin.Context) {
	task, err := h.taskService.GetTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// CreateTask creates a new task
func (h *TaskHandler) CreateTask(c *gin.Context) {
	body, err := decodeBody(c)
	if err != nil {
		c.Error(err)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), body)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// UpdateTask updates the fields present in the body
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	body, err := decodeBody(c)
	if err != nil {
		c.Error(err)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// DeleteTask deletes a task
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	if err := h.taskService.DeleteTask(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// decodeBody parses raw JSON so the service can tell which fields were sent.
// An empty body or null is an empty object.
func decodeBody(c *gin.Context) (map[string]any, error) {
	var rawReq map[string]any
	if err := c.ShouldBindJSON(&rawReq); err != nil {
		if !errors.Is(err, io.EOF) {
			return nil, apierrors.ErrInvalidInput
		}
	}
	if rawReq == nil {
		rawReq = map[string]any{}
	}
	return rawReq, nil
}
