package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/naoyak/worktrack-api/internal/dto"
	apierrors "github.com/naoyak/worktrack-api/internal/errors"
	"github.com/naoyak/worktrack-api/internal/middleware"
	"github.com/naoyak/worktrack-api/internal/services"
)

// TaskHandler coordinates task CRUD HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask creates a task owned by the current user.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateTaskRequest struct {
		Name        string     `json:"name" binding:"required"`
		Description *string    `json:"description"`
		Deadline    *time.Time `json:"deadline"`
		HoursWorked *float64   `json:"hours_worked"`
		ProjectID   uuid.UUID  `json:"project_id" binding:"required"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, "Invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(services.CreateTaskInput{
		Name:        req.Name,
		Description: req.Description,
		Deadline:    req.Deadline,
		HoursWorked: req.HoursWorked,
		ProjectID:   req.ProjectID,
	}, userID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// GetTask returns one of the current user's tasks.
func (h *TaskHandler) GetTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.NotFound(c, "Task not found")
		return
	}

	task, err := h.taskService.GetTask(taskID, userID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// ListTasks returns all of the current user's tasks.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	tasks, err := h.taskService.ListTasks(userID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// ListProjectTasks returns the tasks of one of the current user's projects.
func (h *TaskHandler) ListProjectTasks(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.NotFound(c, "Project not found")
		return
	}

	tasks, err := h.taskService.ListProjectTasks(projectID, userID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// UpdateTask applies a partial update to one of the current user's tasks.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.NotFound(c, "Task not found")
		return
	}

	type UpdateTaskRequest struct {
		Name          *string    `json:"name"`
		Description   *string    `json:"description"`
		Completed     *bool      `json:"completed"`
		CompletedOn   *time.Time `json:"completed_on"`
		Deadline      *time.Time `json:"deadline"`
		ClearDeadline bool       `json:"clear_deadline"`
		HoursWorked   *float64   `json:"hours_worked"`
		ProjectID     *uuid.UUID `json:"project_id"`
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, "Invalid request body")
		return
	}

	task, err := h.taskService.UpdateTask(taskID, services.UpdateTaskInput{
		Name:          req.Name,
		Description:   req.Description,
		Completed:     req.Completed,
		CompletedOn:   req.CompletedOn,
		Deadline:      req.Deadline,
		ClearDeadline: req.ClearDeadline,
		HoursWorked:   req.HoursWorked,
		ProjectID:     req.ProjectID,
	}, userID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// DeleteTask removes one of the current user's tasks and returns its prior
// state.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.NotFound(c, "Task not found")
		return
	}

	task, err := h.taskService.DeleteTask(taskID, userID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, "Task not found")
	case errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, "Project not found")
	case errors.Is(err, services.ErrTaskNameEmpty):
		apierrors.UnprocessableEntity(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
