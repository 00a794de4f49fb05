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

// ProjectHandler coordinates project CRUD HTTP handlers.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// CreateProject creates a project owned by the current user. A project placed
// under a client without an explicit rate inherits the client's rate.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateProjectRequest struct {
		Name          string     `json:"name" binding:"required"`
		Description   *string    `json:"description"`
		Deadline      *time.Time `json:"deadline"`
		ClientID      *uuid.UUID `json:"client_id"`
		Rate          *float64   `json:"rate"`
		HoursWorked   *float64   `json:"hours_worked"`
		UseClientRate *bool      `json:"use_client_rate"`
		UseTaskHours  *bool      `json:"use_task_hours"`
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, "Invalid request body")
		return
	}

	project, err := h.projectService.CreateProject(services.CreateProjectInput{
		Name:          req.Name,
		Description:   req.Description,
		Deadline:      req.Deadline,
		ClientID:      req.ClientID,
		Rate:          req.Rate,
		HoursWorked:   req.HoursWorked,
		UseClientRate: req.UseClientRate,
		UseTaskHours:  req.UseTaskHours,
	}, userID)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// GetProject returns one of the current user's projects.
func (h *ProjectHandler) GetProject(c *gin.Context) {
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

	project, err := h.projectService.GetProject(projectID, userID)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// ListProjects returns all of the current user's projects.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	projects, err := h.projectService.ListProjects(userID)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTOs(projects))
}

// ListClientProjects returns the current user's projects under one client.
func (h *ProjectHandler) ListClientProjects(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	clientID, err := uuid.Parse(c.Param("client_id"))
	if err != nil {
		apierrors.NotFound(c, "Client not found")
		return
	}

	projects, err := h.projectService.ListClientProjects(&clientID, userID)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTOs(projects))
}

// UpdateProject applies a partial update to one of the current user's
// projects. Moving the project under a new client without supplying a rate
// inherits the client's rate when the project has none.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
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

	type UpdateProjectRequest struct {
		Name          *string    `json:"name"`
		Description   *string    `json:"description"`
		Completed     *bool      `json:"completed"`
		CompletedOn   *time.Time `json:"completed_on"`
		Deadline      *time.Time `json:"deadline"`
		ClearDeadline bool       `json:"clear_deadline"`
		ClientID      *uuid.UUID `json:"client_id"`
		DetachClient  bool       `json:"detach_client"`
		Rate          *float64   `json:"rate"`
		HoursWorked   *float64   `json:"hours_worked"`
		UseClientRate *bool      `json:"use_client_rate"`
		UseTaskHours  *bool      `json:"use_task_hours"`
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, "Invalid request body")
		return
	}

	project, err := h.projectService.UpdateProject(projectID, services.UpdateProjectInput{
		Name:          req.Name,
		Description:   req.Description,
		Completed:     req.Completed,
		CompletedOn:   req.CompletedOn,
		Deadline:      req.Deadline,
		ClearDeadline: req.ClearDeadline,
		ClientID:      req.ClientID,
		DetachClient:  req.DetachClient,
		Rate:          req.Rate,
		HoursWorked:   req.HoursWorked,
		UseClientRate: req.UseClientRate,
		UseTaskHours:  req.UseTaskHours,
	}, userID)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// DeleteProject removes one of the current user's projects together with its
// tasks and returns the project's prior state.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
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

	project, err := h.projectService.DeleteProject(projectID, userID)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

func respondProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, "Project not found")
	case errors.Is(err, services.ErrProjectNameEmpty):
		apierrors.UnprocessableEntity(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
