package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/naoyak/worktrack-api/internal/models"
	"github.com/naoyak/worktrack-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrProjectNameEmpty = errors.New("project name cannot be empty")
)

// ProjectService handles project business logic, including the client rate
// inheritance rule.
type ProjectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
	}
}

// CreateProjectInput represents input for creating a project
type CreateProjectInput struct {
	Name          string
	Description   *string
	Deadline      *time.Time
	ClientID      *uuid.UUID
	Rate          *float64
	HoursWorked   *float64
	UseClientRate *bool
	UseTaskHours  *bool
}

// UpdateProjectInput represents input for updating a project. Nil fields are
// left unchanged; the flags express explicit nulls.
type UpdateProjectInput struct {
	Name          *string
	Description   *string
	Completed     *bool
	CompletedOn   *time.Time
	Deadline      *time.Time
	ClearDeadline bool
	ClientID      *uuid.UUID
	DetachClient  bool
	Rate          *float64
	HoursWorked   *float64
	UseClientRate *bool
	UseTaskHours  *bool
}

// CreateProject creates a project owned by the caller. When the project is
// placed under a client and no rate is given, the client's rate is copied
// onto the project; a dangling client reference skips the copy without error.
func (s *ProjectService) CreateProject(input CreateProjectInput, callerID uuid.UUID) (*models.Project, error) {
	project := &models.Project{
		Name:          input.Name,
		Description:   input.Description,
		Deadline:      input.Deadline,
		ClientID:      input.ClientID,
		Rate:          input.Rate,
		UseClientRate: true,
		UseTaskHours:  true,
		UserID:        callerID,
	}
	if input.HoursWorked != nil {
		project.HoursWorked = *input.HoursWorked
	}
	if input.UseClientRate != nil {
		project.UseClientRate = *input.UseClientRate
	}
	if input.UseTaskHours != nil {
		project.UseTaskHours = *input.UseTaskHours
	}

	var inheritRateFrom *uuid.UUID
	if input.ClientID != nil && input.Rate == nil {
		inheritRateFrom = input.ClientID
	}

	if err := s.projectRepo.Create(project, inheritRateFrom); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// GetProject returns a project owned by the caller.
func (s *ProjectService) GetProject(id, callerID uuid.UUID) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	if !isOwner(project.UserID, callerID) {
		return nil, ErrProjectNotFound
	}

	return project, nil
}

// ListProjects returns the caller's projects.
func (s *ProjectService) ListProjects(callerID uuid.UUID) ([]models.Project, error) {
	projects, err := s.projectRepo.ListByUser(callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// ListClientProjects returns the caller's projects under one client.
func (s *ProjectService) ListClientProjects(clientID *uuid.UUID, callerID uuid.UUID) ([]models.Project, error) {
	projects, err := s.projectRepo.ListByClient(callerID, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list client projects: %w", err)
	}
	return projects, nil
}

// UpdateProject applies a partial update to a project owned by the caller.
// When the update moves the project under a different client, supplies no
// rate, and the project currently has none, the new client's rate is
// inherited under the same best-effort rule as creation.
func (s *ProjectService) UpdateProject(id uuid.UUID, input UpdateProjectInput, callerID uuid.UUID) (*models.Project, error) {
	project, err := s.GetProject(id, callerID)
	if err != nil {
		return nil, err
	}

	clientChanging := input.ClientID != nil &&
		(project.ClientID == nil || *project.ClientID != *input.ClientID)

	var inheritRateFrom *uuid.UUID
	if clientChanging && input.Rate == nil && project.Rate == nil {
		inheritRateFrom = input.ClientID
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, ErrProjectNameEmpty
		}
		project.Name = *input.Name
	}
	if input.Description != nil {
		project.Description = input.Description
	}
	if input.Completed != nil {
		project.Completed = *input.Completed
	}
	if input.CompletedOn != nil {
		project.CompletedOn = input.CompletedOn
	}
	if input.ClearDeadline {
		project.Deadline = nil
	} else if input.Deadline != nil {
		project.Deadline = input.Deadline
	}
	if input.DetachClient {
		project.ClientID = nil
	} else if input.ClientID != nil {
		project.ClientID = input.ClientID
	}
	if input.Rate != nil {
		project.Rate = input.Rate
	}
	if input.HoursWorked != nil {
		project.HoursWorked = *input.HoursWorked
	}
	if input.UseClientRate != nil {
		project.UseClientRate = *input.UseClientRate
	}
	if input.UseTaskHours != nil {
		project.UseTaskHours = *input.UseTaskHours
	}

	if err := s.projectRepo.Update(project, inheritRateFrom); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

// DeleteProject removes a project owned by the caller along with its tasks
// and returns the project's prior state.
func (s *ProjectService) DeleteProject(id, callerID uuid.UUID) (*models.Project, error) {
	project, err := s.GetProject(id, callerID)
	if err != nil {
		return nil, err
	}

	if err := s.projectRepo.Delete(id); err != nil {
		return nil, fmt.Errorf("failed to delete project: %w", err)
	}

	return project, nil
}
