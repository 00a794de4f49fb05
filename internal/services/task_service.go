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
	ErrTaskNotFound  = errors.New("task not found")
	ErrTaskNameEmpty = errors.New("task name cannot be empty")
)

// TaskService handles task business logic.
type TaskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Name        string
	Description *string
	Deadline    *time.Time
	HoursWorked *float64
	ProjectID   uuid.UUID
}

// UpdateTaskInput represents input for updating a task. Nil fields are left
// unchanged.
type UpdateTaskInput struct {
	Name          *string
	Description   *string
	Completed     *bool
	CompletedOn   *time.Time
	Deadline      *time.Time
	ClearDeadline bool
	HoursWorked   *float64
	ProjectID     *uuid.UUID
}

// CreateTask creates a task owned by the caller under one of the caller's
// projects. An absent or foreign-owned project surfaces as not found.
func (s *TaskService) CreateTask(input CreateTaskInput, callerID uuid.UUID) (*models.Task, error) {
	if err := s.requireProject(input.ProjectID, callerID); err != nil {
		return nil, err
	}

	task := &models.Task{
		Name:        input.Name,
		Description: input.Description,
		Deadline:    input.Deadline,
		ProjectID:   input.ProjectID,
		UserID:      callerID,
	}
	if input.HoursWorked != nil {
		task.HoursWorked = *input.HoursWorked
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// requireProject checks that the project exists and belongs to the caller.
func (s *TaskService) requireProject(projectID, callerID uuid.UUID) error {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to find project: %w", err)
	}
	if !isOwner(project.UserID, callerID) {
		return ErrProjectNotFound
	}
	return nil
}

// GetTask returns a task owned by the caller.
func (s *TaskService) GetTask(id, callerID uuid.UUID) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if !isOwner(task.UserID, callerID) {
		return nil, ErrTaskNotFound
	}

	return task, nil
}

// ListTasks returns the caller's tasks.
func (s *TaskService) ListTasks(callerID uuid.UUID) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByUser(callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// ListProjectTasks returns the tasks of a project owned by the caller. An
// absent or foreign-owned project surfaces as not found.
func (s *TaskService) ListProjectTasks(projectID, callerID uuid.UUID) ([]models.Task, error) {
	if err := s.requireProject(projectID, callerID); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.ListByProject(callerID, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list project tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTask applies a partial update to a task owned by the caller.
// Completed and completed_on are independent, caller-managed fields; setting
// one never touches the other.
func (s *TaskService) UpdateTask(id uuid.UUID, input UpdateTaskInput, callerID uuid.UUID) (*models.Task, error) {
	task, err := s.GetTask(id, callerID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, ErrTaskNameEmpty
		}
		task.Name = *input.Name
	}
	if input.Description != nil {
		task.Description = input.Description
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
	}
	if input.CompletedOn != nil {
		task.CompletedOn = input.CompletedOn
	}
	if input.ClearDeadline {
		task.Deadline = nil
	} else if input.Deadline != nil {
		task.Deadline = input.Deadline
	}
	if input.HoursWorked != nil {
		task.HoursWorked = *input.HoursWorked
	}
	if input.ProjectID != nil && *input.ProjectID != task.ProjectID {
		if err := s.requireProject(*input.ProjectID, callerID); err != nil {
			return nil, err
		}
		task.ProjectID = *input.ProjectID
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// DeleteTask removes a task owned by the caller and returns its prior state.
func (s *TaskService) DeleteTask(id, callerID uuid.UUID) (*models.Task, error) {
	task, err := s.GetTask(id, callerID)
	if err != nil {
		return nil, err
	}

	if err := s.taskRepo.Delete(id); err != nil {
		return nil, fmt.Errorf("failed to delete task: %w", err)
	}

	return task, nil
}
