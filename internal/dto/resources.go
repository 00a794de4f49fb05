package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/naoyak/worktrack-api/internal/models"
)

// ClientDTO represents a client in API responses
type ClientDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Notes     *string   `json:"notes"`
	Rate      *float64  `json:"rate"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Description   *string    `json:"description"`
	Completed     bool       `json:"completed"`
	CompletedOn   *time.Time `json:"completed_on"`
	Deadline      *time.Time `json:"deadline"`
	ClientID      *uuid.UUID `json:"client_id"`
	Rate          *float64   `json:"rate"`
	HoursWorked   float64    `json:"hours_worked"`
	UseClientRate bool       `json:"use_client_rate"`
	UseTaskHours  bool       `json:"use_task_hours"`
	UserID        uuid.UUID  `json:"user_id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Completed   bool       `json:"completed"`
	CompletedOn *time.Time `json:"completed_on"`
	Deadline    *time.Time `json:"deadline"`
	HoursWorked float64    `json:"hours_worked"`
	ProjectID   uuid.UUID  `json:"project_id"`
	UserID      uuid.UUID  `json:"user_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ToClientDTO converts a Client model to ClientDTO
func ToClientDTO(client models.Client) ClientDTO {
	return ClientDTO{
		ID:        client.ID,
		Name:      client.Name,
		Notes:     client.Notes,
		Rate:      client.Rate,
		UserID:    client.UserID,
		CreatedAt: client.CreatedAt,
		UpdatedAt: client.UpdatedAt,
	}
}

// ToClientDTOs converts a slice of clients
func ToClientDTOs(clients []models.Client) []ClientDTO {
	dtos := make([]ClientDTO, len(clients))
	for i, client := range clients {
		dtos[i] = ToClientDTO(client)
	}
	return dtos
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	return ProjectDTO{
		ID:            project.ID,
		Name:          project.Name,
		Description:   project.Description,
		Completed:     project.Completed,
		CompletedOn:   project.CompletedOn,
		Deadline:      project.Deadline,
		ClientID:      project.ClientID,
		Rate:          project.Rate,
		HoursWorked:   project.HoursWorked,
		UseClientRate: project.UseClientRate,
		UseTaskHours:  project.UseTaskHours,
		UserID:        project.UserID,
		CreatedAt:     project.CreatedAt,
		UpdatedAt:     project.UpdatedAt,
	}
}

// ToProjectDTOs converts a slice of projects
func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i, project := range projects {
		dtos[i] = ToProjectDTO(project)
	}
	return dtos
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:          task.ID,
		Name:        task.Name,
		Description: task.Description,
		Completed:   task.Completed,
		CompletedOn: task.CompletedOn,
		Deadline:    task.Deadline,
		HoursWorked: task.HoursWorked,
		ProjectID:   task.ProjectID,
		UserID:      task.UserID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// ToTaskDTOs converts a slice of tasks
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToTaskDTO(task)
	}
	return dtos
}
