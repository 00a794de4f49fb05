package repository

import (
	"github.com/google/uuid"
	"github.com/naoyak/worktrack-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uuid.UUID) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)
}

// ClientRepository defines the interface for client data access
type ClientRepository interface {
	// Create creates a new client
	Create(client *models.Client) error

	// FindByID finds a client by ID
	FindByID(id uuid.UUID) (*models.Client, error)

	// ListByUser lists a user's clients in insertion order
	ListByUser(userID uuid.UUID) ([]models.Client, error)

	// Update persists changes to a client
	Update(client *models.Client) error

	// Delete removes a client after re-pointing its projects' client_id to
	// NULL, all within one transaction
	Delete(id uuid.UUID) error
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project. When inheritRateFrom is set and the
	// project carries no rate, the referenced client's rate is copied inside
	// the same transaction; a failed client lookup is not an error.
	Create(project *models.Project, inheritRateFrom *uuid.UUID) error

	// FindByID finds a project by ID
	FindByID(id uuid.UUID) (*models.Project, error)

	// ListByUser lists a user's projects in insertion order
	ListByUser(userID uuid.UUID) ([]models.Project, error)

	// ListByClient lists a user's projects under one client
	ListByClient(userID uuid.UUID, clientID *uuid.UUID) ([]models.Project, error)

	// Update persists changes to a project, copying the rate from
	// inheritRateFrom first under the same best-effort rule as Create.
	Update(project *models.Project, inheritRateFrom *uuid.UUID) error

	// Delete removes a project and its tasks within one transaction
	Delete(id uuid.UUID) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id uuid.UUID) (*models.Task, error)

	// ListByUser lists a user's tasks in insertion order
	ListByUser(userID uuid.UUID) ([]models.Task, error)

	// ListByProject lists a user's tasks under one project
	ListByProject(userID, projectID uuid.UUID) ([]models.Task, error)

	// Update persists changes to a task
	Update(task *models.Task) error

	// Delete removes a task
	Delete(id uuid.UUID) error
}
