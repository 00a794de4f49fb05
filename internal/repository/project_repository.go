package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/naoyak/worktrack-api/internal/models"
	"gorm.io/gorm"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project, copying the client's rate inside the same
// transaction when requested
func (r *GormProjectRepository) Create(project *models.Project, inheritRateFrom *uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := copyClientRate(tx, project, inheritRateFrom); err != nil {
			return err
		}
		return tx.Create(project).Error
	})
}

// FindByID finds a project by ID
func (r *GormProjectRepository) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// ListByUser lists a user's projects in insertion order
func (r *GormProjectRepository) ListByUser(userID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// ListByClient lists a user's projects under one client. A nil clientID
// matches detached projects.
func (r *GormProjectRepository) ListByClient(userID uuid.UUID, clientID *uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	query := r.db.Where("user_id = ?", userID)
	if clientID != nil {
		query = query.Where("client_id = ?", *clientID)
	} else {
		query = query.Where("client_id IS NULL")
	}
	if err := query.Order("created_at").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Update persists changes to a project, copying the client's rate inside the
// same transaction when requested
func (r *GormProjectRepository) Update(project *models.Project, inheritRateFrom *uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := copyClientRate(tx, project, inheritRateFrom); err != nil {
			return err
		}
		return tx.Save(project).Error
	})
}

// Delete removes a project and all of its tasks
func (r *GormProjectRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Task{}, "project_id = ?", id).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Project{}, "id = ?", id).Error
	})
}

// copyClientRate fills project.Rate from the referenced client. Best-effort:
// a client that no longer exists leaves the rate untouched rather than
// failing the surrounding write.
func copyClientRate(tx *gorm.DB, project *models.Project, clientID *uuid.UUID) error {
	if clientID == nil || project.Rate != nil {
		return nil
	}

	var client models.Client
	if err := tx.First(&client, "id = ?", *clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	project.Rate = client.Rate
	return nil
}
