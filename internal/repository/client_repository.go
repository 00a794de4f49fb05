package repository

import (
	"github.com/google/uuid"
	"github.com/naoyak/worktrack-api/internal/models"
	"gorm.io/gorm"
)

// GormClientRepository is a GORM implementation of ClientRepository
type GormClientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new ClientRepository
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &GormClientRepository{db: db}
}

// Create creates a new client
func (r *GormClientRepository) Create(client *models.Client) error {
	return r.db.Create(client).Error
}

// FindByID finds a client by ID
func (r *GormClientRepository) FindByID(id uuid.UUID) (*models.Client, error) {
	var client models.Client
	if err := r.db.First(&client, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// ListByUser lists a user's clients in insertion order
func (r *GormClientRepository) ListByUser(userID uuid.UUID) ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// Update persists changes to a client
func (r *GormClientRepository) Update(client *models.Client) error {
	return r.db.Save(client).Error
}

// Delete removes a client. Its projects are kept and re-pointed to a NULL
// client_id first; both writes commit or neither does.
func (r *GormClientRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Project{}).
			Where("client_id = ?", id).
			Update("client_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Client{}, "id = ?", id).Error
	})
}
