package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/naoyak/worktrack-api/internal/models"
	"github.com/naoyak/worktrack-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrClientNotFound  = errors.New("client not found")
	ErrClientNameEmpty = errors.New("client name cannot be empty")
)

// ClientService handles client business logic.
type ClientService struct {
	clientRepo repository.ClientRepository
}

// NewClientService creates a new ClientService.
func NewClientService(clientRepo repository.ClientRepository) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
	}
}

// CreateClientInput represents input for creating a client
type CreateClientInput struct {
	Name  string
	Notes *string
	Rate  *float64
}

// UpdateClientInput represents input for updating a client. Nil fields are
// left unchanged.
type UpdateClientInput struct {
	Name  *string
	Notes *string
	Rate  *float64
}

// CreateClient creates a client owned by the caller.
func (s *ClientService) CreateClient(input CreateClientInput, callerID uuid.UUID) (*models.Client, error) {
	client := &models.Client{
		Name:   input.Name,
		Notes:  input.Notes,
		Rate:   input.Rate,
		UserID: callerID,
	}

	if err := s.clientRepo.Create(client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// GetClient returns a client owned by the caller.
func (s *ClientService) GetClient(id, callerID uuid.UUID) (*models.Client, error) {
	client, err := s.clientRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}

	if !isOwner(client.UserID, callerID) {
		return nil, ErrClientNotFound
	}

	return client, nil
}

// ListClients returns the caller's clients.
func (s *ClientService) ListClients(callerID uuid.UUID) ([]models.Client, error) {
	clients, err := s.clientRepo.ListByUser(callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

// UpdateClient applies a partial update to a client owned by the caller.
func (s *ClientService) UpdateClient(id uuid.UUID, input UpdateClientInput, callerID uuid.UUID) (*models.Client, error) {
	client, err := s.GetClient(id, callerID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, ErrClientNameEmpty
		}
		client.Name = *input.Name
	}
	if input.Notes != nil {
		client.Notes = input.Notes
	}
	if input.Rate != nil {
		client.Rate = input.Rate
	}

	if err := s.clientRepo.Update(client); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	return client, nil
}

// DeleteClient removes a client owned by the caller and returns its prior
// state. The client's projects survive with a NULL client_id.
func (s *ClientService) DeleteClient(id, callerID uuid.UUID) (*models.Client, error) {
	client, err := s.GetClient(id, callerID)
	if err != nil {
		return nil, err
	}

	if err := s.clientRepo.Delete(id); err != nil {
		return nil, fmt.Errorf("failed to delete client: %w", err)
	}

	return client, nil
}
