package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/naoyak/worktrack-api/internal/dto"
	apierrors "github.com/naoyak/worktrack-api/internal/errors"
	"github.com/naoyak/worktrack-api/internal/middleware"
	"github.com/naoyak/worktrack-api/internal/services"
)

// ClientHandler coordinates client CRUD HTTP handlers.
type ClientHandler struct {
	clientService *services.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientService *services.ClientService) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
	}
}

// CreateClient creates a client owned by the current user.
func (h *ClientHandler) CreateClient(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateClientRequest struct {
		Name  string   `json:"name" binding:"required"`
		Notes *string  `json:"notes"`
		Rate  *float64 `json:"rate"`
	}

	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, "Invalid request body")
		return
	}

	client, err := h.clientService.CreateClient(services.CreateClientInput{
		Name:  req.Name,
		Notes: req.Notes,
		Rate:  req.Rate,
	}, userID)
	if err != nil {
		respondClientError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClientDTO(*client))
}

// GetClient returns one of the current user's clients.
func (h *ClientHandler) GetClient(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.NotFound(c, "Client not found")
		return
	}

	client, err := h.clientService.GetClient(clientID, userID)
	if err != nil {
		respondClientError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClientDTO(*client))
}

// ListClients returns all of the current user's clients.
func (h *ClientHandler) ListClients(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	clients, err := h.clientService.ListClients(userID)
	if err != nil {
		respondClientError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClientDTOs(clients))
}

// UpdateClient applies a partial update to one of the current user's clients.
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.NotFound(c, "Client not found")
		return
	}

	type UpdateClientRequest struct {
		Name  *string  `json:"name"`
		Notes *string  `json:"notes"`
		Rate  *float64 `json:"rate"`
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, "Invalid request body")
		return
	}

	client, err := h.clientService.UpdateClient(clientID, services.UpdateClientInput{
		Name:  req.Name,
		Notes: req.Notes,
		Rate:  req.Rate,
	}, userID)
	if err != nil {
		respondClientError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClientDTO(*client))
}

// DeleteClient removes one of the current user's clients and returns its
// prior state. The client's projects are kept, detached from the client.
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.NotFound(c, "Client not found")
		return
	}

	client, err := h.clientService.DeleteClient(clientID, userID)
	if err != nil {
		respondClientError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClientDTO(*client))
}

func respondClientError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrClientNotFound):
		apierrors.NotFound(c, "Client not found")
	case errors.Is(err, services.ErrClientNameEmpty):
		apierrors.UnprocessableEntity(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
