package dto

import (
	"github.com/google/uuid"
	"github.com/naoyak/worktrack-api/internal/models"
)

// UserDTO represents a user in API responses. The password hash is never
// exposed.
type UserDTO struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
	}
}
