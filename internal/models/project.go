package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Project struct {
	ID            uuid.UUID  `gorm:"type:uuid;primarykey" json:"id"`
	Name          string     `gorm:"type:varchar(255);not null" json:"name"`
	Description   *string    `gorm:"type:text" json:"description"`
	Completed     bool       `gorm:"not null;default:false" json:"completed"`
	CompletedOn   *time.Time `json:"completed_on"`
	Deadline      *time.Time `json:"deadline"`
	ClientID      *uuid.UUID `gorm:"type:uuid;index" json:"client_id"`
	Rate          *float64   `json:"rate"`
	HoursWorked   float64    `gorm:"not null;default:0" json:"hours_worked"`
	UseClientRate bool       `gorm:"not null;default:true" json:"use_client_rate"`
	UseTaskHours  bool       `gorm:"not null;default:true" json:"use_task_hours"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	// Relations
	User   User    `gorm:"foreignKey:UserID" json:"-"`
	Client *Client `gorm:"foreignKey:ClientID" json:"-"`
	Tasks  []Task  `gorm:"foreignKey:ProjectID" json:"tasks,omitempty"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
